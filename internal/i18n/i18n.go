// Package i18n holds the client's interface strings in English and
// Vietnamese. Lookup falls back to English for keys a locale is missing.
package i18n

// Lang selects a translation table.
type Lang string

const (
	English    Lang = "en"
	Vietnamese Lang = "vi"
)

var tables = map[Lang]map[string]string{
	English: {
		"new_chat":            "New chat",
		"history":             "History",
		"settings":            "Settings",
		"login":               "Log in",
		"logout":              "Log out",
		"register":            "Register",
		"profile":             "Profile",
		"conversations":       "Conversations",
		"no_conversations":    "No conversations yet",
		"untitled":            "Untitled conversation",
		"voice_connecting":    "Connecting...",
		"voice_listening":     "Listening",
		"voice_ended":         "Call ended",
		"you":                 "You",
		"assistant":           "Assistant",
		"signed_in_as":        "Signed in as",
		"not_signed_in":       "Not signed in",
		"language":            "Language",
		"use_rag":             "Use medical knowledge base",
		"deleted":             "Deleted",
		"renamed":             "Renamed",
		"send_message":        "Send a message",
		"press_ctrl_c":        "Press Ctrl+C to hang up",
		"session_unsaved":     "This conversation is not saved; the transcript will not be kept",
	},
	Vietnamese: {
		"new_chat":            "Cuộc trò chuyện mới",
		"history":             "Lịch sử",
		"settings":            "Cài đặt",
		"login":               "Đăng nhập",
		"logout":              "Đăng xuất",
		"register":            "Đăng ký",
		"profile":             "Hồ sơ",
		"conversations":       "Cuộc trò chuyện",
		"no_conversations":    "Chưa có cuộc trò chuyện nào",
		"untitled":            "Cuộc trò chuyện chưa đặt tên",
		"voice_connecting":    "Đang kết nối...",
		"voice_listening":     "Đang nghe",
		"voice_ended":         "Cuộc gọi đã kết thúc",
		"you":                 "Bạn",
		"assistant":           "Trợ lý",
		"signed_in_as":        "Đã đăng nhập với",
		"not_signed_in":       "Chưa đăng nhập",
		"language":            "Ngôn ngữ",
		"use_rag":             "Dùng cơ sở tri thức y khoa",
		"deleted":             "Đã xóa",
		"renamed":             "Đã đổi tên",
		"send_message":        "Gửi tin nhắn",
		"press_ctrl_c":        "Nhấn Ctrl+C để kết thúc cuộc gọi",
		"session_unsaved":     "Cuộc trò chuyện này chưa được lưu; bản ghi sẽ không được giữ lại",
	},
}

// T returns the translation of key in lang, falling back to English, then
// to the key itself so a missing entry stays visible instead of blank.
func T(lang Lang, key string) string {
	if table, ok := tables[lang]; ok {
		if s, ok := table[key]; ok {
			return s
		}
	}
	if s, ok := tables[English][key]; ok {
		return s
	}
	return key
}

// FromPreference maps the profile's language flag to a Lang.
func FromPreference(isVietnamese bool) Lang {
	if isVietnamese {
		return Vietnamese
	}
	return English
}

// Parse normalizes a language name from config or flags. Unknown values
// resolve to English.
func Parse(s string) Lang {
	switch s {
	case string(Vietnamese), "vietnamese":
		return Vietnamese
	default:
		return English
	}
}
