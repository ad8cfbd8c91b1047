package api

import (
	"context"
	"net/http"
)

// VoiceSession is the broker handle for joining a realtime voice room.
// Newer backends return the room URL alongside the token; older ones return
// only a bare token and expect the client to know the room URL.
type VoiceSession struct {
	LivekitURL   string `json:"livekit_url"`
	LivekitToken string `json:"livekit_token"`
	Token        string `json:"token"`
}

// Credentials resolves the room URL and join token, falling back to the
// configured realtime URL when the backend did not provide one.
func (v *VoiceSession) Credentials(fallbackURL string) (url, token string) {
	url = v.LivekitURL
	if url == "" {
		url = fallbackURL
	}
	token = v.LivekitToken
	if token == "" {
		token = v.Token
	}
	return url, token
}

// CreateVoiceSessionRequest asks the backend to provision a voice session
// bound to a conversation. Metadata is passed through to the assistant
// agent (e.g. instructions).
type CreateVoiceSessionRequest struct {
	ConversationID string         `json:"conversation_id"`
	Metadata       map[string]any `json:"metadata,omitempty"`
}

// CreateVoiceSession provisions a realtime voice session for a conversation.
func (c *Client) CreateVoiceSession(ctx context.Context, req CreateVoiceSessionRequest) (*VoiceSession, error) {
	var session VoiceSession
	if err := c.do(ctx, "create_voice_session", http.MethodPost, "/voice/session/create", req, &session); err != nil {
		return nil, err
	}
	return &session, nil
}
