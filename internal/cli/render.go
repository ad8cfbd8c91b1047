package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Crusty-Banana/medbot-client/internal/api"
	"github.com/Crusty-Banana/medbot-client/internal/transcript"
)

// Theme defines the transcript color scheme.
type Theme struct {
	Assistant lipgloss.Color
	User      lipgloss.Color
	Dim       lipgloss.Color
}

// DefaultTheme matches the web client's palette.
var DefaultTheme = Theme{
	Assistant: lipgloss.Color("#00b8d9"),
	User:      lipgloss.Color("#00ff9f"),
	Dim:       lipgloss.Color("#6e7681"),
}

// Styles holds all styles derived from a theme.
type Styles struct {
	AssistantLabel lipgloss.Style
	UserLabel      lipgloss.Style
	Partial        lipgloss.Style
	Help           lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(t Theme) Styles {
	return Styles{
		AssistantLabel: lipgloss.NewStyle().Bold(true).Foreground(t.Assistant),
		UserLabel:      lipgloss.NewStyle().Bold(true).Foreground(t.User),
		Partial:        lipgloss.NewStyle().Italic(true).Foreground(t.Dim),
		Help:           lipgloss.NewStyle().Foreground(t.Dim),
	}
}

var styles = NewStyles(DefaultTheme)

// speakerLabel returns the localized, styled speaker name for a role.
func speakerLabel(role transcript.Role) string {
	if role == transcript.RoleAssistant {
		return styles.AssistantLabel.Render(tr("assistant"))
	}
	return styles.UserLabel.Render(tr("you"))
}

// renderTranscript renders a merged transcript view, one line per segment.
// Partial segments are dimmed until they finalize.
func renderTranscript(segments []transcript.Segment) string {
	var b strings.Builder
	for _, seg := range segments {
		text := seg.Text
		if !seg.Final {
			text = styles.Partial.Render(text)
		}
		fmt.Fprintf(&b, "%s: %s\n", speakerLabel(seg.Role), text)
	}
	return b.String()
}

// renderMessages renders a stored conversation history in the same shape as
// the live transcript.
func renderMessages(messages []api.Message) string {
	var b strings.Builder
	for _, m := range messages {
		fmt.Fprintf(&b, "%s: %s\n", speakerLabel(transcript.Role(m.Role)), m.Content)
	}
	return b.String()
}
