// Package voice ties one realtime media session to one transcript merge
// stream. The media transport itself (audio, codecs, reconnection) is owned
// by the external realtime service; this package only consumes its
// transcription event surface and its disconnect notification.
package voice

import (
	"context"

	"github.com/Crusty-Banana/medbot-client/internal/transcript"
)

// Handler receives transcription events from a realtime feed.
//
// OnTranscription delivers the full current snapshot of one role's segments
// on every update, not a diff; the previous snapshot for that role is
// replaced outright.
type Handler interface {
	OnTranscription(role transcript.Role, segments []transcript.Segment)

	// OnDisconnected is called exactly once when the feed ends, whether by
	// server close, network error, or local Close.
	OnDisconnected(reason string)
}

// Feed is the transcription event surface of a connected realtime session.
type Feed interface {
	// Start connects and begins delivering events to the handler. It
	// returns once the feed is established; events arrive asynchronously.
	Start(ctx context.Context, h Handler) error

	// Close tears the feed down and releases resources.
	Close() error
}
