package voice

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/Crusty-Banana/medbot-client/internal/api"
	"github.com/Crusty-Banana/medbot-client/internal/observability/metrics"
	"github.com/Crusty-Banana/medbot-client/internal/transcript"
)

// Session is one connected voice call. It owns the merge stream and its
// recorder, so the persisted-id dedup set is created with the session and
// discarded with it — a fresh session never inherits a previous one's set.
type Session struct {
	conversationID string
	feed           Feed
	stream         *transcript.Stream
	log            zerolog.Logger
	metrics        *metrics.Metrics

	startedAt time.Time
	done      chan struct{}
	finish    sync.Once
}

// NewSession builds a session for the given conversation. writer persists
// finalized segments; pass the id sentinel behavior through unchanged by
// handing in whatever conversation id the caller has (including "new").
func NewSession(conversationID string, feed Feed, writer transcript.MessageWriter, log zerolog.Logger) *Session {
	log = log.With().Str("component", "voice").Str("conversationId", conversationID).Logger()
	recorder := transcript.NewRecorder(conversationID, writer, log)
	return &Session{
		conversationID: conversationID,
		feed:           feed,
		stream:         transcript.NewStream(recorder),
		log:            log,
		metrics:        metrics.DefaultMetrics,
		done:           make(chan struct{}),
	}
}

// Start connects the feed. Events flow into the merge stream until the feed
// disconnects or Close is called.
func (s *Session) Start(ctx context.Context) error {
	s.startedAt = time.Now()
	if err := s.feed.Start(ctx, s); err != nil {
		return err
	}
	s.metrics.RecordSessionStart()
	s.log.Info().Msg("Voice session connected")
	return nil
}

// OnTranscription implements Handler.
func (s *Session) OnTranscription(role transcript.Role, segments []transcript.Segment) {
	ctx := context.Background()
	switch role {
	case transcript.RoleAssistant:
		s.stream.SetAssistant(ctx, segments)
	case transcript.RoleUser:
		s.stream.SetUser(ctx, segments)
	default:
		s.log.Warn().Str("role", string(role)).Msg("Dropping segments for unknown role")
	}
}

// OnDisconnected implements Handler. Recomputation stops; a persistence
// write already in flight completes or fails on its own.
func (s *Session) OnDisconnected(reason string) {
	s.finish.Do(func() {
		s.stream.Close()
		s.metrics.RecordSessionEnd(time.Since(s.startedAt).Seconds())
		s.log.Info().Str("reason", reason).Msg("Voice session disconnected")
		close(s.done)
	})
}

// Transcript returns the current merged, ordered, role-tagged view.
func (s *Session) Transcript() []transcript.Segment {
	return s.stream.Snapshot()
}

// Done is closed when the session has ended.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Close disconnects the feed and ends the session.
func (s *Session) Close() error {
	err := s.feed.Close()
	s.OnDisconnected("closed by client")
	return err
}

// MessageWriter adapts the backend client to the transcript recorder.
type MessageWriter struct {
	Client *api.Client
}

// WriteTranscriptMessage implements transcript.MessageWriter.
func (w MessageWriter) WriteTranscriptMessage(ctx context.Context, conversationID string, role transcript.Role, content string) error {
	return w.Client.CreateMessage(ctx, conversationID, api.CreateMessageRequest{
		Role:        string(role),
		Content:     content,
		MessageType: api.MessageTypeText,
	})
}
