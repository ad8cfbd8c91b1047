package transcript

import (
	"context"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/Crusty-Banana/medbot-client/internal/observability/metrics"
)

// ConversationUnsaved is the sentinel id of a conversation that has not been
// created on the backend yet.
const ConversationUnsaved = "new"

// MessageWriter persists one finalized transcript message to the backend.
type MessageWriter interface {
	WriteTranscriptMessage(ctx context.Context, conversationID string, role Role, content string) error
}

// Recorder drives the persistence side effect of one voice session. Each
// segment id that reaches Final with non-empty text is written to the
// backend at most once while it stays marked; a failed write unmarks the id
// so a later update cycle can retry. The persisted-id set lives and dies
// with the session, so a fresh session starts with a clean slate.
type Recorder struct {
	conversationID string
	writer         MessageWriter
	log            zerolog.Logger
	metrics        *metrics.Metrics

	mu    sync.Mutex
	saved map[string]struct{}
}

// NewRecorder creates a recorder bound to one conversation for the lifetime
// of one voice session.
func NewRecorder(conversationID string, writer MessageWriter, log zerolog.Logger) *Recorder {
	return &Recorder{
		conversationID: conversationID,
		writer:         writer,
		log:            log.With().Str("component", "recorder").Str("conversationId", conversationID).Logger(),
		metrics:        metrics.DefaultMetrics,
		saved:          make(map[string]struct{}),
	}
}

// Observe inspects one segment from either stream and persists it when it
// is finalized, non-empty and not yet written. Failures are logged and never
// returned: the display projection must not be affected by persistence.
func (r *Recorder) Observe(ctx context.Context, role Role, seg Segment) {
	r.metrics.RecordSegmentObserved(string(role))

	if !seg.Final {
		r.metrics.RecordPersistSkipped(metrics.SkipNotFinal)
		return
	}
	if strings.TrimSpace(seg.Text) == "" {
		r.metrics.RecordPersistSkipped(metrics.SkipEmptyText)
		return
	}
	if r.conversationID == "" || r.conversationID == ConversationUnsaved {
		// Known gap: segments finalized before the conversation exists are
		// dropped, not queued, and never retried once an id is available.
		r.log.Debug().
			Str("segmentId", seg.ID).
			Str("role", string(role)).
			Msg("Conversation not created yet, dropping finalized segment")
		r.metrics.RecordPersistSkipped(metrics.SkipNoConversation)
		return
	}

	// Mark before issuing the write so a concurrent update pass cannot
	// double-send the same id while this write is in flight.
	r.mu.Lock()
	if _, ok := r.saved[seg.ID]; ok {
		r.mu.Unlock()
		r.metrics.RecordPersistSkipped(metrics.SkipDuplicate)
		return
	}
	r.saved[seg.ID] = struct{}{}
	r.mu.Unlock()

	if err := r.writer.WriteTranscriptMessage(ctx, r.conversationID, role, seg.Text); err != nil {
		// Unmark so the next update cycle can retry this segment.
		r.mu.Lock()
		delete(r.saved, seg.ID)
		r.mu.Unlock()

		r.log.Error().
			Err(err).
			Str("segmentId", seg.ID).
			Str("role", string(role)).
			Msg("Failed to save transcription message")
		r.metrics.RecordPersistFailure(string(role))
		return
	}

	r.metrics.RecordMessagePersisted(string(role))
	r.log.Debug().
		Str("segmentId", seg.ID).
		Str("role", string(role)).
		Msg("Transcription message saved")
}

// Persisted reports whether the given segment id is currently marked as
// written for this session.
func (r *Recorder) Persisted(segmentID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.saved[segmentID]
	return ok
}

// PersistedCount returns the number of ids currently marked as written.
func (r *Recorder) PersistedCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.saved)
}
