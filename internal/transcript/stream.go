package transcript

import (
	"context"
	"sync"

	"github.com/Crusty-Banana/medbot-client/internal/observability/metrics"
)

// Stream maintains the merged transcript view of one voice session and runs
// the persistence pass on every update.
//
// The two sources replace their snapshot in full on every update; nothing is
// patched incrementally. Update passes from both sources are serialized by a
// single mutex, so the recorder's mark/unmark mutations never interleave
// between passes. The snapshot read path uses a separate lock and is never
// blocked by an in-flight backend write.
type Stream struct {
	updateMu sync.Mutex // serializes full update passes

	mu        sync.Mutex // guards the fields below
	assistant []Segment
	user      []Segment
	merged    []Segment
	closed    bool

	recorder *Recorder
	metrics  *metrics.Metrics
}

// NewStream creates a stream for one voice session. The recorder may be nil
// for a display-only stream.
func NewStream(recorder *Recorder) *Stream {
	return &Stream{
		recorder: recorder,
		metrics:  metrics.DefaultMetrics,
	}
}

// SetAssistant replaces the assistant snapshot and reruns the merge and
// persistence pass.
func (s *Stream) SetAssistant(ctx context.Context, segments []Segment) {
	s.apply(ctx, RoleAssistant, segments)
}

// SetUser replaces the user snapshot and reruns the merge and persistence
// pass.
func (s *Stream) SetUser(ctx context.Context, segments []Segment) {
	s.apply(ctx, RoleUser, segments)
}

func (s *Stream) apply(ctx context.Context, role Role, segments []Segment) {
	s.updateMu.Lock()
	defer s.updateMu.Unlock()

	snapshot := make([]Segment, len(segments))
	copy(snapshot, segments)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	if role == RoleAssistant {
		s.assistant = snapshot
	} else {
		s.user = snapshot
	}
	s.merged = Merge(s.assistant, s.user)
	assistant, user := s.assistant, s.user
	s.mu.Unlock()

	s.metrics.RecordMerge()

	// Persistence runs after the merged view is published so a slow backend
	// write never delays the display. The pass visits every segment of both
	// snapshots; the recorder decides what is actually written.
	if s.recorder != nil {
		for _, seg := range assistant {
			s.recorder.Observe(ctx, RoleAssistant, seg)
		}
		for _, seg := range user {
			s.recorder.Observe(ctx, RoleUser, seg)
		}
	}
}

// Snapshot returns the current merged, role-tagged, time-ordered view. The
// returned slice is a copy and safe to keep.
func (s *Stream) Snapshot() []Segment {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Segment, len(s.merged))
	copy(out, s.merged)
	return out
}

// Close stops further recomputation. A persistence write already in flight
// completes or fails on its own; the dedup set is discarded with the stream.
func (s *Stream) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
}

// Closed reports whether the stream has been closed.
func (s *Stream) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}
