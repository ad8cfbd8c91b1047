// Package mock provides a scripted transcription feed for tests and offline
// demos. It simulates realistic recognizer behavior: progressive partial
// revisions of one segment id, exactly one final per utterance, and a
// disconnect when the script runs out.
package mock

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Crusty-Banana/medbot-client/internal/transcript"
	"github.com/Crusty-Banana/medbot-client/internal/voice"
)

// ScriptedUtterance is one utterance in the simulated dialogue.
type ScriptedUtterance struct {
	Role     transcript.Role
	Partials []string // Progressive revisions before the final text
	Final    string
}

// DefaultScript is a short assistant dialogue for demos.
var DefaultScript = []ScriptedUtterance{
	{
		Role:     transcript.RoleUser,
		Partials: []string{"I have", "I have a head"},
		Final:    "I have a headache since this morning",
	},
	{
		Role:     transcript.RoleAssistant,
		Partials: []string{"I'm sorry to", "I'm sorry to hear that. How"},
		Final:    "I'm sorry to hear that. How severe is the pain on a scale of one to ten?",
	},
	{
		Role:     transcript.RoleUser,
		Partials: []string{"About a"},
		Final:    "About a six, it gets worse when I stand up",
	},
	{
		Role:     transcript.RoleAssistant,
		Partials: []string{"Thank you. Have you"},
		Final:    "Thank you. Have you taken any medication for it yet?",
	},
}

// Feed implements voice.Feed with scripted snapshots.
type Feed struct {
	script   []ScriptedUtterance
	interval time.Duration

	mu     sync.Mutex
	closed bool
	cancel context.CancelFunc
}

// Option configures a Feed.
type Option func(*Feed)

// WithInterval sets the delay between emitted snapshots.
func WithInterval(d time.Duration) Option {
	return func(f *Feed) { f.interval = d }
}

// New creates a scripted feed. A nil script plays DefaultScript.
func New(script []ScriptedUtterance, opts ...Option) *Feed {
	if script == nil {
		script = DefaultScript
	}
	f := &Feed{
		script:   script,
		interval: 150 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Start implements voice.Feed. The script plays on a background goroutine;
// each step re-sends the full per-role snapshot, like the real stream does.
func (f *Feed) Start(ctx context.Context, h voice.Handler) error {
	ctx, cancel := context.WithCancel(ctx)

	f.mu.Lock()
	f.cancel = cancel
	f.mu.Unlock()

	go f.play(ctx, h)
	return nil
}

func (f *Feed) play(ctx context.Context, h voice.Handler) {
	snapshots := map[transcript.Role][]transcript.Segment{}
	now := time.Now().UnixMilli()

	emit := func(role transcript.Role) bool {
		select {
		case <-ctx.Done():
			return false
		case <-time.After(f.interval):
		}
		segs := snapshots[role]
		out := make([]transcript.Segment, len(segs))
		copy(out, segs)
		h.OnTranscription(role, out)
		return true
	}

	for i, utt := range f.script {
		id := uuid.NewString()
		received := now + int64(i)*1000

		seg := transcript.Segment{ID: id, FirstReceivedTime: received}
		snapshots[utt.Role] = append(snapshots[utt.Role], seg)
		last := len(snapshots[utt.Role]) - 1

		for _, partial := range utt.Partials {
			snapshots[utt.Role][last].Text = partial
			if !emit(utt.Role) {
				return
			}
		}

		snapshots[utt.Role][last].Text = utt.Final
		snapshots[utt.Role][last].Final = true
		if !emit(utt.Role) {
			return
		}
	}

	h.OnDisconnected("script complete")
}

// Close implements voice.Feed.
func (f *Feed) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return nil
	}
	f.closed = true
	if f.cancel != nil {
		f.cancel()
	}
	return nil
}
