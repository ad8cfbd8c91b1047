// Package transcript implements the live transcript merge stream for a
// voice session: it combines the per-role speech recognition snapshots into
// a single time-ordered view and persists each finalized utterance to the
// backend exactly once.
package transcript

// Role identifies which participant a segment belongs to.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Segment is one speech recognition utterance unit. The id is assigned by
// the recognition source and denotes the same logical utterance for the
// lifetime of the session; Text may be revised until Final is set, after
// which the source will not touch it again.
type Segment struct {
	ID                string `json:"id"`
	Text              string `json:"text"`
	Final             bool   `json:"final"`
	FirstReceivedTime int64  `json:"first_received_time"`

	// Role is assigned by the merge based on which stream the segment
	// arrived on. The source does not carry it.
	Role Role `json:"role,omitempty"`
}
