package transcript

import (
	"reflect"
	"testing"
)

func TestMerge_OrdersByFirstReceivedTime(t *testing.T) {
	assistant := []Segment{
		{ID: "a1", Text: "Hello", Final: true, FirstReceivedTime: 100},
	}
	user := []Segment{
		{ID: "u1", Text: "Hi", Final: true, FirstReceivedTime: 50},
	}

	merged := Merge(assistant, user)

	if len(merged) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(merged))
	}
	if merged[0].ID != "u1" {
		t.Errorf("expected u1 first (50 < 100), got %s", merged[0].ID)
	}
	if merged[1].ID != "a1" {
		t.Errorf("expected a1 second, got %s", merged[1].ID)
	}
}

func TestMerge_RoleTagging(t *testing.T) {
	assistant := []Segment{
		{ID: "a1", FirstReceivedTime: 10},
		{ID: "a2", FirstReceivedTime: 30},
	}
	user := []Segment{
		{ID: "u1", FirstReceivedTime: 20},
	}

	merged := Merge(assistant, user)

	for _, seg := range merged {
		switch seg.ID {
		case "a1", "a2":
			if seg.Role != RoleAssistant {
				t.Errorf("segment %s: expected role assistant, got %s", seg.ID, seg.Role)
			}
		case "u1":
			if seg.Role != RoleUser {
				t.Errorf("segment %s: expected role user, got %s", seg.ID, seg.Role)
			}
		default:
			t.Errorf("unexpected segment %s", seg.ID)
		}
	}
}

func TestMerge_Idempotent(t *testing.T) {
	assistant := []Segment{
		{ID: "a1", Text: "one", FirstReceivedTime: 5},
		{ID: "a2", Text: "two", FirstReceivedTime: 15},
	}
	user := []Segment{
		{ID: "u1", Text: "three", FirstReceivedTime: 10},
		{ID: "u2", Text: "four", FirstReceivedTime: 15},
	}

	first := Merge(assistant, user)
	second := Merge(assistant, user)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("expected identical output on recompute:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestMerge_StableTieBreak_AssistantBeforeUser(t *testing.T) {
	assistant := []Segment{
		{ID: "a1", FirstReceivedTime: 42},
	}
	user := []Segment{
		{ID: "u1", FirstReceivedTime: 42},
	}

	merged := Merge(assistant, user)

	if merged[0].ID != "a1" || merged[1].ID != "u1" {
		t.Errorf("equal timestamps must keep append order (assistant first), got [%s %s]",
			merged[0].ID, merged[1].ID)
	}
}

func TestMerge_SortedInvariant(t *testing.T) {
	assistant := []Segment{
		{ID: "a1", FirstReceivedTime: 300},
		{ID: "a2", FirstReceivedTime: 500},
	}
	user := []Segment{
		{ID: "u1", FirstReceivedTime: 100},
		{ID: "u2", FirstReceivedTime: 400},
		{ID: "u3", FirstReceivedTime: 600},
	}

	merged := Merge(assistant, user)

	for i := 1; i < len(merged); i++ {
		if merged[i-1].FirstReceivedTime > merged[i].FirstReceivedTime {
			t.Errorf("order invariant violated at %d: %d > %d",
				i, merged[i-1].FirstReceivedTime, merged[i].FirstReceivedTime)
		}
	}
}

func TestMerge_EmptyInputs(t *testing.T) {
	tests := []struct {
		name      string
		assistant []Segment
		user      []Segment
		want      int
	}{
		{"both empty", nil, nil, 0},
		{"assistant only", []Segment{{ID: "a1"}}, nil, 1},
		{"user only", nil, []Segment{{ID: "u1"}}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			merged := Merge(tt.assistant, tt.user)
			if len(merged) != tt.want {
				t.Errorf("expected %d segments, got %d", tt.want, len(merged))
			}
		})
	}
}

func TestMerge_DoesNotModifyInputs(t *testing.T) {
	assistant := []Segment{{ID: "a1", FirstReceivedTime: 2}}
	user := []Segment{{ID: "u1", FirstReceivedTime: 1}}

	Merge(assistant, user)

	if assistant[0].Role != "" {
		t.Errorf("assistant input was modified: role=%s", assistant[0].Role)
	}
	if user[0].Role != "" {
		t.Errorf("user input was modified: role=%s", user[0].Role)
	}
}
