package transcript

import "sort"

// Merge combines the assistant and user snapshots into one view ordered
// ascending by FirstReceivedTime. Every assistant element is tagged
// RoleAssistant and every user element RoleUser. The sort is stable, so
// segments with equal timestamps keep their append order: assistant before
// user. Inputs are not modified; the result is a fresh slice.
//
// Merge is a pure projection: calling it twice with the same inputs yields
// an identical sequence.
func Merge(assistant, user []Segment) []Segment {
	merged := make([]Segment, 0, len(assistant)+len(user))
	for _, s := range assistant {
		s.Role = RoleAssistant
		merged = append(merged, s)
	}
	for _, s := range user {
		s.Role = RoleUser
		merged = append(merged, s)
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].FirstReceivedTime < merged[j].FirstReceivedTime
	})
	return merged
}
