package domain

// AdStatus is the lifecycle state of an Ad. Only active ads participate in
// delivery.
type AdStatus string

const (
	StatusDraft         AdStatus = "draft"
	StatusPendingReview AdStatus = "pending_review"
	StatusActive        AdStatus = "active"
	StatusPaused        AdStatus = "paused"
	StatusCompleted     AdStatus = "completed"
	StatusRejected      AdStatus = "rejected"
)

// statusTransitions encodes the lifecycle:
// draft -> pending_review -> active <-> paused -> completed, with rejected
// reachable from pending_review. completed and rejected are terminal.
var statusTransitions = map[AdStatus][]AdStatus{
	StatusDraft:         {StatusPendingReview},
	StatusPendingReview: {StatusActive, StatusRejected},
	StatusActive:        {StatusPaused, StatusCompleted},
	StatusPaused:        {StatusActive, StatusCompleted},
}

// ValidStatus reports whether s is a known ad status.
func ValidStatus(s AdStatus) bool {
	switch s {
	case StatusDraft, StatusPendingReview, StatusActive, StatusPaused, StatusCompleted, StatusRejected:
		return true
	}
	return false
}

// ValidStatusTransition reports whether an ad may move from one status to
// another.
func ValidStatusTransition(from, to AdStatus) bool {
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Editable reports whether an ad in this status accepts content updates.
func (s AdStatus) Editable() bool {
	return s == StatusDraft || s == StatusPaused
}
