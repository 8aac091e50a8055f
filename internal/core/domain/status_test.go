package domain

import "testing"

// TestStatusTransitions walks the lifecycle graph in both allowed and
// forbidden directions.
func TestStatusTransitions(t *testing.T) {
	allowed := []struct{ from, to AdStatus }{
		{StatusDraft, StatusPendingReview},
		{StatusPendingReview, StatusActive},
		{StatusPendingReview, StatusRejected},
		{StatusActive, StatusPaused},
		{StatusActive, StatusCompleted},
		{StatusPaused, StatusActive},
		{StatusPaused, StatusCompleted},
	}
	for _, tr := range allowed {
		if !ValidStatusTransition(tr.from, tr.to) {
			t.Fatalf("%s -> %s should be allowed", tr.from, tr.to)
		}
	}

	forbidden := []struct{ from, to AdStatus }{
		{StatusDraft, StatusActive},
		{StatusActive, StatusDraft},
		{StatusCompleted, StatusActive},
		{StatusRejected, StatusPendingReview},
		{StatusPaused, StatusDraft},
	}
	for _, tr := range forbidden {
		if ValidStatusTransition(tr.from, tr.to) {
			t.Fatalf("%s -> %s should be forbidden", tr.from, tr.to)
		}
	}
}

func TestValidStatus(t *testing.T) {
	if !ValidStatus(StatusActive) {
		t.Fatal("active is a valid status")
	}
	if ValidStatus("archived") {
		t.Fatal("archived is not a valid status")
	}
}

func TestEditable(t *testing.T) {
	if !StatusDraft.Editable() || !StatusPaused.Editable() {
		t.Fatal("draft and paused ads accept edits")
	}
	if StatusActive.Editable() || StatusCompleted.Editable() {
		t.Fatal("active and completed ads are frozen")
	}
}
