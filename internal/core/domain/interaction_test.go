package domain

import "testing"

// TestReportable ensures delivered events cannot be submitted by clients.
func TestReportable(t *testing.T) {
	for _, kind := range []InteractionType{InteractionImpression, InteractionClick, InteractionView, InteractionConversion} {
		if !kind.Reportable() {
			t.Fatalf("%s should be reportable", kind)
		}
	}
	if InteractionDelivered.Reportable() {
		t.Fatal("delivered is internal and never reportable")
	}
	if InteractionType("hover").Reportable() {
		t.Fatal("unknown type should not be reportable")
	}
}

func TestNewInteraction(t *testing.T) {
	if _, err := NewInteraction("hover", 1, 1, 1, "u1", 0, InteractionContext{}); err == nil {
		t.Fatal("expected error for unknown type")
	}
	if _, err := NewInteraction(InteractionClick, 0, 1, 1, "u1", 0, InteractionContext{}); err == nil {
		t.Fatal("expected error for missing ad id")
	}
	if _, err := NewInteraction(InteractionClick, 1, 1, 1, "", 0, InteractionContext{}); err == nil {
		t.Fatal("expected error for missing user id")
	}
	if _, err := NewInteraction(InteractionClick, 1, 1, 1, "u1", -0.5, InteractionContext{}); err == nil {
		t.Fatal("expected error for negative spend")
	}

	a, err := NewInteraction(InteractionClick, 1, 2, 3, "u1", 0.5, InteractionContext{IP: "203.0.113.1"})
	if err != nil {
		t.Fatalf("NewInteraction error: %v", err)
	}
	b, err := NewInteraction(InteractionClick, 1, 2, 3, "u1", 0.5, InteractionContext{IP: "203.0.113.1"})
	if err != nil {
		t.Fatalf("NewInteraction error: %v", err)
	}
	if a.ID == "" || a.ID == b.ID {
		t.Fatal("each interaction gets a fresh unique id")
	}
}
