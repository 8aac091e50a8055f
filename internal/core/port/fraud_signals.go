package port

import (
	"context"
	"time"
)

// FraudSignalStore tracks short-lived request signals the fraud detector
// scores against: click volume per source IP and the time since the same
// (ad, IP) pair last interacted. Implementations are best-effort; a store
// outage degrades those signals to zero rather than blocking writes.
type FraudSignalStore interface {
	// ClicksLastHour returns the number of click-bearing interactions seen
	// from ip within the trailing hour.
	ClicksLastHour(ctx context.Context, ip string) (int64, error)

	// SinceLastInteraction returns how long ago the same (ad, ip) pair last
	// interacted. seen is false when no prior interaction is on record.
	SinceLastInteraction(ctx context.Context, adID int64, ip string) (since time.Duration, seen bool, err error)

	// Observe registers an interaction from ip against adID, bumping the
	// click counter when click is true.
	Observe(ctx context.Context, adID int64, ip string, click bool) error
}
