package port

import (
	"context"

	"orbit-ads/internal/core/domain"
)

// UserProfileStore is the narrow interface onto the social side of the
// system: it resolves a user id into the derived context delivery decisions
// are made against. Returns ErrNotFound for unknown users.
type UserProfileStore interface {
	GetContext(ctx context.Context, userID string) (*domain.UserContext, error)
}
