package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"orbit-ads/internal/core/domain"
	"orbit-ads/internal/core/port"
)

// UserProfileRepository is the read-only window onto the social side of
// the system. User records are owned by the host application; the engine
// only derives a delivery context from them.
type UserProfileRepository struct {
	pool *pgxpool.Pool
}

// NewUserProfileRepository returns a new repository instance.
func NewUserProfileRepository(pool *pgxpool.Pool) *UserProfileRepository {
	return &UserProfileRepository{pool: pool}
}

// GetContext resolves a user id into the context delivery decisions are
// made against. Age is computed from the birth date, falling back to the
// assumed default when it is unknown.
func (r *UserProfileRepository) GetContext(ctx context.Context, userID string) (*domain.UserContext, error) {
	var (
		birthDate *time.Time
		user      = domain.UserContext{UserID: userID}
	)
	err := r.pool.QueryRow(ctx, `
        SELECT birth_date, COALESCE(gender, ''), COALESCE(country, ''),
               COALESCE(platform, ''), COALESCE(interests, '{}')
        FROM users WHERE id = $1`, userID).
		Scan(&birthDate, &user.Gender, &user.Country, &user.Platform, &user.Interests)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: user %s", port.ErrNotFound, userID)
	}
	if err != nil {
		return nil, err
	}
	user.Age = domain.AgeFromBirthDate(birthDate, time.Now().UTC())
	return &user, nil
}
