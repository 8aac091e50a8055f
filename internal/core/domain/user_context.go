package domain

import "time"

// AssumedAge is used when a user's birth date is unknown. Targeting fails
// open with this default rather than excluding the user.
const AssumedAge = 25

// UserContext is the derived, non-persisted view of a user a delivery
// request is evaluated against: demographics, interest keywords and the
// device platform the request came from.
type UserContext struct {
	UserID    string
	Age       int
	Gender    string
	Country   string
	Platform  string
	Interests []string
}

// AgeFromBirthDate computes a user's age at time now, falling back to
// AssumedAge when the birth date is unknown.
func AgeFromBirthDate(birthDate *time.Time, now time.Time) int {
	if birthDate == nil || birthDate.IsZero() {
		return AssumedAge
	}
	age := now.Year() - birthDate.Year()
	if now.YearDay() < birthDate.YearDay() {
		age--
	}
	if age < 0 {
		return AssumedAge
	}
	return age
}
