package port

import (
	"errors"
	"fmt"
)

// Sentinel errors forming the engine's error taxonomy. Callers match them
// with errors.Is; the HTTP adapter maps them to status codes.
var (
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrInvalidState = errors.New("invalid state")
	ErrValidation   = errors.New("validation failed")
	ErrPersistence  = errors.New("persistence failure")
)

// FraudRejectedError reports a performance update rejected by the fraud
// detector. The score must be surfaced to the caller, never swallowed.
type FraudRejectedError struct {
	Score float64
}

func (e *FraudRejectedError) Error() string {
	return fmt.Sprintf("interaction rejected as fraudulent (score %.2f)", e.Score)
}
