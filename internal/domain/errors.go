package domain

import (
	"errors"
	"fmt"
)

// Common engine errors. Each structured error type below unwraps to one
// of these sentinels so callers can classify failures with errors.Is
// while still reading the typed payload with errors.As.
var (
	// ErrDetailNotDefined indicates a required per-round attribute
	// record is missing.
	ErrDetailNotDefined = errors.New("detail not defined")

	// ErrNeedMore indicates insufficient available resources for the
	// requested round.
	ErrNeedMore = errors.New("need more resources")

	// ErrResultNotSent indicates an expected participant has no
	// submitted raw result for the round.
	ErrResultNotSent = errors.New("result not sent")

	// ErrWinPointsDifferent indicates contradictory win signals for the
	// same participant within one round.
	ErrWinPointsDifferent = errors.New("win points differ")

	// ErrEntityNotRegistered indicates a reference to a participant not
	// declared for the round.
	ErrEntityNotRegistered = errors.New("entity not registered")
)

// Resource names a countable allocation resource for shortfall reporting.
type Resource string

// Resources an allocation can run short of.
const (
	ResourceTeams        Resource = "teams"
	ResourceAdjudicators Resource = "adjudicators"
	ResourceVenues       Resource = "venues"
)

// DetailNotDefinedError reports a missing per-round attribute record.
// It is always fatal to the calling operation.
type DetailNotDefinedError struct {
	// ID is the entity lacking the record.
	ID string

	// Round is the round the record was required for.
	Round int
}

// Error implements the error interface for DetailNotDefinedError.
func (e *DetailNotDefinedError) Error() string {
	return fmt.Sprintf("detail not defined: id=%s, round=%d", e.ID, e.Round)
}

// Unwrap returns ErrDetailNotDefined, supporting errors.Is classification.
func (e *DetailNotDefinedError) Unwrap() error { return ErrDetailNotDefined }

// NewDetailNotDefinedError creates a DetailNotDefinedError for the entity
// and round.
func NewDetailNotDefinedError(id string, round int) *DetailNotDefinedError {
	return &DetailNotDefinedError{ID: id, Round: round}
}

// NeedMoreError reports that the available count of a resource is below
// what the requested allocation needs. AtLeast carries the exact
// shortfall so the caller can report it precisely.
type NeedMoreError struct {
	// Resource is the resource that ran short.
	Resource Resource

	// AtLeast is how many more of the resource are required.
	AtLeast int
}

// Error implements the error interface for NeedMoreError.
func (e *NeedMoreError) Error() string {
	return fmt.Sprintf("need more %s: at least %d", e.Resource, e.AtLeast)
}

// Unwrap returns ErrNeedMore, supporting errors.Is classification.
func (e *NeedMoreError) Unwrap() error { return ErrNeedMore }

// NewNeedMoreError creates a NeedMoreError for the resource and shortfall.
func NewNeedMoreError(resource Resource, atLeast int) *NeedMoreError {
	return &NeedMoreError{Resource: resource, AtLeast: atLeast}
}

// ResultNotSentError reports a participant expected to report for a
// round with no submitted raw result.
type ResultNotSentError struct {
	ID    string
	Role  Role
	Round int
}

// Error implements the error interface for ResultNotSentError.
func (e *ResultNotSentError) Error() string {
	return fmt.Sprintf("result not sent: id=%s, role=%s, round=%d", e.ID, e.Role, e.Round)
}

// Unwrap returns ErrResultNotSent, supporting errors.Is classification.
func (e *ResultNotSentError) Unwrap() error { return ErrResultNotSent }

// NewResultNotSentError creates a ResultNotSentError for the participant.
func NewResultNotSentError(id string, role Role, round int) *ResultNotSentError {
	return &ResultNotSentError{ID: id, Role: role, Round: round}
}

// WinPointsDifferentError reports contradictory win signals submitted
// for one participant in one round (ballot inconsistency).
type WinPointsDifferentError struct {
	// ID is the participant with inconsistent ballots.
	ID string

	// Wins holds the conflicting win markers as submitted.
	Wins []int
}

// Error implements the error interface for WinPointsDifferentError.
func (e *WinPointsDifferentError) Error() string {
	return fmt.Sprintf("win points differ: id=%s, wins=%v", e.ID, e.Wins)
}

// Unwrap returns ErrWinPointsDifferent, supporting errors.Is classification.
func (e *WinPointsDifferentError) Unwrap() error { return ErrWinPointsDifferent }

// NewWinPointsDifferentError creates a WinPointsDifferentError for the
// participant and its conflicting markers.
func NewWinPointsDifferentError(id string, wins []int) *WinPointsDifferentError {
	return &WinPointsDifferentError{ID: id, Wins: wins}
}

// EntityNotRegisteredError reports a reference to a participant not
// declared for the round.
type EntityNotRegisteredError struct {
	ID    string
	Role  Role
	Round int
}

// Error implements the error interface for EntityNotRegisteredError.
func (e *EntityNotRegisteredError) Error() string {
	return fmt.Sprintf("entity not registered: id=%s, role=%s, round=%d", e.ID, e.Role, e.Round)
}

// Unwrap returns ErrEntityNotRegistered, supporting errors.Is classification.
func (e *EntityNotRegisteredError) Unwrap() error { return ErrEntityNotRegistered }

// NewEntityNotRegisteredError creates an EntityNotRegisteredError for
// the participant.
func NewEntityNotRegisteredError(id string, role Role, round int) *EntityNotRegisteredError {
	return &EntityNotRegisteredError{ID: id, Role: role, Round: round}
}
