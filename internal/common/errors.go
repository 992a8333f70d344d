package common

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned for absent or malformed required input.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound is returned when the referenced content or bill does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidState is returned when the current status forbids the operation,
	// e.g. editing or deleting archived content.
	ErrInvalidState = errors.New("invalid state")

	// ErrConflict is returned when the row changed since it was fetched.
	ErrConflict = errors.New("concurrent modification")
)

// LifecycleError describes a rejected operation. Kind is one of the sentinels
// above so callers can match with errors.Is.
type LifecycleError struct {
	Op      string
	Kind    error
	Message string
}

func (e *LifecycleError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func (e *LifecycleError) Unwrap() error {
	return e.Kind
}

func NewLifecycleError(op string, kind error, format string, args ...interface{}) *LifecycleError {
	return &LifecycleError{Op: op, Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// TransitionOutcome reports what an archive/unarchive call did.
type TransitionOutcome string

const (
	// TransitionApplied means the status changed and was persisted.
	TransitionApplied TransitionOutcome = "applied"
	// TransitionSkipped means the content was missing or not in the source status.
	TransitionSkipped TransitionOutcome = "skipped"
	// TransitionIneligible means the content was in the source status but a guard
	// (unpaid bill) blocked the change.
	TransitionIneligible TransitionOutcome = "ineligible"
)

func (o TransitionOutcome) String() string {
	return string(o)
}
