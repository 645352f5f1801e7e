package domain

import (
	"errors"
	"strings"
)

// Sentinel errors shared by services and repositories. Controllers map them to
// HTTP status codes with errors.Is.
var (
	ErrNotFound             = errors.New("not found")
	ErrInvalidInput         = errors.New("invalid input")
	ErrEventFull            = errors.New("event is fully booked")
	ErrAlreadyRegistered    = errors.New("phone already registered for this event")
	ErrStoreUnavailable     = errors.New("record store unavailable")
	ErrSubmissionInProgress = errors.New("submission already in progress")
	ErrSubmissionFinished   = errors.New("submission already finished; reset before submitting again")
	ErrAssistantUnavailable = errors.New("assistant is not configured")
)

// ValidationError lists the problems found in submitted input. It matches
// ErrInvalidInput with errors.Is.
type ValidationError struct {
	Problems []string
}

func NewValidationError(problems ...string) *ValidationError {
	return &ValidationError{Problems: problems}
}

func (e *ValidationError) Error() string {
	return "invalid input: " + strings.Join(e.Problems, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }
