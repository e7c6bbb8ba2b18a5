package estimate

import "errors"

var (
	// ErrBusy is returned when a request is triggered while the same kind of
	// request is still in flight.
	ErrBusy = errors.New("request already in flight")

	// ErrInvalidTransition is returned for a request event that is not legal
	// in the current phase.
	ErrInvalidTransition = errors.New("invalid request transition")

	// ErrUnknownField is returned when a field name does not belong to the estimate.
	ErrUnknownField = errors.New("unknown estimate field")

	// ErrEmptyDescription is returned when the generator is triggered with a blank description.
	ErrEmptyDescription = errors.New("empty job description")

	// ErrNotConfigured is returned when an AI collaborator is missing.
	ErrNotConfigured = errors.New("collaborator not configured")
)
