// Package services defines the business logic for the song catalog and the
// request queue. This file centralizes service-level error values so that
// they can be consistently returned by service methods and checked by callers.
//
// Errors fall in two families that handlers translate to HTTP codes:
//   - validation errors (IsValidation): the input is rejected, nothing written
//   - not-found errors (IsNotFound): a referenced song or request is missing
//
// Anything else is a storage failure.
package services

import (
	"errors"
	"fmt"
)

// Validation errors.
var (
	// ErrMissingField is returned when a required input field is absent or
	// blank. Use errors.As with *FieldError to get the field name.
	ErrMissingField = errors.New("missing required field")

	// ErrNoFollows is returned when a submission declares no recognized
	// social platform follow.
	ErrNoFollows = errors.New("follow the artist on at least one social network")

	// ErrInvalidStatus is returned for a status outside
	// pending/queue/playing/completed.
	ErrInvalidStatus = errors.New("invalid status")

	// ErrInvalidPaymentStatus is returned for a payment status outside
	// pending/completed/failed.
	ErrInvalidPaymentStatus = errors.New("invalid payment status")

	// ErrInvalidLikes is returned when likes is set to a negative number.
	ErrInvalidLikes = errors.New("likes must be zero or positive")

	// ErrInvalidRelevance is returned for a song tier outside low/medium/high.
	ErrInvalidRelevance = errors.New("invalid relevance")
)

// Not-found errors.
var (
	ErrSongNotFound    = errors.New("song not found")
	ErrRequestNotFound = errors.New("request not found")
)

// FieldError names the missing field. It matches ErrMissingField with
// errors.Is.
type FieldError struct {
	Field string
}

func (e *FieldError) Error() string { return fmt.Sprintf("missing required field: %s", e.Field) }

func (e *FieldError) Unwrap() error { return ErrMissingField }

func missing(field string) error { return &FieldError{Field: field} }

// IsValidation reports whether err is a client input error.
func IsValidation(err error) bool {
	for _, target := range []error{
		ErrMissingField,
		ErrNoFollows,
		ErrInvalidStatus,
		ErrInvalidPaymentStatus,
		ErrInvalidLikes,
		ErrInvalidRelevance,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// IsNotFound reports whether err refers to a missing song or request.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrSongNotFound) || errors.Is(err, ErrRequestNotFound)
}
