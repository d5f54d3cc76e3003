package service

import (
	"errors"
	"fmt"
)

// ErrValidation is the base sentinel for every input validation failure.
// Specific validation errors wrap it with a user-facing message so handlers
// can match with [errors.Is] and still render the message inline.
var ErrValidation = errors.New("invalid data provided")

var (
	ErrUsernameTooShort  = fmt.Errorf("%w: username must be at least 3 characters long", ErrValidation)
	ErrPasswordRequired  = fmt.Errorf("%w: password is required", ErrValidation)
	ErrTitleRequired     = fmt.Errorf("%w: title is required", ErrValidation)
	ErrAuthorRequired    = fmt.Errorf("%w: author is required", ErrValidation)
	ErrRatingOutOfRange  = fmt.Errorf("%w: rating must be between 0 and 5", ErrValidation)
	ErrMessageIncomplete = fmt.Errorf("%w: name, email and message are required", ErrValidation)
	ErrUnknownCategory   = fmt.Errorf("%w: unknown category", ErrValidation)
)

var (
	// ErrWrongPassword signals a failed credential check. Handlers render it
	// with the same message as an unknown username.
	ErrWrongPassword = errors.New("wrong password")

	// ErrForbidden signals that the acting user is not the owner of the
	// record being mutated. It is never conflated with not-found.
	ErrForbidden = errors.New("forbidden")

	// ErrSessionInvalid signals a missing, expired or tampered session token.
	ErrSessionInvalid = errors.New("session is expired or invalid")
)
