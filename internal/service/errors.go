package service

import "errors"

var (
	// ErrMissingEmail is returned when a checkout request has no email.
	ErrMissingEmail = errors.New("email is required")

	// ErrInvalidAmount is returned when the total price does not convert
	// to at least one minor currency unit.
	ErrInvalidAmount = errors.New("total price must be positive")

	// ErrInvalidCheckoutID is returned when a checkout ID is empty.
	ErrInvalidCheckoutID = errors.New("invalid checkout id")

	// ErrInvalidProgramID is returned when a program ID is empty.
	ErrInvalidProgramID = errors.New("invalid program id")

	// ErrMissingProgramTitle is returned when a program has no title.
	ErrMissingProgramTitle = errors.New("program title is required")

	// ErrInvalidProgramPrice is returned when a program price is negative.
	ErrInvalidProgramPrice = errors.New("program price must not be negative")
)
