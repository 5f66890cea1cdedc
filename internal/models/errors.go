package models

import "errors"

// Error kinds reported by the wallet core. Callers match them with errors.Is;
// the wrapped message carries the detail shown to the user.
var (
	// ErrInvalidAmount is returned when an amount is not positive or not a valid number.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInsufficientFunds is returned when a debit exceeds the wallet balance.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrAccountNotApproved is returned when a top-up uses a linked account that is not approved.
	ErrAccountNotApproved = errors.New("linked account is not approved")
	// ErrValidation is returned for malformed submission fields.
	ErrValidation = errors.New("validation error")
	// ErrConflict is returned when a state transition is not allowed from the current state.
	ErrConflict = errors.New("conflict")
	// ErrNotFound is returned for unknown users, projects, providers or records.
	ErrNotFound = errors.New("not found")

	// ErrConcurrentModification is returned by storage when a version check fails.
	ErrConcurrentModification = errors.New("concurrent modification")
	// ErrAlreadyExists is returned by storage when a unique key is taken.
	ErrAlreadyExists = errors.New("already exists")
)
