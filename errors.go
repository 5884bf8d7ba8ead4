package passbook

import "errors"

// Domain errors, grouped by the boundary that is expected to handle them.
// All of them are recoverable at the shell: an operation that returns one of
// these has changed nothing, in memory or on disk.
var (
	// Validation errors: malformed input, rejected before any state is read.

	// ErrInvalidName is returned when an account name is empty.
	ErrInvalidName = errors.New("name must not be empty")
	// ErrInvalidPIN is returned when a PIN is not exactly 4 digits.
	ErrInvalidPIN = errors.New("PIN must be exactly 4 digits")
	// ErrInvalidAmount is returned when an amount is not a decimal with at
	// most two fraction digits.
	ErrInvalidAmount = errors.New("amount must be a decimal with at most 2 fraction digits")

	// Authentication errors.

	// ErrAccountNotFound is returned when no account matches the given id.
	ErrAccountNotFound = errors.New("account not found")
	// ErrWrongPIN is returned when the PIN does not verify against the
	// stored digest.
	ErrWrongPIN = errors.New("wrong PIN")

	// Business rule errors.

	// ErrNonPositiveAmount is returned when a deposit, withdrawal or
	// transfer amount is zero or negative.
	ErrNonPositiveAmount = errors.New("amount must be positive")
	// ErrInsufficientBalance is returned when a withdrawal or transfer
	// would drive the balance below zero.
	ErrInsufficientBalance = errors.New("insufficient balance")
	// ErrSameAccount is returned when source and destination of a transfer
	// are the same account.
	ErrSameAccount = errors.New("cannot transfer to the same account")
	// ErrDestinationNotFound is returned when the transfer destination
	// does not exist.
	ErrDestinationNotFound = errors.New("destination account not found")
)
