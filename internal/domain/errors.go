package domain

import "errors"

var (
	ErrUnauthorized           = errors.New("unauthorized")
	ErrInvalidInput           = errors.New("invalid input")
	ErrInsufficientFunds      = errors.New("insufficient funds")
	ErrNotEligible            = errors.New("voter is not eligible")
	ErrAlreadyResolved        = errors.New("request already resolved")
	ErrConcurrentModification = errors.New("concurrent modification, retry")
	ErrNotFound               = errors.New("not found")
	ErrInternal               = errors.New("internal error")
	// ErrInvariantViolation marks a ledger mutation that would produce a negative
	// balance outside of the checked insufficient funds path.
	ErrInvariantViolation = errors.New("ledger invariant violated")
)
