package errs

import "errors"

// Sentinel errors for the command-pipeline failure taxonomy.
// Use cases mark lower-level causes with these so handlers can map
// them to responses with Is.
var (
	// Request errors
	ErrInvalidRequest = errors.New("invalid or missing request identifier")

	// Order errors
	ErrInvalidOrderData    = errors.New("invalid order data")
	ErrOrderNotFound       = errors.New("order not found")
	ErrDomainRuleViolation = errors.New("order state does not allow this operation")

	// Persistence errors
	ErrPersistenceConflict = errors.New("concurrent update detected")

	// Cancellation
	ErrCancelled = errors.New("command cancelled before completion")
)
