package domain

import "errors"

// Sentinel errors for domain-level error handling.
// The handler layer maps these to HTTP status codes.
var (
	ErrContractNotFound = errors.New("contract_not_found")
)

// ValidationError represents an order construction failure. It is the
// only error that order validation produces; the message identifies
// the first violated rule.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
