// Package handlers defines HTTP-layer error codes used across the API.
//
// These constants give clients a stable, machine-readable taxonomy that
// supplements the human-readable message in the error envelope. Codes
// are lowercase snake_case; generic codes mirror common HTTP status
// semantics, domain codes cover cases a status alone cannot convey.
package handlers

const (
	ErrCodeBadRequest       = "bad_request"
	ErrCodeNotFound         = "not_found"
	ErrCodeInternal         = "internal_error"
	ErrCodeMethodNotAllowed = "method_not_allowed"

	// Domain-specific:
	ErrCodeInvalidReceipt = "invalid_receipt"
)
