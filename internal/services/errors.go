// Package services implements the receipt-processing use-cases that the
// HTTP layer calls into. This file centralizes the service-level error
// values so handlers can map them to HTTP responses consistently.
package services

import "errors"

// ErrReceiptNotFound indicates that no points record exists for the
// requested receipt identifier.
var ErrReceiptNotFound = errors.New("receipt not found")
