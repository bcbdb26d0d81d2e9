// Package identity produces the opaque tokens under which scored
// receipts are stored. Generation is deliberately decoupled from the
// store: collision risk depends only on the identifier space, never on
// the store implementation.
package identity

import "github.com/google/uuid"

// Generator issues a statistically unique identifier per call. Each
// call is independent; implementations hold no state beyond the random
// source and must be safe for concurrent use.
type Generator interface {
	NextID() string
}

// UUIDGenerator issues random 128-bit UUIDv4 identifiers in canonical
// string form. Collisions are treated as negligible and are not
// re-checked against the store.
type UUIDGenerator struct{}

// NextID returns a fresh UUIDv4 string.
func (UUIDGenerator) NextID() string { return uuid.NewString() }
