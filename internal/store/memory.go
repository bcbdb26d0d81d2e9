// Package store holds the computed point totals keyed by receipt
// identifier. The store is the only shared mutable state in the
// process: it is volatile, single-process, and guarded by one lock so
// concurrent requests never observe a partially written record.
package store

import (
	"errors"
	"sync"
)

// ErrNotFound is returned by Get when no record exists for an id.
var ErrNotFound = errors.New("receipt not found")

// PointsStore maps receipt identifiers to computed point totals.
// Implementations must be safe for concurrent use and must guarantee
// that a Get issued after a completed Put for the same id observes
// that record.
type PointsStore interface {
	// Put inserts a record and reports whether it was stored. When the
	// id is already present the existing record is retained unchanged
	// (first write wins) and Put returns false.
	Put(id string, points int64) bool
	// Get returns the stored total or ErrNotFound. It has no side
	// effects and is stable for the process lifetime.
	Get(id string) (int64, error)
}

// MemoryStore is the in-memory PointsStore. Records are removed only
// by process termination; there is no delete operation.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]int64
}

// NewMemoryStore returns an empty MemoryStore ready for use.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]int64)}
}

// Put implements PointsStore with first-write-wins semantics.
func (s *MemoryStore) Put(id string, points int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.records[id]; exists {
		return false
	}
	s.records[id] = points
	return true
}

// Get implements PointsStore.
func (s *MemoryStore) Get(id string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	points, ok := s.records[id]
	if !ok {
		return 0, ErrNotFound
	}
	return points, nil
}

// Len reports the number of stored records.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
