// Package services – ReceiptService
//
// This file implements the ReceiptService, the single orchestration
// point of the pipeline: schema validation → scoring → identifier
// assignment → store insertion, and the identifier-keyed lookup.
// Validation, scoring, and id generation are pure and stateless; the
// store is the only shared resource and is concurrency-safe, so the
// service itself needs no synchronization.
package services

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/camppp/Fetch-BE-Take-Home/internal/identity"
	"github.com/camppp/Fetch-BE-Take-Home/internal/scoring"
	"github.com/camppp/Fetch-BE-Take-Home/internal/store"
	"github.com/camppp/Fetch-BE-Take-Home/internal/validation"
)

// tracer is the package-level tracer for service spans.
var tracer = otel.Tracer("github.com/camppp/Fetch-BE-Take-Home/internal/services")

// ReceiptService implements the two operations the transport layer
// depends on: Process and Lookup. It is safe for concurrent use.
type ReceiptService struct {
	// Store keeps the id → points mapping. Injected so a different
	// backend never changes identifier semantics.
	Store store.PointsStore
	// IDs issues the opaque identifier for each accepted receipt.
	IDs identity.Generator
}

// NewReceiptService wires a ReceiptService to its store and identifier
// generator.
func NewReceiptService(st store.PointsStore, ids identity.Generator) *ReceiptService {
	return &ReceiptService{Store: st, IDs: ids}
}

// Process validates a decoded submission, scores it, and persists the
// total under a freshly generated identifier, which it returns.
//
// Semantics:
//   - A schema failure returns a *validation.SchemaError naming the
//     first offending field; nothing is scored or stored.
//   - Per-rule field-format problems do not fail Process; the affected
//     rules simply contribute zero points.
//   - Process is deliberately non-idempotent: resubmitting the same
//     receipt yields a new identifier and a new record.
func (s *ReceiptService) Process(ctx context.Context, raw map[string]any) (string, error) {
	_, span := tracer.Start(ctx, "receipt.process")
	defer span.End()

	rec, err := validation.ValidateReceipt(raw)
	if err != nil {
		receiptsProcessed.WithLabelValues("rejected").Inc()
		span.SetAttributes(attribute.String("receipt.reject_reason", err.Error()))
		return "", err
	}

	points := scoring.Score(rec)
	id := s.IDs.NextID()
	// First write wins; a generator collision would leave the earlier
	// record intact, an accepted risk given the 128-bit space.
	s.Store.Put(id, points)

	receiptsProcessed.WithLabelValues("ok").Inc()
	receiptPoints.Observe(float64(points))
	span.SetAttributes(
		attribute.Int64("receipt.points", points),
		attribute.Int("receipt.items", len(rec.Items)),
	)
	return id, nil
}

// Lookup returns the stored point total for id, or ErrReceiptNotFound
// when no record exists. Lookups are idempotent: the answer for an id
// never changes for the process lifetime.
func (s *ReceiptService) Lookup(ctx context.Context, id string) (int64, error) {
	_, span := tracer.Start(ctx, "receipt.lookup", trace.WithAttributes(
		attribute.String("receipt.id", id),
	))
	defer span.End()

	points, err := s.Store.Get(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return 0, ErrReceiptNotFound
		}
		return 0, err
	}
	return points, nil
}
