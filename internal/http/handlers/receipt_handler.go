// Receipt HTTP handlers.
//
// This file exposes the two public endpoints:
//   - POST /receipts/process       (validate, score, and store a receipt)
//   - GET  /receipts/{id}/points   (look up a stored point total)
//
// Handlers are transport-thin: they decode the wire payload, call the
// receipt service, and translate results into HTTP responses.
package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/camppp/Fetch-BE-Take-Home/internal/services"
	"github.com/camppp/Fetch-BE-Take-Home/internal/validation"
)

// ReceiptService defines the receipt use-cases consumed by the HTTP
// handlers. Implementations must be safe for concurrent use.
type ReceiptService interface {
	// Process validates and scores a decoded submission and returns
	// the identifier of the stored result.
	Process(ctx context.Context, raw map[string]any) (string, error)
	// Lookup returns the stored point total for an identifier.
	Lookup(ctx context.Context, id string) (int64, error)
}

// Handlers groups the HTTP endpoints for receipts. It depends on an
// abstract service interface to keep transport concerns separate from
// the scoring pipeline.
type Handlers struct {
	receiptSvc ReceiptService
}

// New constructs a Handlers instance bound to the given service.
func New(receiptSvc ReceiptService) *Handlers {
	return &Handlers{receiptSvc: receiptSvc}
}

//
// DTOs
//

// ProcessReceiptResponse carries the identifier of a stored receipt.
type ProcessReceiptResponse struct {
	ID string `json:"id" example:"141add05-4415-4938-b5a1-17e0d3171aff"`
}

// PointsResponse carries the point total awarded to a receipt.
type PointsResponse struct {
	Points int64 `json:"points" example:"28"`
}

//
// Handlers
//

// ProcessReceipt godoc
// @ID          processReceipt
// @Summary     Submit a receipt for scoring
// @Description Validates the receipt, computes its reward points, and returns an identifier for later lookup.
// @Tags        Receipts
// @Accept      json
// @Produce     json
//
// @Param       body  body  domain.Receipt  true  "Receipt payload"
//
// @Success     200  {object}  handlers.ProcessReceiptResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Malformed body or schema violation"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /receipts/process [post]
func (h *Handlers) ProcessReceipt(c *gin.Context) {
	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	id, err := h.receiptSvc.Process(c.Request.Context(), raw)
	if err != nil {
		var schemaErr *validation.SchemaError
		if errors.As(err, &schemaErr) {
			fail(c, http.StatusBadRequest, ErrCodeInvalidReceipt, schemaErr.Error())
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, ProcessReceiptResponse{ID: id})
}

// GetPoints godoc
// @ID          getPoints
// @Summary     Look up awarded points
// @Description Returns the point total previously computed for the given receipt identifier.
// @Tags        Receipts
// @Produce     json
//
// @Param       id  path  string  true  "Receipt ID"  example(141add05-4415-4938-b5a1-17e0d3171aff)
//
// @Success     200  {object}  handlers.PointsResponse
// @Failure     404  {object}  handlers.ErrorResponse  "Unknown receipt ID"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /receipts/{id}/points [get]
func (h *Handlers) GetPoints(c *gin.Context) {
	points, err := h.receiptSvc.Lookup(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrReceiptNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "receipt not found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, PointsResponse{Points: points})
}
