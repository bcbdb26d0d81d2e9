package validation

import (
	"fmt"

	"github.com/camppp/Fetch-BE-Take-Home/internal/domain"
)

// SchemaError reports the first structurally invalid field of a
// submitted receipt. It is the only error the validation stage can
// produce; per-rule format problems are absorbed by the scoring rules
// instead.
type SchemaError struct {
	// Field is the path of the offending field, e.g. "retailer" or
	// "items[2].price".
	Field string
	// Reason is a short human-readable cause.
	Reason string
}

// Error formats the schema violation for API error envelopes.
func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func errMissing(field string) *SchemaError {
	return &SchemaError{Field: field, Reason: "required field is missing"}
}

func errType(field, want string) *SchemaError {
	return &SchemaError{Field: field, Reason: "must be " + want}
}

// receiptFields lists the required top-level keys in check order.
// The first absent key is the one reported.
var receiptFields = []string{"retailer", "purchaseDate", "purchaseTime", "items", "total"}

// ValidateReceipt checks the shape and primitive types of a decoded
// request body and materializes a Receipt from it.
//
// Checks run in order and short-circuit on the first failure:
//  1. raw is a non-nil mapping carrying all five required keys;
//  2. retailer, purchaseDate, purchaseTime, and total are strings;
//  3. items is a non-empty array of objects, each with string
//     shortDescription and string price.
//
// No format (regex) checks happen here. On failure the returned error
// is always a *SchemaError naming the offending field, and no partial
// Receipt is ever returned.
func ValidateReceipt(raw map[string]any) (*domain.Receipt, error) {
	if raw == nil {
		return nil, errType("receipt", "a JSON object")
	}
	for _, f := range receiptFields {
		if _, ok := raw[f]; !ok {
			return nil, errMissing(f)
		}
	}

	rec := &domain.Receipt{}
	var ok bool
	if rec.Retailer, ok = raw["retailer"].(string); !ok {
		return nil, errType("retailer", "a string")
	}
	if rec.PurchaseDate, ok = raw["purchaseDate"].(string); !ok {
		return nil, errType("purchaseDate", "a string")
	}
	if rec.PurchaseTime, ok = raw["purchaseTime"].(string); !ok {
		return nil, errType("purchaseTime", "a string")
	}
	if rec.Total, ok = raw["total"].(string); !ok {
		return nil, errType("total", "a string")
	}

	list, ok := raw["items"].([]any)
	if !ok {
		return nil, errType("items", "an array")
	}
	if len(list) == 0 {
		return nil, &SchemaError{Field: "items", Reason: "must contain at least one item"}
	}

	rec.Items = make([]domain.Item, 0, len(list))
	for i, el := range list {
		obj, ok := el.(map[string]any)
		if !ok {
			return nil, errType(fmt.Sprintf("items[%d]", i), "an object")
		}
		var it domain.Item
		if it.ShortDescription, ok = obj["shortDescription"].(string); !ok {
			return nil, errType(fmt.Sprintf("items[%d].shortDescription", i), "a string")
		}
		if it.Price, ok = obj["price"].(string); !ok {
			return nil, errType(fmt.Sprintf("items[%d].price", i), "a string")
		}
		rec.Items = append(rec.Items, it)
	}

	return rec, nil
}
