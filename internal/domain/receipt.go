// Package domain defines the core data types exchanged between the
// validation, scoring, and storage layers of the receipt processor.
// These types are plain values: once a Receipt has passed schema
// validation it is treated as immutable and is not retained beyond the
// scoring call.
package domain

// Item is a single purchased line on a receipt.
//
// Fields:
//   - ShortDescription: free-text product description.
//   - Price: decimal currency string with exactly two fractional digits
//     (e.g. "6.49"). Kept as a string; exact decimal parsing happens in
//     the scoring rules that consume it.
type Item struct {
	ShortDescription string `json:"shortDescription" example:"Mountain Dew 12PK"`
	Price            string `json:"price" example:"6.49"`
}

// Receipt is the validated submission describing one purchase.
//
// Fields:
//   - Retailer: store name as printed on the receipt.
//   - PurchaseDate: calendar date in YYYY-MM-DD form.
//   - PurchaseTime: 24-hour time of day in HH:MM form.
//   - Items: ordered, non-empty list of purchased items.
//   - Total: decimal currency string for the receipt total. Trusted
//     input; it is not cross-checked against the item prices.
//
// Date, time, and currency fields keep their wire representation.
// Format checks on them are advisory and run per scoring rule, so one
// malformed field never voids the rest of the receipt's score.
type Receipt struct {
	Retailer     string `json:"retailer" example:"Target"`
	PurchaseDate string `json:"purchaseDate" example:"2022-01-01"`
	PurchaseTime string `json:"purchaseTime" example:"13:01"`
	Items        []Item `json:"items"`
	Total        string `json:"total" example:"35.35"`
}

// PointsRecord is the persisted outcome of scoring one receipt. It is
// created exactly once per accepted receipt, never mutated, and lives
// only for the process lifetime.
type PointsRecord struct {
	ID     string `json:"id" example:"141add05-4415-4938-b5a1-17e0d3171aff"`
	Points int64  `json:"points" example:"28"`
}
