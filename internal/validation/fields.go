// Package validation implements the two acceptance stages for submitted
// receipts: structural schema validation (schema.go), which is mandatory
// and runs once per submission, and named-pattern field validation
// (this file), which scoring rules invoke lazily right before they
// consume a field.
//
// Field validation is advisory: a rule whose field fails its pattern
// contributes zero points instead of rejecting the receipt. Keeping the
// patterns in one named table means a rule can tighten or loosen its
// format expectations without touching the schema stage.
package validation

import "regexp"

// Pattern names one of the fixed field formats used by scoring rules.
type Pattern string

// The complete pattern table. Rules reference fields by these names only.
const (
	// PatternRetailer accepts names built from word characters, spaces,
	// ampersands, apostrophes, dots, and dashes.
	PatternRetailer Pattern = "RETAILER"
	// PatternCurrency accepts non-negative decimal amounts with exactly
	// two fractional digits, e.g. "0.00" or "35.35".
	PatternCurrency Pattern = "CURRENCY"
	// PatternDate accepts dash-separated YYYY-MM-DD dates.
	PatternDate Pattern = "DATE"
	// PatternTime accepts zero-padded 24-hour HH:MM clock times.
	PatternTime Pattern = "TIME"
)

var patterns = map[Pattern]*regexp.Regexp{
	PatternRetailer: regexp.MustCompile(`^[\w\s&'.-]+$`),
	PatternCurrency: regexp.MustCompile(`^\d+\.\d{2}$`),
	PatternDate:     regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`),
	PatternTime:     regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`),
}

// Matches reports whether value conforms to the named pattern.
// An unknown pattern name never matches.
func Matches(p Pattern, value string) bool {
	re, ok := patterns[p]
	return ok && re.MatchString(value)
}
