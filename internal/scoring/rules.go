// Package scoring implements the reward-points engine. Score is a pure
// function over a validated Receipt: seven independent rules each
// contribute a non-negative amount and the contributions are summed.
//
// Every rule re-checks the format of the field it consumes (via the
// validation pattern table) and contributes zero when the field is
// malformed; no rule can abort another, and no rule returns an error.
// Currency comparisons use exact decimal arithmetic so boundary totals
// such as ".25" or ".75" never drift the way binary floats would.
package scoring

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/camppp/Fetch-BE-Take-Home/internal/domain"
	"github.com/camppp/Fetch-BE-Take-Home/internal/validation"
)

// Rule constants. Changing a reward amount should only ever mean
// touching one of these.
const (
	pointsPerAlnumRune      = 1
	pointsRoundDollarTotal  = 50
	pointsQuarterTotal      = 25
	pointsPerItemPair       = 5
	pointsOddPurchaseDay    = 6
	pointsAfternoonPurchase = 10

	// descriptionLengthFactor gates the per-item description bonus:
	// the trimmed description length must be a positive multiple of it.
	descriptionLengthFactor = 3

	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

var (
	quarter         = decimal.New(25, -2)  // 0.25
	descriptionRate = decimal.New(2, -1)   // 0.2

	afternoonOpen  = 14 * 60 // minutes, exclusive
	afternoonClose = 16 * 60 // minutes, exclusive
)

// Score computes the total reward points for a receipt. It is
// deterministic, never negative, and safe for concurrent use.
func Score(r *domain.Receipt) int64 {
	var pts int64
	pts += scoreRetailer(r.Retailer)
	pts += scoreTotal(r.Total)
	pts += scoreItems(r.Items)
	pts += scorePurchaseDay(r.PurchaseDate)
	pts += scorePurchaseTime(r.PurchaseTime)
	return pts
}

// scoreRetailer awards one point per alphanumeric rune in the retailer
// name. A name outside the RETAILER pattern contributes nothing.
func scoreRetailer(name string) int64 {
	if !validation.Matches(validation.PatternRetailer, name) {
		return 0
	}
	var pts int64
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			pts += pointsPerAlnumRune
		}
	}
	return pts
}

// scoreTotal awards 50 points for a round-dollar total and 25 points
// when the total is an exact multiple of 0.25. Both checks run on the
// parsed decimal value, never on the string.
func scoreTotal(total string) int64 {
	if !validation.Matches(validation.PatternCurrency, total) {
		return 0
	}
	amt, err := decimal.NewFromString(total)
	if err != nil {
		return 0
	}
	var pts int64
	if amt.IsInteger() {
		pts += pointsRoundDollarTotal
	}
	if amt.Mod(quarter).IsZero() {
		pts += pointsQuarterTotal
	}
	return pts
}

// scoreItems awards 5 points per complete pair of items, plus the
// per-item description bonus.
func scoreItems(items []domain.Item) int64 {
	pts := int64(len(items)/2) * pointsPerItemPair
	for _, it := range items {
		pts += scoreItemDescription(it)
	}
	return pts
}

// scoreItemDescription awards ceil(price * 0.2) when the trimmed
// description length is a positive multiple of three. An item whose
// price fails the CURRENCY pattern contributes nothing regardless of
// its description.
func scoreItemDescription(it domain.Item) int64 {
	n := utf8.RuneCountInString(strings.TrimSpace(it.ShortDescription))
	if n == 0 || n%descriptionLengthFactor != 0 {
		return 0
	}
	if !validation.Matches(validation.PatternCurrency, it.Price) {
		return 0
	}
	price, err := decimal.NewFromString(it.Price)
	if err != nil {
		return 0
	}
	return price.Mul(descriptionRate).Ceil().IntPart()
}

// scorePurchaseDay awards 6 points when the day of the month is odd.
// The date must match the DATE pattern and be a real calendar date;
// "2023-15-15" passes the regex but not the parse and scores zero.
func scorePurchaseDay(date string) int64 {
	if !validation.Matches(validation.PatternDate, date) {
		return 0
	}
	d, err := time.Parse(dateLayout, date)
	if err != nil {
		return 0
	}
	if d.Day()%2 == 1 {
		return pointsOddPurchaseDay
	}
	return 0
}

// scorePurchaseTime awards 10 points when the purchase happened
// strictly between 14:00 and 16:00. Both boundaries are exclusive:
// exactly 14:00 or 16:00 scores zero.
func scorePurchaseTime(value string) int64 {
	if !validation.Matches(validation.PatternTime, value) {
		return 0
	}
	t, err := time.Parse(timeLayout, value)
	if err != nil {
		return 0
	}
	mins := t.Hour()*60 + t.Minute()
	if mins > afternoonOpen && mins < afternoonClose {
		return pointsAfternoonPurchase
	}
	return 0
}
