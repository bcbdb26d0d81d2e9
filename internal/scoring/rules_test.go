package scoring

import (
	"testing"

	"github.com/camppp/Fetch-BE-Take-Home/internal/domain"
)

// The four canonical receipts with hand-derived expected totals.
func TestScore_CanonicalReceipts(t *testing.T) {
	tests := []struct {
		name    string
		receipt domain.Receipt
		want    int64
	}{
		{
			// 6 (retailer) + 10 (2 pairs) + 3 ("Emils Cheese Pizza")
			// + 3 ("Klarbrunn 12-PK 12 FL OZ") + 6 (odd day) = 28
			name: "target_five_items",
			receipt: domain.Receipt{
				Retailer:     "Target",
				PurchaseDate: "2022-01-01",
				PurchaseTime: "13:01",
				Items: []domain.Item{
					{ShortDescription: "Mountain Dew 12PK", Price: "6.49"},
					{ShortDescription: "Emils Cheese Pizza", Price: "12.25"},
					{ShortDescription: "Knorr Creamy Chicken", Price: "1.26"},
					{ShortDescription: "Doritos Nacho Cheese", Price: "3.35"},
					{ShortDescription: "   Klarbrunn 12-PK 12 FL OZ  ", Price: "12.00"},
				},
				Total: "35.35",
			},
			want: 28,
		},
		{
			// 14 (retailer) + 50 (round dollar) + 25 (quarter)
			// + 10 (2 pairs) + 10 (14:33) = 109
			name: "corner_market_round_dollar",
			receipt: domain.Receipt{
				Retailer:     "M&M Corner Market",
				PurchaseDate: "2022-03-20",
				PurchaseTime: "14:33",
				Items: []domain.Item{
					{ShortDescription: "Gatorade", Price: "2.25"},
					{ShortDescription: "Gatorade", Price: "2.25"},
					{ShortDescription: "Gatorade", Price: "2.25"},
					{ShortDescription: "Gatorade", Price: "2.25"},
				},
				Total: "9.00",
			},
			want: 109,
		},
		{
			// 9 (retailer) + 5 (1 pair) + 1 ("Dasani") = 15
			name: "walgreens_two_items",
			receipt: domain.Receipt{
				Retailer:     "Walgreens",
				PurchaseDate: "2022-01-02",
				PurchaseTime: "08:13",
				Items: []domain.Item{
					{ShortDescription: "Pepsi - 12-oz", Price: "1.25"},
					{ShortDescription: "Dasani", Price: "1.40"},
				},
				Total: "2.65",
			},
			want: 15,
		},
		{
			// 6 (retailer) + 25 (quarter) = 31
			name: "target_single_item",
			receipt: domain.Receipt{
				Retailer:     "Target",
				PurchaseDate: "2022-01-02",
				PurchaseTime: "13:13",
				Items: []domain.Item{
					{ShortDescription: "Pepsi - 12-oz", Price: "1.25"},
				},
				Total: "1.25",
			},
			want: 31,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Score(&tc.receipt); got != tc.want {
				t.Fatalf("Score=%d, want %d", got, tc.want)
			}
			// Scoring is deterministic.
			if got := Score(&tc.receipt); got != tc.want {
				t.Fatalf("second Score=%d, want %d", got, tc.want)
			}
		})
	}
}

func TestScoreRetailer(t *testing.T) {
	tests := []struct {
		name string
		want int64
	}{
		{"Target", 6},
		{"M&M Corner Market", 14},
		{"7-Eleven", 7},
		{"   ", 0},  // no alphanumeric runes
		{"???", 0},  // fails RETAILER pattern
		{"", 0},     // fails RETAILER pattern
	}
	for _, tc := range tests {
		if got := scoreRetailer(tc.name); got != tc.want {
			t.Errorf("scoreRetailer(%q)=%d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestScoreTotal(t *testing.T) {
	tests := []struct {
		total string
		want  int64
	}{
		{"9.00", 75},   // round dollar + quarter multiple
		{"1.25", 25},   // quarter multiple only
		{"0.75", 25},
		{"35.35", 0},
		{"2.65", 0},
		{"0.00", 75},   // zero is round and a multiple
		{"9", 0},       // fails CURRENCY
		{"free", 0},    // fails CURRENCY
		{"", 0},
	}
	for _, tc := range tests {
		if got := scoreTotal(tc.total); got != tc.want {
			t.Errorf("scoreTotal(%q)=%d, want %d", tc.total, got, tc.want)
		}
	}
}

func TestScoreItems_Pairs(t *testing.T) {
	item := domain.Item{ShortDescription: "Gatorade", Price: "2.25"} // length 8, no bonus
	for count, want := range map[int]int64{0: 0, 1: 0, 2: 5, 3: 5, 4: 10, 5: 10} {
		items := make([]domain.Item, count)
		for i := range items {
			items[i] = item
		}
		if got := scoreItems(items); got != want {
			t.Errorf("%d items: scoreItems=%d, want %d", count, got, want)
		}
	}
}

func TestScoreItemDescription(t *testing.T) {
	tests := []struct {
		name string
		item domain.Item
		want int64
	}{
		{"multiple_of_three", domain.Item{ShortDescription: "Emils Cheese Pizza", Price: "12.25"}, 3}, // ceil(2.45)
		{"trimmed_multiple", domain.Item{ShortDescription: "   Klarbrunn 12-PK 12 FL OZ  ", Price: "12.00"}, 3},
		{"exact_ceiling", domain.Item{ShortDescription: "abc", Price: "5.00"}, 1}, // ceil(1.00) stays 1
		{"not_multiple", domain.Item{ShortDescription: "Mountain Dew 12PK", Price: "6.49"}, 0},
		{"empty_after_trim", domain.Item{ShortDescription: "   ", Price: "6.49"}, 0}, // zero is not a positive multiple
		{"invalid_price", domain.Item{ShortDescription: "abc", Price: "5.3"}, 0},
		{"small_price_rounds_up", domain.Item{ShortDescription: "Dasani", Price: "1.40"}, 1}, // ceil(0.28)
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := scoreItemDescription(tc.item); got != tc.want {
				t.Fatalf("scoreItemDescription=%d, want %d", got, tc.want)
			}
		})
	}
}

func TestScorePurchaseDay(t *testing.T) {
	tests := []struct {
		date string
		want int64
	}{
		{"2022-01-01", 6},
		{"2022-01-02", 0},
		{"2022-03-31", 6},
		{"2023-15-15", 0}, // regex shape but not a real date
		{"2023-10-99", 0},
		{"test", 0},
		{"", 0},
	}
	for _, tc := range tests {
		if got := scorePurchaseDay(tc.date); got != tc.want {
			t.Errorf("scorePurchaseDay(%q)=%d, want %d", tc.date, got, tc.want)
		}
	}
}

func TestScorePurchaseTime(t *testing.T) {
	tests := []struct {
		value string
		want  int64
	}{
		{"14:00", 0},  // boundary: exclusive
		{"14:01", 10},
		{"15:59", 10},
		{"16:00", 0},  // boundary: exclusive
		{"13:59", 0},
		{"08:13", 0},
		{"13:99", 0},  // fails TIME pattern
		{"", 0},
	}
	for _, tc := range tests {
		if got := scorePurchaseTime(tc.value); got != tc.want {
			t.Errorf("scorePurchaseTime(%q)=%d, want %d", tc.value, got, tc.want)
		}
	}
}

// A receipt full of malformed fields still scores: each failing rule
// contributes zero without voiding the others.
func TestScore_MalformedFieldsAbsorbed(t *testing.T) {
	rec := domain.Receipt{
		Retailer:     "???",
		PurchaseDate: "not-a-date",
		PurchaseTime: "25:00",
		Items: []domain.Item{
			{ShortDescription: "abc", Price: "bad"},
			{ShortDescription: "abc", Price: "5.00"},
		},
		Total: "free",
	}
	// 5 (pair) + 1 (valid second item) = 6; everything else absorbs to 0.
	if got := Score(&rec); got != 6 {
		t.Fatalf("Score=%d, want 6", got)
	}
}
