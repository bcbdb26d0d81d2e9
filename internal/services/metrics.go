package services

import "github.com/prometheus/client_golang/prometheus"

var (
	// receiptsProcessed counts accepted receipts by outcome ("ok" or
	// "rejected"). Rejections are schema failures; per-rule format
	// problems never reject and are invisible here.
	receiptsProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "receipts_processed_total",
			Help: "Total number of processed receipt submissions.",
		},
		[]string{"outcome"},
	)

	// receiptPoints observes the distribution of awarded point totals.
	receiptPoints = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "receipt_points",
			Help:    "Points awarded per accepted receipt.",
			Buckets: []float64{5, 10, 25, 50, 75, 100, 150, 250, 500},
		},
	)
)

func init() {
	prometheus.MustRegister(receiptsProcessed, receiptPoints)
}
