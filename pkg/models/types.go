package models

import (
	"time"
)

/*
LOAD → raw input types fetched from the transaction store.
*/

// LineItem is one product line inside a transaction.
type LineItem struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	Subtotal    float64 `json:"subtotal"`
}

// TransactionRecord is one raw sale as read from the store. The engine
// never mutates it.
type TransactionRecord struct {
	ID            string     `json:"id"`
	CustomerID    string     `json:"customerId"`
	CustomerName  string     `json:"customerName"`
	CustomerEmail string     `json:"customerEmail"`
	Date          time.Time  `json:"date"`
	Items         []LineItem `json:"items"`
}

// Total sums the line subtotals of the transaction.
func (t TransactionRecord) Total() float64 {
	total := 0.0
	for _, it := range t.Items {
		total += it.Subtotal
	}
	return total
}

/*
COMPUTE → per-customer records derived during the analysis.
*/

// CustomerMetric is the folded behavior of one customer: latest purchase,
// purchase count and lifetime spend, plus the retained transactions needed
// later for product-affinity extraction. A customer only exists here if
// they have at least one transaction, so Frequency >= 1 always holds.
type CustomerMetric struct {
	CustomerID       string              `json:"customerId"`
	Name             string              `json:"name"`
	Email            string              `json:"email"`
	LastPurchaseDate time.Time           `json:"lastPurchaseDate"`
	Frequency        int                 `json:"frequency"`
	Monetary         float64             `json:"monetary"`
	Transactions     []TransactionRecord `json:"-"`
}

// Quartiles holds the 25th/50th/75th percentile values of one metric.
// P25 <= P50 <= P75 for any population of size >= 1.
type Quartiles struct {
	P25 float64 `json:"p25"`
	P50 float64 `json:"p50"`
	P75 float64 `json:"p75"`
}

// QuantileBreakpoints are the population-relative thresholds for one run,
// computed once over the full customer population.
type QuantileBreakpoints struct {
	Recency   Quartiles `json:"recency"`
	Frequency Quartiles `json:"frequency"`
	Monetary  Quartiles `json:"monetary"`
}

// RFMCustomer is a fully scored customer. RFMSegment is the concatenated
// three-digit score code ("432"), RFMScore the sum of the three scores.
type RFMCustomer struct {
	CustomerMetric

	RecencyDays       int          `json:"recency"`
	RScore            int          `json:"rScore"`
	FScore            int          `json:"fScore"`
	MScore            int          `json:"mScore"`
	RFMSegment        string       `json:"rfmSegment"`
	RFMScore          int          `json:"rfmScore"`
	Segment           SegmentLabel `json:"label"`
	AverageOrderValue float64      `json:"averageOrderValue"`
}

/*
REPORT → aggregated output consumed by the reporting and insight layers.
*/

// SegmentStats are the aggregate figures of one segment.
type SegmentStats struct {
	Count        int     `json:"count"`
	Percentage   float64 `json:"percentage"`
	Revenue      float64 `json:"revenue"`
	AvgRecency   float64 `json:"avgRecency"`
	AvgFrequency float64 `json:"avgFrequency"`
	AvgMonetary  float64 `json:"avgMonetary"`
}

// ProductAffinityEntry is one ranked product within a segment. Percentage
// is the share of the segment's total purchased quantity.
type ProductAffinityEntry struct {
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	Revenue     float64 `json:"revenue"`
	Percentage  float64 `json:"percentage"`
}

// Summary holds whole-population figures, independent of segmentation.
type Summary struct {
	TotalCustomers   int       `json:"totalCustomers"`
	TotalRevenue     float64   `json:"totalRevenue"`
	AverageRecency   float64   `json:"averageRecency"`
	AverageFrequency float64   `json:"averageFrequency"`
	AverageMonetary  float64   `json:"averageMonetary"`
	AnalysisDate     time.Time `json:"analysisDate"`
}

// Result is the compiled analysis payload. AnalysisID correlates the log
// lines of one run and is not part of the exported payload.
type Result struct {
	AnalysisID  string                                  `json:"-"`
	Customers   []RFMCustomer                           `json:"customers"`
	Segments    map[SegmentLabel]SegmentStats           `json:"segments"`
	Summary     Summary                                 `json:"summary"`
	TopProducts map[SegmentLabel][]ProductAffinityEntry `json:"topProducts"`
}
