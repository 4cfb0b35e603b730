package rfm

import (
	"math"
	"testing"

	"rfm-engine/pkg/models"
)

func scored(customer string, label models.SegmentLabel, recency, frequency int, monetary float64, txs ...models.TransactionRecord) models.RFMCustomer {
	return models.RFMCustomer{
		CustomerMetric: models.CustomerMetric{
			CustomerID:   customer,
			Frequency:    frequency,
			Monetary:     monetary,
			Transactions: txs,
		},
		RecencyDays: recency,
		Segment:     label,
	}
}

func TestAggregateSegments_Stats(t *testing.T) {
	customers := []models.RFMCustomer{
		scored("c1", models.SegmentChampions, 2, 10, 500000),
		scored("c2", models.SegmentChampions, 4, 8, 300000),
		scored("c3", models.SegmentLost, 200, 1, 50000),
		scored("c4", models.SegmentLost, 100, 1, 30000),
	}
	segments := AggregateSegments(customers)

	if len(segments) != 2 {
		t.Fatalf("got %d segments, want 2", len(segments))
	}
	ch := segments[models.SegmentChampions]
	if ch.Count != 2 || ch.Percentage != 50 || ch.Revenue != 800000 {
		t.Fatalf("champions: %+v", ch)
	}
	if ch.AvgRecency != 3 || ch.AvgFrequency != 9 || ch.AvgMonetary != 400000 {
		t.Fatalf("champions averages: %+v", ch)
	}

	lost := segments[models.SegmentLost]
	if lost.AvgRecency != 150 || lost.AvgMonetary != 40000 {
		t.Fatalf("lost averages: %+v", lost)
	}
}

func TestAggregateSegments_PercentagesSumTo100(t *testing.T) {
	customers := []models.RFMCustomer{
		scored("c1", models.SegmentChampions, 1, 1, 1),
		scored("c2", models.SegmentLost, 1, 1, 1),
		scored("c3", models.SegmentLoyal, 1, 1, 1),
		scored("c4", models.SegmentLoyal, 1, 1, 1),
		scored("c5", models.SegmentOthers, 1, 1, 1),
		scored("c6", models.SegmentOthers, 1, 1, 1),
		scored("c7", models.SegmentOthers, 1, 1, 1),
	}
	sum := 0.0
	for _, st := range AggregateSegments(customers) {
		sum += st.Percentage
	}
	if math.Abs(sum-100) > 1e-9 {
		t.Fatalf("percentages sum to %v, want 100", sum)
	}
}

func TestAggregateSegments_Sparse(t *testing.T) {
	customers := []models.RFMCustomer{
		scored("c1", models.SegmentChampions, 1, 1, 1),
	}
	segments := AggregateSegments(customers)
	if _, ok := segments[models.SegmentLost]; ok {
		t.Fatal("empty segment should be absent, not zero-padded")
	}
}

func TestTopProducts_RankAndCut(t *testing.T) {
	txs := []models.TransactionRecord{
		tx("t1", "c1", "2024-01-01",
			item("p1", "Kopi", 10, 100000),
			item("p2", "Teh", 8, 40000),
			item("p3", "Gula", 6, 30000),
		),
		tx("t2", "c1", "2024-02-01",
			item("p4", "Susu", 4, 60000),
			item("p5", "Roti", 2, 20000),
			item("p6", "Keju", 1, 50000),
		),
	}
	customers := []models.RFMCustomer{
		scored("c1", models.SegmentChampions, 1, 2, 300000, txs...),
	}

	top := TopProducts(customers, 5)
	entries := top[models.SegmentChampions]
	if len(entries) != 5 {
		t.Fatalf("got %d entries, want 5", len(entries))
	}
	if entries[0].ProductName != "Kopi" || entries[0].Quantity != 10 {
		t.Fatalf("first entry: %+v", entries[0])
	}
	// p6 (qty 1) is the one cut
	for _, e := range entries {
		if e.ProductName == "Keju" {
			t.Fatal("lowest-quantity product should have been cut")
		}
	}
	// shares of total quantity 31
	if math.Abs(entries[0].Percentage-float64(10)/31*100) > 1e-9 {
		t.Fatalf("share: %v", entries[0].Percentage)
	}
}

func TestTopProducts_SameNameDifferentID(t *testing.T) {
	txs := []models.TransactionRecord{
		tx("t1", "c1", "2024-01-01",
			item("p1", "Kopi", 5, 50000),
			item("p9", "Kopi", 3, 36000),
		),
	}
	customers := []models.RFMCustomer{
		scored("c1", models.SegmentChampions, 1, 1, 86000, txs...),
	}
	entries := TopProducts(customers, 5)[models.SegmentChampions]
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2 (grouping must key on product id)", len(entries))
	}
	if entries[0].Quantity != 5 || entries[1].Quantity != 3 {
		t.Fatalf("quantities: %+v", entries)
	}
}

func TestTopProducts_ZeroQuantityGuard(t *testing.T) {
	txs := []models.TransactionRecord{
		tx("t1", "c1", "2024-01-01", item("p1", "Kopi", 0, 0)),
	}
	customers := []models.RFMCustomer{
		scored("c1", models.SegmentChampions, 1, 1, 0, txs...),
	}
	entries := TopProducts(customers, 5)[models.SegmentChampions]
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0].Percentage != 0 {
		t.Fatalf("share: got %v, want 0", entries[0].Percentage)
	}
}

func TestTopProducts_TieOrderDeterministic(t *testing.T) {
	txs := []models.TransactionRecord{
		tx("t1", "c1", "2024-01-01",
			item("p2", "Teh", 5, 25000),
			item("p1", "Kopi", 5, 50000),
		),
	}
	customers := []models.RFMCustomer{
		scored("c1", models.SegmentChampions, 1, 1, 75000, txs...),
	}
	for i := 0; i < 10; i++ {
		entries := TopProducts(customers, 5)[models.SegmentChampions]
		if entries[0].ProductName != "Kopi" {
			t.Fatalf("run %d: tie not broken by product id: %+v", i, entries)
		}
	}
}
