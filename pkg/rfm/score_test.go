package rfm

import (
	"testing"

	"rfm-engine/pkg/models"
)

var testQuartiles = models.Quartiles{P25: 10, P50: 20, P75: 30}

func TestScoreRecency_Inverted(t *testing.T) {
	cases := []struct {
		days float64
		want int
	}{
		{0, 4}, {10, 4}, // <= p25
		{11, 3}, {20, 3}, // <= p50
		{21, 2}, {30, 2}, // <= p75
		{31, 1}, {400, 1},
	}
	for _, c := range cases {
		if got := scoreRecency(c.days, testQuartiles); got != c.want {
			t.Fatalf("scoreRecency(%v): got %d, want %d", c.days, got, c.want)
		}
	}
}

func TestScoreValue_Direct(t *testing.T) {
	cases := []struct {
		v    float64
		want int
	}{
		{0, 1}, {10, 1},
		{11, 2}, {20, 2},
		{21, 3}, {30, 3},
		{31, 4}, {1e9, 4},
	}
	for _, c := range cases {
		if got := scoreValue(c.v, testQuartiles); got != c.want {
			t.Fatalf("scoreValue(%v): got %d, want %d", c.v, got, c.want)
		}
	}
}

func TestScoreCustomer_Fields(t *testing.T) {
	bp := models.QuantileBreakpoints{
		Recency:   models.Quartiles{P25: 10, P50: 20, P75: 30},
		Frequency: models.Quartiles{P25: 1, P50: 2, P75: 4},
		Monetary:  models.Quartiles{P25: 100, P50: 200, P75: 400},
	}
	c := models.RFMCustomer{
		CustomerMetric: models.CustomerMetric{Frequency: 5, Monetary: 250},
		RecencyDays:    5,
	}
	ScoreCustomer(&c, bp)

	if c.RScore != 4 || c.FScore != 4 || c.MScore != 3 {
		t.Fatalf("scores: got (%d,%d,%d), want (4,4,3)", c.RScore, c.FScore, c.MScore)
	}
	if c.RFMSegment != "443" {
		t.Fatalf("segment code: got %q, want 443", c.RFMSegment)
	}
	if c.RFMScore != 11 {
		t.Fatalf("rfm score: got %d, want 11", c.RFMScore)
	}
	if c.Segment != models.SegmentChampions {
		t.Fatalf("label: got %q", c.Segment)
	}
	if c.AverageOrderValue != 50 {
		t.Fatalf("aov: got %v, want 50", c.AverageOrderValue)
	}
}

// With a single customer every threshold equals their own value, so all
// scores land deterministically on the <= branches.
func TestScoreCustomer_SinglePopulation(t *testing.T) {
	cs := customersWith([]int{17}, []int{3}, []float64{42000})
	bp := ComputeBreakpoints(cs)
	ScoreCustomer(&cs[0], bp)
	if cs[0].RScore != 4 || cs[0].FScore != 1 || cs[0].MScore != 1 {
		t.Fatalf("scores: got (%d,%d,%d), want (4,1,1)", cs[0].RScore, cs[0].FScore, cs[0].MScore)
	}
}
