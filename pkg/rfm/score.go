package rfm

import (
	"fmt"

	"rfm-engine/pkg/models"
)

// ScoreCustomer fills in the ordinal scores, the segment code and label,
// and the average order value of one customer against the population
// breakpoints. Safe to call concurrently for distinct customers.
func ScoreCustomer(c *models.RFMCustomer, bp models.QuantileBreakpoints) {
	c.RScore = scoreRecency(float64(c.RecencyDays), bp.Recency)
	c.FScore = scoreValue(float64(c.Frequency), bp.Frequency)
	c.MScore = scoreValue(c.Monetary, bp.Monetary)
	c.RFMSegment = fmt.Sprintf("%d%d%d", c.RScore, c.FScore, c.MScore)
	c.RFMScore = c.RScore + c.FScore + c.MScore
	c.Segment = Label(c.RScore, c.FScore, c.MScore)
	c.AverageOrderValue = c.Monetary / float64(c.Frequency)
}

// scoreRecency is inverted: a smaller recency means a more recent
// purchase and scores higher.
func scoreRecency(days float64, q models.Quartiles) int {
	switch {
	case days <= q.P25:
		return 4
	case days <= q.P50:
		return 3
	case days <= q.P75:
		return 2
	default:
		return 1
	}
}

// scoreValue is direct: higher frequency or spend scores higher.
func scoreValue(v float64, q models.Quartiles) int {
	switch {
	case v <= q.P25:
		return 1
	case v <= q.P50:
		return 2
	case v <= q.P75:
		return 3
	default:
		return 4
	}
}
