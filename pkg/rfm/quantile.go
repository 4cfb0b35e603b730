package rfm

import (
	"sort"

	"rfm-engine/pkg/models"
)

// ComputeBreakpoints derives the 25th/50th/75th percentile thresholds of
// recency, frequency and monetary value over the full customer
// population. Nearest-rank method: sort ascending, take the value at
// index floor(p*n). Must run after every customer has been aggregated;
// with n = 1 all three breakpoints collapse to that customer's values.
func ComputeBreakpoints(customers []models.RFMCustomer) models.QuantileBreakpoints {
	n := len(customers)
	recency := make([]float64, n)
	frequency := make([]float64, n)
	monetary := make([]float64, n)
	for i, c := range customers {
		recency[i] = float64(c.RecencyDays)
		frequency[i] = float64(c.Frequency)
		monetary[i] = c.Monetary
	}
	return models.QuantileBreakpoints{
		Recency:   quartiles(recency),
		Frequency: quartiles(frequency),
		Monetary:  quartiles(monetary),
	}
}

func quartiles(values []float64) models.Quartiles {
	sort.Float64s(values)
	return models.Quartiles{
		P25: nearestRank(values, 0.25),
		P50: nearestRank(values, 0.50),
		P75: nearestRank(values, 0.75),
	}
}

func nearestRank(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	idx := int(p * float64(len(sorted)))
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}
