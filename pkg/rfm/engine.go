package rfm

import (
	"context"
	"runtime"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"rfm-engine/pkg/models"
)

// topProductLimit caps the product-affinity ranking per segment.
const topProductLimit = 5

// Run executes the full segmentation pipeline over one company's
// transaction snapshot: aggregate per-customer metrics, compute the
// population breakpoints, score and label every customer, then compile
// the segment statistics, product affinities and summary.
//
// analysisDate is the cutoff the caller fetched the snapshot against;
// recency is measured in whole days from it. The engine is a pure
// function of (txs, analysisDate): it holds no state across runs and an
// empty snapshot returns the zero-valued skeleton, not an error.
func Run(ctx context.Context, txs []models.TransactionRecord, analysisDate time.Time, logger zerolog.Logger) (*models.Result, error) {
	res := &models.Result{
		AnalysisID:  uuid.NewString(),
		Customers:   []models.RFMCustomer{},
		Segments:    map[models.SegmentLabel]models.SegmentStats{},
		Summary:     models.Summary{AnalysisDate: analysisDate},
		TopProducts: map[models.SegmentLabel][]models.ProductAffinityEntry{},
	}
	runLog := logger.With().
		Str("analysis_id", res.AnalysisID).
		Time("analysis_date", analysisDate).
		Logger()

	if len(txs) == 0 {
		runLog.Info().Msg("empty transaction snapshot, returning skeleton result")
		return res, nil
	}

	metrics := AggregateCustomers(txs)
	customers := make([]models.RFMCustomer, 0, len(metrics))
	for _, m := range metrics {
		customers = append(customers, models.RFMCustomer{
			CustomerMetric: *m,
			RecencyDays:    wholeDays(m.LastPurchaseDate, analysisDate),
		})
	}
	// Map iteration order is random; fix the output order here so two
	// runs over the same snapshot are byte-identical.
	sort.Slice(customers, func(i, j int) bool {
		return customers[i].CustomerID < customers[j].CustomerID
	})

	// Barrier: breakpoints need the complete population. Nothing below
	// may start before this line.
	bp := ComputeBreakpoints(customers)
	runLog.Debug().
		Int("customers", len(customers)).
		Float64("recency_p50", bp.Recency.P50).
		Float64("frequency_p50", bp.Frequency.P50).
		Float64("monetary_p50", bp.Monetary.P50).
		Msg("population breakpoints computed")

	if err := scoreAll(ctx, customers, bp); err != nil {
		return nil, err
	}

	// Second barrier: grouping needs every customer scored.
	res.Customers = customers
	res.Segments = AggregateSegments(customers)
	res.TopProducts = TopProducts(customers, topProductLimit)
	res.Summary = summarize(customers, analysisDate)

	runLog.Info().
		Int("customers", len(customers)).
		Int("segments", len(res.Segments)).
		Float64("total_revenue", res.Summary.TotalRevenue).
		Msg("segmentation complete")
	return res, nil
}

// scoreAll scores and labels every customer. Scoring is independent per
// customer once the breakpoints exist, so the slice is fanned out over
// fixed index ranges; each goroutine writes only its own range, keeping
// the result deterministic.
func scoreAll(ctx context.Context, customers []models.RFMCustomer, bp models.QuantileBreakpoints) error {
	workers := runtime.GOMAXPROCS(0)
	if workers > len(customers) {
		workers = len(customers)
	}
	chunk := (len(customers) + workers - 1) / workers

	g, ctx := errgroup.WithContext(ctx)
	for start := 0; start < len(customers); start += chunk {
		end := start + chunk
		if end > len(customers) {
			end = len(customers)
		}
		part := customers[start:end]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for i := range part {
				ScoreCustomer(&part[i], bp)
			}
			return nil
		})
	}
	return g.Wait()
}

// summarize computes the whole-population means, independent of
// segmentation.
func summarize(customers []models.RFMCustomer, analysisDate time.Time) models.Summary {
	s := models.Summary{
		TotalCustomers: len(customers),
		AnalysisDate:   analysisDate,
	}
	if len(customers) == 0 {
		return s
	}
	var recency, frequency float64
	for _, c := range customers {
		s.TotalRevenue += c.Monetary
		recency += float64(c.RecencyDays)
		frequency += float64(c.Frequency)
	}
	n := float64(len(customers))
	s.AverageRecency = recency / n
	s.AverageFrequency = frequency / n
	s.AverageMonetary = s.TotalRevenue / n
	return s
}

// wholeDays is the recency in whole days between the last purchase and
// the analysis date.
func wholeDays(last, at time.Time) int {
	return int(at.Sub(last).Hours() / 24)
}
