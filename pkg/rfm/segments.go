package rfm

import (
	"sort"

	"rfm-engine/pkg/models"
)

// AggregateSegments groups scored customers by label and computes the
// per-segment counts, revenue, share of the population and mean metrics.
// Labels with no members are absent from the map. Percentages across all
// groups sum to 100 up to floating-point rounding.
func AggregateSegments(customers []models.RFMCustomer) map[models.SegmentLabel]models.SegmentStats {
	type acc struct {
		count     int
		revenue   float64
		recency   float64
		frequency float64
		monetary  float64
	}
	accs := make(map[models.SegmentLabel]*acc)
	for _, c := range customers {
		a, ok := accs[c.Segment]
		if !ok {
			a = &acc{}
			accs[c.Segment] = a
		}
		a.count++
		a.revenue += c.Monetary
		a.recency += float64(c.RecencyDays)
		a.frequency += float64(c.Frequency)
		a.monetary += c.Monetary
	}

	total := float64(len(customers))
	out := make(map[models.SegmentLabel]models.SegmentStats, len(accs))
	for label, a := range accs {
		n := float64(a.count)
		out[label] = models.SegmentStats{
			Count:        a.count,
			Percentage:   n / total * 100,
			Revenue:      a.revenue,
			AvgRecency:   a.recency / n,
			AvgFrequency: a.frequency / n,
			AvgMonetary:  a.monetary / n,
		}
	}
	return out
}

// TopProducts ranks, per segment, the products its members bought.
// Grouping is keyed by product id, not display name: two products that
// share a name but not an id stay separate entries. Entries are sorted by
// quantity descending (ties broken by product id so repeated runs produce
// identical output) and cut to limit. Percentage is the share of the
// segment's total quantity, 0 when that total is 0.
func TopProducts(customers []models.RFMCustomer, limit int) map[models.SegmentLabel][]models.ProductAffinityEntry {
	type acc struct {
		name     string
		quantity int
		revenue  float64
	}
	bySegment := make(map[models.SegmentLabel]map[string]*acc)
	for _, c := range customers {
		products, ok := bySegment[c.Segment]
		if !ok {
			products = make(map[string]*acc)
			bySegment[c.Segment] = products
		}
		for _, tx := range c.Transactions {
			for _, it := range tx.Items {
				p, ok := products[it.ProductID]
				if !ok {
					p = &acc{name: it.ProductName}
					products[it.ProductID] = p
				}
				p.quantity += it.Quantity
				p.revenue += it.Subtotal
			}
		}
	}

	out := make(map[models.SegmentLabel][]models.ProductAffinityEntry, len(bySegment))
	for label, products := range bySegment {
		type ranked struct {
			id string
			*acc
		}
		all := make([]ranked, 0, len(products))
		totalQty := 0
		for id, p := range products {
			all = append(all, ranked{id: id, acc: p})
			totalQty += p.quantity
		}
		sort.Slice(all, func(i, j int) bool {
			if all[i].quantity != all[j].quantity {
				return all[i].quantity > all[j].quantity
			}
			return all[i].id < all[j].id
		})
		if len(all) > limit {
			all = all[:limit]
		}

		entries := make([]models.ProductAffinityEntry, 0, len(all))
		for _, p := range all {
			pct := 0.0
			if totalQty > 0 {
				pct = float64(p.quantity) / float64(totalQty) * 100
			}
			entries = append(entries, models.ProductAffinityEntry{
				ProductName: p.name,
				Quantity:    p.quantity,
				Revenue:     p.revenue,
				Percentage:  pct,
			})
		}
		out[label] = entries
	}
	return out
}
