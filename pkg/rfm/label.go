package rfm

import (
	"rfm-engine/pkg/models"
)

// Label maps a score triple to its segment. The rules form an ordered
// decision list: the first match wins, and earlier rules shadow later
// ones ("444" is Pelanggan Terbaik even though it also satisfies the
// Juara rule). Reordering changes segment assignment.
func Label(r, f, m int) models.SegmentLabel {
	switch {
	case r == 4 && f == 4 && m == 4:
		return models.SegmentBestCustomers
	case r == 1 && f == 1 && m == 1:
		return models.SegmentLostCheap
	case r >= 4 && f >= 4:
		return models.SegmentChampions
	case f == 4:
		return models.SegmentLoyal
	case m == 4:
		return models.SegmentBigSpenders
	case r == 1 && (f >= 3 || m >= 3):
		return models.SegmentAtRisk
	case r == 1:
		return models.SegmentLost
	case r == 2:
		return models.SegmentAlmostLost
	case r >= 3 && f <= 2 && m <= 2:
		return models.SegmentNewCustomers
	case r >= 3 && f >= 2:
		return models.SegmentPotentialLoyalist
	default:
		return models.SegmentOthers
	}
}
