package models

// SegmentLabel is the closed set of marketing segments a customer can be
// assigned to. The values are the exact strings the reporting layer and
// the insight tables key on.
type SegmentLabel string

const (
	SegmentBestCustomers     SegmentLabel = "Pelanggan Terbaik"
	SegmentLostCheap         SegmentLabel = "Pelanggan Hilang Murah"
	SegmentChampions         SegmentLabel = "Juara"
	SegmentLoyal             SegmentLabel = "Pelanggan Setia"
	SegmentBigSpenders       SegmentLabel = "Pembeli Besar"
	SegmentAtRisk            SegmentLabel = "Berisiko Hilang"
	SegmentLost              SegmentLabel = "Pelanggan Hilang"
	SegmentAlmostLost        SegmentLabel = "Hampir Hilang"
	SegmentNewCustomers      SegmentLabel = "Pelanggan Baru"
	SegmentPotentialLoyalist SegmentLabel = "Calon Setia"
	SegmentOthers            SegmentLabel = "Lainnya"
)

// AllSegmentLabels returns every label the labeler can produce, in rule
// precedence order.
func AllSegmentLabels() []SegmentLabel {
	return []SegmentLabel{
		SegmentBestCustomers,
		SegmentLostCheap,
		SegmentChampions,
		SegmentLoyal,
		SegmentBigSpenders,
		SegmentAtRisk,
		SegmentLost,
		SegmentAlmostLost,
		SegmentNewCustomers,
		SegmentPotentialLoyalist,
		SegmentOthers,
	}
}

func (l SegmentLabel) String() string {
	return string(l)
}
