// Package insight attaches static marketing copy to segment labels. It
// is a constant lookup with no dependency back into the engine.
package insight

import (
	"rfm-engine/pkg/models"
)

// Insight is the human-readable profile of one segment.
type Insight struct {
	Characteristics string   `json:"characteristics"`
	Recommendations []string `json:"recommendations"`
}

var bySegment = map[models.SegmentLabel]Insight{
	models.SegmentBestCustomers: {
		Characteristics: "Pelanggan dengan skor sempurna: baru saja bertransaksi, sangat sering membeli, dan nilai belanjanya tertinggi.",
		Recommendations: []string{
			"Berikan program loyalitas eksklusif dan akses awal ke produk baru",
			"Minta testimoni atau referensi ke calon pelanggan lain",
			"Hindari diskon besar, mereka membeli tanpa dorongan harga",
		},
	},
	models.SegmentLostCheap: {
		Characteristics: "Sudah lama tidak bertransaksi, jarang membeli, dan nilai belanjanya paling rendah.",
		Recommendations: []string{
			"Jangan habiskan anggaran pemasaran besar untuk segmen ini",
			"Cukup sertakan dalam kampanye massal berbiaya rendah",
		},
	},
	models.SegmentChampions: {
		Characteristics: "Baru bertransaksi dan sangat sering membeli; penggerak utama pendapatan berulang.",
		Recommendations: []string{
			"Jaga hubungan lewat sapaan personal dan penawaran khusus",
			"Jadikan prioritas saat stok produk favorit mereka terbatas",
			"Tawarkan produk pelengkap dari daftar afinitas segmen ini",
		},
	},
	models.SegmentLoyal: {
		Characteristics: "Frekuensi pembelian tertinggi; rutin kembali meskipun tidak selalu baru saja bertransaksi.",
		Recommendations: []string{
			"Berikan reward berjenjang berdasarkan frekuensi belanja",
			"Tawarkan paket berlangganan atau bundel hemat",
		},
	},
	models.SegmentBigSpenders: {
		Characteristics: "Nilai belanja per transaksi sangat besar walau frekuensinya biasa saja.",
		Recommendations: []string{
			"Tawarkan produk premium dan layanan prioritas",
			"Upselling lebih efektif daripada diskon untuk segmen ini",
		},
	},
	models.SegmentAtRisk: {
		Characteristics: "Dulu sering membeli atau bernilai besar, tetapi sudah lama tidak kembali.",
		Recommendations: []string{
			"Kirim kampanye reaktivasi dengan penawaran personal",
			"Hubungi langsung untuk menanyakan alasan berhenti membeli",
			"Berikan insentif kembali (voucher, gratis ongkir)",
		},
	},
	models.SegmentLost: {
		Characteristics: "Sudah lama sekali tidak bertransaksi dan riwayat belanjanya kecil.",
		Recommendations: []string{
			"Coba satu kampanye win-back murah sebelum dilepas",
			"Evaluasi apakah biaya akuisisi ulang sepadan",
		},
	},
	models.SegmentAlmostLost: {
		Characteristics: "Mulai jarang kembali; berada di ambang menjadi pelanggan hilang.",
		Recommendations: []string{
			"Kirim pengingat dan penawaran terbatas waktu sekarang juga",
			"Tanyakan umpan balik atas pengalaman terakhir mereka",
		},
	},
	models.SegmentNewCustomers: {
		Characteristics: "Baru saja bertransaksi pertama kali atau kedua; belum terbentuk kebiasaan membeli.",
		Recommendations: []string{
			"Sambut dengan rangkaian email/pesan perkenalan",
			"Berikan insentif untuk pembelian kedua dalam 30 hari",
		},
	},
	models.SegmentPotentialLoyalist: {
		Characteristics: "Aktif belakangan ini dengan frekuensi yang mulai tumbuh; kandidat pelanggan setia.",
		Recommendations: []string{
			"Dorong frekuensi lewat program poin atau membership",
			"Rekomendasikan produk terlaris segmen setia",
		},
	},
	models.SegmentOthers: {
		Characteristics: "Pola belanja campuran tanpa kecenderungan yang dominan.",
		Recommendations: []string{
			"Pantau perkembangan skor pada analisis berikutnya",
			"Sertakan dalam kampanye umum",
		},
	},
}

// legacy serves results produced before the labels were localized.
var legacy = map[string]Insight{
	"Best Customers": {
		Characteristics: "Top-scoring customers: recent, frequent, and highest spending.",
		Recommendations: []string{"Reward with exclusive perks", "Ask for referrals and reviews"},
	},
	"Lost Cheap Customers": {
		Characteristics: "Long inactive with minimal spend.",
		Recommendations: []string{"Include only in low-cost bulk campaigns"},
	},
	"Champions": {
		Characteristics: "Recent and very frequent buyers driving repeat revenue.",
		Recommendations: []string{"Maintain the relationship with personal offers", "Cross-sell from their affinity list"},
	},
	"Loyal Customers": {
		Characteristics: "Highest purchase frequency, reliable repeaters.",
		Recommendations: []string{"Introduce tiered rewards", "Offer subscriptions or bundles"},
	},
	"Big Spenders": {
		Characteristics: "Large basket sizes at ordinary frequency.",
		Recommendations: []string{"Promote premium products", "Prefer upselling over discounts"},
	},
	"At Risk": {
		Characteristics: "Previously valuable customers going quiet.",
		Recommendations: []string{"Run personalized reactivation campaigns", "Offer comeback incentives"},
	},
	"Lost Customers": {
		Characteristics: "Inactive for a long period with small history.",
		Recommendations: []string{"One inexpensive win-back attempt, then deprioritize"},
	},
	"Almost Lost": {
		Characteristics: "Sliding toward churn.",
		Recommendations: []string{"Send time-limited offers now", "Collect feedback on their last purchase"},
	},
	"New Customers": {
		Characteristics: "First or second purchase only; habit not yet formed.",
		Recommendations: []string{"Welcome series", "Second-purchase incentive within 30 days"},
	},
	"Potential Loyalists": {
		Characteristics: "Recently active with growing frequency.",
		Recommendations: []string{"Push loyalty program enrollment"},
	},
	"Others": {
		Characteristics: "Mixed behavior without a dominant trait.",
		Recommendations: []string{"Monitor on the next analysis"},
	},
}

var fallback = Insight{
	Characteristics: "Segmen tanpa profil yang terdefinisi.",
	Recommendations: []string{"Sertakan dalam kampanye umum"},
}

// Describe returns the static profile of a segment label. Unknown labels
// fall back to the legacy English table, then to a generic profile.
func Describe(label models.SegmentLabel) Insight {
	if ins, ok := bySegment[label]; ok {
		return ins
	}
	if ins, ok := legacy[string(label)]; ok {
		return ins
	}
	return fallback
}

// ForSegments maps every segment present in an analysis result to its
// profile.
func ForSegments(segments map[models.SegmentLabel]models.SegmentStats) map[models.SegmentLabel]Insight {
	out := make(map[models.SegmentLabel]Insight, len(segments))
	for label := range segments {
		out[label] = Describe(label)
	}
	return out
}
