package posthoc

import (
	"cmp"

	"godunn/domain/core"
)

// Pair is a canonical unordered pair of group identifiers.
// A Pair built from (b, a) is identical to one built from (a, b), so it is
// safe to use as a map key wherever a pairwise result is stored or looked up.
type Pair[K cmp.Ordered] struct {
	A K `json:"a"`
	B K `json:"b"`
}

// NewPair canonicalizes the two identifiers under K's total order.
func NewPair[K cmp.Ordered](a, b K) Pair[K] {
	if cmp.Less(b, a) {
		return Pair[K]{A: b, B: a}
	}
	return Pair[K]{A: a, B: b}
}

// PairPValues maps canonical group pairs to adjusted p-values.
type PairPValues[K cmp.Ordered] map[Pair[K]]float64

// Letters maps each group identifier to its compact letter display string.
type Letters[K cmp.Ordered] map[K]string

// Row is one line of the assembled report: the letters for one group
// within one partition, plus the summary stats the letters were ordered by.
type Row struct {
	Partition string  `json:"partition"`
	Group     string  `json:"group"`
	Letters   string  `json:"letters"`
	Mean      float64 `json:"mean"`
	N         int     `json:"n"`
}

// Report is the full per-group letter assignment across all partitions.
type Report struct {
	ID          core.ReportID  `json:"id"`
	GeneratedAt core.Timestamp `json:"generated_at"`
	Alpha       float64        `json:"alpha"`
	Adjust      string         `json:"adjust"`
	Rows        []Row          `json:"rows"`
}
