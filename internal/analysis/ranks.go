package analysis

import (
	"sort"
)

// AverageRanks assigns 1-based ranks to values, giving tied values the mean
// of the ranks they would occupy (mid-rank method). The sum of the returned
// ranks is always n(n+1)/2.
func AverageRanks(values []float64) []float64 {
	n := len(values)
	ranks := make([]float64, n)
	if n == 0 {
		return ranks
	}

	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return values[idx[a]] < values[idx[b]]
	})

	for i := 0; i < n; {
		j := i
		for j+1 < n && values[idx[j+1]] == values[idx[i]] {
			j++
		}
		// The run occupies sorted positions i+1..j+1; all members get the mean.
		avg := float64(i+j+2) / 2.0
		for k := i; k <= j; k++ {
			ranks[idx[k]] = avg
		}
		i = j + 1
	}

	return ranks
}

// TieCorrection computes the tie correction factor for rank-based tests:
// C = 1 - sum(t^3 - t) / (N^3 - N), where t ranges over the multiplicities
// of each distinct value. Returns exactly 1.0 when there are no ties, and
// 1.0 for N <= 1 to avoid the degenerate denominator.
func TieCorrection(values []float64) float64 {
	n := len(values)
	if n <= 1 {
		return 1.0
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	tieTerm := 0.0
	for i := 0; i < n; {
		j := i
		for j+1 < n && sorted[j+1] == sorted[i] {
			j++
		}
		t := float64(j - i + 1)
		tieTerm += t*t*t - t
		i = j + 1
	}

	nf := float64(n)
	return 1.0 - tieTerm/(nf*nf*nf-nf)
}
