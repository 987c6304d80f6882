package analysis

import (
	"cmp"
	"math"
	"sort"

	"godunn/domain/posthoc"

	"gonum.org/v1/gonum/stat/distuv"
)

// DunnPosthoc runs Dunn's test for multiple pairwise comparisons over groups
// of observations, returning adjusted two-sided p-values keyed by canonical
// group pair. The result holds exactly C(k,2) entries for the k non-empty
// groups; fewer than two non-empty groups yield an empty map (the caller is
// expected to pre-filter such inputs).
func DunnPosthoc[K cmp.Ordered](groups map[K][]float64, method AdjustMethod) (posthoc.PairPValues[K], error) {
	if err := method.Validate(); err != nil {
		return nil, err
	}

	// Sorted keys make pooling and pair enumeration deterministic; ranking
	// itself is order-invariant under tie averaging.
	keys := make([]K, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return cmp.Less(keys[i], keys[j]) })

	var pooled []float64
	var labels []int
	for ki, k := range keys {
		for _, v := range groups[k] {
			pooled = append(pooled, v)
			labels = append(labels, ki)
		}
	}

	ranks := AverageRanks(pooled)

	sizes := make([]int, len(keys))
	rankSums := make([]float64, len(keys))
	for i, ki := range labels {
		sizes[ki]++
		rankSums[ki] += ranks[i]
	}

	n := float64(len(pooled))
	variance := n * (n + 1) / 12.0 * TieCorrection(pooled)

	var pairs []posthoc.Pair[K]
	var rawP []float64
	for i := 0; i < len(keys); i++ {
		for j := i + 1; j < len(keys); j++ {
			if sizes[i] == 0 || sizes[j] == 0 {
				continue
			}
			n1, n2 := float64(sizes[i]), float64(sizes[j])
			meanR1 := rankSums[i] / n1
			meanR2 := rankSums[j] / n2
			z := (meanR1 - meanR2) / math.Sqrt(variance*(1.0/n1+1.0/n2))
			p := 2 * (1 - distuv.UnitNormal.CDF(math.Abs(z)))
			pairs = append(pairs, posthoc.NewPair(keys[i], keys[j]))
			rawP = append(rawP, p)
		}
	}

	adjusted, err := Adjust(rawP, method)
	if err != nil {
		return nil, err
	}

	out := make(posthoc.PairPValues[K], len(pairs))
	for i, pair := range pairs {
		out[pair] = adjusted[i]
	}
	return out, nil
}
