package analysis

import (
	"sort"

	"godunn/domain/core"
)

// AdjustMethod selects the multiple-comparison correction applied to raw
// pairwise p-values.
type AdjustMethod string

const (
	AdjustHolm       AdjustMethod = "holm"
	AdjustBonferroni AdjustMethod = "bonferroni"
)

// Validate checks that the method names a supported correction.
func (m AdjustMethod) Validate() error {
	switch m {
	case AdjustHolm, AdjustBonferroni:
		return nil
	default:
		return core.NewUnknownAdjustMethodError(string(m))
	}
}

// Adjust applies the selected correction, returning adjusted p-values in the
// same order as the input. An unknown method fails before any computation.
func Adjust(pvals []float64, method AdjustMethod) ([]float64, error) {
	if err := method.Validate(); err != nil {
		return nil, err
	}
	if method == AdjustBonferroni {
		return BonferroniAdjust(pvals), nil
	}
	return HolmAdjust(pvals), nil
}

// HolmAdjust performs the Holm step-down adjustment. For the i-th smallest
// p-value (0-indexed) the candidate is (m-i)*p; a running maximum over the
// sorted order enforces monotonicity, and every result is clipped to [0, 1]
// before being scattered back to the original positions.
func HolmAdjust(pvals []float64) []float64 {
	m := len(pvals)
	out := make([]float64, m)
	if m == 0 {
		return out
	}

	order := make([]int, m)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return pvals[order[a]] < pvals[order[b]]
	})

	running := 0.0
	for i, idx := range order {
		candidate := float64(m-i) * pvals[idx]
		if candidate > running {
			running = candidate
		}
		out[idx] = clip01(running)
	}

	return out
}

// BonferroniAdjust multiplies each raw p-value by the number of comparisons,
// clipped to [0, 1].
func BonferroniAdjust(pvals []float64) []float64 {
	m := len(pvals)
	out := make([]float64, m)
	for i, p := range pvals {
		out[i] = clip01(p * float64(m))
	}
	return out
}

func clip01(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
