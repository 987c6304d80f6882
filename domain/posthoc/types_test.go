package posthoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPair_Canonical(t *testing.T) {
	assert.Equal(t, NewPair(2.0, 1.0), NewPair(1.0, 2.0))
	assert.Equal(t, Pair[float64]{A: 1.0, B: 2.0}, NewPair(2.0, 1.0))

	// String identifiers use lexicographic order
	assert.Equal(t, Pair[string]{A: "control", B: "treated"}, NewPair("treated", "control"))

	// Equal identifiers are not reordered
	assert.Equal(t, Pair[int]{A: 3, B: 3}, NewPair(3, 3))
}

func TestPairPValues_LookupEitherDirection(t *testing.T) {
	pv := PairPValues[float64]{NewPair(1.0, 2.0): 0.03}

	p, ok := pv[NewPair(2.0, 1.0)]
	assert.True(t, ok)
	assert.Equal(t, 0.03, p)
}
