package analysis

import (
	"strings"
	"testing"

	"godunn/domain/core"
	"godunn/domain/posthoc"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sharesLetter(a, b string) bool {
	for _, r := range a {
		if strings.ContainsRune(b, r) {
			return true
		}
	}
	return false
}

func TestCLDLetters_IntransitiveSimilarity(t *testing.T) {
	means := map[string]float64{"A": 3, "B": 2, "C": 1}
	pv := posthoc.PairPValues[string]{
		posthoc.NewPair("A", "B"): 0.9,
		posthoc.NewPair("B", "C"): 0.9,
		posthoc.NewPair("A", "C"): 0.01,
	}

	letters := CLDLetters(means, pv, 0.05)
	require.Len(t, letters, 3)

	assert.False(t, sharesLetter(letters["A"], letters["C"]),
		"significantly different groups must not share a letter: A=%q C=%q", letters["A"], letters["C"])
	assert.True(t, sharesLetter(letters["B"], letters["A"]) || sharesLetter(letters["B"], letters["C"]),
		"B is compatible with both neighbors and should share with at least one")
}

func TestCLDLetters_AllCompatibleShareOneLetter(t *testing.T) {
	means := map[float64]float64{1: 5.0, 2: 4.0, 3: 4.5}
	pv := posthoc.PairPValues[float64]{
		posthoc.NewPair(1.0, 2.0): 0.8,
		posthoc.NewPair(1.0, 3.0): 0.7,
		posthoc.NewPair(2.0, 3.0): 0.9,
	}

	letters := CLDLetters(means, pv, 0.05)
	assert.Equal(t, "a", letters[1])
	assert.Equal(t, "a", letters[2])
	assert.Equal(t, "a", letters[3])
}

func TestCLDLetters_AllDistinctGetOwnLetters(t *testing.T) {
	means := map[string]float64{"hi": 10, "mid": 5, "lo": 1}
	pv := posthoc.PairPValues[string]{
		posthoc.NewPair("hi", "mid"): 0.001,
		posthoc.NewPair("hi", "lo"):  0.001,
		posthoc.NewPair("mid", "lo"): 0.001,
	}

	letters := CLDLetters(means, pv, 0.05)

	// Mean-descending order drives letter creation: hi first, then mid, then lo.
	assert.Equal(t, "a", letters["hi"])
	assert.Equal(t, "b", letters["mid"])
	assert.Equal(t, "c", letters["lo"])
}

func TestCLDLetters_SharedLetterImpliesNonSignificant(t *testing.T) {
	means := map[string]float64{"w": 9, "x": 7, "y": 4, "z": 2}
	pv := posthoc.PairPValues[string]{
		posthoc.NewPair("w", "x"): 0.20,
		posthoc.NewPair("w", "y"): 0.01,
		posthoc.NewPair("w", "z"): 0.001,
		posthoc.NewPair("x", "y"): 0.30,
		posthoc.NewPair("x", "z"): 0.02,
		posthoc.NewPair("y", "z"): 0.40,
	}
	alpha := 0.05

	letters := CLDLetters(means, pv, alpha)
	require.Len(t, letters, 4)

	names := []string{"w", "x", "y", "z"}
	for i := 0; i < len(names); i++ {
		for j := i + 1; j < len(names); j++ {
			a, b := names[i], names[j]
			if sharesLetter(letters[a], letters[b]) {
				assert.GreaterOrEqual(t, pv[posthoc.NewPair(a, b)], alpha,
					"groups %s and %s share a letter but differ significantly", a, b)
			}
		}
	}

	for _, name := range names {
		assert.NotEmpty(t, letters[name])
	}
}

func TestCLDLetters_MissingPairDefaultsToNonSignificant(t *testing.T) {
	means := map[string]float64{"A": 2, "B": 1}

	letters := CLDLetters(means, posthoc.PairPValues[string]{}, 0.05)
	assert.Equal(t, "a", letters["A"])
	assert.Equal(t, "a", letters["B"])
}

func TestLetterRune_ContinuesPastZ(t *testing.T) {
	assert.Equal(t, 'a', letterRune(0))
	assert.Equal(t, 'z', letterRune(25))
	assert.Equal(t, '{', letterRune(26))
}

func TestCompletePairs(t *testing.T) {
	means := map[string]float64{"A": 1, "B": 2, "C": 3}
	full := posthoc.PairPValues[string]{
		posthoc.NewPair("A", "B"): 0.5,
		posthoc.NewPair("A", "C"): 0.5,
		posthoc.NewPair("B", "C"): 0.5,
	}
	assert.NoError(t, CompletePairs(means, full))

	delete(full, posthoc.NewPair("A", "C"))
	err := CompletePairs(means, full)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrIncompletePairMap)
}
