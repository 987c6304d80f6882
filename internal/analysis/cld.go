package analysis

import (
	"cmp"
	"fmt"
	"sort"

	"godunn/domain/core"
	"godunn/domain/posthoc"
)

// CLDLetters derives a compact letter display from pairwise adjusted
// p-values: two groups share a letter only if they are not significantly
// different (p >= alpha). Groups are processed in descending order of mean,
// ties broken by identifier order. Each group joins every existing letter
// whose current members it is non-significant against, and gets a fresh
// letter when it joins none, so every group ends up with a non-empty string.
//
// A pair absent from pvals is treated as non-significant (p = 1.0); use
// CompletePairs first when the map is supposed to cover all pairs.
//
// This is the greedy single-pass assignment, not an exact minimal-letter
// solver: it never lets a significant pair share a letter, but it can leave
// redundant letters behind in adversarial tie structures.
//
// Letters run 'a'..'z'; a display needing more than 26 letters continues
// through the ASCII characters after 'z' ('{', '|', ...).
func CLDLetters[K cmp.Ordered](groupMeans map[K]float64, pvals posthoc.PairPValues[K], alpha float64) posthoc.Letters[K] {
	groups := make([]K, 0, len(groupMeans))
	for g := range groupMeans {
		groups = append(groups, g)
	}
	sort.Slice(groups, func(i, j int) bool {
		mi, mj := groupMeans[groups[i]], groupMeans[groups[j]]
		if mi != mj {
			return mi > mj
		}
		return cmp.Less(groups[i], groups[j])
	})

	nonsig := func(g, h K) bool {
		p, ok := pvals[posthoc.NewPair(g, h)]
		if !ok {
			p = 1.0
		}
		return p >= alpha
	}

	letters := make(posthoc.Letters[K], len(groups))
	var letterGroups [][]K

	for _, g := range groups {
		placed := false
		for li := range letterGroups {
			compatible := true
			for _, h := range letterGroups[li] {
				if !nonsig(g, h) {
					compatible = false
					break
				}
			}
			if compatible {
				letters[g] += string(letterRune(li))
				letterGroups[li] = append(letterGroups[li], g)
				placed = true
			}
		}
		if !placed {
			letters[g] += string(letterRune(len(letterGroups)))
			letterGroups = append(letterGroups, []K{g})
		}
	}

	return letters
}

// CompletePairs verifies that pvals contains an entry for every unordered
// pair of keys in groupMeans, so the non-significant default inside
// CLDLetters cannot mask a hole left by an upstream bug.
func CompletePairs[K cmp.Ordered](groupMeans map[K]float64, pvals posthoc.PairPValues[K]) error {
	keys := make([]K, 0, len(groupMeans))
	for g := range groupMeans {
		keys = append(keys, g)
	}
	sort.Slice(keys, func(i, j int) bool { return cmp.Less(keys[i], keys[j]) })

	for i := 0; i < len(keys); i++ {
		for j := i + 1; j < len(keys); j++ {
			if _, ok := pvals[posthoc.NewPair(keys[i], keys[j])]; !ok {
				return core.NewIncompletePairError(fmt.Sprint(keys[i]), fmt.Sprint(keys[j]))
			}
		}
	}
	return nil
}

func letterRune(i int) rune {
	return rune('a' + i)
}
