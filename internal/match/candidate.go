package match

import (
	"slices"
	"strings"

	"struct-migrator/internal/shape"
)

// DefaultThreshold is the minimum score for a rename suggestion.
const DefaultThreshold = 0.6

// typeBonus rewards candidates whose type is unchanged.
const typeBonus = 0.1

// Candidate is a dropped source field that may have become Target.
type Candidate struct {
	Source shape.Field
	Target shape.Field
	// NameScore is the normalized name similarity (0-1).
	NameScore float64
	// Score combines NameScore with a bonus for an identical type.
	Score float64
}

// RankCandidates scores every field in pool against target and returns
// those scoring at least threshold, best first. Ties break by source name.
func RankCandidates(target shape.Field, pool []shape.Field, threshold float64) []Candidate {
	var out []Candidate

	for _, src := range pool {
		name := Similarity(src.Name, target.Name)

		score := name
		if src.Type == target.Type {
			score += typeBonus
		}

		if score < threshold {
			continue
		}

		out = append(out, Candidate{Source: src, Target: target, NameScore: name, Score: score})
	}

	slices.SortStableFunc(out, func(a, b Candidate) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		default:
			return strings.Compare(a.Source.Name, b.Source.Name)
		}
	})

	return out
}
