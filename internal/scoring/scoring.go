// Package scoring computes percentage scores of a candidate key set against
// cleaned job requirements. Every function is pure and returns integers in [0, 100].
package scoring

import "math"

const (
	// DefaultRequiredWeight is the share of required coverage in the coverage final score.
	// 0.8 is the other common choice and can be passed explicitly.
	DefaultRequiredWeight = 0.9
	// DefaultSemanticWeight is the share of the semantic score in the match score.
	DefaultSemanticWeight = 0.5
	// DefaultImportanceShare is the share of the importance-weighted score in the skill score.
	DefaultImportanceShare = 0.5
)

// CoverageResult is the coverage breakdown of a requirement set.
type CoverageResult struct {
	RequiredScore  int `json:"requiredScore"`
	PreferredScore int `json:"preferredScore"`
	FinalScore     int `json:"finalScore"`
}

// MatchResult holds the three headline scores of a match.
type MatchResult struct {
	SemanticScore int `json:"semanticScore"`
	SkillScore    int `json:"skillScore"`
	MatchScore    int `json:"matchScore"`
}

// percent rounds ratio×100 half away from zero and clamps into [0, 100].
func percent(ratio float64) int {
	return clampPercent(ratio * 100)
}

func clampPercent(v float64) int {
	if math.IsNaN(v) {
		return 0
	}
	return int(math.Max(0, math.Min(100, math.Round(v))))
}

func clampWeight(w float64) float64 {
	if math.IsNaN(w) {
		return 0
	}
	return math.Max(0, math.Min(1, w))
}
