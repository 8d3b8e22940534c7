package scoring

// Blend combines a semantic and a skill score:
// semantic×semanticWeight + skill×(1-semanticWeight), rounded.
func Blend(semantic, skill int, semanticWeight float64) int {
	w := clampWeight(semanticWeight)
	return clampPercent(float64(semantic)*w + float64(skill)*(1-w))
}

// SkillScore mixes flat coverage with the importance-weighted score.
func SkillScore(coverage, importance int, importanceShare float64) int {
	return Blend(importance, coverage, importanceShare)
}

// Match assembles the headline scores.
func Match(semantic, skill int, semanticWeight float64) MatchResult {
	return MatchResult{
		SemanticScore: semantic,
		SkillScore:    skill,
		MatchScore:    Blend(semantic, skill, semanticWeight),
	}
}
