package scoring

import (
	"github.com/spigell/skill-matcher/internal/skills"
)

// GroupSatisfied reports whether at least one group member is in keys.
func GroupSatisfied(group skills.SkillGroup, keys skills.KeySet) bool {
	for _, item := range group.Items {
		if keys.Has(item.Key) {
			return true
		}
	}
	return false
}

// Coverage returns the percentage of requirement units present in keys.
// Each flat item and each any_of group counts as exactly one unit, so a group
// with many alternatives weighs the same as a single skill.
// An empty requirement list scores 0.
func Coverage(items []skills.SkillItem, groups []skills.SkillGroup, keys skills.KeySet) int {
	total := len(items) + len(groups)
	if total == 0 {
		return 0
	}

	hits := 0
	for _, item := range items {
		if keys.Has(item.Key) {
			hits++
		}
	}
	for _, group := range groups {
		if GroupSatisfied(group, keys) {
			hits++
		}
	}

	return percent(float64(hits) / float64(total))
}

// WeightedCoverage scores required and preferred units separately and blends
// them: final = required×requiredWeight + preferred×(1-requiredWeight).
func WeightedCoverage(req skills.RequirementSet, keys skills.KeySet, requiredWeight float64) CoverageResult {
	requiredWeight = clampWeight(requiredWeight)

	required := Coverage(req.RequiredItems, req.RequiredGroups, keys)
	preferred := Coverage(req.PreferredItems, req.PreferredGroups, keys)

	return CoverageResult{
		RequiredScore:  required,
		PreferredScore: preferred,
		FinalScore:     clampPercent(float64(required)*requiredWeight + float64(preferred)*(1-requiredWeight)),
	}
}
