package scoring

import (
	"github.com/spigell/skill-matcher/internal/skills"
)

// MergeWeighted collapses entries by key. The most important entry wins (first
// one on ties) and the merged category is required whenever any duplicate was
// required. Importance is clamped and entries without a key are dropped.
func MergeWeighted(entries ...[]skills.WeightedSkill) []skills.WeightedSkill {
	size := 0
	for _, list := range entries {
		size += len(list)
	}

	index := skills.NewOrderedIndex[skills.WeightedSkill](size)
	required := make(map[string]bool, size)

	for _, list := range entries {
		for _, entry := range list {
			if entry.Key == "" {
				continue
			}
			entry.Importance = skills.ClampImportance(entry.Importance)
			if entry.Category != skills.CategoryRequired {
				entry.Category = skills.CategoryPreferred
			}
			if entry.Category == skills.CategoryRequired {
				required[entry.Key] = true
			}
			index.Put(entry.Key, entry, skills.KeepMaxImportance)
		}
	}

	for key := range required {
		index.Update(key, func(s skills.WeightedSkill) skills.WeightedSkill {
			s.Category = skills.CategoryRequired
			return s
		})
	}

	return index.Values()
}

// ImportanceWeighted returns the share of total importance covered by keys.
// A single important missing skill lowers the score more than several minor ones.
func ImportanceWeighted(weighted []skills.WeightedSkill, keys skills.KeySet) int {
	merged := MergeWeighted(weighted)
	if len(merged) == 0 {
		return 0
	}

	var total, matched float64
	for _, s := range merged {
		if s.Importance <= 0 {
			continue
		}
		total += s.Importance
		if keys.Has(s.Key) {
			matched += s.Importance
		}
	}

	if total == 0 {
		return 0
	}

	return percent(matched / total)
}
