package scoring

import (
	"github.com/spigell/skill-matcher/internal/skills"
)

// Missing returns the labels of flat items absent from keys, in input order.
// Groups are never itemized; see UnsatisfiedGroups.
func Missing(items []skills.SkillItem, keys skills.KeySet) []string {
	missing := make([]string, 0)
	for _, item := range items {
		if !keys.Has(item.Key) {
			missing = append(missing, item.Label)
		}
	}
	return missing
}

// UnsatisfiedGroups returns the member labels of every group with no member in keys.
// Learning any one label of a returned group satisfies it.
func UnsatisfiedGroups(groups []skills.SkillGroup, keys skills.KeySet) [][]string {
	out := make([][]string, 0)
	for _, group := range groups {
		if !GroupSatisfied(group, keys) {
			out = append(out, group.Labels())
		}
	}
	return out
}
