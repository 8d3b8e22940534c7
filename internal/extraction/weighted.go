package extraction

import (
	"errors"
	"sort"
	"strings"

	"github.com/spigell/skill-matcher/internal/skills"
)

// MaxReasonRunes bounds the explanation kept for a weighted skill.
const MaxReasonRunes = 120

// ParseWeightedSkills decodes {"skills": [{name, category, importance, reason}]}.
// Entries are keyed with n, deduplicated keeping the higher importance and
// sorted by importance descending. A missing importance counts as the minimum.
func ParseWeightedSkills(raw string, n *skills.Normalizer) ([]skills.WeightedSkill, error) {
	obj, err := parseObject(raw)
	if err != nil {
		return []skills.WeightedSkill{}, err
	}
	return WeightedSkillsFromList(obj["skills"], n, CheckShape(SchemaWeightedSkills, obj))
}

// WeightedSkillsFromList coerces an already decoded list of weighted skills.
// prior is joined into the returned error.
func WeightedSkillsFromList(v any, n *skills.Normalizer, prior error) ([]skills.WeightedSkill, error) {
	index := skills.NewOrderedIndex[skills.WeightedSkill](0)
	for _, item := range list(v) {
		entry, ok := decodeEntry(item)
		if !ok || entry.Name == "" {
			continue
		}
		key := n.Normalize(entry.Name)
		if key == "" {
			continue
		}

		category := skills.CategoryRequired
		if strings.EqualFold(strings.TrimSpace(entry.Category), string(skills.CategoryPreferred)) {
			category = skills.CategoryPreferred
		}

		index.Put(key, skills.WeightedSkill{
			Name:       entry.Name,
			Key:        key,
			Category:   category,
			Importance: importance(entry.Importance, skills.MinImportance),
			Reason:     truncateRunes(strings.TrimSpace(entry.Reason), MaxReasonRunes),
		}, skills.KeepMaxImportance)
	}

	out := index.Values()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Importance > out[j].Importance
	})

	var verr error
	for _, ws := range out {
		verr = errors.Join(verr, validate.Struct(ws))
	}
	return out, errors.Join(prior, verr)
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
