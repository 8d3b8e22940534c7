package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spigell/skill-matcher/internal/skills"
)

func items(labels ...string) []skills.SkillItem {
	n := skills.DefaultNormalizer()
	out := make([]skills.SkillItem, 0, len(labels))
	for _, l := range labels {
		out = append(out, n.Item(l))
	}
	return out
}

func anyOf(labels ...string) skills.SkillGroup {
	return skills.SkillGroup{Kind: skills.GroupAnyOf, Items: items(labels...)}
}

func TestCoverage_Empty(t *testing.T) {
	assert.Equal(t, 0, Coverage(nil, nil, skills.NewKeySet("react")))
	assert.Equal(t, 0, Coverage([]skills.SkillItem{}, []skills.SkillGroup{}, skills.NewKeySet()))
}

func TestCoverage_Partial(t *testing.T) {
	keys := skills.NewKeySet("javascript", "react")
	assert.Equal(t, 50, Coverage(items("JavaScript", "React", "AWS", "PostgreSQL"), nil, keys))
	assert.Equal(t, 100, Coverage(items("JS", "React"), nil, keys))
	assert.Equal(t, 67, Coverage(items("JS", "React", "Vue"), nil, keys))
}

func TestCoverage_GroupIsOneUnit(t *testing.T) {
	keys := skills.NewKeySet("react", "postgresql")

	// one satisfied flat item + one satisfied group of two alternatives
	assert.Equal(t, 100, Coverage(items("React"), []skills.SkillGroup{anyOf("MySQL", "PostgreSQL")}, keys))

	// a large unsatisfied group still counts as a single missing unit
	big := anyOf("Oracle", "DB2", "Sybase", "Informix", "Teradata")
	assert.Equal(t, 50, Coverage(items("React"), []skills.SkillGroup{big}, keys))
}

func TestWeightedCoverage(t *testing.T) {
	keys := skills.NewKeySet("react", "typescript", "amazon web services")
	req := skills.RequirementSet{
		RequiredItems:  items("React", "TypeScript"),
		PreferredItems: items("AWS", "Kubernetes"),
	}

	got := WeightedCoverage(req, keys, 0.8)
	assert.Equal(t, CoverageResult{RequiredScore: 100, PreferredScore: 50, FinalScore: 90}, got)

	got = WeightedCoverage(req, keys, DefaultRequiredWeight)
	assert.Equal(t, 95, got.FinalScore)
}

func TestWeightedCoverage_Groups(t *testing.T) {
	keys := skills.NewKeySet("react", "postgresql")
	req := skills.RequirementSet{
		RequiredItems:  items("React"),
		RequiredGroups: []skills.SkillGroup{anyOf("MySQL", "PostgreSQL")},
	}

	got := WeightedCoverage(req, keys, 1.0)
	assert.Equal(t, 100, got.RequiredScore)
	assert.Equal(t, 0, got.PreferredScore)
	assert.Equal(t, 100, got.FinalScore)
}

func TestWeightedCoverage_WeightOutOfRangeIsClamped(t *testing.T) {
	keys := skills.NewKeySet("react")
	req := skills.RequirementSet{RequiredItems: items("React"), PreferredItems: items("Go")}

	assert.Equal(t, 100, WeightedCoverage(req, keys, 3).FinalScore)
	assert.Equal(t, 0, WeightedCoverage(req, keys, -1).FinalScore)
}

func weighted(name string, category skills.Category, importance float64) skills.WeightedSkill {
	return skills.WeightedSkill{
		Name:       name,
		Key:        skills.DefaultNormalizer().Normalize(name),
		Category:   category,
		Importance: importance,
	}
}

func TestMergeWeighted(t *testing.T) {
	required := []skills.WeightedSkill{
		weighted("Go", skills.CategoryRequired, 0.6),
		weighted("", skills.CategoryRequired, 1),
	}
	preferred := []skills.WeightedSkill{
		weighted("golang", skills.CategoryPreferred, 0.9),
		weighted("AWS", skills.CategoryPreferred, 5),
	}

	merged := MergeWeighted(required, preferred)

	assert.Len(t, merged, 2)
	assert.Equal(t, "golang", merged[0].Name, "higher importance wins")
	assert.Equal(t, 0.9, merged[0].Importance)
	assert.Equal(t, skills.CategoryRequired, merged[0].Category, "required if ever required")
	assert.Equal(t, "AWS", merged[1].Name)
	assert.Equal(t, 1.0, merged[1].Importance, "importance clamped")
	assert.Equal(t, skills.CategoryPreferred, merged[1].Category)
}

func TestImportanceWeighted(t *testing.T) {
	list := []skills.WeightedSkill{
		weighted("Go", skills.CategoryRequired, 1.0),
		weighted("Docker", skills.CategoryPreferred, 0.25),
		weighted("Redis", skills.CategoryPreferred, 0.25),
		weighted("Kafka", skills.CategoryPreferred, 0.5),
	}

	// Missing the single critical skill costs more than missing the minor ones.
	assert.Equal(t, 50, ImportanceWeighted(list, skills.NewKeySet("docker", "redis", "kafka")))
	assert.Equal(t, 50, ImportanceWeighted(list, skills.NewKeySet("go")))
	assert.Equal(t, 88, ImportanceWeighted(list, skills.NewKeySet("go", "kafka", "docker")))
	assert.Equal(t, 100, ImportanceWeighted(list, skills.NewKeySet("go", "docker", "redis", "kafka")))
}

func TestImportanceWeighted_Degenerate(t *testing.T) {
	assert.Equal(t, 0, ImportanceWeighted(nil, skills.NewKeySet("go")))
	assert.Equal(t, 0, ImportanceWeighted([]skills.WeightedSkill{{Name: "x"}}, skills.NewKeySet("x")))
}

func TestMissing(t *testing.T) {
	keys := skills.NewKeySet("javascript", "react")
	assert.Equal(t, []string{"AWS"}, Missing(items("JavaScript", "React", "AWS"), keys))
	assert.Equal(t, []string{}, Missing(nil, keys))
}

func TestUnsatisfiedGroups(t *testing.T) {
	keys := skills.NewKeySet("postgresql")
	groups := []skills.SkillGroup{anyOf("MySQL", "PostgreSQL"), anyOf("Vue", "Angular")}

	assert.Equal(t, [][]string{{"Vue", "Angular"}}, UnsatisfiedGroups(groups, keys))
}

func TestBlend(t *testing.T) {
	assert.Equal(t, 54, Blend(70, 30, 0.6))
	assert.Equal(t, 70, Blend(80, 60, DefaultSemanticWeight))
	assert.Equal(t, 80, Blend(80, 60, 1))
	assert.Equal(t, 60, Blend(80, 60, 0))
	assert.Equal(t, 100, Blend(100, 100, 0.37))
}

func TestSkillScoreAndMatch(t *testing.T) {
	assert.Equal(t, 75, SkillScore(90, 60, DefaultImportanceShare))

	m := Match(64, 75, DefaultSemanticWeight)
	assert.Equal(t, MatchResult{SemanticScore: 64, SkillScore: 75, MatchScore: 70}, m)
}
