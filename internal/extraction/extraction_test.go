package extraction

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spigell/skill-matcher/internal/filtering"
	"github.com/spigell/skill-matcher/internal/skills"
)

func TestExtractJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{name: "plain", input: `{"a":1}`, expect: `{"a":1}`},
		{name: "json fence", input: "```json\n{\"a\":1}\n```", expect: `{"a":1}`},
		{name: "bare fence", input: "```\n{\"a\":1}\n```", expect: `{"a":1}`},
		{name: "tilde fence", input: "~~~JSON\n{\"a\":1}\n~~~", expect: `{"a":1}`},
		{name: "prose around", input: "Here you go:\n{\"a\":1}\nThanks!", expect: `{"a":1}`},
		{name: "empty", input: "   ", expect: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ExtractJSON(tt.input); got != tt.expect {
				t.Fatalf("expected %q, got %q", tt.expect, got)
			}
		})
	}
}

func TestParseJobAnalysis(t *testing.T) {
	raw := "```json\n" + `{
		"requiredSkills": ["React", {"name": " TypeScript ", "importance": 0.9}, {"name": ""},
			{"name": "Go", "importance": 5}, {"name": "AWS", "importance": "0.3"}, {"name": "K8s", "importance": "high"}],
		"preferredSkills": [{"name": "Docker", "importance": 0.01}],
		"requiredGroups": [{"type": "any_of", "items": ["MySQL", {"name": "PostgreSQL", "importance": 0.8}]}, ["Vue", "Angular"]],
		"level": "Senior"
	}` + "\n```"

	job, err := ParseJobAnalysis(raw)
	require.NoError(t, err)

	assert.Equal(t, []SkillEntry{
		{Name: "React", Importance: 0.5},
		{Name: "TypeScript", Importance: 0.9},
		{Name: "Go", Importance: 1},
		{Name: "AWS", Importance: 0.3},
		{Name: "K8s", Importance: 0.5},
	}, job.RequiredSkills)
	assert.Equal(t, []SkillEntry{{Name: "Docker", Importance: 0.1}}, job.PreferredSkills)

	require.Len(t, job.RequiredGroups, 2)
	assert.Equal(t, skills.GroupAnyOf, job.RequiredGroups[0].Type)
	assert.Equal(t, []string{"MySQL", "PostgreSQL"}, job.RequiredGroups[0].Names())
	assert.Equal(t, 0.8, job.RequiredGroups[0].Items[1].Importance)
	assert.Equal(t, []string{"Vue", "Angular"}, job.RequiredGroups[1].Names())
	assert.Empty(t, job.PreferredGroups)
	assert.NotNil(t, job.PreferredGroups)
	assert.Equal(t, LevelSenior, job.Level)
}

func TestParseJobAnalysisWrongShapeIsCoerced(t *testing.T) {
	job, err := ParseJobAnalysis(`{"requiredSkills": "React", "preferredSkills": [42, "Vue"], "level": 3}`)

	var shapeErr *ShapeError
	require.True(t, errors.As(err, &shapeErr), "expected shape error, got %v", err)
	assert.NotEmpty(t, shapeErr.Errors)
	assert.Equal(t, SchemaJobAnalysis, shapeErr.Schema)

	assert.Empty(t, job.RequiredSkills)
	assert.Equal(t, []SkillEntry{{Name: "Vue", Importance: 0.5}}, job.PreferredSkills)
	assert.Equal(t, LevelUnknown, job.Level)
}

func TestParseJobAnalysisSyntaxError(t *testing.T) {
	job, err := ParseJobAnalysis("I could not find any skills.")
	require.Error(t, err)
	assert.Equal(t, EmptyJobAnalysis(), job)

	_, err = ParseJobAnalysis(`["React"]`)
	assert.ErrorIs(t, err, ErrNotObject)
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]Level{
		"intern":      LevelIntern,
		"Entry-Level": LevelIntern,
		" junior ":    LevelJunior,
		"mid-level":   LevelMid,
		"SENIOR":      LevelSenior,
		"staff":       LevelLead,
		"wizard":      LevelUnknown,
		"":            LevelUnknown,
	}
	for input, expect := range cases {
		if got := ParseLevel(input); got != expect {
			t.Fatalf("ParseLevel(%q) = %q, want %q", input, got, expect)
		}
	}
}

func TestParseResumeAnalysis(t *testing.T) {
	resume, err := ParseResumeAnalysis(`{"skills": ["Go", " ", "Kubernetes"], "tools": ["Docker"], "concepts": ["CI/CD"]}`)
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "Kubernetes"}, resume.Skills)
	assert.Equal(t, []string{"Go", "Kubernetes", "Docker", "CI/CD"}, resume.Labels())

	resume, err = ParseResumeAnalysis(`{"skills": ["Go", 3]}`)
	var shapeErr *ShapeError
	require.True(t, errors.As(err, &shapeErr))
	assert.Equal(t, []string{"Go"}, resume.Skills)

	resume, err = ParseResumeAnalysis("")
	require.Error(t, err)
	assert.Equal(t, []string{}, resume.Labels())
}

func TestParseSummary(t *testing.T) {
	summary, err := ParseSummary("```json\n{\"strengths\": [\"Strong Go\"], \"gaps\": [\"No AWS\"], \"overallFit\": \"Good fit\"}\n```")
	require.NoError(t, err)
	assert.Equal(t, Summary{Strengths: []string{"Strong Go"}, Gaps: []string{"No AWS"}, OverallFit: "Good fit"}, summary)

	summary, err = ParseSummary("not json at all")
	require.Error(t, err)
	assert.Equal(t, FallbackSummary(), summary)
	assert.Equal(t, "summary not available", summary.OverallFit)
}

func TestParseWeightedSkills(t *testing.T) {
	longReason := strings.Repeat("é", 150)
	raw := `{"skills": [
		{"name": "React", "category": "required", "importance": 0.7, "reason": "Required and appears early"},
		{"name": "reactjs", "category": "preferred", "importance": 0.9},
		{"name": "Docker", "category": "preferred"},
		{"name": "Go", "importance": 1.5, "reason": "` + longReason + `"},
		{"name": "  "}
	]}`

	list, err := ParseWeightedSkills(raw, skills.DefaultNormalizer())
	require.NoError(t, err)
	require.Len(t, list, 3)

	assert.Equal(t, "Go", list[0].Name)
	assert.Equal(t, 1.0, list[0].Importance)
	assert.Equal(t, skills.CategoryRequired, list[0].Category)
	assert.Equal(t, MaxReasonRunes, len([]rune(list[0].Reason)))

	assert.Equal(t, "reactjs", list[1].Name, "higher importance wins")
	assert.Equal(t, "react", list[1].Key)
	assert.Equal(t, skills.CategoryPreferred, list[1].Category)

	assert.Equal(t, "Docker", list[2].Name)
	assert.Equal(t, skills.MinImportance, list[2].Importance)
}

func TestParseWeightedSkillsBadCategory(t *testing.T) {
	list, err := ParseWeightedSkills(`{"skills": [{"name": "Go", "category": "bonus", "importance": 0.4}]}`, nil)
	var shapeErr *ShapeError
	require.True(t, errors.As(err, &shapeErr))
	require.Len(t, list, 1)
	assert.Equal(t, skills.CategoryRequired, list[0].Category)
}

func TestAdapter(t *testing.T) {
	adapter := NewAdapter(filtering.NewBuilder(skills.DefaultNormalizer(), filtering.BuilderOptions{}), nil)

	job := JobAnalysis{
		RequiredSkills: []SkillEntry{
			{Name: "Proficiency in Go", Importance: 0.9},
			{Name: "programming languages", Importance: 0.5},
			{Name: "React", Importance: 0.8},
		},
		PreferredSkills: []SkillEntry{
			{Name: "AWS", Importance: 0.4},
			{Name: "golang", Importance: 1.0},
		},
		RequiredGroups: []GroupEntry{
			{Type: skills.GroupAnyOf, Items: []SkillEntry{{Name: "MySQL", Importance: 0.6}, {Name: "PostgreSQL", Importance: 0.7}}},
			{Type: skills.GroupAnyOf, Items: []SkillEntry{{Name: "knowledge of ", Importance: 0.5}}},
		},
		Level: LevelMid,
	}

	req := adapter.Requirements(job)
	assert.Equal(t, []skills.SkillItem{{Label: "Go", Key: "go"}, {Label: "React", Key: "react"}}, req.RequiredItems)
	assert.Equal(t, []skills.SkillItem{{Label: "AWS", Key: "amazon web services"}, {Label: "golang", Key: "go"}}, req.PreferredItems)
	require.Len(t, req.RequiredGroups, 1, "group left empty after cleaning is dropped")
	assert.Equal(t, []string{"MySQL", "PostgreSQL"}, req.RequiredGroups[0].Labels())
	assert.Empty(t, req.PreferredGroups)

	weighted := adapter.Weighted(job)
	names := make([]string, 0, len(weighted))
	for _, w := range weighted {
		names = append(names, w.Name)
	}
	assert.Equal(t, []string{"golang", "React", "AWS", "MySQL", "PostgreSQL"}, names)
	assert.Equal(t, skills.CategoryRequired, weighted[0].Category, "required if ever required")
	assert.Equal(t, 1.0, weighted[0].Importance)
	assert.Equal(t, skills.CategoryPreferred, weighted[2].Category)

	labels := adapter.CandidateLabels(ResumeAnalysis{
		Skills:   []string{"Go", "golang", " "},
		Tools:    []string{"Docker"},
		Concepts: []string{"docker"},
	})
	assert.Equal(t, []string{"Go", "Docker"}, labels)
}

func TestValidate(t *testing.T) {
	err := Validate(JobAnalysis{
		RequiredSkills: []SkillEntry{{Name: "", Importance: 3}},
		Level:          LevelMid,
	})
	require.Error(t, err)

	require.NoError(t, Validate(EmptyJobAnalysis()))
}
