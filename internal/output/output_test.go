package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spigell/skill-matcher/internal/analysis"
	"github.com/spigell/skill-matcher/internal/extraction"
	"github.com/spigell/skill-matcher/internal/scoring"
	"github.com/spigell/skill-matcher/internal/skills"
)

func sampleReport() *analysis.Report {
	return &analysis.Report{
		ID:              "report-1",
		SemanticScore:   100,
		SkillScore:      91,
		ImportanceScore: 87,
		MatchScore:      96,
		ScoreBreakdown:  scoring.CoverageResult{RequiredScore: 100, PreferredScore: 50, FinalScore: 95},
		MissingSkills:   analysis.MissingSkills{Required: []string{}, Preferred: []string{"Kubernetes"}},
		UnsatisfiedGroups: analysis.UnsatisfiedGroups{
			Required:  [][]string{{"Vue", "Angular"}},
			Preferred: [][]string{},
		},
		JobRequired:  []string{"React", "TypeScript"},
		JobPreferred: []string{"AWS", "Kubernetes"},
		WeightedSkills: []skills.WeightedSkill{
			{Name: "React", Key: "react", Category: skills.CategoryRequired, Importance: 0.9},
		},
		Level:        extraction.LevelMid,
		ResumeSkills: []string{"React", "TypeScript", "AWS"},
		AISummary:    &extraction.Summary{Strengths: []string{"Solid React"}, Gaps: []string{"No Kubernetes"}, OverallFit: "strong fit"},
		Weights:      analysis.DefaultWeights(),
	}
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatJSON, sampleReport()))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, float64(96), decoded["matchScore"])
	assert.Equal(t, "mid", decoded["level"])
	assert.Contains(t, buf.String(), "\n  \"id\": \"report-1\"")
}

func TestRenderTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, "", sampleReport()))

	out := buf.String()
	for _, want := range []string{"96%", "87%", "React, TypeScript", "Kubernetes", "Vue | Angular", "0.90", "strong fit", "+ Solid React"} {
		assert.Contains(t, out, want)
	}
	assert.Contains(t, out, "Missing required:   -")
}

func TestRenderTableWithoutSummary(t *testing.T) {
	report := sampleReport()
	report.AISummary = nil
	report.WeightedSkills = nil

	var buf bytes.Buffer
	require.NoError(t, Table(&buf, report))
	assert.NotContains(t, buf.String(), "Overall fit")
}

func TestRenderUnknownFormat(t *testing.T) {
	err := Render(&bytes.Buffer{}, "yaml", sampleReport())
	require.Error(t, err)
	assert.False(t, ValidFormat("yaml"))
	assert.True(t, ValidFormat(FormatTable))
}
