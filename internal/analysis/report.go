package analysis

import (
	"github.com/spigell/skill-matcher/internal/extraction"
	"github.com/spigell/skill-matcher/internal/scoring"
	"github.com/spigell/skill-matcher/internal/skills"
)

// Report is the full, serializable outcome of a match.
type Report struct {
	ID string `json:"id"`

	SemanticScore   int                    `json:"semanticScore"`
	SkillScore      int                    `json:"skillScore"`
	ImportanceScore int                    `json:"importanceScore"`
	MatchScore      int                    `json:"matchScore"`
	ScoreBreakdown  scoring.CoverageResult `json:"scoreBreakdown"`

	MissingSkills     MissingSkills     `json:"missingSkills"`
	UnsatisfiedGroups UnsatisfiedGroups `json:"unsatisfiedGroups"`

	JobRequired        []string               `json:"jobRequired"`
	JobPreferred       []string               `json:"jobPreferred"`
	JobRequiredGroups  []GroupView            `json:"jobRequiredGroups"`
	JobPreferredGroups []GroupView            `json:"jobPreferredGroups"`
	WeightedSkills     []skills.WeightedSkill `json:"weightedSkills"`
	Level              extraction.Level       `json:"level"`
	ResumeSkills       []string               `json:"resumeSkills"`

	AISummary *extraction.Summary `json:"aiSummary,omitempty"`
	Weights   Weights             `json:"weights"`
}

// MissingSkills lists flat requirements absent from the candidate profile.
type MissingSkills struct {
	Required  []string `json:"required"`
	Preferred []string `json:"preferred"`
}

// UnsatisfiedGroups lists the labels of every any_of group with no member
// present, so the smallest change that satisfies it is visible.
type UnsatisfiedGroups struct {
	Required  [][]string `json:"required"`
	Preferred [][]string `json:"preferred"`
}

// GroupView is the display form of a group.
type GroupView struct {
	Type  skills.GroupKind `json:"type"`
	Items []string         `json:"items"`
}

func labels(items []skills.SkillItem) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.Label)
	}
	return out
}

func groupViews(groups []skills.SkillGroup) []GroupView {
	out := make([]GroupView, 0, len(groups))
	for _, g := range groups {
		out = append(out, GroupView{Type: g.Kind, Items: g.Labels()})
	}
	return out
}
