package extraction

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spigell/skill-matcher/internal/skills"
)

// ScoreInput is an already extracted match: the job analysis, optional
// explicit weights, the candidate labels and optional embeddings.
type ScoreInput struct {
	Job             JobAnalysis            `json:"job"`
	WeightedSkills  []skills.WeightedSkill `json:"weightedSkills,omitempty"`
	ResumeSkills    []string               `json:"resumeSkills"`
	JobEmbedding    []float64              `json:"jobEmbedding,omitempty"`
	ResumeEmbedding []float64              `json:"resumeEmbedding,omitempty"`
	Summary         *Summary               `json:"aiSummary,omitempty"`
}

// ParseScoreInput decodes a score request. Unlike model answers this input
// comes from the user, so any shape violation is an error.
func ParseScoreInput(data []byte, n *skills.Normalizer) (ScoreInput, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return ScoreInput{}, fmt.Errorf("parse score input: %w", err)
	}
	obj, ok := doc.(map[string]any)
	if !ok {
		return ScoreInput{}, ErrNotObject
	}
	if err := CheckShape(SchemaScoreInput, obj); err != nil {
		return ScoreInput{}, err
	}

	jobObj, _ := obj["job"].(map[string]any)
	job, err := JobAnalysisFromMap(jobObj)
	if err != nil {
		return ScoreInput{}, fmt.Errorf("job: %w", err)
	}

	input := ScoreInput{
		Job:          job,
		ResumeSkills: stringList(obj["resumeSkills"]),
	}

	if raw, ok := obj["weightedSkills"]; ok {
		weighted, err := WeightedSkillsFromList(raw, n, nil)
		if err != nil {
			return ScoreInput{}, fmt.Errorf("weightedSkills: %w", err)
		}
		input.WeightedSkills = weighted
	}

	if input.JobEmbedding, err = vector(obj["jobEmbedding"]); err != nil {
		return ScoreInput{}, fmt.Errorf("jobEmbedding: %w", err)
	}
	if input.ResumeEmbedding, err = vector(obj["resumeEmbedding"]); err != nil {
		return ScoreInput{}, fmt.Errorf("resumeEmbedding: %w", err)
	}

	if raw, ok := obj["aiSummary"].(map[string]any); ok {
		overall, _ := raw["overallFit"].(string)
		input.Summary = &Summary{
			Strengths:  stringList(raw["strengths"]),
			Gaps:       stringList(raw["gaps"]),
			OverallFit: overall,
		}
	}

	return input, nil
}

func vector(v any) ([]float64, error) {
	if v == nil {
		return nil, nil
	}
	items := list(v)
	out := make([]float64, 0, len(items))
	for _, item := range items {
		f, ok := item.(float64)
		if !ok {
			return nil, errors.New("embedding values must be numbers")
		}
		out = append(out, f)
	}
	return out, nil
}
