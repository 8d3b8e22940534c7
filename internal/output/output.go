// Package output renders match reports for the terminal.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/spigell/skill-matcher/internal/analysis"
)

const (
	FormatJSON  = "json"
	FormatTable = "table"
)

// Render writes the report in the given format. An empty format means table.
func Render(w io.Writer, format string, report *analysis.Report) error {
	switch format {
	case FormatJSON:
		return JSON(w, report)
	case FormatTable, "":
		return Table(w, report)
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}

// ValidFormat reports whether format is accepted by Render.
func ValidFormat(format string) bool {
	switch format {
	case FormatJSON, FormatTable, "":
		return true
	}
	return false
}

// JSON writes data as indented JSON.
func JSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// Table writes a score table followed by the skill lists and the summary.
func Table(w io.Writer, r *analysis.Report) error {
	scores := tablewriter.NewWriter(w)
	scores.Header("Score", "Value")

	rows := [][]string{
		{"match", percent(r.MatchScore)},
		{"semantic", percent(r.SemanticScore)},
		{"skill", percent(r.SkillScore)},
		{"importance", percent(r.ImportanceScore)},
		{"coverage", percent(r.ScoreBreakdown.FinalScore)},
		{"required coverage", percent(r.ScoreBreakdown.RequiredScore)},
		{"preferred coverage", percent(r.ScoreBreakdown.PreferredScore)},
	}
	if err := scores.Bulk(rows); err != nil {
		return err
	}
	if err := scores.Render(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Level:              %s\n", r.Level)
	fmt.Fprintf(w, "Required:           %s\n", list(r.JobRequired))
	fmt.Fprintf(w, "Preferred:          %s\n", list(r.JobPreferred))
	fmt.Fprintf(w, "Missing required:   %s\n", list(r.MissingSkills.Required))
	fmt.Fprintf(w, "Missing preferred:  %s\n", list(r.MissingSkills.Preferred))
	for _, g := range r.UnsatisfiedGroups.Required {
		fmt.Fprintf(w, "Needs one of:       %s\n", strings.Join(g, " | "))
	}
	for _, g := range r.UnsatisfiedGroups.Preferred {
		fmt.Fprintf(w, "Nice to have one of: %s\n", strings.Join(g, " | "))
	}
	fmt.Fprintf(w, "Candidate skills:   %s\n", list(r.ResumeSkills))

	if len(r.WeightedSkills) > 0 {
		fmt.Fprintln(w)
		weighted := tablewriter.NewWriter(w)
		weighted.Header("Skill", "Category", "Importance")
		for _, s := range r.WeightedSkills {
			if err := weighted.Append(s.Name, string(s.Category), strconv.FormatFloat(s.Importance, 'f', 2, 64)); err != nil {
				return err
			}
		}
		if err := weighted.Render(); err != nil {
			return err
		}
	}

	if r.AISummary != nil {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Overall fit: %s\n", r.AISummary.OverallFit)
		for _, s := range r.AISummary.Strengths {
			fmt.Fprintf(w, "  + %s\n", s)
		}
		for _, g := range r.AISummary.Gaps {
			fmt.Fprintf(w, "  - %s\n", g)
		}
	}

	return nil
}

func percent(v int) string {
	return strconv.Itoa(v) + "%"
}

func list(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	return strings.Join(items, ", ")
}
