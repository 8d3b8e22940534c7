package extraction

import (
	"errors"
	"math"
	"strings"

	"github.com/spigell/skill-matcher/internal/skills"
)

// Level is the seniority the job description asks for.
type Level string

const (
	LevelIntern  Level = "intern"
	LevelJunior  Level = "junior"
	LevelMid     Level = "mid"
	LevelSenior  Level = "senior"
	LevelLead    Level = "lead"
	LevelUnknown Level = "unknown"
)

var levelAliases = map[string]Level{
	"intern":      LevelIntern,
	"internship":  LevelIntern,
	"entry":       LevelIntern,
	"entry-level": LevelIntern,
	"entry level": LevelIntern,
	"junior":      LevelJunior,
	"mid":         LevelMid,
	"middle":      LevelMid,
	"mid-level":   LevelMid,
	"mid level":   LevelMid,
	"senior":      LevelSenior,
	"lead":        LevelLead,
	"principal":   LevelLead,
	"staff":       LevelLead,
}

// ParseLevel maps free-form seniority text to a Level.
func ParseLevel(s string) Level {
	if level, ok := levelAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return level
	}
	return LevelUnknown
}

// SkillEntry is one extracted skill with its importance.
type SkillEntry struct {
	Name       string  `json:"name" validate:"required"`
	Importance float64 `json:"importance" validate:"gte=0.1,lte=1"`
}

// GroupEntry is an extracted any_of alternative set.
type GroupEntry struct {
	Type  skills.GroupKind `json:"type" validate:"eq=any_of"`
	Items []SkillEntry     `json:"items" validate:"dive"`
}

// Names returns the names of the group members in order.
func (g GroupEntry) Names() []string {
	return entryNames(g.Items)
}

// JobAnalysis is the structured requirement side of a job description.
type JobAnalysis struct {
	RequiredSkills  []SkillEntry `json:"requiredSkills" validate:"dive"`
	PreferredSkills []SkillEntry `json:"preferredSkills" validate:"dive"`
	RequiredGroups  []GroupEntry `json:"requiredGroups" validate:"dive"`
	PreferredGroups []GroupEntry `json:"preferredGroups" validate:"dive"`
	Level           Level        `json:"level" validate:"oneof=intern junior mid senior lead unknown"`
}

// EmptyJobAnalysis is the analysis used when extraction fails.
func EmptyJobAnalysis() JobAnalysis {
	return JobAnalysis{
		RequiredSkills:  []SkillEntry{},
		PreferredSkills: []SkillEntry{},
		RequiredGroups:  []GroupEntry{},
		PreferredGroups: []GroupEntry{},
		Level:           LevelUnknown,
	}
}

// ParseJobAnalysis decodes a model answer into a JobAnalysis. The returned
// analysis is always usable: on a syntax error it is empty, on a shape error
// the offending collections are coerced or dropped. err reports either case.
func ParseJobAnalysis(raw string) (JobAnalysis, error) {
	obj, err := parseObject(raw)
	if err != nil {
		return EmptyJobAnalysis(), err
	}
	return JobAnalysisFromMap(obj)
}

// JobAnalysisFromMap coerces an already decoded JSON object.
func JobAnalysisFromMap(obj map[string]any) (JobAnalysis, error) {
	shapeErr := CheckShape(SchemaJobAnalysis, obj)

	analysis := JobAnalysis{
		RequiredSkills:  entries(obj["requiredSkills"], skills.DefaultImportance),
		PreferredSkills: entries(obj["preferredSkills"], skills.DefaultImportance),
		RequiredGroups:  groups(obj["requiredGroups"]),
		PreferredGroups: groups(obj["preferredGroups"]),
		Level:           LevelUnknown,
	}
	if level, ok := obj["level"].(string); ok {
		analysis.Level = ParseLevel(level)
	}

	return analysis, errors.Join(shapeErr, validate.Struct(analysis))
}

// entries coerces a list of strings or {name, importance} objects, dropping
// entries without a name. Missing or unparsable importance becomes fallback.
func entries(v any, fallback float64) []SkillEntry {
	items := list(v)
	out := make([]SkillEntry, 0, len(items))
	for _, item := range items {
		entry, ok := decodeEntry(item)
		if !ok || entry.Name == "" {
			continue
		}
		out = append(out, SkillEntry{
			Name:       entry.Name,
			Importance: importance(entry.Importance, fallback),
		})
	}
	return out
}

func importance(v any, fallback float64) float64 {
	if v == nil {
		return skills.ClampImportance(fallback)
	}
	f := coerceFloat(v)
	if math.IsNaN(f) {
		return skills.ClampImportance(fallback)
	}
	return skills.ClampImportance(f)
}

// groups accepts {type, items} objects as well as bare arrays of entries. The
// group kind is always any_of.
func groups(v any) []GroupEntry {
	raw := list(v)
	out := make([]GroupEntry, 0, len(raw))
	for _, g := range raw {
		var members any
		switch val := g.(type) {
		case map[string]any:
			members = val["items"]
		case []any:
			members = val
		default:
			continue
		}
		out = append(out, GroupEntry{
			Type:  skills.GroupAnyOf,
			Items: entries(members, skills.DefaultImportance),
		})
	}
	return out
}

func entryNames(list []SkillEntry) []string {
	names := make([]string, 0, len(list))
	for _, e := range list {
		names = append(names, e.Name)
	}
	return names
}
