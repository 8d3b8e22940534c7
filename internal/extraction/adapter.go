package extraction

import (
	"go.uber.org/zap"

	"github.com/spigell/skill-matcher/internal/filtering"
	"github.com/spigell/skill-matcher/internal/scoring"
	"github.com/spigell/skill-matcher/internal/skills"
)

// Adapter turns extracted analyses into the inputs of the scoring engine.
type Adapter struct {
	builder *filtering.Builder
	logger  *zap.Logger
}

func NewAdapter(builder *filtering.Builder, logger *zap.Logger) *Adapter {
	if builder == nil {
		builder = filtering.NewBuilder(nil, filtering.BuilderOptions{})
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Adapter{builder: builder, logger: logger}
}

func (a *Adapter) Builder() *filtering.Builder { return a.builder }

// Requirements cleans the job analysis into a RequirementSet. Per-filter
// statistics of the flat lists are logged at debug level.
func (a *Adapter) Requirements(job JobAnalysis) skills.RequirementSet {
	return skills.RequirementSet{
		RequiredItems:   a.items("required", entryNames(job.RequiredSkills)),
		PreferredItems:  a.items("preferred", entryNames(job.PreferredSkills)),
		RequiredGroups:  a.builder.Groups(groupNames(job.RequiredGroups)),
		PreferredGroups: a.builder.Groups(groupNames(job.PreferredGroups)),
	}
}

func (a *Adapter) items(list string, names []string) []skills.SkillItem {
	cleaned, reports := a.builder.TraceJobLabels(names)
	filtering.LogReports(a.logger, list, reports)
	return a.builder.Items(cleaned)
}

// Weighted builds the importance list from every flat and grouped entry of the
// job. Entries the job cleaning chain would drop as junk are skipped and
// filler phrases are stripped from the names.
func (a *Adapter) Weighted(job JobAnalysis) []skills.WeightedSkill {
	flat := func(list []SkillEntry, category skills.Category) []skills.WeightedSkill {
		out := make([]skills.WeightedSkill, 0, len(list))
		for _, e := range list {
			cleaned := a.builder.CleanJobLabels([]string{e.Name})
			if len(cleaned) == 0 {
				continue
			}
			out = append(out, skills.WeightedSkill{
				Name:       cleaned[0],
				Key:        a.builder.Normalizer().Normalize(cleaned[0]),
				Category:   category,
				Importance: e.Importance,
			})
		}
		return out
	}
	grouped := func(list []GroupEntry, category skills.Category) []skills.WeightedSkill {
		var out []skills.WeightedSkill
		for _, g := range list {
			out = append(out, flat(g.Items, category)...)
		}
		return out
	}

	return scoring.MergeWeighted(
		flat(job.RequiredSkills, skills.CategoryRequired),
		flat(job.PreferredSkills, skills.CategoryPreferred),
		grouped(job.RequiredGroups, skills.CategoryRequired),
		grouped(job.PreferredGroups, skills.CategoryPreferred),
	)
}

// CandidateLabels cleans the resume labels for display and key building.
func (a *Adapter) CandidateLabels(resume ResumeAnalysis) []string {
	return a.CleanCandidate(resume.Labels())
}

// CleanCandidate cleans raw candidate labels, logging per-filter statistics.
func (a *Adapter) CleanCandidate(labels []string) []string {
	cleaned, reports := a.builder.TraceCandidateLabels(labels)
	filtering.LogReports(a.logger, "candidate", reports)
	return cleaned
}

func groupNames(groups []GroupEntry) [][]string {
	out := make([][]string, 0, len(groups))
	for _, g := range groups {
		out = append(out, g.Names())
	}
	return out
}
