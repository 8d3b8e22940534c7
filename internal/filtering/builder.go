package filtering

import (
	"github.com/spigell/skill-matcher/internal/skills"
)

// DefaultFillerPhrases are stripped from the start of job description labels.
var DefaultFillerPhrases = []string{
	"proficiency in",
	"experience with",
	"familiarity with",
	"knowledge of",
	"experience in",
}

// DefaultJunk lists generic category terms that are never concrete skills.
var DefaultJunk = []string{
	"programming languages",
	"programming language",
	"proficiency in programming languages",
	"front end frameworks",
	"front-end frameworks",
	"frontend frameworks",
}

// BuilderOptions customizes the job list cleaning. Nil slices fall back to the defaults.
type BuilderOptions struct {
	FillerPhrases []string
	Junk          []string
	// ExtraJunk is appended to Junk instead of replacing it.
	ExtraJunk []string
	// Disabled maps filter names to the reason they are switched off.
	Disabled map[string]string
}

// Builder turns raw label lists into clean, deduplicated labels, skill items and key sets.
// A Builder is safe for concurrent use once constructed.
type Builder struct {
	normalizer *skills.Normalizer
	job        []Filter
	candidate  []Filter
}

func NewBuilder(normalizer *skills.Normalizer, opts BuilderOptions) *Builder {
	if normalizer == nil {
		normalizer = skills.DefaultNormalizer()
	}

	phrases := opts.FillerPhrases
	if phrases == nil {
		phrases = DefaultFillerPhrases
	}

	junk := opts.Junk
	if junk == nil {
		junk = DefaultJunk
	}
	junk = append(append([]string(nil), junk...), opts.ExtraJunk...)

	b := &Builder{
		normalizer: normalizer,
		job: []Filter{
			NewFiller(phrases),
			NewEmpty(),
			NewJunk(normalizer, junk),
			NewDedupe(normalizer),
		},
		candidate: []Filter{
			NewEmpty(),
			NewDedupe(normalizer),
		},
	}

	for name, reason := range opts.Disabled {
		DisableByName(b.job, name, reason)
		DisableByName(b.candidate, name, reason)
	}

	return b
}

func (b *Builder) Normalizer() *skills.Normalizer { return b.normalizer }

// CleanJobLabels strips filler phrases, drops blank and junk labels and
// dedupes by key keeping the first label.
func (b *Builder) CleanJobLabels(raw []string) []string {
	cleaned, _ := b.TraceJobLabels(raw)
	return cleaned
}

func (b *Builder) TraceJobLabels(raw []string) ([]string, []Report) {
	return Run(b.job, raw)
}

// CleanCandidateLabels only drops blank labels and dedupes by key.
func (b *Builder) CleanCandidateLabels(raw []string) []string {
	cleaned, _ := b.TraceCandidateLabels(raw)
	return cleaned
}

func (b *Builder) TraceCandidateLabels(raw []string) ([]string, []Report) {
	return Run(b.candidate, raw)
}

// CandidateKeys normalizes labels into a key set.
func (b *Builder) CandidateKeys(labels []string) skills.KeySet {
	set := skills.NewKeySet()
	for _, label := range labels {
		set.Add(b.normalizer.Normalize(label))
	}
	return set
}

// Items maps already cleaned labels to skill items.
func (b *Builder) Items(labels []string) []skills.SkillItem {
	items := make([]skills.SkillItem, 0, len(labels))
	for _, label := range labels {
		items = append(items, b.normalizer.Item(label))
	}
	return items
}

// Group cleans the members of an any_of group with the job chain. The second
// result is false when nothing is left: such a group could never be satisfied.
func (b *Builder) Group(raw []string) (skills.SkillGroup, bool) {
	items := b.Items(b.CleanJobLabels(raw))
	if len(items) == 0 {
		return skills.SkillGroup{}, false
	}
	return skills.SkillGroup{Kind: skills.GroupAnyOf, Items: items}, true
}

// Groups cleans every group and drops the ones left empty.
func (b *Builder) Groups(raw [][]string) []skills.SkillGroup {
	groups := make([]skills.SkillGroup, 0, len(raw))
	for _, members := range raw {
		if g, ok := b.Group(members); ok {
			groups = append(groups, g)
		}
	}
	return groups
}

// Describe reports the status of the job and candidate chains.
func (b *Builder) Describe() (job []Status, candidate []Status) {
	return Describe(b.job), Describe(b.candidate)
}
