// Package filtering cleans raw skill label lists before they reach scoring.
// Every pass is a Filter; a chain of filters reports how many labels each
// pass dropped.
package filtering

import (
	"go.uber.org/zap"
)

// Filter represents a single cleaning step applied to a label list.
type Filter interface {
	Name() string
	Disable(reason string)
	IsEnabled() bool

	// Apply must not modify labels in place.
	Apply(labels []string) ([]string, Step)
}

// Step describes the result of executing a filtering step.
type Step struct {
	Initial int
	Dropped int
	Left    int
}

// Report ties a Step to the filter that produced it.
type Report struct {
	Name string
	Step
}

// Status represents runtime information about a filter.
type Status struct {
	Name    string
	Enabled bool
	Reason  string
	Details map[string]string
}

type statusProvider interface {
	Status() Status
}

// DisableByName marks a filter with the provided name as disabled while keeping it in the list.
func DisableByName(steps []Filter, name, reason string) {
	for _, step := range steps {
		if step.Name() == name {
			step.Disable(reason)
		}
	}
}

// Run executes the supplied filters sequentially and returns the cleaned labels
// with one report per enabled filter.
func Run(steps []Filter, labels []string) ([]string, []Report) {
	current := append([]string(nil), labels...)
	reports := make([]Report, 0, len(steps))

	for _, step := range steps {
		if !step.IsEnabled() {
			continue
		}

		next, info := step.Apply(current)
		reports = append(reports, Report{Name: step.Name(), Step: info})
		current = next
	}

	return current, reports
}

// LogReports writes one debug entry per report. list names the label list being cleaned.
func LogReports(logger *zap.Logger, list string, reports []Report) {
	if logger == nil {
		return
	}

	for _, r := range reports {
		logger.Debug("filter step",
			zap.String("list", list),
			zap.String("name", r.Name),
			zap.Int("initial", r.Initial),
			zap.Int("dropped", r.Dropped),
			zap.Int("left", r.Left),
		)
	}
}

// Describe returns status entries for the provided filters.
func Describe(steps []Filter) []Status {
	statuses := make([]Status, 0, len(steps))
	for _, step := range steps {
		if reporter, ok := step.(statusProvider); ok {
			statuses = append(statuses, reporter.Status())
			continue
		}

		statuses = append(statuses, Status{
			Name:    step.Name(),
			Enabled: step.IsEnabled(),
		})
	}
	return statuses
}

// toggle carries the enable/disable state shared by all filters.
type toggle struct {
	disabled bool
	reason   string
}

func (t *toggle) Disable(reason string) {
	t.disabled = true
	t.reason = reason
}

func (t *toggle) IsEnabled() bool { return !t.disabled }
