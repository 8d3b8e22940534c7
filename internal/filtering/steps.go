package filtering

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/spigell/skill-matcher/internal/skills"
)

type fillerFilter struct {
	toggle
	phrases []string
}

// NewFiller creates a filter stripping leading filler phrases such as
// "experience with" from every label. It never drops labels.
func NewFiller(phrases []string) Filter {
	cleaned := make([]string, 0, len(phrases))
	for _, p := range phrases {
		if p = strings.TrimSpace(p); p != "" {
			cleaned = append(cleaned, p)
		}
	}
	return &fillerFilter{phrases: cleaned}
}

func (f *fillerFilter) Name() string { return "filler" }

func (f *fillerFilter) Apply(labels []string) ([]string, Step) {
	out := make([]string, 0, len(labels))
	for _, label := range labels {
		// trailing space is kept so a label made only of a phrase still matches
		label = strings.TrimLeftFunc(label, unicode.IsSpace)
		for _, phrase := range f.phrases {
			label = stripLeadingPhrase(label, phrase)
		}
		out = append(out, strings.TrimSpace(label))
	}
	return out, Step{Initial: len(labels), Dropped: 0, Left: len(out)}
}

func (f *fillerFilter) Status() Status {
	return Status{
		Name:    f.Name(),
		Enabled: f.IsEnabled(),
		Reason:  f.reason,
		Details: map[string]string{"phrases": strings.Join(f.phrases, ",")},
	}
}

// stripLeadingPhrase removes phrase from the start of label when it matches
// case-insensitively and is followed by whitespace.
func stripLeadingPhrase(label, phrase string) string {
	if len(label) <= len(phrase) || !strings.EqualFold(label[:len(phrase)], phrase) {
		return label
	}
	next, _ := utf8.DecodeRuneInString(label[len(phrase):])
	if !unicode.IsSpace(next) {
		return label
	}
	return strings.TrimSpace(label[len(phrase):])
}

type emptyFilter struct {
	toggle
}

// NewEmpty creates a filter dropping blank labels.
func NewEmpty() Filter {
	return &emptyFilter{}
}

func (f *emptyFilter) Name() string { return "empty" }

func (f *emptyFilter) Apply(labels []string) ([]string, Step) {
	out := make([]string, 0, len(labels))
	for _, label := range labels {
		if strings.TrimSpace(label) == "" {
			continue
		}
		out = append(out, label)
	}
	return out, Step{Initial: len(labels), Dropped: len(labels) - len(out), Left: len(out)}
}

type junkFilter struct {
	toggle
	normalizer *skills.Normalizer
	junk       skills.KeySet
}

// NewJunk creates a filter dropping labels whose key names a generic category
// ("programming languages") instead of a concrete skill.
func NewJunk(normalizer *skills.Normalizer, terms []string) Filter {
	junk := skills.NewKeySet()
	for _, term := range terms {
		junk.Add(normalizer.Normalize(term))
	}
	return &junkFilter{normalizer: normalizer, junk: junk}
}

func (f *junkFilter) Name() string { return "junk" }

func (f *junkFilter) Apply(labels []string) ([]string, Step) {
	out := make([]string, 0, len(labels))
	for _, label := range labels {
		if f.junk.Has(f.normalizer.Normalize(label)) {
			continue
		}
		out = append(out, label)
	}
	return out, Step{Initial: len(labels), Dropped: len(labels) - len(out), Left: len(out)}
}

func (f *junkFilter) Status() Status {
	return Status{
		Name:    f.Name(),
		Enabled: f.IsEnabled(),
		Reason:  f.reason,
		Details: map[string]string{"terms": strconv.Itoa(f.junk.Len())},
	}
}

type dedupeFilter struct {
	toggle
	normalizer *skills.Normalizer
}

// NewDedupe creates a filter keeping the first label seen for every key.
// Labels normalizing to an empty key are dropped as well.
func NewDedupe(normalizer *skills.Normalizer) Filter {
	return &dedupeFilter{normalizer: normalizer}
}

func (f *dedupeFilter) Name() string { return "dedupe" }

func (f *dedupeFilter) Apply(labels []string) ([]string, Step) {
	seen := skills.NewOrderedIndex[string](len(labels))
	for _, label := range labels {
		key := f.normalizer.Normalize(label)
		if key == "" {
			continue
		}
		seen.Put(key, label, skills.KeepFirst[string])
	}
	out := seen.Values()
	return out, Step{Initial: len(labels), Dropped: len(labels) - len(out), Left: len(out)}
}
