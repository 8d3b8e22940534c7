// Package skills holds the skill data model and the label normalizer every
// scoring step compares keys with.
package skills

import "strings"

var stripped = strings.NewReplacer(
	"(", "", ")", "",
	"[", "", "]", "",
	"{", "", "}", "",
	",", "", ".", "",
	"-", " ", "/", " ",
)

// Normalizer turns free-text skill labels into comparable keys.
type Normalizer struct {
	aliases Aliases
}

func NewNormalizer(aliases Aliases) *Normalizer {
	return &Normalizer{aliases: aliases}
}

// DefaultNormalizer uses the built-in alias table.
func DefaultNormalizer() *Normalizer {
	return NewNormalizer(DefaultAliases())
}

// Normalize returns the canonical key of label. It never fails: an empty or
// blank label yields an empty key. Normalize(Normalize(x)) == Normalize(x).
func (n *Normalizer) Normalize(label string) string {
	base := baseForm(label)
	if base == "" {
		return ""
	}
	if n == nil {
		return base
	}
	if target, ok := n.aliases.Lookup(base); ok {
		return target
	}
	return base
}

// Item builds a SkillItem keeping label for display.
func (n *Normalizer) Item(label string) SkillItem {
	return SkillItem{Label: label, Key: n.Normalize(label)}
}

// Aliases exposes the table the normalizer was built with.
func (n *Normalizer) Aliases() Aliases {
	if n == nil {
		return Aliases{}
	}
	return n.aliases
}

// baseForm lower-cases, drops ()[]{},. , turns - and / into spaces and
// collapses whitespace.
func baseForm(label string) string {
	lower := strings.ToLower(label)
	return strings.Join(strings.Fields(stripped.Replace(lower)), " ")
}
