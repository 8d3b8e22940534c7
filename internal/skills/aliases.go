package skills

import "sort"

var defaultAliases = map[string]string{
	"js":           "javascript",
	"ts":           "typescript",
	"html5":        "html",
	"css3":         "css",
	"nodejs":       "node",
	"node.js":      "node",
	"reactjs":      "react",
	"react.js":     "react",
	"vuejs":        "vue",
	"aws":          "amazon web services",
	"gcp":          "google cloud platform",
	"c/c++":        "c++",
	"c c++":        "c++",
	"devops":       "dev ops",
	"no sql":       "nosql",
	"mongo db":     "mongodb",
	"postgre sql":  "postgresql",
	"k8s":          "kubernetes",
	"tf":           "terraform",
	"py":           "python",
	"golang":       "go",
	"rest api":     "rest",
	"restful":      "rest",
	"restful apis": "rest",
	"apis":         "rest",
	"ml":           "machine learning",
	"ai":           "artificial intelligence",
	"nlp":          "natural language processing",
	"ci/cd":        "continuous integration continuous deployment",
	"ci cd":        "continuous integration continuous deployment",
	"next":         "nextjs",
	"next.js":      "nextjs",
	"gitlab":       "git",
	"github":       "git",
	"deckgl":       "deck.gl",
	"kepler.gl":    "kepler",
}

// Aliases is an immutable many-to-one table from a base form to a canonical key.
//
// Sources are stored in base form and every target is a fixed point of
// normalization with the same table, so a Normalizer built on it is idempotent.
type Aliases struct {
	table map[string]string
}

// DefaultAliases returns the built-in alias table.
func DefaultAliases() Aliases {
	return NewAliases(defaultAliases)
}

// NewAliases builds a table from raw pairs. Sources and targets are brought to
// base form, chains are followed to their end, and entries that would break
// idempotence (cycles through differing targets) are dropped.
func NewAliases(raw map[string]string) Aliases {
	table := make(map[string]string, len(raw))
	for source, target := range raw {
		src := baseForm(source)
		if src == "" || target == "" {
			continue
		}
		table[src] = target
	}

	sources := make([]string, 0, len(table))
	for src := range table {
		sources = append(sources, src)
	}
	sort.Strings(sources)

	resolved := make(map[string]string, len(table))
	for _, src := range sources {
		if target := resolveTarget(table, table[src]); target != "" && target != src {
			resolved[src] = target
		}
	}

	for changed := true; changed; {
		changed = false
		for _, src := range sources {
			target, ok := resolved[src]
			if !ok {
				continue
			}
			if lookup(resolved, target) != target {
				delete(resolved, src)
				changed = true
			}
		}
	}

	return Aliases{table: resolved}
}

// With returns a new table holding a's entries overridden by extra.
func (a Aliases) With(extra map[string]string) Aliases {
	merged := make(map[string]string, len(a.table)+len(extra))
	for src, target := range a.table {
		merged[src] = target
	}
	for src, target := range extra {
		merged[src] = target
	}
	return NewAliases(merged)
}

// Lookup resolves an already base-formed string.
func (a Aliases) Lookup(base string) (string, bool) {
	target, ok := a.table[base]
	return target, ok
}

func (a Aliases) Len() int { return len(a.table) }

// resolveTarget follows alias chains starting at target, stopping on a loop.
func resolveTarget(table map[string]string, target string) string {
	current := target
	seen := map[string]bool{}
	for {
		base := baseForm(current)
		next, ok := table[base]
		if !ok {
			return base
		}
		if next == current || seen[next] {
			return current
		}
		seen[current] = true
		current = next
	}
}

func lookup(table map[string]string, key string) string {
	base := baseForm(key)
	if target, ok := table[base]; ok {
		return target
	}
	return base
}
