package skills

import (
	"testing"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	n := DefaultNormalizer()

	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{name: "casing and surrounding spaces", input: " JavaScript ", expect: "javascript"},
		{name: "dots removed", input: "Next.js", expect: "nextjs"},
		{name: "slash alias", input: "C/C++", expect: "c++"},
		{name: "short alias", input: "JS", expect: "javascript"},
		{name: "ts alias", input: "ts", expect: "typescript"},
		{name: "aws alias", input: "aws", expect: "amazon web services"},
		{name: "golang alias", input: "golang", expect: "go"},
		{name: "multi word alias", input: "rest API", expect: "rest"},
		{name: "restful alias", input: "RESTful", expect: "rest"},
		{name: "k8s alias", input: "K8s", expect: "kubernetes"},
		{name: "hyphen becomes space", input: "Front-End", expect: "front end"},
		{name: "brackets and commas stripped", input: "SQL (Postgres), [v14]", expect: "sql postgres v14"},
		{name: "whitespace collapsed", input: "machine \t  learning", expect: "machine learning"},
		{name: "dotted alias source", input: "Node.js", expect: "node"},
		{name: "ci/cd chain", input: "CI/CD", expect: "continuous integration continuous deployment"},
		{name: "empty", input: "", expect: ""},
		{name: "blank", input: "  \n ", expect: ""},
		{name: "only punctuation", input: "().,", expect: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := n.Normalize(tt.input); got != tt.expect {
				t.Fatalf("Normalize(%q): expected %q, got %q", tt.input, tt.expect, got)
			}
		})
	}
}

func TestNormalizeIsIdempotentForDefaultTargets(t *testing.T) {
	t.Parallel()

	n := DefaultNormalizer()
	for source := range defaultAliases {
		once := n.Normalize(source)
		if twice := n.Normalize(once); twice != once {
			t.Fatalf("alias %q: Normalize not idempotent: %q -> %q", source, once, twice)
		}
	}
}

func TestNormalizeNilNormalizerUsesBaseForm(t *testing.T) {
	t.Parallel()

	var n *Normalizer
	if got := n.Normalize("JS"); got != "js" {
		t.Fatalf("expected base form without aliases, got %q", got)
	}
}

func TestNewAliasesDropsBrokenChains(t *testing.T) {
	t.Parallel()

	aliases := NewAliases(map[string]string{
		"a": "b",
		"b": "a",
		"x": "y",
		"y": "z",
	})
	n := NewNormalizer(aliases)

	for _, input := range []string{"a", "b", "x", "y", "z"} {
		once := n.Normalize(input)
		if twice := n.Normalize(once); twice != once {
			t.Fatalf("input %q: %q -> %q", input, once, twice)
		}
	}

	if got := n.Normalize("x"); got != "z" {
		t.Fatalf("expected chain x -> y -> z to resolve to z, got %q", got)
	}
}

func TestAliasesWith(t *testing.T) {
	t.Parallel()

	base := DefaultAliases()
	extended := base.With(map[string]string{"React JS": "react", "js": "ecmascript"})
	n := NewNormalizer(extended)

	if got := n.Normalize("react-js"); got != "react" {
		t.Fatalf("expected custom alias to apply, got %q", got)
	}
	if got := n.Normalize("JS"); got != "ecmascript" {
		t.Fatalf("expected override to win, got %q", got)
	}
	if got := NewNormalizer(base).Normalize("JS"); got != "javascript" {
		t.Fatalf("expected base table to stay untouched, got %q", got)
	}
}

func FuzzNormalizeIdempotent(f *testing.F) {
	for _, seed := range []string{"", " JavaScript ", "Next.js", "C/C++", "deck.gl", "CI/CD", "k8s", "İstanbul", "a--b//c"} {
		f.Add(seed)
	}

	n := DefaultNormalizer()
	f.Fuzz(func(t *testing.T, label string) {
		once := n.Normalize(label)
		if twice := n.Normalize(once); twice != once {
			t.Fatalf("Normalize(%q) = %q, Normalize(%q) = %q", label, once, once, twice)
		}
	})
}
