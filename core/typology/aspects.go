// Package typology holds the aspect model, the relationship classifiers and the registry
// that maps typology names to classifiers.
package typology

import (
	"strings"

	"github.com/huangsam/typomatch/schema"
)

// Dichotomy is a pair of mutually exclusive poles, e.g. Intuitive/Sensory.
type Dichotomy [2]string

// Permutations returns every ordering of aspects. The order of the result follows
// the input order lexicographically, so index 0 is the input itself.
func Permutations(aspects []string) [][]string {
	if len(aspects) == 0 {
		return nil
	}
	var out [][]string
	used := make([]bool, len(aspects))
	current := make([]string, 0, len(aspects))

	var walk func()
	walk = func() {
		if len(current) == len(aspects) {
			out = append(out, append([]string(nil), current...))
			return
		}
		for i, a := range aspects {
			if used[i] {
				continue
			}
			used[i] = true
			current = append(current, a)
			walk()
			current = current[:len(current)-1]
			used[i] = false
		}
	}
	walk()
	return out
}

// Combinations picks exactly one pole from every dichotomy. Both poles of a
// dichotomy can never appear together in a result.
func Combinations(dichotomies []Dichotomy) [][]string {
	if len(dichotomies) == 0 {
		return nil
	}
	out := [][]string{{}}
	for _, d := range dichotomies {
		next := make([][]string, 0, len(out)*2)
		for _, prefix := range out {
			for _, pole := range d {
				combo := make([]string, len(prefix), len(prefix)+1)
				copy(combo, prefix)
				next = append(next, append(combo, pole))
			}
		}
		out = next
	}
	return out
}

// FormatAll canonicalizes every aspect sequence into a type string.
func FormatAll(seqs [][]string) []string {
	out := make([]string, len(seqs))
	for i, seq := range seqs {
		out[i] = schema.FormatType(seq)
	}
	return out
}

// vocabulary resolves aspect names case-insensitively to their canonical spelling.
type vocabulary struct {
	canonical map[string]string
	order     []string
}

func newVocabulary(aspects []string) vocabulary {
	v := vocabulary{canonical: make(map[string]string, len(aspects)), order: aspects}
	for _, a := range aspects {
		v.canonical[normalizeAspect(a)] = a
	}
	return v
}

func normalizeAspect(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// parse splits s into exactly len(order) distinct known aspects.
// It reports false for any other shape.
func (v vocabulary) parse(s string) ([]string, bool) {
	parts := schema.ParseType(s)
	if len(parts) != len(v.order) {
		return nil, false
	}
	seen := make(map[string]struct{}, len(parts))
	for i, p := range parts {
		c, ok := v.canonical[normalizeAspect(p)]
		if !ok {
			return nil, false
		}
		if _, dup := seen[c]; dup {
			return nil, false
		}
		seen[c] = struct{}{}
		parts[i] = c
	}
	return parts, true
}

// index returns the position of an aspect in the vocabulary, or -1.
func (v vocabulary) index(aspect string) int {
	for i, a := range v.order {
		if a == aspect {
			return i
		}
	}
	return -1
}

// sameSet reports whether two pairs hold the same two aspects in any order.
func sameSet(a, b []string) bool {
	return (a[0] == b[0] && a[1] == b[1]) || (a[0] == b[1] && a[1] == b[0])
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

func equalSeq(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
