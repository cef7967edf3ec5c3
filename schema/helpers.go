package schema

import (
	"fmt"
	"strings"
)

// FormatType joins aspects into the canonical type string.
func FormatType(aspects []string) string {
	return strings.Join(aspects, TypeDelimiter)
}

// ParseType splits a type string into its trimmed aspects.
// Empty segments are kept so that malformed input keeps its length.
func ParseType(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// ParseTypologyName resolves a case-insensitive typology name against the known names.
// Unknown names are returned unchanged so the registry can report them.
func ParseTypologyName(s string, known []TypologyName) TypologyName {
	s = strings.TrimSpace(s)
	for _, name := range known {
		if strings.EqualFold(string(name), s) {
			return name
		}
	}
	return TypologyName(s)
}

// ParseTypeAssignments parses "Typology=Type" pairs into a type map.
// The type part may contain commas, so pairs are separated by ';'.
func ParseTypeAssignments(s string, known []TypologyName) (map[TypologyName]string, error) {
	out := make(map[TypologyName]string)
	for pair := range strings.SplitSeq(s, ";") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		name, value, ok := strings.Cut(pair, "=")
		if !ok || strings.TrimSpace(name) == "" {
			return nil, &AssignmentError{Pair: pair}
		}
		out[ParseTypologyName(name, known)] = strings.TrimSpace(value)
	}
	return out, nil
}

// AssignmentError reports a malformed "Typology=Type" pair.
type AssignmentError struct {
	Pair string
}

func (e *AssignmentError) Error() string {
	return fmt.Sprintf("malformed type assignment %q (expected Typology=Type)", e.Pair)
}

// Unwrap makes the error match ErrInvalidInput.
func (e *AssignmentError) Unwrap() error {
	return ErrInvalidInput
}
