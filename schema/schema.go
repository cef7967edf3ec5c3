// Package schema has the models, constants and errors shared by every part of typomatch.
package schema

import (
	"maps"
	"strings"
)

// Category is a relationship label scoped to the typology that produced it.
// The same label text in two typologies yields two different categories.
type Category struct {
	Typology TypologyName `json:"typology"`
	Label    string       `json:"label"`
}

// NewCategory builds a category for the given typology.
func NewCategory(typology TypologyName, label string) Category {
	return Category{Typology: typology, Label: label}
}

// Unknown returns the fallback category of a typology.
func Unknown(typology TypologyName) Category {
	return Category{Typology: typology, Label: UnknownRelationship}
}

// IsUnknown reports whether the category is the fallback category.
func (c Category) IsUnknown() bool {
	return c.Label == UnknownRelationship
}

// String renders the category as "Typology: Label".
func (c Category) String() string {
	return string(c.Typology) + ": " + c.Label
}

// ScoreEntry is one row of a comfort score document.
type ScoreEntry struct {
	Score       int    `json:"score"`
	Description string `json:"description"`
}

// ScoreTable maps a category label to its comfort score.
type ScoreTable map[string]ScoreEntry

// Clone returns a copy of the table.
func (t ScoreTable) Clone() ScoreTable {
	if t == nil {
		return ScoreTable{}
	}
	return maps.Clone(t)
}

// Weights maps a typology to its aggregation multiplier.
type Weights map[TypologyName]float64

// Statuses maps a typology to whether it participates in aggregation.
type Statuses map[TypologyName]bool

// DefaultWeights returns the bootstrap weight document.
func DefaultWeights() Weights {
	w := make(Weights, len(WeightedTypologies))
	for _, name := range WeightedTypologies {
		w[name] = DefaultWeight
	}
	return w
}

// DefaultStatuses returns the bootstrap status document.
func DefaultStatuses() Statuses {
	s := make(Statuses, len(WeightedTypologies))
	for _, name := range WeightedTypologies {
		s[name] = DefaultEnabled
	}
	return s
}

// ScoreDocumentName returns the document holding the comfort scores of a typology.
func ScoreDocumentName(typology TypologyName) string {
	if typology == Socionics {
		return SocionicsScoresDocument
	}
	return strings.ToLower(string(typology)) + comfortScoresDocumentTail
}
