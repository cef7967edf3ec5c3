package schema

import "time"

// Relationship is the outcome of classifying one pair of types under one typology.
type Relationship struct {
	Typology    TypologyName `json:"typology"`
	TypeA       string       `json:"type_a"`
	TypeB       string       `json:"type_b"`
	Category    Category     `json:"category"`
	Score       int          `json:"score"`
	Description string       `json:"description"`
}

// Contribution is the share of one typology in a weighted compatibility score.
type Contribution struct {
	Typology TypologyName `json:"typology"`
	Category Category     `json:"category"`
	Score    int          `json:"score"`
	Weight   float64      `json:"weight"`
}

// Compatibility is the weighted blend of per-typology comfort scores.
type Compatibility struct {
	Score         float64        `json:"score"`
	TotalWeight   float64        `json:"total_weight"`
	Contributions []Contribution `json:"contributions"`
	Skipped       []TypologyName `json:"skipped,omitempty"`
}

// MatrixCell is one ordered pair of a relationship matrix.
type MatrixCell struct {
	TypeA    string `json:"type_a"`
	TypeB    string `json:"type_b"`
	Category string `json:"category"`
	Score    int    `json:"score"`
}

// Matrix holds every ordered type pair of one typology.
type Matrix struct {
	Typology TypologyName `json:"typology"`
	Types    []string     `json:"types"`
	Cells    []MatrixCell `json:"cells"`
}

// StoreStatus represents the status of the document store.
type StoreStatus struct {
	Backend        string    `json:"backend"`
	Location       string    `json:"location"`
	Connected      bool      `json:"connected"`
	TotalDocuments int       `json:"total_documents"`
	Documents      []string  `json:"documents"`
	LastUpdateTime time.Time `json:"last_update_time"`
	SizeBytes      int64     `json:"size_bytes"`
}

// TypeListing groups the canonical types of one typology.
type TypeListing struct {
	Typology TypologyName `json:"typology"`
	Types    []string     `json:"types"`
}

// TypologySetting is the persisted weight and enabled flag of one typology.
type TypologySetting struct {
	Typology TypologyName `json:"typology"`
	Weight   float64      `json:"weight"`
	Enabled  bool         `json:"enabled"`
}

// DistanceResult is a successful geo-compatibility check.
type DistanceResult struct {
	PersonA       string       `json:"person_a"`
	PersonB       string       `json:"person_b"`
	Typology      TypologyName `json:"typology"`
	DistanceKm    float64      `json:"distance_km"`
	MaxDistanceKm float64      `json:"max_distance_km"`
}
