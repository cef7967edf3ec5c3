// Package core has the relationship engine: classification, comfort scores,
// weighted compatibility, the geo gate and relationship matrices.
package core

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/huangsam/typomatch/core/typology"
	"github.com/huangsam/typomatch/internal/contract"
	"github.com/huangsam/typomatch/internal/logging"
	"github.com/huangsam/typomatch/schema"
	"github.com/rs/zerolog"
)

// Engine is the facade over the registry and the document stores.
// It holds no locks: concurrent writers to the same document can lose updates,
// so callers must keep to a single writer per document.
type Engine struct {
	registry      *typology.Registry
	scores        contract.ScoreStore
	weights       contract.WeightStore
	logger        zerolog.Logger
	threshold     int
	maxDistanceKm float64
	workers       int
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger. The engine tags it with its component name.
func WithLogger(logger zerolog.Logger) Option {
	return func(e *Engine) { e.logger = logging.Component(logger, "engine") }
}

// WithComfortThreshold sets the score a pair must exceed to pass the geo gate.
func WithComfortThreshold(threshold int) Option {
	return func(e *Engine) { e.threshold = threshold }
}

// WithMaxDistanceKm sets the distance used when a person has no maximum of their own.
func WithMaxDistanceKm(km float64) Option {
	return func(e *Engine) {
		if km > 0 {
			e.maxDistanceKm = km
		}
	}
}

// WithWorkers bounds the goroutines used to build matrices.
func WithWorkers(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.workers = n
		}
	}
}

// NewEngine wires a registry with the stores holding scores, weights and statuses.
func NewEngine(registry *typology.Registry, scores contract.ScoreStore, weights contract.WeightStore, opts ...Option) *Engine {
	e := &Engine{
		registry:      registry,
		scores:        scores,
		weights:       weights,
		logger:        zerolog.Nop(),
		threshold:     schema.DefaultComfortThreshold,
		maxDistanceKm: schema.DefaultMaxDistanceKm,
		workers:       runtime.NumCPU(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Registry returns the typology registry.
func (e *Engine) Registry() *typology.Registry {
	return e.registry
}

// Typologies returns the registered typology names in sorted order.
func (e *Engine) Typologies() []schema.TypologyName {
	return e.registry.Names()
}

// TypesByTypology returns every valid type of a typology, or false when the typology is unknown.
func (e *Engine) TypesByTypology(name schema.TypologyName) ([]string, bool) {
	c, err := e.registry.Resolve(name)
	if err != nil {
		return nil, false
	}
	return c.AllTypes(), true
}

// Calculate classifies the pair under one typology and attaches the comfort score.
// Empty types and unknown typologies are errors; malformed types resolve to the
// Unknown Relationship category with score 0.
func (e *Engine) Calculate(a, b string, name schema.TypologyName) (schema.Relationship, error) {
	if strings.TrimSpace(a) == "" || strings.TrimSpace(b) == "" {
		return schema.Relationship{}, fmt.Errorf("both types are required: %w", schema.ErrInvalidInput)
	}
	c, err := e.registry.Resolve(name)
	if err != nil {
		return schema.Relationship{}, err
	}

	category := c.Relationship(a, b)
	score, description, err := e.ScoreFor(name, category.Label)
	if err != nil {
		return schema.Relationship{}, err
	}

	e.logger.Debug().
		Str("typology", string(name)).
		Str("type_a", a).
		Str("type_b", b).
		Str("category", category.Label).
		Int("score", score).
		Msg("relationship calculated")

	return schema.Relationship{
		Typology:    name,
		TypeA:       a,
		TypeB:       b,
		Category:    category,
		Score:       score,
		Description: description,
	}, nil
}
