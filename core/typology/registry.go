package typology

import (
	"fmt"
	"slices"

	"github.com/huangsam/typomatch/schema"
)

// Registry maps typology names to classifiers. Names are case-sensitive.
// Registration is meant to happen at startup; concurrent Resolve calls are
// safe once registration is done.
type Registry struct {
	classifiers map[schema.TypologyName]Classifier
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{classifiers: make(map[schema.TypologyName]Classifier)}
}

// NewDefaultRegistry registers the built-in typologies followed by the plugins.
func NewDefaultRegistry(plugins ...Classifier) (*Registry, error) {
	r := NewRegistry()
	builtins := []Classifier{NewTemporistics(), NewPsychosophia(), NewAmatoric(), NewSocionics()}
	for _, c := range append(builtins, plugins...) {
		if err := r.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// DefaultPlugins are the extension typologies shipped with typomatch.
func DefaultPlugins() []Classifier {
	return []Classifier{NewIQ(), NewTemperament()}
}

// Register adds a classifier and rejects a name that is already taken.
func (r *Registry) Register(c Classifier) error {
	if c == nil {
		return fmt.Errorf("register typology: %w", schema.ErrInvalidInput)
	}
	if _, exists := r.classifiers[c.Name()]; exists {
		return fmt.Errorf("register %s: %w", c.Name(), schema.ErrTypologyExists)
	}
	r.classifiers[c.Name()] = c
	return nil
}

// Replace adds or overwrites a classifier and reports whether one was replaced.
func (r *Registry) Replace(c Classifier) bool {
	_, existed := r.classifiers[c.Name()]
	r.classifiers[c.Name()] = c
	return existed
}

// Resolve returns the classifier registered under name.
func (r *Registry) Resolve(name schema.TypologyName) (Classifier, error) {
	c, ok := r.classifiers[name]
	if !ok {
		return nil, fmt.Errorf("typology %q: %w", name, schema.ErrUnknownTypology)
	}
	return c, nil
}

// Names returns the registered typology names in sorted order.
func (r *Registry) Names() []schema.TypologyName {
	names := make([]schema.TypologyName, 0, len(r.classifiers))
	for name := range r.classifiers {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
