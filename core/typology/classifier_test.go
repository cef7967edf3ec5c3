package typology

import (
	"testing"

	"github.com/huangsam/typomatch/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	pcfe = "Past, Current, Future, Eternity"
	elwp = "Emotion, Logic, Will, Physics"
)

// TestTemporisticsRelationship walks the precedence list from top to bottom.
func TestTemporisticsRelationship(t *testing.T) {
	c := NewTemporistics()

	tests := []struct {
		name     string
		a, b     string
		expected string
	}{
		{name: "identical", a: pcfe, b: pcfe, expected: CompleteUnity},
		{name: "identical any case", a: "past, current, future, eternity", b: pcfe, expected: CompleteUnity},
		{name: "same leading aspect", a: pcfe, b: "Past, Future, Current, Eternity", expected: schema.IdentityPhilia},
		{name: "crossed leading pair", a: pcfe, b: "Current, Past, Future, Eternity", expected: schema.OrderFullOrder},
		{name: "two positional matches", a: pcfe, b: "Future, Current, Past, Eternity", expected: SharedVision},
		{name: "one positional match", a: pcfe, b: "Current, Future, Past, Eternity", expected: SuperficialAgreement},
		{name: "no positional match", a: pcfe, b: "Eternity, Future, Current, Past", expected: StrategicConflict},
		{name: "too few aspects", a: pcfe, b: "Past, Current", expected: schema.UnknownRelationship},
		{name: "unknown aspect", a: "Past, Current, Future, Forever", b: pcfe, expected: schema.UnknownRelationship},
		{name: "repeated aspect", a: pcfe, b: "Past, Past, Future, Eternity", expected: schema.UnknownRelationship},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Relationship(tt.a, tt.b)
			assert.Equal(t, schema.NewCategory(schema.Temporistics, tt.expected), got)
		})
	}
}

// TestPsychosophiaRelationship covers every reachable rule with permutations.
func TestPsychosophiaRelationship(t *testing.T) {
	c := NewPsychosophia()

	tests := []struct {
		name     string
		b        string
		expected string
	}{
		{name: "identical", b: elwp, expected: schema.IdentityPhilia},
		{name: "same upper block", b: "Logic, Emotion, Physics, Will", expected: schema.IdentityPhilia},
		{name: "exact reverse", b: "Physics, Will, Logic, Emotion", expected: PsychosophiaExtinguishment},
		{name: "blocks swapped", b: "Will, Physics, Emotion, Logic", expected: FullEros},
		{name: "second leads first", b: "Logic, Will, Emotion, Physics", expected: schema.OrderFullOrder},
		{name: "first is second", b: "Will, Emotion, Logic, Physics", expected: schema.OrderFullOrder},
		{name: "first and third crossed", b: "Will, Logic, Emotion, Physics", expected: Mirage},
		{name: "first and fourth crossed", b: "Physics, Logic, Will, Emotion", expected: Revision},
		{name: "second and third crossed", b: "Emotion, Will, Logic, Physics", expected: TherapyAttraction},
		{name: "second is fourth", b: "Emotion, Will, Physics, Logic", expected: TherapyMisunderstanding},
		{name: "nothing in common", b: "Emotion, Physics, Will, Logic", expected: Neutrality},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Relationship(elwp, tt.b)
			assert.Equal(t, schema.NewCategory(schema.Psychosophia, tt.expected), got)
		})
	}

	assert.True(t, c.Relationship(elwp, "Emotion, Logic, Will").IsUnknown())
	assert.True(t, c.Relationship("", elwp).IsUnknown())
}

// TestPsychosophiaLabelPartialRules reaches rules that no pair of full orderings triggers.
func TestPsychosophiaLabelPartialRules(t *testing.T) {
	a := []string{"Emotion", "Logic", "Will", "Physics"}

	assert.Equal(t, FullAgape, psychosophiaLabel(a, []string{"Will", "Will", "Emotion", "Logic"}))
	assert.Equal(t, ConflictSubmission, psychosophiaLabel(a, []string{"Z", "Z", "Emotion", "Z"}))
}

// TestAmatoricRelationship checks the minimal rule set.
func TestAmatoricRelationship(t *testing.T) {
	c := NewAmatoric()
	lpfr := "Love, Passion, Friendship, Romance"

	assert.Equal(t, schema.NewCategory(schema.Amatoric, schema.Identity), c.Relationship(lpfr, lpfr))
	assert.Equal(t, schema.Unknown(schema.Amatoric), c.Relationship(lpfr, "Passion, Love, Friendship, Romance"))
	assert.Equal(t, schema.Unknown(schema.Amatoric), c.Relationship(lpfr, "Love"))
	assert.Len(t, c.AllTypes(), 24)
}

// TestIQRelationship checks the band distance scale.
func TestIQRelationship(t *testing.T) {
	c := NewIQ()

	tests := []struct {
		a, b     string
		expected string
	}{
		{"Average", "Average", SameLevel},
		{"Average", "Above Average", AdjacentLevel},
		{"Superior", "Average", DistantLevel},
		{"Low", "Superior", IntellectualGap},
		{"gifted", "LOW", IntellectualGap},
		{"Genius", "Average", schema.UnknownRelationship},
	}

	for _, tt := range tests {
		t.Run(tt.a+"/"+tt.b, func(t *testing.T) {
			assert.Equal(t, schema.NewCategory(schema.IQ, tt.expected), c.Relationship(tt.a, tt.b))
		})
	}
}

// TestTemperamentRelationship checks the axis comparison.
func TestTemperamentRelationship(t *testing.T) {
	c := NewTemperament()
	require.ElementsMatch(t, []string{"Sanguine", "Choleric", "Phlegmatic", "Melancholic"}, c.AllTypes())

	tests := []struct {
		a, b     string
		expected string
	}{
		{"Sanguine", "Sanguine", schema.Identity},
		{"Sanguine", "Melancholic", Complementary},
		{"Choleric", "Phlegmatic", Complementary},
		{"Sanguine", "Phlegmatic", Balancing},
		{"Sanguine", "Choleric", Friction},
		{"Sanguine", "Stoic", schema.UnknownRelationship},
	}

	for _, tt := range tests {
		t.Run(tt.a+"/"+tt.b, func(t *testing.T) {
			assert.Equal(t, schema.NewCategory(schema.Temperament, tt.expected), c.Relationship(tt.a, tt.b))
		})
	}
}

// TestClassifiersAreScoped checks that every reachable category is scored and scoped.
func TestClassifiersAreScoped(t *testing.T) {
	reg, err := NewDefaultRegistry(DefaultPlugins()...)
	require.NoError(t, err)

	for _, name := range reg.Names() {
		t.Run(string(name), func(t *testing.T) {
			c, err := reg.Resolve(name)
			require.NoError(t, err)
			scores := c.DefaultScores()
			types := c.AllTypes()
			require.NotEmpty(t, types)

			for _, a := range types {
				for _, b := range types {
					got := c.Relationship(a, b)
					assert.Equal(t, name, got.Typology)
					if got.IsUnknown() {
						continue
					}
					assert.Contains(t, scores, got.Label, "%s vs %s", a, b)
				}
				assert.False(t, c.Relationship(a, a).IsUnknown(), "self relation of %s", a)
			}
			assert.NotContains(t, scores, schema.UnknownRelationship)
		})
	}
}

// BenchmarkRelationship measures one classification per typology.
func BenchmarkRelationship(b *testing.B) {
	reg, err := NewDefaultRegistry(DefaultPlugins()...)
	require.NoError(b, err)

	for _, name := range reg.Names() {
		c, _ := reg.Resolve(name)
		types := c.AllTypes()
		b.Run(string(name), func(b *testing.B) {
			for b.Loop() {
				c.Relationship(types[0], types[len(types)-1])
			}
		})
	}
}
