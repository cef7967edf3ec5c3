package typology

import (
	"testing"

	"github.com/huangsam/typomatch/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSocionicsFromILE checks every relation as seen from Don Quixote.
func TestSocionicsFromILE(t *testing.T) {
	c := NewSocionics()

	tests := []struct {
		other    string
		expected string
	}{
		{"ILE", schema.Identity},
		{"SEI", Duality},
		{"ESE", Activity},
		{"LII", Mirror},
		{"IEE", Kindred},
		{"SLE", Business},
		{"LIE", QuasiIdentity},
		{"ILI", Extinguishment},
		{"SEE", SuperEgo},
		{"ESI", Conflict},
		{"SLI", SemiDuality},
		{"IEI", Illusionary},
		{"LSE", Benefit},
		{"EIE", Request},
		{"LSI", Supervisor},
		{"EII", Supervision},
	}

	for _, tt := range tests {
		t.Run(tt.other, func(t *testing.T) {
			assert.Equal(t, schema.NewCategory(schema.Socionics, tt.expected), c.Relationship("ILE", tt.other))
		})
	}
}

// TestSocionicsInputForms checks the accepted spellings of a type.
func TestSocionicsInputForms(t *testing.T) {
	c := NewSocionics()
	identity := schema.NewCategory(schema.Socionics, schema.Identity)

	assert.Equal(t, identity, c.Relationship("Don Quixote (ILE)", "ENTp"))
	assert.Equal(t, identity, c.Relationship("ile", "Don Quixote (ILE)"))
	assert.Equal(t, schema.NewCategory(schema.Socionics, Duality), c.Relationship("Don Quixote (ILE)", "Dumas (SEI)"))

	for _, bad := range []string{"", "XYZ", "Napoleon (XXX)", "Napoleon (SEE", "ENTPX"} {
		assert.True(t, c.Relationship(bad, "ILE").IsUnknown(), bad)
	}
}

// TestSocionicsTable checks completeness, symmetry and direction of the relation table.
func TestSocionicsTable(t *testing.T) {
	c := NewSocionics()
	types := c.AllTypes()
	require.Len(t, types, 16)
	assert.Contains(t, types, "Don Quixote (ILE)")
	assert.Contains(t, types, "Gabin (SLI)")

	symmetric := map[string]bool{
		schema.Identity: true, Duality: true, Activity: true, Mirror: true, Kindred: true,
		Business: true, QuasiIdentity: true, Extinguishment: true, SuperEgo: true,
		Conflict: true, SemiDuality: true, Illusionary: true,
	}
	inverse := map[string]string{
		Supervisor: Supervision, Supervision: Supervisor,
		Benefit: Request, Request: Benefit,
	}

	for _, a := range types {
		row := make(map[string]bool)
		for _, b := range types {
			ab := c.Relationship(a, b)
			ba := c.Relationship(b, a)
			require.False(t, ab.IsUnknown(), "%s vs %s", a, b)
			row[ab.Label] = true

			if symmetric[ab.Label] {
				assert.Equal(t, ab, ba, "%s vs %s", a, b)
			} else {
				assert.Equal(t, inverse[ab.Label], ba.Label, "%s vs %s", a, b)
			}
		}
		assert.Len(t, row, 16, "every relation appears once per row of %s", a)
	}
}
