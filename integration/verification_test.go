//go:build integration

// Package integration contains integration tests for typomatch.
// These tests are excluded from normal test runs due to build tags.
// To run these tests: go test -tags integration ./integration
package integration

import (
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/huangsam/typomatch/core/typology"
	"github.com/huangsam/typomatch/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mirrors maps a directional category to the category seen from the other side.
var mirrors = map[string]string{
	typology.Supervisor:  typology.Supervision,
	typology.Supervision: typology.Supervisor,
	typology.Benefit:     typology.Request,
	typology.Request:     typology.Benefit,
}

// TestSocionicsMatrixVerification builds the Socionics matrix through the CLI and checks
// every cell against its reverse pair and against a direct calculate call.
func TestSocionicsMatrixVerification(t *testing.T) {
	env := map[string]string{"TYPOMATCH_BACKEND": "memory"}

	out, err := runCommand(t, env, "matrix", "Socionics", "--output", "json", "--workers", "8")
	require.NoError(t, err)

	var m schema.Matrix
	require.NoError(t, json.Unmarshal([]byte(out), &m))
	require.Len(t, m.Types, 16)
	require.Len(t, m.Cells, 256)

	cells := make(map[[2]string]schema.MatrixCell, len(m.Cells))
	for _, cell := range m.Cells {
		cells[[2]string{cell.TypeA, cell.TypeB}] = cell
	}

	for _, cell := range m.Cells {
		reverse, ok := cells[[2]string{cell.TypeB, cell.TypeA}]
		require.True(t, ok)
		want := cell.Category
		if mirrored, ok := mirrors[cell.Category]; ok {
			want = mirrored
		}
		assert.Equal(t, want, reverse.Category, "%s / %s", cell.TypeA, cell.TypeB)
		assert.NotEqual(t, schema.UnknownRelationship, cell.Category)
	}

	// Spot-check one row against calculate
	first := m.Types[0]
	for _, other := range m.Types {
		out, err := runCommand(t, env, "calculate", first, other, "-t", "Socionics", "--output", "json")
		require.NoError(t, err)
		var rel schema.Relationship
		require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(out)), &rel))
		assert.Equal(t, cells[[2]string{first, other}].Category, rel.Category.Label)
	}
}
