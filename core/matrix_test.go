package core

import (
	"context"
	"testing"

	"github.com/huangsam/typomatch/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMatrix checks shape, order and scoring of a relationship matrix.
func TestMatrix(t *testing.T) {
	engine, _ := newTestEngine(t, WithWorkers(3))

	m, err := engine.Matrix(context.Background(), schema.Socionics)
	require.NoError(t, err)
	require.Len(t, m.Types, 16)
	require.Len(t, m.Cells, 256)

	for i, a := range m.Types {
		for j, b := range m.Types {
			cell := m.Cells[i*16+j]
			assert.Equal(t, a, cell.TypeA)
			assert.Equal(t, b, cell.TypeB)
		}
		assert.Equal(t, schema.Identity, m.Cells[i*16+i].Category)
	}

	rel, err := engine.Calculate(m.Cells[1].TypeA, m.Cells[1].TypeB, schema.Socionics)
	require.NoError(t, err)
	assert.Equal(t, rel.Category.Label, m.Cells[1].Category)
	assert.Equal(t, rel.Score, m.Cells[1].Score)
}

// TestMatrixErrors covers unknown typologies and cancellation.
func TestMatrixErrors(t *testing.T) {
	engine, _ := newTestEngine(t)

	_, err := engine.Matrix(context.Background(), "NoSuchTypology")
	assert.ErrorIs(t, err, schema.ErrUnknownTypology)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = engine.Matrix(ctx, schema.Temporistics)
	assert.ErrorIs(t, err, context.Canceled)
}

// TestMatrixUnknownScoresZero relies on Amatoric leaving most pairs unclassified.
func TestMatrixUnknownScoresZero(t *testing.T) {
	engine, _ := newTestEngine(t)

	m, err := engine.Matrix(context.Background(), schema.Amatoric)
	require.NoError(t, err)
	for _, cell := range m.Cells {
		if cell.TypeA == cell.TypeB {
			assert.Equal(t, schema.Identity, cell.Category)
			continue
		}
		assert.Equal(t, schema.UnknownRelationship, cell.Category)
		assert.Zero(t, cell.Score)
	}
}
