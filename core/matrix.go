package core

import (
	"context"
	"time"

	"github.com/huangsam/typomatch/schema"
	"golang.org/x/sync/errgroup"
)

// Matrix classifies every ordered pair of types of one typology. Rows are computed
// concurrently, bounded by the worker count; cell order is row-major in AllTypes order.
func (e *Engine) Matrix(ctx context.Context, name schema.TypologyName) (schema.Matrix, error) {
	c, err := e.registry.Resolve(name)
	if err != nil {
		return schema.Matrix{}, err
	}
	table, err := e.Scores(name)
	if err != nil {
		return schema.Matrix{}, err
	}

	start := time.Now()
	types := c.AllTypes()
	n := len(types)
	cells := make([]schema.MatrixCell, n*n)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for i, a := range types {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			for j, b := range types {
				label := c.Relationship(a, b).Label
				cells[i*n+j] = schema.MatrixCell{
					TypeA:    a,
					TypeB:    b,
					Category: label,
					Score:    table[label].Score,
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return schema.Matrix{}, err
	}

	e.logger.Debug().
		Str("typology", string(name)).
		Int("cells", len(cells)).
		Dur("duration", time.Since(start)).
		Msg("relationship matrix built")
	return schema.Matrix{Typology: name, Types: types, Cells: cells}, nil
}
