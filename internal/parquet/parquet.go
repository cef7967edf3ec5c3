// Package parquet exports relationship matrices to Parquet files using
// github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/huangsam/typomatch/schema"
	"github.com/parquet-go/parquet-go"
)

// MatrixRow is one ordered type pair of a relationship matrix.
type MatrixRow struct {
	// Typology is the typology that classified the pair
	Typology string `parquet:"typology,snappy,dict"`

	// RowIndex and ColIndex locate the pair in the AllTypes order
	RowIndex int32 `parquet:"row_index,snappy"`
	ColIndex int32 `parquet:"col_index,snappy"`

	// TypeA is the first type of the pair
	TypeA string `parquet:"type_a,snappy,dict"`

	// TypeB is the second type of the pair
	TypeB string `parquet:"type_b,snappy,dict"`

	// Category is the relationship label
	Category string `parquet:"category,snappy,dict"`

	// Score is the comfort score of the category
	Score int32 `parquet:"score,snappy"`

	// ExportedAt is when the matrix was written (stored as TIMESTAMP with nanosecond precision)
	ExportedAt time.Time `parquet:"exported_at,snappy"`
}

// ConvertMatrix flattens a matrix into rows stamped with the export time.
func ConvertMatrix(m schema.Matrix, exportedAt time.Time) []MatrixRow {
	n := len(m.Types)
	rows := make([]MatrixRow, len(m.Cells))
	for i, cell := range m.Cells {
		row, col := 0, 0
		if n > 0 {
			row, col = i/n, i%n
		}
		rows[i] = MatrixRow{
			Typology:   string(m.Typology),
			RowIndex:   int32(row),
			ColIndex:   int32(col),
			TypeA:      cell.TypeA,
			TypeB:      cell.TypeB,
			Category:   cell.Category,
			Score:      int32(cell.Score),
			ExportedAt: exportedAt,
		}
	}
	return rows
}

// WriteMatrixRowsParquet writes matrix rows to a Parquet file.
func WriteMatrixRowsParquet(data []MatrixRow, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is derived from the MatrixRow struct tags
	writer := parquet.NewGenericWriter[MatrixRow](file)
	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}

// WriteMatrixParquet exports a whole matrix.
func WriteMatrixParquet(m schema.Matrix, outputPath string) error {
	return WriteMatrixRowsParquet(ConvertMatrix(m, time.Now().UTC()), outputPath)
}
