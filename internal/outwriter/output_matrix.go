package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/huangsam/typomatch/internal/contract"
	"github.com/huangsam/typomatch/internal/parquet"
	"github.com/huangsam/typomatch/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintMatrix outputs a relationship matrix. Parquet output requires an output file.
func PrintMatrix(m schema.Matrix, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.ParquetOut:
		if cfg.OutputFile == "" {
			return fmt.Errorf("%w: parquet output requires --output-file", schema.ErrInvalidInput)
		}
		if err := parquet.WriteMatrixParquet(m, cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing parquet output: %w", err)
		}
		return nil
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, m)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeMatrixCSV(w, m)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeMatrixText(w, m, cfg, duration)
		}, "Wrote table")
	}
}

func writeMatrixCSV(w io.Writer, m schema.Matrix) error {
	header := []string{"typology", "type_a", "type_b", "category", "score"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, cell := range m.Cells {
			if err := cw.Write([]string{string(m.Typology), cell.TypeA, cell.TypeB, cell.Category, strconv.Itoa(cell.Score)}); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeMatrixText renders one row per ordered pair.
func writeMatrixText(w io.Writer, m schema.Matrix, cfg *contract.Config, duration time.Duration) error {
	width := GetMaxTableTypeWidth(cfg, 2)
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Type A", "Type B", "Category", "Score"})
	table.Configure(func(c *tablewriter.Config) {
		c.Row.Alignment.Global = tw.AlignLeft
	})

	data := make([][]string, 0, len(m.Cells))
	for _, cell := range m.Cells {
		data = append(data, []string{
			contract.TruncateText(cell.TypeA, width),
			contract.TruncateText(cell.TypeB, width),
			cell.Category,
			strconv.Itoa(cell.Score),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%s matrix: %d types, %d pairs, built in %v with %d workers\n",
		m.Typology, len(m.Types), len(m.Cells), duration, cfg.Workers)
	return err
}
