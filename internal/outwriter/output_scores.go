package outwriter

import (
	"cmp"
	"encoding/csv"
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/huangsam/typomatch/internal/contract"
	"github.com/huangsam/typomatch/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// scoreRow is one category of a score document, ready for rendering.
type scoreRow struct {
	Category    string `json:"category"`
	Score       int    `json:"score"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// sortedScoreRows orders categories by score, best first, then by name.
func sortedScoreRows(table schema.ScoreTable) []scoreRow {
	rows := make([]scoreRow, 0, len(table))
	for category, entry := range table {
		rows = append(rows, scoreRow{
			Category:    category,
			Score:       entry.Score,
			Label:       contract.GetPlainLabel(contract.ComfortPercent(float64(entry.Score), table)),
			Description: entry.Description,
		})
	}
	slices.SortFunc(rows, func(a, b scoreRow) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		return cmp.Compare(a.Category, b.Category)
	})
	return rows
}

// PrintScores outputs the comfort score document of a typology.
func PrintScores(name schema.TypologyName, table schema.ScoreTable, cfg *contract.Config) error {
	rows := sortedScoreRows(table)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, struct {
				Typology schema.TypologyName `json:"typology"`
				Scores   []scoreRow          `json:"scores"`
			}{name, rows})
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVWithHeader(w, []string{"typology", "category", "score", "label", "description"}, func(cw *csv.Writer) error {
				for _, r := range rows {
					if err := cw.Write([]string{string(name), r.Category, strconv.Itoa(r.Score), r.Label, r.Description}); err != nil {
						return err
					}
				}
				return nil
			})
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeScoresText(w, name, table, rows, cfg)
		}, "Wrote table")
	}
}

func writeScoresText(w io.Writer, name schema.TypologyName, table schema.ScoreTable, rows []scoreRow, cfg *contract.Config) error {
	t := tablewriter.NewWriter(w)
	t.Header([]string{"Category", "Score", "Comfort", "Description"})
	t.Configure(func(c *tablewriter.Config) {
		c.Row.Alignment.Global = tw.AlignLeft
	})
	var data [][]string
	for _, r := range rows {
		data = append(data, []string{
			r.Category,
			strconv.Itoa(r.Score),
			colorLabel(contract.ComfortPercent(float64(r.Score), table), cfg.UseColors),
			contract.TruncateText(r.Description, 60),
		})
	}
	if err := t.Bulk(data); err != nil {
		return err
	}
	if err := t.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%d categories for %s\n", len(rows), name)
	return err
}

// PrintTypes outputs canonical type listings.
func PrintTypes(listings []schema.TypeListing, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, listings)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVWithHeader(w, []string{"typology", "index", "type"}, func(cw *csv.Writer) error {
				for _, l := range listings {
					for i, typ := range l.Types {
						if err := cw.Write([]string{string(l.Typology), strconv.Itoa(i + 1), typ}); err != nil {
							return err
						}
					}
				}
				return nil
			})
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			for _, l := range listings {
				if _, err := fmt.Fprintf(w, "%s (%d types)\n", l.Typology, len(l.Types)); err != nil {
					return err
				}
				for i, typ := range l.Types {
					if _, err := fmt.Fprintf(w, "  %3d  %s\n", i+1, typ); err != nil {
						return err
					}
				}
			}
			return nil
		}, "Wrote text")
	}
}

// PrintSettings outputs the weight and enabled flag of each typology.
func PrintSettings(settings []schema.TypologySetting, cfg *contract.Config) error {
	fmtFloat := createFormatter(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, settings)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVWithHeader(w, []string{"typology", "weight", "enabled"}, func(cw *csv.Writer) error {
				for _, s := range settings {
					if err := cw.Write([]string{string(s.Typology), fmtFloat(s.Weight), strconv.FormatBool(s.Enabled)}); err != nil {
						return err
					}
				}
				return nil
			})
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			t := tablewriter.NewWriter(w)
			t.Header([]string{"Typology", "Weight", "Enabled"})
			var data [][]string
			for _, s := range settings {
				enabled := "no"
				if s.Enabled {
					enabled = "yes"
				}
				data = append(data, []string{string(s.Typology), fmtFloat(s.Weight), enabled})
			}
			if err := t.Bulk(data); err != nil {
				return err
			}
			return t.Render()
		}, "Wrote table")
	}
}
