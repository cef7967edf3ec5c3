package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/huangsam/typomatch/internal/contract"
	"github.com/huangsam/typomatch/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintRelationship outputs one classified pair, dispatching on the output mode.
func PrintRelationship(rel schema.Relationship, table schema.ScoreTable, cfg *contract.Config) error {
	percent := contract.ComfortPercent(float64(rel.Score), table)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRelationshipJSON(w, rel, percent)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRelationshipCSV(w, rel, percent)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRelationshipText(w, rel, percent, cfg)
		}, "Wrote table")
	}
}

func writeRelationshipText(w io.Writer, rel schema.Relationship, percent float64, cfg *contract.Config) error {
	width := GetMaxTableTypeWidth(cfg, 2)
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Typology", "Type A", "Type B", "Category", "Score", "Comfort"})
	table.Configure(func(c *tablewriter.Config) {
		c.Row.Alignment.Global = tw.AlignLeft
	})
	if err := table.Append([]string{
		string(rel.Typology),
		contract.TruncateText(rel.TypeA, width),
		contract.TruncateText(rel.TypeB, width),
		rel.Category.Label,
		strconv.Itoa(rel.Score),
		colorLabel(percent, cfg.UseColors),
	}); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	if rel.Description != "" {
		if _, err := fmt.Fprintf(w, "%s\n", rel.Description); err != nil {
			return err
		}
	}
	return nil
}

func writeRelationshipJSON(w io.Writer, rel schema.Relationship, percent float64) error {
	type jsonRelationship struct {
		schema.Relationship
		Label string `json:"label"`
	}
	return writeJSON(w, jsonRelationship{Relationship: rel, Label: contract.GetPlainLabel(percent)})
}

func writeRelationshipCSV(w io.Writer, rel schema.Relationship, percent float64) error {
	header := []string{"typology", "type_a", "type_b", "category", "score", "label", "description"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		return cw.Write([]string{
			string(rel.Typology),
			rel.TypeA,
			rel.TypeB,
			rel.Category.Label,
			strconv.Itoa(rel.Score),
			contract.GetPlainLabel(percent),
			rel.Description,
		})
	})
}

// PrintCompatibility outputs a weighted compatibility breakdown.
func PrintCompatibility(c schema.Compatibility, cfg *contract.Config) error {
	fmtFloat := createFormatter(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, c)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCompatibilityCSV(w, c, fmtFloat)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCompatibilityText(w, c, fmtFloat, cfg)
		}, "Wrote table")
	}
}

func writeCompatibilityText(w io.Writer, c schema.Compatibility, fmtFloat func(float64) string, cfg *contract.Config) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Typology", "Category", "Score", "Weight", "Weighted"})
	table.Configure(func(config *tablewriter.Config) {
		config.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, contrib := range c.Contributions {
		data = append(data, []string{
			string(contrib.Typology),
			contrib.Category.Label,
			strconv.Itoa(contrib.Score),
			fmtFloat(contrib.Weight),
			fmtFloat(float64(contrib.Score) * contrib.Weight),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "Weighted compatibility: %s (%s) over total weight %s\n",
		fmtFloat(c.Score), colorLabel(c.Score, cfg.UseColors), fmtFloat(c.TotalWeight)); err != nil {
		return err
	}
	if len(c.Skipped) > 0 {
		if _, err := fmt.Fprintf(w, "Skipped typologies: %v\n", c.Skipped); err != nil {
			return err
		}
	}
	return nil
}

func writeCompatibilityCSV(w io.Writer, c schema.Compatibility, fmtFloat func(float64) string) error {
	header := []string{"typology", "category", "score", "weight"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, contrib := range c.Contributions {
			if err := cw.Write([]string{
				string(contrib.Typology),
				contrib.Category.Label,
				strconv.Itoa(contrib.Score),
				fmtFloat(contrib.Weight),
			}); err != nil {
				return err
			}
		}
		return cw.Write([]string{"TOTAL", "", fmtFloat(c.Score), fmtFloat(c.TotalWeight)})
	})
}

// PrintDistance outputs a passed geo-compatibility check.
func PrintDistance(d schema.DistanceResult, cfg *contract.Config) error {
	fmtFloat := createFormatter(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, d)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			header := []string{"person_a", "person_b", "typology", "distance_km", "max_distance_km"}
			return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
				return cw.Write([]string{d.PersonA, d.PersonB, string(d.Typology), fmtFloat(d.DistanceKm), fmtFloat(d.MaxDistanceKm)})
			})
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			_, err := fmt.Fprintf(w, "%s and %s are compatible under %s, %s km apart (max %s km)\n",
				d.PersonA, d.PersonB, d.Typology, fmtFloat(d.DistanceKm), fmtFloat(d.MaxDistanceKm))
			return err
		}, "Wrote text")
	}
}
