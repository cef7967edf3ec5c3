// Package outwriter has output and writer logic.
package outwriter

import (
	"fmt"
	"os"
	"time"

	"github.com/huangsam/typomatch/internal/contract"
	"github.com/huangsam/typomatch/schema"
	"golang.org/x/term"
)

// OutWriter provides a unified interface for all output operations.
// It dispatches on the configured output mode for each result kind.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteRelationship prints one classified pair. table gives the scale for the comfort label.
func (ow *OutWriter) WriteRelationship(rel schema.Relationship, table schema.ScoreTable, cfg *contract.Config) error {
	if err := rejectParquet(cfg, "calculate"); err != nil {
		return err
	}
	return PrintRelationship(rel, table, cfg)
}

// WriteTypes prints the canonical types of one or more typologies.
func (ow *OutWriter) WriteTypes(listings []schema.TypeListing, cfg *contract.Config) error {
	if err := rejectParquet(cfg, "types"); err != nil {
		return err
	}
	return PrintTypes(listings, cfg)
}

// WriteScores prints the comfort score document of a typology.
func (ow *OutWriter) WriteScores(name schema.TypologyName, table schema.ScoreTable, cfg *contract.Config) error {
	if err := rejectParquet(cfg, "scores"); err != nil {
		return err
	}
	return PrintScores(name, table, cfg)
}

// WriteSettings prints the persisted weight and status of every typology.
func (ow *OutWriter) WriteSettings(settings []schema.TypologySetting, cfg *contract.Config) error {
	if err := rejectParquet(cfg, "weights and status"); err != nil {
		return err
	}
	return PrintSettings(settings, cfg)
}

// WriteCompatibility prints a weighted compatibility breakdown.
func (ow *OutWriter) WriteCompatibility(c schema.Compatibility, cfg *contract.Config) error {
	if err := rejectParquet(cfg, "compat"); err != nil {
		return err
	}
	return PrintCompatibility(c, cfg)
}

// WriteDistance prints a passed geo-compatibility check.
func (ow *OutWriter) WriteDistance(d schema.DistanceResult, cfg *contract.Config) error {
	if err := rejectParquet(cfg, "distance"); err != nil {
		return err
	}
	return PrintDistance(d, cfg)
}

// WriteMatrix prints or exports a relationship matrix.
func (ow *OutWriter) WriteMatrix(m schema.Matrix, cfg *contract.Config, duration time.Duration) error {
	return PrintMatrix(m, cfg, duration)
}

// rejectParquet fails early for results that have no columnar form.
func rejectParquet(cfg *contract.Config, what string) error {
	if cfg.Output == schema.ParquetOut {
		return fmt.Errorf("%w: parquet output is only supported by matrix, not %s", schema.ErrInvalidInput, what)
	}
	return nil
}

// GetMaxTableTypeWidth calculates the maximum width for type names in table output
// based on terminal width and the number of type columns.
func GetMaxTableTypeWidth(cfg *contract.Config, typeColumns int) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 {
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Category + Score + Label with borders/padding
	baseWidth := 45
	if typeColumns < 1 {
		typeColumns = 1
	}

	available := (termWidth - baseWidth) / typeColumns
	if available < 12 {
		return 12
	}
	if available > 40 {
		return 40
	}
	return available
}
