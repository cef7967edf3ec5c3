package cmd

import (
	"fmt"
	"strconv"

	"github.com/huangsam/typomatch/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// typologyArg resolves a typology argument case-insensitively against the registry.
func typologyArg(arg string) schema.TypologyName {
	return schema.ParseTypologyName(arg, registry.Names())
}

// updateScoreCmd rewrites one entry of a comfort score document.
var updateScoreCmd = &cobra.Command{
	Use:   "update-score TYPOLOGY CATEGORY SCORE [DATA_DIR]",
	Short: "Set the comfort score of one relationship category",
	Long: `Update the comfort score of a relationship category and persist the score document.

The whole document is read, the entry is upserted and the document is written back.
An existing description is preserved. An optional DATA_DIR selects a file backend
directory for this run.

Examples:
  # Make Socionics duality slightly less ideal
  typomatch update-score Socionics Duality 95

  # Edit the documents of another data directory
  typomatch update-score Temporistics "Deep Harmony" 88 ./data`,
	Args: cobra.RangeArgs(3, 4),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 4 {
			viper.Set("backend", string(schema.FileBackend))
			viper.Set("data-dir", args[3])
		}
		return sharedSetupWrapper(cmd, args)
	},
	Run: func(cmd *cobra.Command, args []string) {
		score, err := strconv.Atoi(args[2])
		if err != nil {
			fatal("Invalid score", fmt.Errorf("%w: %q is not an integer", schema.ErrInvalidInput, args[2]))
		}
		name := typologyArg(args[0])
		if err := engine.UpdateScore(name, args[1], score); err != nil {
			fatal("Failed to update score", err)
		}
		cmd.Printf("Updated %s %q to %d\n", name, args[1], score)
	},
}

// calculateCmd classifies one pair of types.
var calculateCmd = &cobra.Command{
	Use:   "calculate TYPE_A TYPE_B",
	Short: "Classify the relationship between two types",
	Long: `Classify the relationship between two types under one typology and show its comfort score.

Types use the canonical comma-separated aspect form; Socionics also accepts the
three-letter code, the four-letter style or the full "Name (CODE)" form.
Malformed types yield the Unknown Relationship category with score 0.

Examples:
  typomatch calculate "Past, Current, Future, Eternity" "Current, Past, Future, Eternity" -t Temporistics
  typomatch calculate ILE SEI -t socionics --output json`,
	Args:    cobra.ExactArgs(2),
	PreRunE: sharedSetupWrapper,
	Run: func(cmd *cobra.Command, args []string) {
		flag, _ := cmd.Flags().GetString("typology")
		name := typologyArg(flag)

		rel, err := engine.Calculate(args[0], args[1], name)
		if err != nil {
			fatal("Failed to calculate relationship", err)
		}
		table, err := engine.Scores(name)
		if err != nil {
			fatal("Failed to load scores", err)
		}
		if err := writer.WriteRelationship(rel, table, cfg); err != nil {
			fatal("Failed to write relationship", err)
		}
	},
}

// typesCmd lists canonical types.
var typesCmd = &cobra.Command{
	Use:   "types [TYPOLOGY]",
	Short: "List the valid types of one or every typology",
	Long: `List every valid type in canonical form.

Examples:
  typomatch types
  typomatch types Psychosophia --output csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		names := registry.Names()
		if len(args) == 1 {
			names = []schema.TypologyName{typologyArg(args[0])}
		}

		listings := make([]schema.TypeListing, 0, len(names))
		for _, name := range names {
			types, ok := engine.TypesByTypology(name)
			if !ok {
				fatal("Failed to list types", fmt.Errorf("typology %q: %w", name, schema.ErrUnknownTypology))
			}
			listings = append(listings, schema.TypeListing{Typology: name, Types: types})
		}
		if err := writer.WriteTypes(listings, cfg); err != nil {
			fatal("Failed to write types", err)
		}
	},
}

// scoresCmd shows a comfort score document.
var scoresCmd = &cobra.Command{
	Use:   "scores TYPOLOGY",
	Short: "Show the comfort score document of a typology",
	Long: `Show every relationship category of a typology with its comfort score and description,
best first.

Examples:
  typomatch scores Socionics
  typomatch scores psychosophia --output json`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		name := typologyArg(args[0])
		table, err := engine.Scores(name)
		if err != nil {
			fatal("Failed to load scores", err)
		}
		if err := writer.WriteScores(name, table, cfg); err != nil {
			fatal("Failed to write scores", err)
		}
	},
}
