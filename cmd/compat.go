package cmd

import (
	"fmt"
	"time"

	"github.com/huangsam/typomatch/schema"
	"github.com/spf13/cobra"
)

// compatCmd blends the comfort scores of two people across typologies.
var compatCmd = &cobra.Command{
	Use:   "compat",
	Short: "Weighted compatibility of two people across typologies",
	Long: `Blend the comfort scores of every typology both people are typed in.

Each typology contributes score times weight; the result is the weighted mean.
Typologies disabled in the status document, or typed for only one person, are
skipped. Weights come from the weight document, overridden by the 'weights' map
of the config file.

Examples:
  typomatch compat --a "Socionics=ILE;Temporistics=Past, Current, Future, Eternity" \
                   --b "Socionics=SEI;Temporistics=Current, Past, Future, Eternity"

  typomatch compat --a "Psychosophia=LEVF" --b "Psychosophia=FVEL" --output json`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(cmd *cobra.Command, _ []string) {
		rawA, _ := cmd.Flags().GetString("a")
		rawB, _ := cmd.Flags().GetString("b")

		typesA, err := schema.ParseTypeAssignments(rawA, registry.Names())
		if err != nil {
			fatal("Invalid --a", err)
		}
		typesB, err := schema.ParseTypeAssignments(rawB, registry.Names())
		if err != nil {
			fatal("Invalid --b", err)
		}

		c, err := engine.WeightedCompatibility(typesA, typesB, cfg.CustomWeights)
		if err != nil {
			fatal("Failed to compute compatibility", err)
		}
		if err := writer.WriteCompatibility(c, cfg); err != nil {
			fatal("Failed to write compatibility", err)
		}
	},
}

// personFromFlags builds one side of the distance check.
func personFromFlags(cmd *cobra.Command, side string, name schema.TypologyName) schema.Person {
	flags := cmd.Flags()
	id, _ := flags.GetString(side + "-id")
	typ, _ := flags.GetString(side + "-type")

	p := schema.Person{
		ID:       id,
		Name:     id,
		Typology: name,
		Types:    map[schema.TypologyName]string{name: typ},
	}
	if flags.Changed(side+"-lat") || flags.Changed(side+"-lon") {
		lat, _ := flags.GetFloat64(side + "-lat")
		lon, _ := flags.GetFloat64(side + "-lon")
		p.Location = &schema.GeoPoint{Lat: lat, Lon: lon}
	}
	return p
}

// distanceCmd gates a pair by comfort score and distance.
var distanceCmd = &cobra.Command{
	Use:   "distance",
	Short: "Distance between two people when they are compatible",
	Long: `Report the great-circle distance between two people when their types under
person a's typology score above --threshold and they live within person a's
maximum distance.

Checks run in order: assigned types, comfort score, coordinates, distance.
The first failing check is reported.

Examples:
  typomatch distance -t Socionics --a-type ILE --b-type SEI \
    --a-lat 52.52 --a-lon 13.405 --b-lat 52.2297 --b-lon 21.0122 --max-distance 600`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(cmd *cobra.Command, _ []string) {
		flag, _ := cmd.Flags().GetString("typology")
		name := typologyArg(flag)

		a := personFromFlags(cmd, "a", name)
		b := personFromFlags(cmd, "b", name)
		a.MaxDistanceKm, _ = cmd.Flags().GetFloat64("a-max-distance")

		distance, err := engine.DistanceIfCompatible(a, b)
		if err != nil {
			fatal(fmt.Sprintf("%s and %s are not a match", a.ID, b.ID), err)
		}
		result := schema.DistanceResult{
			PersonA:       a.ID,
			PersonB:       b.ID,
			Typology:      name,
			DistanceKm:    distance,
			MaxDistanceKm: engine.MaxDistanceFor(a),
		}
		if err := writer.WriteDistance(result, cfg); err != nil {
			fatal("Failed to write distance", err)
		}
	},
}

// matrixCmd classifies every ordered pair of types of a typology.
var matrixCmd = &cobra.Command{
	Use:   "matrix TYPOLOGY",
	Short: "Relationship matrix over every pair of types",
	Long: `Classify every ordered pair of types of a typology and score each cell.

Rows are computed by a pool of --workers goroutines. Parquet output writes one
row per cell and requires --output-file.

Examples:
  typomatch matrix Temperament
  typomatch matrix Socionics --workers 8 --output parquet --output-file socionics.parquet`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		name := typologyArg(args[0])

		start := time.Now()
		m, err := engine.Matrix(rootCtx, name)
		if err != nil {
			fatal("Failed to build matrix", err)
		}
		if err := writer.WriteMatrix(m, cfg, time.Since(start)); err != nil {
			fatal("Failed to write matrix", err)
		}
	},
}
