// Package cmd defines the command-line interface for typomatch.
package cmd

import (
	"github.com/huangsam/typomatch/internal/contract"
	"github.com/huangsam/typomatch/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(updateScoreCmd)
	rootCmd.AddCommand(calculateCmd)
	rootCmd.AddCommand(typesCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(weightsCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(compatCmd)
	rootCmd.AddCommand(distanceCmd)
	rootCmd.AddCommand(matrixCmd)
	rootCmd.AddCommand(storeCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)

	weightsCmd.AddCommand(weightsShowCmd)
	weightsCmd.AddCommand(weightsSetCmd)
	statusCmd.AddCommand(statusShowCmd)
	statusCmd.AddCommand(statusSetCmd)

	storeCmd.AddCommand(storeInitCmd)
	storeCmd.AddCommand(storeStatusCmd)
	storeCmd.AddCommand(storeClearCmd)
	storeCmd.AddCommand(storeMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("backend", string(schema.FileBackend), "Document backend: file or sqlite or mysql or postgresql or memory")
	rootCmd.PersistentFlags().String("data-dir", "", "Directory of the file backend (default ~/.typomatch/data)")
	rootCmd.PersistentFlags().String("db-connect", "", "Database path for sqlite, or DSN for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().Int("workers", contract.DefaultWorkers, "Number of concurrent workers for matrices")
	rootCmd.PersistentFlags().Int("threshold", schema.DefaultComfortThreshold, "Comfort score a pair must exceed to pass the distance gate")
	rootCmd.PersistentFlags().Float64("max-distance", schema.DefaultMaxDistanceKm, "Default maximum distance in km for the distance gate")
	rootCmd.PersistentFlags().String("plugins", "", "Comma-separated plugin typologies to register (IQ,Temperament), or none")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("log-level", contract.DefaultLogLevel, "Log level: trace or debug or info or warn or error or disabled")
	rootCmd.PersistentFlags().String("log-format", contract.DefaultLogFormat, "Log format: console or json")
	rootCmd.PersistentFlags().String("profile", "", "Enable profiling and write profiles to files with this prefix")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Command-local flags are read from the command, not from Viper
	calculateCmd.Flags().StringP("typology", "t", "", "Typology to classify under")
	_ = calculateCmd.MarkFlagRequired("typology")

	compatCmd.Flags().String("a", "", "Types of the first person as 'Typology=Type;Typology=Type'")
	compatCmd.Flags().String("b", "", "Types of the second person in the same form")
	_ = compatCmd.MarkFlagRequired("a")
	_ = compatCmd.MarkFlagRequired("b")

	for _, side := range []string{"a", "b"} {
		distanceCmd.Flags().String(side+"-id", side, "Identifier of person "+side)
		distanceCmd.Flags().String(side+"-type", "", "Type of person "+side+" under the chosen typology")
		distanceCmd.Flags().Float64(side+"-lat", 0, "Latitude of person "+side)
		distanceCmd.Flags().Float64(side+"-lon", 0, "Longitude of person "+side)
	}
	distanceCmd.Flags().StringP("typology", "t", "", "Typology assigned to person a")
	distanceCmd.Flags().Float64("a-max-distance", 0, "Maximum distance of person a in km (0 = --max-distance)")
	_ = distanceCmd.MarkFlagRequired("typology")

	storeMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
}
