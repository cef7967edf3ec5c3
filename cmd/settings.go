package cmd

import (
	"fmt"
	"strconv"

	"github.com/huangsam/typomatch/internal/contract"
	"github.com/huangsam/typomatch/schema"
	"github.com/spf13/cobra"
)

// collectSettings joins the weight and status documents over the registered typologies
// and any typology the documents mention.
func collectSettings() ([]schema.TypologySetting, error) {
	weights, err := engine.Weights()
	if err != nil {
		return nil, err
	}
	statuses, err := engine.Statuses()
	if err != nil {
		return nil, err
	}

	names := registry.Names()
	seen := make(map[schema.TypologyName]struct{}, len(names))
	for _, name := range names {
		seen[name] = struct{}{}
	}
	for _, name := range schema.WeightedTypologies {
		if _, ok := seen[name]; !ok {
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}

	settings := make([]schema.TypologySetting, 0, len(names))
	for _, name := range names {
		weight, ok := weights[name]
		if !ok {
			weight = schema.DefaultWeight
		}
		enabled, ok := statuses[name]
		if !ok {
			enabled = schema.DefaultEnabled
		}
		settings = append(settings, schema.TypologySetting{Typology: name, Weight: weight, Enabled: enabled})
	}
	return settings, nil
}

func showSettings(_ *cobra.Command, _ []string) {
	settings, err := collectSettings()
	if err != nil {
		fatal("Failed to load settings", err)
	}
	if err := writer.WriteSettings(settings, cfg); err != nil {
		fatal("Failed to write settings", err)
	}
}

// weightsCmd groups weight document commands.
var weightsCmd = &cobra.Command{
	Use:   "weights",
	Short: "Show or change typology weights used by compat",
	Long: `Manage the typology weight document.

A typology's weight multiplies its comfort score in weighted compatibility.
Typologies missing from the document count with weight 1.

Examples:
  typomatch weights show
  typomatch weights set Socionics 2`,
}

var weightsShowCmd = &cobra.Command{
	Use:     "show",
	Short:   "Show the persisted weights and statuses",
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run:     showSettings,
}

var weightsSetCmd = &cobra.Command{
	Use:     "set TYPOLOGY WEIGHT",
	Short:   "Persist the weight of a typology",
	Args:    cobra.ExactArgs(2),
	PreRunE: sharedSetupWrapper,
	Run: func(cmd *cobra.Command, args []string) {
		weight, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			fatal("Invalid weight", fmt.Errorf("%w: %q is not a number", schema.ErrInvalidInput, args[1]))
		}
		name := typologyArg(args[0])
		if err := engine.UpdateWeight(name, weight); err != nil {
			fatal("Failed to update weight", err)
		}
		cmd.Printf("Updated weight of %s to %g\n", name, weight)
	},
}

// statusCmd groups status document commands.
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show or change which typologies take part in compat",
	Long: `Manage the typology status document.

Disabled typologies are skipped by weighted compatibility.

Examples:
  typomatch status show
  typomatch status set IQ false`,
}

var statusShowCmd = &cobra.Command{
	Use:     "show",
	Short:   "Show the persisted weights and statuses",
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run:     showSettings,
}

var statusSetCmd = &cobra.Command{
	Use:     "set TYPOLOGY true|false",
	Short:   "Enable or disable a typology",
	Args:    cobra.ExactArgs(2),
	PreRunE: sharedSetupWrapper,
	Run: func(cmd *cobra.Command, args []string) {
		enabled, err := contract.ParseBoolString(args[1])
		if err != nil {
			fatal("Invalid status", fmt.Errorf("%w: %v", schema.ErrInvalidInput, err))
		}
		name := typologyArg(args[0])
		if err := engine.UpdateStatus(name, enabled); err != nil {
			fatal("Failed to update status", err)
		}
		cmd.Printf("Set %s enabled=%t\n", name, enabled)
	},
}
