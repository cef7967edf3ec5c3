package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/pprof"
	"slices"
	"strings"

	"github.com/huangsam/typomatch/core"
	"github.com/huangsam/typomatch/core/typology"
	"github.com/huangsam/typomatch/internal/contract"
	"github.com/huangsam/typomatch/internal/docstore"
	"github.com/huangsam/typomatch/internal/logging"
	"github.com/huangsam/typomatch/internal/outwriter"
	"github.com/huangsam/typomatch/schema"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// All linker flags will be set by goreleaser infra at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCtx is the root context for all operations.
var rootCtx = context.Background()

// cfg will hold the validated, final configuration.
var cfg = contract.NewConfig()

// input holds the raw, unvalidated configuration from all sources (file, env, flags).
// Viper will unmarshal into this struct.
var input = &contract.ConfigRawInput{}

// profilePrefix is set when CPU and memory profiling is enabled.
var profilePrefix string

// Runtime dependencies built by sharedSetup.
var (
	logger   = zerolog.Nop()
	store    contract.DocumentStore
	registry *typology.Registry
	engine   *core.Engine
	writer   = outwriter.NewOutWriter()
)

// startProfiling starts CPU profiling if enabled.
func startProfiling() error {
	if profilePrefix == "" {
		return nil
	}

	cpuFile, err := os.Create(profilePrefix + ".cpu.prof")
	if err != nil {
		return fmt.Errorf("could not create CPU profile: %w", err)
	}
	if err := pprof.StartCPUProfile(cpuFile); err != nil {
		return fmt.Errorf("could not start CPU profiling: %w", err)
	}
	_, err = fmt.Fprintf(os.Stderr, "Profiling enabled. CPU profile: %s.cpu.prof, Memory profile: %s.mem.prof\n", profilePrefix, profilePrefix)
	return err
}

// stopProfiling stops profiling and writes memory profile.
func stopProfiling() error {
	if profilePrefix == "" {
		return nil
	}

	pprof.StopCPUProfile()

	memFile, err := os.Create(profilePrefix + ".mem.prof")
	if err != nil {
		return fmt.Errorf("could not create memory profile: %w", err)
	}
	defer func() { _ = memFile.Close() }()

	if err := pprof.WriteHeapProfile(memFile); err != nil {
		return fmt.Errorf("could not write memory profile: %w", err)
	}
	return nil
}

// rootCmd is the command-line entrypoint for all other commands.
var rootCmd = &cobra.Command{
	Use:   "typomatch",
	Short: "Classify relationships between personality types and score their comfort.",
	Long: `Typomatch classifies the relationship between two personality types under
Socionics, Psychosophia, Temporistics, Amatoric and plugin typologies, attaches
a comfort score from an editable score document, blends scores across
typologies and gates matches by distance.`,
	Version:            version,
	SilenceErrors:      true,
	SilenceUsage:       true,
	DisableSuggestions: true,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName(".typomatch") // Name of config file (without extension)
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME")
	}

	viper.SetEnvPrefix("TYPOMATCH")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("backend", string(schema.FileBackend))
	viper.SetDefault("data-dir", "")
	viper.SetDefault("db-connect", "")
	viper.SetDefault("workers", contract.DefaultWorkers)
	viper.SetDefault("threshold", schema.DefaultComfortThreshold)
	viper.SetDefault("max-distance", schema.DefaultMaxDistanceKm)
	viper.SetDefault("plugins", "")
	viper.SetDefault("output", string(schema.TextOut))
	viper.SetDefault("precision", contract.DefaultPrecision)
	viper.SetDefault("color", "yes")
	viper.SetDefault("log-level", contract.DefaultLogLevel)
	viper.SetDefault("log-format", contract.DefaultLogFormat)
}

// loadConfig merges file, env and flags and validates the result into cfg.
func loadConfig() error {
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found, which is fine; we'll use defaults/env/flags.
	}

	if err := viper.Unmarshal(input); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}
	if err := contract.ProcessAndValidate(cfg, input); err != nil {
		return err
	}

	logger = logging.New(logging.Config{
		Level:     cfg.LogLevel,
		Format:    cfg.LogFormat,
		Timestamp: true,
		Output:    os.Stderr,
	})
	return nil
}

// selectPlugins returns the default plugins named in the configuration, in its order.
func selectPlugins(names []schema.TypologyName) []typology.Classifier {
	var plugins []typology.Classifier
	for _, name := range names {
		idx := slices.IndexFunc(typology.DefaultPlugins(), func(c typology.Classifier) bool { return c.Name() == name })
		if idx >= 0 {
			plugins = append(plugins, typology.DefaultPlugins()[idx])
		}
	}
	return plugins
}

// scoreSources adapts every registered classifier to a seed source.
func scoreSources(reg *typology.Registry) []docstore.ScoreSource {
	var sources []docstore.ScoreSource
	for _, name := range reg.Names() {
		if c, err := reg.Resolve(name); err == nil {
			sources = append(sources, c)
		}
	}
	return sources
}

// openStore opens the configured document store and builds the registry.
func openStore() error {
	reg, err := typology.NewDefaultRegistry(selectPlugins(cfg.Plugins)...)
	if err != nil {
		return fmt.Errorf("failed to build typology registry: %w", err)
	}
	registry = reg

	s, err := docstore.Open(cfg.Backend, cfg.StoreLocation())
	if err != nil {
		return fmt.Errorf("failed to open document store: %w", err)
	}
	store = s

	// A memory store starts empty every run, so it is seeded right away.
	if cfg.Backend == schema.MemoryBackend {
		if _, err := docstore.Seed(store, scoreSources(registry)...); err != nil {
			return fmt.Errorf("failed to seed memory store: %w", err)
		}
	}
	storeLog := logging.Component(logger, "store")
	storeLog.Debug().
		Str("backend", string(cfg.Backend)).
		Str("location", cfg.StoreLocation()).
		Msg("document store opened")
	return nil
}

// sharedSetup loads configuration and wires the engine over the document store.
func sharedSetup(_ context.Context, _ *cobra.Command, _ []string) error {
	profilePrefix = viper.GetString("profile")
	if err := startProfiling(); err != nil {
		return fmt.Errorf("failed to start profiling: %w", err)
	}
	if err := loadConfig(); err != nil {
		return err
	}
	if err := openStore(); err != nil {
		return err
	}

	docs := docstore.NewDocuments(store)
	engine = core.NewEngine(registry, docs, docs,
		core.WithLogger(logger),
		core.WithComfortThreshold(cfg.ComfortThreshold),
		core.WithMaxDistanceKm(cfg.MaxDistanceKm),
		core.WithWorkers(cfg.Workers),
	)
	return nil
}

// sharedSetupWrapper wraps sharedSetup to provide context for Cobra's PreRunE.
func sharedSetupWrapper(cmd *cobra.Command, args []string) error {
	return sharedSetup(rootCtx, cmd, args)
}

// fatal reports a command failure, pointing at store init when documents are missing.
func fatal(msg string, err error) {
	if errors.Is(err, schema.ErrDocumentNotFound) {
		err = fmt.Errorf("%w (run 'typomatch store init' to seed the default documents)", err)
	}
	contract.LogFatal(msg, err)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// Shutdown closes the document store and stops profiling.
func Shutdown() error {
	var errs []error
	if store != nil {
		errs = append(errs, store.Close())
	}
	errs = append(errs, stopProfiling())
	return errors.Join(errs...)
}
