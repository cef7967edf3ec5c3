package contract

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"strings"

	"github.com/huangsam/typomatch/internal/validation"
	"github.com/huangsam/typomatch/schema"
)

// Defaults shared by the viper layer and Config.
const (
	DefaultPrecision = 1
	DefaultWorkers   = 4
	DefaultWidth     = 0
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "console"
	MaxPrecision     = 4
	MaxWorkers       = 256
)

// Config is the validated runtime configuration of the CLI and MCP server.
type Config struct {
	// Storage
	Backend   schema.DatabaseBackend
	DataDir   string // directory for the file backend
	DBConnect string // path for sqlite, DSN for mysql and postgresql

	// Engine
	Workers          int
	ComfortThreshold int
	MaxDistanceKm    float64
	Plugins          []schema.TypologyName
	CustomWeights    schema.Weights // overrides the persisted weights when non-empty

	// Output
	Output     schema.OutputMode
	OutputFile string
	Precision  int
	Width      int
	UseColors  bool

	// Logging
	LogLevel  string
	LogFormat string
}

// ConfigRawInput holds the unprocessed values loaded by viper from flags, env and file.
type ConfigRawInput struct {
	Backend       string             `mapstructure:"backend" validate:"backend"`
	DataDir       string             `mapstructure:"data-dir"`
	DBConnect     string             `mapstructure:"db-connect"`
	Workers       int                `mapstructure:"workers" validate:"gte=1,lte=256"`
	Threshold     int                `mapstructure:"threshold"`
	MaxDistanceKm float64            `mapstructure:"max-distance" validate:"gte=0"`
	Plugins       string             `mapstructure:"plugins"`
	Weights       map[string]float64 `mapstructure:"weights"`
	Output        string             `mapstructure:"output" validate:"outputmode"`
	OutputFile    string             `mapstructure:"output-file"`
	Precision     int                `mapstructure:"precision" validate:"gte=0,lte=4"`
	Width         int                `mapstructure:"width" validate:"gte=0"`
	Color         string             `mapstructure:"color"`
	LogLevel      string             `mapstructure:"log-level"`
	LogFormat     string             `mapstructure:"log-format" validate:"omitempty,oneof=json console"`
}

// NewConfig returns a Config filled with defaults.
func NewConfig() *Config {
	return &Config{
		Backend:          schema.FileBackend,
		Workers:          DefaultWorkers,
		ComfortThreshold: schema.DefaultComfortThreshold,
		MaxDistanceKm:    schema.DefaultMaxDistanceKm,
		Plugins:          []schema.TypologyName{schema.IQ, schema.Temperament},
		Output:           schema.TextOut,
		Precision:        DefaultPrecision,
		UseColors:        true,
		LogLevel:         DefaultLogLevel,
		LogFormat:        DefaultLogFormat,
	}
}

// Clone returns a copy that shares no maps or slices with c.
func (c *Config) Clone() *Config {
	cloned := *c
	cloned.Plugins = slices.Clone(c.Plugins)
	cloned.CustomWeights = maps.Clone(c.CustomWeights)
	return &cloned
}

// ProcessAndValidate validates the raw input and applies it to cfg.
// cfg is left untouched when an error is returned.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	next := cfg.Clone()
	steps := []func(*Config, *ConfigRawInput) error{
		validateSimpleInputs,
		processBackend,
		processPlugins,
		processCustomWeights,
		processColor,
	}
	for _, step := range steps {
		if err := step(next, input); err != nil {
			return err
		}
	}
	*cfg = *next
	return nil
}

// validateSimpleInputs checks the struct tags and copies the scalar values.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	input.Backend = strings.ToLower(strings.TrimSpace(input.Backend))
	input.Output = strings.ToLower(strings.TrimSpace(input.Output))
	input.LogFormat = strings.ToLower(strings.TrimSpace(input.LogFormat))
	if input.Backend == "" {
		input.Backend = string(schema.FileBackend)
	}
	if input.Output == "" {
		input.Output = string(schema.TextOut)
	}

	if err := validation.ValidateStruct(input); err != nil {
		return err
	}
	if math.IsNaN(input.MaxDistanceKm) || math.IsInf(input.MaxDistanceKm, 0) {
		return fmt.Errorf("%w: max distance must be finite", schema.ErrInvalidInput)
	}

	cfg.Backend = schema.DatabaseBackend(input.Backend)
	cfg.DataDir = strings.TrimSpace(input.DataDir)
	cfg.DBConnect = strings.TrimSpace(input.DBConnect)
	cfg.Workers = input.Workers
	cfg.ComfortThreshold = input.Threshold
	cfg.MaxDistanceKm = input.MaxDistanceKm
	cfg.Output = schema.OutputMode(input.Output)
	cfg.OutputFile = strings.TrimSpace(input.OutputFile)
	cfg.Precision = input.Precision
	cfg.Width = input.Width
	if input.LogLevel != "" {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(input.LogLevel))
	}
	if input.LogFormat != "" {
		cfg.LogFormat = input.LogFormat
	}
	return nil
}

// processBackend checks that the connection settings match the backend.
func processBackend(cfg *Config, _ *ConfigRawInput) error {
	switch cfg.Backend {
	case schema.MySQLBackend, schema.PostgreSQLBackend:
		if cfg.DBConnect == "" {
			return fmt.Errorf("%w: db-connect is required for the %s backend", schema.ErrInvalidInput, cfg.Backend)
		}
		return ValidateDatabaseConnectionString(cfg.Backend, cfg.DBConnect)
	case schema.FileBackend, schema.SQLiteBackend, schema.MemoryBackend:
		return nil
	default:
		return fmt.Errorf("%w: unsupported backend %q", schema.ErrInvalidInput, cfg.Backend)
	}
}

// processPlugins parses the comma-separated plugin list. An empty string keeps the default.
func processPlugins(cfg *Config, input *ConfigRawInput) error {
	raw := strings.TrimSpace(input.Plugins)
	if raw == "" {
		return nil
	}
	if strings.EqualFold(raw, "none") {
		cfg.Plugins = nil
		return nil
	}

	known := []schema.TypologyName{schema.IQ, schema.Temperament}
	var plugins []schema.TypologyName
	seen := make(map[schema.TypologyName]struct{})
	for part := range strings.SplitSeq(raw, ",") {
		name := schema.ParseTypologyName(part, known)
		if !slices.Contains(known, name) {
			return fmt.Errorf("%w: %q is not a plugin typology", schema.ErrInvalidInput, part)
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		plugins = append(plugins, name)
	}
	cfg.Plugins = plugins
	return nil
}

// processCustomWeights converts the weights map of the config file.
func processCustomWeights(cfg *Config, input *ConfigRawInput) error {
	if len(input.Weights) == 0 {
		return nil
	}
	known := append(slices.Clone(schema.BuiltinTypologies), schema.IQ, schema.Temperament)
	weights := make(schema.Weights, len(input.Weights))
	for key, value := range input.Weights {
		name := schema.ParseTypologyName(key, known)
		if name == "" {
			return fmt.Errorf("%w: empty typology name in weights", schema.ErrInvalidInput)
		}
		if value < 0 || math.IsNaN(value) || math.IsInf(value, 0) {
			return fmt.Errorf("%w: weight for %s must be a finite non-negative number, got %v", schema.ErrInvalidInput, name, value)
		}
		weights[name] = value
	}
	cfg.CustomWeights = weights
	return nil
}

// processColor resolves the color switch. An empty value keeps the default.
func processColor(cfg *Config, input *ConfigRawInput) error {
	if strings.TrimSpace(input.Color) == "" {
		return nil
	}
	useColors, err := ParseBoolString(strings.TrimSpace(input.Color))
	if err != nil {
		return fmt.Errorf("%w: %v", schema.ErrInvalidInput, err)
	}
	cfg.UseColors = useColors
	return nil
}

// ValidateDatabaseConnectionString performs a shallow format check of a DSN.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.MySQLBackend:
		if !strings.Contains(connStr, "@tcp(") || !strings.Contains(connStr, "/") {
			return fmt.Errorf("%w: invalid MySQL connection string, expected user:pass@tcp(host:port)/dbname", schema.ErrInvalidInput)
		}
	case schema.PostgreSQLBackend:
		if strings.HasPrefix(connStr, "postgres://") || strings.HasPrefix(connStr, "postgresql://") {
			return nil
		}
		if !strings.Contains(connStr, "host=") || !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("%w: invalid PostgreSQL connection string, expected host=... dbname=... or a postgres:// URL", schema.ErrInvalidInput)
		}
	}
	return nil
}

// StoreLocation returns the location handed to docstore.Open for the configured backend.
func (c *Config) StoreLocation() string {
	switch c.Backend {
	case schema.FileBackend:
		return c.DataDir
	default:
		return c.DBConnect
	}
}
