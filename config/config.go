// SPDX-License-Identifier: MIT
// Package config loads meshsim settings with viper (defaults, YAML file,
// MESHSIM_* environment variables), validates them with
// go-playground/validator and decodes YAML topology declarations.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvmesh/logging"
)

// EnvPrefix is the environment variable prefix: MESHSIM_BUILD_NODES etc.
const EnvPrefix = "MESHSIM"

// Generated ID schemes.
const (
	IDsNode   = "node"
	IDsSymbol = "symbol"
	IDsExcel  = "excel"
)

// Latency distributions.
const (
	DistInt     = "int"
	DistUniform = "uniform"
	DistNormal  = "normal"
)

// maxSymbolIDs is the size of the symbol ID alphabet.
const maxSymbolIDs = 26

// Build modes.
const (
	ModeRandom  = "random"
	ModeFull    = "full"
	ModePartial = "partial"
	ModeCustom  = "custom"
	ModeRing    = "ring"
	ModeStar    = "star"
	ModeGrid    = "grid"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

var validate = validator.New()

// Config is the full meshsim configuration.
type Config struct {
	Logging  logging.Config `mapstructure:"logging" yaml:"logging"`
	Build    BuildConfig    `mapstructure:"build" yaml:"build"`
	Analysis AnalysisConfig `mapstructure:"analysis" yaml:"analysis"`
}

// BuildConfig selects and parameterizes a topology constructor.
type BuildConfig struct {
	Mode string `mapstructure:"mode" yaml:"mode" validate:"required,oneof=random full partial custom ring star grid"`

	// Nodes and Degree drive random meshes; Nodes also sizes generated name
	// lists when Names is empty.
	Nodes  int `mapstructure:"nodes" yaml:"nodes" validate:"gte=0"`
	Degree int `mapstructure:"degree" yaml:"degree" validate:"gte=0"`
	// Names lists the routers of the named shapes (full, partial, ring,
	// star, grid).
	Names []string `mapstructure:"names" yaml:"names" validate:"dive,required"`
	// MinDegree is the partial mesh K.
	MinDegree int `mapstructure:"min_degree" yaml:"min_degree" validate:"gte=0"`
	// Columns is the grid width; 0 picks ⌈√n⌉.
	Columns int `mapstructure:"columns" yaml:"columns" validate:"gte=0"`
	// IDs picks the generated ID scheme: node ("Node0"), symbol ("A".."Z")
	// or excel ("A".."Z", "AA", ...).
	IDs string `mapstructure:"ids" yaml:"ids" validate:"omitempty,oneof=node symbol excel"`
	// Prefix switches generated IDs to "<Prefix><i>" and overrides IDs.
	Prefix string `mapstructure:"prefix" yaml:"prefix"`

	Seed       int64 `mapstructure:"seed" yaml:"seed"`
	LatencyMin int   `mapstructure:"latency_min" yaml:"latency_min" validate:"gte=0"`
	LatencyMax int   `mapstructure:"latency_max" yaml:"latency_max" validate:"gtefield=LatencyMin"`
	// LatencyDist shapes the draw over [LatencyMin, LatencyMax]: int
	// (uniform integers), uniform (continuous) or normal (centred, with
	// the bounds three deviations out).
	LatencyDist string `mapstructure:"latency_dist" yaml:"latency_dist" validate:"omitempty,oneof=int uniform normal"`
	// Latency, when > 0, replaces the random draw with a constant.
	Latency   float64 `mapstructure:"latency" yaml:"latency" validate:"gte=0"`
	Bandwidth float64 `mapstructure:"bandwidth" yaml:"bandwidth" validate:"gte=0"`

	// Topology is the YAML declaration read in custom mode.
	Topology string `mapstructure:"topology" yaml:"topology" validate:"required_if=Mode custom"`
}

// AnalysisConfig tunes the resilience report.
type AnalysisConfig struct {
	MinDegree      int  `mapstructure:"min_degree" yaml:"min_degree" validate:"gte=0"`
	LatencyWeights bool `mapstructure:"latency_weights" yaml:"latency_weights"`
	// Exact adds max-flow connectivity and articulation points to the report.
	Exact bool `mapstructure:"exact" yaml:"exact"`
}

// SetDefaults registers every default on v.
func SetDefaults(v *viper.Viper) {
	lc := logging.DefaultConfig()
	v.SetDefault("logging.level", lc.Level)
	v.SetDefault("logging.format", lc.Format)
	v.SetDefault("logging.add_caller", lc.AddCaller)
	v.SetDefault("logging.service_name", lc.ServiceName)
	v.SetDefault("logging.file", lc.File)
	v.SetDefault("logging.max_size_mb", lc.MaxSizeMB)
	v.SetDefault("logging.max_backups", lc.MaxBackups)
	v.SetDefault("logging.max_age_days", lc.MaxAgeDays)
	v.SetDefault("logging.compress", lc.Compress)

	v.SetDefault("build.mode", ModeRandom)
	v.SetDefault("build.nodes", 10)
	v.SetDefault("build.degree", 4)
	v.SetDefault("build.min_degree", 3)
	v.SetDefault("build.seed", 42)
	v.SetDefault("build.latency_min", 5)
	v.SetDefault("build.latency_max", 30)
	v.SetDefault("build.latency_dist", DistInt)
	v.SetDefault("build.ids", IDsNode)
	v.SetDefault("build.latency", 0)
	v.SetDefault("build.bandwidth", 0)

	v.SetDefault("analysis.min_degree", 2)
	v.SetDefault("analysis.latency_weights", false)
	v.SetDefault("analysis.exact", false)
}

// Load reads configuration into a fresh viper instance: defaults, then the
// file at path (optional; "" searches ./meshsim.yaml), then MESHSIM_*
// environment variables. The result is validated.
func Load(path string) (Config, error) {
	return LoadViper(viper.New(), path)
}

// LoadViper is Load on a caller-owned viper instance, so command-line flags
// bound to v take precedence over file and environment values.
func LoadViper(v *viper.Viper, path string) (Config, error) {
	SetDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("meshsim")
		v.SetConfigType("yaml")
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("config: read: %w", err)
		}
	}
	return FromViper(v)
}

// FromViper unmarshals and validates the settings held by v.
func FromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks struct tags plus the cross-field rules tags cannot express.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}
	b := c.Build
	if b.Mode == ModePartial && len(b.Names) == 0 && b.Nodes < b.MinDegree+1 {
		return fmt.Errorf("%w: build.nodes=%d cannot give every node degree %d", ErrInvalid, b.Nodes, b.MinDegree)
	}
	if b.IDs == IDsSymbol && b.Prefix == "" && len(b.Names) == 0 && b.Nodes > maxSymbolIDs {
		return fmt.Errorf("%w: build.ids=symbol covers %d routers, got build.nodes=%d", ErrInvalid, maxSymbolIDs, b.Nodes)
	}
	return nil
}

// formatValidationError reports the first failed rule in a readable form.
func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	e := verrs[0]
	field := e.Namespace()
	switch e.Tag() {
	case "required", "required_if":
		return fmt.Errorf("%w: %s: field is required", ErrInvalid, field)
	case "oneof":
		return fmt.Errorf("%w: %s: must be one of [%s]", ErrInvalid, field, e.Param())
	case "gte":
		return fmt.Errorf("%w: %s: must be at least %s", ErrInvalid, field, e.Param())
	case "gtefield":
		return fmt.Errorf("%w: %s: must not be below %s", ErrInvalid, field, e.Param())
	case "nefield":
		return fmt.Errorf("%w: %s: must differ from %s", ErrInvalid, field, e.Param())
	default:
		return fmt.Errorf("%w: %s: validation failed (%s)", ErrInvalid, field, e.Tag())
	}
}
