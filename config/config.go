// Package config loads simulator settings from YAML or TOML files.
//
// A file only needs the keys it wants to change: decoding starts from
// Default(), so anything left out keeps its default value.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/netsim/builder"
	"github.com/katalvlaran/netsim/logging"
	"github.com/katalvlaran/netsim/sim"
)

// ErrUnsupportedFormat is returned for file extensions other than
// .yaml, .yml and .toml.
var ErrUnsupportedFormat = errors.New("config: unsupported file format")

// DefaultOutputDir is the run directory used when none is configured.
const DefaultOutputDir = "NetworkSim"

// Config is the full simulator configuration.
type Config struct {
	Simulation         sim.Params   `yaml:"simulation" toml:"simulation"`
	Workers            int          `yaml:"workers" toml:"workers"`
	ParallelIterations int          `yaml:"parallel_iterations" toml:"parallel_iterations"`
	PathBudget         int          `yaml:"path_budget" toml:"path_budget"`
	Output             OutputConfig `yaml:"output" toml:"output"`
	Log                LogConfig    `yaml:"log" toml:"log"`
}

// OutputConfig selects the result sinks.
type OutputConfig struct {
	// Dir is the run root; iteration i is written to Dir/i/i.txt.
	Dir string `yaml:"dir" toml:"dir"`
	// SQLite, when set, is the database file results are also stored in.
	SQLite string `yaml:"sqlite" toml:"sqlite"`
	// DOT writes Dir/i/i.dot next to each iteration's records.
	DOT bool `yaml:"dot" toml:"dot"`
}

// LogConfig sets the log level name (debug, info, warn, error).
type LogConfig struct {
	Level string `yaml:"level" toml:"level"`
}

// Default returns the reference configuration: one iteration over ten
// candidate nodes with p = 0.2, node weights in [10,100] and edge weights
// in [1,10].
func Default() *Config {
	return &Config{
		Simulation: sim.Params{
			GenerationParams: builder.GenerationParams{
				NodeCount:       10,
				EdgeProbability: 0.2,
				NodeWeight:      builder.WeightRange{Min: 10, Max: 100},
				EdgeWeight:      builder.WeightRange{Min: 1, Max: 10},
			},
			Iterations: 1,
			Seed:       builder.DefaultSeed,
		},
		Workers:            runtime.GOMAXPROCS(0),
		ParallelIterations: 1,
		Output:             OutputConfig{Dir: DefaultOutputDir, DOT: true},
		Log:                LogConfig{Level: "info"},
	}
}

// Load reads path, choosing the decoder by extension, and applies defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	cfg.applyDefaults()

	return cfg, nil
}

// Save writes c to path in the format implied by its extension.
func (c *Config) Save(path string) error {
	var (
		data []byte
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(c)
	case ".toml":
		var buf bytes.Buffer
		err = toml.NewEncoder(&buf).Encode(c)
		data = buf.Bytes()
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}

// applyDefaults fills in settings that have no meaningful zero value.
func (c *Config) applyDefaults() {
	if c.Workers <= 0 {
		c.Workers = runtime.GOMAXPROCS(0)
	}
	if c.ParallelIterations <= 0 {
		c.ParallelIterations = 1
	}
	if c.Output.Dir == "" {
		c.Output.Dir = DefaultOutputDir
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// Validate checks the simulation parameters and the runtime settings.
// Parameter problems wrap builder.ErrInvalidParameter.
func (c *Config) Validate() error {
	if err := c.Simulation.Validate(); err != nil {
		return err
	}
	if c.Workers < 1 {
		return fmt.Errorf("config: workers=%d < 1: %w", c.Workers, builder.ErrInvalidParameter)
	}
	if c.ParallelIterations < 1 {
		return fmt.Errorf("config: parallel_iterations=%d < 1: %w", c.ParallelIterations, builder.ErrInvalidParameter)
	}
	if c.PathBudget < 0 {
		return fmt.Errorf("config: path_budget=%d < 0: %w", c.PathBudget, builder.ErrInvalidParameter)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log level %q: %w", c.Log.Level, err)
	}

	return nil
}

// SimulatorOptions translates the runtime settings into sim options.
func (c *Config) SimulatorOptions() []sim.Option {
	return []sim.Option{
		sim.WithWorkers(c.Workers),
		sim.WithParallelIterations(c.ParallelIterations),
		sim.WithPathBudget(c.PathBudget),
	}
}
