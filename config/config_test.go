package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netsim/builder"
	"github.com/katalvlaran/netsim/config"
)

func write(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestDefault_IsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, config.DefaultOutputDir, cfg.Output.Dir)
	assert.Equal(t, 1, cfg.Simulation.Iterations)
	assert.Len(t, cfg.SimulatorOptions(), 3)
}

func TestLoad_YAML(t *testing.T) {
	path := write(t, "sim.yaml", `
simulation:
  iterations: 3
  nodes: 12
  edge_probability: 0.35
  node_weight: {min: 5, max: 50}
  edge_weight: {min: 2, max: 4}
  seed: 99
workers: 4
path_budget: 1000
output:
  dir: out
  sqlite: out/results.db
  dot: false
log:
  level: debug
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 3, cfg.Simulation.Iterations)
	assert.Equal(t, 12, cfg.Simulation.NodeCount)
	assert.Equal(t, 0.35, cfg.Simulation.EdgeProbability)
	assert.Equal(t, builder.WeightRange{Min: 5, Max: 50}, cfg.Simulation.NodeWeight)
	assert.Equal(t, builder.WeightRange{Min: 2, Max: 4}, cfg.Simulation.EdgeWeight)
	assert.Equal(t, int64(99), cfg.Simulation.Seed)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, 1, cfg.ParallelIterations, "missing key keeps default")
	assert.Equal(t, 1000, cfg.PathBudget)
	assert.Equal(t, config.OutputConfig{Dir: "out", SQLite: "out/results.db", DOT: false}, cfg.Output)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_TOML(t *testing.T) {
	path := write(t, "sim.toml", `
workers = 2
parallel_iterations = 2

[simulation]
iterations = 5
nodes = 7
edge_probability = 0.5

[simulation.edge_weight]
min = 3
max = 3

[output]
dir = "runs"
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 5, cfg.Simulation.Iterations)
	assert.Equal(t, 7, cfg.Simulation.NodeCount)
	assert.Equal(t, 0.5, cfg.Simulation.EdgeProbability)
	assert.Equal(t, builder.WeightRange{Min: 10, Max: 100}, cfg.Simulation.NodeWeight, "default kept")
	assert.Equal(t, builder.WeightRange{Min: 3, Max: 3}, cfg.Simulation.EdgeWeight)
	assert.Equal(t, 2, cfg.ParallelIterations)
	assert.Equal(t, "runs", cfg.Output.Dir)
	assert.True(t, cfg.Output.DOT)
}

func TestSave_RoundTrip(t *testing.T) {
	want := config.Default()
	want.Simulation.Iterations = 4
	want.Simulation.Seed = 7
	want.PathBudget = 250
	want.Output.SQLite = "results.db"

	for _, name := range []string{"rt.yaml", "rt.yml", "rt.toml"} {
		path := filepath.Join(t.TempDir(), name)
		require.NoError(t, want.Save(path), name)

		got, err := config.Load(path)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(write(t, "sim.json", `{}`))
	assert.ErrorIs(t, err, config.ErrUnsupportedFormat)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = config.Load(write(t, "bad.yaml", "simulation: [1, 2"))
	assert.Error(t, err)

	_, err = config.Load(write(t, "bad.toml", "workers = \"many\""))
	assert.Error(t, err)

	assert.ErrorIs(t, config.Default().Save(filepath.Join(t.TempDir(), "x.ini")), config.ErrUnsupportedFormat)
}

func TestLoad_AppliesDefaults(t *testing.T) {
	cfg, err := config.Load(write(t, "zero.yaml", "workers: 0\nparallel_iterations: 0\noutput: {dir: \"\"}\nlog: {level: \"\"}\n"))
	require.NoError(t, err)
	assert.Positive(t, cfg.Workers)
	assert.Equal(t, 1, cfg.ParallelIterations)
	assert.Equal(t, config.DefaultOutputDir, cfg.Output.Dir)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(c *config.Config){
		"iterations":  func(c *config.Config) { c.Simulation.Iterations = 0 },
		"probability": func(c *config.Config) { c.Simulation.EdgeProbability = 2 },
		"node range":  func(c *config.Config) { c.Simulation.NodeWeight = builder.WeightRange{Min: 3, Max: 1} },
		"nodes":       func(c *config.Config) { c.Simulation.NodeCount = -4 },
		"workers":     func(c *config.Config) { c.Workers = 0 },
		"parallel":    func(c *config.Config) { c.ParallelIterations = -1 },
		"path budget": func(c *config.Config) { c.PathBudget = -1 },
	}
	for name, mutate := range cases {
		cfg := config.Default()
		mutate(cfg)
		assert.ErrorIs(t, cfg.Validate(), builder.ErrInvalidParameter, name)
	}

	cfg := config.Default()
	cfg.Log.Level = "shouting"
	assert.Error(t, cfg.Validate())
}
