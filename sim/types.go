package sim

import (
	"fmt"
	"time"

	"github.com/katalvlaran/netsim/builder"
	"github.com/katalvlaran/netsim/core"
	"github.com/katalvlaran/netsim/paths"
)

// Params describes a whole simulation run.
type Params struct {
	builder.GenerationParams `yaml:",inline"`

	// Iterations is the number of independent networks to simulate (≥ 1).
	Iterations int `yaml:"iterations" toml:"iterations"`

	// Seed selects the run's random streams. 0 behaves like builder.DefaultSeed.
	Seed int64 `yaml:"seed" toml:"seed"`
}

// Validate checks the generation parameters and the iteration count.
func (p Params) Validate() error {
	if p.Iterations < 1 {
		return fmt.Errorf("sim: iterations=%d < 1: %w", p.Iterations, builder.ErrInvalidParameter)
	}

	return p.GenerationParams.Validate()
}

// Result is the cheapest path found for one ordered pair.
type Result struct {
	Source      int
	Destination int
	Path        core.Path
	Cost        int64
}

// String renders the record line "(s , d) : [p0, p1, ...] : cost".
func (r Result) String() string {
	return fmt.Sprintf("(%d , %d) : %s : %d", r.Source, r.Destination, r.Path, r.Cost)
}

// Iteration is the outcome of one simulated network.
type Iteration struct {
	// Index is the zero-based iteration number.
	Index int

	// Graph is the generated network; read-only once the iteration is built.
	Graph *core.Graph

	// Results holds one record per connected pair, in pair order.
	Results []Result

	// Truncated lists pairs skipped because they exceeded the path budget.
	Truncated []paths.Pair

	// Elapsed is the wall time spent generating and evaluating.
	Elapsed time.Duration
}
