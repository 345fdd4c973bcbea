package sim

import (
	"fmt"
	"runtime"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/netsim/builder"
)

// Option customizes a Simulator.
type Option func(*Simulator)

// WithWorkers sets the size of the per-pair enumeration pool (≥ 1).
// Default: runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(s *Simulator) {
		if n < 1 {
			s.err = fmt.Errorf("sim: workers=%d < 1: %w", n, builder.ErrInvalidParameter)
			return
		}
		s.workers = n
	}
}

// WithParallelIterations sets how many iterations may run at once (≥ 1).
// Default: 1.
func WithParallelIterations(n int) Option {
	return func(s *Simulator) {
		if n < 1 {
			s.err = fmt.Errorf("sim: parallel_iterations=%d < 1: %w", n, builder.ErrInvalidParameter)
			return
		}
		s.parallel = n
	}
}

// WithPathBudget caps the number of simple paths enumerated per pair.
// 0 (the default) means unlimited.
func WithPathBudget(k int) Option {
	return func(s *Simulator) {
		if k < 0 {
			s.err = fmt.Errorf("sim: path_budget=%d < 0: %w", k, builder.ErrInvalidParameter)
			return
		}
		s.budget = k
	}
}

// WithLogger replaces the default logging.Get() logger.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Simulator) {
		s.log = l
	}
}

func defaultWorkers() int {
	return runtime.GOMAXPROCS(0)
}
