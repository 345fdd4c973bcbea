package sim

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/netsim/bfs"
	"github.com/katalvlaran/netsim/builder"
	"github.com/katalvlaran/netsim/core"
	"github.com/katalvlaran/netsim/logging"
	"github.com/katalvlaran/netsim/pathcost"
	"github.com/katalvlaran/netsim/paths"
)

// Simulator owns the worker pools. It is safe for concurrent use; Close
// releases the pools.
type Simulator struct {
	workers  int
	parallel int
	budget   int
	log      zerolog.Logger

	pairPool *ants.Pool
	iterPool *ants.Pool

	err error
}

// New builds a Simulator from opts.
//
// Errors:
//   - builder.ErrInvalidParameter for out-of-range options.
//   - pool construction errors from ants.
func New(opts ...Option) (*Simulator, error) {
	s := &Simulator{
		workers:  defaultWorkers(),
		parallel: 1,
		log:      logging.Get(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.err != nil {
		return nil, s.err
	}

	var err error
	if s.pairPool, err = ants.NewPool(s.workers); err != nil {
		return nil, fmt.Errorf("sim: pair pool: %w", err)
	}
	if s.iterPool, err = ants.NewPool(s.parallel); err != nil {
		s.pairPool.Release()
		return nil, fmt.Errorf("sim: iteration pool: %w", err)
	}

	return s, nil
}

// Close releases both pools. The Simulator must not be used afterwards.
func (s *Simulator) Close() {
	s.iterPool.Release()
	s.pairPool.Release()
}

// pairOutcome is the slot a pair task fills in.
type pairOutcome struct {
	result    Result
	found     bool
	truncated bool
	err       error
}

// RunIteration evaluates every ordered pair of g and returns the cheapest
// path per connected pair, in pair order. Pairs over the path budget are
// dropped; use Run or Stream to see them in Iteration.Truncated.
func (s *Simulator) RunIteration(ctx context.Context, g *core.Graph) ([]Result, error) {
	res, _, err := s.evaluate(ctx, g)

	return res, err
}

func (s *Simulator) evaluate(ctx context.Context, g *core.Graph) ([]Result, []paths.Pair, error) {
	if g == nil {
		return nil, nil, paths.ErrGraphNil
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	labels, err := bfs.Components(g)
	if err != nil {
		return nil, nil, err
	}

	var todo []paths.Pair
	for _, pr := range paths.Pairs(g) {
		if pr.Trivial() || labels[pr.Source] != labels[pr.Destination] {
			continue
		}
		todo = append(todo, pr)
	}

	var (
		out = make([]pairOutcome, len(todo))
		wg  sync.WaitGroup
	)
	for i, pr := range todo {
		if err = ctx.Err(); err != nil {
			break
		}
		i, pr := i, pr
		wg.Add(1)
		if err = s.pairPool.Submit(func() {
			defer wg.Done()
			out[i] = s.evaluatePair(ctx, g, pr)
		}); err != nil {
			wg.Done()
			err = fmt.Errorf("sim: submit pair %s: %w", pr, err)
			break
		}
	}
	wg.Wait()
	if err != nil {
		return nil, nil, err
	}

	var (
		results   = make([]Result, 0, len(todo))
		truncated []paths.Pair
	)
	for i, o := range out {
		switch {
		case o.err != nil:
			return nil, nil, o.err
		case o.truncated:
			truncated = append(truncated, todo[i])
		case o.found:
			results = append(results, o.result)
		}
	}

	return results, truncated, nil
}

func (s *Simulator) evaluatePair(ctx context.Context, g *core.Graph, pr paths.Pair) pairOutcome {
	if err := ctx.Err(); err != nil {
		return pairOutcome{err: err}
	}

	opts := []paths.Option{paths.WithContext(ctx)}
	if s.budget > 0 {
		opts = append(opts, paths.WithMaxPaths(s.budget))
	}
	candidates, err := paths.AllSimplePaths(g, pr.Source, pr.Destination, opts...)
	switch {
	case errors.Is(err, paths.ErrPathBudgetExceeded):
		ev := s.log.Warn().
			Int("source", pr.Source).
			Int("destination", pr.Destination).
			Int("budget", s.budget)
		if _, cheapest, cerr := pathcost.Cheapest(g, pr.Source, pr.Destination); cerr == nil {
			ev = ev.Int64("cheapest_cost", cheapest)
		}
		ev.Msg("path budget exceeded, pair skipped")
		return pairOutcome{truncated: true}
	case err != nil:
		return pairOutcome{err: fmt.Errorf("sim: pair %s: %w", pr, err)}
	}

	best, cost, err := pathcost.SelectMinimum(g, candidates)
	switch {
	case errors.Is(err, pathcost.ErrNoPathExists):
		return pairOutcome{}
	case err != nil:
		return pairOutcome{err: fmt.Errorf("sim: pair %s: %w", pr, err)}
	}

	return pairOutcome{
		found:  true,
		result: Result{Source: pr.Source, Destination: pr.Destination, Path: best, Cost: cost},
	}
}

// runOne generates and evaluates iteration index.
func (s *Simulator) runOne(ctx context.Context, params Params, index int) (*Iteration, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()
	g, err := builder.Generate(params.GenerationParams, builder.DeriveRand(params.Seed, uint64(index)))
	if err != nil {
		return nil, fmt.Errorf("sim: iteration %d: %w", index, err)
	}
	results, truncated, err := s.evaluate(ctx, g)
	if err != nil {
		return nil, fmt.Errorf("sim: iteration %d: %w", index, err)
	}

	it := &Iteration{
		Index:     index,
		Graph:     g,
		Results:   results,
		Truncated: truncated,
		Elapsed:   time.Since(start),
	}
	s.log.Debug().
		Int("iteration", index).
		Int("vertices", g.VertexCount()).
		Int("edges", g.EdgeCount()).
		Int("results", len(results)).
		Int("truncated", len(truncated)).
		Dur("elapsed", it.Elapsed).
		Msg("iteration evaluated")

	return it, nil
}

// Stream runs every iteration of params and hands each one to fn in index
// order as soon as it and all earlier iterations are done. Up to the
// configured number of iterations run concurrently while fn consumes.
//
// The first error from an iteration or from fn cancels the rest of the run
// and is returned.
func (s *Simulator) Stream(ctx context.Context, params Params, fn func(*Iteration) error) error {
	if err := params.Validate(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	type outcome struct {
		it  *Iteration
		err error
	}
	var (
		slots  = make([]chan outcome, params.Iterations)
		window = make(chan struct{}, 2*s.parallel)
		tasks  sync.WaitGroup
		feeder sync.WaitGroup
	)
	for i := range slots {
		slots[i] = make(chan outcome, 1)
	}

	s.log.Info().
		Int("iterations", params.Iterations).
		Int("nodes", params.NodeCount).
		Float64("edge_probability", params.EdgeProbability).
		Int64("seed", params.Seed).
		Msg("simulation started")

	feeder.Add(1)
	go func() {
		defer feeder.Done()
		for i := 0; i < params.Iterations; i++ {
			select {
			case window <- struct{}{}:
			case <-ctx.Done():
				slots[i] <- outcome{err: ctx.Err()}
				return
			}
			i := i
			tasks.Add(1)
			if err := s.iterPool.Submit(func() {
				defer tasks.Done()
				it, err := s.runOne(ctx, params, i)
				slots[i] <- outcome{it: it, err: err}
			}); err != nil {
				tasks.Done()
				slots[i] <- outcome{err: fmt.Errorf("sim: submit iteration %d: %w", i, err)}
				return
			}
		}
	}()

	var err error
	for i := 0; i < params.Iterations; i++ {
		o := <-slots[i]
		if o.err != nil {
			err = o.err
			break
		}
		if err = fn(o.it); err != nil {
			err = fmt.Errorf("sim: iteration %d sink: %w", i, err)
			break
		}
		<-window
	}
	cancel()
	feeder.Wait()
	tasks.Wait()

	if err != nil {
		s.log.Error().Err(err).Msg("simulation aborted")
		return err
	}
	s.log.Info().Int("iterations", params.Iterations).Msg("simulation finished")

	return nil
}

// Run executes the whole simulation and returns every iteration in order.
func (s *Simulator) Run(ctx context.Context, params Params) ([]*Iteration, error) {
	its := make([]*Iteration, 0, params.Iterations)
	err := s.Stream(ctx, params, func(it *Iteration) error {
		its = append(its, it)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return its, nil
}

// RunIteration evaluates g with a default Simulator.
func RunIteration(ctx context.Context, g *core.Graph) ([]Result, error) {
	s, err := New()
	if err != nil {
		return nil, err
	}
	defer s.Close()

	return s.RunIteration(ctx, g)
}

// RunSimulation runs params with a default Simulator.
func RunSimulation(ctx context.Context, params Params) ([]*Iteration, error) {
	s, err := New()
	if err != nil {
		return nil, err
	}
	defer s.Close()

	return s.Run(ctx, params)
}
