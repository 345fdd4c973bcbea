// Command networksim runs the random doubly weighted network simulation and
// writes each iteration's cheapest paths to a run directory.
//
// Usage:
//
//	networksim [-config sim.yaml] [-iterations N] [-nodes N] [-p P] [-seed S]
//	           [-node-min W] [-node-max W] [-edge-min W] [-edge-max W]
//	           [-out DIR] [-sqlite FILE] [-dot] [-workers N] [-parallel N]
//	           [-budget K] [-log-level LEVEL]
//
// Flags override values from the config file.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/netsim/config"
	"github.com/katalvlaran/netsim/logging"
	"github.com/katalvlaran/netsim/report"
	"github.com/katalvlaran/netsim/sim"
	"github.com/katalvlaran/netsim/store/sqlite"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stderr))
}

func run(ctx context.Context, args []string, stderr io.Writer) int {
	cfg, err := parseConfig(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 2
	}

	level, _ := logging.ParseLevel(cfg.Log.Level)
	log := logging.New(stderr, level)

	if err := simulate(ctx, cfg, log); err != nil {
		log.Error().Err(err).Msg("simulation failed")
		return 1
	}

	return 0
}

// parseConfig loads the optional config file and applies flags that were
// set explicitly on the command line.
func parseConfig(args []string, stderr io.Writer) (*config.Config, error) {
	fs := flag.NewFlagSet("networksim", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		configPath = fs.String("config", "", "path to a .yaml/.yml/.toml config file")
		iterations = fs.Int("iterations", 0, "number of simulated networks")
		nodes      = fs.Int("nodes", 0, "candidate vertex count per network (recommended 2-18)")
		prob       = fs.Float64("p", 0, "edge probability in [0,1]")
		nodeMin    = fs.Int64("node-min", 0, "minimum vertex weight")
		nodeMax    = fs.Int64("node-max", 0, "maximum vertex weight")
		edgeMin    = fs.Int64("edge-min", 0, "minimum edge weight")
		edgeMax    = fs.Int64("edge-max", 0, "maximum edge weight")
		seed       = fs.Int64("seed", 0, "random seed")
		outDir     = fs.String("out", "", "run directory (must not exist)")
		sqlitePath = fs.String("sqlite", "", "also store results in this SQLite file")
		dot        = fs.Bool("dot", true, "write a Graphviz .dot file per iteration")
		workers    = fs.Int("workers", 0, "concurrent pair enumerations")
		parallel   = fs.Int("parallel", 0, "concurrent iterations")
		budget     = fs.Int("budget", 0, "max simple paths per pair, 0 = unlimited")
		logLevel   = fs.String("log-level", "", "debug, info, warn or error")
	)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return nil, err
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "iterations":
			cfg.Simulation.Iterations = *iterations
		case "nodes":
			cfg.Simulation.NodeCount = *nodes
		case "p":
			cfg.Simulation.EdgeProbability = *prob
		case "node-min":
			cfg.Simulation.NodeWeight.Min = *nodeMin
		case "node-max":
			cfg.Simulation.NodeWeight.Max = *nodeMax
		case "edge-min":
			cfg.Simulation.EdgeWeight.Min = *edgeMin
		case "edge-max":
			cfg.Simulation.EdgeWeight.Max = *edgeMax
		case "seed":
			cfg.Simulation.Seed = *seed
		case "out":
			cfg.Output.Dir = *outDir
		case "sqlite":
			cfg.Output.SQLite = *sqlitePath
		case "dot":
			cfg.Output.DOT = *dot
		case "workers":
			cfg.Workers = *workers
		case "parallel":
			cfg.ParallelIterations = *parallel
		case "budget":
			cfg.PathBudget = *budget
		case "log-level":
			cfg.Log.Level = *logLevel
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// simulate streams every iteration into the run directory and, when
// configured, the SQLite store.
func simulate(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	runDir, err := report.NewRunDir(cfg.Output.Dir, report.WithDOT(cfg.Output.DOT))
	if err != nil {
		return err
	}

	var (
		store *sqlite.Store
		runID int64
	)
	if cfg.Output.SQLite != "" {
		if store, err = sqlite.New(ctx, cfg.Output.SQLite); err != nil {
			return err
		}
		defer store.Close()
		if runID, err = store.SaveRun(ctx, cfg.Simulation); err != nil {
			return err
		}
	}

	s, err := sim.New(append(cfg.SimulatorOptions(), sim.WithLogger(log))...)
	if err != nil {
		return err
	}
	defer s.Close()

	return s.Stream(ctx, cfg.Simulation, func(it *sim.Iteration) error {
		if err := runDir.WriteIteration(it); err != nil {
			return err
		}
		if store != nil {
			if err := store.SaveIteration(ctx, runID, it); err != nil {
				return err
			}
		}

		sum := it.Summary()
		log.Info().
			Int("iteration", it.Index).
			Int("vertices", it.Graph.VertexCount()).
			Int("edges", it.Graph.EdgeCount()).
			Int("results", sum.Count).
			Int("truncated", len(it.Truncated)).
			Float64("mean_cost", sum.MeanCost).
			Float64("min_cost", sum.MinCost).
			Float64("max_cost", sum.MaxCost).
			Dur("elapsed", it.Elapsed).
			Msg("iteration written")

		return nil
	})
}
