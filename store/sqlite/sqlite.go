// Package sqlite persists simulation runs in a SQLite database using the
// pure-Go modernc.org/sqlite driver.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/katalvlaran/netsim/core"
	"github.com/katalvlaran/netsim/paths"
	"github.com/katalvlaran/netsim/sim"
)

// ErrNotFound is returned when a run or iteration is not stored.
var ErrNotFound = errors.New("sqlite: not found")

// Store writes runs, iterations and their results.
type Store struct {
	db *sql.DB
}

// New opens (creating if needed) the database at path and migrates the
// schema. ":memory:" gives a private in-memory database.
func New(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// One connection keeps :memory: databases shared and serializes writers.
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return s, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		seed INTEGER NOT NULL,
		iterations INTEGER NOT NULL,
		nodes INTEGER NOT NULL,
		edge_probability REAL NOT NULL,
		node_weight_min INTEGER NOT NULL,
		node_weight_max INTEGER NOT NULL,
		edge_weight_min INTEGER NOT NULL,
		edge_weight_max INTEGER NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS iterations (
		run_id INTEGER NOT NULL,
		idx INTEGER NOT NULL,
		vertices INTEGER NOT NULL,
		edges INTEGER NOT NULL,
		elapsed_ns INTEGER NOT NULL,
		PRIMARY KEY (run_id, idx),
		FOREIGN KEY (run_id) REFERENCES runs(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS vertices (
		run_id INTEGER NOT NULL,
		iteration INTEGER NOT NULL,
		id INTEGER NOT NULL,
		weight INTEGER NOT NULL,
		PRIMARY KEY (run_id, iteration, id),
		FOREIGN KEY (run_id, iteration) REFERENCES iterations(run_id, idx) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS edges (
		run_id INTEGER NOT NULL,
		iteration INTEGER NOT NULL,
		seq INTEGER NOT NULL,
		src INTEGER NOT NULL,
		dst INTEGER NOT NULL,
		weight INTEGER NOT NULL,
		PRIMARY KEY (run_id, iteration, seq),
		FOREIGN KEY (run_id, iteration) REFERENCES iterations(run_id, idx) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS results (
		run_id INTEGER NOT NULL,
		iteration INTEGER NOT NULL,
		source INTEGER NOT NULL,
		destination INTEGER NOT NULL,
		path JSON NOT NULL,
		cost INTEGER NOT NULL,
		PRIMARY KEY (run_id, iteration, source, destination),
		FOREIGN KEY (run_id, iteration) REFERENCES iterations(run_id, idx) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS truncated (
		run_id INTEGER NOT NULL,
		iteration INTEGER NOT NULL,
		source INTEGER NOT NULL,
		destination INTEGER NOT NULL,
		PRIMARY KEY (run_id, iteration, source, destination),
		FOREIGN KEY (run_id, iteration) REFERENCES iterations(run_id, idx) ON DELETE CASCADE
	);

	CREATE INDEX IF NOT EXISTS idx_results_cost ON results(run_id, iteration, cost);
	`

	_, err := s.db.ExecContext(ctx, schema)
	return err
}

// SaveRun records the parameters of a new run and returns its ID.
func (s *Store) SaveRun(ctx context.Context, p sim.Params) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (seed, iterations, nodes, edge_probability,
			node_weight_min, node_weight_max, edge_weight_min, edge_weight_max)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, p.Seed, p.Iterations, p.NodeCount, p.EdgeProbability,
		p.NodeWeight.Min, p.NodeWeight.Max, p.EdgeWeight.Min, p.EdgeWeight.Max)
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}

	return res.LastInsertId()
}

// SaveIteration stores one iteration's network, results and truncated pairs
// in a single transaction.
func (s *Store) SaveIteration(ctx context.Context, runID int64, it *sim.Iteration) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	g := it.Graph
	if _, err = tx.ExecContext(ctx, `
		INSERT INTO iterations (run_id, idx, vertices, edges, elapsed_ns) VALUES (?, ?, ?, ?, ?)
	`, runID, it.Index, g.VertexCount(), g.EdgeCount(), it.Elapsed.Nanoseconds()); err != nil {
		return fmt.Errorf("failed to insert iteration %d: %w", it.Index, err)
	}

	for id, v := range g.VerticesMap() {
		if _, err = tx.ExecContext(ctx, `
			INSERT INTO vertices (run_id, iteration, id, weight) VALUES (?, ?, ?, ?)
		`, runID, it.Index, id, v.Weight); err != nil {
			return fmt.Errorf("failed to insert vertex %d: %w", id, err)
		}
	}

	for seq, e := range g.Edges() {
		if _, err = tx.ExecContext(ctx, `
			INSERT INTO edges (run_id, iteration, seq, src, dst, weight) VALUES (?, ?, ?, ?, ?, ?)
		`, runID, it.Index, seq, e.From, e.To, e.Weight); err != nil {
			return fmt.Errorf("failed to insert edge %d-%d: %w", e.From, e.To, err)
		}
	}

	var path []byte
	for _, r := range it.Results {
		if path, err = json.Marshal([]int(r.Path)); err != nil {
			return fmt.Errorf("failed to marshal path: %w", err)
		}
		if _, err = tx.ExecContext(ctx, `
			INSERT INTO results (run_id, iteration, source, destination, path, cost) VALUES (?, ?, ?, ?, ?, ?)
		`, runID, it.Index, r.Source, r.Destination, string(path), r.Cost); err != nil {
			return fmt.Errorf("failed to insert result %d-%d: %w", r.Source, r.Destination, err)
		}
	}

	for _, pr := range it.Truncated {
		if _, err = tx.ExecContext(ctx, `
			INSERT INTO truncated (run_id, iteration, source, destination) VALUES (?, ?, ?, ?)
		`, runID, it.Index, pr.Source, pr.Destination); err != nil {
			return fmt.Errorf("failed to insert truncated pair %s: %w", pr, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit iteration %d: %w", it.Index, err)
	}

	return nil
}

// Results loads an iteration's results in pair order.
func (s *Store) Results(ctx context.Context, runID int64, iteration int) ([]sim.Result, error) {
	if err := s.requireIteration(ctx, runID, iteration); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT source, destination, path, cost
		FROM results
		WHERE run_id = ? AND iteration = ?
		ORDER BY source, destination
	`, runID, iteration)
	if err != nil {
		return nil, fmt.Errorf("failed to query results: %w", err)
	}
	defer rows.Close()

	out := []sim.Result{}
	for rows.Next() {
		var (
			r    sim.Result
			path []byte
			ids  []int
		)
		if err := rows.Scan(&r.Source, &r.Destination, &path, &r.Cost); err != nil {
			return nil, fmt.Errorf("failed to scan result: %w", err)
		}
		if err := json.Unmarshal(path, &ids); err != nil {
			return nil, fmt.Errorf("failed to unmarshal path: %w", err)
		}
		r.Path = core.Path(ids)
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating results: %w", err)
	}

	return out, nil
}

// Truncated loads the pairs that exceeded the path budget in an iteration.
func (s *Store) Truncated(ctx context.Context, runID int64, iteration int) ([]paths.Pair, error) {
	if err := s.requireIteration(ctx, runID, iteration); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT source, destination FROM truncated
		WHERE run_id = ? AND iteration = ?
		ORDER BY source, destination
	`, runID, iteration)
	if err != nil {
		return nil, fmt.Errorf("failed to query truncated pairs: %w", err)
	}
	defer rows.Close()

	var out []paths.Pair
	for rows.Next() {
		var pr paths.Pair
		if err := rows.Scan(&pr.Source, &pr.Destination); err != nil {
			return nil, fmt.Errorf("failed to scan truncated pair: %w", err)
		}
		out = append(out, pr)
	}

	return out, rows.Err()
}

// Graph rebuilds an iteration's network. Edges are replayed in their
// insertion order, so neighbor order and therefore path enumeration order
// match the simulated graph.
func (s *Store) Graph(ctx context.Context, runID int64, iteration int) (*core.Graph, error) {
	if err := s.requireIteration(ctx, runID, iteration); err != nil {
		return nil, err
	}

	g := core.NewGraph()
	vrows, err := s.db.QueryContext(ctx, `
		SELECT id, weight FROM vertices WHERE run_id = ? AND iteration = ? ORDER BY id
	`, runID, iteration)
	if err != nil {
		return nil, fmt.Errorf("failed to query vertices: %w", err)
	}
	for vrows.Next() {
		var (
			id     int
			weight int64
		)
		if err := vrows.Scan(&id, &weight); err != nil {
			vrows.Close()
			return nil, fmt.Errorf("failed to scan vertex: %w", err)
		}
		if err := g.AddVertex(id, weight); err != nil {
			vrows.Close()
			return nil, err
		}
	}
	vrows.Close()
	if err := vrows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating vertices: %w", err)
	}

	erows, err := s.db.QueryContext(ctx, `
		SELECT src, dst, weight FROM edges WHERE run_id = ? AND iteration = ? ORDER BY seq
	`, runID, iteration)
	if err != nil {
		return nil, fmt.Errorf("failed to query edges: %w", err)
	}
	defer erows.Close()
	for erows.Next() {
		var (
			u, v   int
			weight int64
		)
		if err := erows.Scan(&u, &v, &weight); err != nil {
			return nil, fmt.Errorf("failed to scan edge: %w", err)
		}
		if _, err := g.AddEdge(u, v, weight); err != nil {
			return nil, err
		}
	}

	return g, erows.Err()
}

// IterationInfo is the stored summary row of an iteration.
type IterationInfo struct {
	Index    int
	Vertices int
	Edges    int
	Elapsed  time.Duration
}

// Iterations lists the stored iterations of a run in index order.
func (s *Store) Iterations(ctx context.Context, runID int64) ([]IterationInfo, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT idx, vertices, edges, elapsed_ns FROM iterations WHERE run_id = ? ORDER BY idx
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query iterations: %w", err)
	}
	defer rows.Close()

	var out []IterationInfo
	for rows.Next() {
		var (
			info IterationInfo
			ns   int64
		)
		if err := rows.Scan(&info.Index, &info.Vertices, &info.Edges, &ns); err != nil {
			return nil, fmt.Errorf("failed to scan iteration: %w", err)
		}
		info.Elapsed = time.Duration(ns)
		out = append(out, info)
	}

	return out, rows.Err()
}

func (s *Store) requireIteration(ctx context.Context, runID int64, iteration int) error {
	var n int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM iterations WHERE run_id = ? AND idx = ?
	`, runID, iteration).Scan(&n)
	if err != nil {
		return fmt.Errorf("failed to look up iteration: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: run %d iteration %d", ErrNotFound, runID, iteration)
	}

	return nil
}
