// Package report writes simulation results to a run directory:
//
//	<root>/
//	  0/0.txt   0/0.dot
//	  1/1.txt   1/1.dot
//	  ...
//
// Each .txt file starts with Header followed by one sim.Result line per
// connected pair. The optional .dot file is a Graphviz rendering of the
// iteration's network with vertex and edge weights.
package report

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/katalvlaran/netsim/sim"
)

// Header is the first line of every iteration record file.
const Header = "(start_vertex, end_vertex) : [path taken] : minWeightCalculated"

// ErrRunExists is returned when a run or iteration directory is already
// present; previous runs are never overwritten.
var ErrRunExists = errors.New("report: run directory already exists")

// Option customizes a RunDir.
type Option func(*RunDir)

// WithDOT toggles writing <i>.dot next to each <i>.txt.
func WithDOT(enabled bool) Option {
	return func(r *RunDir) { r.dot = enabled }
}

// RunDir is a created run root.
type RunDir struct {
	root string
	dot  bool
}

// NewRunDir creates root (and any missing parents). It fails with
// ErrRunExists if root already exists.
func NewRunDir(root string, opts ...Option) (*RunDir, error) {
	if parent := filepath.Dir(root); parent != "." {
		if err := os.MkdirAll(parent, 0o755); err != nil {
			return nil, fmt.Errorf("report: create %s: %w", parent, err)
		}
	}
	if err := os.Mkdir(root, 0o755); err != nil {
		if errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("%w: %s", ErrRunExists, root)
		}
		return nil, fmt.Errorf("report: create %s: %w", root, err)
	}

	r := &RunDir{root: root}
	for _, opt := range opts {
		opt(r)
	}

	return r, nil
}

// Root returns the run root path.
func (r *RunDir) Root() string { return r.root }

// IterationPath returns <root>/<i>/<i>.<ext>.
func (r *RunDir) IterationPath(index int, ext string) string {
	name := strconv.Itoa(index)
	return filepath.Join(r.root, name, name+"."+ext)
}

// WriteIteration creates <root>/<i>/ and writes the record file, plus the
// DOT file when enabled.
func (r *RunDir) WriteIteration(it *sim.Iteration) error {
	dir := filepath.Join(r.root, strconv.Itoa(it.Index))
	if err := os.Mkdir(dir, 0o755); err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("%w: %s", ErrRunExists, dir)
		}
		return fmt.Errorf("report: create %s: %w", dir, err)
	}

	if err := writeFile(r.IterationPath(it.Index, "txt"), func(w io.Writer) error {
		return WriteResults(w, it.Results)
	}); err != nil {
		return err
	}
	if !r.dot {
		return nil
	}

	return writeFile(r.IterationPath(it.Index, "dot"), func(w io.Writer) error {
		return WriteDOT(w, it.Graph, fmt.Sprintf("iteration_%d", it.Index))
	})
}

// WriteResults writes Header and one line per result.
func WriteResults(w io.Writer, results []sim.Result) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, Header); err != nil {
		return err
	}
	for _, res := range results {
		if _, err := fmt.Fprintln(bw, res.String()); err != nil {
			return err
		}
	}

	return bw.Flush()
}

func writeFile(path string, fill func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("report: close %s: %w", path, cerr)
		}
	}()
	if err = fill(f); err != nil {
		return fmt.Errorf("report: write %s: %w", path, err)
	}

	return nil
}
