// Package backend runs a circuit for a number of repetitions and
// accumulates the output registers of every run.
package backend

import (
	"context"
	"fmt"
	"time"

	"github.com/specialistvlad/qmock/internal/ctxlog"
	"github.com/specialistvlad/qmock/internal/interpreter"
	"github.com/specialistvlad/qmock/internal/metrics"
	"github.com/specialistvlad/qmock/internal/operation"
	"github.com/specialistvlad/qmock/internal/register"
	"github.com/specialistvlad/qmock/internal/symbolic"
	"github.com/specialistvlad/qmock/internal/synth"
	"golang.org/x/sync/errgroup"
)

// Config describes a mocked device and how circuits are run on it.
type Config struct {
	NumberQubits int
	MockedQubits int
	// Repetitions is the number of runs per circuit. Zero means one.
	Repetitions int
	// Seed makes the results reproducible. Run i draws from stream i.
	Seed uint64
	// Parallelism bounds the number of concurrent runs. Values below 2 run
	// sequentially.
	Parallelism         int
	Substitutions       symbolic.Table
	GlobalPhaseRegister string
}

func (c Config) interpreter() interpreter.Config {
	return interpreter.Config{
		NumberQubits:        c.NumberQubits,
		MockedQubits:        c.MockedQubits,
		Substitutions:       c.Substitutions,
		GlobalPhaseRegister: c.GlobalPhaseRegister,
	}
}

func (c Config) repetitions() int {
	return max(c.Repetitions, 1)
}

// Option configures a Backend.
type Option func(*Backend)

// WithMetrics records every run on the given collectors.
func WithMetrics(m *metrics.Collectors) Option {
	return func(b *Backend) { b.metrics = m }
}

// Backend executes circuits with synthetic results.
type Backend struct {
	cfg     Config
	metrics *metrics.Collectors
}

// Result is the outcome of all repetitions of one circuit.
type Result struct {
	Outputs     *register.Outputs
	Repetitions int
	GlobalPhase float64
	Operations  int
}

// New validates cfg and creates a backend.
func New(cfg Config, opts ...Option) (*Backend, error) {
	if err := cfg.interpreter().Validate(); err != nil {
		return nil, fmt.Errorf("invalid backend configuration: %w", err)
	}
	if cfg.Repetitions < 0 {
		return nil, fmt.Errorf("invalid backend configuration: repetitions must not be negative, got %d", cfg.Repetitions)
	}
	b := &Backend{cfg: cfg}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// Config returns the backend configuration.
func (b *Backend) Config() Config {
	return b.cfg
}

// RunCircuit interprets circuit once, using stream 0 of the seed.
func (b *Backend) RunCircuit(ctx context.Context, circuit *operation.Circuit) (*register.Outputs, error) {
	out := register.NewOutputs()
	if _, err := b.runOnce(ctx, circuit, 0, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Run interprets circuit for every repetition and merges the outputs in
// run order. The first failing run aborts the others.
func (b *Backend) Run(ctx context.Context, circuit *operation.Circuit) (*Result, error) {
	logger := ctxlog.FromContext(ctx)
	reps := b.cfg.repetitions()
	logger.Info("Running circuit.", "operations", circuit.Len(), "repetitions", reps, "parallelism", b.cfg.Parallelism)

	perRun := make([]*register.Outputs, reps)
	stats := make([]interpreter.Stats, reps)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(b.cfg.Parallelism, 1))
	for i := range reps {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out := register.NewOutputs()
			st, err := b.runOnce(gctx, circuit, uint64(i), out)
			if err != nil {
				return fmt.Errorf("repetition %d: %w", i, err)
			}
			perRun[i], stats[i] = out, st
			return nil
		})
	}
	err := g.Wait()
	b.metrics.ObserveCircuit(b.cfg.interpreter().Mocked(), err)
	if err != nil {
		return nil, err
	}

	phaseRegister := b.cfg.interpreter().PhaseRegister()
	res := &Result{Outputs: register.NewOutputs(), Repetitions: reps}
	for i, out := range perRun {
		res.Outputs.Merge(out, phaseRegister)
		res.Operations += stats[i].Operations
		if stats[i].GlobalPhase != 0 {
			res.GlobalPhase = stats[i].GlobalPhase
		}
	}

	logger.Info("Circuit finished.", "registers", res.Outputs.Len(), "operations", res.Operations)
	return res, nil
}

func (b *Backend) runOnce(ctx context.Context, circuit *operation.Circuit, stream uint64, out *register.Outputs) (interpreter.Stats, error) {
	interp, err := interpreter.New(b.cfg.interpreter(), synth.NewSeeded(b.cfg.Seed, stream))
	if err != nil {
		return interpreter.Stats{}, err
	}

	start := time.Now()
	st, err := interp.Run(ctxlog.With(ctx, "repetition", stream), circuit, out)
	b.metrics.ObserveRun(time.Since(start), categoryNames(st.ByCategory), err)
	return st, err
}

func categoryNames(byCategory map[operation.Category]int) map[string]int {
	named := make(map[string]int, len(byCategory))
	for c, n := range byCategory {
		named[c.String()] = n
	}
	return named
}
