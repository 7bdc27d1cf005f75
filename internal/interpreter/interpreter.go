package interpreter

import (
	"context"
	"fmt"

	"github.com/specialistvlad/qmock/internal/ctxlog"
	"github.com/specialistvlad/qmock/internal/operation"
	"github.com/specialistvlad/qmock/internal/register"
	"github.com/specialistvlad/qmock/internal/symbolic"
	"github.com/specialistvlad/qmock/internal/synth"
)

// Interpreter executes circuits with synthetic results. An Interpreter owns
// its generator and is therefore not safe for concurrent use.
type Interpreter struct {
	cfg      Config
	gen      *synth.Generator
	resolver *symbolic.Resolver
}

// Stats summarises one run.
type Stats struct {
	Operations  int
	ByCategory  map[operation.Category]int
	GlobalPhase float64
}

// New creates an interpreter drawing its results from gen.
func New(cfg Config, gen *synth.Generator) (*Interpreter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if gen == nil {
		return nil, fmt.Errorf("interpreter needs a generator")
	}
	return &Interpreter{
		cfg:      cfg,
		gen:      gen,
		resolver: symbolic.NewResolver(cfg.Substitutions),
	}, nil
}

// Run interprets circuit once and folds its output registers into out.
// On error out is left untouched.
func (i *Interpreter) Run(ctx context.Context, circuit *operation.Circuit, out *register.Outputs) (Stats, error) {
	logger := ctxlog.FromContext(ctx)

	r := &run{
		store:    register.NewStore(),
		gen:      i.gen,
		resolver: i.resolver,
		mocked:   i.cfg.Mocked(),
	}
	stats := Stats{ByCategory: make(map[operation.Category]int)}

	for idx, op := range circuit.All() {
		logger.Debug("Dispatching operation.", "index", idx, "operation", op.Hqslang(), "category", op.Category())
		if err := r.dispatch(op); err != nil {
			return Stats{}, fmt.Errorf("operation %d (%s): %w", idx, op.Hqslang(), err)
		}
		stats.Operations++
		stats.ByCategory[op.Category()]++
	}

	r.store.Fold(out)
	if r.phase != 0 {
		if _, ok := out.Reals[i.cfg.PhaseRegister()]; ok {
			out.Reals[i.cfg.PhaseRegister()] = [][]float64{{r.phase}}
		}
	}
	stats.GlobalPhase = r.phase

	logger.Debug("Run finished.", "operations", stats.Operations, "global_phase", r.phase)
	return stats, nil
}

// Execute runs circuit once and returns its output registers.
func (i *Interpreter) Execute(ctx context.Context, circuit *operation.Circuit) (*register.Outputs, error) {
	out := register.NewOutputs()
	if _, err := i.Run(ctx, circuit, out); err != nil {
		return nil, err
	}
	return out, nil
}
