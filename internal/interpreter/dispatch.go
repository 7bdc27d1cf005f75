package interpreter

import (
	"fmt"

	"github.com/specialistvlad/qmock/internal/operation"
	"github.com/specialistvlad/qmock/internal/register"
	"github.com/specialistvlad/qmock/internal/symbolic"
	"github.com/specialistvlad/qmock/internal/synth"
)

// run is the state of a single circuit run.
type run struct {
	store    *register.Store
	gen      *synth.Generator
	resolver *symbolic.Resolver
	mocked   int
	phase    float64
}

// dispatch applies one operation to the run state.
func (r *run) dispatch(op operation.Operation) error {
	category := op.Category()
	switch category {
	case operation.CategoryDefinition:
		d, ok := op.(operation.Declarer)
		if !ok {
			return missing(op, "Declarer")
		}
		return r.store.Declare(d.Definition())

	case operation.CategoryGate:
		// Gates are not simulated. Parameters are still resolved so that
		// unsubstituted symbols fail the run.
		p, ok := op.(operation.Parametrized)
		if !ok {
			return nil
		}
		for _, param := range p.Parameters() {
			if _, err := r.resolver.Resolve(param.Value); err != nil {
				return fmt.Errorf("parameter %s: %w", param.Name, err)
			}
		}
		return nil

	case operation.CategoryMeasureQubit:
		m, ok := op.(operation.Indexed)
		if !ok {
			return missing(op, "Indexed")
		}
		return r.store.SetBit(m.Readout(), m.ReadoutIndex(), r.gen.Bit())

	case operation.CategoryRepeatedMeasurement:
		m, ok := op.(operation.Batched)
		if !ok {
			return missing(op, "Batched")
		}
		if m.NumberMeasurements() < 0 {
			return fmt.Errorf("number of measurements must not be negative, got %d", m.NumberMeasurements())
		}
		return r.store.ExtendBits(m.Readout(), r.gen.BitMatrix(m.NumberMeasurements(), r.mocked))

	case operation.CategoryGetPauliProduct:
		m, ok := op.(operation.Readouter)
		if !ok {
			return missing(op, "Readouter")
		}
		return r.store.SetReal(m.Readout(), 0, r.gen.Real())

	case operation.CategoryPauliProductMeasurement:
		m, ok := op.(operation.Indexed)
		if !ok {
			return missing(op, "Indexed")
		}
		return r.store.SetReal(m.Readout(), m.ReadoutIndex(), r.gen.Real())

	case operation.CategoryOccupationProbability, operation.CategoryRotatedOccupationProbability:
		m, ok := op.(operation.Readouter)
		if !ok {
			return missing(op, "Readouter")
		}
		return r.store.ReplaceReals(m.Readout(), r.gen.Reals(r.mocked))

	case operation.CategoryStateVector:
		m, ok := op.(operation.Readouter)
		if !ok {
			return missing(op, "Readouter")
		}
		return r.store.ReplaceComplexes(m.Readout(), r.gen.StateVector(r.mocked))

	case operation.CategoryDensityMatrix:
		m, ok := op.(operation.Readouter)
		if !ok {
			return missing(op, "Readouter")
		}
		return r.store.ExtendComplexes(m.Readout(), r.gen.DensityMatrix(r.mocked))

	case operation.CategoryGlobalPhase:
		p, ok := op.(operation.Phased)
		if !ok {
			return missing(op, "Phased")
		}
		v, err := r.resolver.Resolve(p.Phase())
		if err != nil {
			return err
		}
		r.phase += v
		return nil

	case operation.CategoryBookkeeping:
		return nil

	default:
		return &UnsupportedOperationError{Hqslang: op.Hqslang(), Category: category}
	}
}

func missing(op operation.Operation, accessor string) error {
	return &UnsupportedOperationError{
		Hqslang:  op.Hqslang(),
		Category: op.Category(),
		Reason:   fmt.Sprintf("category %s requires %s", op.Category(), accessor),
	}
}
