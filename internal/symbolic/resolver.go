package symbolic

import (
	"fmt"
	"math"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Resolver evaluates parameter expressions against an optional substitution
// table. It holds no mutable state and is safe for concurrent use.
type Resolver struct {
	table     Table
	functions map[string]function.Function
}

// NewResolver creates a resolver. A nil table means no substitution is
// available, so only symbol-free expressions can be resolved.
func NewResolver(table Table) *Resolver {
	return &Resolver{
		table:     table,
		functions: mathFunctions(),
	}
}

// HasTable reports whether the resolver was given a substitution table.
func (r *Resolver) HasTable() bool {
	return r.table != nil
}

// Resolve evaluates e to a finite float64.
func (r *Resolver) Resolve(e Expression) (float64, error) {
	if e.expr == nil {
		return 0, nil
	}

	if refs := nestedReferences(e.expr); len(refs) > 0 {
		return 0, fmt.Errorf("parameter %q references %s; symbols must be plain names", e, strings.Join(refs, ", "))
	}
	symbols, functions := analyze(e.expr)
	if err := r.checkSymbols(e, symbols); err != nil {
		return 0, err
	}
	for _, name := range functions {
		if _, ok := r.functions[name]; !ok {
			return 0, fmt.Errorf("parameter %q calls unsupported function %q", e, name)
		}
	}

	evalCtx := &hcl.EvalContext{Functions: r.functions}
	if len(symbols) > 0 {
		evalCtx.Variables = make(map[string]cty.Value, len(symbols))
		for _, name := range symbols {
			evalCtx.Variables[name] = cty.NumberFloatVal(r.table[name])
		}
	}

	val, diags := e.expr.Value(evalCtx)
	if diags.HasErrors() {
		return 0, fmt.Errorf("evaluating parameter %q: %w", e, diags)
	}
	return toFloat(e, val)
}

func (r *Resolver) checkSymbols(e Expression, symbols []string) error {
	if len(symbols) == 0 {
		return nil
	}
	if r.table == nil {
		return &SymbolicParameterWithoutSubstitutionError{Expression: e.String(), Symbols: symbols}
	}
	var missing []string
	for _, name := range symbols {
		if _, ok := r.table[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return &UnresolvedSymbolError{Expression: e.String(), Symbols: missing}
	}
	return nil
}

func toFloat(e Expression, val cty.Value) (float64, error) {
	if val.IsNull() || !val.IsWhollyKnown() {
		return 0, fmt.Errorf("parameter %q did not evaluate to a known number", e)
	}
	num, err := convert.Convert(val, cty.Number)
	if err != nil {
		return 0, fmt.Errorf("parameter %q: %w", e, err)
	}
	var f float64
	if err := gocty.FromCtyValue(num, &f); err != nil {
		return 0, fmt.Errorf("parameter %q: %w", e, err)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("parameter %q evaluated to a non-finite value", e)
	}
	return f, nil
}
