package operation

import (
	"github.com/specialistvlad/qmock/internal/register"
	"github.com/specialistvlad/qmock/internal/symbolic"
)

// Operation is a single, read-only step of a circuit.
type Operation interface {
	// Hqslang is the name of the operation, e.g. "MeasureQubit".
	Hqslang() string
	// Tags lists the capability tags of the operation.
	Tags() []string
	// Category is the category the interpreter dispatches on.
	Category() Category
}

// Declarer is implemented by register definitions.
type Declarer interface {
	Definition() register.Definition
}

// Readouter is implemented by operations that write to a named register.
type Readouter interface {
	Readout() string
}

// Indexed is implemented by operations that write one register element.
type Indexed interface {
	Readouter
	ReadoutIndex() int
}

// Batched is implemented by operations that produce many rows at once.
type Batched interface {
	Readouter
	NumberMeasurements() int
}

// Parametrized is implemented by operations with named numeric parameters.
type Parametrized interface {
	// Parameters returns the parameters in their canonical order.
	Parameters() []Parameter
}

// Phased is implemented by operations that contribute to the global phase.
type Phased interface {
	Phase() symbolic.Expression
}

// Parameter is one named, possibly symbolic, parameter of an operation.
type Parameter struct {
	Name  string
	Value symbolic.Expression
}

// IsParametrized reports whether any parameter of p is symbolic.
func IsParametrized(p Parametrized) bool {
	for _, param := range p.Parameters() {
		if param.Value.IsSymbolic() {
			return true
		}
	}
	return false
}
