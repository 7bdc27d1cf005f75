package symbolic

import (
	"fmt"
	"strings"
)

// UnresolvedSymbolError is returned when a substitution table is present
// but does not define every symbol an expression references.
type UnresolvedSymbolError struct {
	Expression string
	Symbols    []string
}

func (e *UnresolvedSymbolError) Error() string {
	return fmt.Sprintf("parameter %q: symbol(s) %s missing from substitution table", e.Expression, strings.Join(e.Symbols, ", "))
}

// SymbolicParameterWithoutSubstitutionError is returned when an expression
// references symbols and no substitution table was supplied at all.
type SymbolicParameterWithoutSubstitutionError struct {
	Expression string
	Symbols    []string
}

func (e *SymbolicParameterWithoutSubstitutionError) Error() string {
	return fmt.Sprintf("parameter %q is symbolic (%s) but no substitution table was given; substitute parameters first",
		e.Expression, strings.Join(e.Symbols, ", "))
}
