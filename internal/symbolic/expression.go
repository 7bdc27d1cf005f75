package symbolic

import (
	"fmt"
	"strconv"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
)

// Expression is a numeric gate parameter, either a literal or an algebraic
// expression over named symbols. The zero Expression evaluates to 0.
type Expression struct {
	expr hcl.Expression
	src  string
}

// Number returns a literal expression.
func Number(v float64) Expression {
	return Expression{
		expr: hcl.StaticExpr(cty.NumberFloatVal(v), hcl.Range{Filename: "<literal>"}),
		src:  strconv.FormatFloat(v, 'g', -1, 64),
	}
}

// Parse parses src as an HCL native-syntax expression.
func Parse(src string) (Expression, error) {
	expr, diags := hclsyntax.ParseExpression([]byte(src), "<parameter>", hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return Expression{}, fmt.Errorf("invalid parameter expression %q: %w", src, diags)
	}
	return Expression{expr: expr, src: src}, nil
}

// MustParse is Parse for expressions known to be valid. It panics on error.
func MustParse(src string) Expression {
	e, err := Parse(src)
	if err != nil {
		panic(err)
	}
	return e
}

// FromHCL wraps an expression decoded from an HCL file. file holds the bytes
// of the source file and is only used to render the expression text; it may
// be nil.
func FromHCL(expr hcl.Expression, file []byte) Expression {
	if expr == nil {
		return Expression{}
	}
	rng := expr.Range()
	src := rng.String()
	if file != nil && rng.End.Byte <= len(file) && rng.Start.Byte < rng.End.Byte {
		src = string(rng.SliceBytes(file))
	}
	return Expression{expr: expr, src: src}
}

// String returns the source text of the expression.
func (e Expression) String() string {
	if e.expr == nil {
		return "0"
	}
	return e.src
}

// IsZero reports whether e is the zero Expression.
func (e Expression) IsZero() bool {
	return e.expr == nil
}

// Symbols returns the sorted names of all symbols the expression references.
func (e Expression) Symbols() []string {
	symbols, _ := analyze(e.expr)
	return symbols
}

// Functions returns the sorted names of all functions the expression calls.
func (e Expression) Functions() []string {
	_, functions := analyze(e.expr)
	return functions
}

// IsSymbolic reports whether the expression references at least one symbol.
func (e Expression) IsSymbolic() bool {
	return len(e.Symbols()) > 0
}
