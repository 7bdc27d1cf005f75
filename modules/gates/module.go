// Package gates decodes the unitary gate operations. Gates are never
// simulated, so every gate decodes into the same operation type; only the
// qubit arguments and the parameter names differ between families.
package gates

import (
	"fmt"
	"maps"
	"slices"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/specialistvlad/qmock/internal/operation"
	"github.com/specialistvlad/qmock/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// arity selects the qubit arguments a gate family takes.
type arity int

const (
	single arity = iota // qubit
	two                 // control, target
	multi               // qubits
)

// family describes one gate family. params are listed in canonical order.
type family struct {
	arity  arity
	params []string
}

var families = map[string]family{
	"Identity":                   {single, nil},
	"Hadamard":                   {single, nil},
	"PauliX":                     {single, nil},
	"PauliY":                     {single, nil},
	"PauliZ":                     {single, nil},
	"SGate":                      {single, nil},
	"TGate":                      {single, nil},
	"SqrtPauliX":                 {single, nil},
	"InvSqrtPauliX":              {single, nil},
	"RotateX":                    {single, []string{"theta"}},
	"RotateY":                    {single, []string{"theta"}},
	"RotateZ":                    {single, []string{"theta"}},
	"RotateXY":                   {single, []string{"theta", "phi"}},
	"PhaseShiftState0":           {single, []string{"theta"}},
	"PhaseShiftState1":           {single, []string{"theta"}},
	"RotateAroundSphericalAxis":  {single, []string{"theta", "spherical_theta", "spherical_phi"}},
	"SingleQubitGate":            {single, []string{"alpha_r", "alpha_i", "beta_r", "beta_i", "global_phase"}},
	"CNOT":                       {two, nil},
	"SWAP":                       {two, nil},
	"ISwap":                      {two, nil},
	"SqrtISwap":                  {two, nil},
	"InvSqrtISwap":               {two, nil},
	"FSwap":                      {two, nil},
	"ControlledPauliY":           {two, nil},
	"ControlledPauliZ":           {two, nil},
	"MolmerSorensenXX":           {two, nil},
	"ControlledPhaseShift":       {two, []string{"theta"}},
	"VariableMSXX":               {two, []string{"theta"}},
	"XY":                         {two, []string{"theta"}},
	"PMInteraction":              {two, []string{"t"}},
	"ComplexPMInteraction":       {two, []string{"t_real", "t_imag"}},
	"Qsim":                       {two, []string{"x", "y", "z"}},
	"Fsim":                       {two, []string{"t", "u", "delta"}},
	"SpinInteraction":            {two, []string{"x", "y", "z"}},
	"Bogoliubov":                 {two, []string{"delta_real", "delta_imag"}},
	"PhaseShiftedControlledZ":    {two, []string{"phi"}},
	"GivensRotation":             {two, []string{"theta", "phi"}},
	"GivensRotationLittleEndian": {two, []string{"theta", "phi"}},
	"MultiQubitMS":               {multi, []string{"theta"}},
	"MultiQubitZZ":               {multi, []string{"theta"}},
}

// Families returns the sorted names of all supported gate families.
func Families() []string {
	return slices.Sorted(maps.Keys(families))
}

func (f family) schema() *hcl.BodySchema {
	schema := &hcl.BodySchema{}
	switch f.arity {
	case single:
		schema.Attributes = append(schema.Attributes, hcl.AttributeSchema{Name: "qubit", Required: true})
	case two:
		schema.Attributes = append(schema.Attributes,
			hcl.AttributeSchema{Name: "control", Required: true},
			hcl.AttributeSchema{Name: "target", Required: true})
	case multi:
		schema.Attributes = append(schema.Attributes, hcl.AttributeSchema{Name: "qubits", Required: true})
	}
	for _, p := range f.params {
		schema.Attributes = append(schema.Attributes, hcl.AttributeSchema{Name: p, Required: true})
	}
	return schema
}

func (f family) decode(b *registry.Block) (operation.Operation, hcl.Diagnostics) {
	content, diags := b.Body.Content(f.schema())
	if diags.HasErrors() {
		return nil, diags
	}

	var qubits []int
	switch f.arity {
	case single:
		var q int
		diags = append(diags, gohcl.DecodeExpression(content.Attributes["qubit"].Expr, nil, &q)...)
		qubits = []int{q}
	case two:
		var control, target int
		diags = append(diags, gohcl.DecodeExpression(content.Attributes["control"].Expr, nil, &control)...)
		diags = append(diags, gohcl.DecodeExpression(content.Attributes["target"].Expr, nil, &target)...)
		qubits = []int{control, target}
	case multi:
		diags = append(diags, gohcl.DecodeExpression(content.Attributes["qubits"].Expr, nil, &qubits)...)
	}
	if diags.HasErrors() {
		return nil, diags
	}
	for _, q := range qubits {
		if q < 0 {
			return nil, hcl.Diagnostics{{
				Severity: hcl.DiagError,
				Summary:  "Invalid qubit index",
				Detail:   fmt.Sprintf("Gate %s acts on qubit %d; qubit indices must not be negative.", b.Name, q),
				Subject:  b.Body.MissingItemRange().Ptr(),
			}}
		}
	}

	params := make([]operation.Parameter, 0, len(f.params))
	for _, name := range f.params {
		params = append(params, operation.Parameter{Name: name, Value: b.Expression(content.Attributes[name].Expr)})
	}
	return operation.NewGate(b.Name, qubits, params...), diags
}

// Register registers one decoder per gate family.
func (m *Module) Register(r *registry.Registry) {
	for name, f := range families {
		r.RegisterDecoder(name, &registry.Decoder{
			Category: operation.CategoryGate,
			Decode:   f.decode,
		})
	}
}
