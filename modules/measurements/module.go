// Package measurements decodes the measurement operations and readout
// pragmas.
package measurements

import (
	"fmt"
	"strconv"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/specialistvlad/qmock/internal/operation"
	"github.com/specialistvlad/qmock/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// MeasureQubitInput defines the arguments of MeasureQubit.
type MeasureQubitInput struct {
	Qubit        int    `hcl:"qubit"`
	Readout      string `hcl:"readout"`
	ReadoutIndex int    `hcl:"readout_index"`
}

// RepeatedMeasurementInput defines the arguments of PragmaRepeatedMeasurement.
type RepeatedMeasurementInput struct {
	Readout            string         `hcl:"readout"`
	NumberMeasurements int            `hcl:"number_measurements"`
	QubitMapping       map[string]int `hcl:"qubit_mapping,optional"`
}

// PauliProductInput defines the arguments of PragmaGetPauliProduct.
type PauliProductInput struct {
	QubitPaulis map[string]int `hcl:"qubit_paulis"`
	Readout     string         `hcl:"readout"`
}

// IndexedReadoutInput defines the arguments of PragmaPauliProdMeasurement.
type IndexedReadoutInput struct {
	Readout      string `hcl:"readout"`
	ReadoutIndex int    `hcl:"readout_index"`
}

// ReadoutInput defines the arguments of the whole-register readout pragmas.
type ReadoutInput struct {
	Readout string `hcl:"readout"`
}

func decodeMeasureQubit(b *registry.Block) (operation.Operation, hcl.Diagnostics) {
	var in MeasureQubitInput
	if diags := gohcl.DecodeBody(b.Body, nil, &in); diags.HasErrors() {
		return nil, diags
	}
	return operation.NewMeasureQubit(in.Qubit, in.Readout, in.ReadoutIndex), nil
}

func decodeRepeatedMeasurement(b *registry.Block) (operation.Operation, hcl.Diagnostics) {
	var in RepeatedMeasurementInput
	if diags := gohcl.DecodeBody(b.Body, nil, &in); diags.HasErrors() {
		return nil, diags
	}
	if in.NumberMeasurements < 0 {
		return nil, invalid(b, "number_measurements must not be negative")
	}
	mapping, err := qubitMap(in.QubitMapping)
	if err != nil {
		return nil, invalid(b, "qubit_mapping: "+err.Error())
	}
	return operation.NewRepeatedMeasurement(in.Readout, in.NumberMeasurements, mapping), nil
}

func decodePauliProduct(b *registry.Block) (operation.Operation, hcl.Diagnostics) {
	var in PauliProductInput
	if diags := gohcl.DecodeBody(b.Body, nil, &in); diags.HasErrors() {
		return nil, diags
	}
	paulis, err := qubitMap(in.QubitPaulis)
	if err != nil {
		return nil, invalid(b, "qubit_paulis: "+err.Error())
	}
	for q, p := range paulis {
		if p < 0 || p > 3 {
			return nil, invalid(b, fmt.Sprintf("qubit_paulis: qubit %d has Pauli %d, expected 0 (I), 1 (X), 2 (Y) or 3 (Z)", q, p))
		}
	}
	return operation.NewGetPauliProduct(paulis, in.Readout, nil), nil
}

func decodePauliProductMeasurement(b *registry.Block) (operation.Operation, hcl.Diagnostics) {
	var in IndexedReadoutInput
	if diags := gohcl.DecodeBody(b.Body, nil, &in); diags.HasErrors() {
		return nil, diags
	}
	return operation.NewPauliProductMeasurement(in.Readout, in.ReadoutIndex), nil
}

func readoutDecoder(ctor func(readout string, circuit *operation.Circuit) *operation.Readout) func(*registry.Block) (operation.Operation, hcl.Diagnostics) {
	return func(b *registry.Block) (operation.Operation, hcl.Diagnostics) {
		var in ReadoutInput
		if diags := gohcl.DecodeBody(b.Body, nil, &in); diags.HasErrors() {
			return nil, diags
		}
		return ctor(in.Readout, nil), nil
	}
}

// qubitMap converts an HCL object keyed by qubit index.
func qubitMap(raw map[string]int) (map[int]int, error) {
	if raw == nil {
		return nil, nil
	}
	out := make(map[int]int, len(raw))
	for k, v := range raw {
		q, err := strconv.Atoi(k)
		if err != nil || q < 0 {
			return nil, fmt.Errorf("key %q is not a qubit index", k)
		}
		out[q] = v
	}
	return out, nil
}

func invalid(b *registry.Block, detail string) hcl.Diagnostics {
	return hcl.Diagnostics{{
		Severity: hcl.DiagError,
		Summary:  fmt.Sprintf("Invalid %s arguments", b.Name),
		Detail:   detail,
		Subject:  b.Body.MissingItemRange().Ptr(),
	}}
}

// Register registers the decoders with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterDecoder("MeasureQubit", &registry.Decoder{
		Category: operation.CategoryMeasureQubit,
		Decode:   decodeMeasureQubit,
	})
	r.RegisterDecoder("PragmaRepeatedMeasurement", &registry.Decoder{
		Category: operation.CategoryRepeatedMeasurement,
		Decode:   decodeRepeatedMeasurement,
	})
	r.RegisterDecoder("PragmaGetPauliProduct", &registry.Decoder{
		Category: operation.CategoryGetPauliProduct,
		Decode:   decodePauliProduct,
	})
	r.RegisterDecoder("PragmaPauliProdMeasurement", &registry.Decoder{
		Category: operation.CategoryPauliProductMeasurement,
		Decode:   decodePauliProductMeasurement,
	})
	r.RegisterDecoder("PragmaGetOccupationProbability", &registry.Decoder{
		Category: operation.CategoryOccupationProbability,
		Decode:   readoutDecoder(operation.NewGetOccupationProbability),
	})
	r.RegisterDecoder("PragmaGetRotatedOccupationProbability", &registry.Decoder{
		Category: operation.CategoryRotatedOccupationProbability,
		Decode:   readoutDecoder(operation.NewGetRotatedOccupationProbability),
	})
	r.RegisterDecoder("PragmaGetStateVector", &registry.Decoder{
		Category: operation.CategoryStateVector,
		Decode:   readoutDecoder(operation.NewGetStateVector),
	})
	r.RegisterDecoder("PragmaGetDensityMatrix", &registry.Decoder{
		Category: operation.CategoryDensityMatrix,
		Decode:   readoutDecoder(operation.NewGetDensityMatrix),
	})
}
