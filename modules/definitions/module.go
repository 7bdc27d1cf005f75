// Package definitions decodes the classical register definitions.
package definitions

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/specialistvlad/qmock/internal/operation"
	"github.com/specialistvlad/qmock/internal/register"
	"github.com/specialistvlad/qmock/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Input defines the arguments of every definition operation.
type Input struct {
	Name     string `hcl:"name"`
	Length   int    `hcl:"length"`
	IsOutput bool   `hcl:"is_output,optional"`
}

// kinds maps operation names to register kinds. DefinitionUsize holds
// integers, which are stored as reals.
var kinds = map[string]register.Kind{
	"DefinitionBit":     register.KindBit,
	"DefinitionFloat":   register.KindReal,
	"DefinitionUsize":   register.KindReal,
	"DefinitionComplex": register.KindComplex,
}

func decoder(kind register.Kind) func(b *registry.Block) (operation.Operation, hcl.Diagnostics) {
	return func(b *registry.Block) (operation.Operation, hcl.Diagnostics) {
		var in Input
		if diags := gohcl.DecodeBody(b.Body, nil, &in); diags.HasErrors() {
			return nil, diags
		}
		def := register.Definition{Name: in.Name, Kind: kind, Length: in.Length, IsOutput: in.IsOutput}
		if err := def.Validate(); err != nil {
			return nil, hcl.Diagnostics{{
				Severity: hcl.DiagError,
				Summary:  "Invalid register definition",
				Detail:   err.Error(),
				Subject:  b.Body.MissingItemRange().Ptr(),
			}}
		}
		return operation.NewDefinition(def), nil
	}
}

// Register registers the decoders with the registry.
func (m *Module) Register(r *registry.Registry) {
	for name, kind := range kinds {
		r.RegisterDecoder(name, &registry.Decoder{
			Category: operation.CategoryDefinition,
			Decode:   decoder(kind),
		})
	}
}
