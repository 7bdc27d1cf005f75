// Package pragmas decodes PragmaGlobalPhase and the book-keeping pragmas.
// Book-keeping pragmas accept any arguments and ignore them.
package pragmas

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/qmock/internal/operation"
	"github.com/specialistvlad/qmock/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

var globalPhaseSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{{Name: "phase", Required: true}},
}

func decodeGlobalPhase(b *registry.Block) (operation.Operation, hcl.Diagnostics) {
	content, diags := b.Body.Content(globalPhaseSchema)
	if diags.HasErrors() {
		return nil, diags
	}
	return operation.NewGlobalPhase(b.Expression(content.Attributes["phase"].Expr)), diags
}

func decodeBookkeeping(b *registry.Block) (operation.Operation, hcl.Diagnostics) {
	// Only attributes are allowed; their values are never evaluated.
	if _, diags := b.Body.JustAttributes(); diags.HasErrors() {
		return nil, diags
	}
	return operation.NewPragma(b.Name), nil
}

// Register registers the decoders with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterDecoder("PragmaGlobalPhase", &registry.Decoder{
		Category: operation.CategoryGlobalPhase,
		Decode:   decodeGlobalPhase,
	})
	for _, name := range operation.BookkeepingPragmas() {
		r.RegisterDecoder(name, &registry.Decoder{
			Category: operation.CategoryBookkeeping,
			Decode:   decodeBookkeeping,
		})
	}
}
