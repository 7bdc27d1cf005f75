package registry

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/qmock/internal/operation"
	"github.com/specialistvlad/qmock/internal/symbolic"
)

// Block is one `operation "<Name>" { ... }` block of a circuit file.
type Block struct {
	Name string
	Body hcl.Body
	// Source holds the bytes of the file the block came from.
	Source []byte
}

// Decoder turns a block body into an operation of a fixed category.
type Decoder struct {
	Category operation.Category
	Decode   func(b *Block) (operation.Operation, hcl.Diagnostics)
}

// Module is the interface that all operation modules implement to be
// registered.
type Module interface {
	Register(r *Registry)
}

// Registry holds the decoders of a single application instance.
type Registry struct {
	decoders map[string]*Decoder
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{decoders: make(map[string]*Decoder)}
}

// RegisterDecoder registers the decoder for an operation name. Registering
// a name twice is a programming error and panics.
func (r *Registry) RegisterDecoder(name string, d *Decoder) {
	if _, exists := r.decoders[name]; exists {
		panic(fmt.Sprintf("decoder for operation '%s' already registered", name))
	}
	slog.Debug("Registering operation decoder.", "name", name, "category", d.Category)
	r.decoders[name] = d
}

// Lookup returns the decoder for name.
func (r *Registry) Lookup(name string) (*Decoder, bool) {
	d, ok := r.decoders[name]
	return d, ok
}

// Names returns the sorted names of all registered operations.
func (r *Registry) Names() []string {
	return slices.Sorted(maps.Keys(r.decoders))
}

// Decode decodes b with its registered decoder. The boolean is false when
// no decoder is registered for the block name.
func (r *Registry) Decode(b *Block) (operation.Operation, bool, hcl.Diagnostics) {
	d, ok := r.decoders[b.Name]
	if !ok {
		return nil, false, nil
	}
	op, diags := d.Decode(b)
	return op, true, diags
}

// RegisterModules registers every module on r.
func (r *Registry) RegisterModules(modules ...Module) {
	for _, m := range modules {
		m.Register(r)
	}
}

// Expression wraps an attribute expression of the block as a parameter.
func (b *Block) Expression(expr hcl.Expression) symbolic.Expression {
	return symbolic.FromHCL(expr, b.Source)
}
