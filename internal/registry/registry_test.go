package registry_test

import (
	"context"
	"testing"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/qmock/internal/operation"
	"github.com/specialistvlad/qmock/internal/registry"
	"github.com/specialistvlad/qmock/modules/definitions"
	"github.com/specialistvlad/qmock/modules/gates"
	"github.com/specialistvlad/qmock/modules/measurements"
	"github.com/specialistvlad/qmock/modules/pragmas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noop(*registry.Block) (operation.Operation, hcl.Diagnostics) {
	return operation.NewPragma("PragmaStop"), nil
}

func TestRegisterDecoder_DuplicatePanics(t *testing.T) {
	t.Parallel()

	r := registry.New()
	r.RegisterDecoder("PragmaStop", &registry.Decoder{Category: operation.CategoryBookkeeping, Decode: noop})

	assert.PanicsWithValue(t, "decoder for operation 'PragmaStop' already registered", func() {
		r.RegisterDecoder("PragmaStop", &registry.Decoder{Category: operation.CategoryBookkeeping, Decode: noop})
	})
}

func TestDecode_UnknownName(t *testing.T) {
	t.Parallel()

	r := registry.New()
	op, found, diags := r.Decode(&registry.Block{Name: "PragmaLoop"})

	assert.Nil(t, op)
	assert.False(t, found)
	assert.False(t, diags.HasErrors())
}

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("all modules cover every category", func(t *testing.T) {
		t.Parallel()

		r := registry.New()
		r.RegisterModules(&definitions.Module{}, &gates.Module{}, &measurements.Module{}, &pragmas.Module{})

		require.NoError(t, r.Validate(context.Background()))
		assert.Contains(t, r.Names(), "DefinitionUsize")
		assert.Contains(t, r.Names(), "PragmaGetRotatedOccupationProbability")
	})

	t.Run("missing modules are reported", func(t *testing.T) {
		t.Parallel()

		r := registry.New()
		r.RegisterModules(&definitions.Module{})

		err := r.Validate(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "category GateOperation: no operation decodes into it")
		assert.Contains(t, err.Error(), "book-keeping pragma 'PragmaSleep' has no decoder")
	})

	t.Run("book-keeping category needs a book-keeping name", func(t *testing.T) {
		t.Parallel()

		r := registry.New()
		r.RegisterDecoder("PragmaLoop", &registry.Decoder{Category: operation.CategoryBookkeeping, Decode: noop})

		err := r.Validate(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "operation 'PragmaLoop': registered as book-keeping")
	})
}
