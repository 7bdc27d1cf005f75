package register_test

import (
	"errors"
	"testing"

	"github.com/specialistvlad/qmock/internal/register"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_DeclareInitialisesZeroValues(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	store := register.NewStore()

	// --- Act ---
	require.NoError(t, store.Declare(register.Definition{Name: "ro", Kind: register.KindBit, Length: 3}))
	require.NoError(t, store.Declare(register.Definition{Name: "ro", Kind: register.KindReal, Length: 2}))
	require.NoError(t, store.Declare(register.Definition{Name: "sv", Kind: register.KindComplex, Length: 1}))

	// --- Assert ---
	bits, err := store.Bits("ro")
	require.NoError(t, err)
	assert.Equal(t, []bool{false, false, false}, bits)

	reals, err := store.Reals("ro")
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0}, reals)

	complexes, err := store.Complexes("sv")
	require.NoError(t, err)
	assert.Equal(t, []complex128{0}, complexes)
}

func TestStore_Redeclaration(t *testing.T) {
	t.Parallel()

	def := register.Definition{Name: "ro", Kind: register.KindBit, Length: 2, IsOutput: true}

	t.Run("identical definition is accepted", func(t *testing.T) {
		store := register.NewStore()
		require.NoError(t, store.Declare(def))
		require.NoError(t, store.Declare(def))
		require.Len(t, store.Definitions(), 1)
	})

	t.Run("different length is rejected", func(t *testing.T) {
		store := register.NewStore()
		require.NoError(t, store.Declare(def))

		conflict := def
		conflict.Length = 4
		err := store.Declare(conflict)

		var dupErr *register.DuplicateRegisterError
		require.ErrorAs(t, err, &dupErr)
		assert.Equal(t, 2, dupErr.Existing.Length)
		assert.Equal(t, 4, dupErr.Conflict.Length)
	})

	t.Run("different output flag is rejected", func(t *testing.T) {
		store := register.NewStore()
		require.NoError(t, store.Declare(def))

		conflict := def
		conflict.IsOutput = false
		var dupErr *register.DuplicateRegisterError
		require.ErrorAs(t, store.Declare(conflict), &dupErr)
	})

	t.Run("invalid definitions are rejected", func(t *testing.T) {
		store := register.NewStore()
		require.Error(t, store.Declare(register.Definition{Kind: register.KindBit, Length: 1}))
		require.Error(t, store.Declare(register.Definition{Name: "x", Length: 1}))
		require.Error(t, store.Declare(register.Definition{Name: "x", Kind: register.KindReal, Length: -1}))
	})
}

func TestStore_UnknownRegister(t *testing.T) {
	t.Parallel()

	store := register.NewStore()
	require.NoError(t, store.Declare(register.Definition{Name: "ro", Kind: register.KindBit, Length: 1}))

	var unknownErr *register.UnknownRegisterError

	// Same name, different kind: kinds have separate namespaces.
	_, err := store.Reals("ro")
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, register.KindReal, unknownErr.Kind)

	require.ErrorAs(t, store.SetBit("missing", 0, true), &unknownErr)
	require.ErrorAs(t, store.ExtendComplexes("missing", nil), &unknownErr)
	require.ErrorAs(t, store.ReplaceReals("missing", []float64{1}), &unknownErr)
}

func TestStore_SetBoundsChecks(t *testing.T) {
	t.Parallel()

	store := register.NewStore()
	require.NoError(t, store.Declare(register.Definition{Name: "ro", Kind: register.KindReal, Length: 2}))

	require.NoError(t, store.SetReal("ro", 1, 0.25))

	for _, index := range []int{2, 10, -1} {
		err := store.SetReal("ro", index, 1)
		var rangeErr *register.IndexOutOfRangeError
		require.True(t, errors.As(err, &rangeErr), "index %d should be out of range", index)
		assert.Equal(t, 2, rangeErr.Length)
		assert.Equal(t, index, rangeErr.Index)
	}

	values, err := store.Reals("ro")
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.25}, values)
}

func TestStore_FoldAppendsSnapshot(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	store := register.NewStore()
	require.NoError(t, store.Declare(register.Definition{Name: "ro", Kind: register.KindBit, Length: 2, IsOutput: true}))
	require.NoError(t, store.Declare(register.Definition{Name: "scratch", Kind: register.KindBit, Length: 1}))
	require.NoError(t, store.SetBit("ro", 1, true))
	out := register.NewOutputs()

	// --- Act ---
	store.Fold(out)

	// --- Assert ---
	require.Equal(t, [][]bool{{false, true}}, out.Bits["ro"])
	require.NotContains(t, out.Bits, "scratch", "non-output registers must not be folded")

	// Mutating the store after folding must not leak into the outputs.
	require.NoError(t, store.SetBit("ro", 0, true))
	require.Equal(t, [][]bool{{false, true}}, out.Bits["ro"])
}

func TestStore_FoldExtendsBatch(t *testing.T) {
	t.Parallel()

	store := register.NewStore()
	require.NoError(t, store.Declare(register.Definition{Name: "ro", Kind: register.KindBit, Length: 1, IsOutput: true}))
	require.NoError(t, store.SetBit("ro", 0, true))
	batch := [][]bool{{true, false}, {false, false}, {true, true}}
	require.NoError(t, store.ExtendBits("ro", batch))

	out := register.NewOutputs()
	out.Bits["ro"] = [][]bool{{false, true}}
	store.Fold(out)

	// The batch replaces the snapshot: 1 existing row + 3 batch rows.
	require.Len(t, out.Bits["ro"], 4)
	require.Equal(t, batch, out.Bits["ro"][1:])
}

func TestStore_LaterBatchReplacesEarlierBatch(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	store := register.NewStore()
	require.NoError(t, store.Declare(register.Definition{Name: "ro", Kind: register.KindBit, Length: 2, IsOutput: true}))
	first := [][]bool{{true, true}, {true, true}, {true, true}}
	second := [][]bool{{false, true}, {true, false}}

	// --- Act ---
	require.NoError(t, store.ExtendBits("ro", first))
	require.NoError(t, store.ExtendBits("ro", second))
	out := register.NewOutputs()
	store.Fold(out)

	// --- Assert ---
	require.Equal(t, second, out.Bits["ro"], "only the last batch of a run reaches the outputs")
}

func TestStore_FoldEmptyBatchStillCreatesRegister(t *testing.T) {
	t.Parallel()

	store := register.NewStore()
	require.NoError(t, store.Declare(register.Definition{Name: "dm", Kind: register.KindComplex, Length: 0, IsOutput: true}))
	require.NoError(t, store.ExtendComplexes("dm", nil))

	out := register.NewOutputs()
	store.Fold(out)

	require.Contains(t, out.Complexes, "dm")
	require.Empty(t, out.Complexes["dm"])
}

func TestStore_ReplaceKeepsDefinition(t *testing.T) {
	t.Parallel()

	store := register.NewStore()
	def := register.Definition{Name: "probs", Kind: register.KindReal, Length: 1, IsOutput: true}
	require.NoError(t, store.Declare(def))
	require.NoError(t, store.ReplaceReals("probs", []float64{0.1, 0.2, 0.3}))

	got, err := store.Definition("probs", register.KindReal)
	require.NoError(t, err)
	require.Equal(t, def, got)

	out := register.NewOutputs()
	store.Fold(out)
	require.Equal(t, [][]float64{{0.1, 0.2, 0.3}}, out.Reals["probs"])
}

func TestParseKind(t *testing.T) {
	t.Parallel()

	testCases := map[string]register.Kind{
		"bit":     register.KindBit,
		"float":   register.KindReal,
		"Real":    register.KindReal,
		"usize":   register.KindReal,
		"complex": register.KindComplex,
	}
	for input, want := range testCases {
		got, err := register.ParseKind(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	_, err := register.ParseKind("qubit")
	require.Error(t, err)
}
