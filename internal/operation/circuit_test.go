package operation_test

import (
	"testing"

	"github.com/specialistvlad/qmock/internal/operation"
	"github.com/specialistvlad/qmock/internal/register"
	"github.com/specialistvlad/qmock/internal/symbolic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCircuit_KeepsOrder(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	circuit := operation.NewCircuit(operation.NewDefinitionBit("ro", 2, true))
	circuit.Add(
		operation.NewGate("RotateX", []int{0}, operation.Parameter{Name: "theta", Value: symbolic.MustParse("theta")}),
		operation.NewMeasureQubit(0, "ro", 0),
	)

	// --- Act ---
	var names []string
	for i, op := range circuit.All() {
		assert.Equal(t, len(names), i)
		names = append(names, op.Hqslang())
	}

	// --- Assert ---
	assert.Equal(t, []string{"DefinitionBit", "RotateX", "MeasureQubit"}, names)
	assert.Equal(t, 3, circuit.Len())
}

func TestCircuit_NilIsEmpty(t *testing.T) {
	t.Parallel()

	var circuit *operation.Circuit
	assert.Equal(t, 0, circuit.Len())
	assert.Nil(t, circuit.Operations())
	for range circuit.All() {
		t.Fatal("nil circuit must not yield")
	}
}

func TestCircuit_FilterAndDefinitions(t *testing.T) {
	t.Parallel()

	circuit := operation.NewCircuit(
		operation.NewDefinitionBit("ro", 2, true),
		operation.NewDefinitionComplex("sv", 4, false),
		operation.NewGate("PauliX", []int{0}),
		operation.NewMeasureQubit(0, "ro", 1),
	)

	assert.Len(t, circuit.FilterByTag("Definition"), 2)
	assert.Len(t, circuit.FilterByTag("GateOperation"), 1)

	defs := circuit.Definitions()
	require.Len(t, defs, 2)
	assert.Equal(t, register.Definition{Name: "sv", Kind: register.KindComplex, Length: 4}, defs[1])
}

func TestGate_Parameters(t *testing.T) {
	t.Parallel()

	symbolicGate := operation.NewGate("RotateZ", []int{1}, operation.Parameter{Name: "theta", Value: symbolic.MustParse("2 * phi")})
	constantGate := operation.NewGate("RotateZ", []int{1}, operation.Parameter{Name: "theta", Value: symbolic.Number(0.5)})

	assert.True(t, operation.IsParametrized(symbolicGate))
	assert.False(t, operation.IsParametrized(constantGate))
	assert.Contains(t, symbolicGate.Tags(), "SingleQubitGateOperation")
	assert.Contains(t, symbolicGate.Tags(), "Rotation")
	assert.Equal(t, []int{1}, symbolicGate.Qubits())
}
