package operation_test

import (
	"testing"

	"github.com/specialistvlad/qmock/internal/operation"
	"github.com/specialistvlad/qmock/internal/symbolic"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		tags []string
		want operation.Category
	}{
		{"gate", []string{"Operation", "GateOperation", "RotateX"}, operation.CategoryGate},
		{"definition", []string{"Operation", "Definition", "DefinitionBit"}, operation.CategoryDefinition},
		{"measure qubit", []string{"Operation", "Measurement", "MeasureQubit"}, operation.CategoryMeasureQubit},
		{"repeated measurement", []string{"PragmaOperation", "PragmaRepeatedMeasurement"}, operation.CategoryRepeatedMeasurement},
		{"state vector", []string{"PragmaOperation", "PragmaGetStateVector"}, operation.CategoryStateVector},
		{"global phase", []string{"PragmaOperation", "PragmaGlobalPhase"}, operation.CategoryGlobalPhase},
		{"bookkeeping", []string{"Operation", "PragmaOperation", "PragmaDamping"}, operation.CategoryBookkeeping},
		{"unknown pragma", []string{"Operation", "PragmaOperation", "PragmaLoop"}, operation.CategoryUnknown},
		{"no tags", nil, operation.CategoryUnknown},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, operation.Classify(tc.tags))
		})
	}
}

func TestConcreteOperationsClassifyToTheirOwnCategory(t *testing.T) {
	t.Parallel()

	ops := []operation.Operation{
		operation.NewDefinitionBit("ro", 1, true),
		operation.NewDefinitionFloat("re", 1, true),
		operation.NewDefinitionComplex("co", 1, true),
		operation.NewGate("Hadamard", []int{0}),
		operation.NewGate("CNOT", []int{0, 1}),
		operation.NewMeasureQubit(0, "ro", 0),
		operation.NewRepeatedMeasurement("ro", 10, nil),
		operation.NewGetPauliProduct(map[int]int{0: 3}, "re", nil),
		operation.NewPauliProductMeasurement("re", 0),
		operation.NewGetOccupationProbability("re", nil),
		operation.NewGetRotatedOccupationProbability("re", nil),
		operation.NewGetStateVector("co", nil),
		operation.NewGetDensityMatrix("co", nil),
		operation.NewGlobalPhase(symbolic.Number(0.25)),
		operation.NewPragma("PragmaSleep"),
	}

	for _, op := range ops {
		assert.Equal(t, op.Category(), operation.Classify(op.Tags()), op.Hqslang())
		assert.NotEqual(t, operation.CategoryUnknown, op.Category(), op.Hqslang())
	}
}

func TestCategories(t *testing.T) {
	t.Parallel()

	all := operation.Categories()
	assert.NotContains(t, all, operation.CategoryUnknown)
	assert.Contains(t, all, operation.CategoryBookkeeping)
	assert.Equal(t, "PragmaGetDensityMatrix", operation.CategoryDensityMatrix.String())
	assert.Equal(t, "Category(200)", operation.Category(200).String())
}

func TestIsBookkeeping(t *testing.T) {
	t.Parallel()

	for _, name := range operation.BookkeepingPragmas() {
		assert.True(t, operation.IsBookkeeping(name), name)
	}
	assert.False(t, operation.IsBookkeeping("PragmaGetStateVector"))
	assert.False(t, operation.IsBookkeeping("MeasureQubit"))
}
