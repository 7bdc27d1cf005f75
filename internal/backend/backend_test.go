package backend_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/specialistvlad/qmock/internal/backend"
	"github.com/specialistvlad/qmock/internal/interpreter"
	"github.com/specialistvlad/qmock/internal/metrics"
	"github.com/specialistvlad/qmock/internal/operation"
	"github.com/specialistvlad/qmock/internal/symbolic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCircuit() *operation.Circuit {
	return operation.NewCircuit(
		operation.NewDefinitionBit("ro", 2, true),
		operation.NewDefinitionComplex("sv", 4, true),
		operation.NewDefinitionFloat("global_phase", 1, true),
		operation.NewGate("RotateY", []int{1}, operation.Parameter{Name: "theta", Value: symbolic.MustParse("theta")}),
		operation.NewMeasureQubit(0, "ro", 0),
		operation.NewMeasureQubit(1, "ro", 1),
		operation.NewGetStateVector("sv", nil),
		operation.NewGlobalPhase(symbolic.Number(0.5)),
	)
}

func TestRun_AccumulatesRepetitions(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	b, err := backend.New(backend.Config{
		NumberQubits:  2,
		Repetitions:   6,
		Seed:          1,
		Substitutions: symbolic.Table{"theta": 0.1},
	})
	require.NoError(t, err)

	// --- Act ---
	res, err := b.Run(context.Background(), sampleCircuit())

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, 6, res.Repetitions)
	assert.Len(t, res.Outputs.Bits["ro"], 6)
	assert.Len(t, res.Outputs.Complexes["sv"], 6)
	assert.Equal(t, [][]float64{{0.5}}, res.Outputs.Reals["global_phase"])
	assert.Equal(t, 0.5, res.GlobalPhase)
	assert.Equal(t, 6*8, res.Operations)
}

func TestRun_DeterministicAcrossParallelism(t *testing.T) {
	t.Parallel()

	run := func(parallelism int) *backend.Result {
		b, err := backend.New(backend.Config{
			NumberQubits:  2,
			Repetitions:   20,
			Seed:          42,
			Parallelism:   parallelism,
			Substitutions: symbolic.Table{"theta": 0.1},
		})
		require.NoError(t, err)
		res, err := b.Run(context.Background(), sampleCircuit())
		require.NoError(t, err)
		return res
	}

	sequential := run(1)
	for _, p := range []int{2, 8, 32} {
		if diff := cmp.Diff(sequential.Outputs, run(p).Outputs); diff != "" {
			t.Errorf("parallelism %d changed the outputs (-sequential +parallel):\n%s", p, diff)
		}
	}
}

func TestRun_DifferentSeedsDiffer(t *testing.T) {
	t.Parallel()

	outputs := func(seed uint64) [][]complex128 {
		b, err := backend.New(backend.Config{NumberQubits: 3, Seed: seed})
		require.NoError(t, err)
		out, err := b.RunCircuit(context.Background(), operation.NewCircuit(
			operation.NewDefinitionComplex("sv", 8, true),
			operation.NewGetStateVector("sv", nil),
		))
		require.NoError(t, err)
		return out.Complexes["sv"]
	}

	assert.NotEqual(t, outputs(1), outputs(2))
	assert.Equal(t, outputs(3), outputs(3))
}

func TestRun_FirstErrorAborts(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	collectors := metrics.New()
	b, err := backend.New(backend.Config{NumberQubits: 1, Repetitions: 4, Parallelism: 2}, backend.WithMetrics(collectors))
	require.NoError(t, err)

	// --- Act ---
	res, err := b.Run(context.Background(), sampleCircuit())

	// --- Assert ---
	require.Error(t, err)
	assert.Nil(t, res)
	var symErr *symbolic.SymbolicParameterWithoutSubstitutionError
	assert.ErrorAs(t, err, &symErr)

	expected := `
# HELP qmock_backend_circuits_total Total number of circuits executed with all repetitions.
# TYPE qmock_backend_circuits_total counter
qmock_backend_circuits_total{status="error"} 1
`
	require.NoError(t, testutil.GatherAndCompare(collectors.Registry(), strings.NewReader(expected), "qmock_backend_circuits_total"))
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	t.Parallel()

	_, err := backend.New(backend.Config{})
	assert.Error(t, err)

	_, err = backend.New(backend.Config{NumberQubits: 1, Repetitions: -1})
	assert.Error(t, err)

	b, err := backend.New(backend.Config{NumberQubits: 2, MockedQubits: interpreter.MaxMockedQubits})
	require.NoError(t, err)
	assert.Equal(t, 2, b.Config().NumberQubits)
}
