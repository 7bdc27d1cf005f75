// Package synth produces synthetic measurement results. The values have the
// numeric type, shape and normalisation of the quantity they stand in for,
// but they are not derived from any simulated quantum state.
package synth

import (
	"math"
	"math/rand/v2"
)

// streamMix decorrelates the PCG stream parameter from the seed.
const streamMix = 0x9e3779b97f4a7c15

// Generator draws synthetic results from an injected random source.
// A Generator is not safe for concurrent use; give each run its own.
type Generator struct {
	rng *rand.Rand
}

// New wraps an existing random source.
func New(src rand.Source) *Generator {
	return &Generator{rng: rand.New(src)}
}

// NewSeeded returns a reproducible generator. Runs that must be independent
// but reproducible share the seed and use distinct stream numbers.
func NewSeeded(seed, stream uint64) *Generator {
	return New(rand.NewPCG(seed, stream^streamMix))
}

// Bit returns a uniformly distributed bit.
func (g *Generator) Bit() bool {
	return g.rng.IntN(2) == 1
}

// BitMatrix returns rows x cols uniformly distributed bits.
func (g *Generator) BitMatrix(rows, cols int) [][]bool {
	out := make([][]bool, rows)
	for i := range out {
		row := make([]bool, cols)
		for j := range row {
			row[j] = g.Bit()
		}
		out[i] = row
	}
	return out
}

// Real returns a uniformly distributed value in [0, 1).
func (g *Generator) Real() float64 {
	return g.rng.Float64()
}

// Reals returns n independent values in [0, 1). They are independent
// probabilities, not a distribution, so they are not normalised.
func (g *Generator) Reals(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = g.Real()
	}
	return out
}

// StateVector returns 2^qubits amplitudes with real and imaginary parts
// drawn uniformly from [0, 1), scaled so that the squared magnitudes sum
// to one.
func (g *Generator) StateVector(qubits int) []complex128 {
	dim := 1 << qubits
	out := make([]complex128, dim)
	var norm float64
	for i := range out {
		re, im := g.Real(), g.Real()
		out[i] = complex(re, im)
		norm += re*re + im*im
	}
	if norm == 0 {
		// Every draw was exactly zero; fall back to the |0...0> state.
		out[0] = 1
		return out
	}
	scale := complex(1/math.Sqrt(norm), 0)
	for i := range out {
		out[i] *= scale
	}
	return out
}

// BasisState returns a uniformly random computational basis index over the
// given number of qubits. Qubit k is bit k of the index.
func (g *Generator) BasisState(qubits int) int {
	index := 0
	for k := 0; k < qubits; k++ {
		if g.Bit() {
			index |= 1 << k
		}
	}
	return index
}

// DensityMatrix returns the (2^qubits x 2^qubits) density matrix of a random
// computational basis state: the outer product of the basis vector with
// itself. It is a valid, rank-1, idempotent density matrix but not a
// generic one.
func (g *Generator) DensityMatrix(qubits int) [][]complex128 {
	dim := 1 << qubits
	basis := g.BasisState(qubits)
	out := make([][]complex128, dim)
	for i := range out {
		out[i] = make([]complex128, dim)
	}
	out[basis][basis] = 1
	return out
}
