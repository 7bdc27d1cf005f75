// Package register implements the classical register store used while a
// mocked circuit is interpreted.
//
// A Store owns the internal registers of exactly one circuit run. Registers
// are named, typed (bit, real, complex) and fixed-length; they must be
// declared before any operation touches them. At the end of the run Fold
// reconciles the internal registers into Outputs, which accumulate rows
// across runs:
//
//   - a register written element by element contributes one row per run
//     (a snapshot of its buffer);
//   - a register that received a batch (repeated measurement, density
//     matrix) is extended with every row of that batch instead.
//
// A Store is not safe for concurrent use. Each run creates its own.
package register
