package interpreter

import (
	"fmt"

	"github.com/specialistvlad/qmock/internal/symbolic"
)

// DefaultGlobalPhaseRegister is the output register that receives the
// accumulated global phase.
const DefaultGlobalPhaseRegister = "global_phase"

// MaxMockedQubits bounds the mocked state size: a state vector of 2^30
// amplitudes is already 16 GiB.
const MaxMockedQubits = 30

// Config holds the run-wide settings of an interpreter.
type Config struct {
	// NumberQubits is the qubit count of the run. Must be at least 1.
	NumberQubits int
	// MockedQubits overrides the state size used by generators that
	// need one. Zero means NumberQubits.
	MockedQubits int
	// Substitutions resolves symbolic parameters. Nil means no table.
	Substitutions symbolic.Table
	// GlobalPhaseRegister defaults to DefaultGlobalPhaseRegister.
	GlobalPhaseRegister string
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if c.NumberQubits < 1 {
		return fmt.Errorf("number of qubits must be at least 1, got %d", c.NumberQubits)
	}
	if c.MockedQubits < 0 {
		return fmt.Errorf("number of mocked qubits must not be negative, got %d", c.MockedQubits)
	}
	if n := c.Mocked(); n > MaxMockedQubits {
		return fmt.Errorf("number of mocked qubits %d exceeds the maximum of %d", n, MaxMockedQubits)
	}
	return nil
}

// Mocked returns the effective mocked qubit count.
func (c Config) Mocked() int {
	if c.MockedQubits > 0 {
		return c.MockedQubits
	}
	return c.NumberQubits
}

// PhaseRegister returns the effective global phase register name.
func (c Config) PhaseRegister() string {
	if c.GlobalPhaseRegister != "" {
		return c.GlobalPhaseRegister
	}
	return DefaultGlobalPhaseRegister
}
