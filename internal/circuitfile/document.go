package circuitfile

import (
	"github.com/specialistvlad/qmock/internal/operation"
	"github.com/specialistvlad/qmock/internal/symbolic"
)

// Backend holds the settings of a `backend` block. Nil fields were not set.
type Backend struct {
	NumberQubits *int    `hcl:"number_qubits,optional"`
	MockedQubits *int    `hcl:"mocked_qubits,optional"`
	Repetitions  *int    `hcl:"repetitions,optional"`
	Seed         *uint64 `hcl:"seed,optional"`
}

// NamedCircuit is one `circuit` block.
type NamedCircuit struct {
	Name    string
	File    string
	Circuit *operation.Circuit
}

// Document is the merged content of all loaded files.
type Document struct {
	// Backend is nil when no file has a backend block.
	Backend *Backend
	// Substitutions is nil when no file has a substitutions block.
	Substitutions symbolic.Table
	Circuits      []NamedCircuit
}

// Circuit returns the circuit with the given name.
func (d *Document) Circuit(name string) (NamedCircuit, bool) {
	for _, c := range d.Circuits {
		if c.Name == name {
			return c, true
		}
	}
	return NamedCircuit{}, false
}
