package operation

import (
	"maps"
	"slices"

	"github.com/specialistvlad/qmock/internal/register"
	"github.com/specialistvlad/qmock/internal/symbolic"
)

// Definition declares a classical register.
type Definition struct {
	def register.Definition
}

// NewDefinition creates a register definition operation.
func NewDefinition(def register.Definition) *Definition {
	return &Definition{def: def}
}

// NewDefinitionBit, NewDefinitionFloat and NewDefinitionComplex mirror the
// hqslang definition operations.
func NewDefinitionBit(name string, length int, isOutput bool) *Definition {
	return NewDefinition(register.Definition{Name: name, Kind: register.KindBit, Length: length, IsOutput: isOutput})
}

func NewDefinitionFloat(name string, length int, isOutput bool) *Definition {
	return NewDefinition(register.Definition{Name: name, Kind: register.KindReal, Length: length, IsOutput: isOutput})
}

func NewDefinitionComplex(name string, length int, isOutput bool) *Definition {
	return NewDefinition(register.Definition{Name: name, Kind: register.KindComplex, Length: length, IsOutput: isOutput})
}

func (d *Definition) Hqslang() string {
	switch d.def.Kind {
	case register.KindBit:
		return "DefinitionBit"
	case register.KindComplex:
		return "DefinitionComplex"
	default:
		return "DefinitionFloat"
	}
}

func (d *Definition) Tags() []string {
	return []string{"Operation", "Definition", d.Hqslang()}
}

func (d *Definition) Category() Category              { return CategoryDefinition }
func (d *Definition) Definition() register.Definition { return d.def }

// Gate is a unitary gate. Gates are not simulated; only their parameters
// are resolved.
type Gate struct {
	family string
	qubits []int
	params []Parameter
}

// NewGate creates a gate of the given family (e.g. "RotateX") acting on
// qubits, with parameters in canonical order.
func NewGate(family string, qubits []int, params ...Parameter) *Gate {
	return &Gate{family: family, qubits: slices.Clone(qubits), params: slices.Clone(params)}
}

func (g *Gate) Hqslang() string { return g.family }

func (g *Gate) Tags() []string {
	arity := "MultiQubitGateOperation"
	switch len(g.qubits) {
	case 1:
		arity = "SingleQubitGateOperation"
	case 2:
		arity = "TwoQubitGateOperation"
	}
	tags := []string{"Operation", "GateOperation", arity}
	if len(g.params) > 0 {
		tags = append(tags, "Rotation")
	}
	return append(tags, g.family)
}

func (g *Gate) Category() Category      { return CategoryGate }
func (g *Gate) Qubits() []int           { return slices.Clone(g.qubits) }
func (g *Gate) Parameters() []Parameter { return slices.Clone(g.params) }

// MeasureQubit measures one qubit into one element of a bit register.
type MeasureQubit struct {
	qubit        int
	readout      string
	readoutIndex int
}

func NewMeasureQubit(qubit int, readout string, readoutIndex int) *MeasureQubit {
	return &MeasureQubit{qubit: qubit, readout: readout, readoutIndex: readoutIndex}
}

func (m *MeasureQubit) Hqslang() string { return "MeasureQubit" }
func (m *MeasureQubit) Tags() []string {
	return []string{"Operation", "Measurement", "MeasureQubit"}
}
func (m *MeasureQubit) Category() Category { return CategoryMeasureQubit }
func (m *MeasureQubit) Qubit() int         { return m.qubit }
func (m *MeasureQubit) Readout() string    { return m.readout }
func (m *MeasureQubit) ReadoutIndex() int  { return m.readoutIndex }

// RepeatedMeasurement measures all qubits numberMeasurements times.
type RepeatedMeasurement struct {
	readout            string
	numberMeasurements int
	qubitMapping       map[int]int
}

func NewRepeatedMeasurement(readout string, numberMeasurements int, qubitMapping map[int]int) *RepeatedMeasurement {
	return &RepeatedMeasurement{readout: readout, numberMeasurements: numberMeasurements, qubitMapping: maps.Clone(qubitMapping)}
}

func (r *RepeatedMeasurement) Hqslang() string { return "PragmaRepeatedMeasurement" }
func (r *RepeatedMeasurement) Tags() []string {
	return []string{"Operation", "Measurement", "PragmaOperation", "PragmaRepeatedMeasurement"}
}
func (r *RepeatedMeasurement) Category() Category        { return CategoryRepeatedMeasurement }
func (r *RepeatedMeasurement) Readout() string           { return r.readout }
func (r *RepeatedMeasurement) NumberMeasurements() int   { return r.numberMeasurements }
func (r *RepeatedMeasurement) QubitMapping() map[int]int { return maps.Clone(r.qubitMapping) }

// GetPauliProduct reads the expectation value of a Pauli product into
// element 0 of a real register.
type GetPauliProduct struct {
	qubitPaulis map[int]int
	readout     string
	circuit     *Circuit
}

func NewGetPauliProduct(qubitPaulis map[int]int, readout string, circuit *Circuit) *GetPauliProduct {
	return &GetPauliProduct{qubitPaulis: maps.Clone(qubitPaulis), readout: readout, circuit: circuit}
}

func (p *GetPauliProduct) Hqslang() string { return "PragmaGetPauliProduct" }
func (p *GetPauliProduct) Tags() []string {
	return []string{"Operation", "Measurement", "PragmaOperation", "PragmaGetPauliProduct"}
}
func (p *GetPauliProduct) Category() Category       { return CategoryGetPauliProduct }
func (p *GetPauliProduct) Readout() string          { return p.readout }
func (p *GetPauliProduct) QubitPaulis() map[int]int { return maps.Clone(p.qubitPaulis) }
func (p *GetPauliProduct) Circuit() *Circuit        { return p.circuit }

// PauliProductMeasurement writes a Pauli product value into one element of
// a real register.
type PauliProductMeasurement struct {
	readout      string
	readoutIndex int
}

func NewPauliProductMeasurement(readout string, readoutIndex int) *PauliProductMeasurement {
	return &PauliProductMeasurement{readout: readout, readoutIndex: readoutIndex}
}

func (p *PauliProductMeasurement) Hqslang() string { return "PragmaPauliProdMeasurement" }
func (p *PauliProductMeasurement) Tags() []string {
	return []string{"Operation", "Measurement", "PragmaOperation", "PragmaPauliProdMeasurement"}
}
func (p *PauliProductMeasurement) Category() Category { return CategoryPauliProductMeasurement }
func (p *PauliProductMeasurement) Readout() string    { return p.readout }
func (p *PauliProductMeasurement) ReadoutIndex() int  { return p.readoutIndex }

// Readout covers the whole-register readout pragmas: occupation
// probabilities (plain and rotated), state vector and density matrix.
type Readout struct {
	category Category
	readout  string
	circuit  *Circuit
}

func NewGetOccupationProbability(readout string, circuit *Circuit) *Readout {
	return &Readout{category: CategoryOccupationProbability, readout: readout, circuit: circuit}
}

func NewGetRotatedOccupationProbability(readout string, circuit *Circuit) *Readout {
	return &Readout{category: CategoryRotatedOccupationProbability, readout: readout, circuit: circuit}
}

func NewGetStateVector(readout string, circuit *Circuit) *Readout {
	return &Readout{category: CategoryStateVector, readout: readout, circuit: circuit}
}

func NewGetDensityMatrix(readout string, circuit *Circuit) *Readout {
	return &Readout{category: CategoryDensityMatrix, readout: readout, circuit: circuit}
}

func (r *Readout) Hqslang() string { return r.category.String() }
func (r *Readout) Tags() []string {
	return []string{"Operation", "Measurement", "PragmaOperation", r.category.String()}
}
func (r *Readout) Category() Category { return r.category }
func (r *Readout) Readout() string    { return r.readout }
func (r *Readout) Circuit() *Circuit  { return r.circuit }

// GlobalPhase adds a (possibly symbolic) value to the global phase.
type GlobalPhase struct {
	phase symbolic.Expression
}

func NewGlobalPhase(phase symbolic.Expression) *GlobalPhase {
	return &GlobalPhase{phase: phase}
}

func (g *GlobalPhase) Hqslang() string { return "PragmaGlobalPhase" }
func (g *GlobalPhase) Tags() []string {
	return []string{"Operation", "PragmaOperation", "PragmaGlobalPhase"}
}
func (g *GlobalPhase) Category() Category         { return CategoryGlobalPhase }
func (g *GlobalPhase) Phase() symbolic.Expression { return g.phase }
func (g *GlobalPhase) Parameters() []Parameter {
	return []Parameter{{Name: "phase", Value: g.phase}}
}

// Raw is an operation known only by its name and tags. Its category is
// derived from the tags with Classify. Pragmas that carry no data the
// interpreter needs, and operations the loader does not recognise, are Raw.
type Raw struct {
	hqslang string
	tags    []string
}

// NewRaw creates a tag-only operation.
func NewRaw(hqslang string, tags ...string) *Raw {
	return &Raw{hqslang: hqslang, tags: slices.Clone(tags)}
}

// NewPragma creates a tag-only pragma. Book-keeping pragma names classify as
// CategoryBookkeeping; any other name stays unknown.
func NewPragma(name string) *Raw {
	return NewRaw(name, "Operation", "PragmaOperation", name)
}

func (r *Raw) Hqslang() string    { return r.hqslang }
func (r *Raw) Tags() []string     { return slices.Clone(r.tags) }
func (r *Raw) Category() Category { return Classify(r.tags) }
