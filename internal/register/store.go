package register

import (
	"fmt"
	"slices"
)

// element is the set of Go types a register can hold.
type element interface {
	bool | float64 | complex128
}

// buffer is one internal register. Batched buffers were filled by an
// operation that produces many rows at once; their batch replaces the
// snapshot at fold time.
type buffer[T element] struct {
	def     Definition
	values  []T
	batch   [][]T
	batched bool
}

type table[T element] map[string]*buffer[T]

// Store holds the internal registers of a single circuit run.
type Store struct {
	bits      table[bool]
	reals     table[float64]
	complexes table[complex128]

	// order keeps declaration order so Fold is deterministic.
	order []Definition
}

// NewStore creates an empty register store.
func NewStore() *Store {
	return &Store{
		bits:      make(table[bool]),
		reals:     make(table[float64]),
		complexes: make(table[complex128]),
	}
}

// Declare creates the internal register described by def. Declaring the
// same definition twice is a no-op; any other redeclaration of the name
// within the same kind fails with a DuplicateRegisterError.
func (s *Store) Declare(def Definition) error {
	if err := def.Validate(); err != nil {
		return err
	}

	var added bool
	var err error
	switch def.Kind {
	case KindBit:
		added, err = declare(s.bits, def)
	case KindReal:
		added, err = declare(s.reals, def)
	case KindComplex:
		added, err = declare(s.complexes, def)
	}
	if err != nil {
		return err
	}
	if added {
		s.order = append(s.order, def)
	}
	return nil
}

func declare[T element](t table[T], def Definition) (bool, error) {
	if existing, ok := t[def.Name]; ok {
		if existing.def == def {
			return false, nil
		}
		return false, &DuplicateRegisterError{Existing: existing.def, Conflict: def}
	}
	t[def.Name] = &buffer[T]{def: def, values: make([]T, def.Length)}
	return true, nil
}

// Definitions returns every declared register in declaration order.
func (s *Store) Definitions() []Definition {
	return slices.Clone(s.order)
}

// Definition looks up the definition of a declared register.
func (s *Store) Definition(name string, kind Kind) (Definition, error) {
	var def Definition
	var ok bool
	switch kind {
	case KindBit:
		var b *buffer[bool]
		if b, ok = s.bits[name]; ok {
			def = b.def
		}
	case KindReal:
		var b *buffer[float64]
		if b, ok = s.reals[name]; ok {
			def = b.def
		}
	case KindComplex:
		var b *buffer[complex128]
		if b, ok = s.complexes[name]; ok {
			def = b.def
		}
	}
	if !ok {
		return Definition{}, &UnknownRegisterError{Name: name, Kind: kind}
	}
	return def, nil
}

// Bits returns a copy of the current content of a bit register.
func (s *Store) Bits(name string) ([]bool, error) { return get(s.bits, KindBit, name) }

// Reals returns a copy of the current content of a real register.
func (s *Store) Reals(name string) ([]float64, error) { return get(s.reals, KindReal, name) }

// Complexes returns a copy of the current content of a complex register.
func (s *Store) Complexes(name string) ([]complex128, error) {
	return get(s.complexes, KindComplex, name)
}

func get[T element](t table[T], kind Kind, name string) ([]T, error) {
	b, ok := t[name]
	if !ok {
		return nil, &UnknownRegisterError{Name: name, Kind: kind}
	}
	return slices.Clone(b.values), nil
}

// SetBit writes one element of a bit register.
func (s *Store) SetBit(name string, index int, v bool) error {
	return set(s.bits, KindBit, name, index, v)
}

// SetReal writes one element of a real register.
func (s *Store) SetReal(name string, index int, v float64) error {
	return set(s.reals, KindReal, name, index, v)
}

// SetComplex writes one element of a complex register.
func (s *Store) SetComplex(name string, index int, v complex128) error {
	return set(s.complexes, KindComplex, name, index, v)
}

func set[T element](t table[T], kind Kind, name string, index int, v T) error {
	b, ok := t[name]
	if !ok {
		return &UnknownRegisterError{Name: name, Kind: kind}
	}
	if index < 0 || index >= len(b.values) {
		return &IndexOutOfRangeError{Name: name, Index: index, Length: len(b.values)}
	}
	b.values[index] = v
	return nil
}

// ReplaceReals overwrites the whole content of a real register with the
// result of a whole-register readout. The declared length is not enforced:
// the readout decides how many values it produces.
func (s *Store) ReplaceReals(name string, values []float64) error {
	return replace(s.reals, KindReal, name, values)
}

// ReplaceComplexes is ReplaceReals for complex registers.
func (s *Store) ReplaceComplexes(name string, values []complex128) error {
	return replace(s.complexes, KindComplex, name, values)
}

func replace[T element](t table[T], kind Kind, name string, values []T) error {
	b, ok := t[name]
	if !ok {
		return &UnknownRegisterError{Name: name, Kind: kind}
	}
	b.values = slices.Clone(values)
	return nil
}

// ExtendBits records a batch of rows for a bit register, replacing any batch
// recorded earlier in the run. At fold time the output register is extended
// with the batch instead of receiving a snapshot.
func (s *Store) ExtendBits(name string, rows [][]bool) error {
	return extend(s.bits, KindBit, name, rows)
}

// ExtendComplexes is ExtendBits for complex registers.
func (s *Store) ExtendComplexes(name string, rows [][]complex128) error {
	return extend(s.complexes, KindComplex, name, rows)
}

func extend[T element](t table[T], kind Kind, name string, rows [][]T) error {
	b, ok := t[name]
	if !ok {
		return &UnknownRegisterError{Name: name, Kind: kind}
	}
	batch := make([][]T, len(rows))
	for i, row := range rows {
		batch[i] = slices.Clone(row)
	}
	b.batch = batch
	b.batched = true
	return nil
}

// Fold reconciles every output register of the run into out. It must be
// called once, after the last operation of the run.
func (s *Store) Fold(out *Outputs) {
	out.init()
	for _, def := range s.order {
		if !def.IsOutput {
			continue
		}
		switch def.Kind {
		case KindBit:
			fold(out.Bits, s.bits[def.Name])
		case KindReal:
			fold(out.Reals, s.reals[def.Name])
		case KindComplex:
			fold(out.Complexes, s.complexes[def.Name])
		default:
			panic(fmt.Sprintf("register: unexpected kind %s in store", def.Kind))
		}
	}
}

func fold[T element](dst map[string][][]T, b *buffer[T]) {
	rows, ok := dst[b.def.Name]
	if !ok {
		rows = [][]T{}
	}
	if b.batched {
		rows = append(rows, b.batch...)
	} else {
		rows = append(rows, slices.Clone(b.values))
	}
	dst[b.def.Name] = rows
}
