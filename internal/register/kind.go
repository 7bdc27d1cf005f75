package register

import (
	"fmt"
	"strings"
)

// Kind is the element type of a register.
type Kind uint8

const (
	KindBit Kind = iota + 1
	KindReal
	KindComplex
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindBit:
		return "bit"
	case KindReal:
		return "real"
	case KindComplex:
		return "complex"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// ParseKind accepts the names used by circuit files. "float" and "usize" are
// aliases of real.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bit", "bool":
		return KindBit, nil
	case "real", "float", "usize", "int":
		return KindReal, nil
	case "complex":
		return KindComplex, nil
	}
	return 0, fmt.Errorf("unknown register kind %q", s)
}

// Definition describes a register declared by a circuit.
type Definition struct {
	Name     string
	Kind     Kind
	Length   int
	IsOutput bool
}

// Validate checks the definition itself, independent of any store.
func (d Definition) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("register name must not be empty")
	}
	if d.Kind < KindBit || d.Kind > KindComplex {
		return fmt.Errorf("register %q: invalid kind %s", d.Name, d.Kind)
	}
	if d.Length < 0 {
		return fmt.Errorf("register %q: negative length %d", d.Name, d.Length)
	}
	return nil
}
