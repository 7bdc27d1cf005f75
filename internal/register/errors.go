package register

import "fmt"

// DuplicateRegisterError is returned when a register is declared twice with
// a conflicting definition.
type DuplicateRegisterError struct {
	Existing Definition
	Conflict Definition
}

func (e *DuplicateRegisterError) Error() string {
	return fmt.Sprintf("register %q (%s) already declared with length %d, output %t; got length %d, output %t",
		e.Existing.Name, e.Existing.Kind, e.Existing.Length, e.Existing.IsOutput, e.Conflict.Length, e.Conflict.IsOutput)
}

// UnknownRegisterError is returned when an operation references a register
// that was never declared for the requested kind.
type UnknownRegisterError struct {
	Name string
	Kind Kind
}

func (e *UnknownRegisterError) Error() string {
	return fmt.Sprintf("%s register %q is not declared", e.Kind, e.Name)
}

// IndexOutOfRangeError is returned when a readout index does not fit the
// declared register length.
type IndexOutOfRangeError struct {
	Name   string
	Index  int
	Length int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("index %d out of range for register %q of length %d", e.Index, e.Name, e.Length)
}
