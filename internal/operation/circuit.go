package operation

import (
	"iter"
	"slices"

	"github.com/specialistvlad/qmock/internal/register"
)

// Circuit is an ordered sequence of operations.
type Circuit struct {
	ops []Operation
}

// NewCircuit creates a circuit holding ops in order.
func NewCircuit(ops ...Operation) *Circuit {
	return &Circuit{ops: slices.Clone(ops)}
}

// Add appends operations and returns the circuit for chaining.
func (c *Circuit) Add(ops ...Operation) *Circuit {
	c.ops = append(c.ops, ops...)
	return c
}

// Len returns the number of operations. A nil circuit is empty.
func (c *Circuit) Len() int {
	if c == nil {
		return 0
	}
	return len(c.ops)
}

// Operations returns a copy of the operation sequence.
func (c *Circuit) Operations() []Operation {
	if c == nil {
		return nil
	}
	return slices.Clone(c.ops)
}

// All iterates over the operations with their position.
func (c *Circuit) All() iter.Seq2[int, Operation] {
	return func(yield func(int, Operation) bool) {
		if c == nil {
			return
		}
		for i, op := range c.ops {
			if !yield(i, op) {
				return
			}
		}
	}
}

// FilterByTag returns the operations carrying tag, in order.
func (c *Circuit) FilterByTag(tag string) []Operation {
	var out []Operation
	for _, op := range c.All() {
		if slices.Contains(op.Tags(), tag) {
			out = append(out, op)
		}
	}
	return out
}

// Definitions returns the register definitions declared by the circuit.
func (c *Circuit) Definitions() []register.Definition {
	var out []register.Definition
	for _, op := range c.All() {
		if d, ok := op.(Declarer); ok && op.Category() == CategoryDefinition {
			out = append(out, d.Definition())
		}
	}
	return out
}
