package register

import (
	"maps"
	"slices"
)

// Outputs holds the accumulated output registers of one or more runs,
// keyed by register name. Each register is a list of rows.
type Outputs struct {
	Bits      map[string][][]bool
	Reals     map[string][][]float64
	Complexes map[string][][]complex128
}

// NewOutputs creates an empty set of output registers.
func NewOutputs() *Outputs {
	o := &Outputs{}
	o.init()
	return o
}

func (o *Outputs) init() {
	if o.Bits == nil {
		o.Bits = make(map[string][][]bool)
	}
	if o.Reals == nil {
		o.Reals = make(map[string][][]float64)
	}
	if o.Complexes == nil {
		o.Complexes = make(map[string][][]complex128)
	}
}

// Len returns the number of output registers across all kinds.
func (o *Outputs) Len() int {
	return len(o.Bits) + len(o.Reals) + len(o.Complexes)
}

// Names returns the sorted names of all output registers.
func (o *Outputs) Names() []string {
	names := slices.Collect(maps.Keys(o.Bits))
	names = append(names, slices.Collect(maps.Keys(o.Reals))...)
	names = append(names, slices.Collect(maps.Keys(o.Complexes))...)
	slices.Sort(names)
	return slices.Compact(names)
}

// Merge appends the rows of other to o. Registers named in overwrite take
// the rows of other instead of being extended with them.
func (o *Outputs) Merge(other *Outputs, overwrite ...string) {
	o.init()
	if other == nil {
		return
	}
	merge(o.Bits, other.Bits, overwrite)
	merge(o.Reals, other.Reals, overwrite)
	merge(o.Complexes, other.Complexes, overwrite)
}

func merge[T element](dst, src map[string][][]T, overwrite []string) {
	for name, rows := range src {
		if slices.Contains(overwrite, name) {
			dst[name] = slices.Clone(rows)
			continue
		}
		existing, ok := dst[name]
		if !ok {
			existing = [][]T{}
		}
		dst[name] = append(existing, rows...)
	}
}
