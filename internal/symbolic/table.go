package symbolic

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/hashicorp/hcl/v2/hclsyntax"
)

// Table maps symbol names to their values. A nil Table means "no
// substitution table", which is different from an empty one.
type Table map[string]float64

// String implements flag.Value.
func (t *Table) String() string {
	if t == nil || *t == nil {
		return ""
	}
	names := make([]string, 0, len(*t))
	for name := range *t {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+"="+strconv.FormatFloat((*t)[name], 'g', -1, 64))
	}
	return strings.Join(parts, ",")
}

// Set implements flag.Value and accepts a single "name=value" assignment.
func (t *Table) Set(assignment string) error {
	name, raw, ok := strings.Cut(assignment, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return fmt.Errorf("substitution %q must have the form name=value", assignment)
	}
	if !hclsyntax.ValidIdentifier(name) {
		return fmt.Errorf("substitution %q: %q is not a valid symbol name", assignment, name)
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return fmt.Errorf("substitution %q: %w", assignment, err)
	}
	if *t == nil {
		*t = Table{}
	}
	(*t)[name] = value
	return nil
}

// Merge returns a new table holding the entries of t overridden by other.
// The result is nil only when both inputs are nil.
func (t Table) Merge(other Table) Table {
	if t == nil && other == nil {
		return nil
	}
	merged := make(Table, len(t)+len(other))
	for k, v := range t {
		merged[k] = v
	}
	for k, v := range other {
		merged[k] = v
	}
	return merged
}
