package interpreter

import (
	"fmt"

	"github.com/specialistvlad/qmock/internal/operation"
)

// UnsupportedOperationError is returned for an operation outside the
// supported category set, or one whose category is known but which lacks
// the data that category needs.
type UnsupportedOperationError struct {
	Hqslang  string
	Category operation.Category
	Reason   string
}

func (e *UnsupportedOperationError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("operation %q is not supported by the mocked backend: %s", e.Hqslang, e.Reason)
	}
	return fmt.Sprintf("operation %q is not supported by the mocked backend", e.Hqslang)
}
