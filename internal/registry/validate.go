package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/specialistvlad/qmock/internal/ctxlog"
	"github.com/specialistvlad/qmock/internal/operation"
)

// Validate performs a parity check between the registered decoders and the
// operation categories the interpreter supports.
func (r *Registry) Validate(ctx context.Context) error {
	var errs []string
	logger := ctxlog.FromContext(ctx)

	covered := make(map[operation.Category]bool)
	for _, name := range r.Names() {
		d := r.decoders[name]
		if d.Decode == nil {
			errs = append(errs, fmt.Sprintf("operation '%s': decoder has no decode function", name))
		}
		if d.Category == operation.CategoryUnknown {
			errs = append(errs, fmt.Sprintf("operation '%s': decoder declares no category", name))
		}
		if d.Category == operation.CategoryBookkeeping && !operation.IsBookkeeping(name) {
			errs = append(errs, fmt.Sprintf("operation '%s': registered as book-keeping but the interpreter would reject it", name))
		}
		covered[d.Category] = true
	}

	for _, c := range operation.Categories() {
		if !covered[c] {
			errs = append(errs, fmt.Sprintf("category %s: no operation decodes into it", c))
		}
	}
	for _, name := range operation.BookkeepingPragmas() {
		if _, ok := r.decoders[name]; !ok {
			errs = append(errs, fmt.Sprintf("book-keeping pragma '%s' has no decoder", name))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}

	logger.Debug("Registry validated.", "operations", len(r.decoders))
	return nil
}
