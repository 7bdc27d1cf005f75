package circuitfile

import (
	"context"
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/qmock/internal/ctxlog"
	"github.com/specialistvlad/qmock/internal/fsutil"
	"github.com/specialistvlad/qmock/internal/operation"
	"github.com/specialistvlad/qmock/internal/registry"
	"github.com/specialistvlad/qmock/internal/symbolic"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// fileRoot is used to decode the top-level blocks of a file.
type fileRoot struct {
	Backends      []*Backend            `hcl:"backend,block"`
	Substitutions []*substitutionsBlock `hcl:"substitutions,block"`
	Circuits      []*circuitBlock       `hcl:"circuit,block"`
}

type substitutionsBlock struct {
	Body hcl.Body `hcl:",remain"`
}

type circuitBlock struct {
	Name       string            `hcl:"name,label"`
	Operations []*operationBlock `hcl:"operation,block"`
}

type operationBlock struct {
	Name string   `hcl:"name,label"`
	Body hcl.Body `hcl:",remain"`
}

// Loader decodes circuit files with the decoders of a registry.
type Loader struct {
	registry *registry.Registry
}

// NewLoader creates a loader backed by reg.
func NewLoader(reg *registry.Registry) *Loader {
	return &Loader{registry: reg}
}

// Load parses every .hcl file under paths, in path order and, within a
// directory, in lexical order.
func (l *Loader) Load(ctx context.Context, paths ...string) (*Document, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Circuit loader started.", "path_count", len(paths))

	files, err := fsutil.FindFiles(".hcl", paths...)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .hcl files found in %s", strings.Join(paths, ", "))
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	doc := &Document{}
	parser := hclparse.NewParser()
	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}
		if err := l.decodeFile(ctx, doc, file, hclFile); err != nil {
			return nil, err
		}
	}

	logger.Debug("Circuit loading complete.", "circuits", len(doc.Circuits), "substitutions", len(doc.Substitutions))
	return doc, nil
}

// LoadSource decodes a single in-memory file. It is used by tests and by
// callers that do not read circuits from disk.
func (l *Loader) LoadSource(ctx context.Context, filename string, src []byte) (*Document, error) {
	hclFile, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}
	doc := &Document{}
	if err := l.decodeFile(ctx, doc, filename, hclFile); err != nil {
		return nil, err
	}
	return doc, nil
}

func (l *Loader) decodeFile(ctx context.Context, doc *Document, filename string, file *hcl.File) error {
	logger := ctxlog.FromContext(ctx)

	var root fileRoot
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}

	for _, b := range root.Backends {
		if doc.Backend != nil {
			return fmt.Errorf("%s: backend block defined more than once", filename)
		}
		doc.Backend = b
	}

	for _, s := range root.Substitutions {
		table, err := decodeSubstitutions(s.Body)
		if err != nil {
			return fmt.Errorf("%s: %w", filename, err)
		}
		for name := range table {
			if _, dup := doc.Substitutions[name]; dup {
				return fmt.Errorf("%s: substitution %q defined more than once", filename, name)
			}
		}
		doc.Substitutions = doc.Substitutions.Merge(table)
	}

	for _, c := range root.Circuits {
		if _, dup := doc.Circuit(c.Name); dup {
			return fmt.Errorf("%s: circuit %q defined more than once", filename, c.Name)
		}
		circuit := operation.NewCircuit()
		for _, ob := range c.Operations {
			block := &registry.Block{Name: ob.Name, Body: ob.Body, Source: file.Bytes}
			op, found, diags := l.registry.Decode(block)
			if diags.HasErrors() {
				return fmt.Errorf("%s: circuit %q, operation %q: %w", filename, c.Name, ob.Name, diags)
			}
			if !found {
				logger.Warn("Unknown operation, the run will reject it.", "file", filename, "circuit", c.Name, "operation", ob.Name)
				op = unrecognised(ob.Name)
			}
			circuit.Add(op)
		}
		doc.Circuits = append(doc.Circuits, NamedCircuit{Name: c.Name, File: filename, Circuit: circuit})
		logger.Debug("Decoded circuit.", "file", filename, "circuit", c.Name, "operations", circuit.Len())
	}
	return nil
}

// unrecognised builds a tag-only operation for a name no decoder knows.
func unrecognised(name string) operation.Operation {
	if strings.HasPrefix(name, "Pragma") {
		return operation.NewRaw(name, "Operation", "PragmaOperation", name)
	}
	return operation.NewRaw(name, "Operation", name)
}

func decodeSubstitutions(body hcl.Body) (symbolic.Table, error) {
	attrs, diags := body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid substitutions block: %w", diags)
	}
	table := make(symbolic.Table, len(attrs))
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("substitution %q: %w", name, diags)
		}
		if val.IsNull() || !val.Type().Equals(cty.Number) {
			return nil, fmt.Errorf("substitution %q must be a number, got %s", name, val.Type().FriendlyName())
		}
		var f float64
		if err := gocty.FromCtyValue(val, &f); err != nil {
			return nil, fmt.Errorf("substitution %q: %w", name, err)
		}
		table[name] = f
	}
	return table, nil
}
