package symbolic

import (
	"maps"
	"slices"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/hashicorp/hcl/v2/hclwrite"
)

// analyze returns the sorted, unique root names of the variables expr
// references and of the functions it calls.
func analyze(expr hcl.Expression) (symbols, functions []string) {
	if expr == nil {
		return nil, nil
	}

	symbolSet := make(map[string]struct{})
	for _, traversal := range expr.Variables() {
		symbolSet[traversal.RootName()] = struct{}{}
	}

	// Variables() does not report calls, so the syntax tree is visited.
	functionSet := make(map[string]struct{})
	if node, ok := expr.(hclsyntax.Node); ok {
		hclsyntax.VisitAll(node, func(n hclsyntax.Node) hcl.Diagnostics {
			if call, ok := n.(*hclsyntax.FunctionCallExpr); ok {
				functionSet[call.Name] = struct{}{}
			}
			return nil
		})
	}

	return sortedKeys(symbolSet), sortedKeys(functionSet)
}

func sortedKeys(set map[string]struct{}) []string {
	if len(set) == 0 {
		return nil
	}
	return slices.Sorted(maps.Keys(set))
}

// nestedReferences returns the source text of every reference that is not
// a plain symbol name, such as "params.theta" or "angles[0]".
func nestedReferences(expr hcl.Expression) []string {
	if expr == nil {
		return nil
	}
	var refs []string
	for _, traversal := range expr.Variables() {
		if len(traversal) > 1 {
			refs = append(refs, string(hclwrite.TokensForTraversal(traversal).Bytes()))
		}
	}
	return refs
}
