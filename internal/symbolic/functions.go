package symbolic

import (
	"math"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
	"github.com/zclconf/go-cty/cty/gocty"
)

// mathFunctions is the function table available to parameter expressions.
func mathFunctions() map[string]function.Function {
	return map[string]function.Function{
		"abs":    stdlib.AbsoluteFunc,
		"ceil":   stdlib.CeilFunc,
		"floor":  stdlib.FloorFunc,
		"log":    stdlib.LogFunc,
		"pow":    stdlib.PowFunc,
		"max":    stdlib.MaxFunc,
		"min":    stdlib.MinFunc,
		"signum": stdlib.SignumFunc,
		"sin":    unaryFloatFunc(math.Sin),
		"cos":    unaryFloatFunc(math.Cos),
		"tan":    unaryFloatFunc(math.Tan),
		"sqrt":   unaryFloatFunc(math.Sqrt),
		"exp":    unaryFloatFunc(math.Exp),
		"pi":     constFunc(math.Pi),
	}
}

func unaryFloatFunc(fn func(float64) float64) function.Function {
	return function.New(&function.Spec{
		Params: []function.Parameter{{Name: "num", Type: cty.Number}},
		Type:   function.StaticReturnType(cty.Number),
		Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
			var x float64
			if err := gocty.FromCtyValue(args[0], &x); err != nil {
				return cty.UnknownVal(cty.Number), err
			}
			return cty.NumberFloatVal(fn(x)), nil
		},
	})
}

func constFunc(v float64) function.Function {
	return function.New(&function.Spec{
		Type: function.StaticReturnType(cty.Number),
		Impl: func(_ []cty.Value, _ cty.Type) (cty.Value, error) {
			return cty.NumberFloatVal(v), nil
		},
	})
}
