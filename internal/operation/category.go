package operation

import (
	"fmt"
	"slices"
)

// Category is the closed set of operation kinds the interpreter dispatches
// on. The zero value, CategoryUnknown, is never supported.
type Category uint8

const (
	CategoryUnknown Category = iota
	CategoryDefinition
	CategoryGate
	CategoryMeasureQubit
	CategoryRepeatedMeasurement
	CategoryGetPauliProduct
	CategoryPauliProductMeasurement
	CategoryOccupationProbability
	CategoryRotatedOccupationProbability
	CategoryStateVector
	CategoryDensityMatrix
	CategoryGlobalPhase
	CategoryBookkeeping
)

var categoryNames = map[Category]string{
	CategoryUnknown:                      "Unknown",
	CategoryDefinition:                   "Definition",
	CategoryGate:                         "GateOperation",
	CategoryMeasureQubit:                 "MeasureQubit",
	CategoryRepeatedMeasurement:          "PragmaRepeatedMeasurement",
	CategoryGetPauliProduct:              "PragmaGetPauliProduct",
	CategoryPauliProductMeasurement:      "PragmaPauliProdMeasurement",
	CategoryOccupationProbability:        "PragmaGetOccupationProbability",
	CategoryRotatedOccupationProbability: "PragmaGetRotatedOccupationProbability",
	CategoryStateVector:                  "PragmaGetStateVector",
	CategoryDensityMatrix:                "PragmaGetDensityMatrix",
	CategoryGlobalPhase:                  "PragmaGlobalPhase",
	CategoryBookkeeping:                  "Bookkeeping",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Category(%d)", uint8(c))
}

// Categories returns every supported category, i.e. all but CategoryUnknown.
func Categories() []Category {
	out := make([]Category, 0, len(categoryNames)-1)
	for c := CategoryDefinition; c <= CategoryBookkeeping; c++ {
		out = append(out, c)
	}
	return out
}

// classification is consulted in order; the first tag that matches decides
// the category.
var classification = []struct {
	tag      string
	category Category
}{
	{"GateOperation", CategoryGate},
	{"Definition", CategoryDefinition},
	{"MeasureQubit", CategoryMeasureQubit},
	{"PragmaRepeatedMeasurement", CategoryRepeatedMeasurement},
	{"PragmaGetPauliProduct", CategoryGetPauliProduct},
	{"PragmaPauliProdMeasurement", CategoryPauliProductMeasurement},
	{"PragmaGetOccupationProbability", CategoryOccupationProbability},
	{"PragmaGetRotatedOccupationProbability", CategoryRotatedOccupationProbability},
	{"PragmaGetStateVector", CategoryStateVector},
	{"PragmaGetDensityMatrix", CategoryDensityMatrix},
	{"PragmaGlobalPhase", CategoryGlobalPhase},
}

// bookkeeping lists the pragmas that are acknowledged and ignored: noise
// shaping, timing, state preparation and decomposition markers.
var bookkeeping = []string{
	"PragmaSetNumberOfMeasurements",
	"PragmaSetStateVector",
	"PragmaSetDensityMatrix",
	"PragmaNoise",
	"PragmaDamping",
	"PragmaDepolarise",
	"PragmaDepolarising",
	"PragmaDephasing",
	"PragmaRandomNoise",
	"PragmaGeneralNoise",
	"PragmaRepeatGate",
	"PragmaBoostNoise",
	"PragmaOverrotation",
	"PragmaStop",
	"PragmaStopParallelBlock",
	"PragmaSleep",
	"PragmaActiveReset",
	"PragmaParameterSubstitution",
	"InputSymbolic",
	"PragmaStartDecompositionBlock",
	"PragmaStopDecompositionBlock",
	"PragmaConditional",
}

// BookkeepingPragmas returns the names of the pragmas treated as no-ops.
func BookkeepingPragmas() []string {
	return slices.Clone(bookkeeping)
}

// IsBookkeeping reports whether name is one of the no-op pragmas.
func IsBookkeeping(name string) bool {
	return slices.Contains(bookkeeping, name)
}

// Classify maps a set of capability tags onto a category. Tags that match
// nothing give CategoryUnknown.
func Classify(tags []string) Category {
	for _, rule := range classification {
		if slices.Contains(tags, rule.tag) {
			return rule.category
		}
	}
	for _, tag := range tags {
		if IsBookkeeping(tag) {
			return CategoryBookkeeping
		}
	}
	return CategoryUnknown
}
