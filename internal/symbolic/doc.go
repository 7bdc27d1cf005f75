// Package symbolic turns gate parameters into concrete numbers.
//
// Parameters are HCL native-syntax expressions such as `0.5`, `theta * 2`
// or `sin(phi) / 2`. Every variable an expression references is a symbol
// that has to be provided by a substitution Table before the expression can
// be evaluated. A Resolver without a table only accepts expressions that
// contain no symbols at all.
package symbolic
