// Package interpreter runs a circuit against a fresh register store,
// dispatching every operation on its category and folding the resulting
// internal registers into output registers at the end of the run.
package interpreter
