// Package circuitfile loads circuits from HCL files.
//
// A file may contain at most one `backend` block, any number of
// `substitutions` blocks and any number of `circuit "<name>"` blocks. Each
// circuit is an ordered list of `operation "<Name>"` blocks whose bodies are
// decoded by the decoder registered for Name.
package circuitfile
