// Package registry maps operation names used in circuit files (e.g.
// "MeasureQubit") to the Go decoders that turn an HCL block body into an
// operation.
//
// Modules populate the registry at startup; Validate then checks that every
// supported operation category and every book-keeping pragma can be decoded,
// so a circuit file can never name an operation the interpreter supports but
// the loader does not.
package registry
