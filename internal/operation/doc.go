// Package operation defines the closed set of operation categories the
// mocked interpreter understands and the concrete operations that carry
// them.
//
// Every operation reports its hqslang name, its capability tags and its
// Category. Category-specific data is exposed through small accessor
// interfaces (Declarer, Readouter, Indexed, Batched, Parametrized, Phased)
// so that operations defined outside this package can take part in
// interpretation as long as they implement the accessors their category
// requires.
package operation
