// Package bristol reads and writes arithmetic and boolean circuits in the
// line-oriented Bristol text format, and cross-checks the text against the
// symbolic input/output naming metadata that the format itself cannot carry.
//
// The package only converts representations; it never evaluates a circuit.
package bristol
