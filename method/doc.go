// Package method implements the dataflow side of the core: Method (and
// its concrete AddMethod/SubMethod/SetMethod/AssignMethod/MultiMethod
// variants) plus MethodGraph, the bipartite variable/method graph that
// enforces single-writer and acyclic invariants and propagates value
// changes through the dataflow.
package method
