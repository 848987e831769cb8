// Package rigidcore is the combinatorial core of a 2-D geometric
// constraint solver: the machinery that reasons about which sets of
// points are rigid, scalable or angularly fixed, and how partial
// solutions compose.
//
// Three subsystems do the work:
//
//	cluster/       — the Rigid/Hedgehog/Balloon algebra and its
//	                 intersection and over-constraint operations
//	configuration/ — immutable point-to-coordinate assignments,
//	                 transform, merge, and rigid-motion equality
//	method/        — the bipartite dataflow graph of variables and
//	                 methods, with single-writer and acyclic invariants
//	                 and change propagation
//
// constraint/ indexes user-declared relations over variables; digraph/
// is the generic directed-graph substrate both graph-shaped subsystems
// build on; geom/ is the minimal 2-D vector and homogeneous-coordinate
// surface the core consumes but does not re-derive.
//
// This module has no CLI, no persisted state and no wire protocol: it
// is a library consumed by an external planner that builds clusters,
// wires methods, and drives propagation.
package rigidcore
