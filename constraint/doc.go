// Package constraint implements the Constraint contract and the
// ConstraintGraph, a bipartite container indexing which declared
// constraints touch which point variables.
//
// Constraint itself is a pure predicate over an assignment; the
// concrete SelectionConstraint family wraps geom's orientation and
// angle-class predicates for planner use.
package constraint
