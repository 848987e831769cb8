// Package cluster implements the cluster algebra: Rigid, Hedgehog and
// Balloon partial-solution descriptors over a set of point variables,
// their pairwise Intersect operation, and the CommonDistances/
// CommonAngles over-constraint enumeration a planner uses to detect
// redundant constraints once two clusters are merged.
//
// Dispatch over the three variants is a single tagged match (Kind) on
// the ordered pair of operands rather than a visitor pattern; symmetric
// cases delegate to a canonical (lower Kind first) ordering so each
// merge or enumeration rule is written exactly once.
package cluster
