// Package geom provides the minimal 2-D vector/homogeneous-coordinate
// surface that the constraint-solving core consumes: Vector, Matrix,
// frame construction (MakeHCS, CSTransformMatrix), Euclidean distance,
// tolerance comparisons and the orientation/angle-class predicates used
// by selection constraints.
//
// The core treats this package as an external collaborator: it never
// re-derives linear algebra here, only the thin surface needed to build
// and compare 2-D rigid-motion transforms.
package geom
