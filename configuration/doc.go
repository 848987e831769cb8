// Package configuration implements Configuration: an immutable mapping
// from point variables to 2-D coordinates, with transform, union,
// restriction, shared-point merge, and rigid-motion-invariant equality.
//
// Every operation returns a fresh Configuration; none mutates its
// receiver or argument. Equality and hashing are defined over the
// variable-name set and the geometric shape up to rotation and
// translation, never over raw coordinates.
package configuration
