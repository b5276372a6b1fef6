// Package aabb provides an axis-aligned bounding box usable in 2D and 3D.
//
// Dimensionality is carried by the type parameter: AABB[Point2] and
// AABB[Point3] are distinct types, so mixing a 2D corner with a 3D corner is
// rejected by the compiler. Callers that only learn the dimensionality at run
// time (scripts, YAML documents) go through the dimension-erased Box API,
// which reports ErrDimensionMismatch instead.
//
// Boxes are mutable. Min <= Max is not enforced: translating, scaling or
// resizing may leave a box inverted, and its extents are then negative.
package aabb
