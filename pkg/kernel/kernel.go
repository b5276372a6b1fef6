// Package kernel defines the solid-geometry backend that turns 3D boxes into
// meshes. Implementations (sdfx) sit behind this interface so that the
// tessellator does not depend on a particular library.
package kernel

import "github.com/chazu/boxkit/pkg/aabb"

// Solid is an opaque handle to a kernel solid.
type Solid interface {
	// Bounds returns the solid's axis-aligned bounding box.
	Bounds() *aabb.AABB3
}

// Kernel builds solids from boxes and meshes them.
type Kernel interface {
	// Box creates a solid filling b. Boxes with a non-positive extent on any
	// axis are rejected.
	Box(b *aabb.AABB3) (Solid, error)

	Union(a, b Solid) Solid
	Intersection(a, b Solid) Solid

	// Translate moves a solid by v.
	Translate(s Solid, v aabb.Point3) Solid

	ToMesh(s Solid) (*Mesh, error)
}
