package sdfx

import (
	"github.com/chazu/boxkit/pkg/aabb"
	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// ToBox3 converts a 3D box to an sdf.Box3.
func ToBox3(b *aabb.AABB3) sdf.Box3 {
	return sdf.Box3{
		Min: v3.Vec{X: b.Min.X, Y: b.Min.Y, Z: b.Min.Z},
		Max: v3.Vec{X: b.Max.X, Y: b.Max.Y, Z: b.Max.Z},
	}
}

// FromBox3 converts an sdf.Box3 to a 3D box.
func FromBox3(b sdf.Box3) *aabb.AABB3 {
	return aabb.New3D(
		aabb.Point3{X: b.Min.X, Y: b.Min.Y, Z: b.Min.Z},
		aabb.Point3{X: b.Max.X, Y: b.Max.Y, Z: b.Max.Z},
	)
}

// ToBox2 converts a 2D box to an sdf.Box2.
func ToBox2(b *aabb.AABB2) sdf.Box2 {
	return sdf.Box2{
		Min: v2.Vec{X: b.Min.X, Y: b.Min.Y},
		Max: v2.Vec{X: b.Max.X, Y: b.Max.Y},
	}
}

// FromBox2 converts an sdf.Box2 to a 2D box.
func FromBox2(b sdf.Box2) *aabb.AABB2 {
	return aabb.New2D(
		aabb.Point2{X: b.Min.X, Y: b.Min.Y},
		aabb.Point2{X: b.Max.X, Y: b.Max.Y},
	)
}
