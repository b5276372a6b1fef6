// Package sdfx implements the kernel.Kernel interface using the
// github.com/deadsy/sdfx SDF-based CAD library.
package sdfx

import (
	"fmt"

	"github.com/chazu/boxkit/pkg/aabb"
	"github.com/chazu/boxkit/pkg/kernel"
	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Compile-time interface check.
var _ kernel.Kernel = (*SdfxKernel)(nil)

// DefaultMeshCells is the marching cubes resolution along the longest axis.
const DefaultMeshCells = 64

// sdfxSolid wraps an sdf.SDF3 to implement kernel.Solid.
type sdfxSolid struct {
	s sdf.SDF3
}

// Bounds returns the SDF's bounding box.
func (s *sdfxSolid) Bounds() *aabb.AABB3 {
	return FromBox3(s.s.BoundingBox())
}

// SdfxKernel implements kernel.Kernel using sdfx.
type SdfxKernel struct {
	cells int
}

// New returns a kernel meshing at DefaultMeshCells.
func New() *SdfxKernel {
	return NewWithCells(DefaultMeshCells)
}

// NewWithCells returns a kernel meshing at the given resolution. Values below
// 1 fall back to DefaultMeshCells.
func NewWithCells(cells int) *SdfxKernel {
	if cells < 1 {
		cells = DefaultMeshCells
	}
	return &SdfxKernel{cells: cells}
}

// Cells returns the marching cubes resolution.
func (k *SdfxKernel) Cells() int {
	return k.cells
}

func unwrap(s kernel.Solid) sdf.SDF3 {
	return s.(*sdfxSolid).s
}

func wrap(s sdf.SDF3) kernel.Solid {
	return &sdfxSolid{s: s}
}

// Box creates a solid filling b. sdf.Box3D is centered on the origin, so the
// result is moved onto b's center.
func (k *SdfxKernel) Box(b *aabb.AABB3) (kernel.Solid, error) {
	if b == nil {
		return nil, fmt.Errorf("%w: nil box", aabb.ErrInvalidArgument)
	}
	w, h, d := b.Width(), b.Height(), b.Depth()
	if w <= 0 || h <= 0 || d <= 0 {
		return nil, fmt.Errorf("%w: box %s has non-positive extent", aabb.ErrInvalidArgument, b)
	}
	s, err := sdf.Box3D(v3.Vec{X: w, Y: h, Z: d}, 0)
	if err != nil {
		return nil, fmt.Errorf("sdfx.Box3D: %w", err)
	}
	c := b.Center()
	m := sdf.Translate3d(v3.Vec{X: c.X, Y: c.Y, Z: c.Z})
	return wrap(sdf.Transform3D(s, m)), nil
}

// Union returns the union of two solids.
func (k *SdfxKernel) Union(a, b kernel.Solid) kernel.Solid {
	return wrap(sdf.Union3D(unwrap(a), unwrap(b)))
}

// Intersection returns the intersection of two solids.
func (k *SdfxKernel) Intersection(a, b kernel.Solid) kernel.Solid {
	return wrap(sdf.Intersect3D(unwrap(a), unwrap(b)))
}

// Translate moves a solid by v.
func (k *SdfxKernel) Translate(s kernel.Solid, v aabb.Point3) kernel.Solid {
	m := sdf.Translate3d(v3.Vec{X: v.X, Y: v.Y, Z: v.Z})
	return wrap(sdf.Transform3D(unwrap(s), m))
}

// ToMesh converts a solid to a triangle mesh using marching cubes.
func (k *SdfxKernel) ToMesh(s kernel.Solid) (*kernel.Mesh, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: nil solid", aabb.ErrInvalidArgument)
	}
	ss, ok := s.(*sdfxSolid)
	if !ok {
		return nil, fmt.Errorf("%w: solid %T was not built by sdfx", aabb.ErrInvalidArgument, s)
	}

	renderer := render.NewMarchingCubesUniform(k.cells)
	triangles := render.ToTriangles(ss.s, renderer)

	numVerts := len(triangles) * 3
	vertices := make([]float32, 0, numVerts*3)
	normals := make([]float32, 0, numVerts*3)
	indices := make([]uint32, 0, numVerts)

	for i, tri := range triangles {
		n := tri.Normal()
		nx, ny, nz := float32(n.X), float32(n.Y), float32(n.Z)

		for j := 0; j < 3; j++ {
			v := tri[j]
			vertices = append(vertices, float32(v.X), float32(v.Y), float32(v.Z))
			normals = append(normals, nx, ny, nz)
			indices = append(indices, uint32(i*3+j))
		}
	}

	return &kernel.Mesh{
		Vertices: vertices,
		Normals:  normals,
		Indices:  indices,
	}, nil
}
