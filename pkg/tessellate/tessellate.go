// Package tessellate walks a scene and produces triangle meshes using a
// geometry kernel. One mesh is produced per 3D box.
package tessellate

import (
	"fmt"

	"github.com/chazu/boxkit/pkg/aabb"
	"github.com/chazu/boxkit/pkg/kernel"
	"github.com/chazu/boxkit/pkg/scene"
)

// Tessellate meshes every 3D box of s in insertion order, naming each mesh
// after its box. 2D boxes have no volume and are skipped. The scene is never
// mutated.
func Tessellate(s *scene.Scene, k kernel.Kernel) ([]*kernel.Mesh, error) {
	if s == nil {
		return nil, nil
	}

	var meshes []*kernel.Mesh
	for _, n := range s.List() {
		b, ok := n.Box.(*aabb.AABB3)
		if !ok {
			continue
		}
		mesh, err := meshBox(k, n, b)
		if err != nil {
			return nil, fmt.Errorf("tessellate: box %q (%s): %w", n.Name, n.ID.Short(), err)
		}
		meshes = append(meshes, mesh)
	}
	return meshes, nil
}

func meshBox(k kernel.Kernel, n *scene.Node, b *aabb.AABB3) (*kernel.Mesh, error) {
	solid, err := k.Box(b)
	if err != nil {
		return nil, err
	}
	mesh, err := k.ToMesh(solid)
	if err != nil {
		return nil, fmt.Errorf("ToMesh failed: %w", err)
	}

	// Prefer the node's name, fall back to the short ID.
	if n.Name != "" {
		mesh.Name = n.Name
	} else {
		mesh.Name = n.ID.Short()
	}
	return mesh, nil
}
