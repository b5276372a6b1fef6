// Package scene holds a named, ordered collection of boxes and checks it for
// degenerate boxes, collisions and nesting.
package scene

import (
	"fmt"

	"github.com/chazu/boxkit/pkg/aabb"
)

// Node is one named box in a scene. Box is shared, not copied: mutating it
// through another reference is visible here.
type Node struct {
	ID   NodeID   `json:"id"`
	Name string   `json:"name"`
	Box  aabb.Box `json:"-"`
}

// Scene is an insertion-ordered set of uniquely named boxes.
type Scene struct {
	Nodes     map[NodeID]*Node  `json:"-"`
	Order     []NodeID          `json:"order"`
	NameIndex map[string]NodeID `json:"name_index"`
}

// New creates an empty Scene.
func New() *Scene {
	return &Scene{
		Nodes:     make(map[NodeID]*Node),
		NameIndex: make(map[string]NodeID),
	}
}

// Add registers box under name. Names must be unique and non-empty.
func (s *Scene) Add(name string, box aabb.Box) (*Node, error) {
	if name == "" {
		return nil, fmt.Errorf("scene: box name is empty")
	}
	if box == nil {
		return nil, fmt.Errorf("scene: box %q: %w", name, aabb.ErrInvalidArgument)
	}
	if _, exists := s.NameIndex[name]; exists {
		return nil, fmt.Errorf("scene: box %q already defined", name)
	}
	n := &Node{ID: NewNodeID("box/" + name), Name: name, Box: box}
	s.Nodes[n.ID] = n
	s.NameIndex[name] = n.ID
	s.Order = append(s.Order, n.ID)
	return n, nil
}

// Lookup returns the node with the given name, or nil.
func (s *Scene) Lookup(name string) *Node {
	id, ok := s.NameIndex[name]
	if !ok {
		return nil
	}
	return s.Nodes[id]
}

// MustLookup returns the node with the given name, or panics.
func (s *Scene) MustLookup(name string) *Node {
	n := s.Lookup(name)
	if n == nil {
		panic(fmt.Sprintf("scene: no box named %q", name))
	}
	return n
}

// Get returns the node with the given ID, or nil.
func (s *Scene) Get(id NodeID) *Node {
	return s.Nodes[id]
}

// List returns all nodes in insertion order.
func (s *Scene) List() []*Node {
	nodes := make([]*Node, 0, len(s.Order))
	for _, id := range s.Order {
		if n := s.Nodes[id]; n != nil {
			nodes = append(nodes, n)
		}
	}
	return nodes
}

// NodeCount returns the number of boxes.
func (s *Scene) NodeCount() int {
	return len(s.Nodes)
}
