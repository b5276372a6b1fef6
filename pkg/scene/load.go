package scene

import (
	"fmt"
	"io"

	"github.com/chazu/boxkit/pkg/aabb"
	"gopkg.in/yaml.v3"
)

// Document is the YAML form of a scene.
//
//	boxes:
//	  - name: floor
//	    min: [0, 0, 0]
//	    max: [10, 1, 10]
type Document struct {
	Boxes []BoxDoc `json:"boxes" yaml:"boxes"`
}

// BoxDoc is one box entry of a Document.
type BoxDoc struct {
	Name string    `json:"name" yaml:"name"`
	Min  []float64 `json:"min" yaml:"min"`
	Max  []float64 `json:"max" yaml:"max"`
}

// LoadYAML decodes a Document from r and builds a Scene from it. Entries
// whose corners disagree on dimensionality fail with aabb.ErrDimensionMismatch.
func LoadYAML(r io.Reader) (*Scene, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil && err != io.EOF {
		return nil, fmt.Errorf("scene: decode yaml: %w", err)
	}
	return doc.Build()
}

// Build creates a Scene from the document's entries, in order.
func (d Document) Build() (*Scene, error) {
	s := New()
	for i, bd := range d.Boxes {
		box, err := aabb.FromCoords(bd.Min, bd.Max)
		if err != nil {
			return nil, fmt.Errorf("scene: box %d (%q): %w", i, bd.Name, err)
		}
		if _, err := s.Add(bd.Name, box); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Document converts s back into its YAML form.
func (s *Scene) Document() Document {
	var d Document
	for _, n := range s.List() {
		min, max := n.Box.Bounds()
		d.Boxes = append(d.Boxes, BoxDoc{Name: n.Name, Min: min, Max: max})
	}
	return d
}
