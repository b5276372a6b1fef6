package scene

import (
	"fmt"

	"github.com/chazu/boxkit/pkg/aabb"
)

// Severity ranks a validation finding.
type Severity int

const (
	SeverityError   Severity = iota // box is inverted
	SeverityWarning                 // box is flat on some axis
	SeverityInfo                    // spatial relation between two boxes
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// MarshalText lets findings serialize with readable severities.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Finding is a single validation result. Other is set for findings about a
// pair of boxes.
type Finding struct {
	NodeID   NodeID   `json:"node_id"`
	Other    NodeID   `json:"other"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

func (f Finding) String() string {
	if f.NodeID.IsZero() {
		return fmt.Sprintf("[%s] %s", f.Severity, f.Message)
	}
	return fmt.Sprintf("[%s] box %s: %s", f.Severity, f.NodeID.Short(), f.Message)
}

// Validate checks every box's extents and every same-dimension pair for
// collision and strict containment. It never mutates the scene. Findings
// follow insertion order.
func Validate(s *Scene) []Finding {
	var findings []Finding
	nodes := s.List()
	for _, n := range nodes {
		findings = append(findings, validateExtents(n)...)
	}
	for i := 0; i < len(nodes); i++ {
		for j := i + 1; j < len(nodes); j++ {
			findings = append(findings, validatePair(nodes[i], nodes[j])...)
		}
	}
	return findings
}

// HasErrors reports whether any finding has SeverityError.
func HasErrors(findings []Finding) bool {
	for _, f := range findings {
		if f.Severity == SeverityError {
			return true
		}
	}
	return false
}

func extentOf(b aabb.Box, a aabb.Axis) float64 {
	switch a {
	case aabb.AxisX:
		return b.Width()
	case aabb.AxisY:
		return b.Height()
	default:
		return b.Depth()
	}
}

// validateExtents flags negative extents as errors and zero extents as
// warnings.
func validateExtents(n *Node) []Finding {
	var findings []Finding
	for _, a := range n.Box.Dim().Axes() {
		e := extentOf(n.Box, a)
		switch {
		case e < 0:
			findings = append(findings, Finding{
				NodeID:   n.ID,
				Message:  fmt.Sprintf("%q is inverted on %s (extent %.4f)", n.Name, a, e),
				Severity: SeverityError,
			})
		case e == 0:
			findings = append(findings, Finding{
				NodeID:   n.ID,
				Message:  fmt.Sprintf("%q has zero extent on %s", n.Name, a),
				Severity: SeverityWarning,
			})
		}
	}
	return findings
}

// validatePair reports containment when one box strictly holds the other,
// and collision otherwise. Boxes of different dimensionality are skipped.
func validatePair(a, b *Node) []Finding {
	if a.Box.Dim() != b.Box.Dim() {
		return nil
	}
	if in, err := aabb.ContainsBoxes(a.Box, b.Box); err == nil && in {
		return []Finding{relation(a, b, "contains")}
	}
	if in, err := aabb.ContainsBoxes(b.Box, a.Box); err == nil && in {
		return []Finding{relation(b, a, "contains")}
	}
	if hit, err := aabb.CollideBoxes(a.Box, b.Box); err == nil && hit {
		return []Finding{relation(a, b, "collides with")}
	}
	return nil
}

func relation(a, b *Node, verb string) Finding {
	return Finding{
		NodeID:   a.ID,
		Other:    b.ID,
		Message:  fmt.Sprintf("%q %s %q", a.Name, verb, b.Name),
		Severity: SeverityInfo,
	}
}
