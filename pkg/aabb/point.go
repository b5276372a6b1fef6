package aabb

import (
	"encoding/json"
	"fmt"
)

// Dim is the dimensionality of a point or box.
type Dim int

const (
	Dim2 Dim = 2
	Dim3 Dim = 3
)

func (d Dim) String() string {
	switch d {
	case Dim2:
		return "2D"
	case Dim3:
		return "3D"
	default:
		return fmt.Sprintf("Dim(%d)", int(d))
	}
}

// Axis identifies a coordinate axis.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return "unknown"
	}
}

// Axes returns the axes present in d, in x, y, z order.
func (d Dim) Axes() []Axis {
	if d == Dim3 {
		return []Axis{AxisX, AxisY, AxisZ}
	}
	return []Axis{AxisX, AxisY}
}

// Point is the constraint satisfied by the two point types. P is the
// implementing type itself so that With, Add and Sub stay in the same
// dimensionality.
type Point[P any] interface {
	Point2 | Point3
	Dim() Dim
	At(a Axis) float64
	With(a Axis, v float64) P
	Add(o P) P
	Sub(o P) P
	fmt.Stringer
}

// Point2 is a 2D coordinate.
type Point2 struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Dim always reports Dim2.
func (Point2) Dim() Dim { return Dim2 }

// At returns the coordinate on axis a. AxisZ reads as 0.
func (p Point2) At(a Axis) float64 {
	switch a {
	case AxisX:
		return p.X
	case AxisY:
		return p.Y
	default:
		return 0
	}
}

// With returns a copy of p with axis a set to v. AxisZ is ignored.
func (p Point2) With(a Axis, v float64) Point2 {
	switch a {
	case AxisX:
		p.X = v
	case AxisY:
		p.Y = v
	}
	return p
}

func (p Point2) Add(o Point2) Point2 { return Point2{X: p.X + o.X, Y: p.Y + o.Y} }
func (p Point2) Sub(o Point2) Point2 { return Point2{X: p.X - o.X, Y: p.Y - o.Y} }

// String renders p as a JSON object, e.g. {"x":1,"y":2}.
func (p Point2) String() string {
	return marshalPoint(p, func() string { return fmt.Sprintf("{x:%g,y:%g}", p.X, p.Y) })
}

// Point3 is a 3D coordinate.
type Point3 struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

// Dim always reports Dim3.
func (Point3) Dim() Dim { return Dim3 }

// At returns the coordinate on axis a.
func (p Point3) At(a Axis) float64 {
	switch a {
	case AxisX:
		return p.X
	case AxisY:
		return p.Y
	case AxisZ:
		return p.Z
	default:
		return 0
	}
}

// With returns a copy of p with axis a set to v.
func (p Point3) With(a Axis, v float64) Point3 {
	switch a {
	case AxisX:
		p.X = v
	case AxisY:
		p.Y = v
	case AxisZ:
		p.Z = v
	}
	return p
}

func (p Point3) Add(o Point3) Point3 { return Point3{X: p.X + o.X, Y: p.Y + o.Y, Z: p.Z + o.Z} }
func (p Point3) Sub(o Point3) Point3 { return Point3{X: p.X - o.X, Y: p.Y - o.Y, Z: p.Z - o.Z} }

// String renders p as a JSON object, e.g. {"x":1,"y":2,"z":3}.
func (p Point3) String() string {
	return marshalPoint(p, func() string { return fmt.Sprintf("{x:%g,y:%g,z:%g}", p.X, p.Y, p.Z) })
}

// marshalPoint falls back to a %g rendering for NaN and Inf, which
// encoding/json refuses.
func marshalPoint(v any, fallback func() string) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fallback()
	}
	return string(b)
}

// Coords returns the coordinates of p as a slice of length p.Dim().
func Coords[P Point[P]](p P) []float64 {
	axes := p.Dim().Axes()
	out := make([]float64, len(axes))
	for i, a := range axes {
		out[i] = p.At(a)
	}
	return out
}

// pointFrom builds a P from c. Axes beyond len(c) take the value pad.
func pointFrom[P Point[P]](c []float64, pad float64) P {
	var p P
	for i, a := range p.Dim().Axes() {
		v := pad
		if i < len(c) {
			v = c[i]
		}
		p = p.With(a, v)
	}
	return p
}
