package aabb

import "fmt"

// AABB is an axis-aligned box spanned by two corners of the same point type.
// Min is meant to hold the smallest coordinate on every axis and Max the
// largest, but mutators do not keep it that way.
type AABB[P Point[P]] struct {
	Min P `json:"min" yaml:"min"`
	Max P `json:"max" yaml:"max"`
}

// AABB2 is a 2D box.
type AABB2 = AABB[Point2]

// AABB3 is a 3D box.
type AABB3 = AABB[Point3]

// New returns a box with the given corners. The corners are copied.
func New[P Point[P]](min, max P) *AABB[P] {
	return &AABB[P]{Min: min, Max: max}
}

// New2D returns a 2D box.
func New2D(min, max Point2) *AABB2 { return New(min, max) }

// New3D returns a 3D box.
func New3D(min, max Point3) *AABB3 { return New(min, max) }

// Dim returns the dimensionality fixed by the point type.
func (b *AABB[P]) Dim() Dim {
	var p P
	return p.Dim()
}

func (b *AABB[P]) Is2D() bool { return b.Dim() == Dim2 }
func (b *AABB[P]) Is3D() bool { return b.Dim() == Dim3 }

// Clone returns an independent copy of b.
func (b *AABB[P]) Clone() *AABB[P] {
	c := *b
	return &c
}

// extent is the signed length of b along a.
func (b *AABB[P]) extent(a Axis) float64 {
	return b.Max.At(a) - b.Min.At(a)
}

// Width is Max.X - Min.X. It is negative when the box is inverted on x.
func (b *AABB[P]) Width() float64 { return b.extent(AxisX) }

// Height is Max.Y - Min.Y.
func (b *AABB[P]) Height() float64 { return b.extent(AxisY) }

// Depth is Max.Z - Min.Z for 3D boxes and 0 otherwise.
func (b *AABB[P]) Depth() float64 {
	if !b.Is3D() {
		return 0
	}
	return b.extent(AxisZ)
}

// Center returns the per-axis midpoint of the corners.
func (b *AABB[P]) Center() P {
	var c P
	for _, a := range b.Dim().Axes() {
		c = c.With(a, (b.Min.At(a)+b.Max.At(a))/2)
	}
	return c
}

// Area is width*height in 2D and the total surface area in 3D.
func (b *AABB[P]) Area() float64 {
	w, h := b.Width(), b.Height()
	if !b.Is3D() {
		return w * h
	}
	d := b.Depth()
	return 2 * (w*h + w*d + h*d)
}

// Volume is width*height*depth in 3D and 0 in 2D.
func (b *AABB[P]) Volume() float64 {
	if !b.Is3D() {
		return 0
	}
	return b.Width() * b.Height() * b.Depth()
}

// Translate shifts both corners by v and returns b.
func (b *AABB[P]) Translate(v P) *AABB[P] {
	b.Min = b.Min.Add(v)
	b.Max = b.Max.Add(v)
	return b
}

// MoveTo translates b so that Min lands on p, keeping its extents.
func (b *AABB[P]) MoveTo(p P) *AABB[P] {
	return b.Translate(p.Sub(b.Min))
}

// Scale scales b per axis about its current center and returns b.
// A factor of 1 leaves that axis alone.
func (b *AABB[P]) Scale(f P) *AABB[P] {
	c := b.Center()
	for _, a := range b.Dim().Axes() {
		b.scaleAxis(a, c.At(a), f.At(a))
	}
	return b
}

// ScaleAxis scales b along a single axis about its current center.
// Axes the box does not have are ignored.
func (b *AABB[P]) ScaleAxis(a Axis, f float64) *AABB[P] {
	if a == AxisZ && !b.Is3D() {
		return b
	}
	b.scaleAxis(a, b.Center().At(a), f)
	return b
}

func (b *AABB[P]) scaleAxis(a Axis, c, f float64) {
	b.Min = b.Min.With(a, c+(b.Min.At(a)-c)*f)
	b.Max = b.Max.With(a, c+(b.Max.At(a)-c)*f)
}

// set writes v into the coordinate controlled by c.
func (b *AABB[P]) set(c corner, v float64) {
	if c.max {
		b.Max = b.Max.With(c.axis, v)
		return
	}
	b.Min = b.Min.With(c.axis, v)
}

// ResizeFromEndpoint moves the named corner to the absolute position to.
// Coordinates of the opposite corner are left untouched.
func (b *AABB[P]) ResizeFromEndpoint(e Endpoint, to P) error {
	if !e.Valid(b.Dim()) {
		return fmt.Errorf("%w: %q on %s box", ErrUnsupportedEndpoint, e, b.Dim())
	}
	for _, edge := range endpointEdges[e] {
		c := edgeCorners[edge]
		b.set(c, to.At(c.axis))
	}
	return nil
}

// ResizeFromEdge sets the coordinate of the named face to v.
func (b *AABB[P]) ResizeFromEdge(e Edge, v float64) error {
	if !e.Valid(b.Dim()) {
		return fmt.Errorf("%w: %q on %s box", ErrUnsupportedEdge, e, b.Dim())
	}
	b.set(edgeCorners[e], v)
	return nil
}

// Collide reports whether a and b overlap on every axis. Touching boxes
// collide.
func Collide[P Point[P]](a, b *AABB[P]) (bool, error) {
	if a == nil || b == nil {
		return false, fmt.Errorf("%w: collide with nil box", ErrInvalidArgument)
	}
	for _, ax := range a.Dim().Axes() {
		if a.Max.At(ax) < b.Min.At(ax) || a.Min.At(ax) > b.Max.At(ax) {
			return false, nil
		}
	}
	return true, nil
}

// Collide is the method form of the package-level Collide.
func (b *AABB[P]) Collide(other *AABB[P]) (bool, error) {
	return Collide(b, other)
}

// ContainsBox reports whether other lies strictly inside b on every axis.
// Shared boundaries do not count, so no box contains itself.
func (b *AABB[P]) ContainsBox(other *AABB[P]) (bool, error) {
	if b == nil || other == nil {
		return false, fmt.Errorf("%w: contains with nil box", ErrInvalidArgument)
	}
	for _, a := range b.Dim().Axes() {
		if !(b.Min.At(a) < other.Min.At(a) && b.Max.At(a) > other.Max.At(a)) {
			return false, nil
		}
	}
	return true, nil
}

// ContainsPoint reports whether p is contained in b.
//
// This is not the usual inclusive test. On x and y a point is rejected only
// when Min >= p and Max <= p hold on both axes at once, which for a
// non-inverted box happens only when it has collapsed onto p. On z a 3D point
// is rejected whenever Min.Z <= p.Z <= Max.Z.
func (b *AABB[P]) ContainsPoint(p P) bool {
	x, y := p.At(AxisX), p.At(AxisY)
	if b.Min.At(AxisX) >= x && b.Min.At(AxisY) >= y &&
		b.Max.At(AxisX) <= x && b.Max.At(AxisY) <= y {
		return false
	}
	if b.Is3D() {
		z := p.At(AxisZ)
		if b.Min.At(AxisZ) <= z && z <= b.Max.At(AxisZ) {
			return false
		}
	}
	return true
}

// String renders b as AABB(<min>, <max>) with each corner as a JSON object.
func (b *AABB[P]) String() string {
	return fmt.Sprintf("AABB(%s, %s)", b.Min.String(), b.Max.String())
}
