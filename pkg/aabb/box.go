package aabb

import "fmt"

// Box is a dimension-erased view of *AABB2 or *AABB3, for callers that learn
// the dimensionality only at run time. The unexported methods seal it to this
// package.
type Box interface {
	fmt.Stringer
	Dim() Dim
	Is2D() bool
	Is3D() bool
	Width() float64
	Height() float64
	Depth() float64
	Area() float64
	Volume() float64

	// Bounds returns the corners as coordinate slices of length Dim().
	Bounds() (min, max []float64)
	// CenterCoords returns Center() as a coordinate slice.
	CenterCoords() []float64
	// CloneBox is Clone behind the Box interface.
	CloneBox() Box

	translateCoords(v []float64)
	scaleCoords(f []float64)
	endpointCoords(e Endpoint, to []float64) error
	edge(e Edge, v float64) error
}

var (
	_ Box = (*AABB2)(nil)
	_ Box = (*AABB3)(nil)
)

// Is2D reports whether v is a 2D box.
func Is2D(v any) bool {
	_, ok := v.(*AABB2)
	return ok
}

// Is3D reports whether v is a 3D box.
func Is3D(v any) bool {
	_, ok := v.(*AABB3)
	return ok
}

// FromCoords builds a box from coordinate slices of length 2 or 3. Slices of
// different lengths yield ErrDimensionMismatch.
func FromCoords(min, max []float64) (Box, error) {
	if len(min) != len(max) {
		return nil, fmt.Errorf("%w: min has %d coordinates, max has %d", ErrDimensionMismatch, len(min), len(max))
	}
	switch Dim(len(min)) {
	case Dim2:
		return New(pointFrom[Point2](min, 0), pointFrom[Point2](max, 0)), nil
	case Dim3:
		return New(pointFrom[Point3](min, 0), pointFrom[Point3](max, 0)), nil
	default:
		return nil, fmt.Errorf("%w: points need 2 or 3 coordinates, got %d", ErrInvalidArgument, len(min))
	}
}

func (b *AABB[P]) Bounds() (min, max []float64) {
	return Coords(b.Min), Coords(b.Max)
}

func (b *AABB[P]) CenterCoords() []float64 {
	return Coords(b.Center())
}

func (b *AABB[P]) CloneBox() Box {
	return b.Clone()
}

func (b *AABB[P]) translateCoords(v []float64) {
	b.Translate(pointFrom[P](v, 0))
}

func (b *AABB[P]) scaleCoords(f []float64) {
	b.Scale(pointFrom[P](f, 1))
}

func (b *AABB[P]) endpointCoords(e Endpoint, to []float64) error {
	if len(to) != len(b.Dim().Axes()) {
		return mismatch(b.Dim(), Dim(len(to)))
	}
	return b.ResizeFromEndpoint(e, pointFrom[P](to, 0))
}

func (b *AABB[P]) edge(e Edge, v float64) error {
	return b.ResizeFromEdge(e, v)
}

func checkBox(b Box) error {
	if b == nil || isNilBox(b) {
		return fmt.Errorf("%w: nil box", ErrInvalidArgument)
	}
	return nil
}

// isNilBox catches typed nil pointers stored in the interface.
func isNilBox(b Box) bool {
	switch v := b.(type) {
	case *AABB2:
		return v == nil
	case *AABB3:
		return v == nil
	}
	return false
}

// checkCoords rejects coordinate slices longer than the box's dimensionality.
func checkCoords(b Box, c []float64) error {
	if len(c) > len(b.Dim().Axes()) {
		return mismatch(b.Dim(), Dim(len(c)))
	}
	return nil
}

// TranslateBox shifts b by v. Missing components of v are 0.
func TranslateBox(b Box, v []float64) error {
	if err := checkBox(b); err != nil {
		return err
	}
	if err := checkCoords(b, v); err != nil {
		return err
	}
	b.translateCoords(v)
	return nil
}

// MoveBoxTo moves b so that its min corner lands on p. p must have exactly
// b.Dim() coordinates.
func MoveBoxTo(b Box, p []float64) error {
	if err := checkBox(b); err != nil {
		return err
	}
	if len(p) != len(b.Dim().Axes()) {
		return mismatch(b.Dim(), Dim(len(p)))
	}
	min, _ := b.Bounds()
	d := make([]float64, len(p))
	for i := range p {
		d[i] = p[i] - min[i]
	}
	b.translateCoords(d)
	return nil
}

// ScaleBox scales b about its center. Missing factors are 1.
func ScaleBox(b Box, f []float64) error {
	if err := checkBox(b); err != nil {
		return err
	}
	if err := checkCoords(b, f); err != nil {
		return err
	}
	b.scaleCoords(f)
	return nil
}

// ResizeBoxFromEndpoint is ResizeFromEndpoint for a Box. to must have exactly
// b.Dim() coordinates.
func ResizeBoxFromEndpoint(b Box, e Endpoint, to []float64) error {
	if err := checkBox(b); err != nil {
		return err
	}
	return b.endpointCoords(e, to)
}

// ResizeBoxFromEdge is ResizeFromEdge for a Box.
func ResizeBoxFromEdge(b Box, e Edge, v float64) error {
	if err := checkBox(b); err != nil {
		return err
	}
	return b.edge(e, v)
}

// CollideBoxes is Collide for boxes of possibly different dimensionality.
func CollideBoxes(a, b Box) (bool, error) {
	if err := checkBox(a); err != nil {
		return false, err
	}
	if err := checkBox(b); err != nil {
		return false, err
	}
	switch x := a.(type) {
	case *AABB2:
		y, ok := b.(*AABB2)
		if !ok {
			return false, mismatch(Dim2, b.Dim())
		}
		return Collide(x, y)
	case *AABB3:
		y, ok := b.(*AABB3)
		if !ok {
			return false, mismatch(Dim3, b.Dim())
		}
		return Collide(x, y)
	}
	return false, fmt.Errorf("%w: unknown box type %T", ErrInvalidArgument, a)
}

// ContainsBoxes reports whether inner lies strictly inside outer.
func ContainsBoxes(outer, inner Box) (bool, error) {
	if err := checkBox(outer); err != nil {
		return false, err
	}
	if err := checkBox(inner); err != nil {
		return false, err
	}
	switch x := outer.(type) {
	case *AABB2:
		y, ok := inner.(*AABB2)
		if !ok {
			return false, mismatch(Dim2, inner.Dim())
		}
		return x.ContainsBox(y)
	case *AABB3:
		y, ok := inner.(*AABB3)
		if !ok {
			return false, mismatch(Dim3, inner.Dim())
		}
		return x.ContainsBox(y)
	}
	return false, fmt.Errorf("%w: unknown box type %T", ErrInvalidArgument, outer)
}

// ContainsCoords is ContainsPoint for a Box. p must have exactly b.Dim()
// coordinates; a nil p is an invalid argument.
func ContainsCoords(b Box, p []float64) (bool, error) {
	if err := checkBox(b); err != nil {
		return false, err
	}
	if p == nil {
		return false, fmt.Errorf("%w: nil point", ErrInvalidArgument)
	}
	if len(p) != len(b.Dim().Axes()) {
		return false, mismatch(b.Dim(), Dim(len(p)))
	}
	switch x := b.(type) {
	case *AABB2:
		return x.ContainsPoint(pointFrom[Point2](p, 0)), nil
	case *AABB3:
		return x.ContainsPoint(pointFrom[Point3](p, 0)), nil
	}
	return false, fmt.Errorf("%w: unknown box type %T", ErrInvalidArgument, b)
}
