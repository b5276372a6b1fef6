package aabb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func box2(x0, y0, x1, y1 float64) *AABB2 {
	return New2D(Point2{X: x0, Y: y0}, Point2{X: x1, Y: y1})
}

func box3(x0, y0, z0, x1, y1, z1 float64) *AABB3 {
	return New3D(Point3{X: x0, Y: y0, Z: z0}, Point3{X: x1, Y: y1, Z: z1})
}

func TestDimensionality(t *testing.T) {
	b2 := box2(1, 1, 2, 2)
	b3 := box3(1, 1, 1, 2, 2, 2)

	assert.Equal(t, Dim2, b2.Dim())
	assert.True(t, b2.Is2D())
	assert.False(t, b2.Is3D())

	assert.Equal(t, Dim3, b3.Dim())
	assert.True(t, b3.Is3D())
	assert.False(t, b3.Is2D())

	t.Run("static classifiers", func(t *testing.T) {
		assert.True(t, Is2D(b2))
		assert.False(t, Is3D(b2))
		assert.True(t, Is3D(b3))
		assert.False(t, Is2D(b3))
		assert.False(t, Is2D("box"))
		assert.False(t, Is3D(nil))
	})

	assert.Equal(t, "2D", Dim2.String())
	assert.Equal(t, "3D", Dim3.String())
}

func TestConstructorCopiesPoints(t *testing.T) {
	min := Point2{X: 0, Y: 0}
	max := Point2{X: 2, Y: 2}
	b := New(min, max)

	b.Translate(Point2{X: 1, Y: 1})

	assert.Equal(t, Point2{X: 0, Y: 0}, min)
	assert.Equal(t, Point2{X: 2, Y: 2}, max)
	assert.Equal(t, Point2{X: 1, Y: 1}, b.Min)
}

func TestClone(t *testing.T) {
	t.Run("2D", func(t *testing.T) {
		b := box2(0, 0, 2, 3)
		c := b.Clone()
		require.Equal(t, b.Min, c.Min)
		require.Equal(t, b.Max, c.Max)

		c.Translate(Point2{X: 10, Y: 10})
		require.NoError(t, c.ResizeFromEdge(EdgeTop, 50))

		assert.Equal(t, Point2{X: 0, Y: 0}, b.Min)
		assert.Equal(t, Point2{X: 2, Y: 3}, b.Max)
	})

	t.Run("3D", func(t *testing.T) {
		b := box3(0, 0, 0, 2, 3, 4)
		c := b.Clone()
		c.Scale(Point3{X: 2, Y: 2, Z: 2})
		assert.Equal(t, Point3{X: 2, Y: 3, Z: 4}, b.Max)
		assert.NotEqual(t, b.Max, c.Max)
	})

	t.Run("string is stable", func(t *testing.T) {
		c := New2D(Point2{X: 0, Y: 0}, Point2{X: 2, Y: 2}).Clone()
		first := c.String()
		assert.Equal(t, first, c.String())
		assert.Equal(t, first, c.String())
	})
}

func TestExtents(t *testing.T) {
	tests := []struct {
		name                 string
		box                  Box
		width, height, depth float64
	}{
		{"2D unit", box2(0, 0, 1, 1), 1, 1, 0},
		{"2D rectangle", box2(-1, 2, 3, 7), 4, 5, 0},
		{"2D inverted x", box2(5, 0, 2, 1), -3, 1, 0},
		{"3D", box3(0, 0, 0, 2, 3, 4), 2, 3, 4},
		{"3D inverted z", box3(0, 0, 4, 1, 1, 1), 1, 1, -3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.width, tt.box.Width())
			assert.Equal(t, tt.height, tt.box.Height())
			assert.Equal(t, tt.depth, tt.box.Depth())
		})
	}
}

func TestAreaVolume(t *testing.T) {
	b2 := box2(0, 0, 2, 3)
	assert.Equal(t, 6.0, b2.Area())
	assert.Equal(t, 0.0, b2.Volume())

	b3 := box3(0, 0, 0, 2, 3, 4)
	assert.Equal(t, 52.0, b3.Area())
	assert.Equal(t, 24.0, b3.Volume())

	t.Run("inverted box keeps sign", func(t *testing.T) {
		b := box2(2, 0, 0, 3)
		assert.Equal(t, -6.0, b.Area())
	})

	t.Run("reflects mutation", func(t *testing.T) {
		b := box3(0, 0, 0, 1, 1, 1)
		assert.Equal(t, 1.0, b.Volume())
		b.ScaleAxis(AxisZ, 3)
		assert.Equal(t, 3.0, b.Volume())
	})
}

func TestCenter(t *testing.T) {
	assert.Equal(t, Point2{X: 1, Y: 1.5}, box2(0, 0, 2, 3).Center())
	assert.Equal(t, Point3{X: 1, Y: 1.5, Z: 2}, box3(0, 0, 0, 2, 3, 4).Center())
	assert.Equal(t, Point2{X: 0, Y: 0}, box2(-1, -1, 1, 1).Center())
}

func TestTranslate(t *testing.T) {
	b := box2(0, 0, 2, 2)
	got := b.Translate(Point2{X: 5, Y: -3})

	assert.Same(t, b, got)
	assert.Equal(t, Point2{X: 5, Y: -3}, b.Min)
	assert.Equal(t, Point2{X: 7, Y: -1}, b.Max)

	t.Run("chained", func(t *testing.T) {
		b := box3(0, 0, 0, 1, 1, 1)
		b.Translate(Point3{X: 1}).Translate(Point3{Z: 2})
		assert.Equal(t, Point3{X: 1, Y: 0, Z: 2}, b.Min)
		assert.Equal(t, Point3{X: 2, Y: 1, Z: 3}, b.Max)
	})
}

func TestMoveTo(t *testing.T) {
	b := box3(1, 1, 1, 3, 4, 5)
	b.MoveTo(Point3{X: -2, Y: 0, Z: 10})

	assert.Equal(t, Point3{X: -2, Y: 0, Z: 10}, b.Min)
	assert.Equal(t, Point3{X: 0, Y: 3, Z: 14}, b.Max)
	assert.Equal(t, 2.0, b.Width())
	assert.Equal(t, 3.0, b.Height())
	assert.Equal(t, 4.0, b.Depth())
}

func TestScale(t *testing.T) {
	t.Run("single axis about center", func(t *testing.T) {
		b := box2(0, 0, 2, 2)
		b.ScaleAxis(AxisX, 2)
		assert.Equal(t, Point2{X: -1, Y: 0}, b.Min)
		assert.Equal(t, Point2{X: 3, Y: 2}, b.Max)
	})

	t.Run("per axis factors", func(t *testing.T) {
		b := box2(0, 0, 2, 2)
		b.Scale(Point2{X: 2, Y: 1})
		assert.Equal(t, Point2{X: -1, Y: 0}, b.Min)
		assert.Equal(t, Point2{X: 3, Y: 2}, b.Max)
	})

	t.Run("3D halves", func(t *testing.T) {
		b := box3(0, 0, 0, 4, 4, 4)
		b.Scale(Point3{X: 0.5, Y: 0.5, Z: 0.5})
		assert.Equal(t, Point3{X: 1, Y: 1, Z: 1}, b.Min)
		assert.Equal(t, Point3{X: 3, Y: 3, Z: 3}, b.Max)
	})

	t.Run("negative factor inverts", func(t *testing.T) {
		b := box2(0, 0, 2, 2)
		b.ScaleAxis(AxisY, -1)
		assert.Equal(t, -2.0, b.Height())
	})

	t.Run("z ignored on 2D", func(t *testing.T) {
		b := box2(0, 0, 2, 2)
		b.ScaleAxis(AxisZ, 10)
		assert.Equal(t, Point2{X: 0, Y: 0}, b.Min)
		assert.Equal(t, Point2{X: 2, Y: 2}, b.Max)
	})
}

func TestResizeFromEndpoint2D(t *testing.T) {
	tests := []struct {
		endpoint Endpoint
		min, max Point2
	}{
		{EndpointTopLeft, Point2{X: 10, Y: 0}, Point2{X: 4, Y: -5}},
		{EndpointTopRight, Point2{X: 0, Y: 0}, Point2{X: 10, Y: -5}},
		{EndpointBottomLeft, Point2{X: 10, Y: -5}, Point2{X: 4, Y: 4}},
		{EndpointBottomRight, Point2{X: 0, Y: -5}, Point2{X: 10, Y: 4}},
	}
	for _, tt := range tests {
		t.Run(string(tt.endpoint), func(t *testing.T) {
			b := box2(0, 0, 4, 4)
			require.NoError(t, b.ResizeFromEndpoint(tt.endpoint, Point2{X: 10, Y: -5}))
			assert.Equal(t, tt.min, b.Min)
			assert.Equal(t, tt.max, b.Max)
		})
	}

	t.Run("3D name rejected", func(t *testing.T) {
		b := box2(0, 0, 4, 4)
		err := b.ResizeFromEndpoint(EndpointTopLeftFront, Point2{X: 1, Y: 1})
		require.ErrorIs(t, err, ErrUnsupportedEndpoint)
		require.ErrorIs(t, err, ErrInvalidArgument)
		assert.Equal(t, Point2{X: 4, Y: 4}, b.Max)
	})

	t.Run("unknown name rejected", func(t *testing.T) {
		b := box2(0, 0, 4, 4)
		require.ErrorIs(t, b.ResizeFromEndpoint("middle", Point2{}), ErrUnsupportedEndpoint)
	})
}

func TestResizeFromEndpoint3D(t *testing.T) {
	to := Point3{X: 10, Y: 20, Z: 30}
	tests := []struct {
		endpoint Endpoint
		min, max Point3
	}{
		{EndpointTopLeftFront, Point3{X: 10, Y: 0, Z: 30}, Point3{X: 1, Y: 20, Z: 1}},
		{EndpointTopLeftBack, Point3{X: 10, Y: 0, Z: 0}, Point3{X: 1, Y: 20, Z: 30}},
		{EndpointTopRightFront, Point3{X: 0, Y: 0, Z: 30}, Point3{X: 10, Y: 20, Z: 1}},
		{EndpointTopRightBack, Point3{X: 0, Y: 0, Z: 0}, Point3{X: 10, Y: 20, Z: 30}},
		{EndpointBottomLeftFront, Point3{X: 10, Y: 20, Z: 30}, Point3{X: 1, Y: 1, Z: 1}},
		{EndpointBottomLeftBack, Point3{X: 10, Y: 20, Z: 0}, Point3{X: 1, Y: 1, Z: 30}},
		{EndpointBottomRightFront, Point3{X: 0, Y: 20, Z: 30}, Point3{X: 10, Y: 1, Z: 1}},
		{EndpointBottomRightBack, Point3{X: 0, Y: 20, Z: 0}, Point3{X: 10, Y: 1, Z: 30}},
	}
	for _, tt := range tests {
		t.Run(string(tt.endpoint), func(t *testing.T) {
			b := box3(0, 0, 0, 1, 1, 1)
			require.NoError(t, b.ResizeFromEndpoint(tt.endpoint, to))
			assert.Equal(t, tt.min, b.Min)
			assert.Equal(t, tt.max, b.Max)
		})
	}

	t.Run("2D name rejected", func(t *testing.T) {
		b := box3(0, 0, 0, 1, 1, 1)
		require.ErrorIs(t, b.ResizeFromEndpoint(EndpointBottomRight, to), ErrUnsupportedEndpoint)
	})
}

func TestResizeFromEdge(t *testing.T) {
	tests := []struct {
		edge     Edge
		min, max Point3
	}{
		{EdgeTop, Point3{}, Point3{X: 2, Y: 7, Z: 2}},
		{EdgeBottom, Point3{Y: 7}, Point3{X: 2, Y: 2, Z: 2}},
		{EdgeLeft, Point3{X: 7}, Point3{X: 2, Y: 2, Z: 2}},
		{EdgeRight, Point3{}, Point3{X: 7, Y: 2, Z: 2}},
		{EdgeFront, Point3{Z: 7}, Point3{X: 2, Y: 2, Z: 2}},
		{EdgeBack, Point3{}, Point3{X: 2, Y: 2, Z: 7}},
	}
	for _, tt := range tests {
		t.Run(string(tt.edge), func(t *testing.T) {
			b := box3(0, 0, 0, 2, 2, 2)
			require.NoError(t, b.ResizeFromEdge(tt.edge, 7))
			assert.Equal(t, tt.min, b.Min)
			assert.Equal(t, tt.max, b.Max)
		})
	}

	t.Run("2D faces", func(t *testing.T) {
		b := box2(0, 0, 2, 2)
		require.NoError(t, b.ResizeFromEdge(EdgeRight, 5))
		require.NoError(t, b.ResizeFromEdge(EdgeBottom, -1))
		assert.Equal(t, Point2{X: 0, Y: -1}, b.Min)
		assert.Equal(t, Point2{X: 5, Y: 2}, b.Max)
	})

	t.Run("front and back rejected on 2D", func(t *testing.T) {
		b := box2(0, 0, 2, 2)
		for _, e := range []Edge{EdgeFront, EdgeBack, "diagonal"} {
			err := b.ResizeFromEdge(e, 1)
			require.ErrorIs(t, err, ErrUnsupportedEdge)
			require.ErrorIs(t, err, ErrInvalidArgument)
		}
	})
}

func TestCollide(t *testing.T) {
	tests := []struct {
		name string
		a, b *AABB2
		want bool
	}{
		{"touching corners", box2(0, 0, 2, 2), box2(2, 2, 4, 4), true},
		{"separated", box2(0, 0, 1, 1), box2(2, 2, 3, 3), false},
		{"identical", box2(0, 0, 1, 1), box2(0, 0, 1, 1), true},
		{"nested", box2(0, 0, 10, 10), box2(3, 3, 4, 4), true},
		{"separated on y only", box2(0, 0, 5, 1), box2(0, 2, 5, 3), false},
		{"touching edge", box2(0, 0, 5, 5), box2(5, 0, 10, 5), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Collide(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			back, err := tt.b.Collide(tt.a)
			require.NoError(t, err)
			assert.Equal(t, got, back, "collide must be symmetric")
		})
	}

	t.Run("3D separated on z", func(t *testing.T) {
		got, err := Collide(box3(0, 0, 0, 1, 1, 1), box3(0, 0, 2, 1, 1, 3))
		require.NoError(t, err)
		assert.False(t, got)
	})

	t.Run("3D touching on z", func(t *testing.T) {
		got, err := Collide(box3(0, 0, 0, 1, 1, 1), box3(0, 0, 1, 1, 1, 2))
		require.NoError(t, err)
		assert.True(t, got)
	})

	t.Run("nil operand", func(t *testing.T) {
		_, err := Collide(box2(0, 0, 1, 1), nil)
		require.ErrorIs(t, err, ErrInvalidArgument)
		_, err = Collide[Point2](nil, box2(0, 0, 1, 1))
		require.ErrorIs(t, err, ErrInvalidArgument)
	})
}

// Containment is strict: sharing any boundary means not contained.
func TestContainsBox(t *testing.T) {
	outer := box2(0, 0, 10, 10)

	tests := []struct {
		name  string
		inner *AABB2
		want  bool
	}{
		{"strictly inside", box2(1, 1, 9, 9), true},
		{"itself", box2(0, 0, 10, 10), false},
		{"shares min x", box2(0, 1, 9, 9), false},
		{"shares max y", box2(1, 1, 9, 10), false},
		{"overlapping", box2(5, 5, 15, 15), false},
		{"disjoint", box2(20, 20, 30, 30), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := outer.ContainsBox(tt.inner)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("3D shares back face", func(t *testing.T) {
		got, err := box3(0, 0, 0, 4, 4, 4).ContainsBox(box3(1, 1, 1, 3, 3, 4))
		require.NoError(t, err)
		assert.False(t, got)
	})

	t.Run("nil", func(t *testing.T) {
		_, err := outer.ContainsBox(nil)
		require.ErrorIs(t, err, ErrInvalidArgument)
	})
}

// The point test reproduces a rule that is not geometric containment. These
// cases pin it down so any change is deliberate.
func TestContainsPoint(t *testing.T) {
	t.Run("2D", func(t *testing.T) {
		b := box2(0, 0, 2, 2)
		tests := []struct {
			name string
			p    Point2
			want bool
		}{
			{"inside", Point2{X: 1, Y: 1}, true},
			{"far outside", Point2{X: 100, Y: -100}, true},
			{"on min corner", Point2{X: 0, Y: 0}, true},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				assert.Equal(t, tt.want, b.ContainsPoint(tt.p))
			})
		}
	})

	t.Run("2D collapsed onto point", func(t *testing.T) {
		b := box2(1, 1, 1, 1)
		assert.False(t, b.ContainsPoint(Point2{X: 1, Y: 1}))
		assert.True(t, b.ContainsPoint(Point2{X: 1, Y: 2}))
	})

	t.Run("2D inverted box around point", func(t *testing.T) {
		b := box2(3, 3, 0, 0)
		assert.False(t, b.ContainsPoint(Point2{X: 1, Y: 1}))
	})

	t.Run("3D z inside bounds excludes", func(t *testing.T) {
		b := box3(0, 0, 0, 2, 2, 2)
		assert.False(t, b.ContainsPoint(Point3{X: 1, Y: 1, Z: 1}))
		assert.False(t, b.ContainsPoint(Point3{X: 1, Y: 1, Z: 2}))
		assert.True(t, b.ContainsPoint(Point3{X: 1, Y: 1, Z: 3}))
		assert.True(t, b.ContainsPoint(Point3{X: 1, Y: 1, Z: -1}))
	})
}

func TestString(t *testing.T) {
	assert.Equal(t, `AABB({"x":0,"y":0}, {"x":2,"y":2})`, box2(0, 0, 2, 2).String())
	assert.Equal(t, `AABB({"x":0,"y":0,"z":0}, {"x":1.5,"y":2,"z":-3})`, box3(0, 0, 0, 1.5, 2, -3).String())
}
