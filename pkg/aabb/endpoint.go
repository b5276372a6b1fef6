package aabb

// Edge names one face of a box: a side in 2D, a face in 3D.
type Edge string

const (
	EdgeTop    Edge = "top"
	EdgeBottom Edge = "bottom"
	EdgeLeft   Edge = "left"
	EdgeRight  Edge = "right"
	EdgeFront  Edge = "front" // 3D only
	EdgeBack   Edge = "back"  // 3D only
)

// corner says which stored coordinate an edge controls.
type corner struct {
	max  bool
	axis Axis
}

// left/right drive x, top/bottom drive y, front/back drive z.
var edgeCorners = map[Edge]corner{
	EdgeLeft:   {max: false, axis: AxisX},
	EdgeRight:  {max: true, axis: AxisX},
	EdgeBottom: {max: false, axis: AxisY},
	EdgeTop:    {max: true, axis: AxisY},
	EdgeFront:  {max: false, axis: AxisZ},
	EdgeBack:   {max: true, axis: AxisZ},
}

// Valid reports whether e is a face of a box with dimensionality d.
func (e Edge) Valid(d Dim) bool {
	c, ok := edgeCorners[e]
	if !ok {
		return false
	}
	return c.axis != AxisZ || d == Dim3
}

// Endpoint names a corner of a box.
type Endpoint string

const (
	EndpointTopLeft     Endpoint = "top-left"
	EndpointTopRight    Endpoint = "top-right"
	EndpointBottomLeft  Endpoint = "bottom-left"
	EndpointBottomRight Endpoint = "bottom-right"

	EndpointTopLeftFront     Endpoint = "top-left-front"
	EndpointTopLeftBack      Endpoint = "top-left-back"
	EndpointTopRightFront    Endpoint = "top-right-front"
	EndpointTopRightBack     Endpoint = "top-right-back"
	EndpointBottomLeftFront  Endpoint = "bottom-left-front"
	EndpointBottomLeftBack   Endpoint = "bottom-left-back"
	EndpointBottomRightFront Endpoint = "bottom-right-front"
	EndpointBottomRightBack  Endpoint = "bottom-right-back"
)

var endpointEdges = map[Endpoint][]Edge{
	EndpointTopLeft:     {EdgeTop, EdgeLeft},
	EndpointTopRight:    {EdgeTop, EdgeRight},
	EndpointBottomLeft:  {EdgeBottom, EdgeLeft},
	EndpointBottomRight: {EdgeBottom, EdgeRight},

	EndpointTopLeftFront:     {EdgeTop, EdgeLeft, EdgeFront},
	EndpointTopLeftBack:      {EdgeTop, EdgeLeft, EdgeBack},
	EndpointTopRightFront:    {EdgeTop, EdgeRight, EdgeFront},
	EndpointTopRightBack:     {EdgeTop, EdgeRight, EdgeBack},
	EndpointBottomLeftFront:  {EdgeBottom, EdgeLeft, EdgeFront},
	EndpointBottomLeftBack:   {EdgeBottom, EdgeLeft, EdgeBack},
	EndpointBottomRightFront: {EdgeBottom, EdgeRight, EdgeFront},
	EndpointBottomRightBack:  {EdgeBottom, EdgeRight, EdgeBack},
}

// Valid reports whether e is a corner of a box with dimensionality d.
// 2D boxes have the four two-part names, 3D boxes the eight three-part ones.
func (e Endpoint) Valid(d Dim) bool {
	edges, ok := endpointEdges[e]
	return ok && len(edges) == len(d.Axes())
}

// Edges returns the faces meeting at e.
func (e Endpoint) Edges() []Edge {
	return append([]Edge(nil), endpointEdges[e]...)
}
