package geometry

// Point is an immutable position on the simulation plane.
type Point struct {
	X float64
	Y float64
}

// Segment is a directed line segment from A to B.
type Segment struct {
	A Point
	B Point
}

// Intersection describes where two segments cross. Offset is the parametric
// position of the crossing along the first segment: 0 at its A endpoint,
// 1 at its B endpoint.
type Intersection struct {
	X      float64
	Y      float64
	Offset float64
}

// Point returns the crossing as a Point value.
func (i Intersection) Point() Point {
	return Point{X: i.X, Y: i.Y}
}

// Lerp linearly interpolates between a and b. The factor t is not clamped,
// values outside [0,1] extrapolate.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Intersect solves segments AB and CD for a crossing point. The boolean is
// false when the segments are parallel, degenerate, or cross only outside
// one of the two segments. Collinear overlap reports no crossing.
func Intersect(a, b, c, d Point) (Intersection, bool) {
	tTop := (d.X-c.X)*(a.Y-c.Y) - (d.Y-c.Y)*(a.X-c.X)
	uTop := (c.Y-a.Y)*(a.X-b.X) - (c.X-a.X)*(a.Y-b.Y)
	bottom := (d.Y-c.Y)*(b.X-a.X) - (d.X-c.X)*(b.Y-a.Y)
	if bottom == 0 {
		return Intersection{}, false
	}

	t := tTop / bottom
	u := uTop / bottom
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return Intersection{}, false
	}

	return Intersection{
		X:      Lerp(a.X, b.X, t),
		Y:      Lerp(a.Y, b.Y, t),
		Offset: t,
	}, true
}

// IntersectSegments is Intersect over Segment values. The offset of the
// result is measured along s1.
func IntersectSegments(s1, s2 Segment) (Intersection, bool) {
	return Intersect(s1.A, s1.B, s2.A, s2.B)
}
