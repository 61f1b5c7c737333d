package geometry

import "errors"

var ErrDegeneratePolygon = errors.New("polygon requires at least 3 points")

// Polygon is an ordered ring of vertices, implicitly closed: the last vertex
// connects back to the first.
type Polygon []Point

// NewPolygon copies the vertex ring and validates it. Geometry built from
// untrusted input goes through here; internally computed shapes with a fixed
// vertex count may be constructed directly.
func NewPolygon(points ...Point) (Polygon, error) {
	if len(points) < 3 {
		return nil, ErrDegeneratePolygon
	}
	return append(Polygon(nil), points...), nil
}

// Edge returns the i-th edge of the ring, connecting vertex i to vertex
// (i+1) mod len.
func (p Polygon) Edge(i int) Segment {
	return Segment{A: p[i], B: p[(i+1)%len(p)]}
}

// IntersectsSegment reports whether any edge of the polygon crosses s.
func (p Polygon) IntersectsSegment(s Segment) bool {
	for i := range p {
		if _, ok := IntersectSegments(p.Edge(i), s); ok {
			return true
		}
	}
	return false
}

// IntersectsAny reports whether any edge of the polygon crosses any of segs.
func (p Polygon) IntersectsAny(segs []Segment) bool {
	for _, s := range segs {
		if p.IntersectsSegment(s) {
			return true
		}
	}
	return false
}

// PolygonsIntersect reports whether any edge of p1 crosses any edge of p2.
// It short-circuits on the first hit; one polygon fully containing the other
// without an edge crossing is not detected.
func PolygonsIntersect(p1, p2 Polygon) bool {
	for i := range p1 {
		e := p1.Edge(i)
		for j := range p2 {
			if _, ok := IntersectSegments(e, p2.Edge(j)); ok {
				return true
			}
		}
	}
	return false
}
