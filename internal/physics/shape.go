package physics

import "math"

// Rect is an axis-aligned bounding box.
type Rect struct {
	X, Y float64 // Top-left corner
	W, H float64 // Width and height
}

// RectAround returns the smallest Rect that contains every point.
func RectAround(points ...Point) Rect {
	if len(points) == 0 {
		return Rect{}
	}
	minX, minY := points[0].X, points[0].Y
	maxX, maxY := minX, minY
	for _, p := range points[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// RectCentered returns a w x h box centered on c.
func RectCentered(c Point, w, h float64) Rect {
	return Rect{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Intersects reports whether the two boxes overlap with positive area.
// Boxes that only touch along an edge do not intersect.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// PolygonsIntersect reports whether two convex polygons overlap with
// positive area, using the separating axis theorem. Touching edges count
// as separated.
func PolygonsIntersect(a, b []Point) bool {
	if len(a) < 3 || len(b) < 3 {
		return false
	}
	return !hasSeparatingAxis(a, b) && !hasSeparatingAxis(b, a)
}

// hasSeparatingAxis tests the edge normals of poly against both shapes.
func hasSeparatingAxis(poly, other []Point) bool {
	n := len(poly)
	for i := range n {
		p1 := poly[i]
		p2 := poly[(i+1)%n]
		// Edge normal
		ax, ay := -(p2.Y - p1.Y), p2.X-p1.X
		if ax == 0 && ay == 0 {
			continue
		}

		minA, maxA := project(poly, ax, ay)
		minB, maxB := project(other, ax, ay)
		if maxA <= minB || maxB <= minA {
			return true
		}
	}
	return false
}

// project returns the extent of poly along the (ax, ay) axis.
func project(poly []Point, ax, ay float64) (lo, hi float64) {
	lo = poly[0].X*ax + poly[0].Y*ay
	hi = lo
	for _, p := range poly[1:] {
		d := p.X*ax + p.Y*ay
		if d < lo {
			lo = d
		}
		if d > hi {
			hi = d
		}
	}
	return lo, hi
}
