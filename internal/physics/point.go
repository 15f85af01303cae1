package physics

import "math"

// Point is a mutable 2D position in field coordinates.
type Point struct {
	X, Y float64
}

// Move translates the point by (dx, dy).
func (p *Point) Move(dx, dy float64) {
	p.X += dx
	p.Y += dy
}

// DistanceTo returns the Euclidean distance to q.
func (p Point) DistanceTo(q Point) float64 {
	return Distance(p.X, p.Y, q.X, q.Y)
}

// WrapAround teleports the point to the opposite edge once it leaves the
// [0,width) x [0,height) field. Every extra point is shifted by the same
// delta so shapes anchored on p wrap as a unit. Returns true if p moved.
func (p *Point) WrapAround(width, height float64, extra ...*Point) bool {
	nx, ny := p.X, p.Y
	if width > 0 && (p.X < 0 || p.X >= width) {
		nx = wrapCoord(p.X, width)
	}
	if height > 0 && (p.Y < 0 || p.Y >= height) {
		ny = wrapCoord(p.Y, height)
	}
	dx, dy := nx-p.X, ny-p.Y
	if dx == 0 && dy == 0 {
		return false
	}

	p.X, p.Y = nx, ny
	for _, e := range extra {
		e.Move(dx, dy)
	}
	return true
}

// wrapCoord maps v into [0, size).
func wrapCoord(v, size float64) float64 {
	m := math.Mod(v, size)
	if m < 0 {
		m += size
	}
	if m >= size {
		m = 0
	}
	return m
}

// Rand is the subset of *rand.Rand the spawn helpers need.
type Rand interface {
	Float64() float64
}

// maxSpawnAttempts bounds rejection sampling before the corner fallback.
const maxSpawnAttempts = 64

// RandomPointAvoiding returns a uniformly distributed point in the field
// that is never within radius of avoid. Callers must keep radius below
// half the shorter field side so the exclusion zone cannot cover the field.
func RandomPointAvoiding(rng Rand, width, height float64, avoid Point, radius float64) Point {
	for range maxSpawnAttempts {
		p := Point{X: rng.Float64() * width, Y: rng.Float64() * height}
		if !PointInCircle(p.X, p.Y, avoid.X, avoid.Y, radius) {
			return p
		}
	}
	return farthestCorner(width, height, avoid)
}

// farthestCorner returns the field corner furthest from p. Right and bottom
// corners are pulled just inside the field since the field is half-open.
func farthestCorner(width, height float64, p Point) Point {
	corners := [4]Point{
		{X: 0, Y: 0},
		{X: math.Nextafter(width, 0), Y: 0},
		{X: 0, Y: math.Nextafter(height, 0)},
		{X: math.Nextafter(width, 0), Y: math.Nextafter(height, 0)},
	}
	best := corners[0]
	bestDist := best.DistanceTo(p)
	for _, c := range corners[1:] {
		if d := c.DistanceTo(p); d > bestDist {
			best, bestDist = c, d
		}
	}
	return best
}
