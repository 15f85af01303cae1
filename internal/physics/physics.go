// Package physics provides the 2D point type, field wraparound and the
// collision tests used by the simulation.
package physics

import "math"

// Distance calculates the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}

// DistanceSquared calculates the squared distance between two points.
// Use this when comparing distances to avoid the sqrt cost.
func DistanceSquared(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// PointInCircle checks if a point is within radius of a target position.
func PointInCircle(px, py, cx, cy, radius float64) bool {
	return DistanceSquared(px, py, cx, cy) <= radius*radius
}

// Direction returns the unit step for a heading in screen space.
//
// Screen space has +y pointing down. Angles are measured counter-clockwise
// as seen on screen, starting from +x, so the y component is negated.
func Direction(angle float64) (dx, dy float64) {
	return math.Cos(angle), -math.Sin(angle)
}
