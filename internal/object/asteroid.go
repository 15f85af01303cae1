package object

import (
	"math"

	"github.com/tomz197/rockfield/internal/config"
	"github.com/tomz197/rockfield/internal/physics"
)

// AsteroidSide is the side length of the asteroid hit square.
const AsteroidSide = 20.0

// Asteroid is a destructible space rock drifting at constant velocity.
type Asteroid struct {
	Position  physics.Point    // Center
	Vertices  [4]physics.Point // Square corners, clockwise from top-left
	Angle     float64          // Heading, fixed at creation
	Speed     float64          // Units per second, fixed at creation
	Destroyed bool
}

// NewAsteroid creates an asteroid at center with a random heading and a
// speed between cfg.MinSpeed and cfg.MinSpeed*(1+cfg.SpeedVariance).
func NewAsteroid(rng physics.Rand, center physics.Point, cfg config.Asteroid) *Asteroid {
	a := &Asteroid{
		Position: center,
		Angle:    rng.Float64() * 2 * math.Pi,
		Speed:    cfg.MinSpeed * (1 + rng.Float64()*cfg.SpeedVariance),
	}

	const half = AsteroidSide / 2
	a.Vertices = [4]physics.Point{
		{X: center.X - half, Y: center.Y - half},
		{X: center.X + half, Y: center.Y - half},
		{X: center.X + half, Y: center.Y + half},
		{X: center.X - half, Y: center.Y + half},
	}
	return a
}

// Update moves the asteroid and its vertices, then wraps them together.
func (a *Asteroid) Update(ctx UpdateContext) {
	if a.Destroyed {
		return
	}
	dist := a.Speed * ctx.Seconds()
	dx, dy := physics.Direction(a.Angle)
	dx, dy = dx*dist, dy*dist

	a.Position.Move(dx, dy)
	for i := range a.Vertices {
		a.Vertices[i].Move(dx, dy)
	}

	ctx.Field.Wrap(&a.Position, &a.Vertices[0], &a.Vertices[1], &a.Vertices[2], &a.Vertices[3])
}

// Polygon returns a copy of the hit polygon.
func (a *Asteroid) Polygon() []physics.Point {
	poly := a.Vertices
	return poly[:]
}

// Center returns the asteroid's center.
func (a *Asteroid) Center() physics.Point {
	return a.Position
}

// Bounds returns the box around the vertices.
func (a *Asteroid) Bounds() physics.Rect {
	return physics.RectAround(a.Vertices[:]...)
}

// IsAlive reports whether the asteroid is still in play.
func (a *Asteroid) IsAlive() bool {
	return !a.Destroyed
}

// MarkDestroyed marks the asteroid for removal (implements Destructible).
func (a *Asteroid) MarkDestroyed() {
	a.Destroyed = true
}

// IsDestroyed returns true if the asteroid is marked for destruction (implements Destructible).
func (a *Asteroid) IsDestroyed() bool {
	return a.Destroyed
}

// SpawnAsteroids creates count asteroids at random positions in the field,
// none of them within safeRadius of avoid.
func SpawnAsteroids(rng physics.Rand, field Field, count int, avoid physics.Point, safeRadius float64, cfg config.Asteroid) []*Asteroid {
	if count < 0 {
		count = 0
	}
	asteroids := make([]*Asteroid, 0, count)
	for range count {
		center := physics.RandomPointAvoiding(rng, field.Width, field.Height, avoid, safeRadius)
		asteroids = append(asteroids, NewAsteroid(rng, center, cfg))
	}
	return asteroids
}
