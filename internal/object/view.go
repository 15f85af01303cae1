package object

import "github.com/tomz197/rockfield/internal/physics"

// ShipView is a read-only copy of a ship for rendering.
type ShipView struct {
	Center    physics.Point
	Angle     float64
	Hull      [3]physics.Point
	Thrusting bool
	Alive     bool
}

// BulletView is a read-only copy of a bullet for rendering.
type BulletView struct {
	Position physics.Point
	Angle    float64
}

// AsteroidView is a read-only copy of an asteroid for rendering.
type AsteroidView struct {
	Center   physics.Point
	Vertices [4]physics.Point
}

// View returns a snapshot of the ship.
func (s *Ship) View() ShipView {
	return ShipView{
		Center:    s.Position,
		Angle:     s.Angle,
		Hull:      s.Hull(),
		Thrusting: s.thrusting,
		Alive:     s.alive,
	}
}

// View returns a snapshot of the bullet.
func (b *Bullet) View() BulletView {
	return BulletView{Position: b.Position, Angle: b.Angle}
}

// View returns a snapshot of the asteroid.
func (a *Asteroid) View() AsteroidView {
	return AsteroidView{Center: a.Position, Vertices: a.Vertices}
}
