package object

import (
	"math"

	"github.com/tomz197/rockfield/internal/config"
	"github.com/tomz197/rockfield/internal/event"
	"github.com/tomz197/rockfield/internal/physics"
)

// Ship is the player-controlled spaceship.
type Ship struct {
	Position physics.Point
	VX, VY   float64 // Velocity (momentum)
	Angle    float64 // Heading in radians (0 = right, increases counter-clockwise)

	ThrustPower   float64 // Acceleration when thrusting
	RotationSpeed float64 // Radians per second
	MaxSpeed      float64 // Maximum velocity magnitude
	Drag          float64 // Velocity decay per second (1.0 = no drag, 0.5 = 50% speed loss/sec)
	Size          float64 // Nose distance from the center

	// Shooting
	FireRate     float64 // Minimum seconds between shots
	fireCooldown float64 // Time until next shot allowed

	controls  Controls
	thrusting bool
	alive     bool
	fired     event.Dispatcher[FireEvent]
}

// NewShip creates a live ship at center, pointing up.
func NewShip(center physics.Point, cfg config.Ship) *Ship {
	return &Ship{
		Position:      center,
		Angle:         math.Pi / 2,
		ThrustPower:   cfg.ThrustPower,
		RotationSpeed: cfg.RotationSpeed,
		MaxSpeed:      cfg.MaxSpeed,
		Drag:          cfg.Drag,
		Size:          cfg.Size,
		FireRate:      cfg.FireCooldown.Seconds(),
		alive:         true,
	}
}

// OnFire registers a listener for fire events.
func (s *Ship) OnFire(l event.Listener[FireEvent]) {
	s.fired.Subscribe(l)
}

// SetControls sets the input applied on the next update.
func (s *Ship) SetControls(c Controls) {
	s.controls = c
}

// Update handles rotation, thrust, momentum physics, and shooting.
// A dead ship does not move or fire.
func (s *Ship) Update(ctx UpdateContext) {
	if !s.alive {
		return
	}
	dt := ctx.Seconds()

	if s.controls.Left {
		s.Angle += s.RotationSpeed * dt
	}
	if s.controls.Right {
		s.Angle -= s.RotationSpeed * dt
	}
	s.Angle = normalizeAngle(s.Angle)

	s.thrusting = s.controls.Thrust
	if s.thrusting {
		dx, dy := physics.Direction(s.Angle)
		s.VX += dx * s.ThrustPower * dt
		s.VY += dy * s.ThrustPower * dt
	} else {
		dragFactor := math.Pow(s.Drag, dt)
		s.VX *= dragFactor
		s.VY *= dragFactor
	}

	speed := math.Hypot(s.VX, s.VY)
	if speed > s.MaxSpeed && speed > 0 {
		scale := s.MaxSpeed / speed
		s.VX *= scale
		s.VY *= scale
	}

	s.Position.Move(s.VX*dt, s.VY*dt)
	ctx.Field.Wrap(&s.Position)

	s.fireCooldown = math.Max(s.fireCooldown-dt, 0)
	if s.controls.Fire && s.fireCooldown <= 0 {
		s.fireCooldown = s.FireRate
		s.fired.Emit(FireEvent{Source: s, Origin: s.Nose(), Angle: s.Angle})
	}
}

// normalizeAngle maps a to [-π, π].
func normalizeAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a < -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// Nose returns the tip of the ship, where bullets spawn.
func (s *Ship) Nose() physics.Point {
	dx, dy := physics.Direction(s.Angle)
	return physics.Point{X: s.Position.X + dx*s.Size, Y: s.Position.Y + dy*s.Size}
}

// Hull returns the ship triangle: nose, left wing, right wing.
func (s *Ship) Hull() [3]physics.Point {
	const wingAngle = 2.5 // ~143 degrees from the nose
	const wingScale = 0.7

	lx, ly := physics.Direction(s.Angle + wingAngle)
	rx, ry := physics.Direction(s.Angle - wingAngle)
	wing := s.Size * wingScale
	return [3]physics.Point{
		s.Nose(),
		{X: s.Position.X + lx*wing, Y: s.Position.Y + ly*wing},
		{X: s.Position.X + rx*wing, Y: s.Position.Y + ry*wing},
	}
}

// Center returns the ship's position.
func (s *Ship) Center() physics.Point {
	return s.Position
}

// Bounds returns the box around the hull.
func (s *Ship) Bounds() physics.Rect {
	hull := s.Hull()
	return physics.RectAround(hull[:]...)
}

// IsAlive reports whether the ship is still flying.
func (s *Ship) IsAlive() bool {
	return s.alive
}

// Die destroys the ship. There is no respawn.
func (s *Ship) Die() {
	s.alive = false
	s.thrusting = false
}

// Thrusting reports whether thrust was applied on the last update.
func (s *Ship) Thrusting() bool {
	return s.thrusting
}
