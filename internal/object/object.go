// Package object defines the moving entities of the simulation: the
// player's ship, its bullets and the asteroids.
package object

import (
	"time"

	"github.com/tomz197/rockfield/internal/physics"
)

// UpdateContext provides all the information an entity needs during update.
type UpdateContext struct {
	Delta time.Duration
	Field Field
}

// Seconds returns Delta in seconds. A negative delta is treated as zero so
// entities never move backwards in time.
func (ctx UpdateContext) Seconds() float64 {
	if ctx.Delta <= 0 {
		return 0
	}
	return ctx.Delta.Seconds()
}

// Field is the toroidal play area in logical units.
type Field struct {
	Width  float64
	Height float64
}

// Center returns the middle of the field.
func (f Field) Center() physics.Point {
	return physics.Point{X: f.Width / 2, Y: f.Height / 2}
}

// Wrap wraps p (and any points anchored to it) around the field edges.
func (f Field) Wrap(p *physics.Point, extra ...*physics.Point) {
	p.WrapAround(f.Width, f.Height, extra...)
}

// Entity is a moving object that takes part in collision checks.
type Entity interface {
	// Center returns the entity's reference position.
	Center() physics.Point
	// Bounds returns the axis-aligned box used for coarse collision tests.
	Bounds() physics.Rect
	// Update advances the entity by ctx.Delta.
	Update(ctx UpdateContext)
	// IsAlive reports whether the entity still participates in the game.
	IsAlive() bool
}

// Destructible is implemented by objects that can be destroyed/marked for removal.
type Destructible interface {
	// MarkDestroyed marks the object for removal at the end of the pass.
	MarkDestroyed()
	// IsDestroyed returns true if the object is marked for destruction.
	IsDestroyed() bool
}

// Controls is the player input the ship reads on each update.
type Controls struct {
	Left   bool // Rotate counter-clockwise
	Right  bool // Rotate clockwise
	Thrust bool
	Fire   bool
}

// FireEvent is emitted by a ship each time it fires.
type FireEvent struct {
	Source Entity
	Origin physics.Point
	Angle  float64
}
