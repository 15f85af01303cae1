package object

import (
	"github.com/tomz197/rockfield/internal/config"
	"github.com/tomz197/rockfield/internal/physics"
)

// Bullet travels in a straight line until it hits something or its
// lifetime runs out.
type Bullet struct {
	Position physics.Point
	Angle    float64
	Speed    float64
	Size     float64
	Lifetime float64 // Seconds of travel before expiry
	Age      float64 // Seconds travelled so far

	source    Entity
	origin    physics.Point
	destroyed bool
}

// NewBullet creates a bullet fired by source from origin along angle.
// Its lifetime covers cfg.Range at cfg.Speed.
func NewBullet(source Entity, origin physics.Point, angle float64, cfg config.Bullet) *Bullet {
	return &Bullet{
		Position: origin,
		Angle:    angle,
		Speed:    cfg.Speed,
		Size:     cfg.Size,
		Lifetime: cfg.Lifetime().Seconds(),
		source:   source,
		origin:   origin,
	}
}

// NewBulletFromEvent creates the bullet described by a fire event.
func NewBulletFromEvent(ev FireEvent, cfg config.Bullet) *Bullet {
	return NewBullet(ev.Source, ev.Origin, ev.Angle, cfg)
}

// Update ages the bullet and moves it along its heading.
func (b *Bullet) Update(ctx UpdateContext) {
	if b.destroyed {
		return
	}
	dt := ctx.Seconds()
	b.Age += dt

	dx, dy := physics.Direction(b.Angle)
	dist := b.Speed * dt
	b.Position.Move(dx*dist, dy*dist)
	ctx.Field.Wrap(&b.Position)
}

// IsExpired reports whether the bullet has outlived its travel budget.
func (b *Bullet) IsExpired() bool {
	return b.Age > b.Lifetime
}

// Source returns the entity that fired the bullet.
func (b *Bullet) Source() Entity {
	return b.source
}

// Origin returns where the bullet was fired from.
func (b *Bullet) Origin() physics.Point {
	return b.origin
}

// Center returns the bullet's position.
func (b *Bullet) Center() physics.Point {
	return b.Position
}

// Bounds returns the bullet's hit box.
func (b *Bullet) Bounds() physics.Rect {
	return physics.RectCentered(b.Position, b.Size, b.Size)
}

// IsAlive reports whether the bullet is still in flight.
func (b *Bullet) IsAlive() bool {
	return !b.destroyed && !b.IsExpired()
}

// MarkDestroyed marks the bullet for removal.
func (b *Bullet) MarkDestroyed() {
	b.destroyed = true
}

// IsDestroyed returns true if the bullet is marked for destruction.
func (b *Bullet) IsDestroyed() bool {
	return b.destroyed
}
