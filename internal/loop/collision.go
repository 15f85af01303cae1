package loop

import (
	"github.com/tomz197/rockfield/internal/audio"
	"github.com/tomz197/rockfield/internal/object"
	"github.com/tomz197/rockfield/internal/physics"
)

// collisionReport summarises one collision pass.
type collisionReport struct {
	AsteroidsDestroyed int
	ShipDestroyed      bool
	LevelCleared       bool
}

// checkCollisions runs one collision pass over the current bullets and
// asteroids. Hits are marked during the pass and removed at the end.
//
// A bullet is tested against the ship before any asteroid, and destroys at
// most one asteroid. The pass stops as soon as the ship dies.
func (s *Session) checkCollisions(sounds Sounder) collisionReport {
	var report collisionReport
	ship := s.Ship

	live := 0
	for _, a := range s.Asteroids {
		if !a.IsDestroyed() {
			live++
		}
	}

	shipBounds := ship.Bounds()
	for _, b := range s.Bullets {
		if !ship.IsAlive() {
			break
		}
		if b.IsDestroyed() {
			continue
		}
		fromShip := b.Source() == object.Entity(ship)
		bounds := b.Bounds()

		// Player cannot shoot self
		if !fromShip && shipBounds.Intersects(bounds) {
			b.MarkDestroyed()
			s.killShip(sounds)
			report.ShipDestroyed = true
			break
		}

		for _, a := range s.Asteroids {
			if a.IsDestroyed() || !a.Bounds().Intersects(bounds) {
				continue
			}
			b.MarkDestroyed()
			a.MarkDestroyed()
			live--
			report.AsteroidsDestroyed++
			sounds.Play(audio.AsteroidBreak)

			if fromShip {
				s.award(s.cfg.Scoring.Asteroid)
			}
			if live == 0 {
				s.clearLevel()
				report.LevelCleared = true
			}
			break
		}
	}

	if ship.IsAlive() && s.asteroidHitsShip() {
		s.killShip(sounds)
		report.ShipDestroyed = true
	}

	s.removeDestroyed()
	return report
}

// asteroidHitsShip tests the ship hull against every live asteroid polygon.
func (s *Session) asteroidHitsShip() bool {
	hull := s.Ship.Hull()
	shipBounds := s.Ship.Bounds()
	for _, a := range s.Asteroids {
		if a.IsDestroyed() || !a.Bounds().Intersects(shipBounds) {
			continue
		}
		if physics.PolygonsIntersect(a.Polygon(), hull[:]) {
			return true
		}
	}
	return false
}

func (s *Session) killShip(sounds Sounder) {
	s.Ship.Die()
	sounds.Play(audio.ShipCrash)
}

// removeDestroyed filters out everything marked during the pass.
func (s *Session) removeDestroyed() {
	s.Bullets = removeMarked(s.Bullets)
	s.Asteroids = removeMarked(s.Asteroids)
}

// removeMarked filters items in place, keeping order.
func removeMarked[T object.Destructible](items []T) []T {
	kept := items[:0]
	for _, it := range items {
		if !it.IsDestroyed() {
			kept = append(kept, it)
		}
	}
	clear(items[len(kept):])
	return kept
}
