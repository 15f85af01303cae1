package loop

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/tomz197/rockfield/internal/config"
	"github.com/tomz197/rockfield/internal/object"
)

// Session holds all mutable game state for one play-through. It is owned
// by a single Loop and is not safe for concurrent use.
type Session struct {
	ID          uuid.UUID
	Level       int
	Points      int64
	PointsFluid int64   // Displayed score, catches up with Points
	Multiplier  float64 // Applied to every award, grows on level clear
	LevelEnded  bool    // Set on level clear until the next level is populated

	Ship      *object.Ship
	Bullets   []*object.Bullet
	Asteroids []*object.Asteroid
	Field     object.Field

	cfg config.Game
	rng *rand.Rand
}

// Result is the final outcome of a session.
type Result struct {
	Points     int64
	Level      int
	Multiplier float64
}

// NewSession creates the ship at the field center and populates level 1.
// A nil rng is seeded from cfg.Seed, or the clock when the seed is zero.
func NewSession(cfg config.Game, rng *rand.Rand) *Session {
	if rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(seed))
	}

	field := object.Field{Width: cfg.Field.Width, Height: cfg.Field.Height}
	s := &Session{
		ID:         uuid.New(),
		Level:      1,
		Multiplier: cfg.Scoring.InitialMultiplier,
		Ship:       object.NewShip(field.Center(), cfg.Ship),
		Field:      field,
		cfg:        cfg,
		rng:        rng,
	}
	s.PopulateField()
	return s
}

// LevelAsteroids returns how many asteroids the current level starts with.
func (s *Session) LevelAsteroids() int {
	return s.Level * s.cfg.Field.AsteroidsPerLevel
}

// PopulateField spawns the current level's asteroids away from the ship.
func (s *Session) PopulateField() {
	spawned := object.SpawnAsteroids(
		s.rng,
		s.Field,
		s.LevelAsteroids(),
		s.Ship.Center(),
		s.cfg.Field.SafeRadius,
		s.cfg.Asteroid,
	)
	s.Asteroids = append(s.Asteroids, spawned...)
}

// AddBullet puts a bullet into play.
func (s *Session) AddBullet(b *object.Bullet) {
	s.Bullets = append(s.Bullets, b)
}

// Result returns the current score, level and multiplier.
func (s *Session) Result() Result {
	return Result{Points: s.Points, Level: s.Level, Multiplier: s.Multiplier}
}

// award adds base points scaled by the current multiplier.
func (s *Session) award(base int64) {
	s.Points += int64(s.Multiplier * float64(base))
}

// clearLevel awards the clear bonus with the old multiplier, then raises
// the multiplier and level and flags the transition.
func (s *Session) clearLevel() {
	s.award(s.cfg.Scoring.LevelClear)
	s.Multiplier += s.cfg.Scoring.MultiplierStep
	s.Level++
	s.LevelEnded = true
}

// advanceDisplayScore moves PointsFluid toward Points without passing it.
func (s *Session) advanceDisplayScore() {
	if s.PointsFluid >= s.Points {
		return
	}
	step := max(int64(s.cfg.Scoring.FluidRate*s.Multiplier), 1)
	s.PointsFluid = min(s.PointsFluid+step, s.Points)
}

// update advances the ship, bullets and asteroids by ctx.Delta.
func (s *Session) update(ctx object.UpdateContext) {
	s.Ship.Update(ctx)

	kept := s.Bullets[:0] // reuse backing array
	for _, b := range s.Bullets {
		if b.IsDestroyed() {
			continue
		}
		b.Update(ctx)
		if b.IsExpired() {
			continue
		}
		kept = append(kept, b)
	}
	clear(s.Bullets[len(kept):])
	s.Bullets = kept

	for _, a := range s.Asteroids {
		a.Update(ctx)
	}

	s.advanceDisplayScore()
}

// Snapshot copies the state the renderer needs.
func (s *Session) Snapshot(paused, transition bool) Snapshot {
	snap := Snapshot{
		Ship:            s.Ship.View(),
		Bullets:         make([]object.BulletView, 0, len(s.Bullets)),
		Asteroids:       make([]object.AsteroidView, 0, len(s.Asteroids)),
		Score:           s.PointsFluid,
		Level:           s.Level,
		Multiplier:      s.Multiplier,
		Paused:          paused,
		LevelTransition: transition,
	}
	for _, b := range s.Bullets {
		snap.Bullets = append(snap.Bullets, b.View())
	}
	for _, a := range s.Asteroids {
		snap.Asteroids = append(snap.Asteroids, a.View())
	}
	return snap
}
