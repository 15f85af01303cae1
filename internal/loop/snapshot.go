package loop

import (
	"time"

	"github.com/tomz197/rockfield/internal/audio"
	"github.com/tomz197/rockfield/internal/object"
)

//go:generate go tool mockgen -destination=mocks/mock_loop.go -package=mocks github.com/tomz197/rockfield/internal/loop Renderer,Sounder,Controller

// Snapshot is an immutable copy of the world handed to the renderer.
type Snapshot struct {
	Ship      object.ShipView
	Bullets   []object.BulletView
	Asteroids []object.AsteroidView

	Score      int64 // Display score
	Level      int
	Multiplier float64

	Paused          bool
	LevelTransition bool
}

// Renderer draws a snapshot. It is called from the loop goroutine.
type Renderer interface {
	Render(frame Snapshot)
}

// Sounder triggers sound effects. Implementations must not block.
type Sounder interface {
	Play(effect audio.Effect)
	Stop(effect audio.Effect)
}

// Controller reports the player's currently held controls.
type Controller interface {
	Controls() object.Controls
}

// Clock is the loop's time source.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the monotonic wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
