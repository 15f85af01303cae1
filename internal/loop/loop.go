// Package loop runs the fixed-cadence simulation: update, collision and
// render passes over a Session, plus pause and level transitions.
package loop

import (
	"context"
	"fmt"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/rockfield/internal/audio"
	"github.com/tomz197/rockfield/internal/config"
	"github.com/tomz197/rockfield/internal/event"
	"github.com/tomz197/rockfield/internal/object"
)

// State is the loop's current phase.
type State int

const (
	StateRunning State = iota
	StatePaused
	StateLevelTransition
	StateEnded
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateLevelTransition:
		return "level-transition"
	case StateEnded:
		return "ended"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Loop drives a Session. Tick and Run must be called from one goroutine;
// TogglePause may be called from any.
type Loop struct {
	session  *Session
	renderer Renderer
	sounds   Sounder
	controls Controller
	clock    Clock
	timing   config.Timing
	logger   *log.Logger

	paused atomic.Bool

	state    State
	started  bool
	lastTick time.Time

	sinceUpdate    time.Duration
	sinceRender    time.Duration
	sinceCollision time.Duration
	waitUntil      time.Time
}

// Option configures a Loop.
type Option func(*Loop)

// WithSounder sets the sound collaborator. Defaults to audio.Silent.
func WithSounder(s Sounder) Option {
	return func(l *Loop) { l.sounds = s }
}

// WithController sets the input source. Without one the ship gets no input.
func WithController(c Controller) Option {
	return func(l *Loop) { l.controls = c }
}

// WithClock sets the time source used by Run.
func WithClock(c Clock) Option {
	return func(l *Loop) { l.clock = c }
}

// WithLogger sets the logger. Defaults to log.Default().
func WithLogger(logger *log.Logger) Option {
	return func(l *Loop) { l.logger = logger }
}

// New creates a loop over session that draws through renderer.
func New(session *Session, renderer Renderer, opts ...Option) *Loop {
	l := &Loop{
		session:  session,
		renderer: renderer,
		sounds:   audio.Silent{},
		clock:    SystemClock{},
		timing:   session.cfg.Timing,
		logger:   log.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.logger = l.logger.With("session", session.ID.String())

	session.Ship.OnFire(event.ListenerFunc[object.FireEvent](l.onFire))
	return l
}

// Session returns the session being driven.
func (l *Loop) Session() *Session {
	return l.session
}

// State returns the phase reached by the last Tick.
func (l *Loop) State() State {
	return l.state
}

// TogglePause flips the pause flag and returns the new value.
func (l *Loop) TogglePause() bool {
	for {
		old := l.paused.Load()
		if l.paused.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// Paused reports whether the loop is paused.
func (l *Loop) Paused() bool {
	return l.paused.Load()
}

// Run ticks the loop until the ship dies or ctx is done. A panic inside a
// tick ends the session with an error.
func (l *Loop) Run(ctx context.Context) (res Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			l.logger.Error("simulation panicked", "panic", r)
			l.sounds.Stop(audio.Background)
			res, err = l.session.Result(), fmt.Errorf("simulation panicked: %v", r)
		}
	}()

	l.logger.Info("session started", "level", l.session.Level, "asteroids", len(l.session.Asteroids))
	l.sounds.Play(audio.GameStart)
	l.sounds.Play(audio.Background)

	var poll <-chan time.Time
	if l.timing.PollInterval > 0 {
		ticker := time.NewTicker(l.timing.PollInterval)
		defer ticker.Stop()
		poll = ticker.C
	}

	for {
		if l.Tick(l.clock.Now()) == StateEnded {
			return l.session.Result(), nil
		}

		if poll == nil {
			if err := ctx.Err(); err != nil {
				return l.abort(err)
			}
			runtime.Gosched()
			continue
		}
		select {
		case <-ctx.Done():
			return l.abort(ctx.Err())
		case <-poll:
		}
	}
}

func (l *Loop) abort(err error) (Result, error) {
	l.sounds.Stop(audio.Background)
	res := l.session.Result()
	l.logger.Info("session aborted", "points", res.Points, "level", res.Level, "err", err)
	return res, err
}

// Tick runs one loop iteration at time now and returns the resulting state.
func (l *Loop) Tick(now time.Time) State {
	if l.state == StateEnded {
		return l.state
	}
	if !l.started {
		l.started = true
		l.lastTick = now
	}
	delta := max(now.Sub(l.lastTick), 0)
	l.lastTick = now

	if l.paused.Load() {
		if l.state != StatePaused {
			l.state = StatePaused
			l.render()
		}
		return l.state
	}

	if l.session.LevelEnded {
		l.state = StateLevelTransition
		l.sinceRender += delta
		if l.sinceRender > l.timing.RenderInterval() {
			l.sinceRender = 0
			l.render()
		}
		if now.Before(l.waitUntil) {
			return l.state
		}
		l.startLevel()
		return l.state
	}

	l.state = StateRunning
	l.sinceCollision += delta
	l.sinceRender += delta
	l.sinceUpdate += delta

	if l.sinceCollision > l.timing.CollisionInterval() {
		l.sinceCollision = 0
		report := l.session.checkCollisions(l.sounds)
		if !l.session.Ship.IsAlive() {
			l.render()
			return l.end()
		}
		if report.LevelCleared {
			l.waitUntil = now.Add(l.timing.LevelWait)
			l.state = StateLevelTransition
			l.sounds.Play(audio.LevelUp)
			l.logger.Debug("level cleared",
				"next", l.session.Level,
				"points", l.session.Points,
				"multiplier", l.session.Multiplier)
			return l.state
		}
	}

	if l.sinceRender > l.timing.RenderInterval() {
		l.sinceRender = 0
		l.render()
	}

	if l.sinceUpdate > l.timing.FrameInterval() {
		ctx := object.UpdateContext{Delta: l.sinceUpdate, Field: l.session.Field}
		l.sinceUpdate = 0
		if l.controls != nil {
			l.session.Ship.SetControls(l.controls.Controls())
		}
		l.session.update(ctx)
	}

	return l.state
}

// startLevel populates the next level once the transition wait is over.
func (l *Loop) startLevel() {
	l.session.PopulateField()
	l.session.LevelEnded = false
	l.state = StateRunning
	l.logger.Debug("level started", "level", l.session.Level, "asteroids", len(l.session.Asteroids))
}

func (l *Loop) end() State {
	l.state = StateEnded
	l.sounds.Stop(audio.Background)
	res := l.session.Result()
	l.logger.Info("session ended", "points", res.Points, "level", res.Level, "multiplier", res.Multiplier)
	return l.state
}

func (l *Loop) render() {
	l.renderer.Render(l.session.Snapshot(l.state == StatePaused, l.state == StateLevelTransition))
}

func (l *Loop) onFire(ev object.FireEvent) {
	l.session.AddBullet(object.NewBulletFromEvent(ev, l.session.cfg.Bullet))
	l.sounds.Play(audio.FireBullet)
}
