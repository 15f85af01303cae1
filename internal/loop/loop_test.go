package loop_test

import (
	"context"
	"errors"
	"io"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/rockfield/internal/audio"
	"github.com/tomz197/rockfield/internal/config"
	"github.com/tomz197/rockfield/internal/loop"
	"github.com/tomz197/rockfield/internal/loop/mocks"
	"github.com/tomz197/rockfield/internal/object"
	"github.com/tomz197/rockfield/internal/physics"
	"go.uber.org/mock/gomock"
)

// stepClock advances by step on every read.
type stepClock struct {
	now  time.Time
	step time.Duration
}

func (c *stepClock) Now() time.Time {
	t := c.now
	c.now = c.now.Add(c.step)
	return t
}

func newSession(t *testing.T) (*loop.Session, config.Game) {
	t.Helper()
	cfg := config.Default()
	return loop.NewSession(cfg, rand.New(rand.NewSource(42))), cfg
}

func quietLogger() loop.Option {
	return loop.WithLogger(log.New(io.Discard))
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state loop.State
		want  string
	}{
		{loop.StateRunning, "running"},
		{loop.StatePaused, "paused"},
		{loop.StateLevelTransition, "level-transition"},
		{loop.StateEnded, "ended"},
		{loop.State(9), "State(9)"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", int(tt.state), got, tt.want)
		}
	}
}

func TestRunEndsWhenShipDies(t *testing.T) {
	ctrl := gomock.NewController(t)
	renderer := mocks.NewMockRenderer(ctrl)
	sounds := mocks.NewMockSounder(ctrl)

	s, cfg := newSession(t)
	center := s.Ship.Center()
	s.Asteroids = []*object.Asteroid{
		object.NewAsteroid(rand.New(rand.NewSource(1)), center, cfg.Asteroid),
	}

	var last loop.Snapshot
	renderer.EXPECT().Render(gomock.Any()).Do(func(frame loop.Snapshot) { last = frame }).MinTimes(1)
	gomock.InOrder(
		sounds.EXPECT().Play(audio.GameStart),
		sounds.EXPECT().Play(audio.Background),
		sounds.EXPECT().Play(audio.ShipCrash),
		sounds.EXPECT().Stop(audio.Background),
	)

	l := loop.New(s, renderer,
		loop.WithSounder(sounds),
		loop.WithClock(&stepClock{now: time.Unix(0, 0), step: 10 * time.Millisecond}),
		quietLogger(),
	)
	res, err := l.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	want := loop.Result{Points: 0, Level: 1, Multiplier: 1}
	if res != want {
		t.Errorf("Result = %+v, want %+v", res, want)
	}
	if l.State() != loop.StateEnded {
		t.Errorf("state = %v, want %v", l.State(), loop.StateEnded)
	}
	if last.Ship.Alive {
		t.Error("final frame shows a live ship")
	}

	pos := s.Ship.Center()
	if l.Tick(time.Unix(10, 0)) != loop.StateEnded || s.Ship.Center() != pos {
		t.Error("ended loop kept simulating")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	renderer := mocks.NewMockRenderer(ctrl)
	sounds := mocks.NewMockSounder(ctrl)

	renderer.EXPECT().Render(gomock.Any()).AnyTimes()
	sounds.EXPECT().Play(gomock.Any()).AnyTimes()
	sounds.EXPECT().Stop(audio.Background)

	s, _ := newSession(t)
	l := loop.New(s, renderer, loop.WithSounder(sounds), quietLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := l.Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run error = %v, want context.Canceled", err)
	}
	if res.Level != 1 {
		t.Errorf("Result.Level = %d, want 1", res.Level)
	}
}

func TestRunRecoversPanic(t *testing.T) {
	ctrl := gomock.NewController(t)
	renderer := mocks.NewMockRenderer(ctrl)
	sounds := mocks.NewMockSounder(ctrl)

	renderer.EXPECT().Render(gomock.Any()).Do(func(loop.Snapshot) { panic("canvas gone") })
	sounds.EXPECT().Play(gomock.Any()).AnyTimes()
	sounds.EXPECT().Stop(audio.Background)

	s, _ := newSession(t)
	l := loop.New(s, renderer,
		loop.WithSounder(sounds),
		loop.WithClock(&stepClock{now: time.Unix(0, 0), step: 40 * time.Millisecond}),
		quietLogger(),
	)

	_, err := l.Run(context.Background())
	if err == nil || !strings.Contains(err.Error(), "canvas gone") {
		t.Errorf("Run error = %v, want recovered panic", err)
	}
}

func TestPauseFreezesCounters(t *testing.T) {
	ctrl := gomock.NewController(t)
	renderer := mocks.NewMockRenderer(ctrl)
	controller := mocks.NewMockController(ctrl)

	s, cfg := newSession(t)
	rock := object.NewAsteroid(rand.New(rand.NewSource(3)), physics.Point{X: 100, Y: 100}, cfg.Asteroid)
	s.Asteroids = []*object.Asteroid{rock}

	renderer.EXPECT().Render(gomock.Any()).Do(func(frame loop.Snapshot) {
		if !frame.Paused {
			t.Error("frame rendered on pause is not marked paused")
		}
	}).Times(1)
	controller.EXPECT().Controls().Return(object.Controls{}).Times(1)

	l := loop.New(s, renderer, loop.WithController(controller), quietLogger())

	t0 := time.Unix(0, 0)
	l.Tick(t0)
	l.Tick(t0.Add(15 * time.Millisecond))

	if !l.TogglePause() {
		t.Fatal("TogglePause did not pause")
	}
	if got := l.Tick(t0.Add(5 * time.Second)); got != loop.StatePaused {
		t.Fatalf("state = %v, want %v", got, loop.StatePaused)
	}
	l.Tick(t0.Add(6 * time.Second))
	if rock.Center() != (physics.Point{X: 100, Y: 100}) {
		t.Fatal("asteroid moved while paused")
	}

	if l.TogglePause() {
		t.Fatal("TogglePause did not resume")
	}
	if got := l.Tick(t0.Add(6*time.Second + 10*time.Millisecond)); got != loop.StateRunning {
		t.Fatalf("state = %v, want %v", got, loop.StateRunning)
	}

	// 15ms before the pause plus 10ms after it
	moved := rock.Center().DistanceTo(physics.Point{X: 100, Y: 100})
	want := rock.Speed * 0.025
	if d := moved - want; d > 1e-9 || d < -1e-9 {
		t.Errorf("asteroid moved %v, want %v", moved, want)
	}
}

func TestFireAddsBullet(t *testing.T) {
	ctrl := gomock.NewController(t)
	renderer := mocks.NewMockRenderer(ctrl)
	sounds := mocks.NewMockSounder(ctrl)
	controller := mocks.NewMockController(ctrl)

	controller.EXPECT().Controls().Return(object.Controls{Fire: true})
	sounds.EXPECT().Play(audio.FireBullet).Times(1)

	s, _ := newSession(t)
	l := loop.New(s, renderer, loop.WithSounder(sounds), loop.WithController(controller), quietLogger())

	t0 := time.Unix(0, 0)
	l.Tick(t0)
	l.Tick(t0.Add(30 * time.Millisecond))

	if len(s.Bullets) != 1 {
		t.Fatalf("%d bullets in play, want 1", len(s.Bullets))
	}
	if s.Bullets[0].Source() != object.Entity(s.Ship) {
		t.Error("bullet source is not the ship")
	}
}

func TestLevelTransitionOnlyRenders(t *testing.T) {
	ctrl := gomock.NewController(t)
	renderer := mocks.NewMockRenderer(ctrl)
	sounds := mocks.NewMockSounder(ctrl)

	s, cfg := newSession(t)
	rock := object.NewAsteroid(rand.New(rand.NewSource(5)), physics.Point{X: 100, Y: 100}, cfg.Asteroid)
	s.Asteroids = []*object.Asteroid{rock}
	s.Bullets = []*object.Bullet{object.NewBullet(s.Ship, rock.Center(), 0, cfg.Bullet)}

	gomock.InOrder(
		sounds.EXPECT().Play(audio.AsteroidBreak),
		sounds.EXPECT().Play(audio.LevelUp),
	)
	renderer.EXPECT().Render(gomock.Any()).Do(func(frame loop.Snapshot) {
		if !frame.LevelTransition || frame.Level != 2 {
			t.Errorf("frame transition=%v level=%d, want true and 2", frame.LevelTransition, frame.Level)
		}
	}).Times(2)

	l := loop.New(s, renderer, loop.WithSounder(sounds), quietLogger())

	t0 := time.Unix(0, 0)
	l.Tick(t0)
	if got := l.Tick(t0.Add(50 * time.Millisecond)); got != loop.StateLevelTransition {
		t.Fatalf("state = %v, want %v", got, loop.StateLevelTransition)
	}

	ship := s.Ship.Center()
	l.Tick(t0.Add(100 * time.Millisecond))
	if s.Ship.Center() != ship {
		t.Error("ship moved during the level transition")
	}

	if got := l.Tick(t0.Add(801 * time.Millisecond)); got != loop.StateRunning {
		t.Fatalf("state = %v, want %v", got, loop.StateRunning)
	}
	if len(s.Asteroids) != 4 {
		t.Errorf("level 2 has %d asteroids, want 4", len(s.Asteroids))
	}
	if s.Points != 3000 {
		t.Errorf("Points = %d, want 3000", s.Points)
	}
}
