package audio

import (
	"math"
	"testing"
)

// TestSoundManagerGracefulDegradation verifies audio operations don't panic when not initialized
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(0)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	for e := FireBullet; e <= Background; e++ {
		sm.Play(e)
		sm.Stop(e)
	}
	sm.Cleanup()
}

// TestSoundManagerInitialization verifies sound manager can be initialized and cleaned up
func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager(-1)

	// Speaker initialization may fail in CI/test environments without audio devices
	if err := sm.Initialize(); err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}

	sm.Play(Background)
	sm.Play(FireBullet)
	sm.Play(FireBullet)
	sm.Stop(Background)
	sm.Cleanup()
}

func TestEffectNames(t *testing.T) {
	seen := map[string]bool{}
	for e := FireBullet; e <= Background; e++ {
		name := e.String()
		if name == "" || name == "unknown" {
			t.Errorf("effect %d has no name", e)
		}
		if seen[name] {
			t.Errorf("duplicate effect name %q", name)
		}
		seen[name] = true
	}
	if Effect(99).String() != "unknown" {
		t.Errorf("out of range effect should be unknown")
	}
}

func TestOnlyBackgroundLoops(t *testing.T) {
	for e := FireBullet; e <= Background; e++ {
		if e.Loops() != (e == Background) {
			t.Errorf("%s: Loops() = %v", e, e.Loops())
		}
	}
}

// TestOneShotStreamsEnd drains every one-shot effect and checks it ends with sane samples
func TestOneShotStreamsEnd(t *testing.T) {
	buf := make([][2]float64, 512)
	for e := FireBullet; e <= Background; e++ {
		if e.Loops() {
			continue
		}
		s := newStreamer(e)
		if s == nil {
			t.Fatalf("%s: no streamer", e)
		}

		total := 0
		for {
			n, ok := s.Stream(buf)
			for _, smp := range buf[:n] {
				if math.Abs(smp[0]) > 1 || math.IsNaN(smp[0]) {
					t.Fatalf("%s: sample %v out of range", e, smp[0])
				}
			}
			total += n
			if !ok || total > int(sampleRate)*5 {
				break
			}
		}
		if total == 0 || total > int(sampleRate)*5 {
			t.Errorf("%s: streamed %d samples, want a short finite effect", e, total)
		}
	}
}

func TestBackgroundKeepsStreaming(t *testing.T) {
	s := newStreamer(Background)
	buf := make([][2]float64, 1024)
	for range 100 {
		n, ok := s.Stream(buf)
		if !ok || n != len(buf) {
			t.Fatalf("background stopped early: n=%d ok=%v", n, ok)
		}
	}
}
