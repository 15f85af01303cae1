package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// SoundManager manages all game audio
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	active      map[Effect]*beep.Ctrl
	volume      float64 // Log2 gain applied to the mix
	initialized bool
}

// NewSoundManager creates a new sound manager. volume is a log2 gain:
// 0 leaves samples untouched, -1 halves them.
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		active: make(map[Effect]*beep.Ctrl),
		volume: volume,
	}
}

// Initialize sets up the audio system. On error the manager stays silent
// and the game continues without sound.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	// Initialize speaker with sample rate and buffer size
	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100))
	if err != nil {
		return err
	}

	speaker.Play(&effects.Volume{Streamer: sm.mixer, Base: 2, Volume: sm.volume})
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and detaches from the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	for e, ctrl := range sm.active {
		ctrl.Streamer = nil
		delete(sm.active, e)
	}
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Clear()
	sm.initialized = false
}

// Play starts effect e. If e is already playing it restarts from the
// beginning.
func (sm *SoundManager) Play(e Effect) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	streamer := newStreamer(e)
	if streamer == nil {
		return
	}
	ctrl := &beep.Ctrl{Streamer: streamer}

	speaker.Lock()
	if prev, ok := sm.active[e]; ok {
		// A Ctrl without a streamer reports drained and the mixer drops it
		prev.Streamer = nil
	}
	sm.active[e] = ctrl
	sm.mixer.Add(ctrl)
	speaker.Unlock()
}

// Stop silences effect e if it is playing.
func (sm *SoundManager) Stop(e Effect) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	if ctrl, ok := sm.active[e]; ok {
		ctrl.Streamer = nil
		delete(sm.active, e)
	}
	speaker.Unlock()
}

// newStreamer builds a fresh stream for e, positioned at its start.
func newStreamer(e Effect) beep.Streamer {
	switch e {
	case FireBullet:
		return beep.Take(sampleRate.N(time.Millisecond*90), NewSweepGenerator(sampleRate, 1400, 500))
	case AsteroidBreak:
		return beep.Take(sampleRate.N(time.Millisecond*300), NewNoiseGenerator(sampleRate, 8, 80))
	case ShipCrash:
		return beep.Take(sampleRate.N(time.Millisecond*900), NewNoiseGenerator(sampleRate, 3, 55))
	case GameStart:
		return NewArpeggio(sampleRate, time.Millisecond*110, 330, 440, 550, 660)
	case LevelUp:
		return NewArpeggio(sampleRate, time.Millisecond*80, 523, 659, 784, 1046)
	case Background:
		return NewPulseGenerator(sampleRate)
	default:
		return nil
	}
}
