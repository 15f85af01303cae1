// Package input turns raw terminal bytes into held-key ship controls.
package input

import (
	"bufio"
	"time"

	"github.com/tomz197/rockfield/internal/object"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
// Terminal auto-repeat fires roughly every 30ms, so this spans one or two
// update frames.
const keyHoldDuration = 60 * time.Millisecond

const ctrlC = 0x03

// Hooks are invoked from the reader goroutine as soon as their key arrives.
// Either may be nil.
type Hooks struct {
	Pause func()
	Quit  func()
}

// keyState tracks the last time each key was pressed.
type keyState struct {
	left   time.Time
	right  time.Time
	thrust time.Time
	fire   time.Time
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch    chan byte
	done  chan struct{}
	state keyState
	now   func() time.Time
}

// StartStream spawns a goroutine that reads from r. Pause and quit keys
// call hooks directly; everything else is buffered for Controls.
func StartStream(r *bufio.Reader, hooks Hooks) *Stream {
	s := &Stream{
		ch:   make(chan byte, 128),
		done: make(chan struct{}),
		now:  time.Now,
	}
	go func() {
		defer close(s.done)
		for {
			b, err := r.ReadByte()
			if err != nil {
				return
			}
			switch b {
			case 'p', 'P':
				if hooks.Pause != nil {
					hooks.Pause()
				}
				continue
			case 'q', 'Q', ctrlC:
				if hooks.Quit != nil {
					hooks.Quit()
				}
				continue
			}
			select {
			case s.ch <- b:
			default: // Loop is not draining; drop
			}
		}
	}()
	return s
}

// Done is closed when the reader hits EOF or an error.
func (s *Stream) Done() <-chan struct{} {
	return s.done
}

// Controls drains all available bytes (non-blocking) and reports which
// controls are currently held. It must be called from a single goroutine.
func (s *Stream) Controls() object.Controls {
	now := s.now()
	var buf []byte

drain:
	for {
		select {
		case b := <-s.ch:
			buf = append(buf, b)
		default:
			break drain
		}
	}

	applyBytes(&s.state, buf, now)
	return s.state.controls(now)
}

// applyBytes parses arrow escape sequences and single-key bindings.
func applyBytes(state *keyState, buf []byte, now time.Time) {
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequence: ESC [ <code>
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A':
				state.thrust = now
			case 'C':
				state.right = now
			case 'D':
				state.left = now
			}
			i += 2
			continue
		}

		switch b {
		case 'a', 'A', 'h', 'H':
			state.left = now
		case 'd', 'D', 'l', 'L':
			state.right = now
		case 'w', 'W', 'k', 'K':
			state.thrust = now
		case ' ':
			state.fire = now
		}
	}
}

func (k keyState) controls(now time.Time) object.Controls {
	held := func(t time.Time) bool {
		return !t.IsZero() && now.Sub(t) < keyHoldDuration
	}
	return object.Controls{
		Left:   held(k.left),
		Right:  held(k.right),
		Thrust: held(k.thrust),
		Fire:   held(k.fire),
	}
}
