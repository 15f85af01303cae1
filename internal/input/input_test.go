package input

import (
	"bufio"
	"io"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/tomz197/rockfield/internal/object"
)

func TestApplyBytes(t *testing.T) {
	now := time.Unix(100, 0)
	tests := []struct {
		name string
		in   string
		want object.Controls
	}{
		{"left arrow", "\x1b[D", object.Controls{Left: true}},
		{"right arrow", "\x1b[C", object.Controls{Right: true}},
		{"up arrow thrusts", "\x1b[A", object.Controls{Thrust: true}},
		{"down arrow ignored", "\x1b[B", object.Controls{}},
		{"wasd", "wad", object.Controls{Left: true, Right: true, Thrust: true}},
		{"space fires", " ", object.Controls{Fire: true}},
		{"thrust and fire", "w ", object.Controls{Thrust: true, Fire: true}},
		{"bare escape", "\x1b", object.Controls{}},
		{"unbound", "xyz", object.Controls{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var state keyState
			applyBytes(&state, []byte(tt.in), now)
			if got := state.controls(now); got != tt.want {
				t.Errorf("controls = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestKeyReleasesAfterHold(t *testing.T) {
	now := time.Unix(100, 0)
	var state keyState
	applyBytes(&state, []byte(" "), now)

	if !state.controls(now.Add(keyHoldDuration / 2)).Fire {
		t.Error("fire released before hold duration")
	}
	if state.controls(now.Add(keyHoldDuration)).Fire {
		t.Error("fire still held after hold duration")
	}
}

func TestStreamHooks(t *testing.T) {
	var pauses, quits atomic.Int32
	s := StartStream(bufio.NewReader(strings.NewReader("pPq\x03 ")), Hooks{
		Pause: func() { pauses.Add(1) },
		Quit:  func() { quits.Add(1) },
	})

	select {
	case <-s.Done():
	case <-time.After(time.Second):
		t.Fatal("stream did not finish at EOF")
	}
	if pauses.Load() != 2 {
		t.Errorf("pause hook ran %d times, want 2", pauses.Load())
	}
	if quits.Load() != 2 {
		t.Errorf("quit hook ran %d times, want 2", quits.Load())
	}
	if c := s.Controls(); !c.Fire || c.Left || c.Right || c.Thrust {
		t.Errorf("controls = %+v, want only Fire", c)
	}
}

func TestStreamNilHooks(t *testing.T) {
	s := StartStream(bufio.NewReader(strings.NewReader("pq")), Hooks{})
	select {
	case <-s.Done():
	case <-time.After(time.Second):
		t.Fatal("stream did not finish at EOF")
	}
	if c := s.Controls(); c != (object.Controls{}) {
		t.Errorf("controls = %+v, want none", c)
	}
}

func TestStreamDoneOnError(t *testing.T) {
	pr, pw := io.Pipe()
	s := StartStream(bufio.NewReader(pr), Hooks{})
	pw.CloseWithError(io.ErrUnexpectedEOF)

	select {
	case <-s.Done():
	case <-time.After(time.Second):
		t.Fatal("stream did not finish on read error")
	}
}
