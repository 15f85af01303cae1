package client

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"math/rand"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/rockfield/internal/config"
	"github.com/tomz197/rockfield/internal/object"
)

// syncBuffer guards a bytes.Buffer shared between the test and the client.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func testOptions() ClientOptions {
	return ClientOptions{
		TermSizeFunc: func() (int, int, error) { return 80, 24, nil },
		Logger:       log.New(io.Discard),
		Rand:         rand.New(rand.NewSource(1)),
		GameOverWait: 20 * time.Millisecond,
	}
}

func runWithTimeout(t *testing.T, ctx context.Context, c *Client) error {
	t.Helper()
	errCh := make(chan error, 1)
	go func() {
		_, err := c.Run(ctx)
		errCh <- err
	}()
	select {
	case err := <-errCh:
		return err
	case <-time.After(5 * time.Second):
		t.Fatal("client did not stop")
		return nil
	}
}

func TestQuitKeyEndsGame(t *testing.T) {
	out := &syncBuffer{}
	pr, pw := io.Pipe()
	defer pw.Close()
	c := NewClient(config.Default(), bufio.NewReader(pr), out, testOptions())

	go func() {
		time.Sleep(20 * time.Millisecond)
		pw.Write([]byte("q"))
	}()

	if err := runWithTimeout(t, context.Background(), c); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), "\033[?25l") {
		t.Error("cursor was not hidden")
	}
	if !strings.HasSuffix(out.String(), "\033[?25h") {
		t.Error("cursor was not restored")
	}
}

func TestInputEOFEndsGame(t *testing.T) {
	c := NewClient(config.Default(), bufio.NewReader(strings.NewReader("")), &syncBuffer{}, testOptions())
	if err := runWithTimeout(t, context.Background(), c); err != nil {
		t.Fatalf("Run: %v", err)
	}
}

func TestParentCancelIsReported(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	c := NewClient(config.Default(), bufio.NewReader(pr), &syncBuffer{}, testOptions())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := runWithTimeout(t, ctx, c); !errors.Is(err, context.Canceled) {
		t.Errorf("Run error = %v, want context.Canceled", err)
	}
}

func TestDeathShowsGameOver(t *testing.T) {
	out := &syncBuffer{}
	pr, pw := io.Pipe()
	defer pw.Close()
	cfg := config.Default()
	c := NewClient(cfg, bufio.NewReader(pr), out, testOptions())

	s := c.Session()
	s.Asteroids = []*object.Asteroid{
		object.NewAsteroid(rand.New(rand.NewSource(2)), s.Ship.Center(), cfg.Asteroid),
	}

	if err := runWithTimeout(t, context.Background(), c); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), "GAME OVER") {
		t.Error("game over screen not drawn")
	}
}
