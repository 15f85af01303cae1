// Package client runs one player's game on a terminal: it wires keyboard
// input, the simulation loop and the terminal renderer together.
package client

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/rockfield/internal/audio"
	"github.com/tomz197/rockfield/internal/config"
	"github.com/tomz197/rockfield/internal/draw"
	"github.com/tomz197/rockfield/internal/input"
	"github.com/tomz197/rockfield/internal/loop"
	"github.com/tomz197/rockfield/internal/object"
)

const defaultGameOverWait = 10 * time.Second

// Client handles rendering and input for a single connection.
type Client struct {
	loop     *loop.Loop
	renderer *draw.Renderer
	stream   *input.Stream
	writer   io.Writer
	logger   *log.Logger

	gameOverWait time.Duration
	quitCh       chan struct{}
	quitOnce     sync.Once
}

// ClientOptions configures the client. Zero values pick defaults.
type ClientOptions struct {
	TermSizeFunc draw.TermSizeFunc
	Sounder      loop.Sounder
	Logger       *log.Logger
	Rand         *rand.Rand
	GameOverWait time.Duration // How long the final screen stays up
}

// NewClient creates a session for cfg and starts reading input from r.
func NewClient(cfg config.Game, r *bufio.Reader, w io.Writer, opts ClientOptions) *Client {
	if opts.TermSizeFunc == nil {
		opts.TermSizeFunc = draw.DefaultTermSizeFunc
	}
	if opts.Sounder == nil {
		opts.Sounder = audio.Silent{}
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.GameOverWait <= 0 {
		opts.GameOverWait = defaultGameOverWait
	}

	session := loop.NewSession(cfg, opts.Rand)
	c := &Client{
		renderer:     draw.NewRenderer(w, cfg.Field.Width, cfg.Field.Height, opts.TermSizeFunc),
		writer:       w,
		logger:       opts.Logger.With("session", session.ID.String()),
		gameOverWait: opts.GameOverWait,
		quitCh:       make(chan struct{}),
	}
	c.loop = loop.New(session, c.renderer,
		loop.WithController(c),
		loop.WithSounder(opts.Sounder),
		loop.WithLogger(opts.Logger),
	)
	c.stream = input.StartStream(r, input.Hooks{
		Pause: func() { c.loop.TogglePause() },
		Quit:  c.Quit,
	})
	return c
}

// Controls implements loop.Controller.
func (c *Client) Controls() object.Controls {
	return c.stream.Controls()
}

// Quit ends the game. Safe to call from any goroutine, more than once.
func (c *Client) Quit() {
	c.quitOnce.Do(func() { close(c.quitCh) })
}

// Session returns the game state being played.
func (c *Client) Session() *loop.Session {
	return c.loop.Session()
}

// Run plays until the ship dies, the player quits, input closes or ctx is
// done. After a death the game over screen stays up for the configured
// wait or until the player quits.
func (c *Client) Run(ctx context.Context) (loop.Result, error) {
	draw.HideCursor(c.writer)
	defer draw.ShowCursor(c.writer)
	draw.ClearScreen(c.writer)

	playCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		select {
		case <-c.quitCh:
			c.logger.Debug("player quit")
		case <-c.stream.Done():
			c.logger.Debug("input closed")
		case <-playCtx.Done():
		}
		cancel()
	}()

	res, err := c.loop.Run(playCtx)
	if err != nil {
		if errors.Is(err, context.Canceled) && ctx.Err() == nil {
			return res, nil
		}
		return res, err
	}

	if err := c.renderer.GameOver(res); err != nil {
		return res, fmt.Errorf("failed to draw game over screen: %w", err)
	}
	select {
	case <-playCtx.Done():
	case <-time.After(c.gameOverWait):
	}
	draw.ClearScreen(c.writer)
	return res, nil
}
