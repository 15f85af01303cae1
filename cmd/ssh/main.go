package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"
	"github.com/tomz197/rockfield/internal/audio"
	"github.com/tomz197/rockfield/internal/client"
	"github.com/tomz197/rockfield/internal/config"
	"github.com/tomz197/rockfield/internal/draw"
	"golang.org/x/sync/errgroup"
)

const (
	defaultHost        = "::"
	defaultPort        = "2222"
	defaultHostKeyPath = "/app/keys/host_key"
	shutdownTimeout    = 5 * time.Second
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "rockfield",
	})

	host := config.GetEnv("SSH_HOST", defaultHost)
	port := config.GetEnv("SSH_PORT", defaultPort)
	hostKeyPath := config.GetEnv("SSH_HOST_KEY", defaultHostKeyPath)
	logger.Info("SSH config", "host", host, "port", port, "hostKeyPath", hostKeyPath)

	cfg, err := config.FromEnv()
	if err != nil {
		logger.Fatal("invalid game config", "err", err)
	}

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(host, port)),
		wish.WithMiddleware(
			gameMiddleware(cfg, logger),
			activeterm.Middleware(),
			logging.MiddlewareWithLogger(logger),
		),
		// Set TCP_NODELAY to reduce latency for game input
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}
	if hostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(hostKeyPath))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		logger.Fatal("failed to create server", "err", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("starting SSH server", "addr", s.Addr)
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown error: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Fatal("server stopped", "err", err)
	}
	logger.Info("server stopped")
}

// gameMiddleware runs a private game for every SSH session. Sessions have
// no audio device, so they play silently.
func gameMiddleware(cfg config.Game, logger *log.Logger) wish.Middleware {
	return func(next ssh.Handler) ssh.Handler {
		return func(sess ssh.Session) {
			pty, winCh, ok := sess.Pty()
			if !ok {
				fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
				return
			}

			sessLogger := logger.With("user", sess.User())
			sessLogger.Info("new game session",
				"terminal", pty.Term,
				"width", pty.Window.Width,
				"height", pty.Window.Height)

			// Track terminal size from window change events
			sizeTracker := newSizeTracker(pty.Window.Width, pty.Window.Height)
			go func() {
				for win := range winCh {
					sizeTracker.update(win.Width, win.Height)
				}
			}()

			c := client.NewClient(cfg, bufio.NewReader(sess), sess, client.ClientOptions{
				TermSizeFunc: sizeTracker.getSize,
				Sounder:      audio.Silent{},
				Logger:       sessLogger,
			})
			res, err := c.Run(sess.Context())
			if err != nil && !errors.Is(err, context.Canceled) {
				sessLogger.Error("game error", "err", err)
			}

			sessLogger.Info("session ended", "points", res.Points, "level", res.Level)
			next(sess)
		}
	}
}

// sizeTracker tracks terminal size from SSH window change events.
type sizeTracker struct {
	mu     sync.RWMutex
	width  int
	height int
}

func newSizeTracker(width, height int) *sizeTracker {
	return &sizeTracker{width: width, height: height}
}

func (s *sizeTracker) update(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = width
	s.height = height
}

func (s *sizeTracker) getSize() (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height, nil
}

var _ draw.TermSizeFunc = (*sizeTracker)(nil).getSize
