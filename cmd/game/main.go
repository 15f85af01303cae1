package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/tomz197/rockfield/internal/audio"
	"github.com/tomz197/rockfield/internal/client"
	"github.com/tomz197/rockfield/internal/config"
	"golang.org/x/term"
)

const envLogPath = "GAME_LOG"

func main() {
	os.Exit(run())
}

func run() int {
	logger, closeLog, err := newLogger(config.GetEnv(envLogPath, ""))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log: %v\n", err)
		return 1
	}
	defer closeLog()

	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		return 1
	}

	sounds := audio.NewSoundManager(-1)
	if err := sounds.Initialize(); err != nil {
		logger.Warn("audio disabled", "err", err)
	}
	defer sounds.Cleanup()

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c := client.NewClient(cfg, bufio.NewReader(os.Stdin), os.Stdout, client.ClientOptions{
		Sounder: sounds,
		Logger:  logger,
	})
	res, err := c.Run(ctx)
	_ = term.Restore(fd, oldState)

	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("game error", "err", err)
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		return 1
	}
	fmt.Printf("Score: %d  Level: %d  Multiplier: x%.1f\n", res.Points, res.Level, res.Multiplier)
	return 0
}

// newLogger writes to path when set. The terminal belongs to the game, so
// without a path logs are discarded.
func newLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
		Prefix:          "rockfield",
	})
	return logger, func() { _ = f.Close() }, nil
}
