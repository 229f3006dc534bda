package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/tomz197/xevious/internal/audio"
	"github.com/tomz197/xevious/internal/audio/speaker"
	"github.com/tomz197/xevious/internal/config"
	"github.com/tomz197/xevious/internal/game"
	"github.com/tomz197/xevious/internal/loop"
)

func main() {
	logger, closeLog := openLogger()
	defer closeLog()

	bank := audio.LoadBankOrDefault(config.GetEnv("XEVIOUS_SOUNDS", ""), logger)
	player, closeAudio := speaker.Open(bank, config.GetEnvFloat64("XEVIOUS_VOLUME", 1), logger)
	defer closeAudio()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := loop.Options{
		Game: game.Options{
			Seed:  config.GetEnvInt64("XEVIOUS_SEED", 0),
			Sound: player,
		},
		Logger: logger,
	}

	var err error
	switch renderer := config.GetEnv("XEVIOUS_RENDERER", "ansi"); renderer {
	case "tcell":
		err = runTcell(ctx, opts)
	case "ansi":
		err = runANSI(ctx, opts)
	default:
		err = fmt.Errorf("unknown renderer %q (want ansi or tcell)", renderer)
	}
	if err != nil && ctx.Err() == nil {
		closeAudio()
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

func runANSI(ctx context.Context, opts loop.Options) error {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("failed to enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	reader := bufio.NewReader(os.Stdin)
	return loop.Run(ctx, reader, os.Stdout, nil, opts)
}

func runTcell(ctx context.Context, opts loop.Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	return loop.RunTcell(ctx, screen, opts)
}

// openLogger logs to XEVIOUS_LOG_FILE when set. The terminal belongs to
// the game, so logs are discarded otherwise.
func openLogger() (*log.Logger, func()) {
	path := config.GetEnv("XEVIOUS_LOG_FILE", "")
	if path == "" {
		return config.NewLogger(io.Discard, "xevious"), func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
		os.Exit(1)
	}
	return config.NewLogger(f, "xevious"), func() { _ = f.Close() }
}
