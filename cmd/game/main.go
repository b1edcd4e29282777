package main

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/tomz197/drift/internal/config"
	"github.com/tomz197/drift/internal/draw"
	"github.com/tomz197/drift/internal/loop"
	"github.com/tomz197/drift/internal/random"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "drift: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	game, err := config.Load()
	if err != nil {
		return err
	}

	logFile, err := config.OpenLogFile()
	if err != nil {
		return err
	}
	defer logFile.Close()

	logger, err := config.NewLogger(logFile, "drift")
	if err != nil {
		return err
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("failed to enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	logger.Info("starting local game", "seed", game.Seed, "assets", game.Assets.Ship)
	err = loop.Run(context.Background(), bufio.NewReader(os.Stdin), os.Stdout, loop.Options{
		Tuning:   game.Tuning,
		Keymap:   game.Keymap,
		Seed:     random.NewSeeder(game.Seed).Next(),
		Logger:   logger,
		TermSize: draw.StdoutSize,
	})
	if err != nil {
		return fmt.Errorf("game error: %w", err)
	}
	logger.Info("game ended")
	return nil
}
