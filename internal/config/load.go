package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/drift/internal/input"
)

// Game is everything a host needs to start sessions.
type Game struct {
	Tuning Tuning
	Keymap input.Keymap
	Seed   uint64 // Zero seeds each session from the clock
	Assets Assets
}

// Load reads and validates the game configuration from the environment.
func Load() (Game, error) {
	tuning, tuningErr := TuningFromEnv()
	if tuningErr == nil {
		tuningErr = tuning.Validate()
	}
	keymap, keymapErr := KeymapFromEnv()
	if keymapErr == nil {
		keymapErr = keymap.Validate()
	}
	seed, seedErr := GetEnvUint64("DRIFT_SEED", 0)

	if err := errors.Join(tuningErr, keymapErr, seedErr); err != nil {
		return Game{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return Game{
		Tuning: tuning,
		Keymap: keymap,
		Seed:   seed,
		Assets: AssetsFromEnv(),
	}, nil
}

// NewLogger creates the structured logger at DRIFT_LOG_LEVEL (default info).
func NewLogger(w io.Writer, prefix string) (*log.Logger, error) {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Prefix:          prefix,
	})

	level, err := log.ParseLevel(GetEnv("DRIFT_LOG_LEVEL", "info"))
	if err != nil {
		return logger, fmt.Errorf("DRIFT_LOG_LEVEL: %w", err)
	}
	logger.SetLevel(level)
	return logger, nil
}

// OpenLogFile opens DRIFT_LOG_FILE for appending. With the variable unset
// logs are discarded, since the terminal is busy drawing the game.
func OpenLogFile() (io.WriteCloser, error) {
	path := GetEnv("DRIFT_LOG_FILE", "")
	if path == "" {
		return nopCloser{io.Discard}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
