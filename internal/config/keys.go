package config

import (
	"fmt"
	"strings"

	"github.com/tomz197/drift/internal/input"
)

// KeymapFromEnv returns the default bindings with DRIFT_KEYS_<ACTION>
// overrides applied. Each override lists the key characters for the action,
// e.g. DRIFT_KEYS_FIRE=" f". "esc" and "space" name the non-printing keys.
func KeymapFromEnv() (input.Keymap, error) {
	km := input.DefaultKeymap()

	for _, a := range input.Actions() {
		key := "DRIFT_KEYS_" + strings.ToUpper(a.String())
		value := GetEnv(key, "")
		if value == "" {
			continue
		}
		km.Bind(a, parseKeys(value)...)
	}

	hold, err := GetEnvDuration("DRIFT_KEY_HOLD", km.HoldWindow)
	if err != nil {
		return km, fmt.Errorf("read keymap: %w", err)
	}
	km.HoldWindow = hold
	return km, nil
}

// parseKeys expands the named keys and returns the remaining characters as
// raw bytes.
func parseKeys(value string) []byte {
	value = strings.ReplaceAll(value, "esc", "\x1b")
	value = strings.ReplaceAll(value, "space", " ")
	return []byte(value)
}
