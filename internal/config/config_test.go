package config

import (
	"strings"
	"testing"
	"time"

	"github.com/tomz197/drift/internal/input"
	"github.com/tomz197/drift/internal/random"
)

func TestDefaultTuningIsValid(t *testing.T) {
	if err := DefaultTuning().Validate(); err != nil {
		t.Fatalf("DefaultTuning().Validate() = %v", err)
	}
}

func TestTuningValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Tuning)
		wantErr string
	}{
		{
			name:    "inverted_radius",
			mutate:  func(t *Tuning) { t.Spawn.Radius = random.Range{Min: 300, Max: 200} },
			wantErr: "spawn radius",
		},
		{
			name:    "empty_speed",
			mutate:  func(t *Tuning) { t.Spawn.Speed = random.Range{Min: 50, Max: 50} },
			wantErr: "spawn speed",
		},
		{
			name:    "spawn_outside_cull",
			mutate:  func(t *Tuning) { t.CullDistance = 250 },
			wantErr: "below cull distance",
		},
		{
			name:    "zero_interval",
			mutate:  func(t *Tuning) { t.Spawn.Interval = 0 },
			wantErr: "spawn interval",
		},
		{
			name:    "zero_lifetime",
			mutate:  func(t *Tuning) { t.Weapon.Lifetime = 0 },
			wantErr: "laser lifetime",
		},
		{
			name:    "negative_damping",
			mutate:  func(t *Tuning) { t.Kinematics.LinearDamping = -1 },
			wantErr: "linear damping",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tuning := DefaultTuning()
			tt.mutate(&tuning)
			err := tuning.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %q, expected mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestTuningFromEnv(t *testing.T) {
	t.Setenv("DRIFT_ACCEL", "75")
	t.Setenv("DRIFT_SPAWN_INTERVAL", "3s")
	t.Setenv("DRIFT_SPAWN_RADIUS_MAX", "350")

	tuning, err := TuningFromEnv()
	if err != nil {
		t.Fatalf("TuningFromEnv() = %v", err)
	}
	if tuning.Kinematics.Accel != 75 {
		t.Errorf("Accel = %v, expected 75", tuning.Kinematics.Accel)
	}
	if tuning.Spawn.Interval != 3*time.Second {
		t.Errorf("Interval = %v, expected 3s", tuning.Spawn.Interval)
	}
	if tuning.Spawn.Radius.Max != 350 || tuning.Spawn.Radius.Min != 200 {
		t.Errorf("Radius = %v, expected [200, 350)", tuning.Spawn.Radius)
	}
}

func TestTuningFromEnvRejectsMalformed(t *testing.T) {
	t.Setenv("DRIFT_CULL_DISTANCE", "far")
	if _, err := TuningFromEnv(); err == nil {
		t.Error("expected parse error")
	}
}

func TestKeymapFromEnv(t *testing.T) {
	t.Setenv("DRIFT_KEYS_FIRE", "fspace")
	t.Setenv("DRIFT_KEY_HOLD", "90ms")

	km, err := KeymapFromEnv()
	if err != nil {
		t.Fatalf("KeymapFromEnv() = %v", err)
	}
	if got := string(km.Keys(input.Fire)); got != "f " {
		t.Errorf("Fire keys = %q, expected %q", got, "f ")
	}
	if km.HoldWindow != 90*time.Millisecond {
		t.Errorf("HoldWindow = %v, expected 90ms", km.HoldWindow)
	}
	if err := km.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("DRIFT_TEST_STR", "value")
	t.Setenv("DRIFT_TEST_INT", "12")
	t.Setenv("DRIFT_TEST_BAD", "x")

	if got := GetEnv("DRIFT_TEST_STR", "fallback"); got != "value" {
		t.Errorf("GetEnv() = %q", got)
	}
	if got := GetEnv("DRIFT_TEST_MISSING", "fallback"); got != "fallback" {
		t.Errorf("GetEnv() = %q, expected fallback", got)
	}
	if n, err := GetEnvInt("DRIFT_TEST_INT", 0); err != nil || n != 12 {
		t.Errorf("GetEnvInt() = %d, %v", n, err)
	}
	if n, err := GetEnvUint64("DRIFT_TEST_MISSING", 9); err != nil || n != 9 {
		t.Errorf("GetEnvUint64() = %d, %v", n, err)
	}
	if _, err := GetEnvInt("DRIFT_TEST_BAD", 0); err == nil {
		t.Error("GetEnvInt() accepted malformed value")
	}
	if _, err := GetEnvDuration("DRIFT_TEST_BAD", time.Second); err == nil {
		t.Error("GetEnvDuration() accepted malformed value")
	}
}

func TestAssetsFromEnv(t *testing.T) {
	t.Setenv("DRIFT_ASSET_DIR", "/srv/drift")
	a := AssetsFromEnv()
	if a.Ship != "/srv/drift/images/ship.png" || a.Font != "/srv/drift/fonts/Regular.ttf" {
		t.Errorf("AssetsFromEnv() = %+v", a)
	}
}

func TestLoad(t *testing.T) {
	t.Setenv("DRIFT_SEED", "42")

	game, err := Load()
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if game.Seed != 42 {
		t.Errorf("Seed = %d, expected 42", game.Seed)
	}
	if game.Tuning.CullDistance != 400 {
		t.Errorf("CullDistance = %v", game.Tuning.CullDistance)
	}
}

func TestLoadJoinsErrors(t *testing.T) {
	t.Setenv("DRIFT_SPAWN_RADIUS_MAX", "500")
	t.Setenv("DRIFT_KEYS_FIRE", "w")
	t.Setenv("DRIFT_SEED", "-1")

	_, err := Load()
	if err == nil {
		t.Fatal("Load() = nil, expected error")
	}
	for _, want := range []string{"cull distance", "DRIFT_SEED"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Load() = %q, missing %q", err, want)
		}
	}
}

func TestNewLogger(t *testing.T) {
	t.Setenv("DRIFT_LOG_LEVEL", "debug")
	var buf strings.Builder

	logger, err := NewLogger(&buf, "test")
	if err != nil {
		t.Fatalf("NewLogger() = %v", err)
	}
	logger.Debug("hello", "key", "value")
	if !strings.Contains(buf.String(), "hello") || !strings.Contains(buf.String(), "key=value") {
		t.Errorf("log output = %q", buf.String())
	}

	t.Setenv("DRIFT_LOG_LEVEL", "loud")
	if _, err := NewLogger(&buf, "test"); err == nil {
		t.Error("NewLogger() accepted unknown level")
	}
}

func TestOpenLogFile(t *testing.T) {
	path := t.TempDir() + "/drift.log"
	t.Setenv("DRIFT_LOG_FILE", path)

	f, err := OpenLogFile()
	if err != nil {
		t.Fatalf("OpenLogFile() = %v", err)
	}
	if _, err := f.Write([]byte("line\n")); err != nil {
		t.Errorf("Write() = %v", err)
	}
	if err := f.Close(); err != nil {
		t.Errorf("Close() = %v", err)
	}
}
