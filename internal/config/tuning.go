package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/tomz197/drift/internal/object"
	"github.com/tomz197/drift/internal/random"
)

// Tuning holds every simulation constant. Values are read once at startup.
type Tuning struct {
	Kinematics   object.Kinematics
	CameraGain   float64
	Weapon       object.WeaponSpec
	Spawn        object.SpawnRules
	CullDistance float64 // Asteroids farther than this from the player are removed
}

// DefaultTuning returns the stock game feel.
func DefaultTuning() Tuning {
	return Tuning{
		Kinematics:   object.DefaultKinematics(),
		CameraGain:   object.DefaultCameraGain,
		Weapon:       object.DefaultWeaponSpec(),
		Spawn:        object.DefaultSpawnRules(),
		CullDistance: 400.0,
	}
}

// TuningFromEnv returns DefaultTuning with DRIFT_* overrides applied.
// The result is not validated; call Validate before use.
func TuningFromEnv() (Tuning, error) {
	t := DefaultTuning()
	var errs []error

	float := func(key string, dst *float64) {
		v, err := GetEnvFloat(key, *dst)
		errs = append(errs, err)
		*dst = v
	}
	floatRange := func(prefix string, dst *random.Range) {
		float(prefix+"_MIN", &dst.Min)
		float(prefix+"_MAX", &dst.Max)
	}

	float("DRIFT_ACCEL", &t.Kinematics.Accel)
	float("DRIFT_LINEAR_DAMPING", &t.Kinematics.LinearDamping)
	float("DRIFT_ROT_ACCEL", &t.Kinematics.RotAccel)
	float("DRIFT_ROT_DAMPING", &t.Kinematics.RotDamping)
	float("DRIFT_MAX_ROT_RATE", &t.Kinematics.MaxRotRate)
	float("DRIFT_CAMERA_GAIN", &t.CameraGain)
	float("DRIFT_LASER_SPEED", &t.Weapon.Speed)
	float("DRIFT_LASER_OFFSET", &t.Weapon.MuzzleOffset)
	float("DRIFT_CULL_DISTANCE", &t.CullDistance)
	floatRange("DRIFT_SPAWN_RADIUS", &t.Spawn.Radius)
	floatRange("DRIFT_SPAWN_SPEED", &t.Spawn.Speed)
	floatRange("DRIFT_SPAWN_JITTER", &t.Spawn.Jitter)
	floatRange("DRIFT_SPAWN_SPIN", &t.Spawn.Spin)

	var err error
	t.Weapon.Cooldown, err = GetEnvDuration("DRIFT_LASER_COOLDOWN", t.Weapon.Cooldown)
	errs = append(errs, err)
	t.Weapon.Lifetime, err = GetEnvDuration("DRIFT_LASER_LIFETIME", t.Weapon.Lifetime)
	errs = append(errs, err)
	t.Spawn.Interval, err = GetEnvDuration("DRIFT_SPAWN_INTERVAL", t.Spawn.Interval)
	errs = append(errs, err)
	t.Spawn.InitialTarget, err = GetEnvInt("DRIFT_SPAWN_INITIAL_TARGET", t.Spawn.InitialTarget)
	errs = append(errs, err)

	if err := errors.Join(errs...); err != nil {
		return t, fmt.Errorf("read tuning: %w", err)
	}
	return t, nil
}

// Validate reports every malformed value. An invalid tuning is a startup
// error, never a runtime condition.
func (t Tuning) Validate() error {
	var errs []error

	nonNegative := func(name string, v float64) {
		if math.IsNaN(v) || v < 0 {
			errs = append(errs, fmt.Errorf("%s must be >= 0, got %v", name, v))
		}
	}
	positive := func(name string, v float64) {
		if math.IsNaN(v) || v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be > 0, got %v", name, v))
		}
	}
	ordered := func(name string, r random.Range) {
		if err := r.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}

	nonNegative("accel", t.Kinematics.Accel)
	nonNegative("linear damping", t.Kinematics.LinearDamping)
	nonNegative("rotation accel", t.Kinematics.RotAccel)
	nonNegative("rotation damping", t.Kinematics.RotDamping)
	nonNegative("max rotation rate", t.Kinematics.MaxRotRate)
	nonNegative("camera gain", t.CameraGain)
	nonNegative("laser speed", t.Weapon.Speed)
	nonNegative("laser offset", t.Weapon.MuzzleOffset)
	positive("cull distance", t.CullDistance)

	if t.Weapon.Cooldown < 0 {
		errs = append(errs, fmt.Errorf("laser cooldown must be >= 0, got %v", t.Weapon.Cooldown))
	}
	if t.Weapon.Lifetime <= 0 {
		errs = append(errs, fmt.Errorf("laser lifetime must be > 0, got %v", t.Weapon.Lifetime))
	}
	if t.Spawn.Interval <= 0 {
		errs = append(errs, fmt.Errorf("spawn interval must be > 0, got %v", t.Spawn.Interval))
	}
	if t.Spawn.InitialTarget < 0 {
		errs = append(errs, fmt.Errorf("initial spawn target must be >= 0, got %d", t.Spawn.InitialTarget))
	}
	if t.Spawn.Variants <= 0 {
		errs = append(errs, fmt.Errorf("asteroid variants must be > 0, got %d", t.Spawn.Variants))
	}

	ordered("spawn radius", t.Spawn.Radius)
	ordered("spawn speed", t.Spawn.Speed)
	ordered("spawn jitter", t.Spawn.Jitter)
	ordered("spawn spin", t.Spawn.Spin)

	if t.Spawn.Radius.Min < 0 {
		errs = append(errs, fmt.Errorf("spawn radius must be >= 0, got %v", t.Spawn.Radius.Min))
	}
	// A fresh asteroid must never be culled on the tick it spawns.
	if t.Spawn.Radius.Max >= t.CullDistance {
		errs = append(errs, fmt.Errorf("spawn radius max %v must be below cull distance %v",
			t.Spawn.Radius.Max, t.CullDistance))
	}

	return errors.Join(errs...)
}
