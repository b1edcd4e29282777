package object

import (
	"time"

	"github.com/tomz197/drift/internal/physics"
)

// WeaponSpec holds the laser constants.
type WeaponSpec struct {
	Cooldown     time.Duration // Minimum time between shots
	Speed        float64       // Muzzle speed added to the ship's velocity
	Lifetime     time.Duration // Projectile time to live
	MuzzleOffset float64       // Distance ahead of the ship where shots appear
}

// DefaultWeaponSpec returns the stock laser.
func DefaultWeaponSpec() WeaponSpec {
	return WeaponSpec{
		Cooldown:     200 * time.Millisecond,
		Speed:        200.0,
		Lifetime:     5 * time.Second,
		MuzzleOffset: 30.0,
	}
}

// Weapon gates firing behind a cooldown.
type Weapon struct {
	Spec     WeaponSpec
	Cooldown Timer
}

// NewWeapon creates a weapon that is ready to fire.
func NewWeapon(spec WeaponSpec) Weapon {
	return Weapon{
		Spec:     spec,
		Cooldown: NewReadyTimer(spec.Cooldown),
	}
}

// Update counts the cooldown down by dt and, if the trigger is held and the
// weapon is ready, fires one projectile from the shooter into spawner.
// Returns true if a shot was fired. Firing on cooldown is a no-op.
func (w *Weapon) Update(dt time.Duration, trigger bool, shooter Transform, shooterVelocity physics.Vec2, spawner Spawner) bool {
	ready := w.Cooldown.Tick(dt)
	if !trigger || !ready || spawner == nil {
		return false
	}
	w.Cooldown.Reset()

	forward := shooter.Forward()
	spawner.SpawnProjectile(Projectile{
		Transform: Transform{
			Position: shooter.Position.Add(forward.Scale(w.Spec.MuzzleOffset)),
			Rotation: shooter.Rotation,
		},
		// Muzzle speed is on top of the ship's own velocity.
		Velocity: shooterVelocity.Add(forward.Scale(w.Spec.Speed)),
		Lifetime: NewTimer(w.Spec.Lifetime),
	})
	return true
}
