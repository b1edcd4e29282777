package object

import (
	"time"

	"github.com/tomz197/drift/internal/physics"
)

// Kinematics holds the ship handling constants.
type Kinematics struct {
	Accel         float64 // Thrust acceleration, units/s²
	LinearDamping float64 // Fraction of velocity shed per second without thrust
	RotAccel      float64 // Angular acceleration, rad/s²
	RotDamping    float64 // Fraction of angular rate shed per second without rotation input
	MaxRotRate    float64 // Angular rate bound, rad/s
}

// DefaultKinematics returns the stock ship handling.
func DefaultKinematics() Kinematics {
	return Kinematics{
		Accel:         50.0,
		LinearDamping: 0.2,
		RotAccel:      2.0,
		RotDamping:    0.5,
		MaxRotRate:    2.5,
	}
}

// Player is the ship steered by the input snapshot.
// Exactly one exists while the simulation is active.
type Player struct {
	Transform
	Velocity    physics.Vec2
	AngularRate float64 // rad/s, positive turns left
	Weapon      Weapon
}

// NewPlayer creates a ship at rest at the origin, facing up.
func NewPlayer(weapon WeaponSpec) *Player {
	return &Player{
		Weapon: NewWeapon(weapon),
	}
}

// Integrate advances the ship by dt: rotation first, then velocity and
// position along the updated heading.
func (p *Player) Integrate(dt time.Duration, c Controls, k Kinematics) {
	secs := dt.Seconds()
	p.rotate(secs, c, k)
	p.translate(secs, c, k)
}

func (p *Player) rotate(secs float64, c Controls, k Kinematics) {
	dir, held := axis(c.RotateLeft, c.RotateRight)
	if held {
		// Both keys held counts as input: damping is skipped and the
		// accelerations cancel.
		p.AngularRate += dir * k.RotAccel * secs
		if p.AngularRate > k.MaxRotRate {
			p.AngularRate = k.MaxRotRate
		} else if p.AngularRate < -k.MaxRotRate {
			p.AngularRate = -k.MaxRotRate
		}
	} else {
		p.AngularRate -= p.AngularRate * k.RotDamping * secs
	}

	p.Rotation += p.AngularRate * secs
}

func (p *Player) translate(secs float64, c Controls, k Kinematics) {
	dir, held := axis(c.ThrustForward, c.ThrustBack)
	if held {
		p.Velocity = p.Velocity.Add(p.Forward().Scale(dir * k.Accel * secs))
	} else {
		p.Velocity = p.Velocity.Sub(p.Velocity.Scale(k.LinearDamping * secs))
	}

	p.Position = p.Position.Add(p.Velocity.Scale(secs))
}
