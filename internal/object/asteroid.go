package object

import (
	"math"
	"time"

	"github.com/tomz197/drift/internal/physics"
)

// AsteroidVariants is the number of cosmetic asteroid shapes.
const AsteroidVariants = 3

// Asteroid is a drifting, spinning rock.
type Asteroid struct {
	Transform
	Velocity physics.Vec2
	Spin     float64 // Angular velocity, rad/s
	Variant  int     // Cosmetic shape index in [0, AsteroidVariants)
}

// NewAsteroidAround places an asteroid on a ring around center, heading
// roughly back toward it.
func NewAsteroidAround(center physics.Vec2, rng Sampler, rules SpawnRules) Asteroid {
	offsetAngle := rng.Angle()
	radius := rng.In(rules.Radius)
	spin := rng.In(rules.Spin)
	heading := offsetAngle + math.Pi + rng.In(rules.Jitter)
	speed := rng.In(rules.Speed)

	variants := rules.Variants
	if variants <= 0 {
		variants = AsteroidVariants
	}

	return Asteroid{
		Transform: Transform{
			Position: center.Add(physics.Heading(offsetAngle, radius)),
		},
		Velocity: physics.Heading(heading, speed),
		Spin:     spin,
		Variant:  rng.IntN(variants),
	}
}

// Advance drifts and spins the asteroid by dt.
func (a *Asteroid) Advance(dt time.Duration) {
	secs := dt.Seconds()
	a.Rotation += a.Spin * secs
	a.Position = a.Position.Add(a.Velocity.Scale(secs))
}
