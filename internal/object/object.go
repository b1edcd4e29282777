// Package object defines the simulated entity kinds (player ship, camera,
// asteroids, projectiles) and the per-tick numeric steps that advance them.
package object

import (
	"github.com/tomz197/drift/internal/physics"
	"github.com/tomz197/drift/internal/random"
)

// Transform is an entity's placement in the world.
type Transform struct {
	Position physics.Vec2
	Rotation float64 // Radians, 0 = pointing up, grows counter-clockwise
}

// Forward returns the unit vector the transform is facing.
func (t Transform) Forward() physics.Vec2 {
	return physics.Heading(t.Rotation, 1)
}

// Controls is the directional input held during a tick.
type Controls struct {
	RotateLeft    bool
	RotateRight   bool
	ThrustForward bool
	ThrustBack    bool
}

// Sampler draws the random values used when placing new entities.
// *random.Source satisfies it.
type Sampler interface {
	In(r random.Range) float64
	Angle() float64
	IntN(n int) int
}

// Spawner accepts entities created during a tick.
type Spawner interface {
	SpawnProjectile(p Projectile)
}

// axis folds a pair of opposing inputs into -1, 0 or +1 and reports whether
// either was held.
func axis(positive, negative bool) (dir float64, held bool) {
	if positive {
		dir++
	}
	if negative {
		dir--
	}
	return dir, positive || negative
}
