package object

import (
	"time"

	"github.com/tomz197/drift/internal/physics"
)

// Projectile is a laser bolt with a finite lifetime.
type Projectile struct {
	Transform
	Velocity physics.Vec2
	Lifetime Timer // Remaining time to live
}

// Advance moves the projectile and counts its lifetime down.
// Returns true once the lifetime is spent and the projectile must be removed.
func (p *Projectile) Advance(dt time.Duration) (expired bool) {
	p.Position = p.Position.Add(p.Velocity.Scale(dt.Seconds()))
	return p.Lifetime.Tick(dt)
}
