package object

import (
	"time"

	"github.com/tomz197/drift/internal/physics"
)

// DefaultCameraGain scales the distance term of the follow correction.
const DefaultCameraGain = 0.01

// Camera trails a target with a lag that shrinks super-linearly with distance.
type Camera struct {
	Transform
	Gain float64
}

// NewCamera creates a camera at the origin.
func NewCamera(gain float64) *Camera {
	return &Camera{Gain: gain}
}

// Follow moves the camera toward target: the correction strength is
// (distance*Gain)², so far targets are caught quickly and near ones barely
// move. The step is not clamped and may overshoot on a very large dt.
func (c *Camera) Follow(target physics.Vec2, dt time.Duration) {
	diff := target.Sub(c.Position)
	strength := diff.Len() * c.Gain
	strength *= strength
	c.Position = c.Position.Add(diff.Scale(strength * dt.Seconds()))
}
