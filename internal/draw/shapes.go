package draw

import (
	"math"

	"github.com/tomz197/drift/internal/object"
	"github.com/tomz197/drift/internal/physics"
)

// Outlines in local space, Y up, nose along +Y. Sized in world units.
var (
	shipOutline = []physics.Vec2{
		{X: 0, Y: 14},
		{X: -9, Y: -10},
		{X: 0, Y: -5},
		{X: 9, Y: -10},
	}
	flameOutline = []physics.Vec2{
		{X: -4, Y: -8},
		{X: 0, Y: -17},
		{X: 4, Y: -8},
	}

	// One irregular outline per asteroid variant.
	asteroidOutlines = [object.AsteroidVariants][]physics.Vec2{
		ring(18, []float64{1, 0.85, 1.1, 0.9, 1, 0.75, 1.05, 0.95, 0.8}),
		ring(22, []float64{1, 1.1, 0.8, 1, 0.9, 1.1, 0.85, 1, 0.7, 0.95, 1.05}),
		ring(14, []float64{0.9, 1.1, 1, 0.7, 1, 1.1, 0.85}),
	}
)

// AsteroidRadius bounds every asteroid outline.
const AsteroidRadius = 22 * 1.1

// ring builds a closed outline with one vertex per scale factor.
func ring(radius float64, scales []float64) []physics.Vec2 {
	pts := make([]physics.Vec2, len(scales))
	step := 2 * math.Pi / float64(len(scales))
	for i, s := range scales {
		pts[i] = physics.Heading(float64(i)*step, radius*s)
	}
	return pts
}

// shape places a local outline at t and projects it. The result is borrowed
// from the canvas.
func shape(c *Canvas, v View, t object.Transform, outline []physics.Vec2) []Point {
	sin, cos := math.Sincos(t.Rotation)
	pts := c.BorrowPoints(len(outline))
	for i, p := range outline {
		world := physics.Vec2{
			X: p.X*cos - p.Y*sin,
			Y: p.X*sin + p.Y*cos,
		}
		pts[i] = v.Project(t.Position.Add(world))
	}
	return pts
}

// Ship draws the player's ship, with a flame while thrusting.
func Ship(c *Canvas, v View, t object.Transform, thrusting bool) {
	c.DrawPolygon(shape(c, v, t, shipOutline), true)
	if thrusting {
		c.DrawPolygon(shape(c, v, t, flameOutline), false)
	}
}

// Asteroid draws an asteroid outline for its variant.
func Asteroid(c *Canvas, v View, a object.Asteroid) {
	if !v.Visible(a.Position, AsteroidRadius) {
		return
	}
	variant := a.Variant
	if variant < 0 || variant >= len(asteroidOutlines) {
		variant = 0
	}
	c.DrawPolygon(shape(c, v, a.Transform, asteroidOutlines[variant]), false)
}

// laserLength is the drawn length of a bolt in world units.
const laserLength = 8

// Laser draws a projectile as a short streak along its heading.
func Laser(c *Canvas, v View, p object.Projectile) {
	if !v.Visible(p.Position, laserLength) {
		return
	}
	tail := p.Position.Sub(p.Forward().Scale(laserLength))
	c.DrawLine(v.Project(tail), v.Project(p.Position))
}

// starTile is the side of the repeating star pattern in world units.
const starTile = 160

// starPattern is one tile of stars, as offsets inside the tile.
var starPattern = []physics.Vec2{
	{X: 12, Y: 30}, {X: 47, Y: 121}, {X: 83, Y: 64}, {X: 101, Y: 9},
	{X: 139, Y: 97}, {X: 25, Y: 148}, {X: 66, Y: 88}, {X: 151, Y: 41},
	{X: 118, Y: 137}, {X: 5, Y: 77},
}

// Stars draws the background star field, tiled around the origin so that
// motion is visible against it.
func Stars(c *Canvas, v View) {
	hw, hh := v.HalfExtent()
	x0 := math.Floor((v.Center.X-hw)/starTile) * starTile
	y0 := math.Floor((v.Center.Y-hh)/starTile) * starTile

	for ty := y0; ty <= v.Center.Y+hh; ty += starTile {
		for tx := x0; tx <= v.Center.X+hw; tx += starTile {
			for _, s := range starPattern {
				c.Set(v.Project(physics.Vec2{X: tx + s.X, Y: ty + s.Y}))
			}
		}
	}
}
