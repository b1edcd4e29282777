package draw

import (
	"math"

	"github.com/tomz197/drift/internal/physics"
)

// View projects world coordinates (Y up) onto a canvas (Y down), centred on
// the camera.
type View struct {
	Center physics.Vec2 // Camera position
	Zoom   float64      // Logical pixels per world unit
	Width  float64      // Logical canvas width
	Height float64      // Logical canvas height
}

// NewView creates a view matching the canvas's logical size.
func NewView(c *Canvas, center physics.Vec2, zoom float64) View {
	return View{
		Center: center,
		Zoom:   zoom,
		Width:  c.LogicalWidth(),
		Height: c.LogicalHeight(),
	}
}

// Project maps a world position to canvas space.
func (v View) Project(p physics.Vec2) Point {
	return Point{
		X: v.Width/2 + (p.X-v.Center.X)*v.Zoom,
		Y: v.Height/2 - (p.Y-v.Center.Y)*v.Zoom,
	}
}

// HalfExtent returns the half width and height of the view in world units.
func (v View) HalfExtent() (float64, float64) {
	return v.Width / 2 / v.Zoom, v.Height / 2 / v.Zoom
}

// Visible reports whether a circle of the given world radius around p
// overlaps the view.
func (v View) Visible(p physics.Vec2, radius float64) bool {
	hw, hh := v.HalfExtent()
	return math.Abs(p.X-v.Center.X) <= hw+radius && math.Abs(p.Y-v.Center.Y) <= hh+radius
}
