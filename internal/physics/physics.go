// Package physics provides the 2D vector type and distance utilities shared by
// the simulation.
package physics

import "math"

// Vec2 is a 2D vector in world units. World Y points up.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v * f.
func (v Vec2) Scale(f float64) Vec2 {
	return Vec2{X: v.X * f, Y: v.Y * f}
}

// Len returns the magnitude of v.
func (v Vec2) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// LenSquared returns the squared magnitude of v.
// Use this when comparing lengths to avoid the sqrt cost.
func (v Vec2) LenSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Distance returns the Euclidean distance between v and o.
func (v Vec2) Distance(o Vec2) float64 {
	return Distance(v.X, v.Y, o.X, o.Y)
}

// Heading returns the vector of the given length pointing along angle.
// Angle zero points up the Y axis and angles grow counter-clockwise, so
// the unit heading is (-sin(angle), cos(angle)).
func Heading(angle, length float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{X: -sin * length, Y: cos * length}
}

// Distance calculates the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}

// DistanceSquared calculates the squared distance between two points.
// Use this when comparing distances to avoid the sqrt cost.
func DistanceSquared(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}
