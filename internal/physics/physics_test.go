package physics

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestHeading(t *testing.T) {
	tests := []struct {
		name   string
		angle  float64
		length float64
		want   Vec2
	}{
		{name: "zero_points_up", angle: 0, length: 1, want: Vec2{X: 0, Y: 1}},
		{name: "quarter_turn_points_left", angle: math.Pi / 2, length: 1, want: Vec2{X: -1, Y: 0}},
		{name: "half_turn_points_down", angle: math.Pi, length: 2, want: Vec2{X: 0, Y: -2}},
		{name: "negative_quarter_points_right", angle: -math.Pi / 2, length: 3, want: Vec2{X: 3, Y: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Heading(tt.angle, tt.length)
			if !near(got.X, tt.want.X) || !near(got.Y, tt.want.Y) {
				t.Errorf("Heading(%v, %v) = %v, expected %v", tt.angle, tt.length, got, tt.want)
			}
		})
	}
}

func TestVec2Arithmetic(t *testing.T) {
	a := Vec2{X: 3, Y: 4}
	b := Vec2{X: 1, Y: -2}

	if got := a.Add(b); got != (Vec2{X: 4, Y: 2}) {
		t.Errorf("Add() = %v", got)
	}
	if got := a.Sub(b); got != (Vec2{X: 2, Y: 6}) {
		t.Errorf("Sub() = %v", got)
	}
	if got := a.Scale(0.5); got != (Vec2{X: 1.5, Y: 2}) {
		t.Errorf("Scale() = %v", got)
	}
	if got := a.Len(); got != 5 {
		t.Errorf("Len() = %v, expected 5", got)
	}
	if got := a.LenSquared(); got != 25 {
		t.Errorf("LenSquared() = %v, expected 25", got)
	}
	if got := a.Distance(Vec2{}); got != 5 {
		t.Errorf("Distance() = %v, expected 5", got)
	}
}

func TestDistanceSquared(t *testing.T) {
	if got := DistanceSquared(1, 1, 4, 5); got != 25 {
		t.Errorf("DistanceSquared() = %v, expected 25", got)
	}
	if got := Distance(1, 1, 4, 5); got != 5 {
		t.Errorf("Distance() = %v, expected 5", got)
	}
}
