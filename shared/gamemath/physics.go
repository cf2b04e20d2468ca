package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// Add returns a + b.
func Add(a, b dmath.Vec2) dmath.Vec2 {
	return dmath.Vec2{X: a.X + b.X, Y: a.Y + b.Y}
}

// Sub returns a - b.
func Sub(a, b dmath.Vec2) dmath.Vec2 {
	return dmath.Vec2{X: a.X - b.X, Y: a.Y - b.Y}
}

// Scale returns v * s.
func Scale(v dmath.Vec2, s float64) dmath.Vec2 {
	return dmath.Vec2{X: v.X * s, Y: v.Y * s}
}

// Dot returns the dot product of a and b.
func Dot(a, b dmath.Vec2) float64 {
	return a.X*b.X + a.Y*b.Y
}

// Magnitude returns the euclidean length of v.
func Magnitude(v dmath.Vec2) float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns v scaled to unit length. Vectors too short to carry a
// direction come back as the zero vector.
func Normalize(v dmath.Vec2) dmath.Vec2 {
	m := Magnitude(v)
	if m < 1e-9 {
		return dmath.Vec2{}
	}
	return dmath.Vec2{X: v.X / m, Y: v.Y / m}
}

// Tangent returns the surface direction for a ground normal, pointing to
// positive x on flat ground: (n.y, -n.x).
func Tangent(normal dmath.Vec2) dmath.Vec2 {
	return dmath.Vec2{X: normal.Y, Y: -normal.X}
}

// ClampFloat constrains a value to the range [min, max].
func ClampFloat(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Lerp interpolates between a and b by t in [0, 1].
func Lerp(a, b dmath.Vec2, t float64) dmath.Vec2 {
	t = ClampFloat(t, 0, 1)
	return dmath.Vec2{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
}
