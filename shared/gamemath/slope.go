package gamemath

import (
	dmath "github.com/yohamta/donburi/features/math"
)

// Slope type names as authored on tileset tiles.
const (
	Slope45UpRight = "45_up_right"
	Slope45UpLeft  = "45_up_left"
)

// SlopePolygon returns the counter-clockwise triangle for a slope tile whose
// bottom-left corner is (x, y) in a y-up world. Unknown slope types yield the
// full tile rectangle.
func SlopePolygon(x, y, w, h float64, slopeType string) []dmath.Vec2 {
	switch slopeType {
	case Slope45UpRight:
		// Surface rises from left to right.
		return []dmath.Vec2{{X: x, Y: y}, {X: x + w, Y: y}, {X: x + w, Y: y + h}}
	case Slope45UpLeft:
		// Surface falls from left to right.
		return []dmath.Vec2{{X: x, Y: y}, {X: x + w, Y: y}, {X: x, Y: y + h}}
	default:
		return RectPolygon(x, y, w, h)
	}
}

// RectPolygon returns the counter-clockwise corners of an axis-aligned box.
func RectPolygon(x, y, w, h float64) []dmath.Vec2 {
	return []dmath.Vec2{{X: x, Y: y}, {X: x + w, Y: y}, {X: x + w, Y: y + h}, {X: x, Y: y + h}}
}

// EdgeNormals returns the outward unit normal of every edge of a
// counter-clockwise polygon.
func EdgeNormals(points []dmath.Vec2) []dmath.Vec2 {
	normals := make([]dmath.Vec2, 0, len(points))
	for i := range points {
		a := points[i]
		b := points[(i+1)%len(points)]
		edge := Sub(b, a)
		n := Normalize(dmath.Vec2{X: edge.Y, Y: -edge.X})
		if n.X == 0 && n.Y == 0 {
			continue
		}
		normals = append(normals, n)
	}
	return normals
}
