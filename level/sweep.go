package level

import (
	"math"

	"github.com/automoto/kinematic-platformer/kinematic"
	"github.com/automoto/kinematic-platformer/shared/gamemath"
	dmath "github.com/yohamta/donburi/features/math"
)

var boxAxes = []dmath.Vec2{{X: 0, Y: 1}, {X: 1, Y: 0}}

func project(points []dmath.Vec2, axis dmath.Vec2) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, p := range points {
		d := gamemath.Dot(p, axis)
		lo = math.Min(lo, d)
		hi = math.Max(hi, d)
	}
	return lo, hi
}

// sweepBox casts box along direction (unit length) for at most distance
// against a static convex polygon. It reports the travel distance at first
// contact and the normal of the surface touched, pointing towards the box.
// A box already overlapping the polygon hits at distance 0, but only while
// the motion pushes it further in.
func sweepBox(box kinematic.Bounds, direction dmath.Vec2, distance float64, polygon, normals []dmath.Vec2) (kinematic.Hit, bool) {
	corners := gamemath.RectPolygon(box.Min.X, box.Min.Y, box.Max.X-box.Min.X, box.Max.Y-box.Min.Y)

	axes := make([]dmath.Vec2, 0, len(boxAxes)+len(normals))
	axes = append(axes, boxAxes...)
	axes = append(axes, normals...)

	enter, exit := math.Inf(-1), math.Inf(1)
	var enterNormal dmath.Vec2

	minDepth := math.Inf(1)
	var depthNormal dmath.Vec2

	for _, axis := range axes {
		bLo, bHi := project(corners, axis)
		pLo, pHi := project(polygon, axis)
		speed := gamemath.Dot(direction, axis)

		if bHi <= pLo || bLo >= pHi {
			// Separated on this axis right now.
			if math.Abs(speed) < 1e-12 {
				return kinematic.Hit{}, false
			}
		} else {
			depth, sign := bHi-pLo, -1.0
			if d := pHi - bLo; d < depth {
				depth, sign = d, 1.0
			}
			if depth < minDepth {
				minDepth = depth
				depthNormal = gamemath.Scale(axis, sign)
			}
		}

		if math.Abs(speed) < 1e-12 {
			continue
		}

		t0 := (pLo - bHi) / speed
		t1 := (pHi - bLo) / speed
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		if t0 > enter {
			enter = t0
			if speed > 0 {
				enterNormal = gamemath.Scale(axis, -1)
			} else {
				enterNormal = axis
			}
		}
		exit = math.Min(exit, t1)
		if enter >= exit {
			return kinematic.Hit{}, false
		}
	}

	if enter < 0 {
		// Started inside.
		if exit <= 0 || gamemath.Dot(direction, depthNormal) >= 0 {
			return kinematic.Hit{}, false
		}
		return kinematic.Hit{Normal: depthNormal, Distance: 0}, true
	}
	if enter > distance {
		return kinematic.Hit{}, false
	}
	return kinematic.Hit{Normal: enterNormal, Distance: enter}, true
}
