// Package kinematic moves platformer bodies through a world of colliders. It
// integrates velocity, sweeps the body one axis at a time and tracks ground
// contact for the controllers built on top of it.
package kinematic

import (
	"github.com/automoto/kinematic-platformer/shared/gamemath"
	dmath "github.com/yohamta/donburi/features/math"
)

// Bounds is an axis-aligned box in world units, y pointing up.
type Bounds struct {
	Min, Max dmath.Vec2
}

// NewBounds builds bounds from a bottom-left corner and a size.
func NewBounds(x, y, w, h float64) Bounds {
	return Bounds{Min: dmath.Vec2{X: x, Y: y}, Max: dmath.Vec2{X: x + w, Y: y + h}}
}

// Center returns the middle point of the box.
func (b Bounds) Center() dmath.Vec2 {
	return dmath.Vec2{X: (b.Min.X + b.Max.X) / 2, Y: (b.Min.Y + b.Max.Y) / 2}
}

// Size returns width and height.
func (b Bounds) Size() dmath.Vec2 {
	return gamemath.Sub(b.Max, b.Min)
}

// Translate returns the box moved by d.
func (b Bounds) Translate(d dmath.Vec2) Bounds {
	return Bounds{Min: gamemath.Add(b.Min, d), Max: gamemath.Add(b.Max, d)}
}

// Overlaps reports whether the boxes intersect once b is grown by skin on
// every side. Boxes that merely touch count as overlapping.
func (b Bounds) Overlaps(o Bounds, skin float64) bool {
	return b.Min.X-skin <= o.Max.X && b.Max.X+skin >= o.Min.X &&
		b.Min.Y-skin <= o.Max.Y && b.Max.Y+skin >= o.Min.Y
}

// Hit is one contact reported by a cast.
type Hit struct {
	// Normal is the unit surface normal at the contact, pointing away from
	// the surface that was hit.
	Normal dmath.Vec2
	// Distance is how far along the cast the contact happened.
	Distance float64
	// Data is whatever the physics service attached to the other collider.
	Data any
}

// Collider is the physics body a Mover drives. Position is the bottom-left
// corner of the collider bounds.
type Collider interface {
	Position() dmath.Vec2
	SetPosition(p dmath.Vec2)
	Bounds() Bounds
	// Cast sweeps the collider from its current position along direction
	// (unit length) for distance and fills hits with the contacts found, in
	// order of distance. It returns the number of hits written.
	Cast(direction dmath.Vec2, distance float64, hits []Hit) int
}

// HasVelocity is implemented by anything exposing a per-step velocity.
type HasVelocity interface {
	Velocity() dmath.Vec2
}

// HasGroundContact is implemented by anything tracking ground contact.
type HasGroundContact interface {
	IsGrounded() bool
	GroundNormal() dmath.Vec2
}
