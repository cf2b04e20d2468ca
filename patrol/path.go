// Package patrol moves a target point back and forth along a path for
// enemies to follow.
package patrol

import (
	"github.com/automoto/kinematic-platformer/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	dmath "github.com/yohamta/donburi/features/math"
)

// Path is a straight patrol segment in world units.
type Path struct {
	Name       string
	Start, End dmath.Vec2
}

// Length returns the distance between the two end points.
func (p Path) Length() float64 {
	return gamemath.Magnitude(gamemath.Sub(p.End, p.Start))
}

// Mover walks a point along a Path at constant speed, turning around at each
// end.
type Mover struct {
	path     Path
	tween    *gween.Tween
	forward  bool
	progress float64
}

// NewMover starts at the path's first point. A path without length or a
// non-positive speed produces a mover that never leaves Start.
func (p Path) NewMover(speed float64) *Mover {
	m := &Mover{path: p, forward: true}
	if length := p.Length(); length > 0 && speed > 0 {
		m.tween = gween.New(0, 1, float32(length/speed), ease.Linear)
	}
	return m
}

// Path returns the path being followed.
func (m *Mover) Path() Path { return m.path }

// Update advances the traversal by dt seconds.
func (m *Mover) Update(dt float64) {
	if m.tween == nil {
		return
	}
	current, finished := m.tween.Update(float32(dt))
	m.progress = float64(current)
	if !m.forward {
		m.progress = 1 - m.progress
	}
	if finished {
		m.forward = !m.forward
		m.tween.Reset()
	}
}

// Position is the current target point.
func (m *Mover) Position() dmath.Vec2 {
	return gamemath.Lerp(m.path.Start, m.path.End, m.progress)
}
