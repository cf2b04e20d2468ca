package kinematic

import (
	"github.com/automoto/kinematic-platformer/shared/gamemath"
	dmath "github.com/yohamta/donburi/features/math"
)

// Integrator applies gravity and the requested horizontal velocity.
type Integrator struct {
	Gravity dmath.Vec2
}

// NewIntegrator returns an integrator pulling with the given gravity.
func NewIntegrator(gravity dmath.Vec2) Integrator {
	return Integrator{Gravity: gravity}
}

// Integrate returns velocity after dt seconds. Falling bodies get the
// gravity modifier, rising ones plain gravity. Horizontal velocity snaps to
// target.X.
func (in Integrator) Integrate(velocity, target dmath.Vec2, gravityModifier, dt float64) dmath.Vec2 {
	if velocity.Y < 0 {
		velocity = gamemath.Add(velocity, gamemath.Scale(in.Gravity, gravityModifier*dt))
	} else {
		velocity = gamemath.Add(velocity, gamemath.Scale(in.Gravity, dt))
	}
	velocity.X = target.X
	return velocity
}
