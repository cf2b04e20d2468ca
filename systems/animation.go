package systems

import (
	"math"

	"github.com/automoto/kinematic-platformer/components"
	"github.com/automoto/kinematic-platformer/kinematic"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAnimation forwards movement state to the animator parameters.
func UpdateAnimation(ecs *ecs.ECS) {
	components.Animation.Each(ecs.World, func(e *donburi.Entry) {
		anim := components.Animation.Get(e)

		if e.HasComponent(components.Movement) {
			movement := components.Movement.Get(e)
			if movement.Mover != nil {
				animateMotion(anim, movement, movement, movement.Tuning().MaxSpeed)
			}
		}

		if e.HasComponent(components.Player) {
			anim.FlipX = components.Player.Get(e).FlipX
		} else if e.HasComponent(components.Enemy) {
			anim.FlipX = components.Enemy.Get(e).FlipX
		}
	})
}

// animateMotion sets the grounded flag and the speed relative to maxSpeed.
func animateMotion(anim *components.AnimationData, body kinematic.HasVelocity, ground kinematic.HasGroundContact, maxSpeed float64) {
	anim.SetBool(components.ParamGrounded, ground.IsGrounded())
	velocityX := 0.0
	if maxSpeed > 0 {
		velocityX = math.Abs(body.Velocity().X) / maxSpeed
	}
	anim.SetFloat(components.ParamVelocityX, velocityX)
}
