package systems

import (
	"github.com/automoto/kinematic-platformer/components"
	"github.com/automoto/kinematic-platformer/kinematic"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// facingDeadzone keeps tiny stick input from flipping the sprite.
const facingDeadzone = 0.01

// UpdateMovement turns each character's intent into velocity and resolves
// the step against the level.
func UpdateMovement(ecs *ecs.ECS) {
	dt := settingsOf(ecs.World).Physics.FixedStep

	components.Movement.Each(ecs.World, func(e *donburi.Entry) {
		movement := components.Movement.Get(e)
		if !movement.Enabled || movement.Mover == nil {
			return
		}

		intent := kinematic.Intent{Move: dmath.Vec2{X: movement.Move}}
		var mods kinematic.JumpModifiers
		var jump *components.JumpData
		if e.HasComponent(components.Jump) {
			jump = components.Jump.Get(e)
			intent.Jump = jump.Impulse
			intent.StopJump = jump.StopPending()
			mods = jump.Modifiers
		}

		if movement.ComputeVelocity(intent, mods) && jump != nil {
			jump.ClearStop()
		}
		updateFacing(e, movement.Move)

		movement.Step(dt)
	})
}

func updateFacing(e *donburi.Entry, move float64) {
	var flip *bool
	switch {
	case e.HasComponent(components.Player):
		flip = &components.Player.Get(e).FlipX
	case e.HasComponent(components.Enemy):
		flip = &components.Enemy.Get(e).FlipX
	default:
		return
	}
	if move > facingDeadzone {
		*flip = false
	} else if move < -facingDeadzone {
		*flip = true
	}
}
