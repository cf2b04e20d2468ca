package systems

import (
	"github.com/automoto/kinematic-platformer/components"
	cfg "github.com/automoto/kinematic-platformer/config"
	"github.com/automoto/kinematic-platformer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayerIntent advances the jump machine with the ground contact of the
// previous step, then turns the input of this step into a move and jump
// requests. Without control the player only coasts.
func UpdatePlayerIntent(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		movement := components.Movement.Get(e)
		jump := components.Jump.Get(e)
		input := components.Input.Get(e)

		ev := jump.Update(movement.IsGrounded())
		jump.Impulse = ev.Impulse
		if ev.Jumped {
			playSound(ecs.World, cfg.SoundJump)
		}

		if !player.ControlEnabled {
			movement.Move = 0
			return
		}

		movement.Move = 0
		if input.Action(cfg.ActionMoveLeft).Pressed {
			movement.Move--
		}
		if input.Action(cfg.ActionMoveRight).Pressed {
			movement.Move++
		}

		action := input.Action(cfg.ActionJump)
		if action.JustPressed {
			jump.Request()
		} else if action.JustReleased {
			jump.StopJump()
		}
	})
}
