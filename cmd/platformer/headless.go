package main

import (
	"log"

	"github.com/automoto/kinematic-platformer/components"
	cfg "github.com/automoto/kinematic-platformer/config"
	"github.com/automoto/kinematic-platformer/scenes"
	"github.com/automoto/kinematic-platformer/tags"
)

// logEvery is how many steps pass between two state lines.
const logEvery = 30

// demoInput walks right and hops once per second.
func demoInput(step int) [cfg.ActionCount]bool {
	var current [cfg.ActionCount]bool
	current[cfg.ActionMoveRight] = true
	current[cfg.ActionJump] = step%60 < 10
	return current
}

func runHeadless(scene *scenes.PlatformerScene, watcher *cfg.Watcher, steps int) {
	for i := 0; i < steps; i++ {
		pollWatcher(watcher, scene)
		scene.SetInput(demoInput(i))
		scene.Update()

		if i%logEvery == 0 || i == steps-1 {
			logPlayer(scene, i)
		}
	}
}

func logPlayer(scene *scenes.PlatformerScene, step int) {
	e, ok := tags.Player.First(scene.ECS().World)
	if !ok {
		log.Printf("step %d: no player", step)
		return
	}
	movement := components.Movement.Get(e)
	jump := components.Jump.Get(e)
	player := components.Player.Get(e)
	pos := movement.Position()
	v := movement.Velocity()
	log.Printf("step %d: pos=(%.3f, %.3f) vel=(%.3f, %.3f) grounded=%t jump=%s dead=%t",
		step, pos.X, pos.Y, v.X, v.Y, movement.IsGrounded(), jump.State(), player.Dead)
}
