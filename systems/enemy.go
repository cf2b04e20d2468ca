package systems

import (
	"github.com/automoto/kinematic-platformer/components"
	"github.com/automoto/kinematic-platformer/shared/gamemath"
	"github.com/automoto/kinematic-platformer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEnemyIntent steers each enemy toward its patrol target.
func UpdateEnemyIntent(ecs *ecs.ECS) {
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		movement := components.Movement.Get(e)
		if enemy.Dead || !movement.Enabled || enemy.Patrol == nil {
			movement.Move = 0
			return
		}
		target := enemy.Patrol.Position()
		center := components.Object.Get(e).Bounds().Center()
		movement.Move = gamemath.ClampFloat(target.X-center.X, -1, 1)
	})
}
