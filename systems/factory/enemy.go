package factory

import (
	"github.com/automoto/kinematic-platformer/archetypes"
	"github.com/automoto/kinematic-platformer/components"
	cfg "github.com/automoto/kinematic-platformer/config"
	"github.com/automoto/kinematic-platformer/kinematic"
	"github.com/automoto/kinematic-platformer/level"
	"github.com/automoto/kinematic-platformer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// CreateEnemy spawns an enemy with its feet centered on spawn. health
// overrides the configured health when positive; an enemy left with no
// health at all dies on the first stomp.
func CreateEnemy(ecs *ecs.ECS, c *cfg.Config, space *level.Space, spawn dmath.Vec2, patrolPath string, health int) *donburi.Entry {
	if health <= 0 {
		health = c.Enemy.Health
	}

	var enemy *donburi.Entry
	if health > 0 {
		enemy = archetypes.Enemy.Spawn(ecs, components.Health)
		components.Health.SetValue(enemy, components.NewHealth(health))
	} else {
		enemy = archetypes.Enemy.Spawn(ecs)
	}

	origin := FeetToOrigin(spawn, c.Enemy.Width)
	collider := space.NewCollider(
		kinematic.NewBounds(origin.X, origin.Y, c.Enemy.Width, c.Enemy.Height),
		[]string{tags.ResolvSolid},
		tags.ResolvEnemy,
	)
	collider.Object().Data = enemy
	components.Object.SetValue(enemy, components.ObjectData{Collider: collider})

	components.Movement.SetValue(enemy, components.MovementData{
		Mover: kinematic.NewMover(collider,
			c.Physics.Integrator(),
			c.Physics.Settings(),
			c.Enemy.Tuning(c.Physics.MinGroundNormalY),
		),
		Enabled: true,
	})
	components.Enemy.SetValue(enemy, components.EnemyData{PatrolPath: patrolPath})
	components.Animation.SetValue(enemy, components.NewAnimation())

	return enemy
}
