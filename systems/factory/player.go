package factory

import (
	"github.com/automoto/kinematic-platformer/archetypes"
	"github.com/automoto/kinematic-platformer/components"
	cfg "github.com/automoto/kinematic-platformer/config"
	"github.com/automoto/kinematic-platformer/jump"
	"github.com/automoto/kinematic-platformer/kinematic"
	"github.com/automoto/kinematic-platformer/level"
	"github.com/automoto/kinematic-platformer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// CreatePlayer spawns the player with its feet centered on spawn.
func CreatePlayer(ecs *ecs.ECS, c *cfg.Config, space *level.Space, spawn dmath.Vec2) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	origin := FeetToOrigin(spawn, c.Player.Width)
	collider := space.NewCollider(
		kinematic.NewBounds(origin.X, origin.Y, c.Player.Width, c.Player.Height),
		[]string{tags.ResolvSolid, tags.ResolvEnemy},
		tags.ResolvPlayer,
	)
	collider.Object().Data = player
	components.Object.SetValue(player, components.ObjectData{Collider: collider})

	components.Movement.SetValue(player, components.MovementData{
		Mover:   NewPlayerMover(c, collider),
		Enabled: true,
	})
	components.Jump.SetValue(player, components.JumpData{
		Machine:   jump.NewMachine(),
		Modifiers: c.Player.JumpModifiers(),
	})
	components.Player.SetValue(player, components.PlayerData{
		ControlEnabled: true,
		Spawn:          origin,
		Touching:       map[donburi.Entity]bool{},
	})
	components.Health.SetValue(player, components.NewHealth(c.Player.Health))
	components.Animation.SetValue(player, components.NewAnimation())

	return player
}

// NewPlayerMover builds a Mover with the current player tunables.
func NewPlayerMover(c *cfg.Config, collider kinematic.Collider) *kinematic.Mover {
	return kinematic.NewMover(collider,
		c.Physics.Integrator(),
		c.Physics.Settings(),
		c.Player.Tuning(c.Physics.MinGroundNormalY),
	)
}

// FeetToOrigin converts a feet position to the bottom-left corner of a box
// of the given width.
func FeetToOrigin(feet dmath.Vec2, width float64) dmath.Vec2 {
	return dmath.Vec2{X: feet.X - width/2, Y: feet.Y}
}
