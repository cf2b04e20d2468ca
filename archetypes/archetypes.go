package archetypes

import (
	"github.com/automoto/kinematic-platformer/components"
	cfg "github.com/automoto/kinematic-platformer/config"
	"github.com/automoto/kinematic-platformer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Movement,
		components.Jump,
		components.Input,
		components.Health,
		components.Animation,
	)
	// Enemy health is optional; spawners pass components.Health when the
	// enemy has a counter.
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Object,
		components.Movement,
		components.Animation,
	)
	Level = newArchetype(
		components.Level,
	)
	Space = newArchetype(
		components.Space,
	)
	RagdollSpace = newArchetype(
		components.RagdollSpace,
	)
	Scheduler = newArchetype(
		components.Scheduler,
	)
	Audio = newArchetype(
		components.Audio,
	)
	Progress = newArchetype(
		components.Progress,
	)
	Settings = newArchetype(
		components.Settings,
	)
	Camera = newArchetype(
		components.Camera,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.DefaultLayer,
		append(a.components, cs...)...,
	))
	return e
}
