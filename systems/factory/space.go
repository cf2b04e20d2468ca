package factory

import (
	"github.com/automoto/kinematic-platformer/archetypes"
	"github.com/automoto/kinematic-platformer/components"
	cfg "github.com/automoto/kinematic-platformer/config"
	"github.com/automoto/kinematic-platformer/level"
	"github.com/automoto/kinematic-platformer/shared/leveldata"
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace builds the level physics space with all static geometry.
func CreateSpace(ecs *ecs.ECS, data *leveldata.CollisionData, pixelsPerUnit float64) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	components.Space.SetValue(space, components.SpaceData{
		Space: level.NewSpaceFromLevel(data, pixelsPerUnit),
	})
	return space
}

// CreateRagdollSpace builds the free-body space corpses fall through.
func CreateRagdollSpace(ecs *ecs.ECS, gravity cfg.Vec2) *donburi.Entry {
	entry := archetypes.RagdollSpace.Spawn(ecs)
	space := cp.NewSpace()
	space.SetGravity(cp.Vector{X: gravity.X, Y: gravity.Y})
	components.RagdollSpace.SetValue(entry, components.RagdollSpaceData{Space: space})
	return entry
}
