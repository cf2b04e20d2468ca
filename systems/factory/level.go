package factory

import (
	"fmt"
	"io/fs"
	"log"

	"github.com/automoto/kinematic-platformer/archetypes"
	"github.com/automoto/kinematic-platformer/components"
	cfg "github.com/automoto/kinematic-platformer/config"
	"github.com/automoto/kinematic-platformer/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// CreateLevel loads a TMX level from fsys and builds the world around it.
func CreateLevel(ecs *ecs.ECS, c *cfg.Config, fsys fs.FS, path string) (*donburi.Entry, error) {
	data, err := leveldata.LoadCollisionData(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("create level: %w", err)
	}
	return CreateLevelFromData(ecs, c, data)
}

// CreateLevelFromData creates the level singletons, the player and the
// enemies of an already parsed level.
func CreateLevelFromData(ecs *ecs.ECS, c *cfg.Config, data *leveldata.CollisionData) (*donburi.Entry, error) {
	spawn, ok := data.PlayerSpawn()
	if !ok {
		return nil, fmt.Errorf("create level %s: no player spawn points defined in map", data.Name)
	}

	levelEntry := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(levelEntry, components.LevelData{CurrentLevel: data})

	CreateSettings(ecs, c)
	CreateScheduler(ecs)
	CreateAudio(ecs)
	CreateRagdollSpace(ecs, c.Physics.Gravity)
	spaceEntry := CreateSpace(ecs, data, c.Physics.PixelsPerUnit)
	space := components.Space.Get(spaceEntry).Space

	playerFeet := space.ToWorldVec(spawn.X, spawn.Y)
	CreateProgress(ecs, FeetToOrigin(playerFeet, c.Player.Width))
	CreatePlayer(ecs, c, space, playerFeet)
	CreateCamera(ecs, dmath.Vec2{X: spawn.X, Y: spawn.Y})

	for _, e := range data.EnemySpawns {
		CreateEnemy(ecs, c, space, space.ToWorldVec(e.X, e.Y), e.PatrolPath, e.Health)
	}

	if c.Debug.LogEvents {
		log.Printf("level %s loaded: %d solids, %d enemies, %d patrol paths",
			data.Name, len(data.SolidRects), len(data.EnemySpawns), len(data.PatrolPaths))
	}
	return levelEntry, nil
}
