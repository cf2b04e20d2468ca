package components

import (
	"github.com/automoto/kinematic-platformer/shared/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	CurrentLevel *leveldata.CollisionData
}

var Level = donburi.NewComponentType[LevelData]()
