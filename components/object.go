package components

import (
	"github.com/automoto/kinematic-platformer/level"
	"github.com/yohamta/donburi"
)

// ObjectData is the entity's collider in the level space.
type ObjectData struct {
	*level.Collider
}

var Object = donburi.NewComponentType[ObjectData]()
