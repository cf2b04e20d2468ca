package tags

import (
	"github.com/automoto/kinematic-platformer/level"
	"github.com/yohamta/donburi"
)

var (
	Player = donburi.NewTag().SetName("Player")
	Enemy  = donburi.NewTag().SetName("Enemy")
)

// Resolv tags for physics collision
const (
	ResolvSolid    = level.TagSolid
	ResolvRamp     = level.TagRamp
	ResolvPlayer   = level.TagPlayer
	ResolvEnemy    = level.TagEnemy
	ResolvDeadZone = level.TagDeadZone
)
