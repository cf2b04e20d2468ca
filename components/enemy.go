package components

import (
	"github.com/automoto/kinematic-platformer/patrol"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	PatrolPath string
	// Patrol is created on the first step the enemy has a path to follow.
	Patrol *patrol.Mover
	Dead   bool
	FlipX  bool
}

var Enemy = donburi.NewComponentType[EnemyData]()
