package components

import (
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

type PlayerData struct {
	// ControlEnabled gates input; it is off while dead and until the
	// respawn sequence has finished.
	ControlEnabled bool
	Dead           bool
	Spawn          dmath.Vec2
	// FlipX mirrors the sprite when facing left.
	FlipX bool
	// Touching holds the hazards in contact during the previous step.
	Touching map[donburi.Entity]bool
}

var Player = donburi.NewComponentType[PlayerData]()
