package components

import (
	"github.com/automoto/kinematic-platformer/kinematic"
	"github.com/automoto/kinematic-platformer/level"
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
)

// MovementData is the shared movement state of every character.
type MovementData struct {
	*kinematic.Mover
	// Move is the direction requested for the next step, x in [-1, 1].
	Move float64
	// Enabled is false once the character no longer simulates, e.g. a dead
	// enemy handed over to a ragdoll body.
	Enabled bool
}

var Movement = donburi.NewComponentType[MovementData]()

// SpaceData is the level physics query service (singleton component).
type SpaceData struct {
	*level.Space
}

var Space = donburi.NewComponentType[SpaceData]()

// RagdollSpaceData is the free-body simulation used for corpses (singleton
// component).
type RagdollSpaceData struct {
	*cp.Space
}

var RagdollSpace = donburi.NewComponentType[RagdollSpaceData]()
