package components

import (
	"github.com/automoto/kinematic-platformer/jump"
	"github.com/automoto/kinematic-platformer/kinematic"
	"github.com/yohamta/donburi"
)

// JumpData drives a character's jump state machine.
type JumpData struct {
	*jump.Machine
	Modifiers kinematic.JumpModifiers
	// Impulse is set for the step in which the takeoff velocity applies.
	Impulse bool
}

var Jump = donburi.NewComponentType[JumpData]()
