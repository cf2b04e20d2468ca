package components

import (
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
)

// CorpseData marks a dead enemy whose position is driven by a free body
// instead of its Mover. The entity is removed once it falls out of the level.
type CorpseData struct {
	Body *cp.Body
}

var Corpse = donburi.NewComponentType[CorpseData]()
