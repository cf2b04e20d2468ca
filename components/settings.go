package components

import (
	cfg "github.com/automoto/kinematic-platformer/config"
	"github.com/yohamta/donburi"
)

// SettingsData holds the configuration of this world (singleton component).
// Entities copy their tunables from it when they spawn or respawn.
type SettingsData struct {
	*cfg.Config
}

var Settings = donburi.NewComponentType[SettingsData]()
