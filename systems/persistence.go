package systems

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/automoto/kinematic-platformer/components"
	"github.com/automoto/kinematic-platformer/tags"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

const progressKey = "progress"

// SavedProgress is the run progress stored on disk.
type SavedProgress struct {
	Level  string  `json:"level"`
	Deaths int     `json:"deaths"`
	Stomps int     `json:"stomps"`
	SpawnX float64 `json:"spawnX"`
	SpawnY float64 `json:"spawnY"`
}

var gdataManager *gdata.Manager

// InitPersistence opens the progress storage for appName.
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return fmt.Errorf("open progress storage: %w", err)
	}
	gdataManager = m
	return nil
}

// LoadProgress reads the saved progress. It returns nil when storage is
// unavailable or nothing was saved yet.
func LoadProgress() (*SavedProgress, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(progressKey)
	if err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var progress SavedProgress
	if err := json.Unmarshal(data, &progress); err != nil {
		return nil, fmt.Errorf("parse progress: %w", err)
	}
	return &progress, nil
}

// SaveProgress writes progress. It is a no-op without storage.
func SaveProgress(progress *SavedProgress) error {
	if gdataManager == nil || progress == nil {
		return nil
	}

	data, err := json.Marshal(progress)
	if err != nil {
		return fmt.Errorf("serialize progress: %w", err)
	}
	if err := gdataManager.SaveItem(progressKey, data); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

// ApplySavedProgress seeds the world's counters and the player's spawn point
// from a saved run of the same level.
func ApplySavedProgress(e *ecs.ECS, saved *SavedProgress) {
	if saved == nil {
		return
	}
	entry, ok := components.Progress.First(e.World)
	if !ok {
		return
	}
	if levelEntry, ok := components.Level.First(e.World); ok {
		if data := components.Level.Get(levelEntry).CurrentLevel; data == nil || data.Name != saved.Level {
			return
		}
	}
	progress := components.Progress.Get(entry)
	progress.Deaths = saved.Deaths
	progress.Stomps = saved.Stomps
	progress.Spawn = dmath.Vec2{X: saved.SpawnX, Y: saved.SpawnY}

	tags.Player.Each(e.World, func(p *donburi.Entry) {
		components.Player.Get(p).Spawn = progress.Spawn
		components.Movement.Get(p).Teleport(progress.Spawn)
	})
}

// UpdatePersistence saves the progress whenever the counters changed.
func UpdatePersistence(e *ecs.ECS) {
	entry, ok := components.Progress.First(e.World)
	if !ok {
		return
	}
	progress := components.Progress.Get(entry)
	if !progress.Dirty || gdataManager == nil {
		return
	}
	progress.Dirty = false

	saved := &SavedProgress{
		Deaths: progress.Deaths,
		Stomps: progress.Stomps,
		SpawnX: progress.Spawn.X,
		SpawnY: progress.Spawn.Y,
	}
	if levelEntry, ok := components.Level.First(e.World); ok {
		if data := components.Level.Get(levelEntry).CurrentLevel; data != nil {
			saved.Level = data.Name
		}
	}
	if err := SaveProgress(saved); err != nil {
		log.Printf("Warning: %v", err)
	}
}
