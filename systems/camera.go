package systems

import (
	"math"

	"github.com/automoto/kinematic-platformer/components"
	"github.com/automoto/kinematic-platformer/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera eases the camera toward the player, keeping the view inside
// the level. A dead player is not followed until it respawns.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok || components.Player.Get(playerEntry).Dead {
		return
	}
	space := spaceOf(e.World)
	if space == nil {
		return
	}
	c := settingsOf(e.World)

	center := components.Object.Get(playerEntry).Bounds().Center()
	targetX := center.X * space.PixelsPerUnit()
	targetY := center.Y * space.PixelsPerUnit()

	if levelEntry, ok := components.Level.First(e.World); ok {
		if data := components.Level.Get(levelEntry).CurrentLevel; data != nil {
			targetX = clampView(targetX, float64(c.Width), float64(data.MapWidth))
			targetY = clampView(targetY, float64(c.Height), float64(data.MapHeight))
		}
	}

	camera.Position.X += (targetX - camera.Position.X) * c.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * c.Camera.FollowSmoothing
}

// clampView keeps a view of size view centered on target inside [0, level].
// Levels smaller than the view are centered.
func clampView(target, view, level float64) float64 {
	if level <= view {
		return level / 2
	}
	return math.Max(view/2, math.Min(level-view/2, target))
}
