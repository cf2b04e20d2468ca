// Package leveldata parses TMX levels into plain collision and spawn data.
// Coordinates are pixels with the origin at the bottom-left corner of the map
// and y pointing up; Tiled's y-down values are flipped on load.
package leveldata

import dmath "github.com/yohamta/donburi/features/math"

// CollisionData holds everything the simulation needs from a TMX level.
type CollisionData struct {
	Name        string
	SolidRects  []SolidRect
	DeadZones   []Rect
	SpawnPoints []SpawnPoint
	EnemySpawns []EnemySpawn
	PatrolPaths map[string]PatrolPath
	MapWidth    int
	MapHeight   int
	TileWidth   int
	TileHeight  int
}

// Rect is an axis-aligned area given by its bottom-left corner.
type Rect struct {
	X, Y, W, H float64
}

// SolidRect represents a solid collision tile.
type SolidRect struct {
	Rect
	SlopeType string // "", "45_up_right", "45_up_left"
}

// SpawnPoint is where a player's feet are placed on spawn and respawn.
type SpawnPoint struct {
	X, Y  float64
	Index int
}

// EnemySpawn places one enemy. Health 0 keeps the configured enemy health.
type EnemySpawn struct {
	X, Y       float64
	PatrolPath string
	Health     int
}

// PatrolPath is a named polyline enemies walk along.
type PatrolPath struct {
	Name   string
	Points []dmath.Vec2
}
