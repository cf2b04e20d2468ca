package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
	dmath "github.com/yohamta/donburi/features/math"
)

// Layer and object group names read from the TMX file.
const (
	SolidLayer       = "wg-tiles"
	PlayerSpawnGroup = "PlayerSpawn"
	EnemySpawnGroup  = "EnemySpawn"
	PatrolPathGroup  = "PatrolPaths"
	DeadZoneGroup    = "DeadZones"
)

// LoadCollisionData parses a TMX file and returns its collision data. It
// takes an fs.FS so callers can pass embed.FS or os.DirFS.
func LoadCollisionData(fsys fs.FS, tmxPath string) (*CollisionData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &CollisionData{
		Name:        strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		PatrolPaths: map[string]PatrolPath{},
		MapWidth:    levelMap.Width * levelMap.TileWidth,
		MapHeight:   levelMap.Height * levelMap.TileHeight,
		TileWidth:   levelMap.TileWidth,
		TileHeight:  levelMap.TileHeight,
	}
	mapH := float64(data.MapHeight)

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for _, layer := range levelMap.Layers {
		if layer.Name != SolidLayer {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}

				var slopeType string
				if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
					slopeType = tilesetTile.Properties.GetString("slope")
				}

				data.SolidRects = append(data.SolidRects, SolidRect{
					Rect: Rect{
						X: float64(x) * tileW,
						Y: mapH - float64(y+1)*tileH,
						W: tileW,
						H: tileH,
					},
					SlopeType: slopeType,
				})
			}
		}
		break
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case PlayerSpawnGroup:
			for _, o := range og.Objects {
				data.SpawnPoints = append(data.SpawnPoints, SpawnPoint{
					X:     o.X,
					Y:     mapH - o.Y,
					Index: o.Properties.GetInt("spawnIndex"),
				})
			}
		case EnemySpawnGroup:
			for _, o := range og.Objects {
				data.EnemySpawns = append(data.EnemySpawns, EnemySpawn{
					X:          o.X,
					Y:          mapH - o.Y,
					PatrolPath: o.Properties.GetString("pathName"),
					Health:     o.Properties.GetInt("health"),
				})
			}
		case PatrolPathGroup:
			for _, o := range og.Objects {
				if len(o.PolyLines) == 0 {
					continue
				}
				// Only the first polyline of an object is used.
				polyline := o.PolyLines[0]
				if polyline.Points == nil || len(*polyline.Points) < 2 {
					continue
				}
				points := make([]dmath.Vec2, len(*polyline.Points))
				for i, point := range *polyline.Points {
					points[i] = dmath.Vec2{
						X: o.X + point.X,
						Y: mapH - (o.Y + point.Y),
					}
				}
				data.PatrolPaths[o.Name] = PatrolPath{Name: o.Name, Points: points}
			}
		case DeadZoneGroup:
			for _, o := range og.Objects {
				data.DeadZones = append(data.DeadZones, Rect{
					X: o.X,
					Y: mapH - o.Y - o.Height,
					W: o.Width,
					H: o.Height,
				})
			}
		}
	}

	// Sort spawns by index, then left to right.
	sort.SliceStable(data.SpawnPoints, func(i, j int) bool {
		a, b := data.SpawnPoints[i], data.SpawnPoints[j]
		if a.Index != b.Index {
			return a.Index < b.Index
		}
		return a.X < b.X
	})

	return data, nil
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys, loads
// collision data for each, and returns a map keyed by stem name plus a sorted
// list of names.
func LoadAllLevels(fsys fs.FS, levelsDir string) (map[string]*CollisionData, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*CollisionData, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		data, err := LoadCollisionData(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		levels[data.Name] = data
		names = append(names, data.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}

// PlayerSpawn returns the first spawn point, or false when the level has none.
func (d *CollisionData) PlayerSpawn() (SpawnPoint, bool) {
	if len(d.SpawnPoints) == 0 {
		return SpawnPoint{}, false
	}
	return d.SpawnPoints[0], true
}
