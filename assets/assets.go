package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"

	"github.com/automoto/kinematic-platformer/shared/leveldata"
)

const (
	// DefaultLevel is the level loaded when the host is given none.
	DefaultLevel = "levels/demo.tmx"
	// DefaultLevelName is the name DefaultLevel loads as.
	DefaultLevelName = "demo"
	// LevelsDir holds every embedded .tmx level.
	LevelsDir = "levels"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// Levels returns the embedded level files. Paths are relative to the assets
// directory, e.g. DefaultLevel.
func Levels() fs.FS {
	return assetFS
}

// LoadLevel loads the embedded level called name, the stem of its .tmx file.
func LoadLevel(name string) (*leveldata.CollisionData, error) {
	levels, names, err := leveldata.LoadAllLevels(assetFS, LevelsDir)
	if err != nil {
		return nil, fmt.Errorf("load level %s: %w", name, err)
	}
	data, ok := levels[name]
	if !ok {
		return nil, fmt.Errorf("unknown level %q (available: %s)", name, strings.Join(names, ", "))
	}
	return data, nil
}
