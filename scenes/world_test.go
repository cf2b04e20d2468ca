package scenes

import (
	"testing"
	"testing/fstest"

	"github.com/automoto/kinematic-platformer/assets"
	"github.com/automoto/kinematic-platformer/components"
	cfg "github.com/automoto/kinematic-platformer/config"
	"github.com/automoto/kinematic-platformer/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func newTestScene(t *testing.T, c *cfg.Config) *PlatformerScene {
	t.Helper()
	scene, err := NewPlatformerScene(c, assets.Levels(), assets.DefaultLevel, Options{})
	require.NoError(t, err)
	return scene
}

func TestPlatformerScene_WalksRight(t *testing.T) {
	scene := newTestScene(t, cfg.Default())
	e, ok := tags.Player.First(scene.ECS().World)
	require.True(t, ok)
	movement := components.Movement.Get(e)
	start := movement.Position()

	var right [cfg.ActionCount]bool
	right[cfg.ActionMoveRight] = true
	for i := 0; i < 30; i++ {
		scene.SetInput(right)
		scene.Update()
	}

	assert.Greater(t, movement.Position().X, start.X)
	assert.True(t, movement.IsGrounded())
	assert.False(t, components.Player.Get(e).Dead)
}

func TestPlatformerScene_SetConfigAppliesOnRespawn(t *testing.T) {
	scene := newTestScene(t, cfg.Default())
	e, ok := tags.Player.First(scene.ECS().World)
	require.True(t, ok)
	movement := components.Movement.Get(e)

	faster := cfg.Default()
	faster.Player.MaxSpeed = 10
	scene.SetConfig(faster)
	assert.Equal(t, 7.0, movement.Tuning().MaxSpeed, "living entities keep their tunables")

	s, ok := components.Settings.First(scene.ECS().World)
	require.True(t, ok)
	assert.Same(t, faster, components.Settings.Get(s).Config)
}

func TestNewPlatformerSceneFromData(t *testing.T) {
	data, err := assets.LoadLevel(assets.DefaultLevelName)
	require.NoError(t, err)

	scene, err := NewPlatformerSceneFromData(cfg.Default(), data, Options{})
	require.NoError(t, err)
	enemies := 0
	tags.Enemy.Each(scene.ECS().World, func(*donburi.Entry) { enemies++ })
	assert.Equal(t, 2, enemies)

	l, ok := components.Level.First(scene.ECS().World)
	require.True(t, ok)
	assert.Same(t, data, components.Level.Get(l).CurrentLevel)
}

func TestNewPlatformerScene_Errors(t *testing.T) {
	_, err := NewPlatformerScene(cfg.Default(), assets.Levels(), "levels/missing.tmx", Options{})
	assert.Error(t, err)

	noSpawn := fstest.MapFS{"empty.tmx": &fstest.MapFile{Data: []byte(`<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="2" height="2" tilewidth="16" tileheight="16" infinite="0">
 <layer id="1" name="wg-tiles" width="2" height="2">
  <data encoding="csv">
0,0,
0,0
</data>
 </layer>
</map>
`)}}
	_, err = NewPlatformerScene(cfg.Default(), noSpawn, "empty.tmx", Options{})
	assert.ErrorContains(t, err, "no player spawn")
}
