package scenes

import (
	"fmt"
	"image/color"
	"io/fs"

	"github.com/automoto/kinematic-platformer/components"
	cfg "github.com/automoto/kinematic-platformer/config"
	"github.com/automoto/kinematic-platformer/shared/leveldata"
	"github.com/automoto/kinematic-platformer/systems"
	"github.com/automoto/kinematic-platformer/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlatformerScene runs one level. Each Update is one fixed simulation step.
type PlatformerScene struct {
	ecs *ecs.ECS
}

// Options select the optional parts of a scene.
type Options struct {
	// PollInput reads the keyboard and gamepads every step. Headless runs
	// feed Input directly instead.
	PollInput bool
	// Persist loads and saves progress through the persistence layer.
	Persist bool
}

// NewPlatformerScene builds the world for the level at path in fsys.
func NewPlatformerScene(c *cfg.Config, fsys fs.FS, path string, opts Options) (*PlatformerScene, error) {
	return newPlatformerScene(opts, func(e *ecs.ECS) error {
		_, err := factory.CreateLevel(e, c, fsys, path)
		return err
	})
}

// NewPlatformerSceneFromData builds the world for an already loaded level.
func NewPlatformerSceneFromData(c *cfg.Config, data *leveldata.CollisionData, opts Options) (*PlatformerScene, error) {
	return newPlatformerScene(opts, func(e *ecs.ECS) error {
		_, err := factory.CreateLevelFromData(e, c, data)
		return err
	})
}

func newPlatformerScene(opts Options, createLevel func(*ecs.ECS) error) (*PlatformerScene, error) {
	ecs := ecs.NewECS(donburi.NewWorld())

	if opts.PollInput {
		ecs.AddSystem(systems.UpdateInput)
	}
	ecs.AddSystem(systems.UpdateContinuations)
	ecs.AddSystem(systems.UpdatePatrols)
	ecs.AddSystem(systems.UpdatePlayerIntent)
	ecs.AddSystem(systems.UpdateEnemyIntent)
	ecs.AddSystem(systems.UpdateMovement)
	ecs.AddSystem(systems.UpdateContacts)
	ecs.AddSystem(systems.UpdateRagdolls)
	ecs.AddSystem(systems.UpdateAnimation)
	ecs.AddSystem(systems.UpdateCamera)
	ecs.AddSystem(systems.UpdateAudio)
	if opts.Persist {
		ecs.AddSystem(systems.UpdatePersistence)
	}

	ecs.AddRenderer(cfg.DefaultLayer, systems.DrawDebug)

	if err := createLevel(ecs); err != nil {
		return nil, fmt.Errorf("new platformer scene: %w", err)
	}

	if opts.Persist {
		saved, err := systems.LoadProgress()
		if err != nil {
			return nil, fmt.Errorf("new platformer scene: %w", err)
		}
		systems.ApplySavedProgress(ecs, saved)
	}

	return &PlatformerScene{ecs: ecs}, nil
}

// ECS exposes the scene's world to the host.
func (ps *PlatformerScene) ECS() *ecs.ECS { return ps.ecs }

func (ps *PlatformerScene) Update() {
	ps.ecs.Update()
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)
	ps.ecs.Draw(screen)
}

// SetConfig swaps the configuration. Living entities keep their tunables;
// the new values apply from their next spawn or respawn.
func (ps *PlatformerScene) SetConfig(c *cfg.Config) {
	if e, ok := components.Settings.First(ps.ecs.World); ok {
		components.Settings.Get(e).Config = c
	}
}

// SetInput feeds one step of pressed actions to the player.
func (ps *PlatformerScene) SetInput(current [cfg.ActionCount]bool) {
	if e, ok := components.Input.First(ps.ecs.World); ok {
		components.Input.Get(e).Advance(current)
	}
}
