package config

import (
	"errors"
	"fmt"

	"github.com/automoto/kinematic-platformer/contact"
	"github.com/automoto/kinematic-platformer/kinematic"
	dmath "github.com/yohamta/donburi/features/math"
)

// ErrInvalidTuning is returned by Validate for values the simulation cannot
// run with.
var ErrInvalidTuning = errors.New("invalid tuning")

// Vec2 is a yaml friendly vector.
type Vec2 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func (v Vec2) Vec() dmath.Vec2 { return dmath.Vec2{X: v.X, Y: v.Y} }

// PhysicsConfig contains the sweep constants shared by every mover.
type PhysicsConfig struct {
	Gravity          Vec2    `yaml:"gravity"`
	MinMoveDistance  float64 `yaml:"min_move_distance"`
	ShellRadius      float64 `yaml:"shell_radius"`
	HitBufferSize    int     `yaml:"hit_buffer_size"`
	MinGroundNormalY float64 `yaml:"min_ground_normal_y"`
	FixedStep        float64 `yaml:"fixed_step"`      // seconds
	PixelsPerUnit    float64 `yaml:"pixels_per_unit"` // level pixels per world unit
	ContactSkin      float64 `yaml:"contact_skin"`    // gap still counted as touching
	KillPlane        float64 `yaml:"kill_plane"`      // corpses below this y are removed
}

// CharacterConfig contains the per-entity tunables. They are copied into an
// entity when it spawns.
type CharacterConfig struct {
	MaxSpeed         float64 `yaml:"max_speed"`
	JumpTakeOffSpeed float64 `yaml:"jump_take_off_speed"`
	GravityModifier  float64 `yaml:"gravity_modifier"`
	Health           int     `yaml:"health"`
	Width            float64 `yaml:"width"`
	Height           float64 `yaml:"height"`
}

// PlayerConfig contains player configuration values
type PlayerConfig struct {
	CharacterConfig  `yaml:",inline"`
	JumpModifier     float64 `yaml:"jump_modifier"`
	JumpDeceleration float64 `yaml:"jump_deceleration"`
}

// EnemyConfig contains enemy configuration values. A non-positive Health
// spawns enemies without a health counter.
type EnemyConfig struct {
	CharacterConfig   `yaml:",inline"`
	PatrolSpeedFactor float64 `yaml:"patrol_speed_factor"`
	CorpseMass        float64 `yaml:"corpse_mass"`
}

// ContactConfig contains the stomp bounce speeds.
type ContactConfig struct {
	KillBounce float64 `yaml:"kill_bounce"`
	HitBounce  float64 `yaml:"hit_bounce"`
}

// RespawnConfig contains the player respawn timings in seconds.
type RespawnConfig struct {
	RespawnDelay     float64 `yaml:"respawn_delay"`
	EnableInputDelay float64 `yaml:"enable_input_delay"`
}

// CameraConfig contains camera follow values.
type CameraConfig struct {
	FollowSmoothing float64 `yaml:"follow_smoothing"` // fraction of the distance closed per step
}

// DebugConfig contains debug switches.
type DebugConfig struct {
	LogEvents  bool `yaml:"log_events"`
	ShowStatus bool `yaml:"show_status"` // print the player state over the view
}

// Config holds the whole simulation configuration.
type Config struct {
	Width   int           `yaml:"width"`
	Height  int           `yaml:"height"`
	Physics PhysicsConfig `yaml:"physics"`
	Player  PlayerConfig  `yaml:"player"`
	Enemy   EnemyConfig   `yaml:"enemy"`
	Contact ContactConfig `yaml:"contact"`
	Respawn RespawnConfig `yaml:"respawn"`
	Audio   AudioConfig   `yaml:"audio"`
	Camera  CameraConfig  `yaml:"camera"`
	Debug   DebugConfig   `yaml:"debug"`
}

// Default returns the stock configuration.
func Default() *Config {
	return &Config{
		Width:  640,
		Height: 360,

		Physics: PhysicsConfig{
			Gravity:          Vec2{X: 0, Y: -9.81},
			MinMoveDistance:  0.001,
			ShellRadius:      0.01,
			HitBufferSize:    16,
			MinGroundNormalY: 0.65,
			FixedStep:        1.0 / 60.0,
			PixelsPerUnit:    16,
			ContactSkin:      0.05,
			KillPlane:        -10,
		},

		Player: PlayerConfig{
			CharacterConfig: CharacterConfig{
				MaxSpeed:         7,
				JumpTakeOffSpeed: 7,
				GravityModifier:  1,
				Health:           1,
				Width:            0.75,
				Height:           1,
			},
			JumpModifier:     1.5,
			JumpDeceleration: 0.5,
		},

		Enemy: EnemyConfig{
			CharacterConfig: CharacterConfig{
				MaxSpeed:         7,
				JumpTakeOffSpeed: 7,
				GravityModifier:  1,
				Health:           1,
				Width:            0.75,
				Height:           0.75,
			},
			PatrolSpeedFactor: 0.5,
			CorpseMass:        1,
		},

		Contact: ContactConfig{
			KillBounce: 2,
			HitBounce:  7,
		},

		Respawn: RespawnConfig{
			RespawnDelay:     2,
			EnableInputDelay: 2,
		},

		Audio: defaultAudio(),

		Camera: CameraConfig{
			FollowSmoothing: 0.1,
		},
	}
}

// Validate checks the values the simulation depends on.
func (c *Config) Validate() error {
	p := c.Physics
	switch {
	case p.MinMoveDistance <= 0:
		return fmt.Errorf("%w: min_move_distance must be positive", ErrInvalidTuning)
	case p.ShellRadius <= 0:
		return fmt.Errorf("%w: shell_radius must be positive", ErrInvalidTuning)
	case p.HitBufferSize <= 0:
		return fmt.Errorf("%w: hit_buffer_size must be positive", ErrInvalidTuning)
	case p.MinGroundNormalY <= 0 || p.MinGroundNormalY > 1:
		return fmt.Errorf("%w: min_ground_normal_y %v outside (0, 1]", ErrInvalidTuning, p.MinGroundNormalY)
	case p.FixedStep <= 0:
		return fmt.Errorf("%w: fixed_step must be positive", ErrInvalidTuning)
	case p.PixelsPerUnit <= 0:
		return fmt.Errorf("%w: pixels_per_unit must be positive", ErrInvalidTuning)
	}

	for name, ch := range map[string]CharacterConfig{"player": c.Player.CharacterConfig, "enemy": c.Enemy.CharacterConfig} {
		if ch.MaxSpeed <= 0 {
			return fmt.Errorf("%w: %s max_speed must be positive", ErrInvalidTuning, name)
		}
		if ch.Width <= 0 || ch.Height <= 0 {
			return fmt.Errorf("%w: %s size must be positive", ErrInvalidTuning, name)
		}
	}

	if c.Respawn.RespawnDelay < 0 || c.Respawn.EnableInputDelay < 0 {
		return fmt.Errorf("%w: respawn delays must not be negative", ErrInvalidTuning)
	}
	if c.Camera.FollowSmoothing <= 0 || c.Camera.FollowSmoothing > 1 {
		return fmt.Errorf("%w: follow_smoothing %v outside (0, 1]", ErrInvalidTuning, c.Camera.FollowSmoothing)
	}
	return nil
}

// Settings returns the sweep constants for a Mover.
func (p PhysicsConfig) Settings() kinematic.Settings {
	return kinematic.Settings{
		MinMoveDistance: p.MinMoveDistance,
		ShellRadius:     p.ShellRadius,
		HitBufferSize:   p.HitBufferSize,
	}
}

// Integrator returns the velocity integrator for this physics setup.
func (p PhysicsConfig) Integrator() kinematic.Integrator {
	return kinematic.NewIntegrator(p.Gravity.Vec())
}

// Tuning returns the per-entity tunables for a Mover.
func (c CharacterConfig) Tuning(minGroundNormalY float64) kinematic.Tuning {
	return kinematic.Tuning{
		MaxSpeed:         c.MaxSpeed,
		JumpTakeOffSpeed: c.JumpTakeOffSpeed,
		GravityModifier:  c.GravityModifier,
		MinGroundNormalY: minGroundNormalY,
	}
}

// JumpModifiers returns the jump impulse scalars.
func (p PlayerConfig) JumpModifiers() kinematic.JumpModifiers {
	return kinematic.JumpModifiers{
		JumpModifier:     p.JumpModifier,
		JumpDeceleration: p.JumpDeceleration,
	}
}

// Rules returns the contact outcome rules.
func (c ContactConfig) Rules() contact.Rules {
	return contact.Rules{KillBounce: c.KillBounce, HitBounce: c.HitBounce}
}
