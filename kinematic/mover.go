package kinematic

import (
	"math"

	"github.com/automoto/kinematic-platformer/shared/gamemath"
	dmath "github.com/yohamta/donburi/features/math"
)

// Tuning holds the per-entity scalars. They are fixed when the entity spawns.
type Tuning struct {
	MaxSpeed         float64
	JumpTakeOffSpeed float64
	GravityModifier  float64
	// MinGroundNormalY is the smallest normal.y a surface needs to be stood on.
	MinGroundNormalY float64
}

// Settings are the sweep constants shared by every mover.
type Settings struct {
	MinMoveDistance float64
	ShellRadius     float64
	HitBufferSize   int
}

// JumpModifiers scale the takeoff impulse and the early-release slowdown.
type JumpModifiers struct {
	JumpModifier     float64
	JumpDeceleration float64
}

// Intent is what a controller wants from the mover for one step.
type Intent struct {
	// Move is the desired direction, x in [-1, 1].
	Move dmath.Vec2
	// Jump carries the one-step impulse emitted by the jump state machine.
	Jump bool
	// StopJump asks an ascending body to slow down.
	StopJump bool
}

var (
	_ HasVelocity      = (*Mover)(nil)
	_ HasGroundContact = (*Mover)(nil)
)

// Mover owns the movement state of one entity and resolves its motion
// against the collider's world.
type Mover struct {
	tuning     Tuning
	settings   Settings
	integrator Integrator
	collider   Collider

	velocity       dmath.Vec2
	targetVelocity dmath.Vec2
	groundNormal   dmath.Vec2
	grounded       bool

	hits []Hit
}

// NewMover creates a mover for collider. The ground normal starts pointing
// up so a body spawned in the air can still move sideways.
func NewMover(collider Collider, integrator Integrator, settings Settings, tuning Tuning) *Mover {
	size := settings.HitBufferSize
	if size <= 0 {
		size = 16
	}
	return &Mover{
		tuning:       tuning,
		settings:     settings,
		integrator:   integrator,
		collider:     collider,
		groundNormal: dmath.Vec2{X: 0, Y: 1},
		hits:         make([]Hit, size),
	}
}

func (m *Mover) Tuning() Tuning           { return m.tuning }
func (m *Mover) Collider() Collider       { return m.collider }
func (m *Mover) Velocity() dmath.Vec2     { return m.velocity }
func (m *Mover) GroundNormal() dmath.Vec2 { return m.groundNormal }
func (m *Mover) IsGrounded() bool         { return m.grounded }

// TargetVelocity is the velocity requested by the last ComputeVelocity.
func (m *Mover) TargetVelocity() dmath.Vec2 { return m.targetVelocity }

// Position returns the collider position.
func (m *Mover) Position() dmath.Vec2 { return m.collider.Position() }

// SetVelocity overwrites the current velocity.
func (m *Mover) SetVelocity(v dmath.Vec2) { m.velocity = v }

// Bounce sets the vertical velocity, keeping horizontal motion.
func (m *Mover) Bounce(vy float64) { m.velocity.Y = vy }

// Teleport moves the body to p and stops it.
func (m *Mover) Teleport(p dmath.Vec2) {
	m.collider.SetPosition(p)
	m.velocity = dmath.Vec2{}
	m.targetVelocity = dmath.Vec2{}
}

// ComputeVelocity turns intent into velocity changes and a new target
// velocity. An impulse only takes effect while grounded. It reports whether
// a stop-jump request was consumed.
func (m *Mover) ComputeVelocity(in Intent, mods JumpModifiers) (stopConsumed bool) {
	if in.Jump && m.grounded {
		m.velocity.Y = m.tuning.JumpTakeOffSpeed * mods.JumpModifier
	} else if in.StopJump {
		stopConsumed = true
		if m.velocity.Y > 0 {
			m.velocity.Y *= mods.JumpDeceleration
		}
	}
	m.targetVelocity = gamemath.Scale(in.Move, m.tuning.MaxSpeed)
	return stopConsumed
}

// Step advances the body by dt seconds: integrate velocity, then sweep
// along the ground tangent and finally vertically.
func (m *Mover) Step(dt float64) {
	m.velocity = m.integrator.Integrate(m.velocity, m.targetVelocity, m.tuning.GravityModifier, dt)

	m.grounded = false

	delta := gamemath.Scale(m.velocity, dt)
	alongGround := gamemath.Tangent(m.groundNormal)

	m.PerformMovement(gamemath.Scale(alongGround, delta.X), false)
	m.PerformMovement(dmath.Vec2{Y: delta.Y}, true)
}

// PerformMovement sweeps the collider along move and applies the largest
// displacement every contact allows. yMovement marks the vertical sweep,
// the only one allowed to replace the ground normal. It returns the distance
// travelled.
func (m *Mover) PerformMovement(move dmath.Vec2, yMovement bool) float64 {
	distance := gamemath.Magnitude(move)
	if distance <= m.settings.MinMoveDistance {
		return 0
	}

	shell := m.settings.ShellRadius
	direction := gamemath.Normalize(move)

	count := m.collider.Cast(direction, distance+shell, m.hits)
	for i := 0; i < count; i++ {
		normal := m.hits[i].Normal

		if normal.Y >= m.tuning.MinGroundNormalY {
			m.grounded = true
			if yMovement {
				m.groundNormal = normal
				normal.X = 0
			}
		}

		if m.grounded {
			// Remove only the part of the velocity driving into the surface.
			projection := gamemath.Dot(m.velocity, normal)
			if projection < 0 {
				m.velocity = gamemath.Sub(m.velocity, gamemath.Scale(normal, projection))
			}
		} else {
			// Airborne impact: no more rising, no more drift.
			m.velocity.X = 0
			m.velocity.Y = math.Min(m.velocity.Y, 0)
		}

		if modified := m.hits[i].Distance - shell; modified < distance {
			distance = modified
		}
	}

	distance = math.Max(distance, 0)
	m.collider.SetPosition(gamemath.Add(m.collider.Position(), gamemath.Scale(direction, distance)))
	return distance
}
