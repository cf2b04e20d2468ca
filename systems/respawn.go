package systems

import (
	"log"

	"github.com/automoto/kinematic-platformer/components"
	cfg "github.com/automoto/kinematic-platformer/config"
	"github.com/automoto/kinematic-platformer/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// UpdateContinuations fires the delayed continuations that are due.
func UpdateContinuations(ecs *ecs.ECS) {
	scheduler := schedulerOf(ecs.World)
	if scheduler == nil {
		return
	}
	scheduler.Update(ecs.World, settingsOf(ecs.World).Physics.FixedStep)
}

// KillPlayer runs the player death sequence and schedules the respawn. It
// returns false if the player was already dead.
func KillPlayer(w donburi.World, e *donburi.Entry) bool {
	player := components.Player.Get(e)
	if player.Dead {
		return false
	}
	c := settingsOf(w)

	components.Health.Get(e).Die()
	player.Dead = true
	player.ControlEnabled = false

	playSound(w, cfg.SoundHurt)
	anim := components.Animation.Get(e)
	anim.SetTrigger(components.ParamHurt)
	anim.SetBool(components.ParamDead, true)

	if p := progressOf(w); p != nil {
		p.Deaths++
		p.Dirty = true
	}
	if s := schedulerOf(w); s != nil {
		s.After(e.Entity(), c.Respawn.RespawnDelay, PlayerSpawn{Player: e.Entity(), Spawn: player.Spawn})
	}

	if c.Debug.LogEvents {
		pos := components.Object.Get(e).Position()
		log.Printf("player died at (%.2f, %.2f)", pos.X, pos.Y)
	}
	return true
}

// PlayerSpawn brings a dead player back at Spawn and schedules the return of
// control.
type PlayerSpawn struct {
	Player donburi.Entity
	Spawn  dmath.Vec2
}

func (s PlayerSpawn) Fire(w donburi.World) {
	if !w.Valid(s.Player) {
		return
	}
	e := w.Entry(s.Player)
	c := settingsOf(w)

	components.Health.Get(e).Increment()
	playSound(w, cfg.SoundRespawn)

	// A fresh mover picks up tunables reloaded while the player was dead.
	movement := components.Movement.Get(e)
	movement.Mover = factory.NewPlayerMover(c, components.Object.Get(e).Collider)
	movement.Teleport(s.Spawn)
	movement.Move = 0

	jump := components.Jump.Get(e)
	jump.Reset()
	jump.Modifiers = c.Player.JumpModifiers()
	jump.Impulse = false

	player := components.Player.Get(e)
	player.Dead = false
	clear(player.Touching)
	components.Animation.Get(e).SetBool(components.ParamDead, false)

	if sched := schedulerOf(w); sched != nil {
		sched.After(s.Player, c.Respawn.EnableInputDelay, EnablePlayerInput{Player: s.Player})
	}

	if c.Debug.LogEvents {
		log.Printf("player respawned at (%.2f, %.2f)", s.Spawn.X, s.Spawn.Y)
	}
}

// EnablePlayerInput hands control back to the player.
type EnablePlayerInput struct {
	Player donburi.Entity
}

func (c EnablePlayerInput) Fire(w donburi.World) {
	if !w.Valid(c.Player) {
		return
	}
	components.Player.Get(w.Entry(c.Player)).ControlEnabled = true
}
