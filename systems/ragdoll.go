package systems

import (
	"log"

	"github.com/automoto/kinematic-platformer/components"
	cfg "github.com/automoto/kinematic-platformer/config"
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// KillEnemy takes an enemy out of the level: its collider and mover stop and
// a free body carries the corpse until it falls out of the world.
func KillEnemy(w donburi.World, e *donburi.Entry) {
	enemy := components.Enemy.Get(e)
	if enemy.Dead {
		return
	}
	c := settingsOf(w)

	enemy.Dead = true
	enemy.Patrol = nil

	object := components.Object.Get(e)
	object.SetEnabled(false)

	movement := components.Movement.Get(e)
	movement.Enabled = false
	movement.Move = 0

	if e.HasComponent(components.Health) {
		components.Health.Get(e).Die()
	}

	playSound(w, cfg.SoundEnemyDeath)
	anim := components.Animation.Get(e)
	anim.SetTrigger(components.ParamHurt)
	anim.SetBool(components.ParamDead, true)

	if p := progressOf(w); p != nil {
		p.Stomps++
		p.Dirty = true
	}

	if space := ragdollSpaceOf(w); space != nil {
		bounds := object.Bounds()
		size := bounds.Size()
		center := bounds.Center()
		mass := c.Enemy.CorpseMass

		body := cp.NewBody(mass, cp.MomentForBox(mass, size.X, size.Y))
		body.SetPosition(cp.Vector{X: center.X, Y: center.Y})
		v := movement.Velocity()
		body.SetVelocity(v.X, v.Y)
		space.AddBody(body)

		donburi.Add(e, components.Corpse, &components.CorpseData{Body: body})
	}

	if c.Debug.LogEvents {
		log.Printf("enemy %d killed", e.Entity().Id())
	}
}

// UpdateRagdolls steps the corpse bodies, mirrors them onto the colliders and
// removes corpses that fell below the kill plane.
func UpdateRagdolls(ecs *ecs.ECS) {
	space := ragdollSpaceOf(ecs.World)
	if space == nil {
		return
	}
	c := settingsOf(ecs.World)
	space.Step(c.Physics.FixedStep)

	var fallen []*donburi.Entry
	components.Corpse.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Corpse.Get(e).Body
		object := components.Object.Get(e)

		p := body.Position()
		size := object.Bounds().Size()
		object.SetPosition(dmath.Vec2{X: p.X - size.X/2, Y: p.Y - size.Y/2})

		if object.Bounds().Max.Y < c.Physics.KillPlane {
			fallen = append(fallen, e)
		}
	})

	for _, e := range fallen {
		removeCorpse(ecs, e)
	}
}

func removeCorpse(ecs *ecs.ECS, e *donburi.Entry) {
	if space := ragdollSpaceOf(ecs.World); space != nil {
		space.RemoveBody(components.Corpse.Get(e).Body)
	}
	if space := spaceOf(ecs.World); space != nil {
		space.Remove(components.Object.Get(e).Collider)
	}
	if s := schedulerOf(ecs.World); s != nil {
		s.CancelOwner(e.Entity())
	}
	if settingsOf(ecs.World).Debug.LogEvents {
		log.Printf("enemy %d removed", e.Entity().Id())
	}
	ecs.World.Remove(e.Entity())
}
