package systems

import (
	"log"

	"github.com/automoto/kinematic-platformer/components"
	"github.com/automoto/kinematic-platformer/contact"
	"github.com/automoto/kinematic-platformer/kinematic"
	"github.com/automoto/kinematic-platformer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateContacts raises contact events for every player. Enemy contacts are
// resolved once, on the step they begin; dead zones and the kill plane kill
// the player outright.
func UpdateContacts(ecs *ecs.ECS) {
	space := spaceOf(ecs.World)
	if space == nil {
		return
	}
	c := settingsOf(ecs.World)
	rules := c.Contact.Rules()

	// Outcomes move enemies between archetypes, so collect players first.
	var players []*donburi.Entry
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		players = append(players, e)
	})

	for _, e := range players {
		player := components.Player.Get(e)
		collider := components.Object.Get(e).Collider

		if collider.Position().Y < c.Physics.KillPlane {
			KillPlayer(ecs.World, e)
		}

		touching := make(map[donburi.Entity]bool, len(player.Touching))
		for _, o := range space.Overlapping(collider, c.Physics.ContactSkin, tags.ResolvEnemy, tags.ResolvDeadZone) {
			if o.HasTags(tags.ResolvDeadZone) {
				KillPlayer(ecs.World, e)
				continue
			}
			enemy, ok := o.Data.(*donburi.Entry)
			if !ok || !enemy.Valid() || !enemy.HasComponent(components.Enemy) {
				continue
			}
			touching[enemy.Entity()] = true
			if player.Touching[enemy.Entity()] {
				continue
			}

			outcome := rules.Resolve(playerAttacker{w: ecs.World, entry: e}, enemyHazard{w: ecs.World, entry: enemy})
			if c.Debug.LogEvents && outcome != contact.None {
				log.Printf("contact with enemy %d: %s", enemy.Entity().Id(), outcome)
			}
		}
		player.Touching = touching
	}
}

type playerAttacker struct {
	w     donburi.World
	entry *donburi.Entry
}

func (a playerAttacker) Bounds() kinematic.Bounds {
	return components.Object.Get(a.entry).Bounds()
}

func (a playerAttacker) Bounce(vy float64) {
	components.Movement.Get(a.entry).Bounce(vy)
}

func (a playerAttacker) Die() bool {
	return KillPlayer(a.w, a.entry)
}

type enemyHazard struct {
	w     donburi.World
	entry *donburi.Entry
}

func (h enemyHazard) Bounds() kinematic.Bounds {
	return components.Object.Get(h.entry).Bounds()
}

func (h enemyHazard) Health() (contact.Health, bool) {
	if !h.entry.HasComponent(components.Health) {
		return nil, false
	}
	return components.Health.Get(h.entry), true
}

func (h enemyHazard) Kill() {
	KillEnemy(h.w, h.entry)
}
