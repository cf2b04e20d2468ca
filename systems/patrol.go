package systems

import (
	"log"

	"github.com/automoto/kinematic-platformer/components"
	"github.com/automoto/kinematic-platformer/level"
	"github.com/automoto/kinematic-platformer/patrol"
	"github.com/automoto/kinematic-platformer/shared/leveldata"
	"github.com/automoto/kinematic-platformer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePatrols advances every living enemy's patrol target. The patrol
// mover is created on the first step an enemy's path can be resolved.
func UpdatePatrols(ecs *ecs.ECS) {
	c := settingsOf(ecs.World)
	dt := c.Physics.FixedStep

	var paths map[string]leveldata.PatrolPath
	if e, ok := components.Level.First(ecs.World); ok {
		if data := components.Level.Get(e).CurrentLevel; data != nil {
			paths = data.PatrolPaths
		}
	}
	space := spaceOf(ecs.World)

	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		if enemy.Dead || enemy.PatrolPath == "" {
			return
		}
		if enemy.Patrol == nil {
			path, ok := patrolPathFor(space, paths, enemy.PatrolPath)
			if !ok {
				return
			}
			enemy.Patrol = path.NewMover(c.Enemy.MaxSpeed * c.Enemy.PatrolSpeedFactor)
			if c.Debug.LogEvents {
				log.Printf("enemy %d patrolling %q", e.Entity().Id(), path.Name)
			}
		}
		enemy.Patrol.Update(dt)
	})
}

// patrolPathFor converts a level polyline into a world-space segment from its
// first to its last point.
func patrolPathFor(space *level.Space, paths map[string]leveldata.PatrolPath, name string) (patrol.Path, bool) {
	if space == nil {
		return patrol.Path{}, false
	}
	p, ok := paths[name]
	if !ok || len(p.Points) < 2 {
		return patrol.Path{}, false
	}
	first, last := p.Points[0], p.Points[len(p.Points)-1]
	return patrol.Path{
		Name:  name,
		Start: space.ToWorldVec(first.X, first.Y),
		End:   space.ToWorldVec(last.X, last.Y),
	}, true
}
