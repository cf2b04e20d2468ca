package level

import (
	"sort"

	"github.com/automoto/kinematic-platformer/kinematic"
	"github.com/solarlune/resolv"
	dmath "github.com/yohamta/donburi/features/math"
)

// Collider is an entity's box in a Space. It implements kinematic.Collider.
type Collider struct {
	space    *Space
	object   *resolv.Object
	position dmath.Vec2
	size     dmath.Vec2
	filter   []string
	enabled  bool

	found []kinematic.Hit
}

var _ kinematic.Collider = (*Collider)(nil)

// NewCollider adds a box collider to the space. Casts only consider objects
// carrying one of the filter tags; an empty filter matches everything. The
// collider itself is tagged with tags so other casts can find it.
func (s *Space) NewCollider(bounds kinematic.Bounds, filter []string, tags ...string) *Collider {
	c := &Collider{
		space:    s,
		object:   s.newObject(bounds, tags...),
		position: bounds.Min,
		size:     bounds.Size(),
		filter:   filter,
		enabled:  true,
	}
	s.colliders[c.object] = c
	s.space.Add(c.object)
	return c
}

// Remove takes the collider out of the space for good.
func (s *Space) Remove(c *Collider) {
	c.SetEnabled(false)
	delete(s.colliders, c.object)
}

// Object is the resolv object backing the collider. Its Data field is free
// for the owner.
func (c *Collider) Object() *resolv.Object { return c.object }

func (c *Collider) Position() dmath.Vec2 { return c.position }

// SetPosition moves the collider so its bottom-left corner is at p.
func (c *Collider) SetPosition(p dmath.Vec2) {
	c.position = p
	c.object.X = p.X * c.space.pixelsPerUnit
	c.object.Y = p.Y * c.space.pixelsPerUnit
	if c.enabled {
		c.object.Update()
	}
}

func (c *Collider) Bounds() kinematic.Bounds {
	return kinematic.NewBounds(c.position.X, c.position.Y, c.size.X, c.size.Y)
}

// Enabled reports whether the collider takes part in queries.
func (c *Collider) Enabled() bool { return c.enabled }

// SetEnabled adds the collider to or removes it from the space. A disabled
// collider is invisible to casts and finds nothing itself.
func (c *Collider) SetEnabled(enabled bool) {
	if c.enabled == enabled {
		return
	}
	c.enabled = enabled
	if enabled {
		c.space.space.Add(c.object)
		return
	}
	c.space.space.Remove(c.object)
}

// Cast sweeps the collider along direction for distance and fills hits with
// the contacts found, nearest first.
func (c *Collider) Cast(direction dmath.Vec2, distance float64, hits []kinematic.Hit) int {
	if !c.enabled || len(hits) == 0 {
		return 0
	}

	start := c.Bounds()
	end := start.Translate(dmath.Vec2{X: direction.X * distance, Y: direction.Y * distance})
	swept := kinematic.Bounds{
		Min: dmath.Vec2{X: min(start.Min.X, end.Min.X), Y: min(start.Min.Y, end.Min.Y)},
		Max: dmath.Vec2{X: max(start.Max.X, end.Max.X), Y: max(start.Max.Y, end.Max.Y)},
	}

	c.found = c.found[:0]
	for _, o := range c.space.candidates(swept, c.object, c.filter...) {
		polygon, normals, ok := c.space.shapeOf(o)
		if !ok {
			continue
		}
		hit, ok := sweepBox(start, direction, distance, polygon, normals)
		if !ok {
			continue
		}
		hit.Data = o.Data
		c.found = append(c.found, hit)
	}

	sort.SliceStable(c.found, func(i, j int) bool {
		return c.found[i].Distance < c.found[j].Distance
	})
	return copy(hits, c.found)
}
