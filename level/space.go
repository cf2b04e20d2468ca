// Package level is the physics query service movers run against. It keeps
// level geometry and entity colliders in a resolv space for broadphase and
// resolves casts with a swept separating-axis test.
package level

import (
	"math"

	"github.com/automoto/kinematic-platformer/kinematic"
	"github.com/automoto/kinematic-platformer/shared/gamemath"
	"github.com/automoto/kinematic-platformer/shared/leveldata"
	"github.com/solarlune/resolv"
	dmath "github.com/yohamta/donburi/features/math"
)

// Resolv tags used by the simulation.
const (
	TagSolid    = "solid"
	TagRamp     = "ramp"
	TagPlayer   = "Player"
	TagEnemy    = "Enemy"
	TagDeadZone = "deadzone"
)

// Solid is static level geometry: a convex polygon in world units.
type Solid struct {
	Polygon   []dmath.Vec2
	Bounds    kinematic.Bounds
	SlopeType string

	normals []dmath.Vec2
}

func newSolid(polygon []dmath.Vec2, slopeType string) *Solid {
	b := kinematic.Bounds{
		Min: dmath.Vec2{X: math.Inf(1), Y: math.Inf(1)},
		Max: dmath.Vec2{X: math.Inf(-1), Y: math.Inf(-1)},
	}
	for _, p := range polygon {
		b.Min.X = math.Min(b.Min.X, p.X)
		b.Min.Y = math.Min(b.Min.Y, p.Y)
		b.Max.X = math.Max(b.Max.X, p.X)
		b.Max.Y = math.Max(b.Max.Y, p.Y)
	}
	return &Solid{
		Polygon:   polygon,
		Bounds:    b,
		SlopeType: slopeType,
		normals:   gamemath.EdgeNormals(polygon),
	}
}

// Space wraps a resolv space. The simulation works in world units with y up;
// resolv sees the same layout scaled by PixelsPerUnit.
type Space struct {
	space         *resolv.Space
	pixelsPerUnit float64
	colliders     map[*resolv.Object]*Collider
}

// NewSpace creates a space covering width x height pixels.
func NewSpace(width, height, cellWidth, cellHeight int, pixelsPerUnit float64) *Space {
	if pixelsPerUnit <= 0 {
		pixelsPerUnit = 1
	}
	return &Space{
		space:         resolv.NewSpace(width, height, cellWidth, cellHeight),
		pixelsPerUnit: pixelsPerUnit,
		colliders:     map[*resolv.Object]*Collider{},
	}
}

// NewSpaceFromLevel creates a space sized to the level, with one cell per
// tile, and adds the level geometry.
func NewSpaceFromLevel(data *leveldata.CollisionData, pixelsPerUnit float64) *Space {
	s := NewSpace(data.MapWidth, data.MapHeight, data.TileWidth, data.TileHeight, pixelsPerUnit)
	s.AddLevel(data)
	return s
}

func (s *Space) Resolv() *resolv.Space { return s.space }
func (s *Space) PixelsPerUnit() float64 { return s.pixelsPerUnit }

// ToWorldVec converts a pixel position to world units.
func (s *Space) ToWorldVec(x, y float64) dmath.Vec2 {
	return dmath.Vec2{X: x / s.pixelsPerUnit, Y: y / s.pixelsPerUnit}
}

// AddLevel adds solid tiles, slopes and dead zones of a parsed level.
func (s *Space) AddLevel(data *leveldata.CollisionData) {
	for _, r := range data.SolidRects {
		x, y := r.X/s.pixelsPerUnit, r.Y/s.pixelsPerUnit
		w, h := r.W/s.pixelsPerUnit, r.H/s.pixelsPerUnit
		if r.SlopeType != "" {
			s.AddSolid(gamemath.SlopePolygon(x, y, w, h, r.SlopeType), r.SlopeType, TagSolid, TagRamp, r.SlopeType)
			continue
		}
		s.AddSolid(gamemath.RectPolygon(x, y, w, h), "", TagSolid)
	}
	for _, z := range data.DeadZones {
		x, y := z.X/s.pixelsPerUnit, z.Y/s.pixelsPerUnit
		w, h := z.W/s.pixelsPerUnit, z.H/s.pixelsPerUnit
		s.AddSolid(gamemath.RectPolygon(x, y, w, h), "", TagDeadZone)
	}
}

// AddSolid adds a static convex polygon (counter-clockwise, world units).
func (s *Space) AddSolid(polygon []dmath.Vec2, slopeType string, tags ...string) *resolv.Object {
	solid := newSolid(polygon, slopeType)
	obj := s.newObject(solid.Bounds, tags...)
	obj.Data = solid
	s.space.Add(obj)
	return obj
}

func (s *Space) newObject(b kinematic.Bounds, tags ...string) *resolv.Object {
	ppu := s.pixelsPerUnit
	w := (b.Max.X - b.Min.X) * ppu
	h := (b.Max.Y - b.Min.Y) * ppu
	obj := resolv.NewObject(b.Min.X*ppu, b.Min.Y*ppu, w, h, tags...)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	return obj
}

// candidates returns every object whose cells touch the area, except skip.
func (s *Space) candidates(area kinematic.Bounds, skip *resolv.Object, tags ...string) []*resolv.Object {
	// One extra pixel on each side keeps objects that merely touch the area.
	grown := kinematic.Bounds{
		Min: dmath.Vec2{X: area.Min.X - 1/s.pixelsPerUnit, Y: area.Min.Y - 1/s.pixelsPerUnit},
		Max: dmath.Vec2{X: area.Max.X + 1/s.pixelsPerUnit, Y: area.Max.Y + 1/s.pixelsPerUnit},
	}
	probe := s.newObject(grown)
	s.space.Add(probe)
	defer s.space.Remove(probe)

	check := probe.Check(0, 0, tags...)
	if check == nil {
		return nil
	}
	found := make([]*resolv.Object, 0, len(check.Objects))
	for _, o := range check.Objects {
		if o == skip {
			continue
		}
		found = append(found, o)
	}
	return found
}

// shapeOf returns the world-space polygon of a space object.
func (s *Space) shapeOf(o *resolv.Object) (polygon, normals []dmath.Vec2, ok bool) {
	if solid, isSolid := o.Data.(*Solid); isSolid {
		return solid.Polygon, solid.normals, true
	}
	if c, isCollider := s.colliders[o]; isCollider {
		b := c.Bounds()
		return gamemath.RectPolygon(b.Min.X, b.Min.Y, b.Max.X-b.Min.X, b.Max.Y-b.Min.Y), boxAxes, true
	}
	return nil, nil, false
}

// BoundsOf returns the world bounds of a space object.
func (s *Space) BoundsOf(o *resolv.Object) kinematic.Bounds {
	if solid, ok := o.Data.(*Solid); ok {
		return solid.Bounds
	}
	if c, ok := s.colliders[o]; ok {
		return c.Bounds()
	}
	ppu := s.pixelsPerUnit
	return kinematic.NewBounds(o.X/ppu, o.Y/ppu, o.W/ppu, o.H/ppu)
}

// Overlapping lists the objects within skin of the collider's bounds.
func (s *Space) Overlapping(c *Collider, skin float64, tags ...string) []*resolv.Object {
	if !c.enabled {
		return nil
	}
	b := c.Bounds()
	area := kinematic.Bounds{
		Min: dmath.Vec2{X: b.Min.X - skin, Y: b.Min.Y - skin},
		Max: dmath.Vec2{X: b.Max.X + skin, Y: b.Max.Y + skin},
	}
	var touching []*resolv.Object
	for _, o := range s.candidates(area, c.object, tags...) {
		if b.Overlaps(s.BoundsOf(o), skin) {
			touching = append(touching, o)
		}
	}
	return touching
}
