package level

import (
	"math"
	"testing"

	"github.com/automoto/kinematic-platformer/kinematic"
	"github.com/automoto/kinematic-platformer/shared/gamemath"
	"github.com/automoto/kinematic-platformer/shared/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	dmath "github.com/yohamta/donburi/features/math"
)

const testDt = 1.0 / 60

var down = dmath.Vec2{X: 0, Y: -1}

// newTestSpace returns a 20x10 unit space with a floor whose top is at y=1.
func newTestSpace(t *testing.T) *Space {
	t.Helper()
	s := NewSpace(320, 160, 16, 16, 16)
	s.AddSolid(gamemath.RectPolygon(0, 0, 20, 1), "", TagSolid)
	return s
}

func newTestMover(c kinematic.Collider) *kinematic.Mover {
	return kinematic.NewMover(c,
		kinematic.NewIntegrator(dmath.Vec2{Y: -9.81}),
		kinematic.Settings{MinMoveDistance: 0.001, ShellRadius: 0.01, HitBufferSize: 16},
		kinematic.Tuning{MaxSpeed: 7, JumpTakeOffSpeed: 7, GravityModifier: 1, MinGroundNormalY: 0.65},
	)
}

func TestCollider_CastDownHitsFloor(t *testing.T) {
	s := newTestSpace(t)
	c := s.NewCollider(kinematic.NewBounds(2, 3, 1, 1), []string{TagSolid}, TagPlayer)
	hits := make([]kinematic.Hit, 4)

	n := c.Cast(down, 5, hits)
	require.Equal(t, 1, n)
	assert.InDelta(t, 2.0, hits[0].Distance, 1e-9)
	assert.Equal(t, dmath.Vec2{X: 0, Y: 1}, hits[0].Normal)
	assert.IsType(t, &Solid{}, hits[0].Data)

	assert.Equal(t, 0, c.Cast(down, 1.5, hits), "floor out of reach")
}

func TestCollider_CastSideHitsWallButNotFloor(t *testing.T) {
	s := newTestSpace(t)
	s.AddSolid(gamemath.RectPolygon(5, 1, 1, 3), "", TagSolid)
	c := s.NewCollider(kinematic.NewBounds(2, 1.01, 1, 1), []string{TagSolid})
	hits := make([]kinematic.Hit, 4)

	n := c.Cast(dmath.Vec2{X: 1}, 5, hits)
	require.Equal(t, 1, n)
	assert.InDelta(t, 2.0, hits[0].Distance, 1e-9)
	assert.Equal(t, dmath.Vec2{X: -1, Y: 0}, hits[0].Normal)
}

func TestCollider_CastOntoSlope(t *testing.T) {
	s := NewSpace(320, 160, 16, 16, 16)
	s.AddSolid(gamemath.SlopePolygon(0, 0, 4, 4, gamemath.Slope45UpRight), gamemath.Slope45UpRight, TagSolid, TagRamp)
	c := s.NewCollider(kinematic.NewBounds(2, 5, 1, 1), []string{TagSolid})
	hits := make([]kinematic.Hit, 4)

	n := c.Cast(down, 5, hits)
	require.Equal(t, 1, n)
	assert.InDelta(t, 2.0, hits[0].Distance, 1e-9)
	assert.InDelta(t, -math.Sqrt2/2, hits[0].Normal.X, 1e-9)
	assert.InDelta(t, math.Sqrt2/2, hits[0].Normal.Y, 1e-9)
}

func TestCollider_HitsSortedByDistance(t *testing.T) {
	s := newTestSpace(t)
	s.AddSolid(gamemath.RectPolygon(2, 2, 1, 0.5), "", TagSolid)
	c := s.NewCollider(kinematic.NewBounds(2, 4, 1, 1), []string{TagSolid})
	hits := make([]kinematic.Hit, 4)

	n := c.Cast(down, 5, hits)
	require.Equal(t, 2, n)
	assert.InDelta(t, 1.5, hits[0].Distance, 1e-9)
	assert.InDelta(t, 3.0, hits[1].Distance, 1e-9)

	short := make([]kinematic.Hit, 1)
	assert.Equal(t, 1, c.Cast(down, 5, short), "never more hits than the buffer holds")
	assert.InDelta(t, 1.5, short[0].Distance, 1e-9)
}

func TestCollider_InitialOverlap(t *testing.T) {
	s := newTestSpace(t)
	c := s.NewCollider(kinematic.NewBounds(2, 0.5, 1, 1), []string{TagSolid})
	hits := make([]kinematic.Hit, 4)

	n := c.Cast(down, 1, hits)
	require.Equal(t, 1, n)
	assert.Equal(t, 0.0, hits[0].Distance)
	assert.Equal(t, dmath.Vec2{X: 0, Y: 1}, hits[0].Normal)

	assert.Equal(t, 0, c.Cast(dmath.Vec2{Y: 1}, 1, hits), "moving out is free")
}

func TestCollider_FilterAndDisable(t *testing.T) {
	s := newTestSpace(t)
	enemy := s.NewCollider(kinematic.NewBounds(2, 1.01, 1, 1), []string{TagSolid}, TagEnemy)
	player := s.NewCollider(kinematic.NewBounds(2, 4, 1, 1), []string{TagSolid, TagEnemy}, TagPlayer)
	ghost := s.NewCollider(kinematic.NewBounds(2, 4, 1, 1), []string{TagSolid})
	hits := make([]kinematic.Hit, 4)

	n := player.Cast(down, 5, hits)
	require.Equal(t, 2, n)
	assert.InDelta(t, 1.99, hits[0].Distance, 1e-9, "enemy top comes first")

	assert.Equal(t, 1, ghost.Cast(down, 5, hits), "enemy filtered out")

	enemy.SetEnabled(false)
	assert.False(t, enemy.Enabled())
	assert.Equal(t, 1, player.Cast(down, 5, hits))
	assert.Equal(t, 0, enemy.Cast(down, 5, hits), "disabled colliders find nothing")

	enemy.SetEnabled(true)
	assert.Equal(t, 2, player.Cast(down, 5, hits))

	s.Remove(enemy)
	assert.Equal(t, 1, player.Cast(down, 5, hits))
}

func TestSpace_Overlapping(t *testing.T) {
	s := newTestSpace(t)
	player := s.NewCollider(kinematic.NewBounds(2, 1.01, 1, 1), []string{TagSolid}, TagPlayer)
	enemy := s.NewCollider(kinematic.NewBounds(3.01, 1.01, 1, 1), []string{TagSolid}, TagEnemy)
	s.NewCollider(kinematic.NewBounds(8, 1.01, 1, 1), []string{TagSolid}, TagEnemy)

	touching := s.Overlapping(player, 0.05, TagEnemy)
	require.Len(t, touching, 1)
	assert.Same(t, enemy.Object(), touching[0])

	assert.Empty(t, s.Overlapping(player, 0.001, TagEnemy), "gap wider than skin")
	assert.Len(t, s.Overlapping(player, 0.05, TagSolid), 1, "standing on the floor")
}

func TestMover_SettlesOnFloorAndWalks(t *testing.T) {
	s := newTestSpace(t)
	c := s.NewCollider(kinematic.NewBounds(2, 1.5, 1, 1), []string{TagSolid})
	m := newTestMover(c)

	for i := 0; i < 60; i++ {
		m.ComputeVelocity(kinematic.Intent{}, kinematic.JumpModifiers{JumpModifier: 1.5, JumpDeceleration: 0.5})
		m.Step(testDt)
	}
	require.True(t, m.IsGrounded())
	assert.InDelta(t, 1.01, m.Position().Y, 1e-6)

	for i := 0; i < 30; i++ {
		m.ComputeVelocity(kinematic.Intent{Move: dmath.Vec2{X: 1}}, kinematic.JumpModifiers{JumpModifier: 1.5, JumpDeceleration: 0.5})
		m.Step(testDt)
		assert.True(t, m.IsGrounded(), "step %d", i)
	}
	assert.InDelta(t, 2+7*30*testDt, m.Position().X, 1e-6)
	assert.InDelta(t, 1.01, m.Position().Y, 1e-6)
}

func TestMover_LandsOnSlope(t *testing.T) {
	s := NewSpace(320, 160, 16, 16, 16)
	s.AddSolid(gamemath.SlopePolygon(0, 0, 4, 4, gamemath.Slope45UpRight), gamemath.Slope45UpRight, TagSolid, TagRamp)
	c := s.NewCollider(kinematic.NewBounds(1, 5, 1, 1), []string{TagSolid})
	m := newTestMover(c)

	for i := 0; i < 90; i++ {
		m.ComputeVelocity(kinematic.Intent{}, kinematic.JumpModifiers{JumpModifier: 1.5, JumpDeceleration: 0.5})
		m.Step(testDt)
	}

	require.True(t, m.IsGrounded())
	assert.InDelta(t, -math.Sqrt2/2, m.GroundNormal().X, 1e-9)
	assert.InDelta(t, math.Sqrt2/2, m.GroundNormal().Y, 1e-9)
	// The box rests on its bottom-right corner, one shell above the surface.
	assert.InDelta(t, 2.01, m.Position().Y, 1e-6)
}

func TestNewSpaceFromLevel(t *testing.T) {
	data := &leveldata.CollisionData{
		MapWidth:   64,
		MapHeight:  48,
		TileWidth:  16,
		TileHeight: 16,
		SolidRects: []leveldata.SolidRect{
			{Rect: leveldata.Rect{X: 0, Y: 0, W: 16, H: 16}},
			{Rect: leveldata.Rect{X: 16, Y: 0, W: 16, H: 16}, SlopeType: gamemath.Slope45UpLeft},
		},
		DeadZones: []leveldata.Rect{{X: 0, Y: 0, W: 64, H: 4}},
	}
	s := NewSpaceFromLevel(data, 16)
	c := s.NewCollider(kinematic.NewBounds(0, 2, 0.5, 0.5), []string{TagSolid})
	hits := make([]kinematic.Hit, 4)

	require.Equal(t, 1, c.Cast(down, 5, hits))
	assert.InDelta(t, 1.0, hits[0].Distance, 1e-9)

	assert.NotEmpty(t, s.Overlapping(s.NewCollider(kinematic.NewBounds(1, 0, 1, 0.1), nil), 0, TagDeadZone))
	assert.Equal(t, dmath.Vec2{X: 2, Y: 1}, s.ToWorldVec(32, 16))
}
