package systems

import (
	"testing"

	"github.com/automoto/kinematic-platformer/components"
	cfg "github.com/automoto/kinematic-platformer/config"
	"github.com/automoto/kinematic-platformer/jump"
	"github.com/automoto/kinematic-platformer/shared/leveldata"
	"github.com/automoto/kinematic-platformer/systems/factory"
	"github.com/automoto/kinematic-platformer/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

const gravityStep = 9.81 / 60

// createTestLevel is a 40x20 unit level with a floor whose top is at y=1
// and the player spawning with its feet at (4, 1).
func createTestLevel(enemies ...leveldata.EnemySpawn) *leveldata.CollisionData {
	return &leveldata.CollisionData{
		Name:       "test",
		MapWidth:   640,
		MapHeight:  320,
		TileWidth:  16,
		TileHeight: 16,
		SolidRects: []leveldata.SolidRect{
			{Rect: leveldata.Rect{X: 0, Y: 0, W: 640, H: 16}},
		},
		SpawnPoints: []leveldata.SpawnPoint{{X: 64, Y: 16}},
		EnemySpawns: enemies,
		PatrolPaths: map[string]leveldata.PatrolPath{
			"p1": {Name: "p1", Points: []dmath.Vec2{{X: 96, Y: 16}, {X: 160, Y: 16}, {X: 224, Y: 16}}},
		},
	}
}

func newTestWorld(t *testing.T, data *leveldata.CollisionData) *ecs.ECS {
	t.Helper()
	w := ecs.NewECS(donburi.NewWorld())
	_, err := factory.CreateLevelFromData(w, cfg.Default(), data)
	require.NoError(t, err)
	return w
}

// step runs one fixed step in system order.
func step(w *ecs.ECS) {
	UpdateContinuations(w)
	UpdatePatrols(w)
	UpdatePlayerIntent(w)
	UpdateEnemyIntent(w)
	UpdateMovement(w)
	UpdateContacts(w)
	UpdateRagdolls(w)
	UpdateAnimation(w)
	UpdateAudio(w)
}

func press(w *ecs.ECS, actions ...cfg.ActionID) {
	var current [cfg.ActionCount]bool
	for _, a := range actions {
		current[a] = true
	}
	tags.Player.Each(w.World, func(e *donburi.Entry) {
		components.Input.Get(e).Advance(current)
	})
}

func playerOf(t *testing.T, w *ecs.ECS) *donburi.Entry {
	t.Helper()
	e, ok := tags.Player.First(w.World)
	require.True(t, ok)
	return e
}

func enemyOf(t *testing.T, w *ecs.ECS) *donburi.Entry {
	t.Helper()
	e, ok := tags.Enemy.First(w.World)
	require.True(t, ok)
	return e
}

func playedOf(w *ecs.ECS) map[cfg.SoundID]int {
	e, _ := components.Audio.First(w.World)
	return components.Audio.Get(e).Played
}

// An enemy standing on the floor at x 9.625..10.375, top at y=1.75.
var testEnemy = leveldata.EnemySpawn{X: 160, Y: 16}

func TestPlayer_SpawnsOnFloor(t *testing.T) {
	w := newTestWorld(t, createTestLevel())
	p := playerOf(t, w)

	step(w)

	movement := components.Movement.Get(p)
	assert.True(t, movement.IsGrounded())
	assert.InDelta(t, 3.625, movement.Position().X, 1e-9)
	assert.InDelta(t, 1.0, movement.Position().Y, 1e-9)
	assert.Zero(t, movement.Velocity().Y)

	anim := components.Animation.Get(p)
	assert.True(t, anim.Bools[components.ParamGrounded])
	assert.Zero(t, anim.Floats[components.ParamVelocityX])
}

func TestPlayer_JumpSequence(t *testing.T) {
	w := newTestWorld(t, createTestLevel())
	p := playerOf(t, w)
	movement := components.Movement.Get(p)
	machine := components.Jump.Get(p)

	step(w)
	require.True(t, movement.IsGrounded())

	press(w, cfg.ActionJump)
	step(w)
	assert.Equal(t, jump.PrepareToJump, machine.State())

	press(w, cfg.ActionJump)
	step(w)
	assert.Equal(t, jump.Jumping, machine.State())
	// 7 * 1.5 applied, then one step of gravity.
	assert.InDelta(t, 10.5-gravityStep, movement.Velocity().Y, 1e-9)
	assert.False(t, movement.IsGrounded())

	press(w, cfg.ActionJump)
	step(w)
	assert.Equal(t, jump.InFlight, machine.State())
	assert.Equal(t, 1, playedOf(w)[cfg.SoundJump])

	// Releasing early halves the rising speed.
	press(w)
	step(w)
	assert.InDelta(t, (10.5-2*gravityStep)*0.5-gravityStep, movement.Velocity().Y, 1e-9)
	assert.False(t, machine.StopPending())

	for i := 0; i < 120 && machine.State() != jump.Grounded; i++ {
		press(w)
		step(w)
	}
	assert.Equal(t, jump.Grounded, machine.State())
	assert.True(t, movement.IsGrounded())
}

func TestPlayer_WalksAndFaces(t *testing.T) {
	w := newTestWorld(t, createTestLevel())
	p := playerOf(t, w)
	movement := components.Movement.Get(p)

	step(w)
	for i := 0; i < 30; i++ {
		press(w, cfg.ActionMoveLeft)
		step(w)
	}
	assert.InDelta(t, 3.625-7*30.0/60, movement.Position().X, 1e-6)
	assert.True(t, components.Player.Get(p).FlipX)
	assert.True(t, components.Animation.Get(p).FlipX)
	assert.InDelta(t, 1.0, components.Animation.Get(p).Floats[components.ParamVelocityX], 1e-9)

	press(w, cfg.ActionMoveLeft, cfg.ActionMoveRight)
	step(w)
	assert.Zero(t, movement.Velocity().X)
	assert.True(t, components.Player.Get(p).FlipX, "no input keeps the facing")
}

func TestContacts_StompKillsEnemy(t *testing.T) {
	w := newTestWorld(t, createTestLevel(testEnemy))
	p, enemy := playerOf(t, w), enemyOf(t, w)

	components.Movement.Get(p).Teleport(dmath.Vec2{X: 9.625, Y: 1.76})
	UpdateContacts(w)

	assert.True(t, components.Enemy.Get(enemy).Dead)
	assert.True(t, enemy.HasComponent(components.Corpse))
	assert.False(t, components.Object.Get(enemy).Enabled())
	assert.False(t, components.Movement.Get(enemy).Enabled)
	assert.Equal(t, 0, components.Health.Get(enemy).Current)
	assert.InDelta(t, 2.0, components.Movement.Get(p).Velocity().Y, 1e-9)
	assert.False(t, components.Player.Get(p).Dead)
	assert.Equal(t, 1, playedOf(w)[cfg.SoundEnemyDeath])

	progress, _ := components.Progress.First(w.World)
	assert.Equal(t, 1, components.Progress.Get(progress).Stomps)
}

func TestContacts_SideTouchHurtsPlayer(t *testing.T) {
	w := newTestWorld(t, createTestLevel(testEnemy))
	p, enemy := playerOf(t, w), enemyOf(t, w)

	components.Movement.Get(p).Teleport(dmath.Vec2{X: 8.865, Y: 1})
	UpdateContacts(w)

	player := components.Player.Get(p)
	assert.True(t, player.Dead)
	assert.False(t, player.ControlEnabled)
	assert.False(t, components.Health.Get(p).IsAlive())
	assert.Equal(t, []string{components.ParamHurt}, components.Animation.Get(p).Triggers)
	assert.True(t, components.Animation.Get(p).Bools[components.ParamDead])
	assert.Equal(t, 1, playedOf(w)[cfg.SoundHurt])

	assert.False(t, components.Enemy.Get(enemy).Dead)
	assert.Equal(t, 1, components.Health.Get(enemy).Current)

	sched, _ := components.Scheduler.First(w.World)
	assert.Equal(t, 1, components.Scheduler.Get(sched).Pending(p.Entity()))
}

func TestContacts_FireOncePerTouch(t *testing.T) {
	w := newTestWorld(t, createTestLevel(leveldata.EnemySpawn{X: 160, Y: 16, Health: 3}))
	p, enemy := playerOf(t, w), enemyOf(t, w)
	movement := components.Movement.Get(p)
	health := components.Health.Get(enemy)

	movement.Teleport(dmath.Vec2{X: 9.625, Y: 1.76})
	UpdateContacts(w)
	assert.Equal(t, 2, health.Current)
	assert.InDelta(t, 7.0, movement.Velocity().Y, 1e-9)

	UpdateContacts(w)
	assert.Equal(t, 2, health.Current, "still touching")

	movement.Teleport(dmath.Vec2{X: 9.625, Y: 4})
	UpdateContacts(w)
	movement.Teleport(dmath.Vec2{X: 9.625, Y: 1.76})
	UpdateContacts(w)
	assert.Equal(t, 1, health.Current)
	assert.False(t, components.Enemy.Get(enemy).Dead)
}

func TestContacts_DeadZoneKillsPlayer(t *testing.T) {
	data := createTestLevel()
	data.DeadZones = []leveldata.Rect{{X: 320, Y: 16, W: 32, H: 8}}
	w := newTestWorld(t, data)
	p := playerOf(t, w)

	components.Movement.Get(p).Teleport(dmath.Vec2{X: 20.5, Y: 1})
	UpdateContacts(w)

	assert.True(t, components.Player.Get(p).Dead)
	progress, _ := components.Progress.First(w.World)
	assert.Equal(t, 1, components.Progress.Get(progress).Deaths)
}

func TestKillPlayer_OnlyOnce(t *testing.T) {
	w := newTestWorld(t, createTestLevel())
	p := playerOf(t, w)

	assert.True(t, KillPlayer(w.World, p))
	assert.False(t, KillPlayer(w.World, p))

	sched, _ := components.Scheduler.First(w.World)
	assert.Equal(t, 1, components.Scheduler.Get(sched).Pending(p.Entity()))
	assert.Equal(t, 1, playedOf(w)[cfg.SoundHurt])
}

func TestRespawn_Timeline(t *testing.T) {
	w := newTestWorld(t, createTestLevel())
	p := playerOf(t, w)
	player := components.Player.Get(p)

	components.Movement.Get(p).Teleport(dmath.Vec2{X: 12, Y: 5})
	components.Movement.Get(p).SetVelocity(dmath.Vec2{X: 3, Y: -2})
	require.True(t, KillPlayer(w.World, p))

	for i := 0; i < 100; i++ {
		UpdateContinuations(w)
	}
	assert.True(t, player.Dead, "respawn waits for its delay")

	for i := 0; i < 30; i++ {
		UpdateContinuations(w)
	}
	require.False(t, player.Dead)
	movement := components.Movement.Get(p)
	assert.InDelta(t, 3.625, movement.Position().X, 1e-9)
	assert.InDelta(t, 1.0, movement.Position().Y, 1e-9)
	assert.Equal(t, dmath.Vec2{}, movement.Velocity())
	assert.Equal(t, jump.Grounded, components.Jump.Get(p).State())
	assert.True(t, components.Health.Get(p).IsAlive())
	assert.False(t, components.Animation.Get(p).Bools[components.ParamDead])
	assert.Equal(t, 1, playedOf(w)[cfg.SoundRespawn])
	assert.False(t, player.ControlEnabled, "input comes back after a second delay")

	for i := 0; i < 130; i++ {
		UpdateContinuations(w)
	}
	assert.True(t, player.ControlEnabled)
}

func TestPlayer_NoControlWhileDead(t *testing.T) {
	w := newTestWorld(t, createTestLevel())
	p := playerOf(t, w)
	step(w)
	require.True(t, KillPlayer(w.World, p))

	press(w, cfg.ActionMoveRight, cfg.ActionJump)
	step(w)

	assert.Zero(t, components.Movement.Get(p).Move)
	assert.Equal(t, jump.Grounded, components.Jump.Get(p).State())
}

func TestEnemy_FollowsPatrol(t *testing.T) {
	w := newTestWorld(t, createTestLevel(leveldata.EnemySpawn{X: 160, Y: 16, PatrolPath: "p1"}))
	enemy := enemyOf(t, w)

	step(w)

	data := components.Enemy.Get(enemy)
	require.NotNil(t, data.Patrol)
	path := data.Patrol.Path()
	assert.Equal(t, dmath.Vec2{X: 6, Y: 1}, path.Start)
	assert.Equal(t, dmath.Vec2{X: 14, Y: 1}, path.End)

	// The target starts at the far left end, so the enemy heads left.
	assert.Equal(t, -1.0, components.Movement.Get(enemy).Move)
	assert.True(t, data.FlipX)
	assert.Less(t, components.Object.Get(enemy).Position().X, 9.625)
}

func TestEnemy_UnknownPatrolStandsStill(t *testing.T) {
	w := newTestWorld(t, createTestLevel(leveldata.EnemySpawn{X: 160, Y: 16, PatrolPath: "missing"}))
	enemy := enemyOf(t, w)

	step(w)

	assert.Nil(t, components.Enemy.Get(enemy).Patrol)
	assert.Zero(t, components.Movement.Get(enemy).Move)
	assert.InDelta(t, 9.625, components.Object.Get(enemy).Position().X, 1e-9)
}

func TestRagdoll_FallsAndIsRemoved(t *testing.T) {
	w := newTestWorld(t, createTestLevel(testEnemy))
	enemy := enemyOf(t, w)
	entity := enemy.Entity()

	KillEnemy(w.World, enemy)
	require.True(t, enemy.HasComponent(components.Corpse))

	for i := 0; i < 10; i++ {
		UpdateRagdolls(w)
	}
	require.True(t, w.World.Valid(entity))
	assert.Less(t, components.Object.Get(enemy).Position().Y, 1.0, "corpses fall through the floor")

	for i := 0; i < 300; i++ {
		UpdateRagdolls(w)
	}
	assert.False(t, w.World.Valid(entity))
}

func TestUpdateAudio_DrainsQueue(t *testing.T) {
	w := newTestWorld(t, createTestLevel())
	rec := &recordingPlayer{}
	SetSoundPlayer(rec)
	t.Cleanup(func() { SetSoundPlayer(nil) })

	playSound(w.World, cfg.SoundJump)
	playSound(w.World, cfg.SoundHurt)
	UpdateAudio(w)
	UpdateAudio(w)

	assert.Equal(t, []cfg.SoundID{cfg.SoundJump, cfg.SoundHurt}, rec.played)
}

type recordingPlayer struct {
	played []cfg.SoundID
}

func (r *recordingPlayer) Play(id cfg.SoundID) { r.played = append(r.played, id) }

func TestCamera_FollowsLivingPlayer(t *testing.T) {
	w := newTestWorld(t, createTestLevel())
	p := playerOf(t, w)
	cameraEntry, ok := components.Camera.First(w.World)
	require.True(t, ok)
	camera := components.Camera.Get(cameraEntry)

	// The level is 640x320 pixels and the view 640x360, so the view is
	// pinned to the level center.
	UpdateCamera(w)
	assert.InDelta(t, 64+(320-64)*0.1, camera.Position.X, 1e-9)
	assert.InDelta(t, 16+(160-16)*0.1, camera.Position.Y, 1e-9)

	require.True(t, KillPlayer(w.World, p))
	before := camera.Position
	UpdateCamera(w)
	assert.Equal(t, before, camera.Position)
}

func TestClampView(t *testing.T) {
	assert.Equal(t, 320.0, clampView(10, 640, 640))
	assert.Equal(t, 100.0, clampView(10, 200, 1000))
	assert.Equal(t, 900.0, clampView(990, 200, 1000))
	assert.Equal(t, 500.0, clampView(500, 200, 1000))
	assert.Equal(t, 50.0, clampView(500, 200, 100))
}

func TestApplySavedProgress(t *testing.T) {
	w := newTestWorld(t, createTestLevel())
	p := playerOf(t, w)
	entry, ok := components.Progress.First(w.World)
	require.True(t, ok)
	progress := components.Progress.Get(entry)

	ApplySavedProgress(w, &SavedProgress{Level: "other", Deaths: 4})
	assert.Zero(t, progress.Deaths, "progress of another level is ignored")

	ApplySavedProgress(w, &SavedProgress{Level: "test", Deaths: 4, Stomps: 2, SpawnX: 10, SpawnY: 1})
	assert.Equal(t, 4, progress.Deaths)
	assert.Equal(t, 2, progress.Stomps)
	assert.Equal(t, dmath.Vec2{X: 10, Y: 1}, components.Player.Get(p).Spawn)
	assert.Equal(t, dmath.Vec2{X: 10, Y: 1}, components.Movement.Get(p).Position())

	progress.Dirty = true
	UpdatePersistence(w)
	assert.True(t, progress.Dirty, "nothing saved without storage")
}

type stubBody struct {
	velocity dmath.Vec2
	grounded bool
}

func (b stubBody) Velocity() dmath.Vec2     { return b.velocity }
func (b stubBody) IsGrounded() bool         { return b.grounded }
func (b stubBody) GroundNormal() dmath.Vec2 { return dmath.Vec2{Y: 1} }

func TestAnimateMotion(t *testing.T) {
	tests := []struct {
		name         string
		body         stubBody
		maxSpeed     float64
		wantGrounded bool
		wantVelocity float64
	}{
		{"running left on ground", stubBody{velocity: dmath.Vec2{X: -3.5}, grounded: true}, 7, true, 0.5},
		{"airborne at full speed", stubBody{velocity: dmath.Vec2{X: 7, Y: 4}}, 7, false, 1},
		{"no max speed", stubBody{velocity: dmath.Vec2{X: 2}}, 0, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			anim := components.NewAnimation()
			animateMotion(&anim, tt.body, tt.body, tt.maxSpeed)
			assert.Equal(t, tt.wantGrounded, anim.Bools[components.ParamGrounded])
			assert.InDelta(t, tt.wantVelocity, anim.Floats[components.ParamVelocityX], 1e-9)
		})
	}
}
