package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/kinematic-platformer/components"
	"github.com/automoto/kinematic-platformer/kinematic"
	"github.com/automoto/kinematic-platformer/level"
	"github.com/automoto/kinematic-platformer/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	colorSolid    = color.RGBA{100, 100, 100, 255}
	colorRamp     = color.RGBA{140, 120, 80, 255}
	colorDeadZone = color.RGBA{120, 0, 60, 255}
	colorPlayer   = color.RGBA{0, 0, 255, 255}
	colorEnemy    = color.RGBA{255, 0, 0, 255}
	colorCorpse   = color.RGBA{120, 40, 40, 255}
)

// DrawDebug draws every collider of the level around the camera. World y
// points up, so it is flipped for the screen.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	space := spaceOf(ecs.World)
	if space == nil {
		return
	}
	ppu := space.PixelsPerUnit()
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	// Bottom-left corner of the view in level pixels.
	camX, camY := 0.0, 0.0
	if e, ok := components.Camera.First(ecs.World); ok {
		camera := components.Camera.Get(e)
		camX = camera.Position.X - float64(width)/2
		camY = camera.Position.Y - float64(height)/2
	}
	toScreenY := func(y float64) float64 {
		return float64(height) - (y*ppu - camY)
	}

	drawBounds := func(b kinematic.Bounds, c color.Color) {
		x := b.Min.X*ppu - camX
		y := toScreenY(b.Max.Y)
		w := (b.Max.X - b.Min.X) * ppu
		h := (b.Max.Y - b.Min.Y) * ppu
		if x+w < 0 || x > float64(width) || y+h < 0 || y > float64(height) {
			return
		}
		vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), c, false)
	}

	for _, obj := range space.Resolv().Objects() {
		if solid, ok := obj.Data.(*level.Solid); ok && solid.SlopeType != "" {
			// Slopes are outlined so the walkable edge shows.
			n := len(solid.Polygon)
			for i, a := range solid.Polygon {
				b := solid.Polygon[(i+1)%n]
				vector.StrokeLine(screen,
					float32(a.X*ppu-camX), float32(toScreenY(a.Y)),
					float32(b.X*ppu-camX), float32(toScreenY(b.Y)),
					1, colorRamp, false)
			}
			continue
		}
		c := colorSolid
		switch {
		case obj.HasTags(tags.ResolvDeadZone):
			c = colorDeadZone
		case obj.HasTags(tags.ResolvPlayer):
			c = colorPlayer
		case obj.HasTags(tags.ResolvEnemy):
			c = colorEnemy
		}
		drawBounds(space.BoundsOf(obj), c)
	}

	components.Corpse.Each(ecs.World, func(e *donburi.Entry) {
		drawBounds(components.Object.Get(e).Bounds(), colorCorpse)
	})

	if !settingsOf(ecs.World).Debug.ShowStatus {
		return
	}
	if e, ok := tags.Player.First(ecs.World); ok {
		movement := components.Movement.Get(e)
		jump := components.Jump.Get(e)
		v := movement.Velocity()
		ebitenutil.DebugPrint(screen, formatStatus(movement.IsGrounded(), jump.State().String(), v.X, v.Y))
	}
}

func formatStatus(grounded bool, state string, vx, vy float64) string {
	return fmt.Sprintf("grounded: %t\njump: %s\nvelocity: (%.2f, %.2f)", grounded, state, vx, vy)
}
