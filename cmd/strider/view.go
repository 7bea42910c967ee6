package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/strider/locomotion"
	"github.com/plus3/strider/physics"
	"github.com/plus3/strider/sim"
	"github.com/plus3/strider/vecmath"
)

const pixelsPerMeter = 32

var (
	backgroundColor = color.RGBA{34, 40, 49, 255}
	gridColor       = color.RGBA{48, 56, 68, 255}
	layerColors     = map[physics.Layer]color.RGBA{
		physics.LayerGround:    {120, 130, 140, 255},
		physics.LayerClimbable: {230, 150, 70, 255},
		physics.LayerHittable:  {220, 80, 90, 255},
	}
	stanceColors = map[locomotion.Stance]color.RGBA{
		locomotion.Stand:  {120, 200, 255, 255},
		locomotion.Crouch: {90, 150, 200, 255},
		locomotion.Climb:  {255, 210, 90, 255},
		locomotion.Glide:  {180, 255, 180, 255},
	}
)

// view draws the scene from above: world X to the right, world Z up the
// screen, centred on the player.
type view struct {
	screenW, screenH float32
	center           vecmath.Vec3
}

func newView() *view {
	return &view{}
}

func (v *view) project(p vecmath.Vec3) (float32, float32) {
	return v.screenW/2 + float32(p.X-v.center.X)*pixelsPerMeter,
		v.screenH/2 - float32(p.Z-v.center.Z)*pixelsPerMeter
}

func (v *view) draw(screen *ebiten.Image, scene *sim.Sim) {
	bounds := screen.Bounds()
	v.screenW, v.screenH = float32(bounds.Dx()), float32(bounds.Dy())
	v.center = scene.Body.Position()

	screen.Fill(backgroundColor)
	v.drawGrid(screen)

	for _, c := range scene.World.Colliders() {
		if c.ID == scene.Course.Ground {
			continue
		}
		v.drawCollider(screen, c)
	}
	v.drawBody(screen, scene)

	state := scene.Controller.State()
	pos := scene.Body.Position()
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf(
		"%s  %s  pos (%.1f, %.1f, %.1f)  speed %.0f  combo %d  [Tab] capture mouse  [Esc] quit",
		state.Stance, scene.Camera.State(), pos.X, pos.Y, pos.Z, state.Speed, state.Combo,
	), 8, int(v.screenH)-20)
}

func (v *view) drawGrid(screen *ebiten.Image) {
	for i := -30; i <= 30; i += 2 {
		x0, y0 := v.project(vecmath.Vec3{X: float64(i), Z: -30})
		x1, y1 := v.project(vecmath.Vec3{X: float64(i), Z: 30})
		vector.StrokeLine(screen, x0, y0, x1, y1, 1, gridColor, false)
		x0, y0 = v.project(vecmath.Vec3{X: -30, Z: float64(i)})
		x1, y1 = v.project(vecmath.Vec3{X: 30, Z: float64(i)})
		vector.StrokeLine(screen, x0, y0, x1, y1, 1, gridColor, false)
	}
}

func (v *view) drawCollider(screen *ebiten.Image, c *physics.Collider) {
	clr, ok := layerColors[c.Layer]
	if !ok {
		clr = color.RGBA{200, 200, 200, 255}
	}
	switch shape := c.Shape.(type) {
	case physics.Sphere:
		x, y := v.project(shape.Center)
		vector.DrawFilledCircle(screen, x, y, float32(shape.Radius)*pixelsPerMeter, clr, true)
	default:
		b := shape.Bounds()
		// Max.Z is the top edge on screen
		x, y := v.project(vecmath.Vec3{X: b.Min.X, Z: b.Max.Z})
		size := b.Size()
		w, h := float32(size.X)*pixelsPerMeter, float32(size.Z)*pixelsPerMeter
		vector.DrawFilledRect(screen, x, y, w, h, clr, false)
		vector.StrokeRect(screen, x, y, w, h, 1, color.RGBA{20, 20, 20, 255}, false)
	}
}

func (v *view) drawBody(screen *ebiten.Image, scene *sim.Sim) {
	body := scene.Body
	clr := stanceColors[scene.Controller.Stance()]
	x, y := v.project(body.Position())
	vector.DrawFilledCircle(screen, x, y, float32(body.Capsule.Radius)*pixelsPerMeter, clr, true)

	fx, fy := v.project(body.Position().Add(body.Rotation().Forward().Planar().Normalize().Scale(0.8)))
	vector.StrokeLine(screen, x, y, fx, fy, 3, color.White, true)

	cam := vecmath.YawOnly(scene.Camera.Yaw()).Forward()
	cx, cy := v.project(body.Position().Add(cam.Scale(1.5)))
	vector.StrokeLine(screen, x, y, cx, cy, 1, color.RGBA{255, 255, 255, 120}, true)
}
