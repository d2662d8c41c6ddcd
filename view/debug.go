package view

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/hollowmoor/stagecam/ecs"
	"github.com/hollowmoor/stagecam/ecs/component"
)

var (
	debugAnchorColor = color.RGBA{R: 0xff, G: 0xa5, B: 0x00, A: 0xff}
	debugTargetColor = color.RGBA{R: 0x00, G: 0xff, B: 0x7f, A: 0xff}
	debugCameraColor = color.RGBA{R: 0xff, G: 0x40, B: 0x40, A: 0xff}
)

// DebugOverlay draws anchors, radii, the anchor target, and the
// camera's current mode onto the screen. Purely diagnostic; leave
// Enabled false in release builds.
type DebugOverlay struct {
	Enabled bool
}

func (d *DebugOverlay) Draw(screen *ebiten.Image, w *ecs.World, v *View, camX, camY float64) {
	if d == nil || !d.Enabled || screen == nil || w == nil || v == nil {
		return
	}

	for _, e := range w.Query(component.DynamicAnchorComponent.Kind().ID(), component.TransformComponent.Kind().ID()) {
		anchor, _ := ecs.Get(w, e, component.DynamicAnchorComponent)
		t, _ := ecs.Get(w, e, component.TransformComponent)
		sx, sy := v.WorldToScreen(t.X, t.Y, camX, camY)
		vector.StrokeCircle(screen, float32(sx), float32(sy), float32(anchor.Radius*v.Zoom()), 1, debugAnchorColor, true)
		drawCross(screen, sx, sy, 4, debugAnchorColor)
	}

	for _, e := range w.Query(component.StaticAnchorComponent.Kind().ID(), component.TransformComponent.Kind().ID()) {
		t, _ := ecs.Get(w, e, component.TransformComponent)
		sx, sy := v.WorldToScreen(t.X, t.Y, camX, camY)
		drawCross(screen, sx, sy, 6, debugAnchorColor)
	}

	for _, e := range w.Query(component.AnchorTargetComponent.Kind().ID(), component.TransformComponent.Kind().ID()) {
		t, _ := ecs.Get(w, e, component.TransformComponent)
		sx, sy := v.WorldToScreen(t.X, t.Y, camX, camY)
		drawCross(screen, sx, sy, 4, debugTargetColor)
	}

	cameras := w.Query(component.CameraTagComponent.Kind().ID(), component.TransformComponent.Kind().ID())
	for _, e := range cameras {
		t, _ := ecs.Get(w, e, component.TransformComponent)
		sx, sy := v.WorldToScreen(t.X, t.Y, camX, camY)
		drawCross(screen, sx, sy, 8, debugCameraColor)
		if motion, ok := ecs.Get(w, e, component.CameraMotionComponent); ok {
			label := fmt.Sprintf("camera %s", motion.Mode)
			if anchored, ok := ecs.Get(w, e, component.DynamicallyAnchoredComponent); ok {
				label += fmt.Sprintf(" (anchored to %d)", anchored.Anchor)
			}
			ebitenutil.DebugPrintAt(screen, label, int(sx)+10, int(sy))
		}
	}
}

func drawCross(screen *ebiten.Image, x, y, size float64, clr color.Color) {
	vector.StrokeLine(screen, float32(x-size), float32(y), float32(x+size), float32(y), 1, clr, false)
	vector.StrokeLine(screen, float32(x), float32(y-size), float32(x), float32(y+size), 1, clr, false)
}
