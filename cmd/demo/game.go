package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/hollowmoor/stagecam"
	"github.com/hollowmoor/stagecam/ecs"
	"github.com/hollowmoor/stagecam/ecs/component"
	"github.com/hollowmoor/stagecam/view"
)

const (
	baseWidth  = 1280
	baseHeight = 720

	heroSpeed = 220 // world units per second
)

type Game struct {
	cam     *stagecam.Plugin
	view    *view.View
	overlay *view.DebugOverlay

	hero   ecs.Entity
	frames int
}

func NewGame(configPath string, debug bool) (*Game, error) {
	var opts []stagecam.Option
	if configPath != "" {
		opts = append(opts, stagecam.WithConfigFile(configPath), stagecam.WithConfigWatch())
	}
	cam, err := stagecam.New(opts...)
	if err != nil {
		return nil, err
	}

	camera, err := cam.SpawnCamera(200, 200, 0)
	if err != nil {
		return nil, err
	}
	if err := cam.AttachShake(camera); err != nil {
		return nil, err
	}

	hero, err := cam.SpawnAnchorTargetAt(200, 200, 0)
	if err != nil {
		return nil, err
	}
	if err := cam.AttachCameraOffset(hero, 0, -24); err != nil {
		return nil, err
	}
	cam.BindTo(hero)

	// a couple of points of interest the camera latches onto when the
	// hero wanders close
	if _, err := cam.SpawnDynamicAnchorAt(700, 200, 0, 120, 400); err != nil {
		return nil, err
	}
	if _, err := cam.SpawnDynamicAnchorAt(300, 550, 0, 90, 250); err != nil {
		return nil, err
	}

	return &Game{
		cam:     cam,
		view:    view.New(baseWidth, baseHeight, cam.Config().View),
		overlay: &view.DebugOverlay{Enabled: debug},
		hero:    hero,
	}, nil
}

func (g *Game) Close() error {
	return g.cam.Close()
}

func (g *Game) Update() error {
	g.frames++
	dt := 1.0 / float64(ebiten.TPS())
	g.cam.BeginFrame(dt)

	if t, ok := ecs.Get(g.cam.World(), g.hero, component.TransformComponent); ok {
		if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
			t.X -= heroSpeed * dt
		}
		if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
			t.X += heroSpeed * dt
		}
		if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
			t.Y -= heroSpeed * dt
		}
		if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
			t.Y += heroSpeed * dt
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.cam.AddTrauma(0.5)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		g.cam.BindTo(g.hero)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.cam.Release()
	}

	g.cam.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	camX, camY := 0.0, 0.0
	if pos, ok := g.cam.CameraPosition(); ok {
		camX, camY = pos[0], pos[1]
	}

	// world content: the hero and some scenery so the camera motion is
	// visible
	if t, ok := ecs.Get(g.cam.World(), g.hero, component.TransformComponent); ok {
		sx, sy := g.view.WorldToScreen(t.X, t.Y, camX, camY)
		vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(12*g.view.Zoom()), color.RGBA{R: 0x4d, G: 0xa3, B: 0xff, A: 0xff}, true)
	}
	for gx := 0.0; gx <= 1200; gx += 100 {
		sx, sy := g.view.WorldToScreen(gx, 700, camX, camY)
		vector.DrawFilledRect(screen, float32(sx)-2, float32(sy)-2, 4, 4, color.RGBA{R: 0x66, G: 0x66, B: 0x66, A: 0xff}, false)
	}

	g.overlay.Draw(screen, g.cam.World(), g.view, camX, camY)

	msg := fmt.Sprintf("FPS: %.1f\nWASD move, Space shake, B bind, F free", ebiten.ActualFPS())
	if target, bound := g.cam.BoundTarget(); bound {
		msg += fmt.Sprintf("\nbound to %d", target)
	}
	ebitenutil.DebugPrint(screen, msg)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}
