// Package view turns the camera's world position into the transform a
// host needs to draw with: zoomed, optionally snapped to the pixel
// grid, and clamped to world bounds. It does not own any rendering
// surface; offscreen management and scaling stay with the host.
package view

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hollowmoor/stagecam/common"
	"github.com/hollowmoor/stagecam/config"
)

// View maps a camera center in world space to screen space.
type View struct {
	screenW   int
	screenH   int
	zoom      float64
	worldW    float64
	worldH    float64
	pixelSnap bool
}

// New creates a view with the given logical screen size.
func New(screenW, screenH int, cfg config.ViewConfig) *View {
	zoom := cfg.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	return &View{
		screenW:   screenW,
		screenH:   screenH,
		zoom:      zoom,
		worldW:    cfg.WorldWidth,
		worldH:    cfg.WorldHeight,
		pixelSnap: cfg.PixelSnap,
	}
}

// SetZoom updates the zoom. Non-positive values are ignored.
func (v *View) SetZoom(zoom float64) {
	if zoom <= 0 {
		return
	}
	v.zoom = zoom
}

// Zoom returns the current zoom.
func (v *View) Zoom() float64 {
	return v.zoom
}

// SetScreenSize updates the logical screen size.
func (v *View) SetScreenSize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	v.screenW = w
	v.screenH = h
}

// SetWorldBounds sets the world pixel dimensions used for clamping.
// Zero means unbounded on that axis.
func (v *View) SetWorldBounds(w, h float64) {
	v.worldW = w
	v.worldH = h
}

// Center returns the effective view center for a camera position:
// snapped to the 1/zoom grid so source texels align to integer screen
// pixels, then clamped so the view never leaves the world rect.
func (v *View) Center(camX, camY float64) (float64, float64) {
	x, y := camX, camY

	if v.pixelSnap && v.zoom != 0 {
		x = math.Round(x*v.zoom) / v.zoom
		y = math.Round(y*v.zoom) / v.zoom
	}

	halfW := float64(v.screenW) / v.zoom / 2.0
	halfH := float64(v.screenH) / v.zoom / 2.0
	if v.worldW > 0 {
		if v.worldW-halfW < halfW {
			// world smaller than view: center on world
			x = v.worldW / 2.0
		} else {
			x = common.Clamp(x, halfW, v.worldW-halfW)
		}
	}
	if v.worldH > 0 {
		if v.worldH-halfH < halfH {
			y = v.worldH / 2.0
		} else {
			y = common.Clamp(y, halfH, v.worldH-halfH)
		}
	}
	return x, y
}

// TopLeft returns the world-space top-left of the view for a camera
// position.
func (v *View) TopLeft(camX, camY float64) (float64, float64) {
	cx, cy := v.Center(camX, camY)
	return cx - float64(v.screenW)/v.zoom/2.0, cy - float64(v.screenH)/v.zoom/2.0
}

// GeoM returns the draw transform mapping world space to screen space
// for a camera position.
func (v *View) GeoM(camX, camY float64) ebiten.GeoM {
	var geom ebiten.GeoM
	tlx, tly := v.TopLeft(camX, camY)
	geom.Translate(-tlx, -tly)
	geom.Scale(v.zoom, v.zoom)
	return geom
}

// WorldToScreen converts a world point to screen coordinates for a
// camera position.
func (v *View) WorldToScreen(x, y, camX, camY float64) (float64, float64) {
	tlx, tly := v.TopLeft(camX, camY)
	return (x - tlx) * v.zoom, (y - tly) * v.zoom
}
