// Package easing evaluates interpolation curves for camera motion.
//
// A Curve maps normalized progress in [0, 1] to an interpolation
// weight. Curves are pure: the same inputs always produce the same
// sample, which keeps camera moves frame-rate independent.
package easing

import (
	"fmt"

	"github.com/fogleman/ease"
	"golang.org/x/image/math/f64"
)

// Curve shapes the acceleration profile of an interpolation.
type Curve interface {
	At(t float64) float64
}

// Built-in curves. QuadOut is what the anchor engine uses for bind and
// unbind moves.
var (
	Linear     Curve = curveFunc(ease.Linear)
	QuadIn     Curve = curveFunc(ease.InQuad)
	QuadOut    Curve = curveFunc(ease.OutQuad)
	QuadInOut  Curve = curveFunc(ease.InOutQuad)
	CubicOut   Curve = curveFunc(ease.OutCubic)
	CubicInOut Curve = curveFunc(ease.InOutCubic)
)

type curveFunc func(float64) float64

func (f curveFunc) At(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return f(t)
}

// Interpolate samples the curve at fraction t between start and end.
// Linear sampling yields start + (end-start)*t exactly.
func Interpolate(start, end f64.Vec3, t float64, c Curve) f64.Vec3 {
	if c == nil {
		c = Linear
	}
	weight := c.At(t)
	return f64.Vec3{
		start[0] + (end[0]-start[0])*weight,
		start[1] + (end[1]-start[1])*weight,
		start[2] + (end[2]-start[2])*weight,
	}
}

var registry = map[string]Curve{
	"linear":       Linear,
	"quad_in":      QuadIn,
	"quad_out":     QuadOut,
	"quad_in_out":  QuadInOut,
	"cubic_out":    CubicOut,
	"cubic_in_out": CubicInOut,
}

// Register adds a named curve so configs can reference it. Call during
// setup, before the tick loop starts.
func Register(name string, c Curve) error {
	if name == "" || c == nil {
		return fmt.Errorf("easing: invalid curve registration %q", name)
	}
	if _, exists := registry[name]; exists {
		return fmt.Errorf("easing: curve %q already registered", name)
	}
	registry[name] = c
	return nil
}

// ByName looks up a registered curve.
func ByName(name string) (Curve, bool) {
	c, ok := registry[name]
	return c, ok
}
