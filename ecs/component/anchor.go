package component

import "fmt"

// StaticAnchor is a position the camera snaps to every tick whenever
// exactly one static anchor exists. No animation, no lifecycle.
type StaticAnchor struct{}

var StaticAnchorComponent = NewComponent[StaticAnchor]()

// DynamicAnchor triggers a camera bind when the anchor target enters
// Radius of the anchor, and an unbind move when the bound target
// leaves it again.
type DynamicAnchor struct {
	// Radius is the trigger distance in world units. The bind boundary
	// is inclusive, the unbind boundary exclusive.
	Radius float64
	// Speed is the bind/unbind move duration in milliseconds. The name
	// is historical; it has always been an absolute duration, not a
	// rate.
	Speed float64
}

// NewDynamicAnchor validates the configuration up front; negative
// values are a configuration error, not something the tick loop
// recovers from.
func NewDynamicAnchor(radius, speed float64) (*DynamicAnchor, error) {
	if radius < 0 {
		return nil, fmt.Errorf("dynamic anchor: negative radius %v", radius)
	}
	if speed < 0 {
		return nil, fmt.Errorf("dynamic anchor: negative speed %v", speed)
	}
	return &DynamicAnchor{Radius: radius, Speed: speed}, nil
}

// MoveDuration returns Speed as seconds.
func (a *DynamicAnchor) MoveDuration() float64 {
	return a.Speed / 1000.0
}

var DynamicAnchorComponent = NewComponent[DynamicAnchor]()

// AnchorTarget marks the single tracked entity whose proximity drives
// dynamic anchor binds. Only one should exist at any time.
type AnchorTarget struct{}

var AnchorTargetComponent = NewComponent[AnchorTarget]()

// DynamicallyAnchored sits on the camera and records which dynamic
// anchor currently holds the binding.
type DynamicallyAnchored struct {
	Anchor uint64 // anchor entity (ecs.Entity is uint64)
}

var DynamicallyAnchoredComponent = NewComponent[DynamicallyAnchored]()
