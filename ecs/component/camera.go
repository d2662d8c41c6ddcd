package component

import (
	"golang.org/x/image/math/f64"

	"github.com/hollowmoor/stagecam/easing"
)

// CameraTag marks the single camera entity. Exactly one should exist;
// zero or several is a precondition violation the systems warn about
// once and then skip.
type CameraTag struct{}

var CameraTagComponent = NewComponent[CameraTag]()

// MotionMode is the camera state machine's current mode.
type MotionMode uint8

const (
	// MotionFree leaves the camera where it is.
	MotionFree MotionMode = iota
	// MotionBound hard-snaps the camera to the target every tick.
	MotionBound
	// MotionMovingToPoint eases toward a fixed point, then goes Free.
	MotionMovingToPoint
	// MotionMovingToEntity eases toward a live target, then binds.
	MotionMovingToEntity
)

func (m MotionMode) String() string {
	switch m {
	case MotionFree:
		return "free"
	case MotionBound:
		return "bound"
	case MotionMovingToPoint:
		return "moving_to_point"
	case MotionMovingToEntity:
		return "moving_to_entity"
	}
	return "unknown"
}

// CameraMotion is the camera's binding state machine. At most one mode
// is active at a time; starting a move always replaces the previous
// mode, including any in-flight move.
type CameraMotion struct {
	Mode   MotionMode
	Target uint64 // bound / move target (ecs.Entity is uint64)

	// Move state, meaningful only in the Moving* modes.
	Start    f64.Vec3
	End      f64.Vec3 // for MotionMovingToEntity: last resolved live end
	Elapsed  float64  // seconds
	Duration float64  // seconds
	Curve    easing.Curve
}

// StartMoveToPoint replaces the current mode with an eased move toward
// a fixed point.
func (m *CameraMotion) StartMoveToPoint(start, end f64.Vec3, duration float64, curve easing.Curve) {
	m.Mode = MotionMovingToPoint
	m.Target = 0
	m.Start = start
	m.End = end
	m.Elapsed = 0
	m.Duration = duration
	m.Curve = curve
}

// StartMoveToEntity replaces the current mode with an eased move toward
// a live target. On completion the camera binds to the target.
func (m *CameraMotion) StartMoveToEntity(start f64.Vec3, target uint64, duration float64, curve easing.Curve) {
	m.Mode = MotionMovingToEntity
	m.Target = target
	m.Start = start
	m.End = start
	m.Elapsed = 0
	m.Duration = duration
	m.Curve = curve
}

// Bind hard-binds the camera to the target.
func (m *CameraMotion) Bind(target uint64) {
	m.Mode = MotionBound
	m.Target = target
}

// Release returns the camera to Free.
func (m *CameraMotion) Release() {
	m.Mode = MotionFree
	m.Target = 0
}

var CameraMotionComponent = NewComponent[CameraMotion]()

// CameraOffset is a fixed offset applied on top of a followable
// entity's translation when the camera binds to or moves toward it.
type CameraOffset struct {
	X, Y float64
}

var CameraOffsetComponent = NewComponent[CameraOffset]()
