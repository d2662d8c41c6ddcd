package ecs

import (
	"golang.org/x/image/math/f64"

	"github.com/hollowmoor/stagecam/easing"
)

// Event is a generic world event payload.
type Event struct {
	Type string
	Data any
}

const (
	// EventAddTrauma carries a TraumaEvent.
	EventAddTrauma = "add_trauma"
	// EventCameraCommand carries a CameraCommand.
	EventCameraCommand = "camera_command"
)

// TraumaEvent asks the shake engine to add trauma. A zero Target
// applies the trauma to every shakeable entity.
type TraumaEvent struct {
	Target Entity
	Amount float64
}

// CameraCommandKind identifies camera command types.
type CameraCommandKind string

const (
	CameraCommandMoveToPoint  CameraCommandKind = "move_to_point"
	CameraCommandMoveToEntity CameraCommandKind = "move_to_entity"
	CameraCommandBind         CameraCommandKind = "bind"
	CameraCommandRelease      CameraCommandKind = "release"
)

// CameraCommand asks the camera state machine to change mode.
// Issuing a move always replaces any in-flight move.
type CameraCommand struct {
	Kind     CameraCommandKind
	Target   Entity       // move_to_entity, bind
	Point    f64.Vec3     // move_to_point
	Duration float64      // seconds, move commands
	Curve    easing.Curve // nil means easing.Linear
}

// EventQueue is a simple FIFO queue drained once per tick.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all queued events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}
