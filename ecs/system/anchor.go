package system

import (
	"fmt"

	"github.com/hollowmoor/stagecam/easing"
	"github.com/hollowmoor/stagecam/ecs"
	"github.com/hollowmoor/stagecam/ecs/component"
)

// AnchorBindingSystem decides, every tick, whether the camera should
// begin or end a dynamic-anchor-triggered move. It runs before the
// motion advance so the move it issues is integrated the same tick.
type AnchorBindingSystem struct {
	warn onceLogger
}

func NewAnchorBindingSystem() *AnchorBindingSystem {
	return &AnchorBindingSystem{}
}

func (s *AnchorBindingSystem) Update(w *ecs.World) {
	anchors := w.Query(component.DynamicAnchorComponent.Kind().ID(), component.TransformComponent.Kind().ID())
	if len(anchors) == 0 {
		return
	}

	camera, motion, cameraTransform, ok := cameraSingleton(w, &s.warn)
	if !ok {
		return
	}

	targets := w.Query(component.AnchorTargetComponent.Kind().ID(), component.TransformComponent.Kind().ID())
	if len(targets) != 1 {
		s.warn.warnf("anchor_target_singleton",
			"stagecam: expected exactly one anchor target, found %d", len(targets))
		return
	}
	target := targets[0]
	targetTransform, _ := ecs.Get(w, target, component.TransformComponent)
	targetPos := targetTransform.Planar()

	if anchored, ok := ecs.Get(w, camera, component.DynamicallyAnchoredComponent); ok {
		// unbind check against the anchor that holds the binding:
		// strictly outside the radius releases it and sends the camera
		// back to the anchor's own fixed position
		anchorEntity := ecs.Entity(anchored.Anchor)
		anchor, okA := ecs.Get(w, anchorEntity, component.DynamicAnchorComponent)
		anchorTransform, okT := ecs.Get(w, anchorEntity, component.TransformComponent)
		if !okA || !okT {
			s.warn.warnf(fmt.Sprintf("anchored_dangling_%d", anchored.Anchor),
				"stagecam: camera anchored to entity %d which is no longer a dynamic anchor", anchored.Anchor)
			return
		}
		if targetPos.DistanceSq(anchorTransform.Planar()) > anchor.Radius*anchor.Radius {
			motion.StartMoveToPoint(cameraTransform.Translation(), anchorTransform.Translation(),
				anchor.MoveDuration(), easing.QuadOut)
			ecs.Remove(w, camera, component.DynamicallyAnchoredComponent)
		}
		return
	}

	// bind check: anchors are visited in ascending entity id order, so
	// when several qualify in the same tick the lowest id wins,
	// deterministically across runs
	for _, anchorEntity := range anchors {
		anchor, _ := ecs.Get(w, anchorEntity, component.DynamicAnchorComponent)
		anchorTransform, _ := ecs.Get(w, anchorEntity, component.TransformComponent)
		if targetPos.DistanceSq(anchorTransform.Planar()) <= anchor.Radius*anchor.Radius {
			motion.StartMoveToEntity(cameraTransform.Translation(), uint64(target),
				anchor.MoveDuration(), easing.QuadOut)
			err := ecs.Add(w, camera, component.DynamicallyAnchoredComponent,
				&component.DynamicallyAnchored{Anchor: uint64(anchorEntity)})
			if err != nil {
				s.warn.warnf("anchored_add", "stagecam: record dynamic binding: %v", err)
			}
			return
		}
	}
}

// StaticAnchorSystem forces the camera onto the single static anchor,
// when exactly one exists. It runs after the motion advance, so a
// static anchor always wins over any concurrently active mode.
type StaticAnchorSystem struct {
	warn onceLogger
}

func NewStaticAnchorSystem() *StaticAnchorSystem {
	return &StaticAnchorSystem{}
}

func (s *StaticAnchorSystem) Update(w *ecs.World) {
	anchors := w.Query(component.StaticAnchorComponent.Kind().ID(), component.TransformComponent.Kind().ID())
	if len(anchors) == 0 {
		return
	}
	if len(anchors) > 1 {
		s.warn.warnf("static_anchor_singleton",
			"stagecam: expected at most one static anchor, found %d", len(anchors))
		return
	}

	_, _, cameraTransform, ok := cameraSingleton(w, &s.warn)
	if !ok {
		return
	}
	anchorTransform, ok := ecs.Get(w, anchors[0], component.TransformComponent)
	if !ok {
		return
	}
	cameraTransform.SetTranslation(anchorTransform.Translation())
}
