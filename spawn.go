package stagecam

import (
	"fmt"

	"github.com/hollowmoor/stagecam/ecs"
	"github.com/hollowmoor/stagecam/ecs/component"
)

// SpawnCamera creates the camera entity in Free mode. Only one camera
// should exist; the systems warn and skip if that is violated.
func (p *Plugin) SpawnCamera(x, y, z float64) (ecs.Entity, error) {
	e := p.world.CreateEntity()
	if err := ecs.Add(p.world, e, component.TransformComponent, &component.Transform{X: x, Y: y, Z: z, ScaleX: 1, ScaleY: 1}); err != nil {
		return 0, fmt.Errorf("spawn camera: %w", err)
	}
	if err := ecs.Add(p.world, e, component.CameraTagComponent, &component.CameraTag{}); err != nil {
		return 0, fmt.Errorf("spawn camera: %w", err)
	}
	if err := ecs.Add(p.world, e, component.CameraMotionComponent, &component.CameraMotion{Mode: component.MotionFree}); err != nil {
		return 0, fmt.Errorf("spawn camera: %w", err)
	}
	return e, nil
}

// SpawnStaticAnchorAt creates a static anchor. While exactly one
// exists, the camera snaps to it every tick.
func (p *Plugin) SpawnStaticAnchorAt(x, y, z float64) (ecs.Entity, error) {
	e := p.world.CreateEntity()
	if err := ecs.Add(p.world, e, component.TransformComponent, &component.Transform{X: x, Y: y, Z: z, ScaleX: 1, ScaleY: 1}); err != nil {
		return 0, fmt.Errorf("spawn static anchor: %w", err)
	}
	if err := ecs.Add(p.world, e, component.StaticAnchorComponent, &component.StaticAnchor{}); err != nil {
		return 0, fmt.Errorf("spawn static anchor: %w", err)
	}
	return e, nil
}

// SpawnDynamicAnchorAt creates a dynamic anchor with a trigger radius
// and a bind/unbind move duration in milliseconds.
func (p *Plugin) SpawnDynamicAnchorAt(x, y, z, radius, speed float64) (ecs.Entity, error) {
	anchor, err := component.NewDynamicAnchor(radius, speed)
	if err != nil {
		return 0, fmt.Errorf("spawn dynamic anchor: %w", err)
	}
	e := p.world.CreateEntity()
	if err := ecs.Add(p.world, e, component.TransformComponent, &component.Transform{X: x, Y: y, Z: z, ScaleX: 1, ScaleY: 1}); err != nil {
		return 0, fmt.Errorf("spawn dynamic anchor: %w", err)
	}
	if err := ecs.Add(p.world, e, component.DynamicAnchorComponent, anchor); err != nil {
		return 0, fmt.Errorf("spawn dynamic anchor: %w", err)
	}
	return e, nil
}

// SpawnAnchorTargetAt creates the tracked entity whose proximity
// drives dynamic anchor binds. Only one should exist.
func (p *Plugin) SpawnAnchorTargetAt(x, y, z float64) (ecs.Entity, error) {
	e := p.world.CreateEntity()
	if err := ecs.Add(p.world, e, component.TransformComponent, &component.Transform{X: x, Y: y, Z: z, ScaleX: 1, ScaleY: 1}); err != nil {
		return 0, fmt.Errorf("spawn anchor target: %w", err)
	}
	if err := ecs.Add(p.world, e, component.AnchorTargetComponent, &component.AnchorTarget{}); err != nil {
		return 0, fmt.Errorf("spawn anchor target: %w", err)
	}
	return e, nil
}

// AttachShake makes an existing entity shakeable, starting at zero
// trauma.
func (p *Plugin) AttachShake(e ecs.Entity) error {
	if err := ecs.Add(p.world, e, component.ShakeComponent, &component.Shake{}); err != nil {
		return fmt.Errorf("attach shake: %w", err)
	}
	return nil
}

// AttachShakeSettings overrides the global shake tuning for one
// entity.
func (p *Plugin) AttachShakeSettings(e ecs.Entity, settings component.ShakeSettings) error {
	if err := ecs.Add(p.world, e, component.ShakeSettingsComponent, &settings); err != nil {
		return fmt.Errorf("attach shake settings: %w", err)
	}
	return nil
}

// AttachCameraOffset sets the fixed offset applied when the camera
// follows this entity.
func (p *Plugin) AttachCameraOffset(e ecs.Entity, x, y float64) error {
	if err := ecs.Add(p.world, e, component.CameraOffsetComponent, &component.CameraOffset{X: x, Y: y}); err != nil {
		return fmt.Errorf("attach camera offset: %w", err)
	}
	return nil
}

// AttachZOrder declares an entity's logical draw order.
func (p *Plugin) AttachZOrder(e ecs.Entity, value float64) error {
	if order, ok := ecs.Get(p.world, e, component.ZOrderComponent); ok {
		order.Set(value)
		return nil
	}
	if err := ecs.Add(p.world, e, component.ZOrderComponent, component.NewZOrder(value)); err != nil {
		return fmt.Errorf("attach z-order: %w", err)
	}
	return nil
}

// AttachYOrigin derives the entity's draw order from its y position.
func (p *Plugin) AttachYOrigin(e ecs.Entity, offset float64) error {
	if err := ecs.Add(p.world, e, component.YOriginComponent, &component.YOrigin{Offset: offset}); err != nil {
		return fmt.Errorf("attach y-origin: %w", err)
	}
	return nil
}
