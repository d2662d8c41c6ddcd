// Package stagecam is a camera plugin suite for fixed-tick 2D games:
// camera motion with target binding, anchor-triggered moves, trauma
// screen shake, and z-order sequencing. The host owns rendering and
// its own gameplay update; stagecam owns the camera pipeline.
//
// Per frame the host calls BeginFrame(dt) before its own logic (shake
// offsets from the previous frame are undone there, so gameplay sees
// true positions) and Update() after it. Update runs the fixed pass
// order: commands, anchor binding, motion advance, static-anchor
// override, shake, y-origin, z-order.
package stagecam

import (
	"fmt"
	"log"

	"github.com/hollowmoor/stagecam/config"
	"github.com/hollowmoor/stagecam/ecs"
	"github.com/hollowmoor/stagecam/ecs/component"
	"github.com/hollowmoor/stagecam/ecs/system"
	"golang.org/x/image/math/f64"
)

// Plugin wires the camera systems over a world. Not safe for use from
// multiple goroutines; the whole design is single-threaded per tick.
type Plugin struct {
	world *ecs.World
	pre   *ecs.Scheduler
	post  *ecs.Scheduler

	cfg     config.Config
	cfgPath string
	watcher *config.Watcher
}

// Option configures a Plugin at construction time.
type Option func(*Plugin) error

// WithConfig supplies tuning directly.
func WithConfig(cfg config.Config) Option {
	return func(p *Plugin) error {
		if err := cfg.Validate(); err != nil {
			return err
		}
		p.cfg = cfg
		return nil
	}
}

// WithConfigFile loads tuning from a YAML file.
func WithConfigFile(path string) Option {
	return func(p *Plugin) error {
		cfg, err := config.Load(path)
		if err != nil {
			return err
		}
		p.cfg = cfg
		p.cfgPath = path
		return nil
	}
}

// WithConfigWatch reloads the config file whenever it changes on disk.
// Requires WithConfigFile earlier in the option list.
func WithConfigWatch() Option {
	return func(p *Plugin) error {
		if p.cfgPath == "" {
			return fmt.Errorf("stagecam: config watch requires a config file")
		}
		watcher, err := config.NewWatcher(p.cfgPath)
		if err != nil {
			return err
		}
		p.watcher = watcher
		return nil
	}
}

// New creates a plugin with an empty world.
func New(opts ...Option) (*Plugin, error) {
	p := &Plugin{
		world: ecs.NewWorld(),
		cfg:   config.Default(),
	}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}

	p.pre = ecs.NewScheduler(
		system.NewShakeRestoreSystem(),
	)
	p.post = ecs.NewScheduler(
		system.NewCommandSystem(),
		system.NewAnchorBindingSystem(),
		system.NewCameraMotionSystem(),
		system.NewStaticAnchorSystem(),
		system.NewShakeSystem(func() component.ShakeSettings { return p.cfg.Shake.Settings() }),
		system.NewYOriginSystem(),
		system.NewZOrderSystem(),
	)
	return p, nil
}

// World exposes the plugin's world so hosts can attach their own
// components to spawned entities.
func (p *Plugin) World() *ecs.World {
	return p.world
}

// Config returns the current tuning.
func (p *Plugin) Config() config.Config {
	return p.cfg
}

// BeginFrame advances the clock and restores pre-shake translations.
// Call before the host's own update logic.
func (p *Plugin) BeginFrame(dt float64) {
	p.pollConfig()
	p.world.Advance(dt)
	p.pre.Update(p.world)
}

// Update runs the camera pipeline. Call after the host's own update
// logic, once per frame.
func (p *Plugin) Update() {
	p.post.Update(p.world)
}

// Close releases the config watcher, if any.
func (p *Plugin) Close() error {
	if p.watcher != nil {
		return p.watcher.Close()
	}
	return nil
}

func (p *Plugin) pollConfig() {
	if p.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-p.watcher.Events:
			if !ok {
				return
			}
			cfg, err := config.Load(path)
			if err != nil {
				log.Printf("stagecam: config reload failed, keeping previous: %v", err)
				continue
			}
			p.cfg = cfg
		case err := <-p.watcher.Errors:
			if err != nil {
				log.Printf("stagecam: config watcher: %v", err)
			}
		default:
			return
		}
	}
}

// Camera returns the camera entity, if exactly one exists.
func (p *Plugin) Camera() (ecs.Entity, bool) {
	cameras := p.world.Query(component.CameraTagComponent.Kind().ID())
	if len(cameras) != 1 {
		return 0, false
	}
	return cameras[0], true
}

// CameraPosition returns the camera's current translation.
func (p *Plugin) CameraPosition() (f64.Vec3, bool) {
	camera, ok := p.Camera()
	if !ok {
		return f64.Vec3{}, false
	}
	t, ok := ecs.Get(p.world, camera, component.TransformComponent)
	if !ok {
		return f64.Vec3{}, false
	}
	return t.Translation(), true
}

// BoundTarget reports which entity the camera is currently bound to.
// Other systems (e.g. UI) can use this to show the follow state.
func (p *Plugin) BoundTarget() (ecs.Entity, bool) {
	camera, ok := p.Camera()
	if !ok {
		return 0, false
	}
	motion, ok := ecs.Get(p.world, camera, component.CameraMotionComponent)
	if !ok || motion.Mode != component.MotionBound {
		return 0, false
	}
	return ecs.Entity(motion.Target), true
}
