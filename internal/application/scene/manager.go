package scene

import (
	"errors"
	"fmt"
	"log"

	"github.com/younwookim/sceneloop/internal/application/loop"
	"github.com/younwookim/sceneloop/internal/application/state"
	"github.com/younwookim/sceneloop/internal/application/trace"
)

// ErrSceneNotFound is returned by Activate for an unregistered key.
var ErrSceneNotFound = errors.New("scene not found")

// Tracer receives loop events. *trace.Recorder implements it.
type Tracer interface {
	Record(kind trace.Kind, scene string, err error)
}

// Option configures a Manager.
type Option[S any] func(*Manager[S])

// WithLogger sets the logger used for warnings and step failures.
func WithLogger[S any](l *log.Logger) Option[S] {
	return func(m *Manager[S]) {
		m.logger = l
	}
}

// WithTracer records every activation, setup, step, stop and resume.
func WithTracer[S any](t Tracer) Option[S] {
	return func(m *Manager[S]) {
		m.tracer = t
	}
}

// Manager owns the scene registry and the active scene.
//
// The registry is a plain slice searched in registration order. Duplicate
// keys are allowed and the first registered scene wins.
//
// A Manager is not safe for concurrent use; call it from the goroutine that
// runs frames.
type Manager[S any] struct {
	surface S
	loop    *loop.Controller
	scenes  []*Scene[S]
	active  *Scene[S]
	logger  *log.Logger
	tracer  Tracer
}

// NewManager creates a Manager drawing to surface and driving ctrl.
func NewManager[S any](surface S, ctrl *loop.Controller, opts ...Option[S]) *Manager[S] {
	m := &Manager[S]{
		surface: surface,
		loop:    ctrl,
		logger:  log.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Register appends a scene with empty params. A nil setup or step does nothing.
func (m *Manager[S]) Register(key string, setup, step Func[S]) {
	if m.lookup(key) != nil {
		m.logger.Printf("scene %q registered twice; activation uses the first", key)
	}
	m.scenes = append(m.scenes, &Scene[S]{
		key:    key,
		setup:  setup,
		step:   step,
		params: Params{},
	})
}

// Activate makes the first scene registered under key the active one.
//
// It sets the running flag, binds params (nil means empty), runs setup once
// and then runs the scene's first step immediately, restarting the frame loop
// even if it was already running.
//
// An unknown key returns ErrSceneNotFound and changes nothing. If setup fails
// the scene stays active but no step is installed, so the loop idles until the
// next activation.
func (m *Manager[S]) Activate(key string, params Params) error {
	sc := m.lookup(key)
	if sc == nil {
		m.record(trace.KindMissing, key, ErrSceneNotFound)
		return fmt.Errorf("activate %q: %w", key, ErrSceneNotFound)
	}

	m.loop.Arm()
	if params == nil {
		params = Params{}
	}
	m.active = sc
	sc.params = params
	m.record(trace.KindActivate, key, nil)

	if sc.setup != nil {
		if err := sc.setup(m, sc); err != nil {
			m.loop.Install(nil)
			m.record(trace.KindSetup, key, err)
			return fmt.Errorf("setup scene %q: %w", key, err)
		}
	}
	m.record(trace.KindSetup, key, nil)

	m.loop.Install(m.stepper(sc))
	m.loop.Kick()
	return nil
}

// Stop ends the frame loop after the frame that is already scheduled.
func (m *Manager[S]) Stop() {
	m.loop.Stop()
	m.record(trace.KindStop, m.activeKey(), nil)
}

// Resume restarts the frame loop on the active scene without running setup.
func (m *Manager[S]) Resume() {
	m.record(trace.KindResume, m.activeKey(), nil)
	m.loop.Resume()
}

// Active returns the active scene, or nil before the first activation.
func (m *Manager[S]) Active() *Scene[S] {
	return m.active
}

// Surface returns the drawing surface given to NewManager.
func (m *Manager[S]) Surface() S {
	return m.surface
}

// Running reports whether the frame loop keeps requesting frames.
func (m *Manager[S]) Running() bool {
	return m.loop.Running()
}

// State returns the loop state.
func (m *Manager[S]) State() state.LoopState {
	return m.loop.State()
}

// Err returns the step failure that stopped the loop, if any.
func (m *Manager[S]) Err() error {
	return m.loop.Err()
}

// Scenes returns the registered keys in registration order.
func (m *Manager[S]) Scenes() []string {
	keys := make([]string, 0, len(m.scenes))
	for _, sc := range m.scenes {
		keys = append(keys, sc.key)
	}
	return keys
}

func (m *Manager[S]) lookup(key string) *Scene[S] {
	for _, sc := range m.scenes {
		if sc.key == key {
			return sc
		}
	}
	return nil
}

func (m *Manager[S]) stepper(sc *Scene[S]) loop.StepFunc {
	return func() error {
		if sc.step == nil {
			m.record(trace.KindStep, sc.key, nil)
			return nil
		}
		err := sc.step(m, sc)
		m.record(trace.KindStep, sc.key, err)
		if err != nil {
			m.logger.Printf("scene %q: step failed, stopping loop: %v", sc.key, err)
			return fmt.Errorf("step scene %q: %w", sc.key, err)
		}
		return nil
	}
}

func (m *Manager[S]) activeKey() string {
	if m.active == nil {
		return ""
	}
	return m.active.key
}

func (m *Manager[S]) record(kind trace.Kind, key string, err error) {
	if m.tracer != nil {
		m.tracer.Record(kind, key, err)
	}
}
