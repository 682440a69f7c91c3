// internal/app/field.go
package app

import (
	"go-particle-field/internal/config"
	"go-particle-field/internal/event"
	"go-particle-field/internal/input"
	"go-particle-field/internal/particle"
	"go-particle-field/internal/system"
	"go-particle-field/internal/utils"
	"go-particle-field/pkg/render"

	"go.uber.org/zap"
)

// FieldApp holds the particle field and the systems that drive it.
// Frontends feed it input and a frame delta, then draw Frame().
type FieldApp struct {
	Field           *particle.Field
	Tilt            *particle.Tilt
	ScrollSystem    *system.ScrollSystem
	PointerTracker  *input.PointerTracker
	Projector       *render.Projector
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService

	reduceMotion bool
	frame        *render.Frame
	scene        *render.Scene
	logger       *zap.Logger
}

// NewFieldApp creates the field for a width x height viewport. The device class is decided
// once, here: constrained if settings say so or the viewport is narrow.
func NewFieldApp(settings *config.Settings, width, height int, logger *zap.Logger) *FieldApp {
	if logger == nil {
		logger = zap.NewNop()
	}
	dispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(settings.Seed)
	constrained := settings.Constrained || width <= config.ConstrainedMaxWidth
	set := particle.NewParticleSet(config.ParticleCountFor(constrained), rng)

	a := &FieldApp{
		Field:           particle.NewField(set),
		Tilt:            particle.NewTilt(),
		ScrollSystem:    system.NewScrollSystem(dispatcher, float64(height), settings.Page.Sections, settings.Page.ScrollSpeed),
		PointerTracker:  input.NewPointerTracker(dispatcher, width, height),
		Projector:       render.NewProjector(render.NewCamera(width, height)),
		EventDispatcher: dispatcher,
		Rng:             rng,
		logger:          logger,
	}

	listener := &FieldEventListener{app: a}
	dispatcher.Subscribe(event.SectionLeft, listener)
	dispatcher.Subscribe(event.SectionEnteredBack, listener)
	dispatcher.Subscribe(event.PointerMoved, listener)
	dispatcher.Subscribe(event.MotionReduced, listener)

	if settings.ReduceMotion {
		dispatcher.Dispatch(event.Event{Type: event.MotionReduced})
	}

	// первый кадр строится всегда, даже если поле сразу неактивно
	a.frame = a.Projector.Build(a.Field)

	logger.Info("particle field created",
		zap.Int("count", set.Count),
		zap.Bool("constrained", constrained),
		zap.Bool("reduce_motion", settings.ReduceMotion),
		zap.Int64("seed", settings.Seed))
	return a
}

// Update advances the field by one display frame. deltaTime (seconds) only drives the tilt
// tween, which keeps running while the gate is closed; the field itself moves by a fixed step
// per frame. Returns whether the field stepped.
func (a *FieldApp) Update(deltaTime float64) bool {
	if a.reduceMotion {
		return false
	}
	a.Tilt.Update(deltaTime, &a.Field.Rotation)

	if !a.Field.Step() {
		return false
	}
	a.frame = a.Projector.Build(a.Field)
	if a.scene != nil {
		a.scene.Build(a.Field)
	}
	return true
}

// Scene returns the world-space snapshot of the last active step, building it on first use.
// Like Frame, it is not rebuilt while the gate is closed, so the tilt tween and pointer moves
// made in that time do not show until the field runs again.
func (a *FieldApp) Scene() *render.Scene {
	if a.scene == nil {
		a.scene = &render.Scene{}
		a.scene.Build(a.Field)
	}
	return a.scene
}

// Frame returns the last projected frame. While the field is inactive it is not rebuilt.
func (a *FieldApp) Frame() *render.Frame {
	return a.frame
}

// ReduceMotion reports whether the field is held static.
func (a *FieldApp) ReduceMotion() bool {
	return a.reduceMotion
}

// Resize adapts the camera, pointer mapping and page to a new viewport.
// The scroll trigger keeps its geometry until the page is rebuilt.
func (a *FieldApp) Resize(width, height int) {
	cam := a.Projector.Camera
	if cam.Width == width && cam.Height == height {
		return
	}
	cam.Resize(width, height)
	a.PointerTracker.Resize(width, height)
	a.frame = a.Projector.Build(a.Field)
	a.logger.Debug("viewport resized", zap.Int("width", width), zap.Int("height", height))
}

func (a *FieldApp) setActive(active bool, reason string) {
	if a.reduceMotion && active {
		return
	}
	if a.Field.Active() == active {
		return
	}
	a.Field.SetActive(active)
	a.logger.Debug("field gate changed", zap.Bool("active", active), zap.String("reason", reason))
}

// FieldEventListener обрабатывает события, которые управляют полем.
type FieldEventListener struct {
	app *FieldApp
}

// OnEvent реализует интерфейс event.Listener.
func (l *FieldEventListener) OnEvent(e event.Event) {
	a := l.app
	switch e.Type {
	case event.SectionLeft:
		a.setActive(false, "section left")
	case event.SectionEnteredBack:
		a.setActive(true, "section entered back")
	case event.PointerMoved:
		if p, ok := e.Data.(event.PointerData); ok {
			a.Field.SetPointer(p.NDCX, p.NDCY)
			// наклон запускает только мышь, касание лишь сдвигает волну
			if p.Source == event.PointerMouse {
				a.Tilt.Retarget(a.Field.Rotation, p.OffsetX, p.OffsetY)
			}
		}
	case event.MotionReduced:
		a.setActive(false, "reduced motion")
		a.reduceMotion = true
	}
}
