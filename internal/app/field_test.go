package app

import (
	"testing"

	"go-particle-field/internal/config"
	"go-particle-field/internal/event"
	"go-particle-field/internal/particle"
	"go-particle-field/pkg/render"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newTestApp(t *testing.T, mutate func(s *config.Settings)) *FieldApp {
	t.Helper()
	s := config.DefaultSettings()
	s.Seed = 2024
	s.Constrained = true
	if mutate != nil {
		mutate(s)
	}
	require.NoError(t, s.Validate())
	return NewFieldApp(s, 800, 600, zaptest.NewLogger(t))
}

func TestNewFieldApp_DeviceClass(t *testing.T) {
	a := newTestApp(t, nil)
	assert.Equal(t, config.ParticleCountConstrained, a.Field.Set.Count)

	b := newTestApp(t, func(s *config.Settings) { s.Constrained = false })
	assert.Equal(t, config.ParticleCountDefault, b.Field.Set.Count)

	s := config.DefaultSettings()
	narrow := NewFieldApp(s, config.ConstrainedMaxWidth, 900, zaptest.NewLogger(t))
	assert.Equal(t, config.ParticleCountConstrained, narrow.Field.Set.Count, "narrow viewport is constrained")
}

func TestFieldApp_UpdateSteps(t *testing.T) {
	a := newTestApp(t, nil)
	require.NotNil(t, a.Frame())

	assert.True(t, a.Update(1.0/60))
	assert.Equal(t, config.PhaseStep, a.Field.Time)
	assert.Equal(t, a.Field.Time, a.Frame().Time)
}

func TestFieldApp_ScrollGate(t *testing.T) {
	a := newTestApp(t, nil)

	// уходим ниже секции home
	a.ScrollSystem.ScrollTo(650)
	require.False(t, a.Field.Active())

	positions := append([]float64(nil), a.Field.Set.Positions...)
	frame := a.Frame()
	frameTime := frame.Time
	for i := 0; i < 1000; i++ {
		assert.False(t, a.Update(1.0/60))
	}
	assert.Equal(t, 0.0, a.Field.Time)
	assert.Equal(t, positions, a.Field.Set.Positions)
	assert.Equal(t, frameTime, a.Frame().Time, "frame is not rebuilt while inactive")

	a.ScrollSystem.ScrollTo(100)
	require.True(t, a.Field.Active())
	assert.True(t, a.Update(1.0/60))
}

func TestFieldApp_PointerMovesFieldAndTilt(t *testing.T) {
	a := newTestApp(t, nil)

	a.PointerTracker.Move(600, 150, event.PointerMouse) // offset (200, -150)
	assert.Equal(t, [2]float64{0.5, -0.5}, a.Field.Pointer)
	require.True(t, a.Tilt.Running())
	tx, ty := a.Tilt.Target()
	assert.InDelta(t, -150*config.TiltFactor, tx, 1e-12)
	assert.InDelta(t, 200*config.TiltFactor, ty, 1e-12)

	for i := 0; i < 200; i++ {
		a.Update(1.0 / 60)
	}
	assert.False(t, a.Tilt.Running())
	// после окончания твина шаги вращения снова накапливаются поверх цели
	assert.Greater(t, a.Field.Rotation.Y, ty)
}

func TestFieldApp_PointerStartsCentred(t *testing.T) {
	a := newTestApp(t, nil)

	// курсор ещё не входил в окно: фронтенд сообщает центр экрана
	assert.False(t, a.PointerTracker.Move(400, 300, event.PointerMouse))
	a.Update(2)
	assert.Equal(t, [2]float64{0, 0}, a.Field.Pointer)
	assert.False(t, a.Tilt.Running())
	assert.Equal(t, config.RotationStepX, a.Field.Rotation.X, "only the bulk step is applied")
}

func TestFieldApp_TouchDoesNotTilt(t *testing.T) {
	a := newTestApp(t, nil)

	a.PointerTracker.Move(600, 150, event.PointerTouch)
	assert.Equal(t, [2]float64{0.5, -0.5}, a.Field.Pointer)
	assert.False(t, a.Tilt.Running())

	a.PointerTracker.Move(400, 450, event.PointerMouse)
	assert.True(t, a.Tilt.Running())
}

func TestFieldApp_TiltRunsWhileInactive(t *testing.T) {
	a := newTestApp(t, nil)
	a.ScrollSystem.ScrollTo(650)
	a.PointerTracker.Move(0, 0, event.PointerMouse)

	a.Update(1)
	assert.NotEqual(t, particle.Euler{}, a.Field.Rotation)
	assert.Equal(t, 0.0, a.Field.Time)
}

func TestFieldApp_SceneFrozenWhileInactive(t *testing.T) {
	a := newTestApp(t, nil)
	a.Update(1.0 / 60)
	scene := a.Scene()
	sceneTime := scene.Time
	snapshot := append([]render.WorldPoint(nil), scene.Points...)

	a.ScrollSystem.ScrollTo(650)
	rotation := a.Field.Rotation
	a.PointerTracker.Move(0, 0, event.PointerMouse)
	for i := 0; i < 60; i++ {
		assert.False(t, a.Update(1.0/60))
	}
	require.NotEqual(t, rotation, a.Field.Rotation, "tilt kept running")
	assert.Equal(t, snapshot, a.Scene().Points)
	assert.Equal(t, sceneTime, a.Scene().Time)

	a.ScrollSystem.ScrollTo(0)
	require.True(t, a.Update(1.0/60))
	assert.NotEqual(t, snapshot, a.Scene().Points)
}

func TestFieldApp_ReduceMotion(t *testing.T) {
	a := newTestApp(t, func(s *config.Settings) { s.ReduceMotion = true })
	require.True(t, a.ReduceMotion())
	require.False(t, a.Field.Active())
	require.NotNil(t, a.Frame())
	assert.NotEmpty(t, a.Frame().Points)

	a.ScrollSystem.ScrollTo(650)
	a.ScrollSystem.ScrollTo(0)
	assert.False(t, a.Field.Active(), "scrolling back must not re-enable a reduced-motion field")
	assert.False(t, a.Update(1.0/60))
}

func TestFieldApp_Resize(t *testing.T) {
	a := newTestApp(t, nil)
	a.Resize(1024, 768)
	assert.Equal(t, 1024, a.Frame().Width)
	assert.Equal(t, 768, a.Projector.Camera.Height)

	a.PointerTracker.Move(1024, 768, event.PointerMouse)
	assert.Equal(t, [2]float64{1, 1}, a.Field.Pointer)
}
