// internal/state/field_state.go
package state

import (
	game "go-particle-field/internal/app"
	"go-particle-field/internal/config"
	"go-particle-field/internal/event"
	"go-particle-field/internal/input"
	"go-particle-field/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"
	"golang.org/x/image/font"
)

// FieldState — основное состояние: поле частиц, индикатор ворот и HUD
type FieldState struct {
	sm        *StateMachine
	app       *game.FieldApp
	layer     *ui.ParticleLayer
	indicator *ui.GateIndicator
	hud       *ui.HUD
	touchIDs  []ebiten.TouchID
	cursor    input.CursorFilter
	opacity   float64
	logger    *zap.Logger
}

func NewFieldState(sm *StateMachine, fieldApp *game.FieldApp, face font.Face, logger *zap.Logger) *FieldState {
	cam := fieldApp.Projector.Camera
	return &FieldState{
		sm:    sm,
		app:   fieldApp,
		layer: ui.NewParticleLayer(),
		indicator: ui.NewGateIndicator(
			float32(cam.Width-config.IndicatorOffsetX),
			float32(config.IndicatorOffsetX),
			float32(config.IndicatorRadius),
		),
		hud:     ui.NewHUD(face),
		opacity: 1,
		logger:  logger,
	}
}

func (s *FieldState) Enter() {
	s.logger.Debug("field state entered")
}

func (s *FieldState) Update(deltaTime float64) {
	s.handleInput()
	s.app.Update(deltaTime)
}

// handleInput опрашивает ebiten: касание важнее курсора, колесо и клавиши прокручивают страницу
func (s *FieldState) handleInput() {
	s.touchIDs = ebiten.AppendTouchIDs(s.touchIDs[:0])
	if len(s.touchIDs) > 0 {
		x, y := ebiten.TouchPosition(s.touchIDs[0])
		s.app.PointerTracker.Move(x, y, event.PointerTouch)
	} else {
		x, y := ebiten.CursorPosition()
		if s.cursor.Live(x, y) {
			s.app.PointerTracker.Move(x, y, event.PointerMouse)
		}
	}

	// в ebiten положительное колесо — вверх, на странице положительная прокрутка — вниз
	if _, wy := ebiten.Wheel(); wy != 0 {
		s.app.ScrollSystem.Scroll(-wy)
	}
	pageUnits := float64(s.app.Projector.Camera.Height) / s.app.ScrollSystem.Speed()
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		s.app.ScrollSystem.Scroll(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		s.app.ScrollSystem.Scroll(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeyPageDown), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		s.app.ScrollSystem.Scroll(pageUnits)
	case inpututil.IsKeyJustPressed(ebiten.KeyPageUp):
		s.app.ScrollSystem.Scroll(-pageUnits)
	case inpututil.IsKeyJustPressed(ebiten.KeyHome):
		s.app.ScrollSystem.ScrollTo(0)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		if s.indicator.Contains(float32(mx), float32(my)) {
			s.indicator.HandleClick()
			s.hud.Toggle()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		s.hud.Toggle()
	}
}

func (s *FieldState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)

	frame := s.app.Frame()
	s.layer.Draw(screen, frame, s.opacity)

	stateColor := config.ActiveColor
	if !s.app.Field.Active() {
		stateColor = config.InactiveColor
	}
	s.indicator.Draw(screen, stateColor, config.IndicatorStroke, s.app.Field.Active())
	s.hud.Draw(screen, frame, s.app.Field.Set.Count, s.app.ScrollSystem.Position())
}

// Resize переносит индикатор и камеру под новый размер окна
func (s *FieldState) Resize(width, height int) {
	s.app.Resize(width, height)
	s.indicator.X = float32(width - config.IndicatorOffsetX)
}

func (s *FieldState) Exit() {}
