// internal/ui/hud.go
package ui

import (
	"fmt"
	"image/color"

	"go-particle-field/internal/config"
	"go-particle-field/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// LoadFace загружает встроенный шрифт Go Regular заданного размера.
func LoadFace(size float64) (font.Face, error) {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create font face: %w", err)
	}
	return face, nil
}

// HUD — отладочная панель: время поля, число частиц, FPS и прокрутка
type HUD struct {
	face      font.Face
	textColor color.Color
	IsVisible bool
}

func NewHUD(face font.Face) *HUD {
	return &HUD{
		face:      face,
		textColor: config.TextLightColor,
		IsVisible: true,
	}
}

// Toggle показывает или скрывает панель
func (h *HUD) Toggle() {
	h.IsVisible = !h.IsVisible
}

// Draw выводит строки состояния в левом верхнем углу
func (h *HUD) Draw(screen *ebiten.Image, frame *render.Frame, count int, scroll float64) {
	if !h.IsVisible || frame == nil {
		return
	}
	state := "active"
	if !frame.Active {
		state = "paused"
	}
	lines := []string{
		fmt.Sprintf("time %.2f  %s", frame.Time, state),
		fmt.Sprintf("particles %d  visible %d", count, len(frame.Points)),
		fmt.Sprintf("scroll %.0f  fps %.0f", scroll, ebiten.ActualFPS()),
	}
	lineHeight := h.face.Metrics().Height.Ceil()
	for i, line := range lines {
		text.Draw(screen, line, h.face, 10, 10+lineHeight*(i+1), h.textColor)
	}
}
