// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"
	"time"

	"go-particle-field/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GateIndicator — точка в углу экрана, показывающая состояние ворот поля
type GateIndicator struct {
	X, Y          float32
	Radius        float32
	LastClickTime time.Time
}

func NewGateIndicator(x, y, radius float32) *GateIndicator {
	return &GateIndicator{
		X:      x,
		Y:      y,
		Radius: radius,
	}
}

// Draw отрисовывает индикатор; после клика он коротко «вспыхивает»
func (i *GateIndicator) Draw(screen *ebiten.Image, stateColor, stroke color.RGBA, active bool) {
	elapsed := time.Since(i.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	currentRadius := i.Radius * float32(scale)

	if !active {
		stroke = render.DarkenColor(stroke)
	}
	vector.DrawFilledCircle(screen, i.X, i.Y, currentRadius+2, stroke, true)
	vector.DrawFilledCircle(screen, i.X, i.Y, currentRadius, stateColor, true)
}

// Contains проверяет, попадает ли точка в индикатор
func (i *GateIndicator) Contains(x, y float32) bool {
	dx := x - i.X
	dy := y - i.Y
	return dx*dx+dy*dy <= i.Radius*i.Radius
}

// HandleClick запоминает время клика для анимации
func (i *GateIndicator) HandleClick() {
	i.LastClickTime = time.Now()
}
