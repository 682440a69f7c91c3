// pkg/render/color.go
package render

import (
	"image/color"

	"go-particle-field/internal/utils"

	"github.com/lucasb-eyer/go-colorful"
)

// Shade returns the particle colour brightened by boost, clamped to the displayable range and
// premultiplied by alpha.
func Shade(r, g, b, boost, alpha float64) color.RGBA {
	a := utils.Clamp(alpha, 0, 1)
	c := colorful.Color{R: r + boost, G: g + boost, B: b + boost}.Clamped()
	c = colorful.Color{R: c.R * a, G: c.G * a, B: c.B * a}
	r8, g8, b8 := c.RGB255()
	return color.RGBA{R: r8, G: g8, B: b8, A: uint8(a*255 + 0.5)}
}

// CenterBoost is the brightening at the centre of a point: highlight*0.5 (plus sparkle for the brightest tier).
func CenterBoost(p Point) float64 {
	boost := float64(p.Highlight) * 0.5
	if p.Sparkle {
		boost += sparkleCenter * 0.5 * 0.5
	}
	return boost
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}
