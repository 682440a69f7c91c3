// internal/ui/particle_layer.go
package ui

import (
	"math"

	"go-particle-field/internal/config"
	"go-particle-field/internal/utils"
	"go-particle-field/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

// ParticleLayer рисует кадр поля батчами треугольников с аддитивным смешиванием.
// Каждая точка — квадрат с одной из трёх текстур: мягкий диск, блик в центре, кольца искры.
type ParticleLayer struct {
	disc    *ebiten.Image
	core    *ebiten.Image
	sparkle *ebiten.Image

	vs []ebiten.Vertex
	is []uint16
}

// NewParticleLayer готовит текстуры точек.
func NewParticleLayer() *ParticleLayer {
	return &ParticleLayer{
		disc:    newSprite(config.SpriteSize, discProfile),
		core:    newSprite(config.SpriteSize, coreProfile),
		sparkle: newSprite(config.SpriteSize, sparkleProfile),
		vs:      make([]ebiten.Vertex, 0, config.ParticleCountDefault*4),
		is:      make([]uint16, 0, config.ParticleCountDefault*6),
	}
}

// Профили яркости по расстоянию от центра точки d ∈ [0, 0.5].
func discProfile(d float64) float64 {
	return 1 - utils.Smoothstep(0, 0.5, d)
}

func coreProfile(d float64) float64 {
	return (1 - utils.Smoothstep(0, 0.2, d)) * discProfile(d)
}

func sparkleProfile(d float64) float64 {
	return (math.Sin(d*20)*0.3 + 0.7) * discProfile(d)
}

// newSprite строит текстуру size x size с предумноженной белой яркостью profile(d).
func newSprite(size int, profile func(d float64) float64) *ebiten.Image {
	pix := make([]byte, size*size*4)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := (float64(x)+0.5)/float64(size) - 0.5
			dy := (float64(y)+0.5)/float64(size) - 0.5
			v := utils.Clamp(profile(math.Hypot(dx, dy)), 0, 1)
			b := byte(v*255 + 0.5)
			i := (y*size + x) * 4
			pix[i], pix[i+1], pix[i+2], pix[i+3] = b, b, b, b
		}
	}
	img := ebiten.NewImage(size, size)
	img.WritePixels(pix)
	return img
}

// Draw рисует кадр. opacity — общий множитель прозрачности (плавное появление).
func (s *ParticleLayer) Draw(screen *ebiten.Image, frame *render.Frame, opacity float64) {
	if frame == nil || len(frame.Points) == 0 || opacity <= 0 {
		return
	}
	op := float32(opacity)

	// мягкий диск в цвете частицы
	s.batch(screen, s.disc, frame.Points, func(p render.Point) (r, g, b, a float32, ok bool) {
		return p.R, p.G, p.B, p.Alpha * op, true
	})
	// белый блик в центре: highlight*0.5
	s.batch(screen, s.core, frame.Points, func(p render.Point) (r, g, b, a float32, ok bool) {
		v := p.Highlight * 0.5
		return v, v, v, p.Alpha * op, v > 0
	})
	// искры только у самой яркой ступени: sparkle*0.5, затем *0.5 как часть блика
	s.batch(screen, s.sparkle, frame.Points, func(p render.Point) (r, g, b, a float32, ok bool) {
		return 0.25, 0.25, 0.25, p.Alpha * op, p.Sparkle
	})
}

type vertexColor func(p render.Point) (r, g, b, a float32, ok bool)

func (s *ParticleLayer) batch(screen, sprite *ebiten.Image, points []render.Point, colorOf vertexColor) {
	const maxQuads = math.MaxUint16 / 4

	bounds := sprite.Bounds()
	sw, sh := float32(bounds.Dx()), float32(bounds.Dy())

	s.vs, s.is = s.vs[:0], s.is[:0]
	flush := func() {
		if len(s.is) == 0 {
			return
		}
		screen.DrawTriangles(s.vs, s.is, sprite, &ebiten.DrawTrianglesOptions{
			Blend:  ebiten.BlendLighter,
			Filter: ebiten.FilterLinear,
		})
		s.vs, s.is = s.vs[:0], s.is[:0]
	}

	for _, p := range points {
		r, g, b, a, ok := colorOf(p)
		if !ok || a <= 0 || p.Size < 0.5 {
			continue
		}
		if len(s.vs)/4 >= maxQuads {
			flush()
		}
		half := p.Size / 2
		base := uint16(len(s.vs))
		corners := [4][4]float32{
			{p.X - half, p.Y - half, 0, 0},
			{p.X + half, p.Y - half, sw, 0},
			{p.X - half, p.Y + half, 0, sh},
			{p.X + half, p.Y + half, sw, sh},
		}
		for _, c := range corners {
			s.vs = append(s.vs, ebiten.Vertex{
				DstX: c[0], DstY: c[1],
				SrcX: c[2], SrcY: c[3],
				ColorR: min(r, 1), ColorG: min(g, 1), ColorB: min(b, 1), ColorA: min(a, 1),
			})
		}
		s.is = append(s.is, base, base+1, base+2, base+1, base+3, base+2)
	}
	flush()
}
