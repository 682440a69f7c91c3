package render

import (
	"go-particle-field/internal/config"
	"go-particle-field/internal/particle"
	"go-particle-field/internal/utils"
)

// sparkleCenter is the sparkle term sin(d*20)*0.3+0.7 at the centre of a point.
const sparkleCenter = 0.7

// Point is one particle as it appears on screen for the current frame.
type Point struct {
	X, Y      float32 // centre in pixels
	Size      float32 // diameter in pixels
	Depth     float32
	R, G, B   float32 // base colour
	Alpha     float32 // distance fade
	Highlight float32 // shininess*0.8, peaks at the centre
	Sparkle   bool    // brightest tier gets the ring pattern
}

// Frame is the projected field, independent of any graphics backend.
type Frame struct {
	Width, Height int
	Time          float64
	Active        bool
	Points        []Point
}

// Projector turns a field into frames. The frame buffer is reused between calls.
type Projector struct {
	Camera *Camera
	frame  Frame
}

// NewProjector creates a projector for the given camera.
func NewProjector(camera *Camera) *Projector {
	return &Projector{Camera: camera}
}

// Build projects every particle of f: rigid rotation, then the wave displacement, then the
// perspective divide. The stored positions of f are only read.
func (p *Projector) Build(f *particle.Field) *Frame {
	set := f.Set
	cam := p.Camera
	m := f.Rotation.Matrix()

	fr := &p.frame
	fr.Width, fr.Height = cam.Width, cam.Height
	fr.Time = f.Time
	fr.Active = f.Active()
	fr.Points = fr.Points[:0]

	for i := 0; i < set.Count; i++ {
		base := set.Position(i)

		// прозрачность считается по неискажённой позиции
		fade := utils.Clamp(1-cam.Depth(m.Apply(base))/config.FadeDistance, 0, 1)
		if fade <= 0 {
			continue
		}

		world := m.Apply(particle.Displace(base, f.Time, f.Pointer))
		sx, sy, depth, ok := cam.Project(world)
		if !ok {
			continue
		}

		size := set.Sizes[i] * utils.Clamp(config.PointSizeScale/max(0.001, depth), 0, config.PointSizeMax)
		r, g, b := set.Color(i)
		fr.Points = append(fr.Points, Point{
			X:         float32(sx),
			Y:         float32(sy),
			Size:      float32(size),
			Depth:     float32(depth),
			R:         float32(r),
			G:         float32(g),
			B:         float32(b),
			Alpha:     float32(fade),
			Highlight: float32(set.Shininess[i] * 0.8),
			Sparkle:   set.Tier(i) == particle.TierA,
		})
	}
	return fr
}
