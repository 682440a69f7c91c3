package render

import (
	"go-particle-field/internal/config"
	"go-particle-field/internal/particle"
	"go-particle-field/internal/utils"
)

// WorldPoint is one particle after rotation and displacement, still in world space.
// Frontends with their own 3D camera draw these directly.
type WorldPoint struct {
	X, Y, Z float32
	Size    float32 // size attribute, before perspective scaling
	Color   [4]uint8
}

// Scene is the world-space counterpart of Frame. The buffer is reused between builds.
type Scene struct {
	Time   float64
	Points []WorldPoint
}

// Build fills the scene from f with the same rotation, displacement and distance fade as
// Projector.Build, leaving perspective to the caller.
func (s *Scene) Build(f *particle.Field) {
	set := f.Set
	m := f.Rotation.Matrix()
	s.Time = f.Time
	s.Points = s.Points[:0]

	for i := 0; i < set.Count; i++ {
		base := set.Position(i)
		fade := utils.Clamp(1-(config.CameraZ-m.Apply(base).Z)/config.FadeDistance, 0, 1)
		if fade <= 0 {
			continue
		}
		p := m.Apply(particle.Displace(base, f.Time, f.Pointer))
		r, g, b := set.Color(i)
		c := Shade(r, g, b, set.Shininess[i]*0.8*0.5, fade)
		s.Points = append(s.Points, WorldPoint{
			X:     float32(p.X),
			Y:     float32(p.Y),
			Z:     float32(p.Z),
			Size:  float32(set.Sizes[i]),
			Color: [4]uint8{c.R, c.G, c.B, c.A},
		})
	}
}
