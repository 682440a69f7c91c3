package particle

import (
	"math"
	"testing"

	"go-particle-field/internal/config"
	"go-particle-field/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSet(t *testing.T, count int) *ParticleSet {
	t.Helper()
	return NewParticleSet(count, utils.NewPRNGService(1234))
}

func TestNewParticleSet_Ranges(t *testing.T) {
	s := newTestSet(t, 5000)
	require.Equal(t, 5000, s.Count)
	require.Len(t, s.Positions, 15000)
	require.Len(t, s.Colors, 15000)
	require.Len(t, s.Velocities, 15000)
	require.Len(t, s.Sizes, 5000)
	require.Len(t, s.Shininess, 5000)

	half := config.FieldCubeSide / 2
	for _, p := range s.Positions {
		assert.True(t, p >= -half && p < half, "position %v outside cube", p)
	}
	for _, c := range s.Colors {
		assert.True(t, c >= 0 && c <= 1, "colour %v outside [0,1]", c)
	}
	accents := 0
	for _, size := range s.Sizes {
		assert.True(t, size >= 0.03 && size < 0.37, "size %v out of range", size)
		if size >= 0.18 {
			accents++
		}
	}
	assert.Greater(t, accents, 0)
	for _, sh := range s.Shininess {
		assert.True(t, sh >= 0 && sh < 1)
	}
	for _, v := range s.Velocities {
		assert.True(t, math.Abs(v) <= 0.005)
	}
}

func TestNewParticleSet_ColourBands(t *testing.T) {
	s := newTestSet(t, 3000)
	magenta, cyan := 0, 0
	for i := 0; i < s.Count; i++ {
		r, g, b := s.Color(i)
		assert.GreaterOrEqual(t, b, 0.5)
		switch {
		case r >= 0.5 && g < 0.3:
			magenta++
		case r < 0.3 && g >= 0.5:
			cyan++
		default:
			t.Fatalf("particle %d colour (%v,%v,%v) matches no band", i, r, g, b)
		}
	}
	// две из трёх полос пурпурные
	assert.InDelta(t, 2000, magenta, 150)
	assert.InDelta(t, 1000, cyan, 150)
}

func TestNewParticleSet_Deterministic(t *testing.T) {
	a := NewParticleSet(100, utils.NewPRNGService(7))
	b := NewParticleSet(100, utils.NewPRNGService(7))
	assert.Equal(t, a.Positions, b.Positions)
	assert.Equal(t, a.Shininess, b.Shininess)
}

func TestTierOf(t *testing.T) {
	tests := []struct {
		shininess float64
		want      Tier
	}{
		{0, TierC},
		{0.5, TierC},
		{0.5000001, TierB},
		{0.8, TierB},
		{0.81, TierA},
		{0.999, TierA},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TierOf(tt.shininess), "shininess %v", tt.shininess)
	}
	assert.Equal(t, "A", TierA.String())
	assert.Equal(t, 0.002, TierB.Coefficients().Amp)
}

func TestDrift_Pure(t *testing.T) {
	for _, tier := range []Tier{TierA, TierB, TierC} {
		for idx := 0; idx < 30; idx += 3 {
			dx1, dy1 := Drift(tier, 1.37, idx)
			dx2, dy2 := Drift(tier, 1.37, idx)
			assert.Equal(t, math.Float64bits(dx1), math.Float64bits(dx2))
			assert.Equal(t, math.Float64bits(dy1), math.Float64bits(dy2))
			assert.LessOrEqual(t, math.Abs(dx1), tier.Coefficients().Amp)
		}
	}
}

func TestStep_ShininessAndTiersInvariant(t *testing.T) {
	s := newTestSet(t, 500)
	shininess := append([]float64(nil), s.Shininess...)
	tiers := make([]Tier, s.Count)
	for i := range tiers {
		tiers[i] = s.Tier(i)
	}

	f := NewField(s)
	for n := 0; n < 200; n++ {
		f.Step()
	}

	assert.Equal(t, shininess, s.Shininess)
	assert.Equal(t, 500, s.Count)
	for i := range tiers {
		assert.Equal(t, tiers[i], s.Tier(i))
		assert.Equal(t, TierOf(s.Shininess[i]), s.Tier(i))
	}
}

func TestStep_CountFixedForBothDeviceClasses(t *testing.T) {
	for _, constrained := range []bool{true, false} {
		count := config.ParticleCountFor(constrained)
		f := NewField(newTestSet(t, count))
		for n := 0; n < 10; n++ {
			f.Step()
		}
		assert.Equal(t, count, f.Set.Count)
		assert.Len(t, f.Set.Positions, count*3)
	}
}

func TestStep_TierAScenario(t *testing.T) {
	s := NewUniformSet(10, 0.9)
	before := append([]float64(nil), s.Positions...)

	f := NewField(s)
	require.True(t, f.Step())
	require.Equal(t, 0.01, f.Time)

	for i := 0; i < s.Count; i++ {
		idx := i * 3
		wantX := before[idx] + math.Sin(0.01*2.0+float64(idx)*0.02)*0.003
		wantY := before[idx+1] + math.Cos(0.01*1.8+float64(idx)*0.02)*0.003
		assert.Equal(t, wantX, s.Positions[idx], "x of particle %d", i)
		assert.Equal(t, wantY, s.Positions[idx+1], "y of particle %d", i)
		assert.Equal(t, before[idx+2], s.Positions[idx+2], "z must not move")
	}
}

func TestStep_ZNeverChanges(t *testing.T) {
	s := newTestSet(t, 300)
	z := make([]float64, s.Count)
	for i := range z {
		z[i] = s.Positions[i*3+2]
	}
	f := NewField(s)
	for n := 0; n < 100; n++ {
		f.Step()
	}
	for i := range z {
		assert.Equal(t, z[i], s.Positions[i*3+2])
	}
}

func TestStep_InactiveLeavesStateUntouched(t *testing.T) {
	s := newTestSet(t, 200)
	positions := append([]float64(nil), s.Positions...)

	f := NewField(s)
	f.SetActive(false)
	for n := 0; n < 1000; n++ {
		assert.False(t, f.Step())
	}

	assert.Equal(t, 0.0, f.Time)
	assert.Equal(t, positions, s.Positions)
	assert.Equal(t, Euler{}, f.Rotation)
	assert.Equal(t, uint64(0), f.Frames())
}

func TestStep_ResumesAfterGate(t *testing.T) {
	f := NewField(newTestSet(t, 10))
	f.Step()
	f.SetActive(false)
	f.Step()
	assert.Equal(t, 0.01, f.Time)
	f.SetActive(true)
	f.Step()
	assert.InDelta(t, 0.02, f.Time, 1e-15)
	assert.Equal(t, uint64(2), f.Frames())
}

func TestStep_Rotation(t *testing.T) {
	f := NewField(NewUniformSet(1, 0))
	for n := 0; n < 100; n++ {
		f.Step()
	}
	assert.InDelta(t, 100*config.RotationStepX, f.Rotation.X, 1e-12)
	assert.InDelta(t, 100*config.RotationStepY, f.Rotation.Y, 1e-12)
	assert.InDelta(t, 100*config.RotationStepZ, f.Rotation.Z, 1e-12)
}

func TestStep_Reproducible(t *testing.T) {
	a := NewField(NewParticleSet(50, utils.NewPRNGService(3)))
	b := NewField(NewParticleSet(50, utils.NewPRNGService(3)))
	for n := 0; n < 64; n++ {
		a.Step()
		b.Step()
	}
	assert.Equal(t, a.Set.Positions, b.Set.Positions)
}

func TestDisplace_DoesNotTouchInput(t *testing.T) {
	p := Vec3{1, 2, 3}
	out := Displace(p, 0.5, [2]float64{0.1, -0.2})
	assert.Equal(t, Vec3{1, 2, 3}, p)
	assert.NotEqual(t, p, out)

	// при t=0 и якоре в самой точке смещение по z равно sin(0) = 0
	anchored := Displace(Vec3{5, -5, 0}, 0, [2]float64{0.5, -0.5})
	assert.InDelta(t, 0, anchored.Z, 1e-12)
}

func TestDisplace_ExtremePointerIsBounded(t *testing.T) {
	out := Displace(Vec3{}, 3, [2]float64{1e9, -1e9})
	assert.LessOrEqual(t, math.Abs(out.Z), rippleAmpZ)
	assert.LessOrEqual(t, math.Abs(out.X), waveAmpXY)
}

func TestEulerMatrix(t *testing.T) {
	m := Euler{}.Matrix()
	assert.Equal(t, Vec3{1, 2, 3}, m.Apply(Vec3{1, 2, 3}))

	// поворот на 90° вокруг z переводит x в y
	r := Euler{Z: math.Pi / 2}.Matrix().Apply(Vec3{1, 0, 0})
	assert.InDelta(t, 0, r.X, 1e-12)
	assert.InDelta(t, 1, r.Y, 1e-12)

	// поворот на 90° вокруг x переводит y в z
	r = Euler{X: math.Pi / 2}.Matrix().Apply(Vec3{0, 1, 0})
	assert.InDelta(t, 1, r.Z, 1e-12)
}

func TestTilt(t *testing.T) {
	tilt := NewTilt()
	rot := Euler{X: 0.2, Y: 0.3, Z: 0.4}

	tilt.Update(0.5, &rot)
	assert.Equal(t, Euler{X: 0.2, Y: 0.3, Z: 0.4}, rot, "idle tilt must not write")

	tilt.Retarget(rot, 400, -200)
	tx, ty := tilt.Target()
	assert.InDelta(t, -0.02, tx, 1e-12)
	assert.InDelta(t, 0.04, ty, 1e-12)

	tilt.Update(1.0, &rot) // p = 0.5, ease = 0.75
	assert.InDelta(t, 0.2+(-0.02-0.2)*0.75, rot.X, 1e-12)
	assert.InDelta(t, 0.3+(0.04-0.3)*0.75, rot.Y, 1e-12)
	assert.Equal(t, 0.4, rot.Z)
	assert.True(t, tilt.Running())

	tilt.Update(5, &rot)
	assert.InDelta(t, -0.02, rot.X, 1e-12)
	assert.InDelta(t, 0.04, rot.Y, 1e-12)
	assert.False(t, tilt.Running())
}
