// internal/particle/set.go
package particle

import "go-particle-field/internal/config"

// Rand — источник случайных чисел для создания набора (utils.PRNGService).
type Rand interface {
	Float64() float64
	ChooseWeighted(weights []int) int
}

// ColorBand описывает диапазон одного цветового канала: значение = rand*Span + Min.
type ColorBand struct {
	R, G, B ChannelRange
	Weight  int
}

// ChannelRange — диапазон одного канала.
type ChannelRange struct {
	Min, Span float64
}

func (c ChannelRange) sample(rng Rand) float64 {
	return rng.Float64()*c.Span + c.Min
}

// ColorBands — три полосы оттенков с равной вероятностью выбора.
// Третья полоса повторяет первую (пурпурную), так что пурпурных частиц в среднем вдвое больше.
var ColorBands = []ColorBand{
	{R: ChannelRange{0.5, 0.5}, G: ChannelRange{0, 0.3}, B: ChannelRange{0.5, 0.5}, Weight: 1},
	{R: ChannelRange{0, 0.3}, G: ChannelRange{0.5, 0.5}, B: ChannelRange{0.5, 0.5}, Weight: 1},
	{R: ChannelRange{0.5, 0.5}, G: ChannelRange{0, 0.3}, B: ChannelRange{0.5, 0.5}, Weight: 1},
}

const (
	baseSizeMin   = 0.03
	baseSizeSpan  = 0.15
	accentChance  = 0.15
	accentSizeMin = 0.12
	accentSpan    = 0.25
	velocitySpan  = 0.01
)

// ParticleSet — буферы поля частиц. Count фиксирован на всё время жизни набора.
// Позиции, цвета и скорости хранятся плоско: компонента k частицы i лежит в [i*3+k].
type ParticleSet struct {
	Count     int
	Positions []float64
	Colors    []float64
	Sizes     []float64
	Shininess []float64
	// Velocities генерируются вместе с набором, но обновлением не читаются.
	Velocities []float64

	tiers []Tier
}

// NewParticleSet создаёт набор из count частиц внутри куба со стороной config.FieldCubeSide.
func NewParticleSet(count int, rng Rand) *ParticleSet {
	if count < 0 {
		count = 0
	}
	s := &ParticleSet{
		Count:      count,
		Positions:  make([]float64, count*3),
		Colors:     make([]float64, count*3),
		Sizes:      make([]float64, count),
		Shininess:  make([]float64, count),
		Velocities: make([]float64, count*3),
		tiers:      make([]Tier, count),
	}

	weights := make([]int, len(ColorBands))
	for i, b := range ColorBands {
		weights[i] = b.Weight
	}

	for i := 0; i < count; i++ {
		i3 := i * 3

		s.Positions[i3] = (rng.Float64() - 0.5) * config.FieldCubeSide
		s.Positions[i3+1] = (rng.Float64() - 0.5) * config.FieldCubeSide
		s.Positions[i3+2] = (rng.Float64() - 0.5) * config.FieldCubeSide

		band := ColorBands[rng.ChooseWeighted(weights)]
		s.Colors[i3] = band.R.sample(rng)
		s.Colors[i3+1] = band.G.sample(rng)
		s.Colors[i3+2] = band.B.sample(rng)

		s.Sizes[i] = rng.Float64()*baseSizeSpan + baseSizeMin
		if rng.Float64() < accentChance {
			s.Sizes[i] = rng.Float64()*accentSpan + accentSizeMin
		}

		s.Shininess[i] = rng.Float64()
		s.tiers[i] = TierOf(s.Shininess[i])

		s.Velocities[i3] = (rng.Float64() - 0.5) * velocitySpan
		s.Velocities[i3+1] = (rng.Float64() - 0.5) * velocitySpan
		s.Velocities[i3+2] = (rng.Float64() - 0.5) * velocitySpan
	}
	return s
}

// NewUniformSet создаёт набор с нулевыми позициями и одинаковой shininess.
// Используется для воспроизводимых сценариев.
func NewUniformSet(count int, shininess float64) *ParticleSet {
	s := &ParticleSet{
		Count:      count,
		Positions:  make([]float64, count*3),
		Colors:     make([]float64, count*3),
		Sizes:      make([]float64, count),
		Shininess:  make([]float64, count),
		Velocities: make([]float64, count*3),
		tiers:      make([]Tier, count),
	}
	tier := TierOf(shininess)
	for i := 0; i < count; i++ {
		s.Colors[i*3], s.Colors[i*3+1], s.Colors[i*3+2] = 1, 1, 1
		s.Sizes[i] = baseSizeMin
		s.Shininess[i] = shininess
		s.tiers[i] = tier
	}
	return s
}

// Tier возвращает ступень частицы i, вычисленную при создании.
func (s *ParticleSet) Tier(i int) Tier {
	return s.tiers[i]
}

// Position возвращает позицию частицы i.
func (s *ParticleSet) Position(i int) Vec3 {
	i3 := i * 3
	return Vec3{s.Positions[i3], s.Positions[i3+1], s.Positions[i3+2]}
}

// Color возвращает цвет частицы i.
func (s *ParticleSet) Color(i int) (r, g, b float64) {
	i3 := i * 3
	return s.Colors[i3], s.Colors[i3+1], s.Colors[i3+2]
}
