// internal/particle/tier.go
package particle

import "math"

// Tier — ступень движения частицы, выбирается по shininess один раз.
type Tier uint8

const (
	TierC Tier = iota // shininess <= 0.5
	TierB             // 0.5 < shininess <= 0.8
	TierA             // shininess > 0.8
)

// TierCoefficients задают дрейф: dx = sin(t*FreqX + i*Phase)*Amp, dy = cos(t*FreqY + i*Phase)*Amp.
type TierCoefficients struct {
	FreqX, FreqY float64
	Phase        float64
	Amp          float64
}

var tierTable = [...]TierCoefficients{
	TierC: {FreqX: 0.8, FreqY: 0.6, Phase: 0.01, Amp: 0.001},
	TierB: {FreqX: 1.2, FreqY: 1.0, Phase: 0.015, Amp: 0.002},
	TierA: {FreqX: 2.0, FreqY: 1.8, Phase: 0.02, Amp: 0.003},
}

// TierOf отображает shininess в ступень.
func TierOf(shininess float64) Tier {
	switch {
	case shininess > 0.8:
		return TierA
	case shininess > 0.5:
		return TierB
	default:
		return TierC
	}
}

// Coefficients возвращает коэффициенты ступени.
func (t Tier) Coefficients() TierCoefficients {
	return tierTable[t]
}

func (t Tier) String() string {
	switch t {
	case TierA:
		return "A"
	case TierB:
		return "B"
	case TierC:
		return "C"
	}
	return "?"
}

// Drift возвращает смещение по x и y за кадр. idx — индекс x-компоненты в плоском буфере (3*i).
// Чистая функция: одинаковые аргументы дают побитово одинаковый результат.
func Drift(tier Tier, time float64, idx int) (dx, dy float64) {
	c := tierTable[tier]
	phase := float64(idx) * c.Phase
	dx = math.Sin(time*c.FreqX+phase) * c.Amp
	dy = math.Cos(time*c.FreqY+phase) * c.Amp
	return dx, dy
}
