package particle

import "math"

const (
	waveAmpXY     = 0.5
	waveFreqX     = 0.5
	waveFreqY     = 0.3
	waveSpatial   = 0.1
	pointerReach  = 10.0
	rippleSpatial = 0.1
	rippleAmpZ    = 2.0
)

// Displace — волна стадии отрисовки. Результат не записывается обратно в набор.
// Фаза по z зависит от расстояния в плоскости xy до якоря pointer*10.
func Displace(p Vec3, time float64, pointer [2]float64) Vec3 {
	out := p
	out.X += math.Sin(time*waveFreqX+p.Y*waveSpatial) * waveAmpXY
	out.Y += math.Cos(time*waveFreqY+p.X*waveSpatial) * waveAmpXY

	dx := p.X - pointer[0]*pointerReach
	dy := p.Y - pointer[1]*pointerReach
	distance := math.Hypot(dx, dy)
	out.Z += math.Sin(distance*rippleSpatial-time) * rippleAmpZ
	return out
}
