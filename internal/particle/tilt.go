package particle

import (
	"go-particle-field/internal/config"
	"go-particle-field/internal/utils"
)

// Tilt — плавный наклон поля к указателю. Каждое движение указателя перезапускает твин
// от текущего поворота к цели (x = dy*k, y = dx*k) с кривой power2.out.
// Твин идёт по реальному времени и пишет только Rotation.X и Rotation.Y.
type Tilt struct {
	from, to [2]float64
	elapsed  float64
	duration float64
	running  bool
}

// NewTilt создаёт неактивный твин наклона.
func NewTilt() *Tilt {
	return &Tilt{duration: config.TiltDuration}
}

// Retarget запускает твин заново. offsetX, offsetY — смещение указателя от центра экрана в пикселях.
func (t *Tilt) Retarget(rot Euler, offsetX, offsetY float64) {
	t.from = [2]float64{rot.X, rot.Y}
	t.to = [2]float64{offsetY * config.TiltFactor, offsetX * config.TiltFactor}
	t.elapsed = 0
	t.running = true
}

// Running сообщает, идёт ли твин.
func (t *Tilt) Running() bool {
	return t.running
}

// Target возвращает целевой наклон (x, y).
func (t *Tilt) Target() (x, y float64) {
	return t.to[0], t.to[1]
}

// Update продвигает твин на dt секунд и записывает результат в rot.
func (t *Tilt) Update(dt float64, rot *Euler) {
	if !t.running {
		return
	}
	t.elapsed += dt
	p := t.elapsed / t.duration
	e := utils.EaseOutQuad(p)
	rot.X = utils.Lerp(t.from[0], t.to[0], e)
	rot.Y = utils.Lerp(t.from[1], t.to[1], e)
	if p >= 1 {
		t.running = false
	}
}
