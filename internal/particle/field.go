// internal/particle/field.go
package particle

import "go-particle-field/internal/config"

// Field — контекст анимации поля. Заменяет глобальные scene/particles/mouse:
// владелец создаёт его сам и вызывает Step на каждом кадре.
type Field struct {
	Set *ParticleSet

	// Time растёт на PhaseStep за каждый активный кадр, а не по реальному времени.
	Time      float64
	PhaseStep float64

	// Pointer — позиция указателя в нормализованных координатах, пишется обработчиками ввода.
	Pointer [2]float64

	// Rotation — жёсткий поворот всего набора; RotationStep добавляется каждый активный кадр.
	Rotation     Euler
	RotationStep Euler

	active bool
	frames uint64
}

// NewField создаёт активное поле со стандартными шагами.
func NewField(set *ParticleSet) *Field {
	return &Field{
		Set:       set,
		PhaseStep: config.PhaseStep,
		RotationStep: Euler{
			X: config.RotationStepX,
			Y: config.RotationStepY,
			Z: config.RotationStepZ,
		},
		active: true,
	}
}

// Active сообщает, выполняется ли обновление.
func (f *Field) Active() bool {
	return f.active
}

// SetActive переключает ворота видимости.
func (f *Field) SetActive(active bool) {
	f.active = active
}

// SetPointer запоминает последнюю позицию указателя (NDC), без проверок.
func (f *Field) SetPointer(x, y float64) {
	f.Pointer = [2]float64{x, y}
}

// Frames возвращает число выполненных активных кадров.
func (f *Field) Frames() uint64 {
	return f.frames
}

// Step продвигает поле на один кадр. При неактивных воротах ничего не меняет и возвращает false.
func (f *Field) Step() bool {
	if !f.active {
		return false
	}

	f.Time += f.PhaseStep
	t := f.Time

	pos := f.Set.Positions
	for i, tier := range f.Set.tiers {
		idx := i * 3
		dx, dy := Drift(tier, t, idx)
		pos[idx] += dx
		pos[idx+1] += dy
		// z не меняется: дрейф только в плоскости xy
	}

	f.Rotation.X += f.RotationStep.X
	f.Rotation.Y += f.RotationStep.Y
	f.Rotation.Z += f.RotationStep.Z
	f.frames++
	return true
}
