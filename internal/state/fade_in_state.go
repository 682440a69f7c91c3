// internal/state/fade_in_state.go
package state

import (
	"go-particle-field/internal/config"
	"go-particle-field/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
)

// FadeInState — плавное появление поля при запуске (кривая power2.out).
// Поле при этом уже анимируется; по окончании управление переходит к FieldState.
type FadeInState struct {
	sm       *StateMachine
	next     *FieldState
	elapsed  float64
	duration float64
}

func NewFadeInState(sm *StateMachine, next *FieldState) *FadeInState {
	return &FadeInState{
		sm:       sm,
		next:     next,
		duration: config.FadeInDuration,
	}
}

func (f *FadeInState) Enter() {
	f.elapsed = 0
	f.next.opacity = 0
}

func (f *FadeInState) Update(deltaTime float64) {
	f.next.Update(deltaTime)
	f.elapsed += deltaTime
	f.next.opacity = utils.EaseOutQuad(f.elapsed / f.duration)
	if f.elapsed >= f.duration {
		f.sm.SetState(f.next)
	}
}

func (f *FadeInState) Draw(screen *ebiten.Image) {
	f.next.Draw(screen)
}

func (f *FadeInState) Resize(width, height int) {
	f.next.Resize(width, height)
}

func (f *FadeInState) Exit() {
	f.next.opacity = 1
}
