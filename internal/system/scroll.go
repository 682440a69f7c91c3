// internal/system/scroll.go
package system

import (
	"go-particle-field/internal/event"
	"go-particle-field/internal/utils"
)

// Crossing — переход позиции прокрутки через границы триггера.
type Crossing int

const (
	CrossNone      Crossing = iota
	CrossEnter              // вход сверху при прокрутке вниз
	CrossLeave              // выход за конец при прокрутке вниз
	CrossEnterBack          // возврат из-за конца при прокрутке вверх
	CrossLeaveBack          // выход за начало при прокрутке вверх
)

func (c Crossing) String() string {
	switch c {
	case CrossEnter:
		return "enter"
	case CrossLeave:
		return "leave"
	case CrossEnterBack:
		return "enter-back"
	case CrossLeaveBack:
		return "leave-back"
	}
	return "none"
}

const (
	zoneBefore = -1
	zoneInside = 0
	zoneAfter  = 1
)

// ScrollTrigger следит за регионом страницы. Начало — "верх региона у низа экрана",
// конец — "низ региона у верха экрана".
type ScrollTrigger struct {
	Name       string
	Start, End float64
	zone       int
}

// NewScrollTrigger создаёт триггер для региона [top, top+height] при высоте экрана viewport
// и начальной прокрутке scroll.
func NewScrollTrigger(name string, top, height, viewport, scroll float64) *ScrollTrigger {
	t := &ScrollTrigger{
		Name:  name,
		Start: top - viewport,
		End:   top + height,
	}
	t.zone = t.zoneOf(scroll)
	return t
}

func (t *ScrollTrigger) zoneOf(scroll float64) int {
	switch {
	case scroll < t.Start:
		return zoneBefore
	case scroll > t.End:
		return zoneAfter
	default:
		return zoneInside
	}
}

// Inside сообщает, находится ли прокрутка между началом и концом.
func (t *ScrollTrigger) Inside() bool {
	return t.zone == zoneInside
}

// Update пересчитывает зону. При перескоке через весь регион за один шаг
// возвращается последний переход (CrossLeave вниз, CrossLeaveBack вверх).
func (t *ScrollTrigger) Update(scroll float64) Crossing {
	next := t.zoneOf(scroll)
	prev := t.zone
	t.zone = next
	switch {
	case prev == next:
		return CrossNone
	case next == zoneAfter:
		return CrossLeave
	case next == zoneBefore:
		return CrossLeaveBack
	case prev == zoneBefore:
		return CrossEnter
	default:
		return CrossEnterBack
	}
}

// ScrollSystem — виртуальная страница, прокручиваемая колесом или клавишами.
// Секция "home" занимает первый экран; её триггер управляет воротами поля.
type ScrollSystem struct {
	dispatcher *event.Dispatcher
	trigger    *ScrollTrigger
	viewport   float64
	pageHeight float64
	speed      float64
	scroll     float64
}

// HomeSection — имя секции, за которой следит поле.
const HomeSection = "home"

// NewScrollSystem создаёт страницу из sections экранов высотой viewport.
func NewScrollSystem(dispatcher *event.Dispatcher, viewport float64, sections int, speed float64) *ScrollSystem {
	if sections < 1 {
		sections = 1
	}
	return &ScrollSystem{
		dispatcher: dispatcher,
		trigger:    NewScrollTrigger(HomeSection, 0, viewport, viewport, 0),
		viewport:   viewport,
		pageHeight: viewport * float64(sections),
		speed:      speed,
	}
}

// Position возвращает текущую прокрутку в пикселях.
func (s *ScrollSystem) Position() float64 {
	return s.scroll
}

// Speed возвращает число пикселей на единицу колеса.
func (s *ScrollSystem) Speed() float64 {
	return s.speed
}

// MaxScroll возвращает предел прокрутки.
func (s *ScrollSystem) MaxScroll() float64 {
	return s.pageHeight - s.viewport
}

// Trigger возвращает триггер секции home.
func (s *ScrollSystem) Trigger() *ScrollTrigger {
	return s.trigger
}

// Scroll прокручивает на delta единиц колеса (положительное — вниз).
func (s *ScrollSystem) Scroll(delta float64) Crossing {
	return s.ScrollTo(s.scroll + delta*s.speed)
}

// ScrollTo ставит прокрутку в y (с ограничением страницей) и рассылает события секции.
// Рассылаются только уход вниз (SectionLeft) и возврат вверх (SectionEnteredBack).
func (s *ScrollSystem) ScrollTo(y float64) Crossing {
	s.scroll = utils.Clamp(y, 0, s.MaxScroll())
	c := s.trigger.Update(s.scroll)

	data := event.SectionData{Name: s.trigger.Name, Scroll: s.scroll}
	switch c {
	case CrossLeave:
		s.dispatcher.Dispatch(event.Event{Type: event.SectionLeft, Data: data})
	case CrossEnterBack:
		s.dispatcher.Dispatch(event.Event{Type: event.SectionEnteredBack, Data: data})
	}
	return c
}
