// internal/input/pointer.go
package input

import "go-particle-field/internal/event"

// PointerTracker превращает позиции курсора или касания в события PointerMoved.
// Источник позиций (ebiten, tcell, raylib) опрашивает сам фронтенд.
// До первого реального движения указатель считается стоящим в центре экрана.
type PointerTracker struct {
	dispatcher *event.Dispatcher
	width      int
	height     int
	lastX      int
	lastY      int
	moved      bool
}

// NewPointerTracker создаёт трекер для экрана width x height.
func NewPointerTracker(dispatcher *event.Dispatcher, width, height int) *PointerTracker {
	p := &PointerTracker{dispatcher: dispatcher}
	p.Resize(width, height)
	return p
}

// Resize обновляет размер экрана. Пока указатель не двигался, он остаётся в новом центре.
func (p *PointerTracker) Resize(width, height int) {
	p.width, p.height = width, height
	if !p.moved {
		p.lastX, p.lastY = width/2, height/2
	}
}

// Move принимает позицию в пикселях экрана и рассылает PointerMoved, если она изменилась.
func (p *PointerTracker) Move(x, y int, source event.PointerSource) bool {
	if x == p.lastX && y == p.lastY {
		return false
	}
	p.moved = true
	p.lastX, p.lastY = x, y

	data := ToPointerData(x, y, p.width, p.height)
	data.Source = source
	p.dispatcher.Dispatch(event.Event{Type: event.PointerMoved, Data: data})
	return true
}

// ToPointerData переводит пиксели в смещение от центра и нормированные координаты.
// Ось y не переворачивается: вниз — положительное направление.
func ToPointerData(x, y, width, height int) event.PointerData {
	halfX := float64(width) / 2
	halfY := float64(height) / 2
	offX := float64(x) - halfX
	offY := float64(y) - halfY
	d := event.PointerData{OffsetX: offX, OffsetY: offY}
	if halfX > 0 {
		d.NDCX = offX / halfX
	}
	if halfY > 0 {
		d.NDCY = offY / halfY
	}
	return d
}

// CursorFilter пропускает позицию курсора только после первого настоящего движения:
// пока курсор не входил в окно, фронтенд получает (0, 0), а указатель поля должен
// оставаться в центре.
type CursorFilter struct {
	startX, startY int
	polled         bool
	moved          bool
}

// Live запоминает первую опрошенную позицию и возвращает true, как только курсор от неё сдвинулся.
func (c *CursorFilter) Live(x, y int) bool {
	if c.moved {
		return true
	}
	if !c.polled {
		c.startX, c.startY = x, y
		c.polled = true
		return false
	}
	c.moved = x != c.startX || y != c.startY
	return c.moved
}
