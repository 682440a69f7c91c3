// internal/event/types.go
package event

const (
	SectionLeft        EventType = "SectionLeft"        // Секция ушла за верх экрана при прокрутке вниз
	SectionEnteredBack EventType = "SectionEnteredBack" // Секция вернулась при прокрутке вверх
	PointerMoved       EventType = "PointerMoved"       // Указатель (мышь или касание) сдвинулся
	MotionReduced      EventType = "MotionReduced"      // Включён режим уменьшенного движения
)

// PointerSource — откуда пришла позиция указателя.
type PointerSource int

const (
	PointerMouse PointerSource = iota
	PointerTouch
)

// PointerData — данные события PointerMoved.
type PointerData struct {
	OffsetX, OffsetY float64 // смещение от центра экрана в пикселях
	NDCX, NDCY       float64 // то же, нормированное на половину размера экрана
	Source           PointerSource
}

// SectionData — данные событий секции.
type SectionData struct {
	Name   string
	Scroll float64
}
