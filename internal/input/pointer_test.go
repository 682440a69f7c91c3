package input

import (
	"testing"

	"go-particle-field/internal/event"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pointerRecorder struct {
	got []event.PointerData
}

func (r *pointerRecorder) OnEvent(e event.Event) {
	r.got = append(r.got, e.Data.(event.PointerData))
}

func TestToPointerData(t *testing.T) {
	tests := []struct {
		name       string
		x, y, w, h int
		want       event.PointerData
	}{
		{"centre", 400, 300, 800, 600, event.PointerData{}},
		{"top left", 0, 0, 800, 600, event.PointerData{OffsetX: -400, OffsetY: -300, NDCX: -1, NDCY: -1}},
		{"bottom right", 800, 600, 800, 600, event.PointerData{OffsetX: 400, OffsetY: 300, NDCX: 1, NDCY: 1}},
		{"outside window", 1200, 300, 800, 600, event.PointerData{OffsetX: 800, NDCX: 2}},
		{"zero size", 5, 5, 0, 0, event.PointerData{OffsetX: 5, OffsetY: 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToPointerData(tt.x, tt.y, tt.w, tt.h))
		})
	}
}

func TestPointerTracker_MoveDedup(t *testing.T) {
	d := event.NewDispatcher()
	rec := &pointerRecorder{}
	d.Subscribe(event.PointerMoved, rec)

	p := NewPointerTracker(d, 800, 600)
	assert.False(t, p.Move(400, 300, event.PointerMouse), "centre is the starting position")
	assert.True(t, p.Move(600, 300, event.PointerMouse))
	assert.False(t, p.Move(600, 300, event.PointerMouse))
	assert.True(t, p.Move(600, 400, event.PointerTouch))

	require.Len(t, rec.got, 2)
	assert.Equal(t, 0.5, rec.got[0].NDCX)
	assert.Equal(t, event.PointerMouse, rec.got[0].Source)
	assert.Equal(t, event.PointerTouch, rec.got[1].Source)

	p.Resize(400, 300)
	p.Move(0, 0, event.PointerMouse)
	require.Len(t, rec.got, 3)
	assert.Equal(t, -1.0, rec.got[2].NDCX)
}

func TestPointerTracker_StartsAtCentre(t *testing.T) {
	d := event.NewDispatcher()
	rec := &pointerRecorder{}
	d.Subscribe(event.PointerMoved, rec)

	p := NewPointerTracker(d, 800, 600)
	p.Resize(1000, 500)
	assert.False(t, p.Move(500, 250, event.PointerMouse), "resize keeps an unmoved pointer centred")
	assert.Empty(t, rec.got)

	assert.True(t, p.Move(0, 0, event.PointerMouse))
	p.Resize(800, 600)
	assert.False(t, p.Move(0, 0, event.PointerMouse), "a moved pointer keeps its position")
	assert.Len(t, rec.got, 1)
}

func TestCursorFilter(t *testing.T) {
	var c CursorFilter
	assert.False(t, c.Live(0, 0), "first poll only records the position")
	assert.False(t, c.Live(0, 0))
	assert.True(t, c.Live(3, 0))
	assert.True(t, c.Live(0, 0), "once moved, every position is passed on")
}
