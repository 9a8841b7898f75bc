package lantern

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// defaultDragDeadZone is how far, in screen pixels, the pointer must move
// while held before a press becomes a drag.
const defaultDragDeadZone = 4.0

// PointerSample is the mouse state for one tick, in screen pixels.
type PointerSample struct {
	Pos   Vec
	Down  bool
	Wheel float64 // vertical wheel delta; positive is away from the user
}

// ReadPointer samples the mouse from ebiten. Any of the left, right or middle
// buttons counts as down.
func ReadPointer() PointerSample {
	mx, my := ebiten.CursorPosition()
	_, wy := ebiten.Wheel()
	return PointerSample{
		Pos: Vec{float64(mx), float64(my)},
		Down: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) ||
			ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) ||
			ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle),
		Wheel: wy,
	}
}

// DragPan pans a Camera by dragging and zooms it with the wheel. Call Update
// once per tick, typically from a State's Tick.
type DragPan struct {
	Camera *Camera
	// DeadZone is the movement in pixels needed before a press starts panning.
	DeadZone float64

	down     bool
	dragging bool
	start    Vec
	last     Vec
}

// NewDragPan returns a controller for cam with the default dead zone.
func NewDragPan(cam *Camera) *DragPan {
	return &DragPan{Camera: cam, DeadZone: defaultDragDeadZone}
}

// Dragging reports whether a drag is in progress.
func (d *DragPan) Dragging() bool {
	return d.dragging
}

// Update reads the mouse and applies it to the camera.
func (d *DragPan) Update() {
	d.Feed(ReadPointer())
}

// Feed applies one pointer sample to the camera.
func (d *DragPan) Feed(s PointerSample) {
	switch {
	case s.Wheel > 0:
		d.Camera.AdjustZoom(false)
	case s.Wheel < 0:
		d.Camera.AdjustZoom(true)
	}

	switch {
	case s.Down && !d.down:
		d.down = true
		d.dragging = false
		d.start = s.Pos
		d.last = s.Pos
	case !s.Down && d.down:
		d.down = false
		d.dragging = false
	case s.Down && d.down:
		if s.Pos == d.last {
			return
		}
		if !d.dragging {
			off := s.Pos.Sub(d.start)
			if math.Hypot(off.X, off.Y) > d.DeadZone {
				d.dragging = true
				// The dead zone travel counts toward the first pan.
				d.last = d.start
			}
		}
		if d.dragging {
			delta := s.Pos.Sub(d.last)
			d.Camera.Pan(delta.X, delta.Y)
			d.last = s.Pos
		}
	}
}
