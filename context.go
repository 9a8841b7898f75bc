package lantern

import "github.com/hajimehoshi/ebiten/v2"

// Context is the render backend the Camera and Drawables draw through.
//
// Transform state is a stack: Save pushes a copy of the current transform and
// Restore pops it. Scale and Translate compose onto the current transform so
// that later coordinates are interpreted in the transformed space. Only
// uniform scale and translation are required, which keeps stroke widths and
// circle radii well defined.
type Context interface {
	Save()
	Restore()
	Scale(s float64)
	Translate(dx, dy float64)

	// FillRect fills r with c.
	FillRect(r Rect, c Color)
	// StrokeRect outlines r with a line of the given width.
	StrokeRect(r Rect, width float64, c Color)
	// FillCircle fills the disc of the given radius around center.
	FillCircle(center Vec, radius float64, c Color)
	// DrawImage copies the src region of img into dst, scaling to fit.
	DrawImage(img *ebiten.Image, src, dst Rect)
}
