package lantern

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

const epsilon = 1e-9

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

// recordContext is a Context that records calls and tracks the transform so
// tests can map drawn coordinates back to screen pixels.
type recordContext struct {
	calls  []string
	images []*ebiten.Image
	dsts   []Rect
	xf     affine
	stack  []affine
}

func newRecordContext() *recordContext {
	return &recordContext{xf: identityAffine}
}

func (r *recordContext) Save() {
	r.stack = append(r.stack, r.xf)
	r.calls = append(r.calls, "save")
}

func (r *recordContext) Restore() {
	r.xf = r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
	r.calls = append(r.calls, "restore")
}

func (r *recordContext) Scale(s float64) {
	r.xf.s *= s
	r.calls = append(r.calls, fmt.Sprintf("scale %g", s))
}

func (r *recordContext) Translate(dx, dy float64) {
	r.xf.tx += dx * r.xf.s
	r.xf.ty += dy * r.xf.s
	r.calls = append(r.calls, fmt.Sprintf("translate %g %g", dx, dy))
}

func (r *recordContext) FillRect(rect Rect, c Color) {
	r.dsts = append(r.dsts, rect)
	r.calls = append(r.calls, fmt.Sprintf("fillRect %g %g %g %g", rect.X, rect.Y, rect.Width, rect.Height))
}

func (r *recordContext) StrokeRect(rect Rect, width float64, c Color) {
	r.dsts = append(r.dsts, rect)
	r.calls = append(r.calls, "strokeRect")
}

func (r *recordContext) FillCircle(center Vec, radius float64, c Color) {
	r.calls = append(r.calls, fmt.Sprintf("fillCircle %g %g %g", center.X, center.Y, radius))
}

func (r *recordContext) DrawImage(img *ebiten.Image, src, dst Rect) {
	r.images = append(r.images, img)
	r.dsts = append(r.dsts, dst)
	r.calls = append(r.calls, fmt.Sprintf("drawImage %g %g %g %g", src.X, src.Y, src.Width, src.Height))
}

// toScreen applies the current transform to a world point.
func (r *recordContext) toScreen(p Vec) Vec {
	x, y := r.xf.apply(p.X, p.Y)
	return Vec{x, y}
}
