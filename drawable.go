package lantern

import "github.com/hajimehoshi/ebiten/v2"

// Drawable is anything the Camera can cull and draw. The set of variants is
// closed: Shape, Sprite, Animation and FPSCounter.
type Drawable interface {
	// Bounds reports the extent of the drawable. X and Y are zero; the camera
	// positions the rect itself.
	Bounds() Rect
	// Draw renders at (x, y), the top-left corner in the coordinate space of
	// the context's current transform.
	Draw(ctx Context, x, y float64)

	drawable()
}

// ShapeKind selects the outline of a Shape.
type ShapeKind uint8

const (
	ShapeSquare ShapeKind = iota // Size is the side length
	ShapeCircle                  // Size is the radius
)

// Shape is a solid square or circle of fixed size.
type Shape struct {
	Kind  ShapeKind
	Size  float64
	Color Color
}

// NewSquare returns a filled square with the given side length.
func NewSquare(size float64, c Color) *Shape {
	return &Shape{Kind: ShapeSquare, Size: size, Color: c}
}

// NewCircle returns a filled circle with the given radius.
func NewCircle(radius float64, c Color) *Shape {
	return &Shape{Kind: ShapeCircle, Size: radius, Color: c}
}

// Bounds implements Drawable.
func (s *Shape) Bounds() Rect {
	if s.Kind == ShapeCircle {
		return Rect{Width: 2 * s.Size, Height: 2 * s.Size}
	}
	return Rect{Width: s.Size, Height: s.Size}
}

// Draw implements Drawable.
func (s *Shape) Draw(ctx Context, x, y float64) {
	switch s.Kind {
	case ShapeCircle:
		ctx.FillCircle(Vec{x + s.Size, y + s.Size}, s.Size, s.Color)
	default:
		ctx.FillRect(Rect{x, y, s.Size, s.Size}, s.Color)
	}
}

func (*Shape) drawable() {}

// Sprite draws a whole image at its natural size.
type Sprite struct {
	Image *ebiten.Image
}

// NewSprite wraps img.
func NewSprite(img *ebiten.Image) *Sprite {
	return &Sprite{Image: img}
}

// Bounds implements Drawable.
func (s *Sprite) Bounds() Rect {
	return imageBounds(s.Image)
}

// Draw implements Drawable.
func (s *Sprite) Draw(ctx Context, x, y float64) {
	drawImageAt(ctx, s.Image, x, y)
}

func (*Sprite) drawable() {}

// AnimFrame is one image of an Animation and the number of draws it stays
// on screen before the next frame replaces it.
type AnimFrame struct {
	Image *ebiten.Image
	Hold  int
}

// Animation is a looping image sequence. It advances on Draw, not on time:
// each draw counts toward the current frame's Hold, and once Hold draws have
// happened the next frame (wrapping to the first) becomes current.
//
// Drawing the same Animation from two places in one tick advances it twice.
type Animation struct {
	frames []AnimFrame
	index  int
	count  int
}

// NewAnimation returns an animation over frames. Holds below 1 count as 1.
func NewAnimation(frames ...AnimFrame) *Animation {
	fs := make([]AnimFrame, len(frames))
	copy(fs, frames)
	for i := range fs {
		if fs[i].Hold < 1 {
			fs[i].Hold = 1
		}
	}
	return &Animation{frames: fs}
}

// Frame returns the index of the current frame.
func (a *Animation) Frame() int {
	return a.index
}

// Len returns the number of frames.
func (a *Animation) Len() int {
	return len(a.frames)
}

// Reset rewinds to the first frame.
func (a *Animation) Reset() {
	a.index = 0
	a.count = 0
}

// Bounds implements Drawable. The size follows the current frame's image.
func (a *Animation) Bounds() Rect {
	if len(a.frames) == 0 {
		return Rect{}
	}
	return imageBounds(a.frames[a.index].Image)
}

// Draw implements Drawable.
func (a *Animation) Draw(ctx Context, x, y float64) {
	if len(a.frames) == 0 {
		return
	}
	f := a.frames[a.index]
	drawImageAt(ctx, f.Image, x, y)
	a.count++
	if a.count >= f.Hold {
		a.index = (a.index + 1) % len(a.frames)
		a.count = 0
	}
}

func (*Animation) drawable() {}

func imageBounds(img *ebiten.Image) Rect {
	if img == nil {
		return Rect{}
	}
	b := img.Bounds()
	return Rect{Width: float64(b.Dx()), Height: float64(b.Dy())}
}

func drawImageAt(ctx Context, img *ebiten.Image, x, y float64) {
	if img == nil {
		return
	}
	b := img.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	ctx.DrawImage(img, Rect{float64(b.Min.X), float64(b.Min.Y), w, h}, Rect{x, y, w, h})
}
