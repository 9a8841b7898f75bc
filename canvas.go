package lantern

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// affine is a uniform-scale-plus-translate transform: p' = p*s + t.
type affine struct {
	s      float64
	tx, ty float64
}

var identityAffine = affine{s: 1}

func (a affine) apply(x, y float64) (float64, float64) {
	return x*a.s + a.tx, y*a.s + a.ty
}

func (a affine) geoM() ebiten.GeoM {
	var g ebiten.GeoM
	g.Scale(a.s, a.s)
	g.Translate(a.tx, a.ty)
	return g
}

// Canvas is a persistent offscreen image that implements Context. The App
// draws every frame into its Canvas and blits it to the screen.
type Canvas struct {
	image *ebiten.Image
	w, h  int

	xf    affine
	stack []affine

	screenshotQueue []string
}

// NewCanvas creates a canvas of the given size in pixels.
func NewCanvas(w, h int) *Canvas {
	return &Canvas{
		image: ebiten.NewImage(w, h),
		w:     w,
		h:     h,
		xf:    identityAffine,
	}
}

// Image returns the underlying *ebiten.Image for direct manipulation.
func (c *Canvas) Image() *ebiten.Image {
	return c.image
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.w
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.h
}

// Clear fills the canvas with col and drops any transform left on the stack.
func (c *Canvas) Clear(col Color) {
	if col.A == 0 {
		c.image.Clear()
	} else {
		c.image.Fill(col.toRGBA())
	}
	c.xf = identityAffine
	c.stack = c.stack[:0]
}

// Resize replaces the backing image. Contents are discarded.
func (c *Canvas) Resize(w, h int) {
	if w == c.w && h == c.h {
		return
	}
	c.image.Deallocate()
	c.image = ebiten.NewImage(w, h)
	c.w, c.h = w, h
}

// Save implements Context.
func (c *Canvas) Save() {
	c.stack = append(c.stack, c.xf)
}

// Restore implements Context. Restoring an empty stack resets to identity.
func (c *Canvas) Restore() {
	if len(c.stack) == 0 {
		c.xf = identityAffine
		return
	}
	c.xf = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

// Scale implements Context.
func (c *Canvas) Scale(s float64) {
	c.xf.s *= s
}

// Translate implements Context.
func (c *Canvas) Translate(dx, dy float64) {
	c.xf.tx += dx * c.xf.s
	c.xf.ty += dy * c.xf.s
}

// ToDevice maps a point in the current transform's space to canvas pixels.
func (c *Canvas) ToDevice(p Vec) Vec {
	x, y := c.xf.apply(p.X, p.Y)
	return Vec{x, y}
}

func (c *Canvas) deviceRect(r Rect) Rect {
	x, y := c.xf.apply(r.X, r.Y)
	return Rect{x, y, r.Width * c.xf.s, r.Height * c.xf.s}
}

// FillRect implements Context.
func (c *Canvas) FillRect(r Rect, col Color) {
	d := c.deviceRect(r)
	vector.DrawFilledRect(c.image, float32(d.X), float32(d.Y), float32(d.Width), float32(d.Height), col.toRGBA(), false)
}

// StrokeRect implements Context.
func (c *Canvas) StrokeRect(r Rect, width float64, col Color) {
	d := c.deviceRect(r)
	vector.StrokeRect(c.image, float32(d.X), float32(d.Y), float32(d.Width), float32(d.Height),
		float32(width*c.xf.s), col.toRGBA(), false)
}

// FillCircle implements Context.
func (c *Canvas) FillCircle(center Vec, radius float64, col Color) {
	p := c.ToDevice(center)
	vector.DrawFilledCircle(c.image, float32(p.X), float32(p.Y), float32(radius*c.xf.s), col.toRGBA(), true)
}

// DrawImage implements Context.
func (c *Canvas) DrawImage(img *ebiten.Image, src, dst Rect) {
	if img == nil || src.Width <= 0 || src.Height <= 0 {
		return
	}
	sub := img.SubImage(image.Rect(
		int(math.Floor(src.X)), int(math.Floor(src.Y)),
		int(math.Ceil(src.X+src.Width)), int(math.Ceil(src.Y+src.Height)),
	)).(*ebiten.Image)

	var op ebiten.DrawImageOptions
	op.GeoM.Scale(dst.Width/src.Width, dst.Height/src.Height)
	op.GeoM.Translate(dst.X, dst.Y)
	op.GeoM.Concat(c.xf.geoM())
	c.image.DrawImage(sub, &op)
}

// Dispose releases the backing image. The canvas must not be used afterwards.
func (c *Canvas) Dispose() {
	if c.image != nil {
		c.image.Deallocate()
		c.image = nil
	}
}
