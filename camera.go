package lantern

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"go.uber.org/zap"
)

// Camera defaults, matching a screen-centered camera that can zoom in once.
const (
	DefaultPanSpeed   = 1.0
	DefaultZoomFactor = 2.0
	DefaultMinZoom    = 1.0
	DefaultMaxZoom    = 2.0
)

// scrollAnim holds active scroll-to tweens for the focus X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// CameraStats counts Draw calls since the last Begin.
type CameraStats struct {
	Drawn  int
	Culled int
}

// Camera is an orthographic view onto world space that can be panned and
// zoomed. Drawing happens between Begin and End, which apply the
// world-to-screen transform to the render context.
type Camera struct {
	// ScreenWidth and ScreenHeight are the viewport size in pixels.
	ScreenWidth, ScreenHeight float64

	// PanSpeed scales the distance moved by Pan.
	PanSpeed float64
	// ZoomFactor is the multiplicative step applied by AdjustZoom.
	ZoomFactor float64
	// MinZoom and MaxZoom bound the zoom level.
	MinZoom, MaxZoom float64

	focus Vec
	zoom  float64

	boundsEnabled bool
	bounds        Rect

	viewport Rect
	ctx      Context
	stats    CameraStats

	scrollTween *scrollAnim
}

// NewCamera creates a camera for a screen of w x h pixels, focused on the
// screen center at zoom 1 with no bounds.
func NewCamera(w, h float64) *Camera {
	c := &Camera{
		ScreenWidth:  w,
		ScreenHeight: h,
		PanSpeed:     DefaultPanSpeed,
		ZoomFactor:   DefaultZoomFactor,
		MinZoom:      DefaultMinZoom,
		MaxZoom:      DefaultMaxZoom,
		focus:        Vec{w / 2, h / 2},
		zoom:         1,
	}
	c.updateViewport()
	return c
}

// Focus returns the world point the camera is centered on.
func (c *Camera) Focus() Vec {
	return c.focus
}

// SetFocus centers the camera on p, clamped to the bounds if set.
func (c *Camera) SetFocus(p Vec) {
	c.focus = p
	c.clampFocus()
}

// Zoom returns the current zoom level (1 = no zoom, >1 = zoomed in).
func (c *Camera) Zoom() float64 {
	return c.zoom
}

// SetZoom sets the zoom level, clamped to [MinZoom, MaxZoom].
func (c *Camera) SetZoom(z float64) {
	c.zoom = clamp(z, c.MinZoom, c.MaxZoom)
}

// AdjustZoom steps the zoom by ZoomFactor: out divides, in multiplies. The
// result is clamped to [MinZoom, MaxZoom].
func (c *Camera) AdjustZoom(out bool) {
	if out {
		c.SetZoom(c.zoom / c.ZoomFactor)
	} else {
		c.SetZoom(c.zoom * c.ZoomFactor)
	}
}

// Pan moves the focus opposite to (dx, dy), as when dragging the world with
// a pointer. The distance is divided by the zoom so panning covers the same
// screen distance at every zoom level.
func (c *Camera) Pan(dx, dy float64) {
	c.focus.X -= c.PanSpeed * dx / c.zoom
	c.focus.Y -= c.PanSpeed * dy / c.zoom
	c.clampFocus()
}

// SetBounds restricts the focus to the world-space rectangle r.
func (c *Camera) SetBounds(r Rect) {
	c.boundsEnabled = true
	c.bounds = r
	c.clampFocus()
}

// ClearBounds lets the focus move freely.
func (c *Camera) ClearBounds() {
	c.boundsEnabled = false
}

// Bounds returns the focus bounds and whether they are enabled.
func (c *Camera) Bounds() (Rect, bool) {
	return c.bounds, c.boundsEnabled
}

func (c *Camera) clampFocus() {
	if c.boundsEnabled {
		c.focus = c.focus.Clamp(c.bounds)
	}
}

// Viewport returns the world-space rectangle visible as of the last Begin.
func (c *Camera) Viewport() Rect {
	return c.viewport
}

// updateViewport recomputes the visible world rectangle from focus and zoom.
func (c *Camera) updateViewport() {
	v := Rect{Width: c.ScreenWidth, Height: c.ScreenHeight}.CenterOn(c.focus)
	c.viewport = v.Zoom(1 / c.zoom)
}

// ScreenToWorld converts a screen point to world coordinates using the
// viewport of the last Begin.
func (c *Camera) ScreenToWorld(p Vec) Vec {
	return p.Scale(1 / c.zoom).Add(c.viewport.Pos())
}

// WorldToScreen converts a world point to screen coordinates using the
// viewport of the last Begin. It is the inverse of ScreenToWorld.
func (c *Camera) WorldToScreen(p Vec) Vec {
	return p.Sub(c.viewport.Pos()).Scale(c.zoom)
}

// Visible reports whether the world rectangle r intersects the viewport.
func (c *Camera) Visible(r Rect) bool {
	return r.Intersects(c.viewport)
}

// Stats returns draw counters for the current or most recent frame.
func (c *Camera) Stats() CameraStats {
	return c.stats
}

// Begin recomputes the viewport and applies the world-to-screen transform to
// ctx. Every Begin must be paired with End; the returned function calls End,
// so the usual form is
//
//	defer cam.Begin(ctx)()
func (c *Camera) Begin(ctx Context) (end func()) {
	if c.ctx != nil {
		c.End()
	}
	c.updateViewport()
	c.stats = CameraStats{}
	c.ctx = ctx
	ctx.Save()
	ctx.Scale(c.zoom)
	ctx.Translate(-c.viewport.X, -c.viewport.Y)
	return c.End
}

// End reverts the transform applied by Begin. Calling End without an active
// Begin does nothing.
func (c *Camera) End() {
	if c.ctx == nil {
		return
	}
	c.ctx.Restore()
	c.ctx = nil
	logger.Debug("camera frame",
		zap.Int("drawn", c.stats.Drawn),
		zap.Int("culled", c.stats.Culled))
}

// Render brackets fn with Begin and End. End runs even if fn panics.
func (c *Camera) Render(ctx Context, fn func()) {
	defer c.Begin(ctx)()
	fn()
}

// Draw draws d centered on the world point center, unless its bounds fall
// entirely outside the viewport. Outside a Begin/End pair Draw does nothing.
func (c *Camera) Draw(d Drawable, center Vec) {
	if c.ctx == nil {
		return
	}
	r := d.Bounds().CenterOn(center)
	if !r.Intersects(c.viewport) {
		c.stats.Culled++
		return
	}
	c.stats.Drawn++
	d.Draw(c.ctx, r.X, r.Y)
}

// Clear fills the whole viewport with col.
func (c *Camera) Clear(col Color) {
	if c.ctx == nil {
		return
	}
	c.ctx.FillRect(c.viewport, col)
}

// DrawFixedLayer draws a backdrop image anchored at the world origin. Only the
// part of the image inside the viewport is copied.
func (c *Camera) DrawFixedLayer(img *ebiten.Image) {
	if c.ctx == nil || img == nil {
		return
	}
	b := img.Bounds()
	layer := Rect{Width: float64(b.Dx()), Height: float64(b.Dy())}
	vis, ok := layer.Intersection(c.viewport)
	if !ok || vis.Width <= 0 || vis.Height <= 0 {
		return
	}
	src := vis
	src.X += float64(b.Min.X)
	src.Y += float64(b.Min.Y)
	c.ctx.DrawImage(img, src, vis)
}

// ScrollTo animates the focus to target over duration seconds. Advance the
// animation with Update.
func (c *Camera) ScrollTo(target Vec, duration float32, easeFn ease.TweenFunc) {
	c.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(c.focus.X), float32(target.X), duration, easeFn),
		tweenY: gween.New(float32(c.focus.Y), float32(target.Y), duration, easeFn),
	}
}

// Scrolling reports whether a ScrollTo animation is in progress.
func (c *Camera) Scrolling() bool {
	return c.scrollTween != nil
}

// Update advances an active ScrollTo animation by dt seconds.
func (c *Camera) Update(dt float32) {
	if c.scrollTween == nil {
		return
	}
	if !c.scrollTween.doneX {
		val, done := c.scrollTween.tweenX.Update(dt)
		c.focus.X = float64(val)
		c.scrollTween.doneX = done
	}
	if !c.scrollTween.doneY {
		val, done := c.scrollTween.tweenY.Update(dt)
		c.focus.Y = float64(val)
		c.scrollTween.doneY = done
	}
	if c.scrollTween.doneX && c.scrollTween.doneY {
		c.scrollTween = nil
	}
	c.clampFocus()
}
