package lantern

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsRefreshInterval is how often, in seconds, the counter text is redrawn.
const fpsRefreshInterval = 0.5

// FPSCounter is a Drawable that shows the current FPS and TPS.
// Call Update once per tick; the text is refreshed roughly every half second.
type FPSCounter struct {
	img     *ebiten.Image
	elapsed float64
	dirty   bool
}

// NewFPSCounter creates a counter backed by its own small image.
func NewFPSCounter() *FPSCounter {
	// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
	return &FPSCounter{img: ebiten.NewImage(100, 32), dirty: true}
}

// Update advances the refresh timer by dt seconds.
func (f *FPSCounter) Update(dt float64) {
	f.elapsed += dt
	if f.elapsed >= fpsRefreshInterval {
		f.elapsed = 0
		f.dirty = true
	}
}

func (f *FPSCounter) redraw() {
	f.dirty = false
	f.img.Clear()
	// Semi-transparent background for readability
	f.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(f.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
}

// Bounds implements Drawable.
func (f *FPSCounter) Bounds() Rect {
	return imageBounds(f.img)
}

// Draw implements Drawable.
func (f *FPSCounter) Draw(ctx Context, x, y float64) {
	if f.dirty {
		f.redraw()
	}
	drawImageAt(ctx, f.img, x, y)
}

func (*FPSCounter) drawable() {}
