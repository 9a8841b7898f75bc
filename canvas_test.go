package lantern

import (
	"image/color"
	"testing"
)

func TestAffineApply(t *testing.T) {
	a := affine{s: 2, tx: 10, ty: -5}
	x, y := a.apply(3, 4)
	if x != 16 || y != 3 {
		t.Errorf("apply(3,4) = (%v,%v), want (16,3)", x, y)
	}
}

func TestAffineGeoMMatchesApply(t *testing.T) {
	a := affine{s: 1.5, tx: 7, ty: 9}
	g := a.geoM()
	for _, p := range []Vec{{0, 0}, {10, -3}, {-2.5, 4}} {
		gx, gy := g.Apply(p.X, p.Y)
		ax, ay := a.apply(p.X, p.Y)
		if !approxEqual(gx, ax, epsilon) || !approxEqual(gy, ay, epsilon) {
			t.Errorf("geoM(%v) = (%v,%v), apply = (%v,%v)", p, gx, gy, ax, ay)
		}
	}
}

func TestCanvasTransformStack(t *testing.T) {
	c := NewCanvas(100, 100)
	c.Save()
	c.Scale(2)
	c.Translate(-10, -20)
	if got := c.ToDevice(Vec{10, 20}); got != (Vec{0, 0}) {
		t.Errorf("ToDevice = %v, want {0 0}", got)
	}
	if got := c.ToDevice(Vec{15, 25}); got != (Vec{10, 10}) {
		t.Errorf("ToDevice = %v, want {10 10}", got)
	}

	c.Save()
	c.Scale(0.5)
	if got := c.ToDevice(Vec{20, 40}); got != (Vec{0, 0}) {
		t.Errorf("nested ToDevice = %v, want {0 0}", got)
	}
	c.Restore()
	c.Restore()
	if got := c.ToDevice(Vec{3, 4}); got != (Vec{3, 4}) {
		t.Errorf("after Restore ToDevice = %v, want identity", got)
	}
}

func TestCanvasRestoreEmptyStack(t *testing.T) {
	c := NewCanvas(10, 10)
	c.Scale(3)
	c.Restore()
	if got := c.ToDevice(Vec{1, 1}); got != (Vec{1, 1}) {
		t.Errorf("ToDevice = %v, want identity after unbalanced Restore", got)
	}
}

func TestCanvasClearResetsTransform(t *testing.T) {
	c := NewCanvas(10, 10)
	c.Save()
	c.Translate(5, 5)
	c.Clear(ColorBlack)
	if len(c.stack) != 0 {
		t.Errorf("stack depth = %d after Clear, want 0", len(c.stack))
	}
	if got := c.ToDevice(Vec{0, 0}); got != (Vec{0, 0}) {
		t.Errorf("ToDevice = %v after Clear, want origin", got)
	}
}

func TestCanvasDeviceRect(t *testing.T) {
	c := NewCanvas(10, 10)
	c.Scale(2)
	c.Translate(1, 1)
	if got := c.deviceRect(Rect{0, 0, 3, 4}); got != (Rect{2, 2, 6, 8}) {
		t.Errorf("deviceRect = %v, want {2 2 6 8}", got)
	}
}

func TestCanvasResize(t *testing.T) {
	c := NewCanvas(10, 10)
	c.Resize(20, 30)
	if c.Width() != 20 || c.Height() != 30 {
		t.Errorf("size = %dx%d, want 20x30", c.Width(), c.Height())
	}
	b := c.Image().Bounds()
	if b.Dx() != 20 || b.Dy() != 30 {
		t.Errorf("image bounds = %v", b)
	}
}

func TestCanvasWithCamera(t *testing.T) {
	c := NewCanvas(400, 300)
	cam := NewCamera(400, 300)
	cam.SetZoom(2)
	cam.SetFocus(Vec{50, 50})

	end := cam.Begin(c)
	got := c.ToDevice(cam.Focus())
	end()
	if !approxEqual(got.X, 200, epsilon) || !approxEqual(got.Y, 150, epsilon) {
		t.Errorf("focus maps to %v, want screen center", got)
	}
}

func TestColorRGBA(t *testing.T) {
	got := Color{1, 0.5, 0, 0.5}.toRGBA()
	want := color.RGBA{127, 63, 0, 127}
	if got != want {
		t.Errorf("toRGBA = %v, want premultiplied %v", got, want)
	}
	if got := (Color{2, -1, 0, 1}).toRGBA(); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("out-of-range components not clamped: %v", got)
	}
}
