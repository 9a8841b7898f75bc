package lantern

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hello", "hello"},
		{"after-pan", "after-pan"},
		{"frame.01", "frame.01"},
		{"has spaces", "has_spaces"},
		{"path/to/thing", "path_to_thing"},
		{"back\\slash", "back_slash"},
		{"special!@#$%", "special_____"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
		{"MixedCase123", "MixedCase123"},
	}
	for _, tt := range tests {
		got := sanitizeLabel(tt.in)
		if got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScreenshotQueueAppend(t *testing.T) {
	c := NewCanvas(8, 8)
	c.Screenshot("a")
	c.Screenshot("b")
	c.Screenshot("c")
	if c.PendingScreenshots() != 3 {
		t.Fatalf("queue len = %d, want 3", c.PendingScreenshots())
	}
	if c.screenshotQueue[0] != "a" || c.screenshotQueue[1] != "b" || c.screenshotQueue[2] != "c" {
		t.Errorf("queue = %v, want [a b c]", c.screenshotQueue)
	}
}

func TestFlushScreenshotsEmpty(t *testing.T) {
	c := NewCanvas(8, 8)
	if paths := c.FlushScreenshots(t.TempDir()); paths != nil {
		t.Errorf("paths = %v, want nil", paths)
	}
}

func TestFlushScreenshotsBadDirDropsQueue(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	c := NewCanvas(8, 8)
	c.Screenshot("x")
	if paths := c.FlushScreenshots(filepath.Join(blocker, "sub")); paths != nil {
		t.Errorf("paths = %v, want nil", paths)
	}
	if c.PendingScreenshots() != 0 {
		t.Errorf("queue len = %d after flush, want 0", c.PendingScreenshots())
	}
}

func TestUnpremultiply(t *testing.T) {
	pixels := []byte{
		255, 0, 0, 255, // opaque red
		64, 32, 0, 128, // half-alpha orange
		0, 0, 0, 0, // transparent
		200, 0, 0, 100, // out-of-range premultiplied value
	}
	img := unpremultiply(pixels, 2, 2)

	want := []byte{
		255, 0, 0, 255,
		127, 63, 0, 128,
		0, 0, 0, 0,
		255, 0, 0, 100,
	}
	for i := range want {
		if img.Pix[i] != want[i] {
			t.Errorf("Pix[%d] = %d, want %d", i, img.Pix[i], want[i])
		}
	}
}

func TestWritePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	img := unpremultiply(make([]byte, 4*4*4), 4, 4)
	if err := writePNG(path, img); err != nil {
		t.Fatalf("writePNG: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil || info.Size() == 0 {
		t.Errorf("PNG not written: %v", err)
	}
}
