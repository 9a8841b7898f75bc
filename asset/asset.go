// Package asset resolves a manifest of named images and data files into
// ready-to-draw ebiten images and raw bytes.
//
// A manifest maps each source image to the named regions cut from it, plus
// an optional table of data files:
//
//	images:
//	  imgs/all.png:
//	    player: {x: 0, y: 0, w: 16, h: 16, scale: 2}
//	    coin:   {x: 16, y: 0, w: 8, h: 8}
//	data:
//	  level1: levels/1.json
//
// Sources are read and decoded in parallel. The first failure cancels the
// rest and is returned to the caller; nothing is retried.
package asset

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"  // register decoder
	_ "image/jpeg" // register decoder
	_ "image/png"  // register decoder
	"io"
	"io/fs"
	"path"
	"sort"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
	"golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// Region is a named sub-rectangle of a source image. Scale enlarges the cut
// region; zero means 1.
type Region struct {
	X     int     `yaml:"x"`
	Y     int     `yaml:"y"`
	W     int     `yaml:"w"`
	H     int     `yaml:"h"`
	Scale float64 `yaml:"scale"`
}

// Manifest lists everything a Loader should fetch.
type Manifest struct {
	// Images maps a source path to its named regions.
	Images map[string]map[string]Region `yaml:"images"`
	// Data maps a name to a file read as raw bytes.
	Data map[string]string `yaml:"data"`
}

// ParseManifest decodes a YAML manifest.
func ParseManifest(r io.Reader) (*Manifest, error) {
	var m Manifest
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil && err != io.EOF {
		return nil, fmt.Errorf("asset: parse manifest: %w", err)
	}
	return &m, nil
}

// Loader fetches manifest entries from a file system.
type Loader struct {
	// FS is the file system sources are read from.
	FS fs.FS
	// Prefix is joined in front of every source path.
	Prefix string
	// Smooth selects bilinear scaling for scaled regions instead of
	// nearest-neighbor.
	Smooth bool
	// Logger receives one entry per loaded source. nil disables logging.
	Logger *zap.Logger
}

// Bundle holds the loaded assets. Images are converted to ebiten images on
// first use and cached.
type Bundle struct {
	images map[string]image.Image
	data   map[string][]byte
	cache  map[string]*ebiten.Image
}

// Load fetches every entry of m. It returns the first error encountered, in
// which case the bundle is nil.
func (l *Loader) Load(ctx context.Context, m *Manifest) (*Bundle, error) {
	log := l.Logger
	if log == nil {
		log = zap.NewNop()
	}

	b := &Bundle{
		images: make(map[string]image.Image),
		data:   make(map[string][]byte),
		cache:  make(map[string]*ebiten.Image),
	}
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	for src, regions := range m.Images {
		g.Go(func() error {
			img, err := l.decode(ctx, src)
			if err != nil {
				return err
			}
			cut := make(map[string]image.Image, len(regions))
			for name, r := range regions {
				sub, err := l.cut(img, r)
				if err != nil {
					return fmt.Errorf("asset: %s: region %q: %w", src, name, err)
				}
				cut[name] = sub
			}
			mu.Lock()
			defer mu.Unlock()
			for name, sub := range cut {
				if _, dup := b.images[name]; dup {
					return fmt.Errorf("asset: %s: duplicate image name %q", src, name)
				}
				b.images[name] = sub
			}
			log.Info("loaded image", zap.String("source", src), zap.Int("regions", len(cut)))
			return nil
		})
	}
	for name, file := range m.Data {
		g.Go(func() error {
			data, err := l.read(ctx, file)
			if err != nil {
				return err
			}
			mu.Lock()
			b.data[name] = data
			mu.Unlock()
			log.Info("loaded data", zap.String("name", name), zap.Int("bytes", len(data)))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return b, nil
}

func (l *Loader) read(ctx context.Context, file string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p := path.Join(l.Prefix, file)
	data, err := fs.ReadFile(l.FS, p)
	if err != nil {
		return nil, fmt.Errorf("asset: read %s: %w", p, err)
	}
	return data, nil
}

func (l *Loader) decode(ctx context.Context, src string) (image.Image, error) {
	data, err := l.read(ctx, src)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("asset: decode %s: %w", src, err)
	}
	return img, nil
}

// cut copies region r out of img, scaled by r.Scale.
func (l *Loader) cut(img image.Image, r Region) (image.Image, error) {
	if r.W <= 0 || r.H <= 0 {
		return nil, fmt.Errorf("empty region %dx%d", r.W, r.H)
	}
	b := img.Bounds()
	srcRect := image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H).Add(b.Min)
	if !srcRect.In(b) {
		return nil, fmt.Errorf("region %v outside image %v", srcRect, b)
	}
	scale := r.Scale
	if scale <= 0 {
		scale = 1
	}
	w := int(float64(r.W) * scale)
	h := int(float64(r.H) * scale)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	var scaler draw.Scaler = draw.NearestNeighbor
	if l.Smooth {
		scaler = draw.BiLinear
	}
	scaler.Scale(dst, dst.Bounds(), img, srcRect, draw.Src, nil)
	return dst, nil
}

// Names returns the loaded image names in sorted order.
func (b *Bundle) Names() []string {
	names := make([]string, 0, len(b.images))
	for n := range b.images {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Source returns the decoded pixels of a named image.
func (b *Bundle) Source(name string) (image.Image, bool) {
	img, ok := b.images[name]
	return img, ok
}

// Image returns the named image as an ebiten image, converting it on first use.
func (b *Bundle) Image(name string) (*ebiten.Image, bool) {
	if img, ok := b.cache[name]; ok {
		return img, true
	}
	src, ok := b.images[name]
	if !ok {
		return nil, false
	}
	img := ebiten.NewImageFromImage(src)
	b.cache[name] = img
	return img, true
}

// Data returns the raw bytes of a named data file.
func (b *Bundle) Data(name string) ([]byte, bool) {
	d, ok := b.data[name]
	return d, ok
}
