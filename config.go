package lantern

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds the settings for an App and its main Camera.
type Config struct {
	Screen        ScreenConfig `yaml:"screen"`
	Camera        CameraConfig `yaml:"camera"`
	ScreenshotDir string       `yaml:"screenshot_dir"`
	Debug         bool         `yaml:"debug"`
}

// ScreenConfig holds window settings.
type ScreenConfig struct {
	Title      string     `yaml:"title"`
	Width      int        `yaml:"width"`
	Height     int        `yaml:"height"`
	TPS        int        `yaml:"tps"`
	ClearColor [4]float64 `yaml:"clear_color"` // RGBA in [0, 1]
	ShowFPS    bool       `yaml:"show_fps"`
}

// CameraConfig holds pan and zoom tuning. Bounds is optional; when absent the
// camera focus is unbounded.
type CameraConfig struct {
	PanSpeed   float64     `yaml:"pan_speed"`
	ZoomFactor float64     `yaml:"zoom_factor"`
	MinZoom    float64     `yaml:"min_zoom"`
	MaxZoom    float64     `yaml:"max_zoom"`
	Bounds     *RectConfig `yaml:"bounds"`
}

// RectConfig is the YAML form of a Rect.
type RectConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Rect converts rc to a Rect.
func (rc RectConfig) Rect() Rect {
	return Rect{rc.X, rc.Y, rc.Width, rc.Height}
}

// DefaultConfig returns the embedded defaults.
func DefaultConfig() *Config {
	cfg, err := ParseConfig(nil)
	if err != nil {
		panic(fmt.Sprintf("lantern: embedded defaults: %v", err))
	}
	return cfg
}

// ParseConfig decodes data over the embedded defaults. Keys missing from data
// keep their default values.
func ParseConfig(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("lantern: parse defaults: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("lantern: parse config: %w", err)
		}
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfig reads a YAML file and decodes it over the embedded defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("lantern: read config %s: %w", path, err)
	}
	return ParseConfig(data)
}

func (c *Config) validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("lantern: invalid screen size %dx%d", c.Screen.Width, c.Screen.Height)
	}
	cc := c.Camera
	if cc.MinZoom <= 0 || cc.MaxZoom < cc.MinZoom {
		return fmt.Errorf("lantern: invalid zoom range [%g, %g]", cc.MinZoom, cc.MaxZoom)
	}
	if cc.ZoomFactor <= 0 {
		return fmt.Errorf("lantern: invalid zoom factor %g", cc.ZoomFactor)
	}
	return nil
}

// NewCamera builds a Camera sized to the screen and tuned by the camera section.
func (c *Config) NewCamera() *Camera {
	cam := NewCamera(float64(c.Screen.Width), float64(c.Screen.Height))
	cam.PanSpeed = c.Camera.PanSpeed
	cam.ZoomFactor = c.Camera.ZoomFactor
	cam.MinZoom = c.Camera.MinZoom
	cam.MaxZoom = c.Camera.MaxZoom
	cam.SetZoom(cam.Zoom())
	if c.Camera.Bounds != nil {
		cam.SetBounds(c.Camera.Bounds.Rect())
	}
	return cam
}

// RunConfig converts c to the settings App needs.
func (c *Config) RunConfig() RunConfig {
	cc := c.Screen.ClearColor
	return RunConfig{
		Title:         c.Screen.Title,
		Width:         c.Screen.Width,
		Height:        c.Screen.Height,
		TPS:           c.Screen.TPS,
		ClearColor:    Color{cc[0], cc[1], cc[2], cc[3]},
		ShowFPS:       c.Screen.ShowFPS,
		ScreenshotDir: c.ScreenshotDir,
		Debug:         c.Debug,
	}
}
