package lantern

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig holds window and runtime settings for an App.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	// TPS is the ebiten tick rate. Zero keeps ebiten's default of 60.
	TPS int
	// ClearColor fills the canvas at the start of every frame.
	ClearColor Color
	// ShowFPS draws an FPS/TPS counter in the top-left corner.
	ShowFPS bool
	// ScreenshotDir is where Canvas.Screenshot captures are written.
	ScreenshotDir string
	// Debug installs a development logger unless one was set with SetLogger.
	Debug bool
}

// App runs a Loop and Dispatcher on top of ebiten. It implements ebiten.Game:
// each ebiten Update flushes the frame scheduler, which fires one Loop frame,
// and each ebiten Draw presents the canvas the frame drew into.
//
// The frame phases are used as follows: pre-tick clears the canvas, tick
// advances the active State, post-tick draws the FPS counter on top.
type App struct {
	cfg    RunConfig
	sched  *FrameScheduler
	loop   *Loop
	disp   *Dispatcher
	canvas *Canvas
	fps    *FPSCounter
}

// NewApp creates an App with a canvas of cfg.Width x cfg.Height.
func NewApp(cfg RunConfig) *App {
	if cfg.ScreenshotDir == "" {
		cfg.ScreenshotDir = "screenshots"
	}
	sched := NewFrameScheduler()
	loop := NewLoop(sched)
	a := &App{
		cfg:    cfg,
		sched:  sched,
		loop:   loop,
		disp:   NewDispatcher(loop),
		canvas: NewCanvas(cfg.Width, cfg.Height),
	}
	if cfg.ShowFPS {
		a.fps = NewFPSCounter()
	}
	loop.OnPreTick(func() { a.canvas.Clear(a.cfg.ClearColor) })
	loop.OnPostTick(func() {
		if a.fps != nil {
			a.fps.Update(1 / float64(ebiten.TPS()))
			a.fps.Draw(a.canvas, 0, 0)
		}
	})
	return a
}

// Canvas returns the offscreen canvas states draw into.
func (a *App) Canvas() *Canvas {
	return a.canvas
}

// Loop returns the frame loop.
func (a *App) Loop() *Loop {
	return a.loop
}

// Dispatcher returns the state dispatcher.
func (a *App) Dispatcher() *Dispatcher {
	return a.disp
}

// Run activates initial, starts the loop and blocks in ebiten until the
// window is closed or the loop is stopped.
func (a *App) Run(initial State) error {
	if initial == nil {
		return errors.New("lantern: Run needs an initial state")
	}
	if a.cfg.Debug && !loggerSet {
		l, err := newDebugLogger()
		if err != nil {
			return fmt.Errorf("lantern: build debug logger: %w", err)
		}
		SetLogger(l)
		defer func() { _ = l.Sync() }()
	}

	ebiten.SetWindowTitle(a.cfg.Title)
	ebiten.SetWindowSize(a.cfg.Width, a.cfg.Height)
	if a.cfg.TPS > 0 {
		ebiten.SetTPS(a.cfg.TPS)
	}

	a.disp.Transition(initial)
	a.loop.Start()
	defer a.loop.Stop()

	if err := ebiten.RunGame(a); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("lantern: run: %w", err)
	}
	return nil
}

// Update implements ebiten.Game.
func (a *App) Update() error {
	if !a.loop.Running() {
		return ebiten.Termination
	}
	a.sched.Flush()
	return nil
}

// Draw implements ebiten.Game.
func (a *App) Draw(screen *ebiten.Image) {
	screen.DrawImage(a.canvas.Image(), nil)
	a.canvas.FlushScreenshots(a.cfg.ScreenshotDir)
}

// Layout implements ebiten.Game.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.cfg.Width, a.cfg.Height
}
