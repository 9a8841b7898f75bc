// Package lantern is a small 2D presentation layer for [Ebitengine]: a camera
// that maps world-space content onto a bounded viewport with panning, zooming
// and visibility culling, driven by a frame loop that advances an explicit
// application state machine.
//
// # Quick start
//
// The simplest way to get started is [App], which owns the loop, the state
// dispatcher and an offscreen [Canvas]:
//
//	app := lantern.NewApp(lantern.RunConfig{
//		Title: "My Game", Width: 640, Height: 480,
//	})
//	cam := lantern.NewCamera(640, 480)
//	err := app.Run(&playState{canvas: app.Canvas(), cam: cam})
//
// # States
//
// A [State] is one screen of the application. The [Dispatcher] keeps exactly
// one active; on a transition the old state's Teardown always returns before
// the new state's Setup begins. States request transitions from Tick and the
// Dispatcher applies them once Tick has returned.
//
// # Frames
//
// A [Loop] fires three phases per frame, in order: pre-tick, tick, post-tick.
// Frames are timed by a [Scheduler]; [App] uses a [FrameScheduler] flushed
// once per ebiten Update.
//
// # Camera
//
// Everything drawn through a [Camera] happens between Begin and End:
//
//	func (s *playState) Tick(next func(lantern.State)) {
//		defer s.cam.Begin(s.canvas)()
//		s.cam.DrawFixedLayer(s.background)
//		s.cam.Draw(s.hero, s.heroPos)
//	}
//
// Draw skips any [Drawable] whose bounds miss the viewport. [DragPan] pans and
// zooms a camera from the mouse.
//
// [Ebitengine]: https://ebitengine.org
package lantern
