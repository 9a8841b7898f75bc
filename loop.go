package lantern

import "go.uber.org/zap"

// Loop is a frame scheduler driver. While running, every scheduled frame
// fires the pre-tick, tick and post-tick callbacks in that order, then asks
// the Scheduler for the next frame. There is no fixed timestep; cadence
// follows the Scheduler.
type Loop struct {
	sched   Scheduler
	handle  Handle
	running bool
	frame   uint64

	preTick  []func()
	tick     []func()
	postTick []func()
	onStart  []func()
	onStop   []func()
}

// NewLoop creates a stopped loop that schedules frames on s.
func NewLoop(s Scheduler) *Loop {
	return &Loop{sched: s}
}

// OnPreTick registers fn to run at the start of every frame.
func (l *Loop) OnPreTick(fn func()) {
	l.preTick = append(l.preTick, fn)
}

// OnTick registers fn to run in the middle phase of every frame.
func (l *Loop) OnTick(fn func()) {
	l.tick = append(l.tick, fn)
}

// OnPostTick registers fn to run at the end of every frame.
func (l *Loop) OnPostTick(fn func()) {
	l.postTick = append(l.postTick, fn)
}

// OnStart registers fn to run whenever the loop starts.
func (l *Loop) OnStart(fn func()) {
	l.onStart = append(l.onStart, fn)
}

// OnStop registers fn to run whenever the loop stops.
func (l *Loop) OnStop(fn func()) {
	l.onStop = append(l.onStop, fn)
}

// Running reports whether the loop is running.
func (l *Loop) Running() bool {
	return l.running
}

// Frame returns the number of frames completed since the loop was created.
func (l *Loop) Frame() uint64 {
	return l.frame
}

// Start schedules the first frame. Starting a running loop does nothing.
func (l *Loop) Start() {
	if l.running {
		return
	}
	l.running = true
	l.handle = l.sched.Schedule(l.runFrame)
	logger.Debug("loop started", zap.Uint64("frame", l.frame))
	for _, fn := range l.onStart {
		fn()
	}
}

// Stop cancels the next frame. A frame already in progress runs to the end.
// Stopping a stopped loop does nothing.
func (l *Loop) Stop() {
	if !l.running {
		return
	}
	l.running = false
	if l.handle != 0 {
		l.sched.Cancel(l.handle)
		l.handle = 0
	}
	logger.Debug("loop stopped", zap.Uint64("frame", l.frame))
	for _, fn := range l.onStop {
		fn()
	}
}

// Step runs a single frame synchronously, whether or not the loop is running.
// It does not schedule anything.
func (l *Loop) Step() {
	l.fire()
}

func (l *Loop) runFrame() {
	l.handle = 0
	l.fire()
	// A Stop followed by Start during the frame has already scheduled one.
	if l.running && l.handle == 0 {
		l.handle = l.sched.Schedule(l.runFrame)
	}
}

func (l *Loop) fire() {
	for _, fn := range l.preTick {
		fn()
	}
	for _, fn := range l.tick {
		fn()
	}
	for _, fn := range l.postTick {
		fn()
	}
	l.frame++
}
