package lantern

import (
	"strings"
	"testing"
)

func TestLoopPhaseOrder(t *testing.T) {
	sched := NewFrameScheduler()
	loop := NewLoop(sched)
	var got []string
	loop.OnPostTick(func() { got = append(got, "post") })
	loop.OnTick(func() { got = append(got, "tick") })
	loop.OnPreTick(func() { got = append(got, "pre") })
	loop.OnTick(func() { got = append(got, "tick2") })

	loop.Start()
	sched.Flush()
	sched.Flush()

	want := "pre,tick,tick2,post,pre,tick,tick2,post"
	if strings.Join(got, ",") != want {
		t.Errorf("order = %v, want %s", got, want)
	}
	if loop.Frame() != 2 {
		t.Errorf("Frame = %d, want 2", loop.Frame())
	}
}

func TestLoopNotRunningUntilStarted(t *testing.T) {
	sched := NewFrameScheduler()
	loop := NewLoop(sched)
	ticks := 0
	loop.OnTick(func() { ticks++ })

	sched.Flush()
	if ticks != 0 || loop.Running() {
		t.Errorf("ticks = %d, Running = %v before Start", ticks, loop.Running())
	}
}

func TestLoopStartStopIdempotent(t *testing.T) {
	sched := NewFrameScheduler()
	loop := NewLoop(sched)
	starts, stops := 0, 0
	loop.OnStart(func() { starts++ })
	loop.OnStop(func() { stops++ })

	loop.Start()
	loop.Start()
	if sched.Pending() != 1 {
		t.Errorf("Pending = %d after double Start, want 1", sched.Pending())
	}
	loop.Stop()
	loop.Stop()
	if starts != 1 || stops != 1 {
		t.Errorf("starts = %d, stops = %d, want 1 and 1", starts, stops)
	}
	if sched.Pending() != 0 {
		t.Errorf("Pending = %d after Stop, want 0", sched.Pending())
	}
}

func TestLoopStopMidFrame(t *testing.T) {
	sched := NewFrameScheduler()
	loop := NewLoop(sched)
	var got []string
	loop.OnPreTick(func() { got = append(got, "pre") })
	loop.OnTick(func() {
		got = append(got, "tick")
		loop.Stop()
	})
	loop.OnPostTick(func() { got = append(got, "post") })

	loop.Start()
	sched.Flush()
	sched.Flush()

	// The frame in progress completes; no further frame runs.
	if strings.Join(got, ",") != "pre,tick,post" {
		t.Errorf("phases = %v", got)
	}
	if loop.Running() {
		t.Error("Running = true after Stop")
	}
}

func TestLoopRestartDuringFrame(t *testing.T) {
	sched := NewFrameScheduler()
	loop := NewLoop(sched)
	first := true
	loop.OnTick(func() {
		if first {
			first = false
			loop.Stop()
			loop.Start()
		}
	})
	loop.Start()
	sched.Flush()
	if sched.Pending() != 1 {
		t.Errorf("Pending = %d, want exactly one scheduled frame", sched.Pending())
	}
}

func TestLoopStep(t *testing.T) {
	sched := NewFrameScheduler()
	loop := NewLoop(sched)
	ticks := 0
	loop.OnTick(func() { ticks++ })
	loop.Step()
	loop.Step()
	if ticks != 2 || loop.Frame() != 2 {
		t.Errorf("ticks = %d, frame = %d", ticks, loop.Frame())
	}
	if sched.Pending() != 0 {
		t.Error("Step scheduled a frame")
	}
}

func TestLoopsAreIndependent(t *testing.T) {
	sched := NewFrameScheduler()
	a := NewLoop(sched)
	b := NewLoop(sched)
	aTicks, bTicks := 0, 0
	a.OnTick(func() { aTicks++ })
	b.OnTick(func() { bTicks++ })

	a.Start()
	b.Start()
	sched.Flush()
	a.Stop()
	sched.Flush()

	if aTicks != 1 || bTicks != 2 {
		t.Errorf("aTicks = %d, bTicks = %d, want 1 and 2", aTicks, bTicks)
	}
	if !b.Running() {
		t.Error("stopping one loop stopped the other")
	}
}

// --- FrameScheduler ---

func TestFrameSchedulerHandles(t *testing.T) {
	s := NewFrameScheduler()
	h1 := s.Schedule(func() {})
	h2 := s.Schedule(func() {})
	if h1 == 0 || h2 == 0 || h1 == h2 {
		t.Errorf("handles = %d, %d", h1, h2)
	}
}

func TestFrameSchedulerCancel(t *testing.T) {
	s := NewFrameScheduler()
	ran := 0
	h := s.Schedule(func() { ran++ })
	s.Schedule(func() { ran += 10 })
	s.Cancel(h)
	s.Cancel(h)
	s.Cancel(999)
	s.Flush()
	if ran != 10 {
		t.Errorf("ran = %d, want 10", ran)
	}
}

func TestFrameSchedulerDefersNewCallbacks(t *testing.T) {
	s := NewFrameScheduler()
	var got []int
	s.Schedule(func() {
		got = append(got, 1)
		s.Schedule(func() { got = append(got, 2) })
	})
	s.Flush()
	if len(got) != 1 {
		t.Fatalf("got = %v after first Flush, want [1]", got)
	}
	s.Flush()
	if len(got) != 2 || got[1] != 2 {
		t.Errorf("got = %v after second Flush, want [1 2]", got)
	}
}

func TestFrameSchedulerCancelWithinBatch(t *testing.T) {
	s := NewFrameScheduler()
	ran := false
	var h2 Handle
	s.Schedule(func() { s.Cancel(h2) })
	h2 = s.Schedule(func() { ran = true })
	s.Flush()
	if ran {
		t.Error("callback cancelled earlier in the batch still ran")
	}
}
