package lantern

// Handle identifies a callback queued on a Scheduler. The zero Handle is
// never returned by Schedule.
type Handle uint64

// Scheduler runs callbacks once, timed to the host's display refresh.
type Scheduler interface {
	// Schedule queues fn to run once on a later frame.
	Schedule(fn func()) Handle
	// Cancel drops a queued callback. Unknown or already-run handles are ignored.
	Cancel(h Handle)
}

type scheduled struct {
	handle Handle
	fn     func()
}

// FrameScheduler is a Scheduler driven by explicit Flush calls. The App
// flushes it once per ebiten tick; tests flush it by hand.
type FrameScheduler struct {
	next    Handle
	queue   []scheduled
	running []scheduled
}

// NewFrameScheduler returns an empty scheduler.
func NewFrameScheduler() *FrameScheduler {
	return &FrameScheduler{}
}

// Schedule implements Scheduler.
func (s *FrameScheduler) Schedule(fn func()) Handle {
	s.next++
	s.queue = append(s.queue, scheduled{handle: s.next, fn: fn})
	return s.next
}

// Cancel implements Scheduler.
func (s *FrameScheduler) Cancel(h Handle) {
	for i := range s.queue {
		if s.queue[i].handle == h {
			s.queue = append(s.queue[:i], s.queue[i+1:]...)
			return
		}
	}
	// A callback flushed earlier in the same batch may cancel a later one.
	for i := range s.running {
		if s.running[i].handle == h {
			s.running[i].fn = nil
			return
		}
	}
}

// Pending returns the number of callbacks waiting for the next Flush.
func (s *FrameScheduler) Pending() int {
	return len(s.queue)
}

// Flush runs every callback queued before the call. Callbacks scheduled while
// flushing wait for the next Flush.
func (s *FrameScheduler) Flush() {
	s.running, s.queue = s.queue, s.running[:0]
	for i := range s.running {
		if fn := s.running[i].fn; fn != nil {
			s.running[i].fn = nil
			fn()
		}
	}
	s.running = s.running[:0]
}
