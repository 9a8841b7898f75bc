package lantern

import (
	"fmt"

	"go.uber.org/zap"
)

// State is one screen or mode of an application. The Dispatcher owns the
// single active State.
type State interface {
	// Setup is called when the state becomes active.
	Setup(loop *Loop)
	// Tick is called once per frame while the state is active. Calling next
	// with a non-nil State requests a transition, applied after Tick returns;
	// the last request of a tick wins.
	Tick(next func(State))
	// Teardown is called when the state stops being active.
	Teardown()
}

// BaseState implements State with no-ops. Embed it to implement only the
// methods a state needs.
type BaseState struct{}

// Setup implements State.
func (BaseState) Setup(*Loop) {}

// Tick implements State.
func (BaseState) Tick(func(State)) {}

// Teardown implements State.
func (BaseState) Teardown() {}

// TransitionObserver is notified after every completed transition.
// from is nil for the first transition.
type TransitionObserver interface {
	StateChanged(from, to State)
}

// Dispatcher holds the active State and advances it on the Loop's tick phase.
type Dispatcher struct {
	loop     *Loop
	state    State
	observer TransitionObserver

	transitioning bool
	pending       State
}

// NewDispatcher creates a dispatcher with no active state and subscribes it
// to the tick phase of loop.
func NewDispatcher(loop *Loop) *Dispatcher {
	d := &Dispatcher{loop: loop}
	loop.OnTick(d.tick)
	return d
}

// State returns the active state, or nil before the first transition.
func (d *Dispatcher) State() State {
	return d.state
}

// SetObserver installs o to be told about transitions. nil removes it.
func (d *Dispatcher) SetObserver(o TransitionObserver) {
	d.observer = o
}

// Transition tears down the active state, then makes next active and sets it
// up. Teardown always returns before Setup begins, and the old state stays
// active until its Teardown returns. A nil next is ignored.
//
// Transitions requested from inside Teardown or Setup are applied once the
// current one has completed.
func (d *Dispatcher) Transition(next State) {
	if next == nil {
		return
	}
	if d.transitioning {
		d.pending = next
		return
	}
	d.transitioning = true
	defer func() { d.transitioning = false }()

	for next != nil {
		prev := d.state
		if prev != nil {
			prev.Teardown()
		}
		d.state = next
		logger.Debug("state transition",
			zap.String("from", stateName(prev)),
			zap.String("to", stateName(next)))
		next.Setup(d.loop)
		if d.observer != nil {
			d.observer.StateChanged(prev, next)
		}
		next, d.pending = d.pending, nil
	}
}

func (d *Dispatcher) tick() {
	if d.state == nil {
		return
	}
	var next State
	d.state.Tick(func(s State) {
		if s != nil {
			next = s
		}
	})
	if next != nil {
		d.Transition(next)
	}
}

func stateName(s State) string {
	if s == nil {
		return "<none>"
	}
	if n, ok := s.(fmt.Stringer); ok {
		return n.String()
	}
	return fmt.Sprintf("%T", s)
}
