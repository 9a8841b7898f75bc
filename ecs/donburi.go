package ecs

import (
	"github.com/phanxgames/lantern"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// TransitionEvent describes one completed state transition.
// From is nil for the first transition.
type TransitionEvent struct {
	From lantern.State
	To   lantern.State
	// Frame is the loop frame during which the transition completed.
	Frame uint64
}

// TransitionEventType is the Donburi event type for lantern state transitions.
var TransitionEventType = events.NewEventType[TransitionEvent]()

type donburiObserver struct {
	world donburi.World
	loop  *lantern.Loop
}

// NewDonburiObserver creates a TransitionObserver backed by a Donburi world.
// Transitions are published to TransitionEventType and delivered when the
// world processes its events. loop may be nil, in which case Frame is zero.
func NewDonburiObserver(world donburi.World, loop *lantern.Loop) lantern.TransitionObserver {
	return &donburiObserver{world: world, loop: loop}
}

func (o *donburiObserver) StateChanged(from, to lantern.State) {
	var frame uint64
	if o.loop != nil {
		frame = o.loop.Frame()
	}
	TransitionEventType.Publish(o.world, TransitionEvent{From: from, To: to, Frame: frame})
}
