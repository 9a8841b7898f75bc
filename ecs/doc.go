// Package ecs provides ECS adapters for lantern's state dispatcher.
//
// The primary adapter is [NewDonburiObserver], which publishes every state
// transition into a [Donburi] world as a typed event. Subscribe to
// [TransitionEventType] in your ECS systems to react to screen changes, for
// example to despawn entities that belong to the state being left.
//
// Usage:
//
//	obs := ecs.NewDonburiObserver(world, app.Loop())
//	app.Dispatcher().SetObserver(obs)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
