// Package ecs provides ECS adapters for cartoon's Player.
//
// The adapter is [NewDonburiObserver], which bridges Player status changes
// and ticks into a [Donburi] world as typed events. Subscribe to
// [StatusEventType] and [StepEventType] in your ECS systems to receive them.
//
// Usage:
//
//	obs := ecs.NewDonburiObserver(world)
//	obs.Attach(player)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
