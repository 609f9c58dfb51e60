// Package ecs provides ECS adapters for isoview's view events.
//
// The primary adapter is [NewDonburiStore], which bridges viewport events
// (cursor moved, view moved, view rotated, mode changed) into a [Donburi]
// world as typed events. Subscribe to [ViewEventType] in your ECS systems to
// receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	viewport.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
