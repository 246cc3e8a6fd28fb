// Package ecs provides ECS adapters for easel's notification stream.
//
// [NewDonburiSink] bridges engine notifications (regions, placement,
// gestures, status) into a [Donburi] world as typed events. Subscribe to
// [NotificationEventType] in your ECS systems to receive them.
//
// [NewDonburiMirror] additionally keeps one entity per pending region and
// one for the placed object, with components that follow the engine's
// state, so systems can query them like any other entity.
//
// Usage:
//
//	mirror := ecs.NewDonburiMirror(world)
//	engine.SetEventSink(mirror)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
