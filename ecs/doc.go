// Package ecs provides ECS adapters for nebula's hover events.
//
// The primary adapter is [NewDonburiSink], which bridges word enter/leave
// events into a [Donburi] world as typed events. Subscribe to
// [HoverEventType] in your ECS systems to receive them, or call
// [TrackHover] for an entity that always holds the hovered words.
//
// Usage:
//
//	world := donburi.NewWorld()
//	tracker := ecs.TrackHover(world)
//	container.SetEventSink(ecs.NewDonburiSink(world))
//	container.SetUpdateFunc(func() error {
//		events.ProcessAllEvents(world)
//		return nil
//	})
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
