// Package ecs provides ECS adapters for meadow's world events.
//
// The primary adapter is [NewDonburiSink], which bridges meadow world events
// (tiles painted, plants and animals added, grown or removed) into a
// [Donburi] world as typed events. Subscribe to [WorldEventType] in your ECS
// systems to receive them, or attach a [Tally] to keep running counts.
//
// Usage:
//
//	dw := donburi.NewWorld()
//	world.SetEventSink(ecs.NewDonburiSink(dw))
//	tally := ecs.NewTally(dw)
//	// once per frame:
//	ecs.WorldEventType.ProcessEvents(dw)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
