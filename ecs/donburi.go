package ecs

import (
	"github.com/phanxgames/meadow"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// WorldEventType is the Donburi event type for meadow world events.
// Subscribe to this in your ECS systems to receive tile, plant and animal
// changes.
var WorldEventType = events.NewEventType[meadow.Event]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// World events are published to WorldEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) meadow.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event meadow.Event) {
	WorldEventType.Publish(s.world, event)
}
