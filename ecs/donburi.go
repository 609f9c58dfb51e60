package ecs

import (
	"github.com/phanxgames/isoview"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ViewEventType is the Donburi event type for isoview view events.
// Subscribe to this in your ECS systems to receive cursor, pan, rotate and
// mode changes.
var ViewEventType = events.NewEventType[isoview.ViewEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// View events are published to ViewEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) isoview.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event isoview.ViewEvent) {
	ViewEventType.Publish(s.world, event)
}
