package ecs

import (
	"github.com/phanxgames/bounce"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ContactEventType is the Donburi event type for bounce contact events.
var ContactEventType = events.NewEventType[bounce.ContactEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Contact
// events are queued on ContactEventType and delivered by ProcessEvents.
func NewDonburiSink(world donburi.World) bounce.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitContact(event bounce.ContactEvent) {
	ContactEventType.Publish(s.world, event)
}
