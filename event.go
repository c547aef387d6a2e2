package bounce

// ContactEvent describes one tick in which the body touched at least one
// wall. Position and Velocity are the values after reflection.
type ContactEvent struct {
	Tick     uint64
	Contact  Contact
	Position Vec2
	Velocity Vec2
}

// EventSink receives contact events from a host loop. Hosts call EmitContact
// synchronously from their update step, after the body has been reflected.
type EventSink interface {
	EmitContact(event ContactEvent)
}

// Sinks fans a single event out to every non-nil sink in order.
type Sinks []EventSink

// EmitContact implements EventSink.
func (s Sinks) EmitContact(event ContactEvent) {
	for _, sink := range s {
		if sink != nil {
			sink.EmitContact(event)
		}
	}
}

// EventSinkFunc adapts a plain function to EventSink.
type EventSinkFunc func(ContactEvent)

// EmitContact implements EventSink.
func (f EventSinkFunc) EmitContact(event ContactEvent) {
	f(event)
}
