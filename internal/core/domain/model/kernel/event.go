package kernel

import "time"

// DomainEvent is a fact recorded by an aggregate while it changes state.
// Aggregates keep their events until the unit of work has committed and
// handed them to a publisher.
type DomainEvent interface {
	EventName() string
	AggregateID() UUID
	OccurredAt() time.Time
	// Attributes is the event payload as flat string pairs, ready for a log
	// record or a message body.
	Attributes() map[string]string
}

// EventRecorder is implemented by aggregates that record domain events.
// PullEvents returns the recorded events and forgets them.
type EventRecorder interface {
	PullEvents() []DomainEvent
}
