package ecs

// EventKind identifies gameplay event types.
type EventKind string

const (
	EventPlayerDied          EventKind = "player_died"
	EventPlayerRespawned     EventKind = "player_respawned"
	EventCheckpointActivated EventKind = "checkpoint_activated"
	EventProjectileFired     EventKind = "projectile_fired"
)

// Event is a generic ECS event payload.
type Event struct {
	Kind   EventKind
	Entity Entity
	X, Y   float64
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Len reports how many events are queued.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
