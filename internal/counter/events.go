package counter

import "time"

// EventType identifies what changed in a Counter.
type EventType string

const (
	EventStarted EventType = "started"
	EventPaused  EventType = "paused"
	EventTick    EventType = "tick"
	EventReset   EventType = "reset"
	EventClosed  EventType = "closed"
)

// Event is delivered to observers after every state mutation.
type Event struct {
	Type EventType
	View ViewModel
	At   time.Time
}
