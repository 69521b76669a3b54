package timekeeper

import "time"

// EventType defines the type of TimeKeeper event.
type EventType string

const (
	// EventStateChange follows start, toggle and stop.
	EventStateChange EventType = "state_change"
	// EventTick follows each countdown second.
	EventTick EventType = "tick"
	// EventPhase follows each breathing phase change.
	EventPhase EventType = "phase"
	// EventFinished is sent once when the countdown reaches zero.
	EventFinished EventType = "finished"
)

// Event represents a runtime update for observers.
type Event struct {
	Type     EventType
	Snapshot Snapshot
	At       time.Time
}
