// Package events provides an in-process event bus for status changes.
package events

import "time"

// EventType represents different event types
type EventType string

const (
	MarketsStatusChanged EventType = "MARKETS_STATUS_CHANGED"
	SystemStatusChanged  EventType = "SYSTEM_STATUS_CHANGED"
	ErrorOccurred        EventType = "ERROR_OCCURRED"
)

// AllEventTypes lists every event type a stream client can subscribe to.
var AllEventTypes = []EventType{
	MarketsStatusChanged,
	SystemStatusChanged,
	ErrorOccurred,
}

// Event represents a system event
type Event struct {
	ID        string                 `json:"id" msgpack:"id"`
	Type      EventType              `json:"type" msgpack:"type"`
	Timestamp time.Time              `json:"timestamp" msgpack:"timestamp"`
	Module    string                 `json:"module" msgpack:"module"`
	Data      map[string]interface{} `json:"data" msgpack:"data"`
}
