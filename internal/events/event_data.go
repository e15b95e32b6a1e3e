package events

import "encoding/json"

// EventData is implemented by every typed event payload
type EventData interface {
	EventType() EventType
}

// MarketStatusData is the per-exchange entry of a MarketsStatusChanged event
type MarketStatusData struct {
	Code        string `json:"code"`
	Open        bool   `json:"open"`
	DisplayTime string `json:"display_time"`
	Timezone    string `json:"timezone"`
}

// MarketsStatusChangedData contains data for MarketsStatusChanged events
type MarketsStatusChangedData struct {
	Markets     map[string]MarketStatusData `json:"markets"` // Keyed by exchange code
	Changed     []string                    `json:"changed"`
	OpenCount   int                         `json:"open_count"`
	ClosedCount int                         `json:"closed_count"`
	LastUpdated string                      `json:"last_updated"` // RFC 3339
}

// EventType returns the event type for MarketsStatusChangedData
func (d *MarketsStatusChangedData) EventType() EventType {
	return MarketsStatusChanged
}

// SystemStatusChangedData contains data for SystemStatusChanged events
type SystemStatusChangedData struct {
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

// EventType returns the event type for SystemStatusChangedData
func (d *SystemStatusChangedData) EventType() EventType {
	return SystemStatusChanged
}

// ErrorEventData contains data for ErrorOccurred events
type ErrorEventData struct {
	Error   string                 `json:"error"`
	Context map[string]interface{} `json:"context,omitempty"`
}

// EventType returns the event type for ErrorEventData
func (d *ErrorEventData) EventType() EventType {
	return ErrorOccurred
}

// toMap converts typed event data into the map carried by Event.Data.
func toMap(data EventData) map[string]interface{} {
	if data == nil {
		return nil
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return nil
	}

	var result map[string]interface{}
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil
	}
	return result
}
