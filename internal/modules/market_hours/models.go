package market_hours

import "time"

// ClockTime is a wall-clock time of day in a market's local zone.
type ClockTime struct {
	Hour   int // 0-23
	Minute int // 0-59
}

// Session is the daily trading window of a market.
type Session struct {
	Location *time.Location
	Open     ClockTime
	Close    ClockTime
}

// ExchangeConfig represents configuration for a single exchange
type ExchangeConfig struct {
	Code    string
	Name    string
	Session Session
}

// MarketStatus represents the status of a market at one instant.
type MarketStatus struct {
	Open        bool   `json:"open"`
	DisplayTime string `json:"display_time"` // Local hh:mm am/pm
	Exchange    string `json:"exchange,omitempty"`
	Timezone    string `json:"timezone"`
	ClosesAt    string `json:"closes_at,omitempty"`  // Set when open
	OpensAt     string `json:"opens_at,omitempty"`   // Set when closed
	OpensDate   string `json:"opens_date,omitempty"` // Set when the next open is on a later date
}
