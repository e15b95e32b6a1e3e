package di

import (
	"github.com/aristath/investai/internal/events"
	"github.com/aristath/investai/internal/modules/comparison"
	"github.com/aristath/investai/internal/modules/market_hours"
	"github.com/aristath/investai/internal/scheduler"
)

// Container holds all application dependencies
// This is the single source of truth for all services, handlers and jobs
type Container struct {
	// Events
	EventBus     *events.Bus
	EventManager *events.Manager

	// Services
	MarketHoursService *market_hours.MarketHoursService
	SearchIndex        *comparison.SearchIndex // In-memory symbol index, closed by Close

	// Jobs
	StatusMonitor *market_hours.StatusMonitor
	Scheduler     *scheduler.Scheduler
}

// Close releases resources held by the container
func (c *Container) Close() error {
	if c.SearchIndex != nil {
		return c.SearchIndex.Close()
	}
	return nil
}
