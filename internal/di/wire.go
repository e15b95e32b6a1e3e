// Package di provides dependency injection wiring and initialization.
package di

import (
	"fmt"

	"github.com/aristath/investai/internal/config"
	"github.com/aristath/investai/internal/events"
	"github.com/aristath/investai/internal/modules/comparison"
	"github.com/aristath/investai/internal/modules/market_hours"
	"github.com/aristath/investai/internal/scheduler"
	"github.com/rs/zerolog"
)

// Wire initializes all dependencies and returns a fully configured container
// Order of operations:
// 1. Event bus and manager
// 2. Services
// 3. Jobs (registered on the scheduler, not started)
func Wire(cfg *config.Config, log zerolog.Logger) (*Container, error) {
	session, err := cfg.Session()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve market session: %w", err)
	}

	container := &Container{}

	// Step 1: Events
	container.EventBus = events.NewBus()
	container.EventManager = events.NewManager(container.EventBus, log)

	// Step 2: Services
	container.MarketHoursService = market_hours.NewMarketHoursServiceWithSession(session)

	container.SearchIndex, err = comparison.NewSearchIndex(log)
	if err != nil {
		return nil, fmt.Errorf("failed to build symbol index: %w", err)
	}

	// Step 3: Jobs
	container.StatusMonitor = market_hours.NewStatusMonitor(container.MarketHoursService, container.EventManager, nil, log)
	container.Scheduler = scheduler.New(log)

	if err := container.Scheduler.AddJob(cfg.StatusSchedule, container.StatusMonitor); err != nil {
		_ = container.Close()
		return nil, fmt.Errorf("failed to register %s job: %w", container.StatusMonitor.Name(), err)
	}

	log.Info().Msg("Dependency injection wiring completed successfully")

	return container, nil
}
