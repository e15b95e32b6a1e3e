package market_hours

import (
	"sort"
	"sync"
	"time"

	"github.com/aristath/investai/internal/events"
	"github.com/aristath/investai/internal/utils"
	"github.com/rs/zerolog"
)

// StatusMonitor re-evaluates every exchange on each run and emits a
// MarketsStatusChanged event when any open flag flips. The first run always
// emits so subscribers receive the initial state.
type StatusMonitor struct {
	service *MarketHoursService
	events  *events.Manager
	now     func() time.Time
	log     zerolog.Logger

	mu   sync.Mutex
	last map[string]bool
}

// NewStatusMonitor creates a monitor. now defaults to time.Now.
func NewStatusMonitor(service *MarketHoursService, eventManager *events.Manager, now func() time.Time, log zerolog.Logger) *StatusMonitor {
	if now == nil {
		now = time.Now
	}
	return &StatusMonitor{
		service: service,
		events:  eventManager,
		now:     now,
		log:     log.With().Str("component", "market_status_monitor").Logger(),
	}
}

// Name identifies the job in scheduler logs
func (m *StatusMonitor) Name() string {
	return "market_status"
}

// Run evaluates all exchanges once
func (m *StatusMonitor) Run() error {
	defer utils.OperationTimer(m.Name(), time.Second, m.log)()
	now := m.now()

	markets := make(map[string]events.MarketStatusData)
	current := make(map[string]bool)
	openCount := 0
	for _, code := range ExchangeCodes() {
		status := m.service.GetMarketStatus(code, now)
		markets[code] = events.MarketStatusData{
			Code:        code,
			Open:        status.Open,
			DisplayTime: status.DisplayTime,
			Timezone:    status.Timezone,
		}
		current[code] = status.Open
		if status.Open {
			openCount++
		}
	}

	m.mu.Lock()
	changed := diffOpenFlags(m.last, current)
	m.last = current
	m.mu.Unlock()

	if len(changed) == 0 {
		m.log.Debug().Int("open_count", openCount).Msg("Market status unchanged")
		return nil
	}

	m.events.EmitTyped("market_hours", &events.MarketsStatusChangedData{
		Markets:     markets,
		Changed:     changed,
		OpenCount:   openCount,
		ClosedCount: len(markets) - openCount,
		LastUpdated: now.Format(time.RFC3339),
	})
	return nil
}

// diffOpenFlags returns the sorted codes whose flag differs from, or is
// missing in, previous.
func diffOpenFlags(previous, current map[string]bool) []string {
	var changed []string
	for code, open := range current {
		if prev, seen := previous[code]; !seen || prev != open {
			changed = append(changed, code)
		}
	}
	sort.Strings(changed)
	return changed
}
