package server

import (
	"net/http"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/aristath/investai/internal/events"
	"github.com/aristath/investai/internal/httpx"
	"github.com/aristath/investai/internal/modules/market_hours"
)

// Service identity reported by /health and /api/system/status
const (
	ServiceName = "investai"
	Version     = "1.0.0"
)

// SystemHandlers contains HTTP handlers for system status
type SystemHandlers struct {
	log                zerolog.Logger
	startupTime        time.Time
	marketHoursService *market_hours.MarketHoursService
	eventBus           *events.Bus
	now                func() time.Time
}

// NewSystemHandlers creates a new system handlers instance
func NewSystemHandlers(marketHoursService *market_hours.MarketHoursService, eventBus *events.Bus, log zerolog.Logger) *SystemHandlers {
	return &SystemHandlers{
		log:                log.With().Str("service", "system").Logger(),
		startupTime:        time.Now(),
		marketHoursService: marketHoursService,
		eventBus:           eventBus,
		now:                time.Now,
	}
}

// SystemStatusResponse represents system status
type SystemStatusResponse struct {
	Status        string   `json:"status" msgpack:"status"`
	Service       string   `json:"service" msgpack:"service"`
	Version       string   `json:"version" msgpack:"version"`
	StartedAt     string   `json:"started_at" msgpack:"started_at"` // RFC 3339
	Started       string   `json:"started" msgpack:"started"`       // e.g. "3 minutes ago"
	UptimeSeconds int64    `json:"uptime_seconds" msgpack:"uptime_seconds"`
	CPUPercent    float64  `json:"cpu_percent" msgpack:"cpu_percent"`
	RAMPercent    float64  `json:"ram_percent" msgpack:"ram_percent"`
	OpenMarkets   []string `json:"open_markets" msgpack:"open_markets"`
	Subscribers   int      `json:"subscribers" msgpack:"subscribers"` // Live market status listeners
}

// GetSystemStatusSnapshot returns a snapshot of the current system status.
func (h *SystemHandlers) GetSystemStatusSnapshot() SystemStatusResponse {
	now := h.now()
	cpuPercent, ramPercent := h.getSystemStats()

	return SystemStatusResponse{
		Status:        "healthy",
		Service:       ServiceName,
		Version:       Version,
		StartedAt:     h.startupTime.Format(time.RFC3339),
		Started:       humanize.RelTime(h.startupTime, now, "ago", "from now"),
		UptimeSeconds: int64(now.Sub(h.startupTime).Seconds()),
		CPUPercent:    cpuPercent,
		RAMPercent:    ramPercent,
		OpenMarkets:   h.marketHoursService.GetOpenMarkets(now),
		Subscribers:   h.eventBus.SubscriberCount(events.MarketsStatusChanged),
	}
}

// HandleSystemStatus handles GET /api/system/status
func (h *SystemHandlers) HandleSystemStatus(w http.ResponseWriter, r *http.Request) {
	h.log.Debug().Msg("Getting system status")

	if err := httpx.Write(w, r, http.StatusOK, h.GetSystemStatusSnapshot()); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode response")
	}
}

// getSystemStats calculates CPU and RAM usage percentages
// CPU is sampled over 100ms so the request stays fast
func (h *SystemHandlers) getSystemStats() (float64, float64) {
	cpuPercent, err := cpu.Percent(100*time.Millisecond, false)
	if err != nil {
		h.log.Warn().Err(err).Msg("Failed to get CPU percentage")
		cpuPercent = []float64{0}
	}

	memStat, err := mem.VirtualMemory()
	if err != nil {
		h.log.Warn().Err(err).Msg("Failed to get memory statistics")
		return 0, 0
	}

	cpuAvg := 0.0
	if len(cpuPercent) > 0 {
		cpuAvg = cpuPercent[0]
	}

	return cpuAvg, memStat.UsedPercent
}
