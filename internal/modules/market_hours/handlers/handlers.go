// Package handlers provides HTTP handlers for market hours operations.
package handlers

import (
	"net/http"
	"time"

	"github.com/aristath/investai/internal/httpx"
	"github.com/aristath/investai/internal/modules/market_hours"
	"github.com/rs/zerolog"
)

// Handler handles market hours HTTP requests
type Handler struct {
	service *market_hours.MarketHoursService
	now     func() time.Time
	log     zerolog.Logger
}

// NewHandler creates a new market hours handler
func NewHandler(
	service *market_hours.MarketHoursService,
	log zerolog.Logger,
) *Handler {
	return &Handler{
		service: service,
		now:     time.Now,
		log:     log.With().Str("handler", "market_hours").Logger(),
	}
}

// HandleGetStatus handles GET /api/market-hours/status
// Returns current market status for all configured exchanges
func (h *Handler) HandleGetStatus(w http.ResponseWriter, r *http.Request) {
	now := h.now()

	codes := market_hours.ExchangeCodes()
	markets := make([]market_hours.MarketStatus, 0, len(codes))
	for _, code := range codes {
		markets = append(markets, h.service.GetMarketStatus(code, now))
	}

	h.write(w, r, http.StatusOK, map[string]interface{}{
		"timestamp": now.Format(time.RFC3339),
		"markets":   markets,
	})
}

// HandleGetStatusByExchange handles GET /api/market-hours/status/{exchange}
// Unknown exchanges resolve to the default exchange
func (h *Handler) HandleGetStatusByExchange(w http.ResponseWriter, r *http.Request, exchange string) {
	status := h.service.GetMarketStatus(exchange, h.now())

	h.log.Debug().
		Str("requested", exchange).
		Str("exchange", status.Exchange).
		Bool("open", status.Open).
		Msg("Market status evaluated")

	h.write(w, r, http.StatusOK, status)
}

// HandleGetOpenMarkets handles GET /api/market-hours/open-markets
func (h *Handler) HandleGetOpenMarkets(w http.ResponseWriter, r *http.Request) {
	now := h.now()
	openMarkets := h.service.GetOpenMarkets(now)

	h.write(w, r, http.StatusOK, map[string]interface{}{
		"timestamp":    now.Format(time.RFC3339),
		"open_markets": openMarkets,
		"count":        len(openMarkets),
	})
}

func (h *Handler) write(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	if err := httpx.Write(w, r, status, data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode response")
	}
}
