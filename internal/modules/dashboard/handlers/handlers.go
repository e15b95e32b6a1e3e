// Package handlers provides HTTP handlers for the dashboard snapshot.
package handlers

import (
	"errors"
	"net/http"

	"github.com/aristath/investai/internal/httpx"
	"github.com/aristath/investai/internal/modules/dashboard"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// Handler handles dashboard HTTP requests
type Handler struct {
	log zerolog.Logger
}

// NewHandler creates a new dashboard handler
func NewHandler(log zerolog.Logger) *Handler {
	return &Handler{
		log: log.With().Str("handler", "dashboard").Logger(),
	}
}

// RegisterRoutes registers dashboard routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/dashboard", func(r chi.Router) {
		r.Get("/", h.HandleListTabs)
		r.Get("/{tab}", h.HandleGetTab)
	})
}

// HandleListTabs handles GET /api/dashboard
func (h *Handler) HandleListTabs(w http.ResponseWriter, r *http.Request) {
	h.write(w, r, http.StatusOK, map[string]interface{}{
		"tabs": dashboard.Tabs,
	})
}

// HandleGetTab handles GET /api/dashboard/{tab}
func (h *Handler) HandleGetTab(w http.ResponseWriter, r *http.Request) {
	view, err := dashboard.GetView(chi.URLParam(r, "tab"))
	if errors.Is(err, dashboard.ErrUnknownTab) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to build dashboard view")
		http.Error(w, "Failed to build dashboard view", http.StatusInternalServerError)
		return
	}

	h.write(w, r, http.StatusOK, view)
}

func (h *Handler) write(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	if err := httpx.Write(w, r, status, data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode response")
	}
}
