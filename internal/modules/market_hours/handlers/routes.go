package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all market hours routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/market-hours", func(r chi.Router) {
		r.Get("/status", h.HandleGetStatus)
		r.Get("/status/{exchange}", func(w http.ResponseWriter, r *http.Request) {
			h.HandleGetStatusByExchange(w, r, chi.URLParam(r, "exchange"))
		})
		r.Get("/open-markets", h.HandleGetOpenMarkets)
	})
}
