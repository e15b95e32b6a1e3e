package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers comparison and symbol routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/compare", h.HandleCompare)
	r.Route("/symbols", func(r chi.Router) {
		r.Get("/", h.HandleListSymbols)
		r.Get("/search", h.HandleSearch)
		r.Get("/{ticker}", func(w http.ResponseWriter, r *http.Request) {
			h.HandleGetSymbol(w, r, chi.URLParam(r, "ticker"))
		})
	})
}
