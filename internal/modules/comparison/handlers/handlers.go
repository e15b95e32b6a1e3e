// Package handlers provides HTTP handlers for symbol lookup and comparison.
package handlers

import (
	"net/http"

	"github.com/aristath/investai/internal/httpx"
	"github.com/aristath/investai/internal/modules/comparison"
	"github.com/rs/zerolog"
)

// Searcher finds tickers matching a free-text query
type Searcher interface {
	Search(query string) ([]string, error)
}

// Handler handles comparison HTTP requests
type Handler struct {
	search Searcher
	log    zerolog.Logger
}

// NewHandler creates a new comparison handler
func NewHandler(search Searcher, log zerolog.Logger) *Handler {
	return &Handler{
		search: search,
		log:    log.With().Str("handler", "comparison").Logger(),
	}
}

// MetricRow is one rendered metric of a comparison
type MetricRow struct {
	Metric   comparison.Metric  `json:"metric" msgpack:"metric"`
	Label    string             `json:"label" msgpack:"label"`
	A        float64            `json:"a" msgpack:"a"`
	B        float64            `json:"b" msgpack:"b"`
	ADisplay string             `json:"a_display" msgpack:"a_display"`
	BDisplay string             `json:"b_display" msgpack:"b_display"`
	Verdict  comparison.Verdict `json:"verdict" msgpack:"verdict"`
	Badge    string             `json:"badge,omitempty" msgpack:"badge,omitempty"`
}

// CompareResponse is the body of GET /api/compare
type CompareResponse struct {
	comparison.Comparison
	KnownA bool        `json:"known_a" msgpack:"known_a"`
	KnownB bool        `json:"known_b" msgpack:"known_b"`
	Rows   []MetricRow `json:"rows" msgpack:"rows"`
}

// SymbolResponse is the body of GET /api/symbols/{ticker}
type SymbolResponse struct {
	Symbol  string                   `json:"symbol" msgpack:"symbol"`
	Known   bool                     `json:"known" msgpack:"known"`
	Metrics comparison.SymbolMetrics `json:"metrics" msgpack:"metrics"`
}

// HandleCompare handles GET /api/compare?a=&b=
// Missing or unknown tickers resolve to the fallback metrics
func (h *Handler) HandleCompare(w http.ResponseWriter, r *http.Request) {
	a := r.URL.Query().Get("a")
	b := r.URL.Query().Get("b")

	result := comparison.CompareSymbols(a, b)

	rows := make([]MetricRow, 0, len(comparison.Metrics))
	for _, metric := range comparison.Metrics {
		verdict := result.Verdicts[metric]
		av, bv := result.A.Value(metric), result.B.Value(metric)
		rows = append(rows, MetricRow{
			Metric:   metric,
			Label:    comparison.MetricLabel(metric),
			A:        av,
			B:        bv,
			ADisplay: comparison.FormatMetric(metric, av),
			BDisplay: comparison.FormatMetric(metric, bv),
			Verdict:  verdict,
			Badge:    verdict.Label(),
		})
	}

	h.log.Debug().
		Str("a", result.SymbolA).
		Str("b", result.SymbolB).
		Msg("Symbols compared")

	h.write(w, r, http.StatusOK, CompareResponse{
		Comparison: result,
		KnownA:     comparison.IsKnown(a),
		KnownB:     comparison.IsKnown(b),
		Rows:       rows,
	})
}

// HandleListSymbols handles GET /api/symbols
func (h *Handler) HandleListSymbols(w http.ResponseWriter, r *http.Request) {
	symbols := comparison.Symbols()
	h.write(w, r, http.StatusOK, map[string]interface{}{
		"symbols": symbols,
		"count":   len(symbols),
	})
}

// HandleGetSymbol handles GET /api/symbols/{ticker}
func (h *Handler) HandleGetSymbol(w http.ResponseWriter, r *http.Request, ticker string) {
	h.write(w, r, http.StatusOK, SymbolResponse{
		Symbol:  comparison.NormalizeTicker(ticker),
		Known:   comparison.IsKnown(ticker),
		Metrics: comparison.ResolveSymbol(ticker),
	})
}

// HandleSearch handles GET /api/symbols/search?q=
func (h *Handler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	symbols, err := h.search.Search(query)
	if err != nil {
		h.log.Error().Err(err).Str("query", query).Msg("Symbol search failed")
		http.Error(w, "Failed to search symbols", http.StatusInternalServerError)
		return
	}

	h.write(w, r, http.StatusOK, map[string]interface{}{
		"query":   query,
		"symbols": symbols,
		"count":   len(symbols),
	})
}

func (h *Handler) write(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	if err := httpx.Write(w, r, status, data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode response")
	}
}
