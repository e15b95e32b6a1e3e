package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/aristath/investai/internal/events"
	"github.com/rs/zerolog"
	"nhooyr.io/websocket"
)

const writeWait = 10 * time.Second

// EventsSocketHandler streams bus events over a WebSocket. It carries the
// same messages as the SSE stream.
type EventsSocketHandler struct {
	eventBus  *events.Bus
	heartbeat time.Duration
	log       zerolog.Logger
}

// NewEventsSocketHandler creates a new WebSocket events handler.
func NewEventsSocketHandler(eventBus *events.Bus, heartbeat time.Duration, log zerolog.Logger) *EventsSocketHandler {
	return &EventsSocketHandler{
		eventBus:  eventBus,
		heartbeat: heartbeat,
		log:       log.With().Str("component", "events_socket").Logger(),
	}
}

// ServeHTTP handles GET /api/events/ws requests.
func (h *EventsSocketHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	types := parseEventTypes(r.URL.Query().Get("types"))
	if len(types) == 0 {
		http.Error(w, "No known event types requested", http.StatusBadRequest)
		return
	}

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true, // any origin, matching the CORS policy
	})
	if err != nil {
		h.log.Warn().Err(err).Msg("WebSocket upgrade failed")
		return
	}
	defer conn.Close(websocket.StatusInternalError, "")

	// Clients never send; CloseRead handles control frames and cancels ctx on close.
	ctx := conn.CloseRead(r.Context())

	eventChan, unsubscribe := subscribe(h.eventBus, types, h.log)
	defer unsubscribe()

	h.log.Info().Int("types", len(types)).Msg("Client connected to event socket")

	if err := h.send(ctx, conn, connectedMessage()); err != nil {
		return
	}

	heartbeat := time.NewTicker(h.heartbeat)
	defer heartbeat.Stop()

	for {
		var err error
		select {
		case <-ctx.Done():
			h.log.Info().Msg("Client disconnected from event socket")
			conn.Close(websocket.StatusNormalClosure, "")
			return

		case event := <-eventChan:
			err = h.send(ctx, conn, eventMessage(event))

		case <-heartbeat.C:
			err = h.send(ctx, conn, heartbeatMessage())
		}

		if err != nil {
			if !errors.Is(err, context.Canceled) {
				h.log.Warn().Err(err).Msg("Failed to write to event socket")
			}
			return
		}
	}
}

func (h *EventsSocketHandler) send(ctx context.Context, conn *websocket.Conn, message map[string]interface{}) error {
	data, err := json.Marshal(message)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to marshal event")
		return err
	}

	writeCtx, cancel := context.WithTimeout(ctx, writeWait)
	defer cancel()
	return conn.Write(writeCtx, websocket.MessageText, data)
}
