package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/aristath/investai/internal/events"
	"github.com/aristath/investai/internal/utils"
	"github.com/rs/zerolog"
)

// streamBufferSize bounds the per-connection backlog. Events beyond it are dropped.
const streamBufferSize = 100

// EventsStreamHandler handles Server-Sent Events (SSE) streaming of bus events.
type EventsStreamHandler struct {
	eventBus  *events.Bus
	heartbeat time.Duration
	log       zerolog.Logger
}

// NewEventsStreamHandler creates a new events stream handler.
func NewEventsStreamHandler(eventBus *events.Bus, heartbeat time.Duration, log zerolog.Logger) *EventsStreamHandler {
	return &EventsStreamHandler{
		eventBus:  eventBus,
		heartbeat: heartbeat,
		log:       log.With().Str("component", "events_stream").Logger(),
	}
}

// ServeHTTP handles GET /api/events/stream requests (SSE).
// The optional types query parameter is a comma-separated list of event types.
func (h *EventsStreamHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	types := parseEventTypes(r.URL.Query().Get("types"))
	if len(types) == 0 {
		http.Error(w, "No known event types requested", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	eventChan, unsubscribe := subscribe(h.eventBus, types, h.log)
	defer unsubscribe()

	h.log.Info().
		Int("types", len(types)).
		Msg("Client connected to event stream")

	h.send(w, flusher, connectedMessage())

	heartbeat := time.NewTicker(h.heartbeat)
	defer heartbeat.Stop()

	done := r.Context().Done()
	for {
		select {
		case <-done:
			h.log.Info().Msg("Client disconnected from event stream")
			return

		case event := <-eventChan:
			h.send(w, flusher, eventMessage(event))

		case <-heartbeat.C:
			h.send(w, flusher, heartbeatMessage())
		}
	}
}

func (h *EventsStreamHandler) send(w http.ResponseWriter, flusher http.Flusher, message map[string]interface{}) {
	data, err := json.Marshal(message)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to marshal event")
		data = []byte(`{"type":"error","message":"failed to encode event"}`)
	}
	fmt.Fprintf(w, "data: %s\n\n", data)
	flusher.Flush()
}

// parseEventTypes returns the known event types named in filter, or every
// type when filter is empty.
func parseEventTypes(filter string) []events.EventType {
	if strings.TrimSpace(filter) == "" {
		return events.AllEventTypes
	}

	known := make(map[events.EventType]bool, len(events.AllEventTypes))
	for _, t := range events.AllEventTypes {
		known[t] = true
	}

	var types []events.EventType
	for _, name := range utils.ParseCSV(filter) {
		if t := events.EventType(name); known[t] {
			types = append(types, t)
		}
	}
	return types
}

// subscribe attaches a buffered channel to the bus. Sends never block the
// publisher; a full buffer drops the event.
func subscribe(bus *events.Bus, types []events.EventType, log zerolog.Logger) (<-chan *events.Event, func()) {
	eventChan := make(chan *events.Event, streamBufferSize)

	unsubscribe := bus.Subscribe(func(event *events.Event) {
		select {
		case eventChan <- event:
		default:
			log.Warn().
				Str("event_type", string(event.Type)).
				Msg("Event channel full, dropping event")
		}
	}, types...)

	return eventChan, unsubscribe
}

func connectedMessage() map[string]interface{} {
	return map[string]interface{}{
		"type":    "connected",
		"message": "Connected to event stream",
	}
}

func heartbeatMessage() map[string]interface{} {
	return map[string]interface{}{
		"type":      "heartbeat",
		"timestamp": time.Now().Format(time.RFC3339),
	}
}

func eventMessage(event *events.Event) map[string]interface{} {
	return map[string]interface{}{
		"id":        event.ID,
		"type":      string(event.Type),
		"module":    event.Module,
		"timestamp": event.Timestamp.Format(time.RFC3339),
		"data":      event.Data,
	}
}
