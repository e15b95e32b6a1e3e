package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aristath/investai/internal/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"nhooyr.io/websocket"
)

func readSocket(t *testing.T, ctx context.Context, conn *websocket.Conn) map[string]interface{} {
	t.Helper()
	msgType, data, err := conn.Read(ctx)
	require.NoError(t, err)
	require.Equal(t, websocket.MessageText, msgType)

	var message map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &message))
	return message
}

func TestEventsSocket_ForwardsEvents(t *testing.T) {
	s := newTestServer(t, false, time.Minute)
	srv := httptest.NewServer(s.Handler())
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/events/ws"
	conn, _, err := websocket.Dial(ctx, wsURL, nil)
	require.NoError(t, err)
	defer conn.Close(websocket.StatusNormalClosure, "")

	assert.Equal(t, "connected", readSocket(t, ctx, conn)["type"])

	s.container.EventManager.EmitTyped("test", &events.SystemStatusChangedData{Status: "degraded"})

	message := readSocket(t, ctx, conn)
	assert.Equal(t, string(events.SystemStatusChanged), message["type"])
	assert.Equal(t, "degraded", message["data"].(map[string]interface{})["status"])
}

func TestEventsSocket_Heartbeat(t *testing.T) {
	s := newTestServer(t, true, 50*time.Millisecond)
	srv := httptest.NewServer(s.Handler())
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, "ws"+strings.TrimPrefix(srv.URL, "http")+"/api/events/ws?types=ERROR_OCCURRED", nil)
	require.NoError(t, err)
	defer conn.Close(websocket.StatusNormalClosure, "")

	assert.Equal(t, "connected", readSocket(t, ctx, conn)["type"])
	assert.Equal(t, "heartbeat", readSocket(t, ctx, conn)["type"])
}

func TestEventsSocket_RequiresUpgrade(t *testing.T) {
	s := newTestServer(t, true, time.Minute)

	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/api/events/ws", nil))
	assert.NotEqual(t, http.StatusSwitchingProtocols, w.Code)
	assert.GreaterOrEqual(t, w.Code, 400)
}
