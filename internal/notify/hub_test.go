package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

func TestHubPushesOnlyToSameSalon(t *testing.T) {
	hub := NewHub()
	salonA := uuid.New()
	salonB := uuid.New()

	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		salon := salonA
		if r.URL.Query().Get("salon") == "b" {
			salon = salonB
		}
		hub.ServeWS(conn, salon)
	}))
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")

	connA, _, err := websocket.DefaultDialer.Dial(wsURL+"?salon=a", nil)
	require.NoError(t, err)
	defer connA.Close()

	connB, _, err := websocket.DefaultDialer.Dial(wsURL+"?salon=b", nil)
	require.NoError(t, err)
	defer connB.Close()

	require.Eventually(t, func() bool {
		return hub.Connections(salonA) == 1 && hub.Connections(salonB) == 1
	}, time.Second, 5*time.Millisecond)

	entity := uuid.New()
	ev := models.OutboxEvent{
		ID:        uuid.New(),
		SalonID:   salonA,
		Type:      "low_stock",
		Title:     "Low stock alert",
		Message:   "Shampoo stock is low (3 remaining)",
		EntityID:  &entity,
		CreatedAt: time.Now(),
	}
	require.NoError(t, hub.Deliver(context.Background(), ev))

	connA.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := connA.ReadMessage()
	require.NoError(t, err)

	var got Message
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, ev.ID.String(), got.ID)
	assert.Equal(t, "low_stock", got.Type)
	require.NotNil(t, got.EntityID)
	assert.Equal(t, entity.String(), *got.EntityID)

	connB.SetReadDeadline(time.Now().Add(100 * time.Millisecond))
	_, _, err = connB.ReadMessage()
	assert.Error(t, err)
}

func TestHubUnregistersOnDisconnect(t *testing.T) {
	hub := NewHub()
	salon := uuid.New()

	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		hub.ServeWS(conn, salon)
	}))
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)

	require.Eventually(t, func() bool { return hub.Connections(salon) == 1 }, time.Second, 5*time.Millisecond)

	conn.Close()

	assert.Eventually(t, func() bool { return hub.Connections(salon) == 0 }, 2*time.Second, 5*time.Millisecond)
	assert.NoError(t, hub.Deliver(context.Background(), models.OutboxEvent{SalonID: salon}))
}
