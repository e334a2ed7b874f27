package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeswin/wingo/internal/domain"
)

func newTestServer(t *testing.T, hub *Hub, topic string) *httptest.Server {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hub.ServeWS(w, r, topic)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestHubBroadcastOutcome(t *testing.T) {
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	srv := newTestServer(t, hub, OutcomeTopic(domain.Track1Min))
	conn := dial(t, srv)

	// Registration races the broadcast, give the hub a beat.
	time.Sleep(50 * time.Millisecond)

	hub.BroadcastOutcome(&domain.Outcome{
		Track:    domain.Track1Min,
		PeriodID: 28833333,
		Number:   5,
		Size:     domain.SizeBig,
		Color:    domain.ColorViolet,
	})

	conn.SetReadDeadline(time.Now().Add(time.Second))
	_, payload, err := conn.ReadMessage()
	require.NoError(t, err)

	var event struct {
		Type string       `json:"type"`
		Data OutcomeEvent `json:"data"`
	}
	require.NoError(t, json.Unmarshal(payload, &event))
	assert.Equal(t, "outcome", event.Type)
	assert.Equal(t, domain.Track1Min, event.Data.Track)
	assert.Equal(t, int64(28833333), event.Data.PeriodID)
	assert.Equal(t, 5, event.Data.Number)
	assert.Equal(t, domain.SizeBig, event.Data.Size)
	assert.Equal(t, domain.ColorViolet, event.Data.Color)
}

func TestHubTopicIsolation(t *testing.T) {
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	mineSrv := newTestServer(t, hub, WagerTopic(1))
	otherSrv := newTestServer(t, hub, WagerTopic(2))
	mine := dial(t, mineSrv)
	other := dial(t, otherSrv)

	time.Sleep(50 * time.Millisecond)

	sel, _ := domain.ParseSelection("violet")
	hub.BroadcastWager(&domain.Wager{
		ID:        7,
		UserID:    1,
		Track:     domain.Track30Sec,
		PeriodID:  100,
		Selection: sel,
		Amount:    50,
		Status:    domain.WagerPending,
	})

	mine.SetReadDeadline(time.Now().Add(time.Second))
	_, payload, err := mine.ReadMessage()
	require.NoError(t, err)

	var event struct {
		Type string     `json:"type"`
		Data WagerEvent `json:"data"`
	}
	require.NoError(t, json.Unmarshal(payload, &event))
	assert.Equal(t, "wager", event.Type)
	assert.Equal(t, int64(7), event.Data.ID)
	assert.Equal(t, "violet", event.Data.Selection)

	// The other user's stream must stay silent.
	other.SetReadDeadline(time.Now().Add(200 * time.Millisecond))
	_, _, err = other.ReadMessage()
	assert.Error(t, err)
}
