package realtime

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

func dialHub(t *testing.T, hub *Hub) (*websocket.Conn, func()) {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(hub.Serve))
	url := "ws" + strings.TrimPrefix(srv.URL, "http")

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		srv.Close()
		t.Fatalf("dial: %v", err)
	}

	return conn, func() {
		conn.Close()
		srv.Close()
	}
}

func waitForClients(t *testing.T, hub *Hub, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for hub.ClientCount() != want {
		if time.Now().After(deadline) {
			t.Fatalf("hub never reached %d clients, has %d", want, hub.ClientCount())
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestHubDeliversEvent(t *testing.T) {
	hub := NewHub(zap.NewNop())
	conn, cleanup := dialHub(t, hub)
	defer cleanup()

	waitForClients(t, hub, 1)

	hub.Publish(EventNewTask, map[string]any{"task_id": 1})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	var ev Event
	if err := json.Unmarshal(msg, &ev); err != nil {
		t.Fatalf("decode frame: %v", err)
	}
	if ev.Event != EventNewTask {
		t.Errorf("expected event %q, got %q", EventNewTask, ev.Event)
	}
	data, ok := ev.Data.(map[string]any)
	if !ok {
		t.Fatalf("unexpected data type %T", ev.Data)
	}
	if data["task_id"] != float64(1) {
		t.Errorf("unexpected data %v", data)
	}
}

func TestHubFansOutToAllClients(t *testing.T) {
	hub := NewHub(zap.NewNop())

	connA, cleanupA := dialHub(t, hub)
	defer cleanupA()
	connB, cleanupB := dialHub(t, hub)
	defer cleanupB()

	waitForClients(t, hub, 2)

	hub.Publish(EventDeleteTask, map[string]any{"task_id": 5})

	for _, conn := range []*websocket.Conn{connA, connB} {
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		_, msg, err := conn.ReadMessage()
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		var ev Event
		if err := json.Unmarshal(msg, &ev); err != nil {
			t.Fatalf("decode frame: %v", err)
		}
		if ev.Event != EventDeleteTask {
			t.Errorf("expected event %q, got %q", EventDeleteTask, ev.Event)
		}
	}
}

func TestHubDropsDisconnectedClient(t *testing.T) {
	hub := NewHub(zap.NewNop())
	conn, cleanup := dialHub(t, hub)
	defer cleanup()

	waitForClients(t, hub, 1)
	conn.Close()
	waitForClients(t, hub, 0)
}

func TestHubPublishWithoutClients(t *testing.T) {
	hub := NewHub(zap.NewNop())
	// must not block or panic
	hub.Publish(EventUpdateTask, map[string]any{"task_id": 9})
}
