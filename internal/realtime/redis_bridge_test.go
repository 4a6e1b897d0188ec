package realtime

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type recorderBroadcaster struct {
	mu     sync.Mutex
	events []Event
}

func (r *recorderBroadcaster) Publish(event string, payload any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, Event{Event: event, Data: payload})
}

func (r *recorderBroadcaster) snapshot() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

func TestRedisBridgeRelaysIntoLocalHub(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	local := &recorderBroadcaster{}
	bridge := NewRedisBridge(rdb, "broadcast", local, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go bridge.Run(ctx)

	// The subscription is established asynchronously; retry the publish
	// until the relay picks it up.
	deadline := time.Now().Add(2 * time.Second)
	for {
		bridge.Publish(EventNewTask, map[string]any{"task_id": float64(1)})
		time.Sleep(20 * time.Millisecond)
		if len(local.snapshot()) > 0 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("relayed event never reached the local broadcaster")
		}
	}

	events := local.snapshot()
	if events[0].Event != EventNewTask {
		t.Errorf("expected event %q, got %q", EventNewTask, events[0].Event)
	}
	data, ok := events[0].Data.(map[string]any)
	if !ok {
		t.Fatalf("unexpected data type %T", events[0].Data)
	}
	if data["task_id"] != float64(1) {
		t.Errorf("unexpected data %v", data)
	}
}

func TestRedisBridgeIgnoresMalformedMessages(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	local := &recorderBroadcaster{}
	bridge := NewRedisBridge(rdb, "broadcast", local, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go bridge.Run(ctx)

	deadline := time.Now().Add(2 * time.Second)
	for {
		rdb.Publish(context.Background(), "broadcast", "not json")
		bridge.Publish(EventUpdateTask, map[string]any{"task_id": float64(2)})
		time.Sleep(20 * time.Millisecond)
		if len(local.snapshot()) > 0 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("valid event never reached the local broadcaster")
		}
	}

	for _, ev := range local.snapshot() {
		if ev.Event != EventUpdateTask {
			t.Errorf("malformed message leaked through as %+v", ev)
		}
	}
}

func TestRedisBridgeRunStopsOnCancel(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	bridge := NewRedisBridge(rdb, "broadcast", &recorderBroadcaster{}, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		bridge.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
