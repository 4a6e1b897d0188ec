package realtime

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisBridge shares one logical broadcast plane between server
// instances: Publish pushes the event onto a Redis channel, and Run
// relays everything received on that channel into the local hub.
// Fire-and-forget both ways; a publish failure is logged, never
// surfaced to the request that triggered it.
type RedisBridge struct {
	rdb     *redis.Client
	channel string
	local   Broadcaster
	logger  *zap.Logger
}

func NewRedisBridge(rdb *redis.Client, channel string, local Broadcaster, logger *zap.Logger) *RedisBridge {
	return &RedisBridge{
		rdb:     rdb,
		channel: channel,
		local:   local,
		logger:  logger,
	}
}

func (b *RedisBridge) Publish(event string, payload any) {
	msg, err := json.Marshal(Event{Event: event, Data: payload})
	if err != nil {
		b.logger.Error("failed to marshal relayed event",
			zap.String("event", event),
			zap.Error(err),
		)
		return
	}

	if err := b.rdb.Publish(context.Background(), b.channel, msg).Err(); err != nil {
		b.logger.Warn("failed to publish event to redis",
			zap.String("event", event),
			zap.Error(err),
		)
	}
}

// Run blocks relaying channel messages into the local broadcaster until
// the context is cancelled.
func (b *RedisBridge) Run(ctx context.Context) {
	sub := b.rdb.Subscribe(ctx, b.channel)
	defer sub.Close()

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var ev Event
			if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
				b.logger.Warn("discarding malformed relayed event", zap.Error(err))
				continue
			}
			b.local.Publish(ev.Event, ev.Data)
		}
	}
}
