package events

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// DefaultChannel is the Redis pub/sub channel shared by all storefront processes.
const DefaultChannel = "storefront:events"

// Relay is a Broker that also forwards every publish to other processes over Redis pub/sub.
// Messages from other processes are republished on the local bus; a process ignores its own.
type Relay struct {
	bus     *Bus
	client  *redis.Client
	channel string
	origin  string
	log     *zap.Logger
}

func NewRelay(client *redis.Client, bus *Bus, channel string, log *zap.Logger) *Relay {
	if channel == "" {
		channel = DefaultChannel
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Relay{bus: bus, client: client, channel: channel, origin: uuid.NewString(), log: log}
}

func (r *Relay) Publish(topic string) {
	r.bus.Publish(topic)
	if err := r.client.Publish(context.Background(), r.channel, encodeMessage(r.origin, topic)).Err(); err != nil {
		r.log.Warn("relay publish failed", zap.String("topic", topic), zap.Error(err))
	}
}

func (r *Relay) Subscribe(topic string, fn func()) func() {
	return r.bus.Subscribe(topic, fn)
}

// Run forwards remote notifications to the local bus until ctx is done.
func (r *Relay) Run(ctx context.Context) error {
	sub := r.client.Subscribe(ctx, r.channel)
	defer sub.Close()
	if _, err := sub.Receive(ctx); err != nil {
		return err
	}
	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			origin, topic, ok := decodeMessage(msg.Payload)
			if !ok || origin == r.origin {
				continue
			}
			r.bus.Publish(topic)
		}
	}
}

func encodeMessage(origin, topic string) string {
	return origin + "|" + topic
}

func decodeMessage(payload string) (origin, topic string, ok bool) {
	origin, topic, ok = strings.Cut(payload, "|")
	if !ok || origin == "" || topic == "" {
		return "", "", false
	}
	return origin, topic, true
}
