package chat

import (
	"context"
	"log"
	"strings"

	"github.com/go-redis/redis/v8"
)

const channelPrefix = "chat:"

// Relay fans persisted messages out to sockets across instances: the sender's
// handler publishes to redis after the write, every instance's Run loop
// receives it and broadcasts to its local hub.
type Relay struct {
	rdb *redis.Client
	hub *Hub
}

func NewRelay(rdb *redis.Client, hub *Hub) *Relay {
	return &Relay{
		rdb: rdb,
		hub: hub,
	}
}

func (r *Relay) Publish(ctx context.Context, roomID string, payload []byte) error {
	return r.rdb.Publish(ctx, channelPrefix+roomID, payload).Err()
}

func (r *Relay) Run(ctx context.Context) {
	sub := r.rdb.PSubscribe(ctx, channelPrefix+"*")
	defer sub.Close()

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-sub.Channel():
			if !ok {
				log.Println("chat relay subscription closed")
				return
			}
			roomID := strings.TrimPrefix(msg.Channel, channelPrefix)
			r.hub.Broadcast(roomID, []byte(msg.Payload))
		}
	}
}
