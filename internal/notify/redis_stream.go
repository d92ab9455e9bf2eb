package notify

import (
	"context"

	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// RedisStreamSink appends events to a redis stream for out-of-process consumers
// (email, SMS). Consumers dedupe on the "id" field.
type RedisStreamSink struct {
	client redis.Cmdable
	stream string
	maxLen int64
}

func NewRedisStreamSink(client redis.Cmdable, stream string) *RedisStreamSink {
	return &RedisStreamSink{
		client: client,
		stream: stream,
		maxLen: 10000,
	}
}

func (s *RedisStreamSink) Name() string { return "redis_stream" }

func (s *RedisStreamSink) Deliver(ctx context.Context, ev models.OutboxEvent) error {
	m := newMessage(ev)

	values := map[string]interface{}{
		"id":       m.ID,
		"salon_id": m.SalonID,
		"type":     m.Type,
		"title":    m.Title,
		"message":  m.Message,
		"at":       m.At,
	}
	if m.EntityID != nil {
		values["entity_id"] = *m.EntityID
	}

	return s.client.XAdd(ctx, &redis.XAddArgs{
		Stream: s.stream,
		MaxLen: s.maxLen,
		Approx: true,
		Values: values,
	}).Err()
}
