package queue

import (
	"context"
	"encoding/json"

	"github.com/redis/rueidis"
)

// RedisNotifier is a Notifier and Consumer backed by a redis list:
// publishes RPUSH onto the configured key, consumers LPOP from it.
type RedisNotifier struct {
	client rueidis.Client
	key    string
}

func NewRedisNotifier(client rueidis.Client, queueKey string) *RedisNotifier {
	return &RedisNotifier{
		client: client,
		key:    queueKey,
	}
}

func (r *RedisNotifier) Publish(ctx context.Context, update StatusUpdate) error {
	payload, err := json.Marshal(update)
	if err != nil {
		return err
	}

	cmd := r.client.B().Rpush().Key(r.key).Element(string(payload)).Build()
	return r.client.Do(ctx, cmd).Error()
}

func (r *RedisNotifier) Pop(ctx context.Context) (*StatusUpdate, error) {
	cmd := r.client.B().Lpop().Key(r.key).Build()
	result := r.client.Do(ctx, cmd)

	if err := result.Error(); err != nil {
		if rueidis.IsRedisNil(err) {
			return nil, ErrQueueEmpty
		}
		return nil, err
	}

	raw, err := result.ToString()
	if err != nil {
		return nil, err
	}

	var update StatusUpdate
	if err := json.Unmarshal([]byte(raw), &update); err != nil {
		return nil, err
	}

	return &update, nil
}
