package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redislib "github.com/redis/go-redis/v9"

	"github.com/fastygo/assignment-board/domain"
	"github.com/fastygo/assignment-board/repository"
)

type flashRepository struct {
	client *redislib.Client
	prefix string
	ttl    time.Duration
}

// NewFlashRepository creates a Redis-backed flash repository.
// Notices for a session live in a list that expires after ttl.
func NewFlashRepository(client *redislib.Client, ttl time.Duration) repository.FlashRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &flashRepository{
		client: client,
		prefix: "flash:",
		ttl:    ttl,
	}
}

func (r *flashRepository) Push(ctx context.Context, sessionID string, notice domain.Notice) error {
	if sessionID == "" {
		return domain.ErrInvalidPayload
	}
	payload, err := json.Marshal(notice)
	if err != nil {
		return err
	}

	key := r.key(sessionID)
	pipe := r.client.TxPipeline()
	pipe.RPush(ctx, key, payload)
	pipe.Expire(ctx, key, r.ttl)
	_, err = pipe.Exec(ctx)
	return err
}

func (r *flashRepository) Pop(ctx context.Context, sessionID string) ([]domain.Notice, error) {
	if sessionID == "" {
		return nil, nil
	}

	key := r.key(sessionID)
	pipe := r.client.TxPipeline()
	rangeCmd := pipe.LRange(ctx, key, 0, -1)
	pipe.Del(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil && err != redislib.Nil {
		return nil, err
	}

	raw, err := rangeCmd.Result()
	if err != nil {
		if err == redislib.Nil {
			return nil, nil
		}
		return nil, err
	}

	notices := make([]domain.Notice, 0, len(raw))
	for _, item := range raw {
		var notice domain.Notice
		if err := json.Unmarshal([]byte(item), &notice); err != nil {
			continue
		}
		notices = append(notices, notice)
	}
	return notices, nil
}

func (r *flashRepository) key(sessionID string) string {
	return fmt.Sprintf("%s%s", r.prefix, sessionID)
}
