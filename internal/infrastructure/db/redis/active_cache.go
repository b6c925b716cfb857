package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/univeval/evaluation-system/internal/core/domain"
)

const (
	activeKey = "public:active_questionnaire"
	// The TTL is a backstop only; activation invalidates the key explicitly,
	// so stale reads are bounded by the write path, not the clock.
	activeTTL = 5 * time.Minute
)

// ActiveQuestionnaireCache caches the public active questionnaire in Redis.
// A miss is reported as (nil, nil); cache failures never break the read path.
type ActiveQuestionnaireCache struct {
	client *redis.Client
}

func NewActiveQuestionnaireCache(client *redis.Client) *ActiveQuestionnaireCache {
	return &ActiveQuestionnaireCache{client: client}
}

func (c *ActiveQuestionnaireCache) Get(ctx context.Context) (*domain.Questionnaire, error) {
	raw, err := c.client.Get(ctx, activeKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("cache get: %w", err)
	}

	var q domain.Questionnaire
	if err := json.Unmarshal(raw, &q); err != nil {
		// A corrupt entry behaves like a miss.
		_ = c.client.Del(ctx, activeKey).Err()
		return nil, nil
	}
	return &q, nil
}

func (c *ActiveQuestionnaireCache) Set(ctx context.Context, q *domain.Questionnaire) error {
	raw, err := json.Marshal(q)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	return c.client.Set(ctx, activeKey, raw, activeTTL).Err()
}

func (c *ActiveQuestionnaireCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, activeKey).Err()
}
