package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"heritage-quiz-service/internal/domain"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

// BankLoader fetches question content from a backing store (e.g., Postgres).
type BankLoader interface {
	LoadCategory(ctx context.Context, categoryID string) (domain.Category, error)
	ListCategories(ctx context.Context) ([]domain.CategorySummary, error)
}

// BankRepository caches categories in Redis as JSON and falls back to a loader on miss.
// Categories are stored as: SET quiz:bank:{categoryID} {json} EX ttl
type BankRepository struct {
	client *redis.Client
	loader BankLoader
	ttl    time.Duration
	sf     singleflight.Group

	mu  sync.Mutex
	rnd *rand.Rand
}

func NewBankRepository(client *redis.Client, loader BankLoader, ttl time.Duration) *BankRepository {
	return &BankRepository{
		client: client,
		loader: loader,
		ttl:    ttl,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (r *BankRepository) GetCategory(ctx context.Context, categoryID string) (domain.Category, error) {
	if c, ok := r.fromCache(ctx, categoryID); ok {
		return c, nil
	}

	result, err, _ := r.sf.Do(categoryID, func() (interface{}, error) {
		// Re-check cache in case another goroutine filled it.
		if c, ok := r.fromCache(ctx, categoryID); ok {
			return c, nil
		}

		c, err := r.loader.LoadCategory(ctx, categoryID)
		if err != nil {
			return domain.Category{}, err
		}
		if err := c.Validate(); err != nil {
			return domain.Category{}, err
		}

		data, err := json.Marshal(c)
		if err != nil {
			return domain.Category{}, fmt.Errorf("marshal category: %w", err)
		}
		if err := r.client.Set(ctx, r.key(categoryID), data, r.ttlWithJitter()).Err(); err != nil {
			log.Printf("cache category %s: %v", categoryID, err)
		}
		return c, nil
	})
	if err != nil {
		return domain.Category{}, err
	}
	return result.(domain.Category), nil
}

func (r *BankRepository) ListCategories(ctx context.Context) ([]domain.CategorySummary, error) {
	return r.loader.ListCategories(ctx)
}

// Invalidate drops a cached category so the next read goes to the loader.
func (r *BankRepository) Invalidate(ctx context.Context, categoryID string) error {
	return r.client.Del(ctx, r.key(categoryID)).Err()
}

func (r *BankRepository) fromCache(ctx context.Context, categoryID string) (domain.Category, bool) {
	data, err := r.client.Get(ctx, r.key(categoryID)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("read cached category %s: %v", categoryID, err)
		}
		return domain.Category{}, false
	}
	var c domain.Category
	if err := json.Unmarshal(data, &c); err != nil {
		log.Printf("decode cached category %s: %v", categoryID, err)
		return domain.Category{}, false
	}
	if c.ID != categoryID {
		log.Printf("cached category %s holds %q", categoryID, c.ID)
		return domain.Category{}, false
	}
	if err := c.Validate(); err != nil {
		log.Printf("cached category %s: %v", categoryID, err)
		return domain.Category{}, false
	}
	return c, true
}

func (r *BankRepository) key(categoryID string) string {
	return "quiz:bank:" + categoryID
}

func (r *BankRepository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	jitterMax := int64(r.ttl) / 10
	return r.ttl + time.Duration(r.rnd.Int63n(jitterMax+1))
}
