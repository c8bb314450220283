package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"heritage-quiz-service/internal/app"
	"heritage-quiz-service/internal/domain"
	"github.com/redis/go-redis/v9"
)

// ResultCache is a write-through decorator over a durable result store.
//   - LPUSH quiz:results:{userID} {json}, trimmed to the most recent `keep` entries
//   - ZADD GT quiz:leaderboard:{category} {percentage} {userID}
//   - SET quiz:leaderboard:{category}:depth {n}, how many durable ranks the set holds
//
// Reads are served from the list when it can satisfy the limit. A leaderboard
// is read from Redis only after the durable top n has been loaded into it.
type ResultCache struct {
	client *redis.Client
	next   app.ResultRepository
	keep   int
}

func NewResultCache(client *redis.Client, next app.ResultRepository, keep int) *ResultCache {
	if keep <= 0 {
		keep = 20
	}
	return &ResultCache{client: client, next: next, keep: keep}
}

func (c *ResultCache) SaveResult(ctx context.Context, result domain.StoredResult) error {
	if err := c.next.SaveResult(ctx, result); err != nil {
		return err
	}

	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	pipe := c.client.Pipeline()
	pipe.LPush(ctx, c.resultsKey(result.UserID), data)
	pipe.LTrim(ctx, c.resultsKey(result.UserID), 0, int64(c.keep-1))
	pipe.ZAddArgs(ctx, c.leaderboardKey(result.Category), redis.ZAddArgs{
		GT:      true,
		Members: []redis.Z{{Score: float64(result.Result.Percentage), Member: result.UserID}},
	})
	if _, err := pipe.Exec(ctx); err != nil {
		// the durable store already has the result
		log.Printf("cache result %s: %v", result.ID, err)
		if err := c.client.Del(ctx, c.depthKey(result.Category)).Err(); err != nil {
			log.Printf("reset leaderboard %s: %v", result.Category, err)
		}
	}
	return nil
}

func (c *ResultCache) ListResults(ctx context.Context, userID string, limit int) ([]domain.StoredResult, error) {
	if limit <= c.keep {
		raw, err := c.client.LRange(ctx, c.resultsKey(userID), 0, int64(limit-1)).Result()
		if err == nil && len(raw) == limit {
			if out, ok := decodeResults(raw); ok {
				return out, nil
			}
		}
	}
	return c.next.ListResults(ctx, userID, limit)
}

// BestScores returns the top n users by best percentage for a category.
func (c *ResultCache) BestScores(ctx context.Context, category string, n int) ([]domain.LeaderboardEntry, error) {
	if err := c.hydrateLeaderboard(ctx, category, n); err != nil {
		return nil, err
	}
	zs, err := c.client.ZRevRangeWithScores(ctx, c.leaderboardKey(category), 0, int64(n-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("read leaderboard: %w", err)
	}
	out := make([]domain.LeaderboardEntry, 0, len(zs))
	for _, z := range zs {
		member, _ := z.Member.(string)
		out = append(out, domain.LeaderboardEntry{UserID: member, Percentage: int(z.Score)})
	}
	return out, nil
}

// hydrateLeaderboard merges the durable top n into the sorted set unless it
// already holds at least that many ranks. Saves only raise scores, so once
// hydrated to depth d the set answers any n <= d.
func (c *ResultCache) hydrateLeaderboard(ctx context.Context, category string, n int) error {
	depth, err := c.client.Get(ctx, c.depthKey(category)).Int()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("read leaderboard depth: %w", err)
	}
	if depth >= n {
		return nil
	}

	entries, err := c.next.BestScores(ctx, category, n)
	if err != nil {
		return err
	}
	pipe := c.client.TxPipeline()
	if len(entries) > 0 {
		members := make([]redis.Z, len(entries))
		for i, e := range entries {
			members[i] = redis.Z{Score: float64(e.Percentage), Member: e.UserID}
		}
		pipe.ZAddArgs(ctx, c.leaderboardKey(category), redis.ZAddArgs{GT: true, Members: members})
	}
	pipe.Set(ctx, c.depthKey(category), n, 0)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("hydrate leaderboard: %w", err)
	}
	return nil
}

func decodeResults(raw []string) ([]domain.StoredResult, bool) {
	out := make([]domain.StoredResult, 0, len(raw))
	for _, item := range raw {
		var r domain.StoredResult
		if err := json.Unmarshal([]byte(item), &r); err != nil {
			return nil, false
		}
		out = append(out, r)
	}
	return out, true
}

func (c *ResultCache) resultsKey(userID string) string {
	return "quiz:results:" + userID
}

func (c *ResultCache) leaderboardKey(category string) string {
	return "quiz:leaderboard:" + category
}

func (c *ResultCache) depthKey(category string) string {
	return c.leaderboardKey(category) + ":depth"
}
