// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: nhat.lepham.dev@gmail.com

package engagement

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/nhatlepham/inkwell/internal/platform/constants"
)

// RedisRepository implements Repository on Redis primitives.
//
// # Key taxonomy
//   - engagement:views:{path}           STRING  view counter
//   - engagement:views:users:{path}     SET     visitor ids already counted
//   - engagement:likes:{path}           STRING  like counter
//   - engagement:reactions:{path}       HASH    kind -> counter
//   - engagement:reactions:users:{path} HASH    visitor id -> active kind
type RedisRepository struct {
	client *redis.Client
}

func NewRedisRepository(client *redis.Client) *RedisRepository {
	return &RedisRepository{client: client}
}

/*
Views returns the view counter for a path.

Description: An absent key reads as zero, matching a never-viewed post.
*/
func (repository *RedisRepository) Views(ctx context.Context, path string) (int64, error) {
	return repository.readCounter(ctx, constants.RedisPrefixViews+path, "redis_views_get_failed")
}

/*
RecordView counts a view once per visitor.

Description: Set membership gates the counter increment. SADD reports whether
the visitor id was new; only then is the counter touched, so repeat views by
the same visitor never re-increment.

Returns:
  - bool: true when the view was counted
  - error: Execution errors
*/
func (repository *RedisRepository) RecordView(ctx context.Context, path, visitorID string) (bool, error) {
	added, err := repository.client.SAdd(ctx, constants.RedisPrefixViewUsers+path, visitorID).Result()
	if err != nil {
		return false, fmt.Errorf("redis_view_dedup_failed: %w", err)
	}
	if added == 0 {
		return false, nil
	}

	if err := repository.client.Incr(ctx, constants.RedisPrefixViews+path).Err(); err != nil {
		return false, fmt.Errorf("redis_view_incr_failed: %w", err)
	}
	return true, nil
}

// Likes returns the like counter for a path, 0 when absent.
func (repository *RedisRepository) Likes(ctx context.Context, path string) (int64, error) {
	return repository.readCounter(ctx, constants.RedisPrefixLikes+path, "redis_likes_get_failed")
}

// AddLike increments the like counter unconditionally.
func (repository *RedisRepository) AddLike(ctx context.Context, path string) error {
	if err := repository.client.Incr(ctx, constants.RedisPrefixLikes+path).Err(); err != nil {
		return fmt.Errorf("redis_like_incr_failed: %w", err)
	}
	return nil
}

// Reactions returns the per-kind counters stored in the reaction hash.
func (repository *RedisRepository) Reactions(ctx context.Context, path string) (map[Kind]int64, error) {
	raw, err := repository.client.HGetAll(ctx, constants.RedisPrefixReactions+path).Result()
	if err != nil {
		return nil, fmt.Errorf("redis_reactions_get_failed: %w", err)
	}

	counts := make(map[Kind]int64, len(raw))
	for field, value := range raw {
		count, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("redis_reactions_parse_failed: field %s: %w", field, err)
		}
		counts[Kind(field)] = count
	}
	return counts, nil
}

// VisitorReaction returns the visitor's active reaction, "" when none.
func (repository *RedisRepository) VisitorReaction(ctx context.Context, path, visitorID string) (Kind, error) {
	value, err := repository.client.HGet(ctx, constants.RedisPrefixReactUsers+path, visitorID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("redis_visitor_reaction_get_failed: %w", err)
	}
	return Kind(value), nil
}

/*
SetReaction makes kind the visitor's single active reaction for a path.

Description: Reads the visitor's previous choice from the membership hash,
then applies the counter delta and the membership update in one MULTI/EXEC
pipeline. The read-then-write window between two requests from the same
visitor is an accepted overcount hazard.

Returns:
  - error: Execution errors
*/
func (repository *RedisRepository) SetReaction(ctx context.Context, path, visitorID string, kind Kind) error {
	previous, err := repository.VisitorReaction(ctx, path, visitorID)
	if err != nil {
		return err
	}
	if previous == kind {
		return nil
	}

	_, err = repository.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		if previous != "" {
			pipe.HIncrBy(ctx, constants.RedisPrefixReactions+path, string(previous), -1)
		}
		pipe.HIncrBy(ctx, constants.RedisPrefixReactions+path, string(kind), 1)
		pipe.HSet(ctx, constants.RedisPrefixReactUsers+path, visitorID, string(kind))
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis_set_reaction_failed: %w", err)
	}
	return nil
}

// readCounter fetches an integer counter key, mapping absence to zero.
func (repository *RedisRepository) readCounter(ctx context.Context, key, failureEvent string) (int64, error) {
	value, err := repository.client.Get(ctx, key).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("%s: %w", failureEvent, err)
	}
	return value, nil
}
