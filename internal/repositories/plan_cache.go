package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/fitplanhq/fitplan-backend/internal/logger"
	"github.com/fitplanhq/fitplan-backend/internal/models"
)

// PlanCacheRepository caches the current day's plan in Redis so the
// hot read path skips Postgres. Entries expire after the configured TTL
// and are invalidated whenever completed reps change.
type PlanCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

// NewPlanCacheRepository creates a new cache repository with the given TTL.
func NewPlanCacheRepository(client *redis.Client, expiration time.Duration) *PlanCacheRepository {
	return &PlanCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func planKey(username string, day int) string {
	return fmt.Sprintf("exercise_plan:%s:%d", username, day)
}

// Get returns the cached plan for (username, day), or nil on a miss.
func (r *PlanCacheRepository) Get(ctx context.Context, username string, day int) (*models.ExercisePlanDB, error) {
	key := planKey(username, day)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"error", err,
		)
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var plan models.ExercisePlanDB
	if err := json.Unmarshal([]byte(val), &plan); err != nil {
		logger.Log.Errorw("failed to decode cached plan", "key", key, "error", err)
		return nil, err
	}

	logger.Log.Infow(
		"key", key,
		"result", plan,
		"error", nil,
	)

	return &plan, nil
}

// Set caches a plan under its (username, day) key with expiration.
func (r *PlanCacheRepository) Set(ctx context.Context, plan *models.ExercisePlanDB) error {
	key := planKey(plan.Username, plan.Day)

	data, err := json.Marshal(plan)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"result", "ok",
		"error", err,
	)

	return err
}

// Invalidate drops the cached plan for (username, day).
func (r *PlanCacheRepository) Invalidate(ctx context.Context, username string, day int) error {
	key := planKey(username, day)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow(
		"key", key,
		"result", "deleted",
		"error", err,
	)

	return err
}
