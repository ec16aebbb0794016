package redis

import (
	"context"
	"fmt"
	"time"

	"moderation-srv/internal/model"
	"moderation-srv/internal/trust/repository"
	pkgRedis "moderation-srv/pkg/redis"
)

const trustScoreTTL = 5 * time.Minute

func trustScoreKey(userID string) string {
	return fmt.Sprintf("trust_score:%s", userID)
}

func (r *implRepository) GetTrustScore(ctx context.Context, userID string) (*model.TrustScore, error) {
	var score model.TrustScore
	if err := r.redis.GetJSON(ctx, trustScoreKey(userID), &score); err != nil {
		if pkgRedis.IsNil(err) {
			return nil, repository.ErrCacheMiss
		}
		r.l.Errorf(ctx, "trust.repository.redis.GetTrustScore: get failed: %v", err)
		return nil, err
	}

	return &score, nil
}

func (r *implRepository) SetTrustScore(ctx context.Context, score model.TrustScore) error {
	if err := r.redis.SetJSON(ctx, trustScoreKey(score.UserID), score, trustScoreTTL); err != nil {
		r.l.Errorf(ctx, "trust.repository.redis.SetTrustScore: set failed: %v", err)
		return err
	}

	return nil
}

func (r *implRepository) InvalidateTrustScore(ctx context.Context, userID string) error {
	if err := r.redis.Delete(ctx, trustScoreKey(userID)); err != nil {
		r.l.Errorf(ctx, "trust.repository.redis.InvalidateTrustScore: delete failed: %v", err)
		return err
	}

	return nil
}
