package usecase

import (
	"context"
	"errors"

	"moderation-srv/internal/model"
	"moderation-srv/internal/trust"
	"moderation-srv/internal/trust/repository"
)

// GetUserTrustScore reads through the cache. A missing row and a storage
// failure both come back as nil, the score is advisory and downstream
// features treat absence as neutral.
func (uc *implUseCase) GetUserTrustScore(ctx context.Context, sc model.Scope, userID string) (*model.TrustScore, error) {
	if userID == "" {
		return nil, trust.ErrUserIDRequired
	}

	if uc.cache != nil {
		cached, err := uc.cache.GetTrustScore(ctx, userID)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, repository.ErrCacheMiss) {
			uc.l.Warnf(ctx, "trust.usecase.GetUserTrustScore: cache read failed, falling through: %v", err)
		}
	}

	score, err := uc.repo.GetTrustScore(ctx, userID)
	if err != nil {
		if !errors.Is(err, repository.ErrTrustScoreNotFound) {
			uc.l.Errorf(ctx, "trust.usecase.GetUserTrustScore: GetTrustScore failed: %v", err)
		}
		return nil, nil
	}

	if uc.cache != nil {
		if err := uc.cache.SetTrustScore(ctx, *score); err != nil {
			uc.l.Warnf(ctx, "trust.usecase.GetUserTrustScore: cache write failed: %v", err)
		}
	}

	return score, nil
}

// UpdateUserTrustScore triggers the storage-side recomputation and drops the
// cached value. Errors are logged, never surfaced.
func (uc *implUseCase) UpdateUserTrustScore(ctx context.Context, userID string) {
	if userID == "" {
		return
	}

	if err := uc.repo.RecomputeTrustScore(ctx, userID); err != nil {
		uc.l.Errorf(ctx, "trust.usecase.UpdateUserTrustScore: RecomputeTrustScore failed: %v", err)
		return
	}

	if uc.cache != nil {
		if err := uc.cache.InvalidateTrustScore(ctx, userID); err != nil {
			uc.l.Warnf(ctx, "trust.usecase.UpdateUserTrustScore: cache invalidation failed: %v", err)
		}
	}
}
