package repository

import (
	"context"

	"moderation-srv/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	// GetTrustScore returns the trust score row for a user.
	GetTrustScore(ctx context.Context, userID string) (*model.TrustScore, error)

	// RecomputeTrustScore invokes the storage-side aggregate procedure.
	RecomputeTrustScore(ctx context.Context, userID string) error
}

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	Repository
}

//go:generate mockery --name CacheRepository
type CacheRepository interface {
	// GetTrustScore returns the cached score, ErrCacheMiss when absent.
	GetTrustScore(ctx context.Context, userID string) (*model.TrustScore, error)

	// SetTrustScore caches the score with the repository TTL.
	SetTrustScore(ctx context.Context, score model.TrustScore) error

	// InvalidateTrustScore drops the cached score for a user.
	InvalidateTrustScore(ctx context.Context, userID string) error
}
