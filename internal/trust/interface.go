package trust

import (
	"context"

	"moderation-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// GetUserTrustScore reads a user's trust score. Returns nil on not-found
	// and on storage errors; failures are logged, never surfaced, since the
	// score is an advisory signal.
	GetUserTrustScore(ctx context.Context, sc model.Scope, userID string) (*model.TrustScore, error)

	// UpdateUserTrustScore triggers the storage-side recomputation.
	// Fire-and-forget, errors are logged only.
	UpdateUserTrustScore(ctx context.Context, userID string)
}
