package repository

import (
	"context"

	"moderation-srv/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	// CreateVerdict appends one analyzer verdict. Verdicts are never updated.
	CreateVerdict(ctx context.Context, opts CreateVerdictOptions) (*model.ModerationResult, error)

	// GetLatestVerdict returns the most recent verdict of the given analysis
	// type for a content item.
	GetLatestVerdict(ctx context.Context, opts GetLatestVerdictOptions) (*model.ModerationResult, error)

	// UpsertQualityScore replaces the quality score row keyed by
	// (content_type, content_id).
	UpsertQualityScore(ctx context.Context, opts UpsertQualityScoreOptions) error

	// CalculateBaseQualityScore invokes the storage-side base score procedure.
	CalculateBaseQualityScore(ctx context.Context, opts BaseQualityScoreOptions) (float64, error)

	// EvaluateAutoModeration invokes the storage-side decision procedure and
	// returns the resulting action.
	EvaluateAutoModeration(ctx context.Context, opts EvaluateAutoModerationOptions) (string, error)
}

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	Repository
}
