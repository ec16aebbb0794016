package analysis

import (
	"context"

	"moderation-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// AnalyzeContent runs the full pipeline: analyzers, verdict persistence,
	// quality scoring, auto-moderation decision.
	AnalyzeContent(ctx context.Context, sc model.Scope, input AnalyzeInput) (AnalyzeOutput, error)

	// AnalyzeTextContent runs the analyzers and persists their verdicts.
	AnalyzeTextContent(ctx context.Context, input AnalyzeInput) ([]model.ModerationResult, error)

	// CalculateQualityScore computes and upserts the composite quality score.
	CalculateQualityScore(ctx context.Context, input QualityInput) (model.QualityScore, error)

	// AutoModerateContent decides the action for a set of verdicts.
	AutoModerateContent(ctx context.Context, sc model.Scope, input AutoModerateInput) (string, error)
}
