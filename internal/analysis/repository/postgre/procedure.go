package postgre

import (
	"context"
	"fmt"

	"moderation-srv/internal/analysis/repository"
)

// CalculateBaseQualityScore calls the database function that seeds the
// overall quality score from engagement signals this service does not own.
func (r *implRepository) CalculateBaseQualityScore(ctx context.Context, opts repository.BaseQualityScoreOptions) (float64, error) {
	var score float64
	err := r.db.GetContext(ctx, &score,
		`SELECT calculate_content_quality_score($1, $2, $3)`,
		opts.ContentType, opts.ContentID, opts.Content)
	if err != nil {
		r.l.Errorf(ctx, "analysis.repository.postgre.CalculateBaseQualityScore: call failed: %v", err)
		return 0, fmt.Errorf("%w: %v", repository.ErrProcedureFailed, err)
	}

	return score, nil
}

// EvaluateAutoModeration calls the database function encoding the
// auto-moderation policy. It returns one of approved, rejected or queued.
func (r *implRepository) EvaluateAutoModeration(ctx context.Context, opts repository.EvaluateAutoModerationOptions) (string, error) {
	var action string
	err := r.db.GetContext(ctx, &action,
		`SELECT evaluate_auto_moderation($1, $2, $3, $4, $5)`,
		opts.ContentType, opts.ContentID, opts.AnalysisType, opts.Confidence, opts.Classification)
	if err != nil {
		r.l.Errorf(ctx, "analysis.repository.postgre.EvaluateAutoModeration: call failed: %v", err)
		return "", fmt.Errorf("%w: %v", repository.ErrProcedureFailed, err)
	}

	return action, nil
}
