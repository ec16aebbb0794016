package postgre

import (
	"context"
	"fmt"
	"time"

	"moderation-srv/internal/analysis/repository"
)

const upsertQualityScoreQuery = `
	INSERT INTO content_quality_scores
		(content_type, content_id, overall_score, helpfulness_score, authenticity_score, readability_score, engagement_score, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	ON CONFLICT (content_type, content_id) DO UPDATE SET
		overall_score = EXCLUDED.overall_score,
		helpfulness_score = EXCLUDED.helpfulness_score,
		authenticity_score = EXCLUDED.authenticity_score,
		readability_score = EXCLUDED.readability_score,
		engagement_score = EXCLUDED.engagement_score,
		updated_at = EXCLUDED.updated_at`

func (r *implRepository) UpsertQualityScore(ctx context.Context, opts repository.UpsertQualityScoreOptions) error {
	_, err := r.db.ExecContext(ctx, upsertQualityScoreQuery,
		opts.ContentType, opts.ContentID, opts.OverallScore,
		opts.HelpfulnessScore, opts.AuthenticityScore, opts.ReadabilityScore, opts.EngagementScore,
		time.Now().UTC())
	if err != nil {
		r.l.Errorf(ctx, "analysis.repository.postgre.UpsertQualityScore: upsert failed: %v", err)
		return fmt.Errorf("%w: %v", repository.ErrQualityUpsertFailed, err)
	}

	return nil
}
