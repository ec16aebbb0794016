package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"moderation-srv/internal/model"
	"moderation-srv/internal/trust/repository"
)

type trustScoreRow struct {
	UserID           string    `db:"user_id"`
	TrustScore       float64   `db:"trust_score"`
	ReputationPoints int       `db:"reputation_points"`
	AccountStatus    string    `db:"account_status"`
	UpdatedAt        time.Time `db:"updated_at"`
}

func (r trustScoreRow) toModel() model.TrustScore {
	return model.TrustScore{
		UserID:           r.UserID,
		TrustScore:       r.TrustScore,
		ReputationPoints: r.ReputationPoints,
		AccountStatus:    model.AccountStatus(r.AccountStatus),
		UpdatedAt:        r.UpdatedAt,
	}
}

const getTrustScoreQuery = `
	SELECT user_id, trust_score, reputation_points, account_status, updated_at
	FROM user_trust_scores
	WHERE user_id = $1`

func (r *implRepository) GetTrustScore(ctx context.Context, userID string) (*model.TrustScore, error) {
	var row trustScoreRow
	if err := r.db.GetContext(ctx, &row, getTrustScoreQuery, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrTrustScoreNotFound
		}
		r.l.Errorf(ctx, "trust.repository.postgre.GetTrustScore: query failed: %v", err)
		return nil, err
	}

	score := row.toModel()
	return &score, nil
}

// RecomputeTrustScore calls the aggregate procedure that owns the scoring
// formula.
func (r *implRepository) RecomputeTrustScore(ctx context.Context, userID string) error {
	if _, err := r.db.ExecContext(ctx, `SELECT update_user_trust_score($1)`, userID); err != nil {
		r.l.Errorf(ctx, "trust.repository.postgre.RecomputeTrustScore: call failed: %v", err)
		return fmt.Errorf("%w: %v", repository.ErrProcedureFailed, err)
	}

	return nil
}
