package postgre

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"moderation-srv/internal/analysis/repository"
	"moderation-srv/internal/model"
)

type verdictRow struct {
	ID             string          `db:"id"`
	ContentType    string          `db:"content_type"`
	ContentID      string          `db:"content_id"`
	AnalysisType   string          `db:"analysis_type"`
	Classification string          `db:"classification"`
	Confidence     float64         `db:"confidence"`
	ShouldFlag     bool            `db:"should_flag"`
	Reason         sql.NullString  `db:"reason"`
	Details        json.RawMessage `db:"details"`
	CreatedAt      time.Time       `db:"created_at"`
}

func (r verdictRow) toModel() model.ModerationResult {
	m := model.ModerationResult{
		ID:             r.ID,
		ContentType:    model.ContentType(r.ContentType),
		ContentID:      r.ContentID,
		AnalysisType:   model.AnalysisType(r.AnalysisType),
		Classification: r.Classification,
		Confidence:     r.Confidence,
		ShouldFlag:     r.ShouldFlag,
		Reason:         r.Reason.String,
		CreatedAt:      r.CreatedAt,
	}
	if len(r.Details) > 0 {
		_ = json.Unmarshal(r.Details, &m.Details)
	}
	return m
}

const createVerdictQuery = `
	INSERT INTO ai_moderation_results
		(id, content_type, content_id, analysis_type, classification, confidence, should_flag, reason, details, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

func (r *implRepository) CreateVerdict(ctx context.Context, opts repository.CreateVerdictOptions) (*model.ModerationResult, error) {
	details, err := json.Marshal(opts.Details)
	if err != nil {
		r.l.Errorf(ctx, "analysis.repository.postgre.CreateVerdict: marshal details failed: %v", err)
		return nil, fmt.Errorf("%w: %v", repository.ErrVerdictCreateFailed, err)
	}

	m := model.ModerationResult{
		ID:             uuid.New().String(),
		ContentType:    opts.ContentType,
		ContentID:      opts.ContentID,
		AnalysisType:   opts.AnalysisType,
		Classification: opts.Classification,
		Confidence:     opts.Confidence,
		ShouldFlag:     opts.ShouldFlag,
		Reason:         opts.Reason,
		Details:        opts.Details,
		CreatedAt:      time.Now().UTC(),
	}

	reason := sql.NullString{String: opts.Reason, Valid: opts.Reason != ""}
	_, err = r.db.ExecContext(ctx, createVerdictQuery,
		m.ID, m.ContentType, m.ContentID, m.AnalysisType, m.Classification,
		m.Confidence, m.ShouldFlag, reason, details, m.CreatedAt)
	if err != nil {
		r.l.Errorf(ctx, "analysis.repository.postgre.CreateVerdict: insert failed: %v", err)
		return nil, fmt.Errorf("%w: %v", repository.ErrVerdictCreateFailed, err)
	}

	return &m, nil
}

const latestVerdictQuery = `
	SELECT id, content_type, content_id, analysis_type, classification, confidence, should_flag, reason, details, created_at
	FROM ai_moderation_results
	WHERE content_type = $1 AND content_id = $2 AND analysis_type = $3
	ORDER BY created_at DESC
	LIMIT 1`

func (r *implRepository) GetLatestVerdict(ctx context.Context, opts repository.GetLatestVerdictOptions) (*model.ModerationResult, error) {
	var row verdictRow
	err := r.db.GetContext(ctx, &row, latestVerdictQuery, opts.ContentType, opts.ContentID, opts.AnalysisType)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrVerdictNotFound
		}
		r.l.Errorf(ctx, "analysis.repository.postgre.GetLatestVerdict: query failed: %v", err)
		return nil, err
	}

	m := row.toModel()
	return &m, nil
}
