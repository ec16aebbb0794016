package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"moderation-srv/internal/model"
	"moderation-srv/internal/moderation/repository"
)

type reportRow struct {
	ID             string         `db:"id"`
	ReporterUserID string         `db:"reporter_user_id"`
	ContentType    string         `db:"content_type"`
	ContentID      string         `db:"content_id"`
	ReportCategory string         `db:"report_category"`
	ReportReason   sql.NullString `db:"report_reason"`
	Status         string         `db:"status"`
	CreatedAt      time.Time      `db:"created_at"`
}

func (r reportRow) toModel() model.ContentReport {
	return model.ContentReport{
		ID:             r.ID,
		ReporterUserID: r.ReporterUserID,
		ContentType:    model.ContentType(r.ContentType),
		ContentID:      r.ContentID,
		ReportCategory: model.ReportCategory(r.ReportCategory),
		ReportReason:   r.ReportReason.String,
		Status:         model.ReportStatus(r.Status),
		CreatedAt:      r.CreatedAt,
	}
}

const createReportQuery = `
	INSERT INTO content_reports
		(id, reporter_user_id, content_type, content_id, report_category, report_reason, status, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

func (r *implRepository) CreateReport(ctx context.Context, opts repository.CreateReportOptions) (*model.ContentReport, error) {
	report := model.ContentReport{
		ID:             uuid.New().String(),
		ReporterUserID: opts.ReporterUserID,
		ContentType:    opts.ContentType,
		ContentID:      opts.ContentID,
		ReportCategory: opts.Category,
		ReportReason:   opts.Reason,
		Status:         model.ReportStatusPending,
		CreatedAt:      time.Now().UTC(),
	}

	reason := sql.NullString{String: opts.Reason, Valid: opts.Reason != ""}
	_, err := r.db.ExecContext(ctx, createReportQuery,
		report.ID, report.ReporterUserID, report.ContentType, report.ContentID,
		report.ReportCategory, reason, report.Status, report.CreatedAt)
	if err != nil {
		r.l.Errorf(ctx, "moderation.repository.postgre.CreateReport: insert failed: %v", err)
		return nil, fmt.Errorf("%w: %v", repository.ErrReportCreateFailed, err)
	}

	return &report, nil
}

func (r *implRepository) ListReports(ctx context.Context, opts repository.ListReportsOptions) ([]model.ContentReport, int64, error) {
	conds := []string{"1=1"}
	args := []any{}

	if opts.Status != "" {
		args = append(args, opts.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if opts.ContentType != "" {
		args = append(args, opts.ContentType)
		conds = append(conds, fmt.Sprintf("content_type = $%d", len(args)))
	}
	where := strings.Join(conds, " AND ")

	var total int64
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM content_reports WHERE %s`, where)
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		r.l.Errorf(ctx, "moderation.repository.postgre.ListReports: count failed: %v", err)
		return nil, 0, err
	}

	args = append(args, opts.Limit, opts.Offset)
	listQuery := fmt.Sprintf(`
		SELECT id, reporter_user_id, content_type, content_id, report_category, report_reason, status, created_at
		FROM content_reports
		WHERE %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d`, where, len(args)-1, len(args))

	var rows []reportRow
	if err := r.db.SelectContext(ctx, &rows, listQuery, args...); err != nil {
		r.l.Errorf(ctx, "moderation.repository.postgre.ListReports: query failed: %v", err)
		return nil, 0, err
	}

	reports := make([]model.ContentReport, 0, len(rows))
	for _, row := range rows {
		reports = append(reports, row.toModel())
	}

	return reports, total, nil
}
