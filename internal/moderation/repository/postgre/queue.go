package postgre

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"moderation-srv/internal/model"
	"moderation-srv/internal/moderation/repository"
)

type queueRow struct {
	ID               string          `db:"id"`
	ContentType      string          `db:"content_type"`
	ContentID        string          `db:"content_id"`
	ContentData      json.RawMessage `db:"content_data"`
	ModerationReason string          `db:"moderation_reason"`
	PriorityLevel    int             `db:"priority_level"`
	Status           string          `db:"status"`
	AssignedTo       sql.NullString  `db:"assigned_to"`
	ModeratorNotes   sql.NullString  `db:"moderator_notes"`
	ActionTaken      sql.NullString  `db:"action_taken"`
	CreatedAt        time.Time       `db:"created_at"`
	ReviewedAt       sql.NullTime    `db:"reviewed_at"`
}

func (r queueRow) toModel() model.ModerationQueueItem {
	item := model.ModerationQueueItem{
		ID:               r.ID,
		ContentType:      model.ContentType(r.ContentType),
		ContentID:        r.ContentID,
		ContentData:      r.ContentData,
		ModerationReason: r.ModerationReason,
		PriorityLevel:    r.PriorityLevel,
		Status:           model.QueueStatus(r.Status),
		ModeratorNotes:   r.ModeratorNotes.String,
		ActionTaken:      r.ActionTaken.String,
		CreatedAt:        r.CreatedAt,
	}
	if r.AssignedTo.Valid {
		item.AssignedTo = &r.AssignedTo.String
	}
	if r.ReviewedAt.Valid {
		t := r.ReviewedAt.Time
		item.ReviewedAt = &t
	}
	return item
}

const createQueueItemQuery = `
	INSERT INTO content_moderation_queue
		(id, content_type, content_id, content_data, moderation_reason, priority_level, status, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

func (r *implRepository) CreateQueueItem(ctx context.Context, opts repository.CreateQueueItemOptions) (*model.ModerationQueueItem, error) {
	contentData := opts.ContentData
	if len(contentData) == 0 {
		contentData = json.RawMessage(`{}`)
	}

	item := model.ModerationQueueItem{
		ID:               uuid.New().String(),
		ContentType:      opts.ContentType,
		ContentID:        opts.ContentID,
		ContentData:      contentData,
		ModerationReason: opts.Reason,
		PriorityLevel:    opts.PriorityLevel,
		Status:           model.QueueStatusPending,
		CreatedAt:        time.Now().UTC(),
	}

	_, err := r.db.ExecContext(ctx, createQueueItemQuery,
		item.ID, item.ContentType, item.ContentID, []byte(item.ContentData),
		item.ModerationReason, item.PriorityLevel, item.Status, item.CreatedAt)
	if err != nil {
		r.l.Errorf(ctx, "moderation.repository.postgre.CreateQueueItem: insert failed: %v", err)
		return nil, fmt.Errorf("%w: %v", repository.ErrQueueCreateFailed, err)
	}

	return &item, nil
}

const queueColumns = `id, content_type, content_id, content_data, moderation_reason, priority_level, status, assigned_to, moderator_notes, action_taken, created_at, reviewed_at`

func (r *implRepository) GetQueueItemByID(ctx context.Context, id string) (*model.ModerationQueueItem, error) {
	query := fmt.Sprintf(`SELECT %s FROM content_moderation_queue WHERE id = $1`, queueColumns)

	var row queueRow
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrQueueItemNotFound
		}
		r.l.Errorf(ctx, "moderation.repository.postgre.GetQueueItemByID: query failed: %v", err)
		return nil, err
	}

	item := row.toModel()
	return &item, nil
}

// ListQueue returns pending items most urgent first, oldest first within the
// same priority. This ordering is the fairness contract for moderators.
func (r *implRepository) ListQueue(ctx context.Context, opts repository.ListQueueOptions) ([]model.ModerationQueueItem, int64, error) {
	conds := []string{"status = 'pending'"}
	args := []any{}

	if opts.Priority != nil {
		args = append(args, *opts.Priority)
		conds = append(conds, fmt.Sprintf("priority_level = $%d", len(args)))
	}
	if opts.AssignedTo != "" {
		args = append(args, opts.AssignedTo)
		conds = append(conds, fmt.Sprintf("assigned_to = $%d", len(args)))
	}
	where := strings.Join(conds, " AND ")

	var total int64
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM content_moderation_queue WHERE %s`, where)
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		r.l.Errorf(ctx, "moderation.repository.postgre.ListQueue: count failed: %v", err)
		return nil, 0, err
	}

	args = append(args, opts.Limit, opts.Offset)
	listQuery := fmt.Sprintf(`
		SELECT %s
		FROM content_moderation_queue
		WHERE %s
		ORDER BY priority_level ASC, created_at ASC
		LIMIT $%d OFFSET $%d`, queueColumns, where, len(args)-1, len(args))

	var rows []queueRow
	if err := r.db.SelectContext(ctx, &rows, listQuery, args...); err != nil {
		r.l.Errorf(ctx, "moderation.repository.postgre.ListQueue: query failed: %v", err)
		return nil, 0, err
	}

	items := make([]model.ModerationQueueItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toModel())
	}

	return items, total, nil
}

const updateQueueDecisionQuery = `
	UPDATE content_moderation_queue
	SET status = $1, assigned_to = $2, moderator_notes = $3, action_taken = $4, reviewed_at = $5
	WHERE id = $6 AND status = 'pending'`

func (r *implRepository) UpdateQueueDecision(ctx context.Context, opts repository.UpdateQueueDecisionOptions) error {
	notes := sql.NullString{String: opts.Notes, Valid: opts.Notes != ""}
	action := sql.NullString{String: opts.ActionTaken, Valid: opts.ActionTaken != ""}

	res, err := r.db.ExecContext(ctx, updateQueueDecisionQuery,
		opts.Status, opts.AssignedTo, notes, action, time.Now().UTC(), opts.QueueID)
	if err != nil {
		r.l.Errorf(ctx, "moderation.repository.postgre.UpdateQueueDecision: update failed: %v", err)
		return fmt.Errorf("%w: %v", repository.ErrQueueUpdateFailed, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %v", repository.ErrQueueUpdateFailed, err)
	}
	if affected == 0 {
		return repository.ErrQueueItemNotFound
	}

	return nil
}
