package repository

import (
	"context"

	"moderation-srv/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	// CreateReport persists a new pending content report.
	CreateReport(ctx context.Context, opts CreateReportOptions) (*model.ContentReport, error)

	// ListReports returns reports newest first, with the total for paging.
	ListReports(ctx context.Context, opts ListReportsOptions) ([]model.ContentReport, int64, error)

	// CreateQueueItem inserts a pending review-queue row.
	CreateQueueItem(ctx context.Context, opts CreateQueueItemOptions) (*model.ModerationQueueItem, error)

	// GetQueueItemByID returns a single queue item.
	GetQueueItemByID(ctx context.Context, id string) (*model.ModerationQueueItem, error)

	// ListQueue returns pending items ordered by priority then age, with the
	// total for paging.
	ListQueue(ctx context.Context, opts ListQueueOptions) ([]model.ModerationQueueItem, int64, error)

	// UpdateQueueDecision records a moderator decision on a pending item.
	UpdateQueueDecision(ctx context.Context, opts UpdateQueueDecisionOptions) error

	// GetRating reads one rating row for queue snapshots.
	GetRating(ctx context.Context, id string) (*model.Rating, error)
}

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	Repository
}
