package moderation

import (
	"context"

	"moderation-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// ReportContent files a user complaint, escalating severe categories to
	// the review queue immediately.
	ReportContent(ctx context.Context, sc model.Scope, input ReportContentInput) (ReportContentOutput, error)

	// AddToQueue inserts a pending review item with a point-in-time snapshot
	// of the content.
	AddToQueue(ctx context.Context, input AddToQueueInput) error

	// GetQueue lists pending review work, most urgent then oldest first.
	GetQueue(ctx context.Context, sc model.Scope, input GetQueueInput) (GetQueueOutput, error)

	// ProcessDecision records a moderator decision on a queue item.
	ProcessDecision(ctx context.Context, sc model.Scope, input ProcessDecisionInput) error

	// GetReports lists filed reports for moderator triage, newest first.
	GetReports(ctx context.Context, sc model.Scope, input GetReportsInput) (GetReportsOutput, error)
}
