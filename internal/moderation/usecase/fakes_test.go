package usecase

import (
	"context"
	"fmt"
	"time"

	"moderation-srv/internal/model"
	"moderation-srv/internal/moderation/repository"
)

// fakeRepository is an in-memory stand-in for the postgres repository.
type fakeRepository struct {
	createReportErr error
	reports         []repository.CreateReportOptions

	listReports    []model.ContentReport
	listReportsErr error

	createQueueErr error
	queueInserts   []repository.CreateQueueItemOptions

	queueItem    *model.ModerationQueueItem
	queueItemErr error

	listQueue    []model.ModerationQueueItem
	listQueueErr error

	updateErr error
	updates   []repository.UpdateQueueDecisionOptions

	rating    *model.Rating
	ratingErr error
}

func (f *fakeRepository) CreateReport(ctx context.Context, opts repository.CreateReportOptions) (*model.ContentReport, error) {
	if f.createReportErr != nil {
		return nil, f.createReportErr
	}
	f.reports = append(f.reports, opts)
	return &model.ContentReport{
		ID:             fmt.Sprintf("report-%d", len(f.reports)),
		ReporterUserID: opts.ReporterUserID,
		ContentType:    opts.ContentType,
		ContentID:      opts.ContentID,
		ReportCategory: opts.Category,
		ReportReason:   opts.Reason,
		Status:         model.ReportStatusPending,
		CreatedAt:      time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}, nil
}

func (f *fakeRepository) ListReports(ctx context.Context, opts repository.ListReportsOptions) ([]model.ContentReport, int64, error) {
	if f.listReportsErr != nil {
		return nil, 0, f.listReportsErr
	}
	return f.listReports, int64(len(f.listReports)), nil
}

func (f *fakeRepository) CreateQueueItem(ctx context.Context, opts repository.CreateQueueItemOptions) (*model.ModerationQueueItem, error) {
	if f.createQueueErr != nil {
		return nil, f.createQueueErr
	}
	f.queueInserts = append(f.queueInserts, opts)
	return &model.ModerationQueueItem{
		ID:               fmt.Sprintf("queue-%d", len(f.queueInserts)),
		ContentType:      opts.ContentType,
		ContentID:        opts.ContentID,
		ContentData:      opts.ContentData,
		ModerationReason: opts.Reason,
		PriorityLevel:    opts.PriorityLevel,
		Status:           model.QueueStatusPending,
	}, nil
}

func (f *fakeRepository) GetQueueItemByID(ctx context.Context, id string) (*model.ModerationQueueItem, error) {
	if f.queueItemErr != nil {
		return nil, f.queueItemErr
	}
	return f.queueItem, nil
}

func (f *fakeRepository) ListQueue(ctx context.Context, opts repository.ListQueueOptions) ([]model.ModerationQueueItem, int64, error) {
	if f.listQueueErr != nil {
		return nil, 0, f.listQueueErr
	}
	return f.listQueue, int64(len(f.listQueue)), nil
}

func (f *fakeRepository) UpdateQueueDecision(ctx context.Context, opts repository.UpdateQueueDecisionOptions) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updates = append(f.updates, opts)
	return nil
}

func (f *fakeRepository) GetRating(ctx context.Context, id string) (*model.Rating, error) {
	if f.ratingErr != nil {
		return nil, f.ratingErr
	}
	return f.rating, nil
}

// fakeTrustUC records recomputation triggers.
type fakeTrustUC struct {
	recomputed []string
}

func (f *fakeTrustUC) GetUserTrustScore(ctx context.Context, sc model.Scope, userID string) (*model.TrustScore, error) {
	return nil, nil
}

func (f *fakeTrustUC) UpdateUserTrustScore(ctx context.Context, userID string) {
	f.recomputed = append(f.recomputed, userID)
}

// fakeProducer captures published events.
type fakeProducer struct {
	published [][]byte
	keys      [][]byte
	err       error
}

func (f *fakeProducer) Publish(key, value []byte) error {
	if f.err != nil {
		return f.err
	}
	f.keys = append(f.keys, key)
	f.published = append(f.published, value)
	return nil
}

func (f *fakeProducer) Close() error { return nil }

func (f *fakeProducer) HealthCheck() error { return nil }
