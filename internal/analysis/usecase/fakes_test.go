package usecase

import (
	"context"
	"fmt"
	"time"

	"moderation-srv/internal/analysis/repository"
	"moderation-srv/internal/model"
	"moderation-srv/internal/moderation"
)

// fakeRepository is an in-memory stand-in for the postgres repository.
type fakeRepository struct {
	createVerdictErr error
	createdVerdicts  []repository.CreateVerdictOptions

	latestVerdict    *model.ModerationResult
	latestVerdictErr error

	upserts   []repository.UpsertQualityScoreOptions
	upsertErr error

	baseScore    float64
	baseScoreErr error

	evalAction string
	evalErr    error
	evalCalls  []repository.EvaluateAutoModerationOptions
}

func (f *fakeRepository) CreateVerdict(ctx context.Context, opts repository.CreateVerdictOptions) (*model.ModerationResult, error) {
	f.createdVerdicts = append(f.createdVerdicts, opts)
	if f.createVerdictErr != nil {
		return nil, f.createVerdictErr
	}
	return &model.ModerationResult{
		ID:             fmt.Sprintf("verdict-%d", len(f.createdVerdicts)),
		ContentType:    opts.ContentType,
		ContentID:      opts.ContentID,
		AnalysisType:   opts.AnalysisType,
		Classification: opts.Classification,
		Confidence:     opts.Confidence,
		ShouldFlag:     opts.ShouldFlag,
		Reason:         opts.Reason,
		Details:        opts.Details,
		CreatedAt:      time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}, nil
}

func (f *fakeRepository) GetLatestVerdict(ctx context.Context, opts repository.GetLatestVerdictOptions) (*model.ModerationResult, error) {
	if f.latestVerdictErr != nil {
		return nil, f.latestVerdictErr
	}
	if f.latestVerdict == nil {
		return nil, repository.ErrVerdictNotFound
	}
	return f.latestVerdict, nil
}

func (f *fakeRepository) UpsertQualityScore(ctx context.Context, opts repository.UpsertQualityScoreOptions) error {
	f.upserts = append(f.upserts, opts)
	return f.upsertErr
}

func (f *fakeRepository) CalculateBaseQualityScore(ctx context.Context, opts repository.BaseQualityScoreOptions) (float64, error) {
	if f.baseScoreErr != nil {
		return 0, f.baseScoreErr
	}
	return f.baseScore, nil
}

func (f *fakeRepository) EvaluateAutoModeration(ctx context.Context, opts repository.EvaluateAutoModerationOptions) (string, error) {
	f.evalCalls = append(f.evalCalls, opts)
	if f.evalErr != nil {
		return "", f.evalErr
	}
	return f.evalAction, nil
}

// fakeModerationUC records queue escalations from the auto-moderation loop.
type fakeModerationUC struct {
	addErr error
	added  []moderation.AddToQueueInput
}

func (f *fakeModerationUC) ReportContent(ctx context.Context, sc model.Scope, input moderation.ReportContentInput) (moderation.ReportContentOutput, error) {
	return moderation.ReportContentOutput{}, nil
}

func (f *fakeModerationUC) AddToQueue(ctx context.Context, input moderation.AddToQueueInput) error {
	f.added = append(f.added, input)
	return f.addErr
}

func (f *fakeModerationUC) GetQueue(ctx context.Context, sc model.Scope, input moderation.GetQueueInput) (moderation.GetQueueOutput, error) {
	return moderation.GetQueueOutput{}, nil
}

func (f *fakeModerationUC) ProcessDecision(ctx context.Context, sc model.Scope, input moderation.ProcessDecisionInput) error {
	return nil
}

func (f *fakeModerationUC) GetReports(ctx context.Context, sc model.Scope, input moderation.GetReportsInput) (moderation.GetReportsOutput, error) {
	return moderation.GetReportsOutput{}, nil
}
