package usecase

import (
	"context"

	"moderation-srv/internal/model"
	"moderation-srv/internal/moderation"
	"moderation-srv/internal/moderation/repository"
)

// ReportContent files a complaint. Harassment and inappropriate reports jump
// straight to the most urgent queue tier; other categories wait for periodic
// triage. Unlike the rest of the engine this operation surfaces failures,
// the reporter needs to know their report went through.
func (uc *implUseCase) ReportContent(ctx context.Context, sc model.Scope, input moderation.ReportContentInput) (moderation.ReportContentOutput, error) {
	if !input.ContentType.Valid() {
		return moderation.ReportContentOutput{}, moderation.ErrInvalidContentType
	}
	if input.ContentID == "" {
		return moderation.ReportContentOutput{}, moderation.ErrContentIDRequired
	}
	if !input.Category.Valid() {
		return moderation.ReportContentOutput{}, moderation.ErrInvalidCategory
	}

	report, err := uc.repo.CreateReport(ctx, repository.CreateReportOptions{
		ReporterUserID: sc.UserID,
		ContentType:    input.ContentType,
		ContentID:      input.ContentID,
		Category:       input.Category,
		Reason:         input.Reason,
	})
	if err != nil {
		uc.l.Errorf(ctx, "moderation.usecase.ReportContent: CreateReport failed: %v", err)
		return moderation.ReportContentOutput{}, moderation.ErrReportFailed
	}

	if input.Category == model.ReportCategoryHarassment || input.Category == model.ReportCategoryInappropriate {
		if err := uc.AddToQueue(ctx, moderation.AddToQueueInput{
			ContentType:   input.ContentType,
			ContentID:     input.ContentID,
			Reason:        moderation.ReasonUserReported,
			PriorityLevel: model.PriorityUrgent,
		}); err != nil {
			// The report itself succeeded; the queue escalation is best
			// effort on top of it.
			uc.l.Errorf(ctx, "moderation.usecase.ReportContent: AddToQueue failed: %v", err)
		}
	}

	return moderation.ReportContentOutput{ReportID: report.ID}, nil
}

// GetReports lists reports newest first for moderator triage.
func (uc *implUseCase) GetReports(ctx context.Context, sc model.Scope, input moderation.GetReportsInput) (moderation.GetReportsOutput, error) {
	input.PaginateQuery.Adjust()

	reports, total, err := uc.repo.ListReports(ctx, repository.ListReportsOptions{
		Status:      input.Status,
		ContentType: input.ContentType,
		Limit:       input.PaginateQuery.Limit,
		Offset:      input.PaginateQuery.Offset(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "moderation.usecase.GetReports: ListReports failed: %v", err)
		return moderation.GetReportsOutput{}, err
	}

	return moderation.GetReportsOutput{
		Reports:   reports,
		Paginator: paginatorOf(total, int64(len(reports)), input.PaginateQuery),
	}, nil
}
