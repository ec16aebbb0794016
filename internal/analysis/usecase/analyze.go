package usecase

import (
	"context"
	"fmt"

	"moderation-srv/internal/analysis"
	"moderation-srv/internal/analysis/repository"
	"moderation-srv/internal/model"
)

// AnalyzeTextContent runs every analyzer over the content and persists each
// verdict. Analyzer panics degrade the whole batch to a single synthetic
// error verdict instead of propagating, so callers must not assume the
// returned count equals the analyzer count.
func (uc *implUseCase) AnalyzeTextContent(ctx context.Context, input analysis.AnalyzeInput) ([]model.ModerationResult, error) {
	if !input.ContentType.Valid() {
		return nil, analysis.ErrInvalidContentType
	}
	if input.ContentID == "" {
		return nil, analysis.ErrContentIDRequired
	}

	verdicts, err := uc.runAnalyzers(input.Content, input.ContentType)
	if err != nil {
		uc.l.Errorf(ctx, "analysis.usecase.AnalyzeTextContent: analyzer batch failed: %v", err)
		verdicts = []model.ModerationResult{{
			AnalysisType:   model.AnalysisTypeGeneral,
			Classification: model.ClassificationError,
			Confidence:     0,
			ShouldFlag:     false,
			Reason:         "analysis failed",
		}}
	}

	for i := range verdicts {
		verdicts[i].ContentType = input.ContentType
		verdicts[i].ContentID = input.ContentID

		stored, err := uc.repo.CreateVerdict(ctx, repository.CreateVerdictOptions{
			ContentType:    input.ContentType,
			ContentID:      input.ContentID,
			AnalysisType:   verdicts[i].AnalysisType,
			Classification: verdicts[i].Classification,
			Confidence:     verdicts[i].Confidence,
			ShouldFlag:     verdicts[i].ShouldFlag,
			Reason:         verdicts[i].Reason,
			Details:        verdicts[i].Details,
		})
		if err != nil {
			// The in-memory verdict is still returned and acted on. Scores
			// are advisory, losing one stored row is tolerable.
			uc.l.Errorf(ctx, "analysis.usecase.AnalyzeTextContent: CreateVerdict failed: %v", err)
			continue
		}
		verdicts[i].ID = stored.ID
		verdicts[i].CreatedAt = stored.CreatedAt
	}

	return verdicts, nil
}

// runAnalyzers executes the four analyzers, converting a panic in any of
// them into an error for the caller to degrade on.
func (uc *implUseCase) runAnalyzers(content string, contentType model.ContentType) (verdicts []model.ModerationResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			verdicts = nil
			err = fmt.Errorf("analyzer panic: %v", r)
		}
	}()

	verdicts = []model.ModerationResult{
		uc.detectProfanity(content),
		uc.detectSpam(content, contentType),
		uc.detectToxicity(content),
		uc.checkAuthenticity(content, contentType),
	}
	return verdicts, nil
}
