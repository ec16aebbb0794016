package usecase

import (
	"context"

	"moderation-srv/internal/analysis"
	"moderation-srv/internal/model"
)

// AnalyzeContent runs the full moderation pipeline for one content item:
// analyzers, verdict persistence, quality scoring, auto-moderation.
func (uc *implUseCase) AnalyzeContent(ctx context.Context, sc model.Scope, input analysis.AnalyzeInput) (analysis.AnalyzeOutput, error) {
	if input.Content == "" {
		return analysis.AnalyzeOutput{}, analysis.ErrContentRequired
	}

	verdicts, err := uc.AnalyzeTextContent(ctx, input)
	if err != nil {
		return analysis.AnalyzeOutput{}, err
	}

	quality, err := uc.CalculateQualityScore(ctx, analysis.QualityInput{
		ContentType: input.ContentType,
		ContentID:   input.ContentID,
		Content:     input.Content,
	})
	if err != nil {
		return analysis.AnalyzeOutput{}, err
	}

	action, err := uc.AutoModerateContent(ctx, sc, analysis.AutoModerateInput{
		ContentType: input.ContentType,
		ContentID:   input.ContentID,
		Verdicts:    verdicts,
	})
	if err != nil {
		return analysis.AnalyzeOutput{}, err
	}

	return analysis.AnalyzeOutput{
		Verdicts: verdicts,
		Quality:  quality,
		Action:   action,
	}, nil
}
