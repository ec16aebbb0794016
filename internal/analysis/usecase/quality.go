package usecase

import (
	"context"
	"regexp"
	"strings"
	"time"

	"moderation-srv/internal/analysis"
	"moderation-srv/internal/analysis/repository"
	"moderation-srv/internal/model"
)

var sentenceSplit = regexp.MustCompile(`[.!?]+`)

// CalculateQualityScore combines the storage-side base score with readability
// and authenticity components and upserts the result. Failures degrade to
// defaults, the caller always gets a usable score.
func (uc *implUseCase) CalculateQualityScore(ctx context.Context, input analysis.QualityInput) (model.QualityScore, error) {
	if !input.ContentType.Valid() {
		return model.QualityScore{}, analysis.ErrInvalidContentType
	}
	if input.ContentID == "" {
		return model.QualityScore{}, analysis.ErrContentIDRequired
	}

	score := model.QualityScore{
		ContentType:  input.ContentType,
		ContentID:    input.ContentID,
		OverallScore: defaultBaseScore,
		UpdatedAt:    time.Now().UTC(),
	}

	base, err := uc.repo.CalculateBaseQualityScore(ctx, repository.BaseQualityScoreOptions{
		ContentType: input.ContentType,
		ContentID:   input.ContentID,
		Content:     input.Content,
	})
	if err != nil {
		// Degrade to the bare default score. Component scores are skipped so
		// the stored row makes the degradation visible.
		uc.l.Errorf(ctx, "analysis.usecase.CalculateQualityScore: base score procedure failed, using default: %v", err)
	} else {
		score.OverallScore = base

		if input.ContentType == model.ContentTypeReview && input.Content != "" {
			readability := readabilityScore(input.Content)
			score.ReadabilityScore = &readability

			authenticity := uc.lookupAuthenticityScore(ctx, input.ContentType, input.ContentID)
			score.AuthenticityScore = &authenticity
		}
	}

	if err := uc.repo.UpsertQualityScore(ctx, repository.UpsertQualityScoreOptions{
		ContentType:       score.ContentType,
		ContentID:         score.ContentID,
		OverallScore:      score.OverallScore,
		HelpfulnessScore:  score.HelpfulnessScore,
		AuthenticityScore: score.AuthenticityScore,
		ReadabilityScore:  score.ReadabilityScore,
		EngagementScore:   score.EngagementScore,
	}); err != nil {
		uc.l.Errorf(ctx, "analysis.usecase.CalculateQualityScore: UpsertQualityScore failed: %v", err)
	}

	return score, nil
}

// lookupAuthenticityScore derives the authenticity component from the most
// recent stored authenticity verdict. Defaults to 0.5 when there is none.
func (uc *implUseCase) lookupAuthenticityScore(ctx context.Context, contentType model.ContentType, contentID string) float64 {
	verdict, err := uc.repo.GetLatestVerdict(ctx, repository.GetLatestVerdictOptions{
		ContentType:  contentType,
		ContentID:    contentID,
		AnalysisType: model.AnalysisTypeAuthenticity,
	})
	if err != nil {
		if err != repository.ErrVerdictNotFound {
			uc.l.Errorf(ctx, "analysis.usecase.lookupAuthenticityScore: GetLatestVerdict failed: %v", err)
		}
		return defaultBaseScore
	}

	switch verdict.Classification {
	case model.ClassificationAuthentic:
		return 1 - verdict.Confidence
	case model.ClassificationPotentiallyFake:
		return verdict.Confidence
	default:
		return defaultBaseScore
	}
}

// Readability penalties. Multiple penalties stack before clamping.
const (
	penaltyChoppySentences  = 0.3
	penaltyComplexSentences = 0.4
	penaltyTooFewWords      = 0.2
	penaltyTooManyWords     = 0.1
)

// readabilityScore scores sentence and word structure, starting at 1.0.
func readabilityScore(text string) float64 {
	words := strings.Fields(text)
	wordCount := len(words)

	sentenceCount := 0
	for _, s := range sentenceSplit.Split(text, -1) {
		if strings.TrimSpace(s) != "" {
			sentenceCount++
		}
	}
	if sentenceCount == 0 {
		sentenceCount = 1
	}

	score := 1.0
	avgWordsPerSentence := float64(wordCount) / float64(sentenceCount)
	if avgWordsPerSentence < 5 {
		score -= penaltyChoppySentences
	} else if avgWordsPerSentence > 25 {
		score -= penaltyComplexSentences
	}

	if wordCount < 10 {
		score -= penaltyTooFewWords
	} else if wordCount > 200 {
		score -= penaltyTooManyWords
	}

	if score < 0 {
		score = 0
	} else if score > 1 {
		score = 1
	}
	return score
}
