package usecase

import (
	"context"
	"errors"
	"testing"

	"moderation-srv/internal/analysis"
	"moderation-srv/internal/analysis/repository"
	"moderation-srv/internal/model"
)

func TestCalculateQualityScore(t *testing.T) {
	ctx := context.Background()

	t.Run("combines base score with review components", func(t *testing.T) {
		repo := &fakeRepository{
			baseScore: 0.8,
			latestVerdict: &model.ModerationResult{
				AnalysisType:   model.AnalysisTypeAuthenticity,
				Classification: model.ClassificationAuthentic,
				Confidence:     0.2,
			},
		}
		uc := newTestUseCase(repo, &fakeModerationUC{}, true)

		score, err := uc.CalculateQualityScore(ctx, analysis.QualityInput{
			ContentType: model.ContentTypeReview,
			ContentID:   "rating-1",
			Content:     "The tasting menu ran long but every course landed. Service stayed sharp through a packed Friday night.",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if score.OverallScore != 0.8 {
			t.Errorf("overall score mismatch: got %.2f, want 0.80", score.OverallScore)
		}
		if score.ReadabilityScore == nil {
			t.Fatal("expected readability component for review content")
		}
		if score.AuthenticityScore == nil {
			t.Fatal("expected authenticity component for review content")
		}
		// Authentic verdict with confidence 0.2 maps to 0.8.
		if *score.AuthenticityScore != 0.8 {
			t.Errorf("authenticity component mismatch: got %.2f, want 0.80", *score.AuthenticityScore)
		}

		if len(repo.upserts) != 1 {
			t.Fatalf("upsert count mismatch: got %d, want 1", len(repo.upserts))
		}
		if repo.upserts[0].ContentID != "rating-1" {
			t.Errorf("upsert content id mismatch: got %s", repo.upserts[0].ContentID)
		}
	})

	t.Run("base procedure failure degrades to bare default", func(t *testing.T) {
		repo := &fakeRepository{baseScoreErr: errors.New("function does not exist")}
		uc := newTestUseCase(repo, &fakeModerationUC{}, true)

		score, err := uc.CalculateQualityScore(ctx, analysis.QualityInput{
			ContentType: model.ContentTypeReview,
			ContentID:   "rating-2",
			Content:     "Decent food overall.",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if score.OverallScore != 0.5 {
			t.Errorf("overall score mismatch: got %.2f, want 0.50", score.OverallScore)
		}
		if score.ReadabilityScore != nil || score.AuthenticityScore != nil {
			t.Error("component scores must be skipped when the base score is unavailable")
		}

		// The degraded default is still persisted.
		if len(repo.upserts) != 1 {
			t.Fatalf("upsert count mismatch: got %d, want 1", len(repo.upserts))
		}
		if repo.upserts[0].OverallScore != 0.5 {
			t.Errorf("upserted score mismatch: got %.2f, want 0.50", repo.upserts[0].OverallScore)
		}
	})

	t.Run("upsert failure does not surface", func(t *testing.T) {
		repo := &fakeRepository{baseScore: 0.6, upsertErr: errors.New("deadlock")}
		uc := newTestUseCase(repo, &fakeModerationUC{}, true)

		score, err := uc.CalculateQualityScore(ctx, analysis.QualityInput{
			ContentType: model.ContentTypePhoto,
			ContentID:   "photo-1",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if score.OverallScore != 0.6 {
			t.Errorf("overall score mismatch: got %.2f, want 0.60", score.OverallScore)
		}
	})

	t.Run("non review content skips components", func(t *testing.T) {
		repo := &fakeRepository{baseScore: 0.7}
		uc := newTestUseCase(repo, &fakeModerationUC{}, true)

		score, err := uc.CalculateQualityScore(ctx, analysis.QualityInput{
			ContentType: model.ContentTypePhoto,
			ContentID:   "photo-2",
			Content:     "A caption with plenty of words to read.",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if score.ReadabilityScore != nil {
			t.Error("readability must only be computed for reviews")
		}
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		uc := newTestUseCase(&fakeRepository{}, &fakeModerationUC{}, true)

		if _, err := uc.CalculateQualityScore(ctx, analysis.QualityInput{ContentType: "podcast", ContentID: "x"}); err != analysis.ErrInvalidContentType {
			t.Errorf("error mismatch: got %v, want %v", err, analysis.ErrInvalidContentType)
		}
		if _, err := uc.CalculateQualityScore(ctx, analysis.QualityInput{ContentType: model.ContentTypeReview}); err != analysis.ErrContentIDRequired {
			t.Errorf("error mismatch: got %v, want %v", err, analysis.ErrContentIDRequired)
		}
	})
}

func TestLookupAuthenticityScore(t *testing.T) {
	ctx := context.Background()

	t.Run("fake verdict maps to its confidence", func(t *testing.T) {
		repo := &fakeRepository{latestVerdict: &model.ModerationResult{
			Classification: model.ClassificationPotentiallyFake,
			Confidence:     0.7,
		}}
		uc := newTestUseCase(repo, &fakeModerationUC{}, true)

		if got := uc.lookupAuthenticityScore(ctx, model.ContentTypeReview, "r1"); got != 0.7 {
			t.Errorf("score mismatch: got %.2f, want 0.70", got)
		}
	})

	t.Run("no stored verdict defaults to neutral", func(t *testing.T) {
		repo := &fakeRepository{latestVerdictErr: repository.ErrVerdictNotFound}
		uc := newTestUseCase(repo, &fakeModerationUC{}, true)

		if got := uc.lookupAuthenticityScore(ctx, model.ContentTypeReview, "r1"); got != 0.5 {
			t.Errorf("score mismatch: got %.2f, want 0.50", got)
		}
	})
}

func TestReadabilityScore(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{
			name: "choppy and short stacks both penalties",
			text: "Good. Food. Here. Yes.",
			want: 0.5,
		},
		{
			name: "balanced prose keeps a perfect score",
			text: "The kitchen sent out twelve small plates over two hours. Each one arrived with a short story from the server.",
			want: 1.0,
		},
		{
			name: "one run-on sentence is penalized",
			text: "The dinner started late because the kitchen was slammed and then the server forgot our drinks and the bread went cold while the manager argued about seating near the door.",
			want: 0.6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := readabilityScore(tt.text)
			if diff := got - tt.want; diff < -0.001 || diff > 0.001 {
				t.Errorf("readability mismatch: got %.2f, want %.2f", got, tt.want)
			}
		})
	}
}
