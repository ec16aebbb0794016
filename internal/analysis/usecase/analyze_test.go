package usecase

import (
	"context"
	"errors"
	"testing"

	"moderation-srv/internal/analysis"
	"moderation-srv/internal/model"
)

func TestAnalyzeTextContent(t *testing.T) {
	ctx := context.Background()

	t.Run("runs all analyzers and persists every verdict", func(t *testing.T) {
		repo := &fakeRepository{}
		uc := newTestUseCase(repo, &fakeModerationUC{}, true)

		verdicts, err := uc.AnalyzeTextContent(ctx, analysis.AnalyzeInput{
			ContentType: model.ContentTypeReview,
			ContentID:   "rating-1",
			Content:     "A quiet dinner with good service and a short wait.",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(verdicts) != 4 {
			t.Fatalf("verdict count mismatch: got %d, want 4", len(verdicts))
		}
		if len(repo.createdVerdicts) != 4 {
			t.Fatalf("persisted verdict count mismatch: got %d, want 4", len(repo.createdVerdicts))
		}

		seen := map[model.AnalysisType]bool{}
		for _, v := range verdicts {
			seen[v.AnalysisType] = true
			if v.ContentType != model.ContentTypeReview || v.ContentID != "rating-1" {
				t.Errorf("verdict %s missing content identity: %+v", v.AnalysisType, v)
			}
			if v.ID == "" {
				t.Errorf("verdict %s missing stored id", v.AnalysisType)
			}
		}
		for _, want := range []model.AnalysisType{
			model.AnalysisTypeProfanity,
			model.AnalysisTypeSpam,
			model.AnalysisTypeToxicity,
			model.AnalysisTypeAuthenticity,
		} {
			if !seen[want] {
				t.Errorf("missing %s verdict", want)
			}
		}
	})

	t.Run("persistence failure keeps the in-memory verdicts", func(t *testing.T) {
		repo := &fakeRepository{createVerdictErr: errors.New("insert failed")}
		uc := newTestUseCase(repo, &fakeModerationUC{}, true)

		verdicts, err := uc.AnalyzeTextContent(ctx, analysis.AnalyzeInput{
			ContentType: model.ContentTypeReview,
			ContentID:   "rating-1",
			Content:     "The soup was cold.",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(verdicts) != 4 {
			t.Fatalf("verdict count mismatch: got %d, want 4", len(verdicts))
		}
		for _, v := range verdicts {
			if v.ID != "" {
				t.Errorf("verdict %s must not carry a stored id after a failed insert", v.AnalysisType)
			}
		}
	})

	t.Run("validates input", func(t *testing.T) {
		uc := newTestUseCase(&fakeRepository{}, &fakeModerationUC{}, true)

		if _, err := uc.AnalyzeTextContent(ctx, analysis.AnalyzeInput{ContentType: "podcast", ContentID: "x"}); err != analysis.ErrInvalidContentType {
			t.Errorf("error mismatch: got %v, want %v", err, analysis.ErrInvalidContentType)
		}
		if _, err := uc.AnalyzeTextContent(ctx, analysis.AnalyzeInput{ContentType: model.ContentTypeReview}); err != analysis.ErrContentIDRequired {
			t.Errorf("error mismatch: got %v, want %v", err, analysis.ErrContentIDRequired)
		}
	})
}

func TestAnalyzeContent(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "system"}

	t.Run("clean content flows through to approval", func(t *testing.T) {
		repo := &fakeRepository{baseScore: 0.75}
		modUC := &fakeModerationUC{}
		uc := newTestUseCase(repo, modUC, true)

		out, err := uc.AnalyzeContent(ctx, sc, analysis.AnalyzeInput{
			ContentType: model.ContentTypeReview,
			ContentID:   "rating-1",
			Content:     "The kitchen sent out twelve small plates over two hours. Each one arrived with a short story from the server.",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if out.Action != analysis.ActionApproved {
			t.Errorf("action mismatch: got %s, want %s", out.Action, analysis.ActionApproved)
		}
		if len(out.Verdicts) != 4 {
			t.Errorf("verdict count mismatch: got %d, want 4", len(out.Verdicts))
		}
		if out.Quality.OverallScore != 0.75 {
			t.Errorf("quality score mismatch: got %.2f, want 0.75", out.Quality.OverallScore)
		}
		if len(modUC.added) != 0 {
			t.Errorf("clean content must not be queued: got %+v", modUC.added)
		}
	})

	t.Run("profane content is rejected and queued", func(t *testing.T) {
		repo := &fakeRepository{baseScore: 0.4, evalAction: analysis.ActionRejected}
		modUC := &fakeModerationUC{}
		uc := newTestUseCase(repo, modUC, true)

		out, err := uc.AnalyzeContent(ctx, sc, analysis.AnalyzeInput{
			ContentType: model.ContentTypeReview,
			ContentID:   "rating-2",
			Content:     "This damn place served the worst meal of my life.",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if out.Action != analysis.ActionRejected {
			t.Errorf("action mismatch: got %s, want %s", out.Action, analysis.ActionRejected)
		}
		if len(modUC.added) != 1 {
			t.Fatalf("queue escalation count mismatch: got %d, want 1", len(modUC.added))
		}
		if modUC.added[0].ContentID != "rating-2" {
			t.Errorf("queued content id mismatch: got %s", modUC.added[0].ContentID)
		}
	})

	t.Run("empty content is rejected up front", func(t *testing.T) {
		uc := newTestUseCase(&fakeRepository{}, &fakeModerationUC{}, true)

		if _, err := uc.AnalyzeContent(ctx, sc, analysis.AnalyzeInput{
			ContentType: model.ContentTypeReview,
			ContentID:   "rating-3",
		}); err != analysis.ErrContentRequired {
			t.Errorf("error mismatch: got %v, want %v", err, analysis.ErrContentRequired)
		}
	})
}
