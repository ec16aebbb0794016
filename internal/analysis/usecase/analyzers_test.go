package usecase

import (
	"strings"
	"testing"

	"moderation-srv/config"
	"moderation-srv/internal/model"
	"moderation-srv/pkg/log"
)

func newTestUseCase(repo *fakeRepository, modUC *fakeModerationUC, failOpen bool) *implUseCase {
	return &implUseCase{
		repo:  repo,
		modUC: modUC,
		l:     log.NewNop(),
		cfg: Config{
			Wordlists:               config.DefaultWordlists(),
			FailOpenOnDecisionError: failOpen,
		},
	}
}

func TestDetectProfanity(t *testing.T) {
	uc := newTestUseCase(&fakeRepository{}, &fakeModerationUC{}, true)

	t.Run("flags denylisted words regardless of case", func(t *testing.T) {
		result := uc.detectProfanity("This DAMN place ruined our evening")

		if !result.ShouldFlag {
			t.Fatal("expected verdict to be flagged")
		}
		if result.Classification != model.ClassificationProfanity {
			t.Errorf("classification mismatch: got %s, want %s", result.Classification, model.ClassificationProfanity)
		}
		if result.Confidence != 0.9 {
			t.Errorf("confidence mismatch: got %.2f, want 0.90", result.Confidence)
		}
		found, ok := result.Details["words_found"].([]string)
		if !ok || len(found) != 1 || found[0] != "damn" {
			t.Errorf("words_found mismatch: got %v, want [damn]", result.Details["words_found"])
		}
	})

	t.Run("clean text gets low confidence and no flag", func(t *testing.T) {
		result := uc.detectProfanity("Lovely pasta and a quiet terrace")

		if result.ShouldFlag {
			t.Fatal("expected verdict not to be flagged")
		}
		if result.Classification != model.ClassificationClean {
			t.Errorf("classification mismatch: got %s, want %s", result.Classification, model.ClassificationClean)
		}
		if result.Confidence != 0.1 {
			t.Errorf("confidence mismatch: got %.2f, want 0.10", result.Confidence)
		}
	})

	t.Run("analysis type is stamped", func(t *testing.T) {
		result := uc.detectProfanity("anything")
		if result.AnalysisType != model.AnalysisTypeProfanity {
			t.Errorf("analysis type mismatch: got %s, want %s", result.AnalysisType, model.AnalysisTypeProfanity)
		}
	})
}

func TestDetectSpam(t *testing.T) {
	uc := newTestUseCase(&fakeRepository{}, &fakeModerationUC{}, true)

	t.Run("promotional shouting crosses the threshold", func(t *testing.T) {
		result := uc.detectSpam("BUY NOW!!! FREE FREE FREE!!! discount deal offer!!!", model.ContentTypeReview)

		if !result.ShouldFlag {
			t.Fatalf("expected verdict to be flagged, score %v", result.Details["spam_score"])
		}
		if result.Classification != model.ClassificationSpam {
			t.Errorf("classification mismatch: got %s, want %s", result.Classification, model.ClassificationSpam)
		}

		score := result.Details["spam_score"].(float64)
		if score < 0.79 || score > 0.81 {
			t.Errorf("spam score mismatch: got %.2f, want 0.80", score)
		}

		signals := result.Details["signals"].([]string)
		for _, want := range []string{"excessive_caps", "excessive_punctuation", "promotional_content"} {
			if !containsString(signals, want) {
				t.Errorf("missing signal %s in %v", want, signals)
			}
		}
	})

	t.Run("ordinary review scores zero", func(t *testing.T) {
		result := uc.detectSpam("The pasta was cooked perfectly and the staff were attentive all evening.", model.ContentTypeReview)

		if result.ShouldFlag {
			t.Fatal("expected verdict not to be flagged")
		}
		if result.Classification != model.ClassificationNotSpam {
			t.Errorf("classification mismatch: got %s, want %s", result.Classification, model.ClassificationNotSpam)
		}
		if result.Confidence != 0 {
			t.Errorf("confidence mismatch: got %.2f, want 0.00", result.Confidence)
		}
	})

	t.Run("repeated words raise the repetition signal", func(t *testing.T) {
		result := uc.detectSpam("spam spam spam spam spam spam spam spam spam spam", model.ContentTypePhoto)

		signals := result.Details["signals"].([]string)
		if !containsString(signals, "repetitive_content") {
			t.Errorf("missing repetitive_content signal in %v", signals)
		}
		if result.ShouldFlag {
			t.Error("repetition alone should not cross the threshold")
		}
	})

	t.Run("too short only applies to reviews", func(t *testing.T) {
		review := uc.detectSpam("ok!", model.ContentTypeReview)
		if !containsString(review.Details["signals"].([]string), "too_short") {
			t.Error("expected too_short signal for a short review")
		}

		photo := uc.detectSpam("ok!", model.ContentTypePhoto)
		if containsString(photo.Details["signals"].([]string), "too_short") {
			t.Error("too_short must not apply to photo captions")
		}
	})
}

func TestDetectToxicity(t *testing.T) {
	uc := newTestUseCase(&fakeRepository{}, &fakeModerationUC{}, true)

	t.Run("three toxic words flag the content", func(t *testing.T) {
		result := uc.detectToxicity("you stupid idiot moron")

		score := result.Details["toxicity_score"].(float64)
		if score < 0.89 || score > 0.91 {
			t.Errorf("toxicity score mismatch: got %.2f, want 0.90", score)
		}
		if !result.ShouldFlag {
			t.Fatal("expected verdict to be flagged")
		}
		if result.Classification != model.ClassificationToxic {
			t.Errorf("classification mismatch: got %s, want %s", result.Classification, model.ClassificationToxic)
		}
	})

	t.Run("single harassment word stays below threshold", func(t *testing.T) {
		result := uc.detectToxicity("watch your back around the kitchen")

		if result.Confidence != 0.5 {
			t.Errorf("confidence mismatch: got %.2f, want 0.50", result.Confidence)
		}
		if result.ShouldFlag {
			t.Error("0.5 must not cross the 0.7 threshold")
		}
	})

	t.Run("confidence caps at one while raw score does not", func(t *testing.T) {
		result := uc.detectToxicity("stupid idiot, watch your back")

		score := result.Details["toxicity_score"].(float64)
		if score < 1.09 || score > 1.11 {
			t.Errorf("raw score mismatch: got %.2f, want 1.10", score)
		}
		if result.Confidence != 1.0 {
			t.Errorf("confidence mismatch: got %.2f, want 1.00", result.Confidence)
		}
		if !result.ShouldFlag {
			t.Error("expected verdict to be flagged")
		}
	})

	t.Run("clean text is non toxic", func(t *testing.T) {
		result := uc.detectToxicity("wonderful evening, kind staff")
		if result.Classification != model.ClassificationNonToxic {
			t.Errorf("classification mismatch: got %s, want %s", result.Classification, model.ClassificationNonToxic)
		}
	})
}

func TestCheckAuthenticity(t *testing.T) {
	uc := newTestUseCase(&fakeRepository{}, &fakeModerationUC{}, true)

	t.Run("generic gushing review reads as fake", func(t *testing.T) {
		result := uc.checkAuthenticity("Great place, good food, nice service, would recommend.", model.ContentTypeReview)

		if !result.ShouldFlag {
			t.Fatal("expected verdict to be flagged")
		}
		if result.Classification != model.ClassificationPotentiallyFake {
			t.Errorf("classification mismatch: got %s, want %s", result.Classification, model.ClassificationPotentiallyFake)
		}

		// 1.0 - 0.3 (generic) - 0.4 (suspiciously positive) = 0.3
		score := result.Details["authenticity_score"].(float64)
		if score < 0.29 || score > 0.31 {
			t.Errorf("authenticity score mismatch: got %.2f, want 0.30", score)
		}
		if diff := result.Confidence - 0.7; diff < -0.01 || diff > 0.01 {
			t.Errorf("confidence mismatch: got %.2f, want 0.70", result.Confidence)
		}
	})

	t.Run("long personal review earns the detail bonus", func(t *testing.T) {
		text := "My family and I stopped by on a rainy Tuesday after the market closed early. " +
			"The chef walked us through the tasting menu and my daughter still talks about the mushroom broth weeks later."
		result := uc.checkAuthenticity(text, model.ContentTypeReview)

		signals := result.Details["signals"].([]string)
		if !containsString(signals, "detailed_personal") {
			t.Errorf("missing detailed_personal signal in %v", signals)
		}
		if result.ShouldFlag {
			t.Error("expected verdict not to be flagged")
		}
		// Bonus pushes past 1.0 and clamps back down.
		if score := result.Details["authenticity_score"].(float64); score != 1.0 {
			t.Errorf("authenticity score mismatch: got %.2f, want 1.00", score)
		}
		if result.Confidence != 0 {
			t.Errorf("confidence mismatch: got %.2f, want 0.00", result.Confidence)
		}
	})

	t.Run("first person match needs a standalone word", func(t *testing.T) {
		// "awesome" contains "we" but must not trigger the detail bonus.
		text := strings.Repeat("The terrace is awesome in summer and the menu rotates monthly. ", 3)
		result := uc.checkAuthenticity(text, model.ContentTypeReview)

		signals := result.Details["signals"].([]string)
		if containsString(signals, "detailed_personal") {
			t.Errorf("detailed_personal must not fire on embedded letters: %v", signals)
		}
	})

	t.Run("detail bonus requires length", func(t *testing.T) {
		// Personal phrasing alone is not enough; the text must also run
		// past 150 characters.
		result := uc.checkAuthenticity("My family loved it, we will be back.", model.ContentTypeReview)

		signals := result.Details["signals"].([]string)
		if containsString(signals, "detailed_personal") {
			t.Errorf("detailed_personal must not fire on short text: %v", signals)
		}
		if score := result.Details["authenticity_score"].(float64); score != 1.0 {
			t.Errorf("authenticity score mismatch: got %.2f, want 1.00", score)
		}
	})

	t.Run("short positive burst only penalizes reviews", func(t *testing.T) {
		text := "Amazing, awesome, best, perfect food!"
		review := uc.checkAuthenticity(text, model.ContentTypeReview)
		photo := uc.checkAuthenticity(text, model.ContentTypePhoto)

		if !containsString(review.Details["signals"].([]string), "suspiciously_positive") {
			t.Error("expected suspiciously_positive signal for review content")
		}
		if containsString(photo.Details["signals"].([]string), "suspiciously_positive") {
			t.Error("suspiciously_positive must not apply to photo captions")
		}
	})
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}
