package usecase

import (
	"regexp"
	"strings"

	"moderation-srv/internal/model"
)

var firstPersonPlural = regexp.MustCompile(`\bwe\b`)

const (
	genericLanguagePenalty      = 0.3
	suspiciouslyPositivePenalty = 0.4
	detailedPersonalBonus       = 0.2

	authenticityFlagThreshold = 0.6
)

// checkAuthenticity estimates how likely the text is a genuine experience.
// The score starts at 1.0 and moves with a handful of heuristics; confidence
// points in the fake direction, so confidence = 1 - score.
func (uc *implUseCase) checkAuthenticity(text string, contentType model.ContentType) model.ModerationResult {
	lower := strings.ToLower(text)
	score := 1.0
	var signals []string

	genericHits := 0
	for _, phrase := range uc.cfg.Wordlists.GenericPhrases {
		if strings.Contains(lower, phrase) {
			genericHits++
		}
	}
	if genericHits > 2 {
		score -= genericLanguagePenalty
		signals = append(signals, "generic_language")
	}

	if contentType == model.ContentTypeReview {
		positiveHits := 0
		for _, word := range uc.cfg.Wordlists.StrongPositiveWords {
			if strings.Contains(lower, word) {
				positiveHits++
			}
		}
		if positiveHits > 3 && len(text) < 100 {
			score -= suspiciouslyPositivePenalty
			signals = append(signals, "suspiciously_positive")
		}
	}

	// Long text with first-person detail reads as a real visit.
	if len(text) > 150 && (firstPersonPlural.MatchString(lower) || strings.Contains(lower, "my family")) {
		score += detailedPersonalBonus
		signals = append(signals, "detailed_personal")
	}

	if score < 0 {
		score = 0
	} else if score > 1 {
		score = 1
	}

	result := model.ModerationResult{
		AnalysisType:   model.AnalysisTypeAuthenticity,
		Classification: model.ClassificationAuthentic,
		Confidence:     1 - score,
		ShouldFlag:     score < authenticityFlagThreshold,
		Details: map[string]any{
			"authenticity_score": score,
			"signals":            signals,
		},
	}
	if result.ShouldFlag {
		result.Classification = model.ClassificationPotentiallyFake
		result.Reason = "authenticity signals: " + strings.Join(signals, ", ")
	}

	return result
}
