package usecase

import (
	"strings"

	"moderation-srv/internal/model"
)

// detectProfanity matches the text against the profanity denylist.
// Matching is case-insensitive substring matching, no word boundaries.
func (uc *implUseCase) detectProfanity(text string) model.ModerationResult {
	lower := strings.ToLower(text)

	var found []string
	for _, word := range uc.cfg.Wordlists.Profanity {
		if strings.Contains(lower, word) {
			found = append(found, word)
		}
	}

	result := model.ModerationResult{
		AnalysisType:   model.AnalysisTypeProfanity,
		Classification: model.ClassificationClean,
		Confidence:     0.1,
		ShouldFlag:     false,
		Details:        map[string]any{"words_found": found},
	}
	if len(found) > 0 {
		result.Classification = model.ClassificationProfanity
		result.Confidence = 0.9
		result.ShouldFlag = true
		result.Reason = "profanity detected"
	}

	return result
}
