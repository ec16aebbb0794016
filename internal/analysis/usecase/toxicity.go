package usecase

import (
	"strings"

	"moderation-srv/internal/model"
)

const (
	toxicWordWeight      = 0.3
	harassmentWordWeight = 0.5

	toxicityFlagThreshold = 0.7
)

// detectToxicity counts toxic and harassment word matches. Harassment words
// weigh heavier than general toxicity words.
func (uc *implUseCase) detectToxicity(text string) model.ModerationResult {
	lower := strings.ToLower(text)

	var toxicFound, harassFound []string
	for _, word := range uc.cfg.Wordlists.ToxicWords {
		if strings.Contains(lower, word) {
			toxicFound = append(toxicFound, word)
		}
	}
	for _, word := range uc.cfg.Wordlists.HarassmentWords {
		if strings.Contains(lower, word) {
			harassFound = append(harassFound, word)
		}
	}

	score := toxicWordWeight*float64(len(toxicFound)) + harassmentWordWeight*float64(len(harassFound))

	confidence := score
	if confidence > 1.0 {
		confidence = 1.0
	}

	result := model.ModerationResult{
		AnalysisType:   model.AnalysisTypeToxicity,
		Classification: model.ClassificationNonToxic,
		Confidence:     confidence,
		ShouldFlag:     confidence > toxicityFlagThreshold,
		Details: map[string]any{
			"toxicity_score":   score,
			"toxic_words":      toxicFound,
			"harassment_words": harassFound,
		},
	}
	if result.ShouldFlag {
		result.Classification = model.ClassificationToxic
		result.Reason = "toxic language detected"
	}

	return result
}
