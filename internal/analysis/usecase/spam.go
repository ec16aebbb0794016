package usecase

import (
	"regexp"
	"strings"
	"unicode"

	"moderation-srv/internal/model"
)

var punctuationRuns = regexp.MustCompile(`[!?]{2,}`)

// Additive spam signal weights. Signals are independent, so several weak
// signals together can cross the flag threshold.
const (
	spamWeightCaps        = 0.3
	spamWeightPunctuation = 0.2
	spamWeightRepetition  = 0.4
	spamWeightPromotional = 0.3
	spamWeightTooShort    = 0.5

	spamFlagThreshold = 0.6
)

// detectSpam scores the text against a set of additive spam signals.
func (uc *implUseCase) detectSpam(text string, contentType model.ContentType) model.ModerationResult {
	var score float64
	var signals []string

	if capsRatio(text) > 0.5 {
		score += spamWeightCaps
		signals = append(signals, "excessive_caps")
	}

	if len(punctuationRuns.FindAllString(text, -1)) > 2 {
		score += spamWeightPunctuation
		signals = append(signals, "excessive_punctuation")
	}

	if repetitionRatio(text) > 0.6 {
		score += spamWeightRepetition
		signals = append(signals, "repetitive_content")
	}

	lower := strings.ToLower(text)
	promoHits := 0
	for _, kw := range uc.cfg.Wordlists.PromotionalKeywords {
		if strings.Contains(lower, kw) {
			promoHits++
		}
	}
	if promoHits > 2 {
		score += spamWeightPromotional
		signals = append(signals, "promotional_content")
	}

	if contentType == model.ContentTypeReview && len(strings.TrimSpace(text)) < 10 {
		score += spamWeightTooShort
		signals = append(signals, "too_short")
	}

	confidence := score
	if confidence > 1.0 {
		confidence = 1.0
	}

	result := model.ModerationResult{
		AnalysisType:   model.AnalysisTypeSpam,
		Classification: model.ClassificationNotSpam,
		Confidence:     confidence,
		ShouldFlag:     score > spamFlagThreshold,
		Details: map[string]any{
			"spam_score": score,
			"signals":    signals,
		},
	}
	if result.ShouldFlag {
		result.Classification = model.ClassificationSpam
		result.Reason = "spam signals: " + strings.Join(signals, ", ")
	}

	return result
}

// capsRatio returns the share of upper-case letters among all letters.
func capsRatio(text string) float64 {
	var letters, upper int
	for _, r := range text {
		if unicode.IsLetter(r) {
			letters++
			if unicode.IsUpper(r) {
				upper++
			}
		}
	}
	if letters == 0 {
		return 0
	}
	return float64(upper) / float64(letters)
}

// repetitionRatio returns 1 - uniqueWords/totalWords for the lower-cased text.
func repetitionRatio(text string) float64 {
	words := strings.Fields(strings.ToLower(text))
	if len(words) == 0 {
		return 0
	}

	unique := make(map[string]struct{}, len(words))
	for _, w := range words {
		unique[w] = struct{}{}
	}

	return 1 - float64(len(unique))/float64(len(words))
}
