package model

import "time"

// ContentType identifies what kind of user content a record refers to.
type ContentType string

const (
	ContentTypeReview   ContentType = "review"
	ContentTypePhoto    ContentType = "photo"
	ContentTypeResponse ContentType = "response"
	ContentTypeProfile  ContentType = "profile"
)

// Valid reports whether the content type is one of the known values.
func (t ContentType) Valid() bool {
	switch t {
	case ContentTypeReview, ContentTypePhoto, ContentTypeResponse, ContentTypeProfile:
		return true
	}
	return false
}

// AnalysisType identifies which analyzer produced a verdict.
type AnalysisType string

const (
	AnalysisTypeProfanity    AnalysisType = "profanity_filter"
	AnalysisTypeSpam         AnalysisType = "spam_detection"
	AnalysisTypeToxicity     AnalysisType = "toxicity_detection"
	AnalysisTypeAuthenticity AnalysisType = "authenticity_check"
	AnalysisTypeGeneral      AnalysisType = "general_analysis"
)

// Classification labels produced by the analyzers.
const (
	ClassificationClean           = "clean"
	ClassificationProfanity       = "contains_profanity"
	ClassificationSpam            = "spam"
	ClassificationNotSpam         = "not_spam"
	ClassificationToxic           = "toxic"
	ClassificationNonToxic        = "non_toxic"
	ClassificationAuthentic       = "authentic"
	ClassificationPotentiallyFake = "potentially_fake"
	ClassificationError           = "error"
)

// ModerationResult is one analyzer's verdict about one content item.
// Results are append-only: every analysis run produces new rows so the
// history stays available for audit.
type ModerationResult struct {
	ID           string
	ContentType  ContentType
	ContentID    string
	AnalysisType AnalysisType

	Classification string
	Confidence     float64
	ShouldFlag     bool
	Reason         string
	Details        map[string]any

	CreatedAt time.Time
}
