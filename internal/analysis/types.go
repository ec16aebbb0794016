package analysis

import "moderation-srv/internal/model"

// Actions produced by the auto-moderation decision.
const (
	ActionApproved = "approved"
	ActionRejected = "rejected"
	ActionQueued   = "queued"
)

type AnalyzeInput struct {
	ContentType model.ContentType
	ContentID   string
	Content     string
	AuthorID    string
}

type QualityInput struct {
	ContentType model.ContentType
	ContentID   string
	Content     string
}

type AutoModerateInput struct {
	ContentType model.ContentType
	ContentID   string
	Verdicts    []model.ModerationResult
}

type AnalyzeOutput struct {
	Verdicts []model.ModerationResult
	Quality  model.QualityScore
	Action   string
}
