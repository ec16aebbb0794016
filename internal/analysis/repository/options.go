package repository

import "moderation-srv/internal/model"

type CreateVerdictOptions struct {
	ContentType    model.ContentType
	ContentID      string
	AnalysisType   model.AnalysisType
	Classification string
	Confidence     float64
	ShouldFlag     bool
	Reason         string
	Details        map[string]any
}

type GetLatestVerdictOptions struct {
	ContentType  model.ContentType
	ContentID    string
	AnalysisType model.AnalysisType
}

type UpsertQualityScoreOptions struct {
	ContentType       model.ContentType
	ContentID         string
	OverallScore      float64
	HelpfulnessScore  *float64
	AuthenticityScore *float64
	ReadabilityScore  *float64
	EngagementScore   *float64
}

type BaseQualityScoreOptions struct {
	ContentType model.ContentType
	ContentID   string
	Content     string
}

type EvaluateAutoModerationOptions struct {
	ContentType    model.ContentType
	ContentID      string
	AnalysisType   model.AnalysisType
	Confidence     float64
	Classification string
}
