package http

import (
	"moderation-srv/internal/analysis"
	"moderation-srv/internal/model"
)

type analyzeReq struct {
	ContentType string `json:"content_type" binding:"required"`
	ContentID   string `json:"content_id" binding:"required"`
	Content     string `json:"content" binding:"required"`
}

func (r analyzeReq) toInput() analysis.AnalyzeInput {
	return analysis.AnalyzeInput{
		ContentType: model.ContentType(r.ContentType),
		ContentID:   r.ContentID,
		Content:     r.Content,
	}
}

type verdictResp struct {
	ID             string         `json:"id,omitempty"`
	AnalysisType   string         `json:"analysis_type"`
	Classification string         `json:"classification"`
	Confidence     float64        `json:"confidence"`
	ShouldFlag     bool           `json:"should_flag"`
	Reason         string         `json:"reason,omitempty"`
	Details        map[string]any `json:"details,omitempty"`
}

type qualityResp struct {
	OverallScore      float64  `json:"overall_score"`
	HelpfulnessScore  *float64 `json:"helpfulness_score,omitempty"`
	AuthenticityScore *float64 `json:"authenticity_score,omitempty"`
	ReadabilityScore  *float64 `json:"readability_score,omitempty"`
	EngagementScore   *float64 `json:"engagement_score,omitempty"`
}

type analyzeResp struct {
	ContentType string        `json:"content_type"`
	ContentID   string        `json:"content_id"`
	Action      string        `json:"action"`
	Verdicts    []verdictResp `json:"verdicts"`
	Quality     qualityResp   `json:"quality"`
}

func (h *handler) newAnalyzeResp(o analysis.AnalyzeOutput) analyzeResp {
	verdicts := make([]verdictResp, 0, len(o.Verdicts))
	for _, v := range o.Verdicts {
		verdicts = append(verdicts, verdictResp{
			ID:             v.ID,
			AnalysisType:   string(v.AnalysisType),
			Classification: v.Classification,
			Confidence:     v.Confidence,
			ShouldFlag:     v.ShouldFlag,
			Reason:         v.Reason,
			Details:        v.Details,
		})
	}

	return analyzeResp{
		ContentType: string(o.Quality.ContentType),
		ContentID:   o.Quality.ContentID,
		Action:      o.Action,
		Verdicts:    verdicts,
		Quality: qualityResp{
			OverallScore:      o.Quality.OverallScore,
			HelpfulnessScore:  o.Quality.HelpfulnessScore,
			AuthenticityScore: o.Quality.AuthenticityScore,
			ReadabilityScore:  o.Quality.ReadabilityScore,
			EngagementScore:   o.Quality.EngagementScore,
		},
	}
}
