package http

import (
	"moderation-srv/internal/model"
	"moderation-srv/pkg/response"
)

type trustScoreResp struct {
	UserID           string  `json:"user_id"`
	TrustScore       float64 `json:"trust_score"`
	ReputationPoints int     `json:"reputation_points"`
	AccountStatus    string  `json:"account_status"`
	UpdatedAt        string  `json:"updated_at"`
}

func (h *handler) newTrustScoreResp(score *model.TrustScore) *trustScoreResp {
	if score == nil {
		return nil
	}

	return &trustScoreResp{
		UserID:           score.UserID,
		TrustScore:       score.TrustScore,
		ReputationPoints: score.ReputationPoints,
		AccountStatus:    string(score.AccountStatus),
		UpdatedAt:        score.UpdatedAt.Format(response.DateTimeFormat),
	}
}
