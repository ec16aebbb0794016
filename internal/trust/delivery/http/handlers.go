package http

import (
	"moderation-srv/pkg/response"
	"moderation-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

// @Summary Get user trust score
// @Description Read a user's aggregate trust score. Returns null data when the user has no score yet
// @Tags Trust
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} trustScoreResp
// @Failure 400 {object} response.Resp
// @Router /api/v1/trust/{user_id} [get]
func (h *handler) GetTrustScore(c *gin.Context) {
	ctx := c.Request.Context()

	userID := c.Param("user_id")
	sc := scope.GetScopeFromContext(ctx)

	score, err := h.uc.GetUserTrustScore(ctx, sc, userID)
	if err != nil {
		h.l.Errorf(ctx, "trust.delivery.http.GetTrustScore: usecase GetUserTrustScore failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newTrustScoreResp(score))
}

// @Summary Recompute user trust score
// @Description Trigger the storage-side trust score recomputation for a user
// @Tags Trust
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} response.Resp
// @Failure 400 {object} response.Resp
// @Router /api/v1/trust/{user_id}/recompute [post]
func (h *handler) RecomputeTrustScore(c *gin.Context) {
	ctx := c.Request.Context()

	userID := c.Param("user_id")
	if userID == "" {
		response.Error(c, errUserIDRequired, h.discord)
		return
	}

	h.uc.UpdateUserTrustScore(ctx, userID)
	response.OK(c, nil)
}
