package http

import (
	"moderation-srv/internal/model"
	"moderation-srv/pkg/response"
	"moderation-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

// @Summary Analyze content
// @Description Run the moderation pipeline over one content item: analyzers, quality scoring, auto-moderation
// @Tags Analysis
// @Accept json
// @Produce json
// @Param body body analyzeReq true "Content to analyze"
// @Success 200 {object} analyzeResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/content/analyze [post]
func (h *handler) Analyze(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processAnalyzeRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "analysis.delivery.http.Analyze: processAnalyzeRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.AnalyzeContent(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "analysis.delivery.http.Analyze: usecase AnalyzeContent failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newAnalyzeResp(o))
}

// AnalyzeInternal runs the same pipeline for trusted platform services
// authenticated by the shared internal key. Requests carry no user token,
// so the pipeline runs under the system scope.
func (h *handler) AnalyzeInternal(c *gin.Context) {
	ctx := c.Request.Context()

	var req analyzeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "analysis.delivery.http.AnalyzeInternal: ShouldBindJSON failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	sc := model.Scope{UserID: "system", Role: "system"}
	ctx = scope.SetScopeToContext(ctx, sc)

	o, err := h.uc.AnalyzeContent(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "analysis.delivery.http.AnalyzeInternal: usecase AnalyzeContent failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newAnalyzeResp(o))
}
