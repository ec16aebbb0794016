package http

import (
	"moderation-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary Report content
// @Description File a complaint about a content item. Harassment and inappropriate reports are escalated to the review queue immediately
// @Tags Moderation
// @Accept json
// @Produce json
// @Param body body reportContentReq true "Report"
// @Success 200 {object} reportContentResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/reports [post]
func (h *handler) ReportContent(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processReportContentRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "moderation.delivery.http.ReportContent: processReportContentRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.ReportContent(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "moderation.delivery.http.ReportContent: usecase ReportContent failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, reportContentResp{ReportID: o.ReportID})
}

// @Summary Get moderation queue
// @Description List pending review items, most urgent then oldest first
// @Tags Moderation
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Param priority query int false "Filter by priority level"
// @Param assigned_to query string false "Filter by assigned moderator"
// @Success 200 {object} getQueueResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/moderation/queue [get]
func (h *handler) GetQueue(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processGetQueueRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "moderation.delivery.http.GetQueue: processGetQueueRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.GetQueue(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "moderation.delivery.http.GetQueue: usecase GetQueue failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newGetQueueResp(o))
}

// @Summary Record moderation decision
// @Description Record a moderator decision for a pending queue item
// @Tags Moderation
// @Accept json
// @Produce json
// @Param queue_id path string true "Queue item ID"
// @Param body body processDecisionReq true "Decision"
// @Success 200 {object} response.Resp
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Failure 409 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/moderation/queue/{queue_id}/decision [post]
func (h *handler) ProcessDecision(c *gin.Context) {
	ctx := c.Request.Context()

	input, sc, err := h.processDecisionRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "moderation.delivery.http.ProcessDecision: processDecisionRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	if err := h.uc.ProcessDecision(ctx, sc, input); err != nil {
		h.l.Errorf(ctx, "moderation.delivery.http.ProcessDecision: usecase ProcessDecision failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, nil)
}

// @Summary List content reports
// @Description List filed reports for moderator triage, newest first
// @Tags Moderation
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Param status query string false "Filter by report status"
// @Param content_type query string false "Filter by content type"
// @Success 200 {object} getReportsResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/reports [get]
func (h *handler) GetReports(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processGetReportsRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "moderation.delivery.http.GetReports: processGetReportsRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.GetReports(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "moderation.delivery.http.GetReports: usecase GetReports failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newGetReportsResp(o))
}
