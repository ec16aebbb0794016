package http

import (
	"moderation-srv/internal/model"
	"moderation-srv/internal/moderation"
	"moderation-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processReportContentRequest(c *gin.Context) (reportContentReq, model.Scope, error) {
	var req reportContentReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "moderation.delivery.http.processReportContentRequest: ShouldBindJSON failed: %v", err)
		return req, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}

func (h *handler) processGetQueueRequest(c *gin.Context) (getQueueReq, model.Scope, error) {
	var req getQueueReq

	ctx := c.Request.Context()
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Errorf(ctx, "moderation.delivery.http.processGetQueueRequest: ShouldBindQuery failed: %v", err)
		return req, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}

func (h *handler) processDecisionRequest(c *gin.Context) (moderation.ProcessDecisionInput, model.Scope, error) {
	var req processDecisionReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "moderation.delivery.http.processDecisionRequest: ShouldBindJSON failed: %v", err)
		return moderation.ProcessDecisionInput{}, model.Scope{}, err
	}

	input := moderation.ProcessDecisionInput{
		QueueID:     c.Param("queue_id"),
		Decision:    req.Decision,
		Notes:       req.Notes,
		ActionTaken: req.ActionTaken,
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return input, sc, nil
}

func (h *handler) processGetReportsRequest(c *gin.Context) (getReportsReq, model.Scope, error) {
	var req getReportsReq

	ctx := c.Request.Context()
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Errorf(ctx, "moderation.delivery.http.processGetReportsRequest: ShouldBindQuery failed: %v", err)
		return req, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}
