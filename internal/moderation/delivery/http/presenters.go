package http

import (
	"encoding/json"

	"moderation-srv/internal/model"
	"moderation-srv/internal/moderation"
	"moderation-srv/pkg/paginator"
	"moderation-srv/pkg/response"
)

type reportContentReq struct {
	ContentType string `json:"content_type" binding:"required"`
	ContentID   string `json:"content_id" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Reason      string `json:"reason,omitempty"`
}

func (r reportContentReq) toInput() moderation.ReportContentInput {
	return moderation.ReportContentInput{
		ContentType: model.ContentType(r.ContentType),
		ContentID:   r.ContentID,
		Category:    model.ReportCategory(r.Category),
		Reason:      r.Reason,
	}
}

type reportContentResp struct {
	ReportID string `json:"report_id"`
}

type getQueueReq struct {
	paginator.PaginateQuery
	Priority   *int   `form:"priority"`
	AssignedTo string `form:"assigned_to"`
}

func (r getQueueReq) toInput() moderation.GetQueueInput {
	return moderation.GetQueueInput{
		PaginateQuery: r.PaginateQuery,
		Priority:      r.Priority,
		AssignedTo:    r.AssignedTo,
	}
}

type queueItemResp struct {
	ID               string          `json:"id"`
	ContentType      string          `json:"content_type"`
	ContentID        string          `json:"content_id"`
	ContentData      json.RawMessage `json:"content_data,omitempty"`
	ModerationReason string          `json:"moderation_reason"`
	PriorityLevel    int             `json:"priority_level"`
	Status           string          `json:"status"`
	AssignedTo       *string         `json:"assigned_to,omitempty"`
	ModeratorNotes   string          `json:"moderator_notes,omitempty"`
	ActionTaken      string          `json:"action_taken,omitempty"`
	CreatedAt        string          `json:"created_at"`
	ReviewedAt       *string         `json:"reviewed_at,omitempty"`
}

type getQueueResp struct {
	Items     []queueItemResp             `json:"items"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}

func (h *handler) newGetQueueResp(o moderation.GetQueueOutput) getQueueResp {
	items := make([]queueItemResp, 0, len(o.Items))
	for _, item := range o.Items {
		resp := queueItemResp{
			ID:               item.ID,
			ContentType:      string(item.ContentType),
			ContentID:        item.ContentID,
			ContentData:      item.ContentData,
			ModerationReason: item.ModerationReason,
			PriorityLevel:    item.PriorityLevel,
			Status:           string(item.Status),
			AssignedTo:       item.AssignedTo,
			ModeratorNotes:   item.ModeratorNotes,
			ActionTaken:      item.ActionTaken,
			CreatedAt:        item.CreatedAt.Format(response.DateTimeFormat),
		}
		if item.ReviewedAt != nil {
			reviewed := item.ReviewedAt.Format(response.DateTimeFormat)
			resp.ReviewedAt = &reviewed
		}
		items = append(items, resp)
	}

	return getQueueResp{
		Items:     items,
		Paginator: o.Paginator.ToResponse(),
	}
}

type processDecisionReq struct {
	Decision    string `json:"decision" binding:"required"`
	Notes       string `json:"notes,omitempty"`
	ActionTaken string `json:"action_taken,omitempty"`
}

type getReportsReq struct {
	paginator.PaginateQuery
	Status      string `form:"status"`
	ContentType string `form:"content_type"`
}

func (r getReportsReq) toInput() moderation.GetReportsInput {
	return moderation.GetReportsInput{
		PaginateQuery: r.PaginateQuery,
		Status:        model.ReportStatus(r.Status),
		ContentType:   model.ContentType(r.ContentType),
	}
}

type reportResp struct {
	ID             string `json:"id"`
	ReporterUserID string `json:"reporter_user_id"`
	ContentType    string `json:"content_type"`
	ContentID      string `json:"content_id"`
	ReportCategory string `json:"report_category"`
	ReportReason   string `json:"report_reason,omitempty"`
	Status         string `json:"status"`
	CreatedAt      string `json:"created_at"`
}

type getReportsResp struct {
	Reports   []reportResp                `json:"reports"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}

func (h *handler) newGetReportsResp(o moderation.GetReportsOutput) getReportsResp {
	reports := make([]reportResp, 0, len(o.Reports))
	for _, r := range o.Reports {
		reports = append(reports, reportResp{
			ID:             r.ID,
			ReporterUserID: r.ReporterUserID,
			ContentType:    string(r.ContentType),
			ContentID:      r.ContentID,
			ReportCategory: string(r.ReportCategory),
			ReportReason:   r.ReportReason,
			Status:         string(r.Status),
			CreatedAt:      r.CreatedAt.Format(response.DateTimeFormat),
		})
	}

	return getReportsResp{
		Reports:   reports,
		Paginator: o.Paginator.ToResponse(),
	}
}
