package moderation

import (
	"moderation-srv/internal/model"
	"moderation-srv/pkg/paginator"
)

// Moderator decisions. Edited is recorded in action_taken but collapses to
// the rejected queue status.
const (
	DecisionApproved = "approved"
	DecisionRejected = "rejected"
	DecisionEdited   = "edited"
)

// ReasonUserReported marks queue items created by report escalation.
const ReasonUserReported = "user_reported"

type ReportContentInput struct {
	ContentType model.ContentType
	ContentID   string
	Category    model.ReportCategory
	Reason      string
}

type ReportContentOutput struct {
	ReportID string
}

type AddToQueueInput struct {
	ContentType   model.ContentType
	ContentID     string
	Reason        string
	PriorityLevel int
}

type GetQueueInput struct {
	PaginateQuery paginator.PaginateQuery
	Priority      *int
	AssignedTo    string
}

type GetQueueOutput struct {
	Items     []model.ModerationQueueItem
	Paginator paginator.Paginator
}

type ProcessDecisionInput struct {
	QueueID     string
	Decision    string
	Notes       string
	ActionTaken string
}

type GetReportsInput struct {
	PaginateQuery paginator.PaginateQuery
	Status        model.ReportStatus
	ContentType   model.ContentType
}

type GetReportsOutput struct {
	Reports   []model.ContentReport
	Paginator paginator.Paginator
}
