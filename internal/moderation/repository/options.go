package repository

import (
	"encoding/json"

	"moderation-srv/internal/model"
)

type CreateReportOptions struct {
	ReporterUserID string
	ContentType    model.ContentType
	ContentID      string
	Category       model.ReportCategory
	Reason         string
}

type ListReportsOptions struct {
	Status      model.ReportStatus
	ContentType model.ContentType
	Limit       int64
	Offset      int64
}

type CreateQueueItemOptions struct {
	ContentType   model.ContentType
	ContentID     string
	ContentData   json.RawMessage
	Reason        string
	PriorityLevel int
}

type ListQueueOptions struct {
	Priority   *int
	AssignedTo string
	Limit      int64
	Offset     int64
}

type UpdateQueueDecisionOptions struct {
	QueueID     string
	Status      model.QueueStatus
	AssignedTo  string
	Notes       string // encrypted at rest
	ActionTaken string
}
