package model

import (
	"encoding/json"
	"time"
)

// QueueStatus tracks a review-queue item. Terminal once it leaves pending.
type QueueStatus string

const (
	QueueStatusPending  QueueStatus = "pending"
	QueueStatusApproved QueueStatus = "approved"
	QueueStatusRejected QueueStatus = "rejected"
)

// Queue priority levels; lower is more urgent.
const (
	PriorityUrgent  = 1
	PriorityDefault = 3
)

// ModerationQueueItem is one unit of pending human-moderator work.
// ContentData is a point-in-time snapshot taken at enqueue time so the
// item stays auditable even after the source content changes or is deleted.
type ModerationQueueItem struct {
	ID               string
	ContentType      ContentType
	ContentID        string
	ContentData      json.RawMessage
	ModerationReason string
	PriorityLevel    int
	Status           QueueStatus

	AssignedTo     *string
	ModeratorNotes string
	ActionTaken    string

	CreatedAt  time.Time
	ReviewedAt *time.Time
}
