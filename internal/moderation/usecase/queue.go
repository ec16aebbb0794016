package usecase

import (
	"context"
	"encoding/json"
	"errors"

	"moderation-srv/internal/model"
	"moderation-srv/internal/moderation"
	"moderation-srv/internal/moderation/repository"
)

// flaggedEvent is published whenever content lands in the review queue.
type flaggedEvent struct {
	QueueID       string `json:"queue_id"`
	ContentType   string `json:"content_type"`
	ContentID     string `json:"content_id"`
	Reason        string `json:"reason"`
	PriorityLevel int    `json:"priority_level"`
}

// AddToQueue snapshots the content and inserts a pending review item.
// Snapshots are only available for review content; other types get an empty
// snapshot.
func (uc *implUseCase) AddToQueue(ctx context.Context, input moderation.AddToQueueInput) error {
	if !input.ContentType.Valid() {
		return moderation.ErrInvalidContentType
	}
	if input.ContentID == "" {
		return moderation.ErrContentIDRequired
	}
	if input.PriorityLevel < model.PriorityUrgent {
		input.PriorityLevel = model.PriorityDefault
	}

	item, err := uc.repo.CreateQueueItem(ctx, repository.CreateQueueItemOptions{
		ContentType:   input.ContentType,
		ContentID:     input.ContentID,
		ContentData:   uc.snapshotContent(ctx, input.ContentType, input.ContentID),
		Reason:        input.Reason,
		PriorityLevel: input.PriorityLevel,
	})
	if err != nil {
		return err
	}

	uc.publishFlagged(ctx, *item)
	return nil
}

// snapshotContent captures the content at enqueue time so the queue item
// stays auditable after the source changes or is deleted.
func (uc *implUseCase) snapshotContent(ctx context.Context, contentType model.ContentType, contentID string) json.RawMessage {
	if contentType != model.ContentTypeReview {
		return nil
	}

	rating, err := uc.repo.GetRating(ctx, contentID)
	if err != nil {
		if !errors.Is(err, repository.ErrRatingNotFound) {
			uc.l.Errorf(ctx, "moderation.usecase.snapshotContent: GetRating failed: %v", err)
		}
		return nil
	}

	data, err := json.Marshal(rating)
	if err != nil {
		uc.l.Errorf(ctx, "moderation.usecase.snapshotContent: marshal failed: %v", err)
		return nil
	}

	return data
}

func (uc *implUseCase) publishFlagged(ctx context.Context, item model.ModerationQueueItem) {
	if uc.producer == nil {
		return
	}

	event := flaggedEvent{
		QueueID:       item.ID,
		ContentType:   string(item.ContentType),
		ContentID:     item.ContentID,
		Reason:        item.ModerationReason,
		PriorityLevel: item.PriorityLevel,
	}
	value, err := json.Marshal(event)
	if err != nil {
		uc.l.Errorf(ctx, "moderation.usecase.publishFlagged: marshal failed: %v", err)
		return
	}

	if err := uc.producer.Publish([]byte(item.ContentID), value); err != nil {
		uc.l.Errorf(ctx, "moderation.usecase.publishFlagged: Publish failed: %v", err)
	}
}

// GetQueue lists pending work, most urgent then oldest first. Stored
// moderator notes are decrypted before leaving the usecase.
func (uc *implUseCase) GetQueue(ctx context.Context, sc model.Scope, input moderation.GetQueueInput) (moderation.GetQueueOutput, error) {
	input.PaginateQuery.Adjust()

	items, total, err := uc.repo.ListQueue(ctx, repository.ListQueueOptions{
		Priority:   input.Priority,
		AssignedTo: input.AssignedTo,
		Limit:      input.PaginateQuery.Limit,
		Offset:     input.PaginateQuery.Offset(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "moderation.usecase.GetQueue: ListQueue failed: %v", err)
		return moderation.GetQueueOutput{}, err
	}

	for i := range items {
		items[i].ModeratorNotes = uc.decryptNotes(ctx, items[i].ModeratorNotes)
	}

	return moderation.GetQueueOutput{
		Items:     items,
		Paginator: paginatorOf(total, int64(len(items)), input.PaginateQuery),
	}, nil
}

func (uc *implUseCase) decryptNotes(ctx context.Context, notes string) string {
	if notes == "" || uc.enc == nil {
		return notes
	}

	plain, err := uc.enc.Decrypt(notes)
	if err != nil {
		uc.l.Warnf(ctx, "moderation.usecase.decryptNotes: decrypt failed: %v", err)
		return ""
	}
	return plain
}
