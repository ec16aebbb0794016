package usecase

import (
	"context"
	"errors"

	"moderation-srv/internal/model"
	"moderation-srv/internal/moderation"
	"moderation-srv/internal/moderation/repository"
)

// ProcessDecision records a moderator decision. Approved maps to the
// approved status; rejected and edited both map to rejected, only
// action_taken keeps them apart. The author's trust score is recomputed
// afterwards, best effort.
func (uc *implUseCase) ProcessDecision(ctx context.Context, sc model.Scope, input moderation.ProcessDecisionInput) error {
	if input.QueueID == "" {
		return moderation.ErrQueueItemNotFound
	}

	var status model.QueueStatus
	switch input.Decision {
	case moderation.DecisionApproved:
		status = model.QueueStatusApproved
	case moderation.DecisionRejected, moderation.DecisionEdited:
		status = model.QueueStatusRejected
	default:
		return moderation.ErrInvalidDecision
	}

	actionTaken := input.ActionTaken
	if actionTaken == "" {
		actionTaken = input.Decision
	}

	item, err := uc.repo.GetQueueItemByID(ctx, input.QueueID)
	if err != nil {
		if errors.Is(err, repository.ErrQueueItemNotFound) {
			return moderation.ErrQueueItemNotFound
		}
		return err
	}
	if item.Status != model.QueueStatusPending {
		return moderation.ErrAlreadyDecided
	}

	err = uc.repo.UpdateQueueDecision(ctx, repository.UpdateQueueDecisionOptions{
		QueueID:     input.QueueID,
		Status:      status,
		AssignedTo:  sc.UserID,
		Notes:       uc.encryptNotes(ctx, input.Notes),
		ActionTaken: actionTaken,
	})
	if err != nil {
		if errors.Is(err, repository.ErrQueueItemNotFound) {
			// Lost the race with another moderator.
			return moderation.ErrAlreadyDecided
		}
		uc.l.Errorf(ctx, "moderation.usecase.ProcessDecision: UpdateQueueDecision failed: %v", err)
		return err
	}

	uc.recomputeAuthorTrust(ctx, *item)
	return nil
}

func (uc *implUseCase) encryptNotes(ctx context.Context, notes string) string {
	if notes == "" || uc.enc == nil {
		return notes
	}

	sealed, err := uc.enc.Encrypt(notes)
	if err != nil {
		uc.l.Warnf(ctx, "moderation.usecase.encryptNotes: encrypt failed, storing empty notes: %v", err)
		return ""
	}
	return sealed
}

// recomputeAuthorTrust resolves the content author from the queue snapshot
// and triggers a trust recomputation. Only review snapshots carry the
// author today.
func (uc *implUseCase) recomputeAuthorTrust(ctx context.Context, item model.ModerationQueueItem) {
	if uc.trustUC == nil || item.ContentType != model.ContentTypeReview {
		return
	}

	rating, err := uc.repo.GetRating(ctx, item.ContentID)
	if err != nil {
		if !errors.Is(err, repository.ErrRatingNotFound) {
			uc.l.Warnf(ctx, "moderation.usecase.recomputeAuthorTrust: GetRating failed: %v", err)
		}
		return
	}

	uc.trustUC.UpdateUserTrustScore(ctx, rating.UserID)
}
