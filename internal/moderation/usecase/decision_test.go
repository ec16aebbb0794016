package usecase

import (
	"context"
	"errors"
	"testing"

	"moderation-srv/internal/model"
	"moderation-srv/internal/moderation"
	"moderation-srv/internal/moderation/repository"
)

func pendingQueueItem(contentType model.ContentType) *model.ModerationQueueItem {
	return &model.ModerationQueueItem{
		ID:          "queue-1",
		ContentType: contentType,
		ContentID:   "rating-1",
		Status:      model.QueueStatusPending,
	}
}

func TestProcessDecision(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "mod-1", Role: "moderator"}

	t.Run("approval marks the item approved", func(t *testing.T) {
		repo := &fakeRepository{queueItem: pendingQueueItem(model.ContentTypePhoto)}
		uc := newTestUseCase(repo, &fakeTrustUC{}, nil)

		if err := uc.ProcessDecision(ctx, sc, moderation.ProcessDecisionInput{
			QueueID:  "queue-1",
			Decision: moderation.DecisionApproved,
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(repo.updates) != 1 {
			t.Fatalf("update count mismatch: got %d, want 1", len(repo.updates))
		}
		update := repo.updates[0]
		if update.Status != model.QueueStatusApproved {
			t.Errorf("status mismatch: got %s, want %s", update.Status, model.QueueStatusApproved)
		}
		if update.AssignedTo != "mod-1" {
			t.Errorf("assignee mismatch: got %s, want mod-1", update.AssignedTo)
		}
		if update.ActionTaken != moderation.DecisionApproved {
			t.Errorf("action mismatch: got %s, want %s", update.ActionTaken, moderation.DecisionApproved)
		}
	})

	t.Run("edited maps to rejected status but keeps its action", func(t *testing.T) {
		repo := &fakeRepository{queueItem: pendingQueueItem(model.ContentTypePhoto)}
		uc := newTestUseCase(repo, &fakeTrustUC{}, nil)

		if err := uc.ProcessDecision(ctx, sc, moderation.ProcessDecisionInput{
			QueueID:  "queue-1",
			Decision: moderation.DecisionEdited,
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		update := repo.updates[0]
		if update.Status != model.QueueStatusRejected {
			t.Errorf("status mismatch: got %s, want %s", update.Status, model.QueueStatusRejected)
		}
		if update.ActionTaken != moderation.DecisionEdited {
			t.Errorf("action mismatch: got %s, want %s", update.ActionTaken, moderation.DecisionEdited)
		}
	})

	t.Run("review decisions recompute the author trust score", func(t *testing.T) {
		repo := &fakeRepository{
			queueItem: pendingQueueItem(model.ContentTypeReview),
			rating:    &model.Rating{ID: "rating-1", UserID: "author-1"},
		}
		trustUC := &fakeTrustUC{}
		uc := newTestUseCase(repo, trustUC, nil)

		if err := uc.ProcessDecision(ctx, sc, moderation.ProcessDecisionInput{
			QueueID:  "queue-1",
			Decision: moderation.DecisionRejected,
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(trustUC.recomputed) != 1 || trustUC.recomputed[0] != "author-1" {
			t.Errorf("trust recomputation mismatch: got %v, want [author-1]", trustUC.recomputed)
		}
	})

	t.Run("photo decisions skip trust recomputation", func(t *testing.T) {
		repo := &fakeRepository{queueItem: pendingQueueItem(model.ContentTypePhoto)}
		trustUC := &fakeTrustUC{}
		uc := newTestUseCase(repo, trustUC, nil)

		if err := uc.ProcessDecision(ctx, sc, moderation.ProcessDecisionInput{
			QueueID:  "queue-1",
			Decision: moderation.DecisionApproved,
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(trustUC.recomputed) != 0 {
			t.Errorf("unexpected trust recomputation: %v", trustUC.recomputed)
		}
	})

	t.Run("already decided item is rejected with a conflict", func(t *testing.T) {
		item := pendingQueueItem(model.ContentTypePhoto)
		item.Status = model.QueueStatusApproved
		repo := &fakeRepository{queueItem: item}
		uc := newTestUseCase(repo, &fakeTrustUC{}, nil)

		err := uc.ProcessDecision(ctx, sc, moderation.ProcessDecisionInput{
			QueueID:  "queue-1",
			Decision: moderation.DecisionRejected,
		})
		if !errors.Is(err, moderation.ErrAlreadyDecided) {
			t.Errorf("error mismatch: got %v, want %v", err, moderation.ErrAlreadyDecided)
		}
		if len(repo.updates) != 0 {
			t.Errorf("decided items must not be updated again: %+v", repo.updates)
		}
	})

	t.Run("losing the update race reads as already decided", func(t *testing.T) {
		repo := &fakeRepository{
			queueItem: pendingQueueItem(model.ContentTypePhoto),
			updateErr: repository.ErrQueueItemNotFound,
		}
		uc := newTestUseCase(repo, &fakeTrustUC{}, nil)

		err := uc.ProcessDecision(ctx, sc, moderation.ProcessDecisionInput{
			QueueID:  "queue-1",
			Decision: moderation.DecisionApproved,
		})
		if !errors.Is(err, moderation.ErrAlreadyDecided) {
			t.Errorf("error mismatch: got %v, want %v", err, moderation.ErrAlreadyDecided)
		}
	})

	t.Run("unknown queue item", func(t *testing.T) {
		repo := &fakeRepository{queueItemErr: repository.ErrQueueItemNotFound}
		uc := newTestUseCase(repo, &fakeTrustUC{}, nil)

		err := uc.ProcessDecision(ctx, sc, moderation.ProcessDecisionInput{
			QueueID:  "missing",
			Decision: moderation.DecisionApproved,
		})
		if !errors.Is(err, moderation.ErrQueueItemNotFound) {
			t.Errorf("error mismatch: got %v, want %v", err, moderation.ErrQueueItemNotFound)
		}
	})

	t.Run("unknown decision", func(t *testing.T) {
		uc := newTestUseCase(&fakeRepository{}, &fakeTrustUC{}, nil)

		err := uc.ProcessDecision(ctx, sc, moderation.ProcessDecisionInput{
			QueueID:  "queue-1",
			Decision: "maybe",
		})
		if !errors.Is(err, moderation.ErrInvalidDecision) {
			t.Errorf("error mismatch: got %v, want %v", err, moderation.ErrInvalidDecision)
		}
	})
}
