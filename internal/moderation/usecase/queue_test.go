package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"moderation-srv/internal/model"
	"moderation-srv/internal/moderation"
	"moderation-srv/pkg/encrypter"
	"moderation-srv/pkg/log"
)

func TestAddToQueue(t *testing.T) {
	ctx := context.Background()

	t.Run("snapshots review content at enqueue time", func(t *testing.T) {
		repo := &fakeRepository{rating: &model.Rating{
			ID:         "rating-1",
			UserID:     "author-1",
			Rating:     1,
			ReviewText: "awful",
		}}
		uc := newTestUseCase(repo, &fakeTrustUC{}, nil)

		if err := uc.AddToQueue(ctx, moderation.AddToQueueInput{
			ContentType:   model.ContentTypeReview,
			ContentID:     "rating-1",
			Reason:        "profanity_filter",
			PriorityLevel: model.PriorityUrgent,
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(repo.queueInserts) != 1 {
			t.Fatalf("queue insert count mismatch: got %d, want 1", len(repo.queueInserts))
		}

		var snapshot model.Rating
		if err := json.Unmarshal(repo.queueInserts[0].ContentData, &snapshot); err != nil {
			t.Fatalf("snapshot is not valid JSON: %v", err)
		}
		if snapshot.UserID != "author-1" {
			t.Errorf("snapshot author mismatch: got %s, want author-1", snapshot.UserID)
		}
	})

	t.Run("non review content gets no snapshot", func(t *testing.T) {
		repo := &fakeRepository{}
		uc := newTestUseCase(repo, &fakeTrustUC{}, nil)

		if err := uc.AddToQueue(ctx, moderation.AddToQueueInput{
			ContentType:   model.ContentTypePhoto,
			ContentID:     "photo-1",
			Reason:        "spam_detection",
			PriorityLevel: model.PriorityDefault,
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if repo.queueInserts[0].ContentData != nil {
			t.Errorf("expected empty snapshot, got %s", repo.queueInserts[0].ContentData)
		}
	})

	t.Run("invalid priority falls back to default", func(t *testing.T) {
		repo := &fakeRepository{}
		uc := newTestUseCase(repo, &fakeTrustUC{}, nil)

		if err := uc.AddToQueue(ctx, moderation.AddToQueueInput{
			ContentType: model.ContentTypePhoto,
			ContentID:   "photo-1",
			Reason:      "spam_detection",
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if repo.queueInserts[0].PriorityLevel != model.PriorityDefault {
			t.Errorf("priority mismatch: got %d, want %d", repo.queueInserts[0].PriorityLevel, model.PriorityDefault)
		}
	})

	t.Run("publishes a flagged event keyed by content id", func(t *testing.T) {
		repo := &fakeRepository{}
		producer := &fakeProducer{}
		uc := newTestUseCase(repo, &fakeTrustUC{}, producer)

		if err := uc.AddToQueue(ctx, moderation.AddToQueueInput{
			ContentType:   model.ContentTypePhoto,
			ContentID:     "photo-1",
			Reason:        "spam_detection",
			PriorityLevel: model.PriorityDefault,
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(producer.published) != 1 {
			t.Fatalf("published event count mismatch: got %d, want 1", len(producer.published))
		}
		if string(producer.keys[0]) != "photo-1" {
			t.Errorf("event key mismatch: got %s, want photo-1", producer.keys[0])
		}

		var event map[string]any
		if err := json.Unmarshal(producer.published[0], &event); err != nil {
			t.Fatalf("event is not valid JSON: %v", err)
		}
		if event["reason"] != "spam_detection" {
			t.Errorf("event reason mismatch: got %v", event["reason"])
		}
		if event["queue_id"] != "queue-1" {
			t.Errorf("event queue_id mismatch: got %v", event["queue_id"])
		}
	})

	t.Run("insert failure surfaces", func(t *testing.T) {
		repo := &fakeRepository{createQueueErr: errors.New("insert failed")}
		uc := newTestUseCase(repo, &fakeTrustUC{}, nil)

		if err := uc.AddToQueue(ctx, moderation.AddToQueueInput{
			ContentType: model.ContentTypePhoto,
			ContentID:   "photo-1",
		}); err == nil {
			t.Error("expected an error")
		}
	})
}

func TestGetQueue(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "mod-1", Role: "moderator"}

	t.Run("decrypts stored moderator notes", func(t *testing.T) {
		enc := encrypter.New("0123456789abcdef0123456789abcdef")
		sealed, err := enc.Encrypt("needs a second look")
		if err != nil {
			t.Fatalf("encrypt failed: %v", err)
		}

		repo := &fakeRepository{listQueue: []model.ModerationQueueItem{
			{ID: "queue-1", ModeratorNotes: sealed, Status: model.QueueStatusPending},
		}}
		uc := New(repo, &fakeTrustUC{}, nil, enc, log.NewNop())

		out, err := uc.GetQueue(ctx, sc, moderation.GetQueueInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Items[0].ModeratorNotes != "needs a second look" {
			t.Errorf("notes mismatch: got %q", out.Items[0].ModeratorNotes)
		}
	})

	t.Run("undecryptable notes come back empty", func(t *testing.T) {
		enc := encrypter.New("0123456789abcdef0123456789abcdef")
		repo := &fakeRepository{listQueue: []model.ModerationQueueItem{
			{ID: "queue-1", ModeratorNotes: "not-ciphertext", Status: model.QueueStatusPending},
		}}
		uc := New(repo, &fakeTrustUC{}, nil, enc, log.NewNop())

		out, err := uc.GetQueue(ctx, sc, moderation.GetQueueInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Items[0].ModeratorNotes != "" {
			t.Errorf("expected empty notes, got %q", out.Items[0].ModeratorNotes)
		}
	})

	t.Run("pagination metadata reflects totals", func(t *testing.T) {
		repo := &fakeRepository{listQueue: []model.ModerationQueueItem{
			{ID: "queue-1"}, {ID: "queue-2"},
		}}
		uc := newTestUseCase(repo, &fakeTrustUC{}, nil)

		out, err := uc.GetQueue(ctx, sc, moderation.GetQueueInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Paginator.Total != 2 || out.Paginator.Count != 2 {
			t.Errorf("paginator mismatch: %+v", out.Paginator)
		}
	})
}
