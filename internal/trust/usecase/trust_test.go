package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"moderation-srv/internal/model"
	"moderation-srv/internal/trust"
	"moderation-srv/internal/trust/repository"
	"moderation-srv/pkg/log"
)

type fakeRepository struct {
	score        *model.TrustScore
	getErr       error
	recomputeErr error

	getCalls       int
	recomputeCalls []string
}

func (f *fakeRepository) GetTrustScore(ctx context.Context, userID string) (*model.TrustScore, error) {
	f.getCalls++
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.score, nil
}

func (f *fakeRepository) RecomputeTrustScore(ctx context.Context, userID string) error {
	if f.recomputeErr != nil {
		return f.recomputeErr
	}
	f.recomputeCalls = append(f.recomputeCalls, userID)
	return nil
}

type fakeCache struct {
	score  *model.TrustScore
	getErr error
	setErr error

	sets        []model.TrustScore
	invalidated []string
}

func (f *fakeCache) GetTrustScore(ctx context.Context, userID string) (*model.TrustScore, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.score, nil
}

func (f *fakeCache) SetTrustScore(ctx context.Context, score model.TrustScore) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.sets = append(f.sets, score)
	return nil
}

func (f *fakeCache) InvalidateTrustScore(ctx context.Context, userID string) error {
	f.invalidated = append(f.invalidated, userID)
	return nil
}

func sampleScore() *model.TrustScore {
	return &model.TrustScore{
		UserID:           "user-1",
		TrustScore:       0.82,
		ReputationPoints: 140,
		AccountStatus:    model.AccountStatusGoodStanding,
		UpdatedAt:        time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestGetUserTrustScore(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "user-1"}

	t.Run("cache hit skips storage", func(t *testing.T) {
		repo := &fakeRepository{}
		cache := &fakeCache{score: sampleScore()}
		uc := New(repo, cache, log.NewNop())

		score, err := uc.GetUserTrustScore(ctx, sc, "user-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if score == nil || score.TrustScore != 0.82 {
			t.Errorf("score mismatch: got %+v", score)
		}
		if repo.getCalls != 0 {
			t.Errorf("storage must not be read on a cache hit: %d calls", repo.getCalls)
		}
	})

	t.Run("cache miss reads storage and fills the cache", func(t *testing.T) {
		repo := &fakeRepository{score: sampleScore()}
		cache := &fakeCache{getErr: repository.ErrCacheMiss}
		uc := New(repo, cache, log.NewNop())

		score, err := uc.GetUserTrustScore(ctx, sc, "user-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if score == nil {
			t.Fatal("expected a score")
		}
		if len(cache.sets) != 1 || cache.sets[0].UserID != "user-1" {
			t.Errorf("cache fill mismatch: %+v", cache.sets)
		}
	})

	t.Run("works without a cache", func(t *testing.T) {
		repo := &fakeRepository{score: sampleScore()}
		uc := New(repo, nil, log.NewNop())

		score, err := uc.GetUserTrustScore(ctx, sc, "user-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if score == nil {
			t.Fatal("expected a score")
		}
	})

	t.Run("missing row reads as neutral nil", func(t *testing.T) {
		repo := &fakeRepository{getErr: repository.ErrTrustScoreNotFound}
		uc := New(repo, nil, log.NewNop())

		score, err := uc.GetUserTrustScore(ctx, sc, "user-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if score != nil {
			t.Errorf("expected nil score, got %+v", score)
		}
	})

	t.Run("storage failure also reads as neutral nil", func(t *testing.T) {
		repo := &fakeRepository{getErr: errors.New("connection refused")}
		uc := New(repo, nil, log.NewNop())

		score, err := uc.GetUserTrustScore(ctx, sc, "user-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if score != nil {
			t.Errorf("expected nil score, got %+v", score)
		}
	})

	t.Run("cache failure falls through to storage", func(t *testing.T) {
		repo := &fakeRepository{score: sampleScore()}
		cache := &fakeCache{getErr: errors.New("connection refused")}
		uc := New(repo, cache, log.NewNop())

		score, err := uc.GetUserTrustScore(ctx, sc, "user-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if score == nil {
			t.Fatal("expected a score from storage")
		}
	})

	t.Run("requires a user id", func(t *testing.T) {
		uc := New(&fakeRepository{}, nil, log.NewNop())

		if _, err := uc.GetUserTrustScore(ctx, sc, ""); !errors.Is(err, trust.ErrUserIDRequired) {
			t.Errorf("error mismatch: got %v, want %v", err, trust.ErrUserIDRequired)
		}
	})
}

func TestUpdateUserTrustScore(t *testing.T) {
	ctx := context.Background()

	t.Run("recomputes and invalidates the cache", func(t *testing.T) {
		repo := &fakeRepository{}
		cache := &fakeCache{}
		uc := New(repo, cache, log.NewNop())

		uc.UpdateUserTrustScore(ctx, "user-1")

		if len(repo.recomputeCalls) != 1 || repo.recomputeCalls[0] != "user-1" {
			t.Errorf("recompute mismatch: %v", repo.recomputeCalls)
		}
		if len(cache.invalidated) != 1 || cache.invalidated[0] != "user-1" {
			t.Errorf("invalidation mismatch: %v", cache.invalidated)
		}
	})

	t.Run("recompute failure keeps the cached value", func(t *testing.T) {
		repo := &fakeRepository{recomputeErr: errors.New("function does not exist")}
		cache := &fakeCache{}
		uc := New(repo, cache, log.NewNop())

		uc.UpdateUserTrustScore(ctx, "user-1")

		if len(cache.invalidated) != 0 {
			t.Errorf("cache must not be invalidated after a failed recompute: %v", cache.invalidated)
		}
	})

	t.Run("empty user id is a no-op", func(t *testing.T) {
		repo := &fakeRepository{}
		uc := New(repo, nil, log.NewNop())

		uc.UpdateUserTrustScore(ctx, "")

		if len(repo.recomputeCalls) != 0 {
			t.Errorf("unexpected recompute: %v", repo.recomputeCalls)
		}
	})
}
