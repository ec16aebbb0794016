package scope

import (
	"context"
	"testing"

	"moderation-srv/internal/model"
)

func TestNewScope(t *testing.T) {
	t.Run("uses the explicit user id", func(t *testing.T) {
		sc := NewScope(Payload{UserID: "user-1", Username: "alex", Role: "moderator"})

		if sc.UserID != "user-1" {
			t.Errorf("user id mismatch: got %s, want user-1", sc.UserID)
		}
		if sc.Role != "moderator" {
			t.Errorf("role mismatch: got %s", sc.Role)
		}
	})

	t.Run("falls back to the token subject", func(t *testing.T) {
		sc := NewScope(Payload{Subject: "user-2"})

		if sc.UserID != "user-2" {
			t.Errorf("user id mismatch: got %s, want user-2", sc.UserID)
		}
	})
}

func TestScopeContext(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		ctx := SetScopeToContext(context.Background(), model.Scope{UserID: "user-1", Role: "customer"})

		sc := GetScopeFromContext(ctx)
		if sc.UserID != "user-1" || sc.Role != "customer" {
			t.Errorf("scope mismatch: %+v", sc)
		}
	})

	t.Run("missing scope reads as zero", func(t *testing.T) {
		sc := GetScopeFromContext(context.Background())
		if sc.UserID != "" {
			t.Errorf("expected zero scope, got %+v", sc)
		}
	})
}

func TestPayloadContext(t *testing.T) {
	ctx := SetPayloadToContext(context.Background(), Payload{UserID: "user-1"})

	payload, ok := GetPayloadFromContext(ctx)
	if !ok {
		t.Fatal("expected a payload")
	}
	if payload.UserID != "user-1" {
		t.Errorf("payload mismatch: %+v", payload)
	}

	if _, ok := GetPayloadFromContext(context.Background()); ok {
		t.Error("expected no payload in an empty context")
	}
}

func TestScopeHeader(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		original := model.Scope{UserID: "user-1", Username: "alex", Role: "moderator"}

		header, err := CreateScopeHeader(original)
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}

		parsed, err := ParseScopeHeader(header)
		if err != nil {
			t.Fatalf("parse failed: %v", err)
		}
		if parsed != original {
			t.Errorf("round trip mismatch: got %+v, want %+v", parsed, original)
		}
	})

	t.Run("rejects malformed headers", func(t *testing.T) {
		if _, err := ParseScopeHeader("not base64!!!"); err == nil {
			t.Error("expected an error for invalid base64")
		}
	})
}
