package scope

import (
	"context"
	"encoding/base64"
	"encoding/json"

	"moderation-srv/internal/model"
)

// Payload carries the verified identity extracted from an auth token.
type Payload struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`

	Subject   string `json:"sub,omitempty"`
	Issuer    string `json:"iss,omitempty"`
	Id        string `json:"jti,omitempty"`
	IssuedAt  int64  `json:"iat,omitempty"`
	ExpiresAt int64  `json:"exp,omitempty"`
}

// Manager verifies tokens and produces payloads. pkg/jwt implements this.
type Manager interface {
	Verify(token string) (Payload, error)
	CreateToken(payload Payload) (string, error)
}

type contextKey string

const (
	scopeContextKey   contextKey = "scope"
	payloadContextKey contextKey = "payload"
)

// NewScope creates a new scope from a verified payload.
func NewScope(payload Payload) model.Scope {
	userID := payload.UserID
	if userID == "" {
		userID = payload.Subject
	}

	return model.Scope{
		UserID:   userID,
		Username: payload.Username,
		Role:     payload.Role,
	}
}

// SetScopeToContext stores the scope in the context.
func SetScopeToContext(ctx context.Context, sc model.Scope) context.Context {
	return context.WithValue(ctx, scopeContextKey, sc)
}

// GetScopeFromContext returns the scope stored in the context, or the zero
// scope when none was set.
func GetScopeFromContext(ctx context.Context) model.Scope {
	sc, ok := ctx.Value(scopeContextKey).(model.Scope)
	if !ok {
		return model.Scope{}
	}
	return sc
}

// SetPayloadToContext stores the raw token payload in the context.
func SetPayloadToContext(ctx context.Context, payload Payload) context.Context {
	return context.WithValue(ctx, payloadContextKey, payload)
}

// GetPayloadFromContext returns the payload stored in the context.
func GetPayloadFromContext(ctx context.Context) (Payload, bool) {
	p, ok := ctx.Value(payloadContextKey).(Payload)
	return p, ok
}

// CreateScopeHeader encodes a scope for propagation to internal services.
func CreateScopeHeader(sc model.Scope) (string, error) {
	jsonData, err := json.Marshal(sc)
	if err != nil {
		return "", err
	}

	return base64.StdEncoding.EncodeToString(jsonData), nil
}

// ParseScopeHeader decodes a scope header produced by CreateScopeHeader.
func ParseScopeHeader(scopeHeader string) (model.Scope, error) {
	jsonData, err := base64.StdEncoding.DecodeString(scopeHeader)
	if err != nil {
		return model.Scope{}, err
	}

	var sc model.Scope
	if err := json.Unmarshal(jsonData, &sc); err != nil {
		return model.Scope{}, err
	}

	return sc, nil
}
