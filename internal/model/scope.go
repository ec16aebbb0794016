package model

// Role values carried in the auth token.
const (
	RoleUser      = "user"
	RoleModerator = "moderator"
	RoleAdmin     = "admin"
)

// Scope carries the authenticated caller identity through a request.
type Scope struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// IsModerator reports whether the scope belongs to moderation staff.
func (s Scope) IsModerator() bool {
	return s.Role == RoleModerator || s.Role == RoleAdmin
}
