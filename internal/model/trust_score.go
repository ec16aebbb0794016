package model

import "time"

// AccountStatus is the standing derived from a user's moderation history.
type AccountStatus string

const (
	AccountStatusGoodStanding AccountStatus = "good_standing"
	AccountStatusWarning      AccountStatus = "warning"
	AccountStatusRestricted   AccountStatus = "restricted"
	AccountStatusSuspended    AccountStatus = "suspended"
)

// TrustScore is the per-user aggregate reputation signal. The scoring
// formula lives in a storage-side procedure; this service only reads the
// row and triggers recomputation.
type TrustScore struct {
	UserID           string        `json:"user_id"`
	TrustScore       float64       `json:"trust_score"`
	ReputationPoints int           `json:"reputation_points"`
	AccountStatus    AccountStatus `json:"account_status"`
	UpdatedAt        time.Time     `json:"updated_at"`
}
