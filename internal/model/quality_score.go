package model

import "time"

// QualityScore is the composite quality record for one content item.
// One row per (ContentType, ContentID); recomputation upserts in place.
type QualityScore struct {
	ContentType ContentType
	ContentID   string

	OverallScore float64

	// Optional components. Overall is seeded by a storage-side base
	// computation and may diverge from the components.
	HelpfulnessScore  *float64
	AuthenticityScore *float64
	ReadabilityScore  *float64
	EngagementScore   *float64

	UpdatedAt time.Time
}
