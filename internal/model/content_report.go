package model

import "time"

// ReportCategory classifies a user-filed complaint.
type ReportCategory string

const (
	ReportCategoryInappropriate ReportCategory = "inappropriate"
	ReportCategorySpam          ReportCategory = "spam"
	ReportCategoryFake          ReportCategory = "fake"
	ReportCategoryHarassment    ReportCategory = "harassment"
	ReportCategoryOther         ReportCategory = "other"
)

// Valid reports whether the category is one of the known values.
func (c ReportCategory) Valid() bool {
	switch c {
	case ReportCategoryInappropriate, ReportCategorySpam, ReportCategoryFake,
		ReportCategoryHarassment, ReportCategoryOther:
		return true
	}
	return false
}

// ReportStatus tracks a report through moderator triage.
type ReportStatus string

const (
	ReportStatusPending   ReportStatus = "pending"
	ReportStatusReviewed  ReportStatus = "reviewed"
	ReportStatusResolved  ReportStatus = "resolved"
	ReportStatusDismissed ReportStatus = "dismissed"
)

// ContentReport is a user-filed complaint about a content item.
// Status transitions happen through moderator queue actions only.
type ContentReport struct {
	ID             string
	ReporterUserID string
	ContentType    ContentType
	ContentID      string
	ReportCategory ReportCategory
	ReportReason   string
	Status         ReportStatus
	CreatedAt      time.Time
}
