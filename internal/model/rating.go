package model

import "time"

// Rating is a restaurant review row, read when snapshotting review content
// into the moderation queue. The ratings table is owned by the platform;
// this service only reads it.
type Rating struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	RestaurantID string    `json:"restaurant_id"`
	MenuItemID   *string   `json:"menu_item_id,omitempty"`
	Rating       int       `json:"rating"`
	ReviewText   string    `json:"review_text,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
