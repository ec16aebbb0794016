package postgre

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"moderation-srv/internal/model"
	"moderation-srv/internal/moderation/repository"
)

type ratingRow struct {
	ID           string         `db:"id"`
	UserID       string         `db:"user_id"`
	RestaurantID string         `db:"restaurant_id"`
	MenuItemID   sql.NullString `db:"menu_item_id"`
	Rating       int            `db:"rating"`
	ReviewText   sql.NullString `db:"review_text"`
	CreatedAt    time.Time      `db:"created_at"`
}

func (r ratingRow) toModel() model.Rating {
	rating := model.Rating{
		ID:           r.ID,
		UserID:       r.UserID,
		RestaurantID: r.RestaurantID,
		Rating:       r.Rating,
		ReviewText:   r.ReviewText.String,
		CreatedAt:    r.CreatedAt,
	}
	if r.MenuItemID.Valid {
		rating.MenuItemID = &r.MenuItemID.String
	}
	return rating
}

const getRatingQuery = `
	SELECT id, user_id, restaurant_id, menu_item_id, rating, review_text, created_at
	FROM ratings
	WHERE id = $1`

func (r *implRepository) GetRating(ctx context.Context, id string) (*model.Rating, error) {
	var row ratingRow
	if err := r.db.GetContext(ctx, &row, getRatingQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrRatingNotFound
		}
		r.l.Errorf(ctx, "moderation.repository.postgre.GetRating: query failed: %v", err)
		return nil, err
	}

	rating := row.toModel()
	return &rating, nil
}
