package entity

import (
	"time"

	"github.com/google/uuid"
)

// Bounds of a rating score.
const (
	MinRatingScore = 1
	MaxRatingScore = 5
)

// Comment is an immutable free-text note a user wrote about a restaurant.
type Comment struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Username     string // Author display name, filled on reads.
	RestaurantID uuid.UUID
	Text         string
	CreatedAt    time.Time
}

// Rating is the single score a user gave a restaurant. Rating again replaces it.
type Rating struct {
	UserID       uuid.UUID
	RestaurantID uuid.UUID
	Score        int
	UpdatedAt    time.Time
}

// RatingSummary aggregates every rating of one restaurant.
type RatingSummary struct {
	RestaurantID uuid.UUID `json:"restaurant_id"`
	Average      *float64  `json:"average"` // Nil when Count is zero.
	Count        int64     `json:"count"`
}
