package repository

import (
	"context"

	"gusto/internal/domain/entity"

	"github.com/google/uuid"
)

// CommentRepository persists append-only comments.
type CommentRepository interface {
	// Create appends a comment.
	Create(ctx context.Context, comment *entity.Comment) error

	// ListByRestaurant returns the comments of a restaurant newest first with author names.
	ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*entity.Comment, error)
}

// RatingRepository persists at most one rating per user and restaurant.
type RatingRepository interface {
	// Upsert creates the rating or replaces the score of the existing one.
	Upsert(ctx context.Context, rating *entity.Rating) error

	// Aggregate returns the mean score and the number of ratings of a restaurant.
	Aggregate(ctx context.Context, restaurantID uuid.UUID) (avg float64, count int64, err error)
}

// HealthChecker reports whether the datastore is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}
