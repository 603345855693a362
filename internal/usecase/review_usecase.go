package usecase

import (
	"context"

	"gusto/internal/domain/entity"

	"github.com/google/uuid"
)

// ReviewUsecase defines the interface for comments and ratings of restaurants.
type ReviewUsecase interface {
	AddComment(ctx context.Context, userID, restaurantID uuid.UUID, input *AddCommentInput) (*CommentView, error)
	ListComments(ctx context.Context, restaurantID uuid.UUID) ([]*CommentView, error)
	Rate(ctx context.Context, userID, restaurantID uuid.UUID, input *RateInput) (*entity.RatingSummary, error)
	RatingSummary(ctx context.Context, restaurantID uuid.UUID) (*entity.RatingSummary, error)
}

// --- Input DTOs ---

// AddCommentInput defines the body of a comment.
type AddCommentInput struct {
	Text string `json:"text" validate:"required,max=2000"`
}

// RateInput defines a rating score. Range is checked by the use case.
type RateInput struct {
	Score int `json:"score"`
}
