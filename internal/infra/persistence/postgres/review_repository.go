package postgres

import (
	"context"

	"gusto/internal/domain/entity"
	domainerrors "gusto/internal/domain/errors"
	"gusto/internal/domain/repository"
	"gusto/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository is the constructor for commentRepository.
func NewCommentRepository(db *gorm.DB) repository.CommentRepository {
	return &commentRepository{db: db}
}

// Create appends a comment.
func (repo *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	row := &model.CommentModel{
		ID:           comment.ID,
		UserID:       comment.UserID,
		RestaurantID: comment.RestaurantID,
		Text:         comment.Text,
	}
	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(row).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrRestaurantNotFound.WrapMessage("comment references an unknown restaurant")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create comment")
	}

	comment.ID = row.ID
	comment.CreatedAt = row.CreatedAt

	return nil
}

// ListByRestaurant returns comments newest first with the author's username.
func (repo *commentRepository) ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*entity.Comment, error) {
	var rows []*model.CommentModel
	if err := repo.db.WithContext(ctx).
		Joins("User").
		Where("comments.restaurant_id = ?", restaurantID).
		Order("comments.created_at DESC").
		Order("comments.id DESC").
		Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list comments")
	}

	comments := make([]*entity.Comment, 0, len(rows))
	for _, row := range rows {
		comment := &entity.Comment{
			ID:           row.ID,
			UserID:       row.UserID,
			RestaurantID: row.RestaurantID,
			Text:         row.Text,
			CreatedAt:    row.CreatedAt,
		}
		if row.User != nil {
			comment.Username = row.User.Username
		}
		comments = append(comments, comment)
	}

	return comments, nil
}

type ratingRepository struct {
	db *gorm.DB
}

// NewRatingRepository is the constructor for ratingRepository.
func NewRatingRepository(db *gorm.DB) repository.RatingRepository {
	return &ratingRepository{db: db}
}

// Upsert inserts the rating or overwrites the score on (user_id, restaurant_id) conflict.
func (repo *ratingRepository) Upsert(ctx context.Context, rating *entity.Rating) error {
	row := &model.RatingModel{
		UserID:       rating.UserID,
		RestaurantID: rating.RestaurantID,
		Score:        rating.Score,
	}

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "restaurant_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"score", "updated_at"}),
	}).Create(row).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidRating
		}
		// The restaurant is checked by the caller in the same transaction, so
		// the user is the reference still able to go missing.
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("rating references an unknown user")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert rating")
	}

	rating.UpdatedAt = row.UpdatedAt

	return nil
}

// Aggregate returns the mean score and rating count of a restaurant.
func (repo *ratingRepository) Aggregate(ctx context.Context, restaurantID uuid.UUID) (float64, int64, error) {
	var result struct {
		Avg   float64
		Count int64
	}
	if err := repo.db.WithContext(ctx).Model(&model.RatingModel{}).
		Select("COALESCE(AVG(score), 0) AS avg, COUNT(*) AS count").
		Where("restaurant_id = ?", restaurantID).
		Scan(&result).Error; err != nil {
		return 0, 0, domainerrors.NewDatabaseExecuteError(err, "failed to aggregate ratings")
	}

	return result.Avg, result.Count, nil
}
