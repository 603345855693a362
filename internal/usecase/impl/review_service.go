package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "gusto/internal/delivery/context"
	"gusto/internal/domain/entity"
	domainerrors "gusto/internal/domain/errors"
	"gusto/internal/domain/rating"
	"gusto/internal/domain/repository"
	"gusto/internal/domain/service"
	"gusto/internal/errors"
	"gusto/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	txManager      repository.TransactionManager
	restaurantRepo repository.RestaurantRepository
	commentRepo    repository.CommentRepository
	ratingRepo     repository.RatingRepository
	summaryCache   service.SummaryCache
	logger         *slog.Logger
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	RestaurantRepo repository.RestaurantRepository
	CommentRepo    repository.CommentRepository
	RatingRepo     repository.RatingRepository
	SummaryCache   service.SummaryCache
	Logger         *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		txManager:      params.TxManager,
		restaurantRepo: params.RestaurantRepo,
		commentRepo:    params.CommentRepo,
		ratingRepo:     params.RatingRepo,
		summaryCache:   params.SummaryCache,
		logger:         params.Logger,
	}
}

func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddComment appends a comment after checking the restaurant exists, in one transaction.
func (srv *reviewService) AddComment(ctx context.Context, userID, restaurantID uuid.UUID, input *usecase.AddCommentInput) (*usecase.CommentView, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("comment text is required")
	}

	comment := &entity.Comment{
		UserID:       userID,
		RestaurantID: restaurantID,
		Text:         text,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := requireRestaurant(ctx, repoFactory.RestaurantRepo(), restaurantID); err != nil {
			return err
		}

		user, err := repoFactory.UserRepo().FindByID(ctx, userID)
		if err != nil {
			return mapUserLookupError(err)
		}
		comment.Username = user.Username

		if err := repoFactory.CommentRepo().Create(ctx, comment); err != nil {
			return errors.Wrap(err, "failed to create comment")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to add comment")
	}

	srv.log(ctx).Debug("Comment added", slog.Any("restaurantID", restaurantID), slog.Any("userID", userID))

	return usecase.NewCommentView(comment), nil
}

// ListComments returns the comments of a restaurant newest first.
func (srv *reviewService) ListComments(ctx context.Context, restaurantID uuid.UUID) ([]*usecase.CommentView, error) {
	if err := requireRestaurant(ctx, srv.restaurantRepo, restaurantID); err != nil {
		return nil, err
	}

	comments, err := srv.commentRepo.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list comments")
	}

	views := make([]*usecase.CommentView, 0, len(comments))
	for _, c := range comments {
		views = append(views, usecase.NewCommentView(c))
	}

	return views, nil
}

// Rate records the user's score for a restaurant, replacing any earlier score,
// and returns the refreshed summary.
func (srv *reviewService) Rate(ctx context.Context, userID, restaurantID uuid.UUID, input *usecase.RateInput) (*entity.RatingSummary, error) {
	if !rating.ValidScore(input.Score) {
		return nil, domainerrors.ErrInvalidRating
	}

	var summary *entity.RatingSummary

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := requireRestaurant(ctx, repoFactory.RestaurantRepo(), restaurantID); err != nil {
			return err
		}

		ratingRepo := repoFactory.RatingRepo()
		if err := ratingRepo.Upsert(ctx, &entity.Rating{
			UserID:       userID,
			RestaurantID: restaurantID,
			Score:        input.Score,
		}); err != nil {
			return errors.Wrap(err, "failed to save rating")
		}

		avg, count, err := ratingRepo.Aggregate(ctx, restaurantID)
		if err != nil {
			return errors.Wrap(err, "failed to aggregate ratings")
		}
		summary = rating.NewSummary(restaurantID, avg, count)

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to rate restaurant")
	}

	// Overwrite rather than delete so a reader that aggregated before the
	// commit cannot leave its older summary behind.
	srv.summaryCache.Set(ctx, summary)
	srv.log(ctx).Debug("Restaurant rated", slog.Any("restaurantID", restaurantID), slog.Int("score", input.Score))

	return summary, nil
}

// RatingSummary returns the average and count of a restaurant's ratings.
func (srv *reviewService) RatingSummary(ctx context.Context, restaurantID uuid.UUID) (*entity.RatingSummary, error) {
	if cached, ok := srv.summaryCache.Get(ctx, restaurantID); ok {
		return cached, nil
	}

	if err := requireRestaurant(ctx, srv.restaurantRepo, restaurantID); err != nil {
		return nil, err
	}

	avg, count, err := srv.ratingRepo.Aggregate(ctx, restaurantID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate ratings")
	}

	summary := rating.NewSummary(restaurantID, avg, count)
	srv.summaryCache.Fill(ctx, summary)

	return summary, nil
}

func requireRestaurant(ctx context.Context, repo repository.RestaurantRepository, id uuid.UUID) error {
	exists, err := repo.Exists(ctx, id)
	if err != nil {
		return errors.Wrap(err, "failed to check restaurant")
	}
	if !exists {
		return errors.Wrap(domainerrors.ErrRestaurantNotFound, "restaurant not found")
	}

	return nil
}
