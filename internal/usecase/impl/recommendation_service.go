package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "gusto/internal/delivery/context"
	"gusto/internal/domain/entity"
	"gusto/internal/domain/recommend"
	"gusto/internal/domain/repository"
	"gusto/internal/domain/service"
	"gusto/internal/errors"
	"gusto/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	noRecommendationsMessage = "No restaurants match your profile yet. Try widening your budget or preferences."
	noSearchResultsMessage   = "No restaurants match the given criteria."
)

// recommendationService implements the RecommendationUsecase interface.
type recommendationService struct {
	userRepo       repository.UserRepository
	restaurantRepo repository.RestaurantRepository
	scorer         *recommend.Scorer
	metrics        service.RecommendationMetrics
	now            func() time.Time
	logger         *slog.Logger
}

// RecommendationServiceParams holds dependencies for RecommendationService, injected by Fx.
type RecommendationServiceParams struct {
	fx.In

	UserRepo       repository.UserRepository
	RestaurantRepo repository.RestaurantRepository
	Metrics        service.RecommendationMetrics
	Logger         *slog.Logger
}

// NewRecommendationService is the constructor for recommendationService.
func NewRecommendationService(params RecommendationServiceParams) usecase.RecommendationUsecase {
	return &recommendationService{
		userRepo:       params.UserRepo,
		restaurantRepo: params.RestaurantRepo,
		scorer:         recommend.NewScorer(),
		metrics:        params.Metrics,
		now:            time.Now,
		logger:         params.Logger,
	}
}

func (srv *recommendationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RecommendForUser recommends restaurants for the user registered under username.
func (srv *recommendationService) RecommendForUser(ctx context.Context, username string) (*usecase.RecommendationOutput, error) {
	user, err := srv.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, mapUserLookupError(err)
	}

	return srv.personalized(ctx, user)
}

// RecommendForUserID recommends restaurants for the authenticated user.
func (srv *recommendationService) RecommendForUserID(ctx context.Context, userID uuid.UUID) (*usecase.RecommendationOutput, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, mapUserLookupError(err)
	}

	return srv.personalized(ctx, user)
}

func (srv *recommendationService) personalized(ctx context.Context, user *entity.User) (*usecase.RecommendationOutput, error) {
	start := srv.now()

	candidates, err := srv.restaurantRepo.FindCandidates(ctx, user.Profile.Budget, recommend.Constraints{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch candidates")
	}

	ranked := srv.scorer.Recommend(&user.Profile, candidates)

	views := make([]usecase.RecommendationView, 0, len(ranked))
	for _, s := range ranked {
		score := s.Score
		views = append(views, usecase.NewRecommendationView(s.Restaurant, &score))
	}

	srv.metrics.ObserveRecommendation(service.ModePersonalized, len(candidates), len(views), srv.now().Sub(start))
	srv.log(ctx).Debug("Recommendations computed",
		slog.Any("userID", user.ID),
		slog.Int("candidates", len(candidates)),
		slog.Int("results", len(views)),
	)

	return newRecommendationOutput(views, noRecommendationsMessage), nil
}

// RecommendAdvanced lists the restaurants satisfying the explicit criteria
// ordered by service level, without scoring or truncation.
func (srv *recommendationService) RecommendAdvanced(ctx context.Context, input *usecase.AdvancedSearchInput) (*usecase.RecommendationOutput, error) {
	start := srv.now()
	budget := input.BudgetOrDefault()
	constraints := input.Constraints()

	fetched, err := srv.restaurantRepo.FindCandidates(ctx, budget, constraints)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch candidates")
	}

	candidates := recommend.FilterCandidates(budget, constraints, fetched)
	recommend.SortByServiceLevel(candidates)

	views := make([]usecase.RecommendationView, 0, len(candidates))
	for _, r := range candidates {
		views = append(views, usecase.NewRecommendationView(r, nil))
	}

	srv.metrics.ObserveRecommendation(service.ModeAdvanced, len(fetched), len(views), srv.now().Sub(start))

	return newRecommendationOutput(views, noSearchResultsMessage), nil
}

func newRecommendationOutput(views []usecase.RecommendationView, emptyMessage string) *usecase.RecommendationOutput {
	out := &usecase.RecommendationOutput{
		Recommendations: views,
		Count:           len(views),
	}
	if len(views) == 0 {
		out.Message = emptyMessage
	}

	return out
}
