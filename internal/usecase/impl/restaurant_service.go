package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "gusto/internal/delivery/context"
	"gusto/internal/domain/entity"
	domainerrors "gusto/internal/domain/errors"
	"gusto/internal/domain/repository"
	"gusto/internal/errors"
	"gusto/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// restaurantService implements the RestaurantUsecase interface.
type restaurantService struct {
	restaurantRepo repository.RestaurantRepository
	logger         *slog.Logger
}

// RestaurantServiceParams holds dependencies for RestaurantService, injected by Fx.
type RestaurantServiceParams struct {
	fx.In

	RestaurantRepo repository.RestaurantRepository
	Logger         *slog.Logger
}

// NewRestaurantService is the constructor for restaurantService.
func NewRestaurantService(params RestaurantServiceParams) usecase.RestaurantUsecase {
	return &restaurantService{
		restaurantRepo: params.RestaurantRepo,
		logger:         params.Logger,
	}
}

func (srv *restaurantService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateRestaurant adds a restaurant, filling omitted attributes with the catalogue defaults.
func (srv *restaurantService) CreateRestaurant(ctx context.Context, input *usecase.CreateRestaurantInput) (*usecase.RestaurantView, error) {
	restaurant, err := buildRestaurant(input)
	if err != nil {
		return nil, err
	}

	if err := srv.restaurantRepo.Create(ctx, restaurant); err != nil {
		srv.log(ctx).Error("Failed to create restaurant", slog.String("name", restaurant.Name), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create restaurant")
	}

	srv.log(ctx).Info("Restaurant created", slog.Any("restaurantID", restaurant.ID))

	return usecase.NewRestaurantView(restaurant), nil
}

// ListRestaurants returns every restaurant ordered by name.
func (srv *restaurantService) ListRestaurants(ctx context.Context) ([]*usecase.RestaurantView, error) {
	restaurants, err := srv.restaurantRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list restaurants")
	}

	return usecase.NewRestaurantViews(restaurants), nil
}

// GetRestaurant returns the restaurant with id.
func (srv *restaurantService) GetRestaurant(ctx context.Context, id uuid.UUID) (*usecase.RestaurantView, error) {
	restaurant, err := srv.restaurantRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRestaurantLookupError(err)
	}

	return usecase.NewRestaurantView(restaurant), nil
}

// SearchRestaurants matches q against restaurant and category names.
func (srv *restaurantService) SearchRestaurants(ctx context.Context, q string) ([]*usecase.RestaurantView, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("search query must not be empty")
	}

	restaurants, err := srv.restaurantRepo.Search(ctx, q)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search restaurants")
	}

	return usecase.NewRestaurantViews(restaurants), nil
}

// ListCategories returns every known category name.
func (srv *restaurantService) ListCategories(ctx context.Context) ([]string, error) {
	categories, err := srv.restaurantRepo.ListCategories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

func mapRestaurantLookupError(err error) error {
	if errors.Is(err, repository.ErrRestaurantNotFound) {
		return errors.Wrap(domainerrors.ErrRestaurantNotFound, "restaurant not found")
	}

	return errors.Wrap(err, "failed to find restaurant")
}

func buildRestaurant(input *usecase.CreateRestaurantInput) (*entity.Restaurant, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name is required")
	}
	if input.Price == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("price is required")
	}
	if *input.Price < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("price must not be negative")
	}

	restaurant := &entity.Restaurant{
		Name:         name,
		Price:        *input.Price,
		Capacity:     entity.DefaultCapacity,
		ServiceLevel: entity.DefaultServiceLevel,
		WaitTime:     entity.DefaultWaitTimeMinutes,
		Amenities: entity.Amenities{
			PetFriendly:         input.PetFriendly,
			KidsGames:           input.KidsGames,
			Accessible:          input.Accessible,
			Promotions:          input.Promotions,
			AcceptsReservations: entity.DefaultAcceptsReservations,
		},
		Categories:   input.Categories,
		Ambiance:     input.Ambiance,
		Zone:         strings.TrimSpace(input.Zone),
		Address:      input.Address,
		Phone:        input.Phone,
		OpeningHours: input.OpeningHours,
		HasTerrace:   input.HasTerrace,
	}

	if input.Capacity != nil {
		if *input.Capacity < 1 {
			return nil, domainerrors.ErrValidationFailed.WithDetails("capacity must be at least 1")
		}
		restaurant.Capacity = *input.Capacity
	}
	if input.ServiceLevel != nil {
		if *input.ServiceLevel < entity.MinServiceLevel || *input.ServiceLevel > entity.MaxServiceLevel {
			return nil, domainerrors.ErrValidationFailed.WithDetails("service_level must be between 1 and 5")
		}
		restaurant.ServiceLevel = *input.ServiceLevel
	}
	if input.WaitTime != nil {
		if *input.WaitTime < 0 {
			return nil, domainerrors.ErrValidationFailed.WithDetails("wait_time must not be negative")
		}
		restaurant.WaitTime = *input.WaitTime
	}
	if input.AcceptsReservations != nil {
		restaurant.Amenities.AcceptsReservations = *input.AcceptsReservations
	}

	return restaurant, nil
}
