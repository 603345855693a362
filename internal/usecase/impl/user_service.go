package impl

import (
	"context"
	"encoding/json"
	"log/slog"

	deliverycontext "gusto/internal/delivery/context"
	"gusto/internal/domain/entity"
	domainerrors "gusto/internal/domain/errors"
	"gusto/internal/domain/repository"
	"gusto/internal/errors"
	"gusto/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	logger    *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Logger    *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		logger:    params.Logger,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListUsers returns every user ordered by username.
func (srv *userService) ListUsers(ctx context.Context) ([]*usecase.UserView, error) {
	users, err := srv.userRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return usecase.NewUserViews(users), nil
}

// GetUser returns the user registered under username.
func (srv *userService) GetUser(ctx context.Context, username string) (*usecase.UserView, error) {
	user, err := srv.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, mapUserLookupError(err)
	}

	return usecase.NewUserView(user), nil
}

// GetMe returns the authenticated user.
func (srv *userService) GetMe(ctx context.Context, userID uuid.UUID) (*usecase.UserView, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, mapUserLookupError(err)
	}

	return usecase.NewUserView(user), nil
}

// UpdateProfile applies the given fields to the profile and replaces any preference set that is present.
func (srv *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*usecase.UserView, error) {
	if input == nil || input.Empty() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("no valid fields to update")
	}
	if err := validateProfileUpdate(input); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Updating user profile", slog.Any("userID", userID))

	var updated *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		// 1. Find the user
		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			return mapUserLookupError(err)
		}

		// 2. Merge the changed fields
		profile := applyProfileUpdate(user.Profile, input)

		// 3. Save and re-read so the preference sets come back normalized
		if err := userRepo.UpdateProfile(ctx, userID, profile); err != nil {
			return errors.Wrap(err, "failed to update user profile")
		}

		updated, err = userRepo.FindByID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to reload user profile")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update user profile")
	}

	return usecase.NewUserView(updated), nil
}

// GetPreferences returns the stored preferences blob of the user.
func (srv *userService) GetPreferences(ctx context.Context, userID uuid.UUID) (*usecase.PreferencesView, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, mapUserLookupError(err)
	}

	return &usecase.PreferencesView{Preferences: user.Preferences}, nil
}

// SavePreferences stores the preferences blob, which must be a JSON object.
func (srv *userService) SavePreferences(ctx context.Context, userID uuid.UUID, preferences json.RawMessage) (*usecase.PreferencesView, error) {
	if !isJSONObject(preferences) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("preferences must be a JSON object")
	}

	if err := srv.userRepo.SavePreferences(ctx, userID, preferences); err != nil {
		return nil, mapUserLookupError(err)
	}

	srv.log(ctx).Debug("Preferences saved", slog.Any("userID", userID))

	return &usecase.PreferencesView{Preferences: preferences}, nil
}

func mapUserLookupError(err error) error {
	if errors.Is(err, repository.ErrUserNotFound) {
		return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
	}

	return errors.Wrap(err, "failed to find user")
}

func validateProfileUpdate(input *usecase.UpdateProfileInput) error {
	switch {
	case input.Budget != nil && *input.Budget < 0:
		return domainerrors.ErrValidationFailed.WithDetails("budget must not be negative")
	case input.GroupSize != nil && *input.GroupSize < 1:
		return domainerrors.ErrValidationFailed.WithDetails("group_size must be at least 1")
	case input.Age != nil && *input.Age < 0:
		return domainerrors.ErrValidationFailed.WithDetails("age must not be negative")
	}

	return nil
}

func applyProfileUpdate(p entity.Profile, input *usecase.UpdateProfileInput) entity.Profile {
	if input.Age != nil {
		p.Age = *input.Age
	}
	if input.Budget != nil {
		p.Budget = *input.Budget
	}
	if input.GroupSize != nil {
		p.GroupSize = *input.GroupSize
	}
	if input.HasPet != nil {
		p.HasPet = *input.HasPet
	}
	if input.HasChildren != nil {
		p.HasChildren = *input.HasChildren
	}
	if input.NeedsAccessibility != nil {
		p.NeedsAccessibility = *input.NeedsAccessibility
	}
	if input.WantsPromotions != nil {
		p.WantsPromotions = *input.WantsPromotions
	}
	if input.PreferredCategories != nil {
		p.PreferredCategories = input.PreferredCategories
	}
	if input.PreferredAmbiance != nil {
		p.PreferredAmbiance = input.PreferredAmbiance
	}
	if input.PreferredZones != nil {
		p.PreferredZones = input.PreferredZones
	}

	return p
}

func isJSONObject(raw json.RawMessage) bool {
	var obj map[string]any

	return len(raw) > 0 && json.Unmarshal(raw, &obj) == nil && obj != nil
}
