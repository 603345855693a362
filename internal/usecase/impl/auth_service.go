// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "gusto/internal/delivery/context"
	"gusto/internal/domain/entity"
	domainerrors "gusto/internal/domain/errors"
	"gusto/internal/domain/repository"
	"gusto/internal/domain/service"
	"gusto/internal/errors"
	"gusto/internal/usecase"

	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register validates the input, stores the account and issues its first token.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	email := strings.TrimSpace(input.Email)
	username := strings.TrimSpace(input.Username)

	if err := validateRegistration(email, username, input); err != nil {
		return nil, err
	}

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during registration", slog.String("email", email))

		return nil, err
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	groupSize := entity.DefaultGroupSize
	if input.GroupSize != nil {
		groupSize = *input.GroupSize
	}

	newUser := &entity.User{
		Email:        email,
		Username:     username,
		PasswordHash: hashedPassword,
		Profile: entity.Profile{
			Age:                 input.Age,
			Budget:              *input.Budget,
			GroupSize:           groupSize,
			HasPet:              input.HasPet,
			HasChildren:         input.HasChildren,
			NeedsAccessibility:  input.NeedsAccessibility,
			WantsPromotions:     input.WantsPromotions,
			PreferredCategories: input.PreferredCategories,
			PreferredAmbiance:   input.PreferredAmbiance,
			PreferredZones:      input.PreferredZones,
		},
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		// 1. Reject taken identifiers
		exists, err := userRepo.ExistsByEmailOrUsername(ctx, email, username)
		if err != nil {
			return errors.Wrap(err, "failed to check existing user")
		}
		if exists {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email or username already registered")
		}

		// 2. Persist the account with its preference relations
		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to register user")
	}

	token, err := srv.tokenService.GenerateToken(newUser.ID, newUser.Username)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate token")
	}

	srv.log(ctx).Info("User registered", slog.Any("userID", newUser.ID))

	return &usecase.AuthOutput{User: usecase.NewUserView(newUser), Token: token}, nil
}

// Login verifies the password of the account registered under the email.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" || input.Password == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("email and password are required")
	}

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "login with unknown email")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Password mismatch on login", slog.Any("userID", user.ID))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch")
	}

	token, err := srv.tokenService.GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate token")
	}

	srv.log(ctx).Debug("User logged in", slog.Any("userID", user.ID))

	return &usecase.AuthOutput{User: usecase.NewUserView(user), Token: token}, nil
}

func validateRegistration(email, username string, input *usecase.RegisterInput) error {
	switch {
	case email == "" || username == "" || input.Password == "":
		return domainerrors.ErrValidationFailed.WithDetails("email, username and password are required")
	case input.Budget == nil:
		return domainerrors.ErrValidationFailed.WithDetails("budget is required")
	case *input.Budget < 0:
		return domainerrors.ErrValidationFailed.WithDetails("budget must not be negative")
	case input.Age < 0:
		return domainerrors.ErrValidationFailed.WithDetails("age must not be negative")
	case input.GroupSize != nil && *input.GroupSize < 1:
		return domainerrors.ErrValidationFailed.WithDetails("group_size must be at least 1")
	}

	return nil
}
