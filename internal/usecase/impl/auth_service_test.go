package impl

import (
	"context"
	"testing"

	"gusto/internal/domain/entity"
	domainerrors "gusto/internal/domain/errors"
	"gusto/internal/domain/repository"
	mockService "gusto/internal/mocks/service"
	"gusto/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authServiceFixtures struct {
	*txFixture
	service usecase.AuthUsecase
	hasher  *mockService.MockPasswordHasher
	tokens  *mockService.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	tx := newTxFixture(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokens := mockService.NewMockTokenService(t)

	return authServiceFixtures{
		txFixture: tx,
		hasher:    hasher,
		tokens:    tokens,
		service: NewAuthService(AuthServiceParams{
			TxManager:    tx.txManager,
			UserRepo:     tx.users,
			Hasher:       hasher,
			TokenService: tokens,
			Logger:       newDiscardLogger(),
		}),
	}
}

func validRegisterInput() *usecase.RegisterInput {
	return &usecase.RegisterInput{
		Email:               "ana@example.com",
		Username:            "ana",
		Password:            "s3cretpass",
		Budget:              ptr(25.0),
		HasPet:              true,
		PreferredCategories: []string{"Italian"},
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.hasher.On("ValidatePasswordStrength", "s3cretpass").Return(nil)
	fx.hasher.On("Hash", "s3cretpass").Return("digest", nil)
	fx.inTx()
	fx.users.On("ExistsByEmailOrUsername", ctx, "ana@example.com", "ana").Return(false, nil)
	fx.users.On("Create", ctx, mock.MatchedBy(func(u *entity.User) bool {
		return u.PasswordHash == "digest" &&
			u.Profile.GroupSize == entity.DefaultGroupSize &&
			u.Profile.Budget == 25 &&
			u.Profile.HasPet
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.User).ID = userID
	}).Return(nil)
	fx.tokens.On("GenerateToken", userID, "ana").Return("token-1", nil)

	out, err := fx.service.Register(ctx, validRegisterInput())

	require.NoError(t, err)
	assert.Equal(t, "token-1", out.Token)
	assert.Equal(t, userID, out.User.ID)
	assert.Equal(t, []string{"Italian"}, out.User.PreferredCategories)
	assert.Equal(t, []string{}, out.User.PreferredZones)
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.hasher.On("ValidatePasswordStrength", mock.Anything).Return(nil)
	fx.hasher.On("Hash", mock.Anything).Return("digest", nil)
	fx.inTx()
	fx.users.On("ExistsByEmailOrUsername", ctx, "ana@example.com", "ana").Return(true, nil)

	_, err := fx.service.Register(ctx, validRegisterInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestAuthService_Register_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*usecase.RegisterInput)
	}{
		{name: "missing email", mutate: func(in *usecase.RegisterInput) { in.Email = "  " }},
		{name: "missing username", mutate: func(in *usecase.RegisterInput) { in.Username = "" }},
		{name: "missing password", mutate: func(in *usecase.RegisterInput) { in.Password = "" }},
		{name: "missing budget", mutate: func(in *usecase.RegisterInput) { in.Budget = nil }},
		{name: "negative budget", mutate: func(in *usecase.RegisterInput) { in.Budget = ptr(-1.0) }},
		{name: "zero group size", mutate: func(in *usecase.RegisterInput) { in.GroupSize = ptr(0) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthService(t)

			input := validRegisterInput()
			tt.mutate(input)

			_, err := fx.service.Register(context.Background(), input)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestAuthService_Register_WeakPassword(t *testing.T) {
	fx := createTestAuthService(t)

	fx.hasher.On("ValidatePasswordStrength", "s3cretpass").
		Return(domainerrors.ErrPasswordStrength.WithDetails("too weak"))

	_, err := fx.service.Register(context.Background(), validRegisterInput())
	assert.ErrorIs(t, err, domainerrors.ErrPasswordStrength)
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "ana@example.com", Username: "ana", PasswordHash: "digest"}

	t.Run("success", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.users.On("FindByEmail", ctx, "ana@example.com").Return(user, nil)
		fx.hasher.On("Check", "pw", "digest").Return(true)
		fx.tokens.On("GenerateToken", user.ID, "ana").Return("token-2", nil)

		out, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ana@example.com", Password: "pw"})
		require.NoError(t, err)
		assert.Equal(t, "token-2", out.Token)
		assert.Equal(t, "ana", out.User.Username)
	})

	t.Run("unknown email", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.users.On("FindByEmail", ctx, "nobody@example.com").Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "nobody@example.com", Password: "pw"})
		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.users.On("FindByEmail", ctx, "ana@example.com").Return(user, nil)
		fx.hasher.On("Check", "bad", "digest").Return(false)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ana@example.com", Password: "bad"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})
}
