package impl

import (
	"context"
	"encoding/json"
	"testing"

	"gusto/internal/domain/entity"
	domainerrors "gusto/internal/domain/errors"
	"gusto/internal/domain/repository"
	"gusto/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type userServiceFixtures struct {
	*txFixture
	service usecase.UserUsecase
}

func createTestUserService(t *testing.T) userServiceFixtures {
	tx := newTxFixture(t)

	return userServiceFixtures{
		txFixture: tx,
		service: NewUserService(UserServiceParams{
			TxManager: tx.txManager,
			UserRepo:  tx.users,
			Logger:    newDiscardLogger(),
		}),
	}
}

func TestUserService_GetUser(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.users.On("FindByUsername", ctx, "ana").Return(&entity.User{Username: "ana", PasswordHash: "digest"}, nil)
	fx.users.On("FindByUsername", ctx, "ghost").Return(nil, repository.ErrUserNotFound)

	view, err := fx.service.GetUser(ctx, "ana")
	require.NoError(t, err)
	assert.Equal(t, "ana", view.Username)

	_, err = fx.service.GetUser(ctx, "ghost")
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_ListUsers_EmptyIsNotNil(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.users.On("List", ctx).Return([]*entity.User{}, nil)

	views, err := fx.service.ListUsers(ctx)
	require.NoError(t, err)
	assert.NotNil(t, views)
	assert.Empty(t, views)
}

func TestUserService_UpdateProfile_MergesFields(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	current := &entity.User{
		ID:       userID,
		Username: "ana",
		Profile: entity.Profile{
			Age:                 30,
			Budget:              20,
			GroupSize:           2,
			HasPet:              true,
			PreferredCategories: []string{"Italian"},
			PreferredZones:      []string{"Centro"},
		},
	}
	expected := entity.Profile{
		Age:                 30,
		Budget:              40,
		GroupSize:           4,
		HasPet:              false,
		PreferredCategories: []string{},
		PreferredZones:      []string{"Centro"},
	}
	reloaded := &entity.User{ID: userID, Username: "ana", Profile: expected}

	fx.inTx()
	fx.users.On("FindByID", ctx, userID).Return(current, nil).Once()
	fx.users.On("UpdateProfile", ctx, userID, expected).Return(nil)
	fx.users.On("FindByID", ctx, userID).Return(reloaded, nil).Once()

	view, err := fx.service.UpdateProfile(ctx, userID, &usecase.UpdateProfileInput{
		Budget:              ptr(40.0),
		GroupSize:           ptr(4),
		HasPet:              ptr(false),
		PreferredCategories: []string{},
	})

	require.NoError(t, err)
	assert.Equal(t, 40.0, view.Budget)
	assert.Equal(t, 4, view.GroupSize)
	assert.Empty(t, view.PreferredCategories)
	assert.Equal(t, []string{"Centro"}, view.PreferredZones)
}

func TestUserService_UpdateProfile_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		input *usecase.UpdateProfileInput
	}{
		{name: "no fields", input: &usecase.UpdateProfileInput{}},
		{name: "negative budget", input: &usecase.UpdateProfileInput{Budget: ptr(-5.0)}},
		{name: "zero group size", input: &usecase.UpdateProfileInput{GroupSize: ptr(0)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestUserService(t)

			_, err := fx.service.UpdateProfile(context.Background(), uuid.New(), tt.input)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestUserService_UpdateProfile_UnknownUser(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.inTx()
	fx.users.On("FindByID", ctx, userID).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.UpdateProfile(ctx, userID, &usecase.UpdateProfileInput{Age: ptr(31)})
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_Preferences(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()
	blob := json.RawMessage(`{"theme":"dark","notify":true}`)

	fx.users.On("SavePreferences", ctx, userID, blob).Return(nil)
	fx.users.On("FindByID", ctx, userID).Return(&entity.User{ID: userID}, nil)

	saved, err := fx.service.SavePreferences(ctx, userID, blob)
	require.NoError(t, err)
	assert.JSONEq(t, string(blob), string(saved.Preferences))

	got, err := fx.service.GetPreferences(ctx, userID)
	require.NoError(t, err)
	assert.Nil(t, got.Preferences)

	encoded, err := json.Marshal(got)
	require.NoError(t, err)
	assert.JSONEq(t, `{"preferences":null}`, string(encoded))
}

func TestUserService_SavePreferences_RequiresObject(t *testing.T) {
	fx := createTestUserService(t)

	for _, raw := range []string{``, `null`, `[1,2]`, `"text"`, `{broken`} {
		_, err := fx.service.SavePreferences(context.Background(), uuid.New(), json.RawMessage(raw))
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed, "input %q", raw)
	}
}
