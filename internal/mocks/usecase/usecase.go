// Package usecase provides testify mocks of the application use cases.
package usecase

import (
	"context"
	"encoding/json"
	"testing"

	"gusto/internal/domain/entity"
	"gusto/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func expect[T any](t *testing.T, m T, base *mock.Mock) T {
	base.Test(t)
	t.Cleanup(func() { base.AssertExpectations(t) })

	return m
}

// MockAuthUsecase is a mock of usecase.AuthUsecase.
type MockAuthUsecase struct{ mock.Mock }

// NewMockAuthUsecase creates a mock that asserts its expectations on cleanup.
func NewMockAuthUsecase(t *testing.T) *MockAuthUsecase {
	m := &MockAuthUsecase{}

	return expect(t, m, &m.Mock)
}

func (m *MockAuthUsecase) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	ret := m.Called(ctx, input)
	out, _ := ret.Get(0).(*usecase.AuthOutput)

	return out, ret.Error(1)
}

func (m *MockAuthUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	ret := m.Called(ctx, input)
	out, _ := ret.Get(0).(*usecase.AuthOutput)

	return out, ret.Error(1)
}

// MockUserUsecase is a mock of usecase.UserUsecase.
type MockUserUsecase struct{ mock.Mock }

// NewMockUserUsecase creates a mock that asserts its expectations on cleanup.
func NewMockUserUsecase(t *testing.T) *MockUserUsecase {
	m := &MockUserUsecase{}

	return expect(t, m, &m.Mock)
}

func userView(ret mock.Arguments) (*usecase.UserView, error) {
	out, _ := ret.Get(0).(*usecase.UserView)

	return out, ret.Error(1)
}

func preferencesView(ret mock.Arguments) (*usecase.PreferencesView, error) {
	out, _ := ret.Get(0).(*usecase.PreferencesView)

	return out, ret.Error(1)
}

func (m *MockUserUsecase) ListUsers(ctx context.Context) ([]*usecase.UserView, error) {
	ret := m.Called(ctx)
	out, _ := ret.Get(0).([]*usecase.UserView)

	return out, ret.Error(1)
}

func (m *MockUserUsecase) GetUser(ctx context.Context, username string) (*usecase.UserView, error) {
	return userView(m.Called(ctx, username))
}

func (m *MockUserUsecase) GetMe(ctx context.Context, userID uuid.UUID) (*usecase.UserView, error) {
	return userView(m.Called(ctx, userID))
}

func (m *MockUserUsecase) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*usecase.UserView, error) {
	return userView(m.Called(ctx, userID, input))
}

func (m *MockUserUsecase) GetPreferences(ctx context.Context, userID uuid.UUID) (*usecase.PreferencesView, error) {
	return preferencesView(m.Called(ctx, userID))
}

func (m *MockUserUsecase) SavePreferences(ctx context.Context, userID uuid.UUID, preferences json.RawMessage) (*usecase.PreferencesView, error) {
	return preferencesView(m.Called(ctx, userID, preferences))
}

// MockRestaurantUsecase is a mock of usecase.RestaurantUsecase.
type MockRestaurantUsecase struct{ mock.Mock }

// NewMockRestaurantUsecase creates a mock that asserts its expectations on cleanup.
func NewMockRestaurantUsecase(t *testing.T) *MockRestaurantUsecase {
	m := &MockRestaurantUsecase{}

	return expect(t, m, &m.Mock)
}

func restaurantViews(ret mock.Arguments) ([]*usecase.RestaurantView, error) {
	out, _ := ret.Get(0).([]*usecase.RestaurantView)

	return out, ret.Error(1)
}

func restaurantView(ret mock.Arguments) (*usecase.RestaurantView, error) {
	out, _ := ret.Get(0).(*usecase.RestaurantView)

	return out, ret.Error(1)
}

func (m *MockRestaurantUsecase) CreateRestaurant(ctx context.Context, input *usecase.CreateRestaurantInput) (*usecase.RestaurantView, error) {
	return restaurantView(m.Called(ctx, input))
}

func (m *MockRestaurantUsecase) ListRestaurants(ctx context.Context) ([]*usecase.RestaurantView, error) {
	return restaurantViews(m.Called(ctx))
}

func (m *MockRestaurantUsecase) GetRestaurant(ctx context.Context, id uuid.UUID) (*usecase.RestaurantView, error) {
	return restaurantView(m.Called(ctx, id))
}

func (m *MockRestaurantUsecase) SearchRestaurants(ctx context.Context, q string) ([]*usecase.RestaurantView, error) {
	return restaurantViews(m.Called(ctx, q))
}

func (m *MockRestaurantUsecase) ListCategories(ctx context.Context) ([]string, error) {
	ret := m.Called(ctx)
	out, _ := ret.Get(0).([]string)

	return out, ret.Error(1)
}

// MockReviewUsecase is a mock of usecase.ReviewUsecase.
type MockReviewUsecase struct{ mock.Mock }

// NewMockReviewUsecase creates a mock that asserts its expectations on cleanup.
func NewMockReviewUsecase(t *testing.T) *MockReviewUsecase {
	m := &MockReviewUsecase{}

	return expect(t, m, &m.Mock)
}

func summary(ret mock.Arguments) (*entity.RatingSummary, error) {
	out, _ := ret.Get(0).(*entity.RatingSummary)

	return out, ret.Error(1)
}

func (m *MockReviewUsecase) AddComment(ctx context.Context, userID, restaurantID uuid.UUID, input *usecase.AddCommentInput) (*usecase.CommentView, error) {
	ret := m.Called(ctx, userID, restaurantID, input)
	out, _ := ret.Get(0).(*usecase.CommentView)

	return out, ret.Error(1)
}

func (m *MockReviewUsecase) ListComments(ctx context.Context, restaurantID uuid.UUID) ([]*usecase.CommentView, error) {
	ret := m.Called(ctx, restaurantID)
	out, _ := ret.Get(0).([]*usecase.CommentView)

	return out, ret.Error(1)
}

func (m *MockReviewUsecase) Rate(ctx context.Context, userID, restaurantID uuid.UUID, input *usecase.RateInput) (*entity.RatingSummary, error) {
	return summary(m.Called(ctx, userID, restaurantID, input))
}

func (m *MockReviewUsecase) RatingSummary(ctx context.Context, restaurantID uuid.UUID) (*entity.RatingSummary, error) {
	return summary(m.Called(ctx, restaurantID))
}

// MockRecommendationUsecase is a mock of usecase.RecommendationUsecase.
type MockRecommendationUsecase struct{ mock.Mock }

// NewMockRecommendationUsecase creates a mock that asserts its expectations on cleanup.
func NewMockRecommendationUsecase(t *testing.T) *MockRecommendationUsecase {
	m := &MockRecommendationUsecase{}

	return expect(t, m, &m.Mock)
}

func recommendations(ret mock.Arguments) (*usecase.RecommendationOutput, error) {
	out, _ := ret.Get(0).(*usecase.RecommendationOutput)

	return out, ret.Error(1)
}

func (m *MockRecommendationUsecase) RecommendForUser(ctx context.Context, username string) (*usecase.RecommendationOutput, error) {
	return recommendations(m.Called(ctx, username))
}

func (m *MockRecommendationUsecase) RecommendForUserID(ctx context.Context, userID uuid.UUID) (*usecase.RecommendationOutput, error) {
	return recommendations(m.Called(ctx, userID))
}

func (m *MockRecommendationUsecase) RecommendAdvanced(ctx context.Context, input *usecase.AdvancedSearchInput) (*usecase.RecommendationOutput, error) {
	return recommendations(m.Called(ctx, input))
}

// MockHealthUsecase is a mock of usecase.HealthUsecase.
type MockHealthUsecase struct{ mock.Mock }

// NewMockHealthUsecase creates a mock that asserts its expectations on cleanup.
func NewMockHealthUsecase(t *testing.T) *MockHealthUsecase {
	m := &MockHealthUsecase{}

	return expect(t, m, &m.Mock)
}

func (m *MockHealthUsecase) Check(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
