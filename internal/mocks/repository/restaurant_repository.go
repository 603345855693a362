package repository

import (
	"context"
	"testing"

	"gusto/internal/domain/entity"
	"gusto/internal/domain/recommend"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockRestaurantRepository is a mock of repository.RestaurantRepository.
type MockRestaurantRepository struct {
	mock.Mock
}

// NewMockRestaurantRepository creates a mock that asserts its expectations on cleanup.
func NewMockRestaurantRepository(t *testing.T) *MockRestaurantRepository {
	m := &MockRestaurantRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func restaurants(ret mock.Arguments) ([]*entity.Restaurant, error) {
	rs, _ := ret.Get(0).([]*entity.Restaurant)

	return rs, ret.Error(1)
}

func (m *MockRestaurantRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error) {
	ret := m.Called(ctx, id)

	r, _ := ret.Get(0).(*entity.Restaurant)

	return r, ret.Error(1)
}

func (m *MockRestaurantRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	ret := m.Called(ctx, id)

	return ret.Bool(0), ret.Error(1)
}

func (m *MockRestaurantRepository) List(ctx context.Context) ([]*entity.Restaurant, error) {
	return restaurants(m.Called(ctx))
}

func (m *MockRestaurantRepository) Search(ctx context.Context, q string) ([]*entity.Restaurant, error) {
	return restaurants(m.Called(ctx, q))
}

func (m *MockRestaurantRepository) FindCandidates(ctx context.Context, budget float64, c recommend.Constraints) ([]*entity.Restaurant, error) {
	return restaurants(m.Called(ctx, budget, c))
}

func (m *MockRestaurantRepository) Create(ctx context.Context, restaurant *entity.Restaurant) error {
	return m.Called(ctx, restaurant).Error(0)
}

func (m *MockRestaurantRepository) ListCategories(ctx context.Context) ([]string, error) {
	ret := m.Called(ctx)

	names, _ := ret.Get(0).([]string)

	return names, ret.Error(1)
}
