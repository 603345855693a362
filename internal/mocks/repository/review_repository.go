package repository

import (
	"context"
	"testing"

	"gusto/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockCommentRepository is a mock of repository.CommentRepository.
type MockCommentRepository struct {
	mock.Mock
}

// NewMockCommentRepository creates a mock that asserts its expectations on cleanup.
func NewMockCommentRepository(t *testing.T) *MockCommentRepository {
	m := &MockCommentRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	return m.Called(ctx, comment).Error(0)
}

func (m *MockCommentRepository) ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*entity.Comment, error) {
	ret := m.Called(ctx, restaurantID)

	comments, _ := ret.Get(0).([]*entity.Comment)

	return comments, ret.Error(1)
}

// MockRatingRepository is a mock of repository.RatingRepository.
type MockRatingRepository struct {
	mock.Mock
}

// NewMockRatingRepository creates a mock that asserts its expectations on cleanup.
func NewMockRatingRepository(t *testing.T) *MockRatingRepository {
	m := &MockRatingRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockRatingRepository) Upsert(ctx context.Context, rating *entity.Rating) error {
	return m.Called(ctx, rating).Error(0)
}

func (m *MockRatingRepository) Aggregate(ctx context.Context, restaurantID uuid.UUID) (float64, int64, error) {
	ret := m.Called(ctx, restaurantID)

	avg, _ := ret.Get(0).(float64)
	count, _ := ret.Get(1).(int64)

	return avg, count, ret.Error(2)
}

// MockHealthChecker is a mock of repository.HealthChecker.
type MockHealthChecker struct {
	mock.Mock
}

// NewMockHealthChecker creates a mock that asserts its expectations on cleanup.
func NewMockHealthChecker(t *testing.T) *MockHealthChecker {
	m := &MockHealthChecker{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockHealthChecker) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
