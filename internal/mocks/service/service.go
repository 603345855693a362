// Package service provides testify mocks of the domain service interfaces.
package service

import (
	"context"
	"testing"
	"time"

	"gusto/internal/domain/entity"
	"gusto/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockPasswordHasher is a mock of service.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

// NewMockPasswordHasher creates a mock that asserts its expectations on cleanup.
func NewMockPasswordHasher(t *testing.T) *MockPasswordHasher {
	m := &MockPasswordHasher{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	ret := m.Called(password)

	return ret.String(0), ret.Error(1)
}

func (m *MockPasswordHasher) Check(password, hash string) bool {
	return m.Called(password, hash).Bool(0)
}

func (m *MockPasswordHasher) ValidatePasswordStrength(password string) error {
	return m.Called(password).Error(0)
}

// MockTokenService is a mock of service.TokenService.
type MockTokenService struct {
	mock.Mock
}

// NewMockTokenService creates a mock that asserts its expectations on cleanup.
func NewMockTokenService(t *testing.T) *MockTokenService {
	m := &MockTokenService{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTokenService) GenerateToken(userID uuid.UUID, username string) (string, error) {
	ret := m.Called(userID, username)

	return ret.String(0), ret.Error(1)
}

func (m *MockTokenService) ValidateToken(tokenString string) (*service.Claims, error) {
	ret := m.Called(tokenString)

	claims, _ := ret.Get(0).(*service.Claims)

	return claims, ret.Error(1)
}

// MockSummaryCache is a mock of service.SummaryCache.
type MockSummaryCache struct {
	mock.Mock
}

// NewMockSummaryCache creates a mock that asserts its expectations on cleanup.
func NewMockSummaryCache(t *testing.T) *MockSummaryCache {
	m := &MockSummaryCache{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockSummaryCache) Get(ctx context.Context, restaurantID uuid.UUID) (*entity.RatingSummary, bool) {
	ret := m.Called(ctx, restaurantID)

	summary, _ := ret.Get(0).(*entity.RatingSummary)

	return summary, ret.Bool(1)
}

func (m *MockSummaryCache) Fill(ctx context.Context, summary *entity.RatingSummary) {
	m.Called(ctx, summary)
}

func (m *MockSummaryCache) Set(ctx context.Context, summary *entity.RatingSummary) {
	m.Called(ctx, summary)
}

// MockRecommendationMetrics is a mock of service.RecommendationMetrics.
type MockRecommendationMetrics struct {
	mock.Mock
}

// NewMockRecommendationMetrics creates a mock that asserts its expectations on cleanup.
func NewMockRecommendationMetrics(t *testing.T) *MockRecommendationMetrics {
	m := &MockRecommendationMetrics{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockRecommendationMetrics) ObserveRecommendation(mode string, candidates, results int, elapsed time.Duration) {
	m.Called(mode, candidates, results, elapsed)
}
