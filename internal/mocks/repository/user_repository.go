package repository

import (
	"context"
	"encoding/json"
	"testing"

	"gusto/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

// NewMockUserRepository creates a mock that asserts its expectations on cleanup.
func NewMockUserRepository(t *testing.T) *MockUserRepository {
	m := &MockUserRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockUserRepository) user(ret mock.Arguments) (*entity.User, error) {
	u, _ := ret.Get(0).(*entity.User)

	return u, ret.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return m.user(m.Called(ctx, id))
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return m.user(m.Called(ctx, email))
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return m.user(m.Called(ctx, username))
}

func (m *MockUserRepository) ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error) {
	ret := m.Called(ctx, email, username)

	return ret.Bool(0), ret.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]*entity.User, error) {
	ret := m.Called(ctx)

	users, _ := ret.Get(0).([]*entity.User)

	return users, ret.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) UpdateProfile(ctx context.Context, userID uuid.UUID, profile entity.Profile) error {
	return m.Called(ctx, userID, profile).Error(0)
}

func (m *MockUserRepository) SavePreferences(ctx context.Context, userID uuid.UUID, preferences json.RawMessage) error {
	return m.Called(ctx, userID, preferences).Error(0)
}
