// Package repository provides testify mocks of the domain repository interfaces.
package repository

import (
	"context"
	"testing"

	"gusto/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// TxFunc is the callback type passed to TransactionManager.Execute.
type TxFunc = func(repository.RepositoryFactory) error

// MockTransactionManager is a mock of repository.TransactionManager.
type MockTransactionManager struct {
	mock.Mock
}

// NewMockTransactionManager creates a mock that asserts its expectations on cleanup.
func NewMockTransactionManager(t *testing.T) *MockTransactionManager {
	m := &MockTransactionManager{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// Execute returns the configured error, or runs fn against the configured factory
// when the return value is a repository.RepositoryFactory.
func (m *MockTransactionManager) Execute(ctx context.Context, fn TxFunc) error {
	ret := m.Called(ctx, fn)

	if factory, ok := ret.Get(0).(repository.RepositoryFactory); ok {
		return fn(factory)
	}

	return ret.Error(0)
}

// ExpectExecute runs the next Execute callbacks against factory.
func (m *MockTransactionManager) ExpectExecute(factory repository.RepositoryFactory) *mock.Call {
	return m.On("Execute", mock.Anything, mock.Anything).Return(factory)
}

// MockRepositoryFactory is a mock of repository.RepositoryFactory.
type MockRepositoryFactory struct {
	mock.Mock
}

// NewMockRepositoryFactory creates a mock that asserts its expectations on cleanup.
func NewMockRepositoryFactory(t *testing.T) *MockRepositoryFactory {
	m := &MockRepositoryFactory{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockRepositoryFactory) UserRepo() repository.UserRepository {
	ret := m.Called()

	r, _ := ret.Get(0).(repository.UserRepository)

	return r
}

func (m *MockRepositoryFactory) RestaurantRepo() repository.RestaurantRepository {
	ret := m.Called()

	r, _ := ret.Get(0).(repository.RestaurantRepository)

	return r
}

func (m *MockRepositoryFactory) CommentRepo() repository.CommentRepository {
	ret := m.Called()

	r, _ := ret.Get(0).(repository.CommentRepository)

	return r
}

func (m *MockRepositoryFactory) RatingRepo() repository.RatingRepository {
	ret := m.Called()

	r, _ := ret.Get(0).(repository.RatingRepository)

	return r
}
