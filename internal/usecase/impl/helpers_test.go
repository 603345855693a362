package impl

import (
	"io"
	"log/slog"
	"testing"

	mockRepo "gusto/internal/mocks/repository"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// txFixture wires a transaction manager whose callbacks run against mock repositories.
type txFixture struct {
	txManager   *mockRepo.MockTransactionManager
	factory     *mockRepo.MockRepositoryFactory
	users       *mockRepo.MockUserRepository
	restaurants *mockRepo.MockRestaurantRepository
	comments    *mockRepo.MockCommentRepository
	ratings     *mockRepo.MockRatingRepository
}

func newTxFixture(t *testing.T) *txFixture {
	t.Helper()

	f := &txFixture{
		txManager:   mockRepo.NewMockTransactionManager(t),
		factory:     &mockRepo.MockRepositoryFactory{},
		users:       mockRepo.NewMockUserRepository(t),
		restaurants: mockRepo.NewMockRestaurantRepository(t),
		comments:    mockRepo.NewMockCommentRepository(t),
		ratings:     mockRepo.NewMockRatingRepository(t),
	}
	f.factory.On("UserRepo").Return(f.users).Maybe()
	f.factory.On("RestaurantRepo").Return(f.restaurants).Maybe()
	f.factory.On("CommentRepo").Return(f.comments).Maybe()
	f.factory.On("RatingRepo").Return(f.ratings).Maybe()

	return f
}

// inTx makes the next Execute call run its callback against the mock repositories.
func (f *txFixture) inTx() {
	f.txManager.ExpectExecute(f.factory).Once()
}

func ptr[T any](v T) *T {
	return &v
}
