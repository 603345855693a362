package impl

import (
	"context"
	"testing"

	domainerrors "gusto/internal/domain/errors"
	"gusto/internal/errors"
	mockRepo "gusto/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestHealthService_Check(t *testing.T) {
	checker := mockRepo.NewMockHealthChecker(t)
	svc := NewHealthService(checker)

	checker.On("Ping", mock.Anything).Return(nil).Once()
	assert.NoError(t, svc.Check(context.Background()))

	checker.On("Ping", mock.Anything).Return(errors.New("connection refused")).Once()
	err := svc.Check(context.Background())
	assert.ErrorIs(t, err, domainerrors.ErrServiceUnavailable)
}
