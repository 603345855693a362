package impl

import (
	"context"
	"time"

	domainerrors "gusto/internal/domain/errors"
	"gusto/internal/domain/repository"
	"gusto/internal/errors"
	"gusto/internal/usecase"
)

const healthCheckTimeout = 2 * time.Second

type healthService struct {
	checker repository.HealthChecker
}

// NewHealthService is the constructor for healthService.
func NewHealthService(checker repository.HealthChecker) usecase.HealthUsecase {
	return &healthService{checker: checker}
}

// Check pings the datastore within healthCheckTimeout.
func (srv *healthService) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	if err := srv.checker.Ping(ctx); err != nil {
		return errors.Wrap(domainerrors.ErrServiceUnavailable, err.Error())
	}

	return nil
}
