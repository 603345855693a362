package usecase

import "context"

// HealthUsecase reports whether the service can reach its datastore.
type HealthUsecase interface {
	Check(ctx context.Context) error
}
