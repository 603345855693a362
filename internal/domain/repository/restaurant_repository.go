package repository

import (
	"context"

	"gusto/internal/domain/entity"
	"gusto/internal/domain/recommend"
	"gusto/internal/errors"

	"github.com/google/uuid"
)

// ErrRestaurantNotFound is returned when a restaurant id matches no record.
var ErrRestaurantNotFound = errors.New("restaurant not found")

// RestaurantRepository defines persistence for restaurants and their taxonomy.
type RestaurantRepository interface {
	// FindByID retrieves a restaurant with its categories, ambiance and zone.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error)

	// Exists reports whether a restaurant with id exists.
	Exists(ctx context.Context, id uuid.UUID) (bool, error)

	// List returns every restaurant ordered by name.
	List(ctx context.Context) ([]*entity.Restaurant, error)

	// Search matches q case-insensitively against the name or any category name.
	Search(ctx context.Context, q string) ([]*entity.Restaurant, error)

	// FindCandidates returns the restaurants priced within budget that satisfy c.
	FindCandidates(ctx context.Context, budget float64, c recommend.Constraints) ([]*entity.Restaurant, error)

	// Create persists a restaurant, creating referenced taxonomy values on first use.
	Create(ctx context.Context, restaurant *entity.Restaurant) error

	// ListCategories returns the distinct category names in alphabetical order.
	ListCategories(ctx context.Context) ([]string, error)
}
