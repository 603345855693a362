package usecase

import (
	"context"

	"github.com/google/uuid"
)

// RestaurantUsecase defines the interface for the restaurant catalogue.
type RestaurantUsecase interface {
	CreateRestaurant(ctx context.Context, input *CreateRestaurantInput) (*RestaurantView, error)
	ListRestaurants(ctx context.Context) ([]*RestaurantView, error)
	GetRestaurant(ctx context.Context, id uuid.UUID) (*RestaurantView, error)
	SearchRestaurants(ctx context.Context, q string) ([]*RestaurantView, error)
	ListCategories(ctx context.Context) ([]string, error)
}

// --- Input DTOs ---

// CreateRestaurantInput defines the data required to add a restaurant.
// Nil optional fields take the catalogue defaults.
type CreateRestaurantInput struct {
	Name  string   `json:"name" validate:"required,max=200"`
	Price *float64 `json:"price" validate:"required,gte=0"`

	Capacity            *int  `json:"capacity,omitempty" validate:"omitempty,gte=1"`
	ServiceLevel        *int  `json:"service_level,omitempty" validate:"omitempty,min=1,max=5"`
	WaitTime            *int  `json:"wait_time,omitempty" validate:"omitempty,gte=0"`
	AcceptsReservations *bool `json:"accepts_reservations,omitempty"`
	PetFriendly         bool  `json:"pet_friendly"`
	KidsGames           bool  `json:"kids_games"`
	Accessible          bool  `json:"accessible"`
	Promotions          bool  `json:"promotions"`
	HasTerrace          bool  `json:"has_terrace"`

	Categories   []string `json:"categories,omitempty"`
	Ambiance     []string `json:"ambiance,omitempty"`
	Zone         string   `json:"zone,omitempty"`
	Address      string   `json:"address,omitempty"`
	Phone        string   `json:"phone,omitempty"`
	OpeningHours string   `json:"opening_hours,omitempty"`
}
