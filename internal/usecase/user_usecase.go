package usecase

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
)

// UserUsecase defines the interface for reading and updating user profiles.
type UserUsecase interface {
	ListUsers(ctx context.Context) ([]*UserView, error)
	GetUser(ctx context.Context, username string) (*UserView, error)
	GetMe(ctx context.Context, userID uuid.UUID) (*UserView, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*UserView, error)
	GetPreferences(ctx context.Context, userID uuid.UUID) (*PreferencesView, error)
	SavePreferences(ctx context.Context, userID uuid.UUID, preferences json.RawMessage) (*PreferencesView, error)
}

// --- Input DTOs ---

// UpdateProfileInput carries the profile fields to change. Nil fields are left untouched;
// a non-nil empty list clears that preference set.
type UpdateProfileInput struct {
	Age                 *int     `json:"age,omitempty" validate:"omitempty,gte=0,lte=150"`
	Budget              *float64 `json:"budget,omitempty" validate:"omitempty,gte=0"`
	GroupSize           *int     `json:"group_size,omitempty" validate:"omitempty,gte=1"`
	HasPet              *bool    `json:"has_pet,omitempty"`
	HasChildren         *bool    `json:"has_children,omitempty"`
	NeedsAccessibility  *bool    `json:"needs_accessibility,omitempty"`
	WantsPromotions     *bool    `json:"wants_promotions,omitempty"`
	PreferredCategories []string `json:"preferred_categories,omitempty"`
	PreferredAmbiance   []string `json:"preferred_ambiance,omitempty"`
	PreferredZones      []string `json:"preferred_zones,omitempty"`
}

// Empty reports whether the input changes nothing.
func (in *UpdateProfileInput) Empty() bool {
	return in.Age == nil && in.Budget == nil && in.GroupSize == nil &&
		in.HasPet == nil && in.HasChildren == nil && in.NeedsAccessibility == nil && in.WantsPromotions == nil &&
		in.PreferredCategories == nil && in.PreferredAmbiance == nil && in.PreferredZones == nil
}
