package usecase

import "context"

// AuthUsecase defines the interface for account registration and login.
type AuthUsecase interface {
	// Register creates an account and returns it with an access token.
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)

	// Login verifies the credentials and returns the account with an access token.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
}

// --- Input DTOs ---

// RegisterInput defines the data required to register a user.
type RegisterInput struct {
	Email    string   `json:"email" validate:"required,email"`
	Username string   `json:"username" validate:"required,min=3,max=50"`
	Password string   `json:"password" validate:"required"`
	Budget   *float64 `json:"budget" validate:"required,gte=0"`

	Age                 int      `json:"age" validate:"gte=0,lte=150"`
	GroupSize           *int     `json:"group_size,omitempty" validate:"omitempty,gte=1"`
	HasPet              bool     `json:"has_pet"`
	HasChildren         bool     `json:"has_children"`
	NeedsAccessibility  bool     `json:"needs_accessibility"`
	WantsPromotions     bool     `json:"wants_promotions"`
	PreferredCategories []string `json:"preferred_categories,omitempty"`
	PreferredAmbiance   []string `json:"preferred_ambiance,omitempty"`
	PreferredZones      []string `json:"preferred_zones,omitempty"`
}

// LoginInput defines the credentials of a login attempt.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// AuthOutput is returned by a successful registration or login.
type AuthOutput struct {
	User  *UserView `json:"user"`
	Token string    `json:"token"`
}
