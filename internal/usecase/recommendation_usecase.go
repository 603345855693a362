package usecase

import (
	"context"

	"gusto/internal/domain/recommend"

	"github.com/google/uuid"
)

// DefaultAdvancedBudget applies when an advanced search names no budget.
const DefaultAdvancedBudget = 1000.0

// RecommendationUsecase defines the interface for restaurant recommendations.
type RecommendationUsecase interface {
	// RecommendForUser scores restaurants against the profile of the named user.
	RecommendForUser(ctx context.Context, username string) (*RecommendationOutput, error)

	// RecommendForUserID scores restaurants against the profile of the given user.
	RecommendForUserID(ctx context.Context, userID uuid.UUID) (*RecommendationOutput, error)

	// RecommendAdvanced filters restaurants by explicit criteria without scoring.
	RecommendAdvanced(ctx context.Context, input *AdvancedSearchInput) (*RecommendationOutput, error)
}

// --- Input DTOs ---

// AdvancedSearchInput defines explicit search criteria. Amenity flags only constrain when true.
type AdvancedSearchInput struct {
	Budget          *float64 `json:"budget,omitempty" validate:"omitempty,gte=0"`
	Zone            string   `json:"zone,omitempty"`
	Categories      []string `json:"categories,omitempty"`
	PetFriendly     bool     `json:"pet_friendly"`
	KidsGames       bool     `json:"kids_games"`
	Accessible      bool     `json:"accessible"`
	Promotions      bool     `json:"promotions"`
	MinServiceLevel int      `json:"min_service_level,omitempty" validate:"omitempty,min=1,max=5"`
}

// BudgetOrDefault returns the requested budget or DefaultAdvancedBudget.
func (in *AdvancedSearchInput) BudgetOrDefault() float64 {
	if in.Budget == nil {
		return DefaultAdvancedBudget
	}

	return *in.Budget
}

// Constraints converts the criteria to candidate filter constraints.
func (in *AdvancedSearchInput) Constraints() recommend.Constraints {
	return recommend.Constraints{
		Zone:            in.Zone,
		Categories:      in.Categories,
		PetFriendly:     in.PetFriendly,
		KidsGames:       in.KidsGames,
		Accessible:      in.Accessible,
		Promotions:      in.Promotions,
		MinServiceLevel: in.MinServiceLevel,
	}
}
