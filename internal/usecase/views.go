// Package usecase contains the application-specific business rules.
package usecase

import (
	"encoding/json"
	"time"

	"gusto/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Output DTOs ---

// UserView is the public representation of a user and its profile.
type UserView struct {
	ID                  uuid.UUID `json:"id"`
	Email               string    `json:"email"`
	Username            string    `json:"username"`
	Age                 int       `json:"age"`
	Budget              float64   `json:"budget"`
	GroupSize           int       `json:"group_size"`
	HasPet              bool      `json:"has_pet"`
	HasChildren         bool      `json:"has_children"`
	NeedsAccessibility  bool      `json:"needs_accessibility"`
	WantsPromotions     bool      `json:"wants_promotions"`
	PreferredCategories []string  `json:"preferred_categories"`
	PreferredAmbiance   []string  `json:"preferred_ambiance"`
	PreferredZones      []string  `json:"preferred_zones"`
	CreatedAt           time.Time `json:"created_at"`
}

// NewUserView maps a user entity to its view. The password digest never leaves the domain.
func NewUserView(user *entity.User) *UserView {
	p := user.Profile

	return &UserView{
		ID:                  user.ID,
		Email:               user.Email,
		Username:            user.Username,
		Age:                 p.Age,
		Budget:              p.Budget,
		GroupSize:           p.GroupSize,
		HasPet:              p.HasPet,
		HasChildren:         p.HasChildren,
		NeedsAccessibility:  p.NeedsAccessibility,
		WantsPromotions:     p.WantsPromotions,
		PreferredCategories: orEmpty(p.PreferredCategories),
		PreferredAmbiance:   orEmpty(p.PreferredAmbiance),
		PreferredZones:      orEmpty(p.PreferredZones),
		CreatedAt:           user.CreatedAt,
	}
}

// NewUserViews maps a list of users, never returning nil.
func NewUserViews(users []*entity.User) []*UserView {
	views := make([]*UserView, 0, len(users))
	for _, u := range users {
		views = append(views, NewUserView(u))
	}

	return views
}

// RestaurantView is the detailed representation of a restaurant.
type RestaurantView struct {
	ID           uuid.UUID        `json:"id"`
	Name         string           `json:"name"`
	Price        float64          `json:"price"`
	Capacity     int              `json:"capacity"`
	ServiceLevel int              `json:"service_level"`
	WaitTime     int              `json:"wait_time"`
	Amenities    entity.Amenities `json:"amenities"`
	Categories   []string         `json:"categories"`
	Ambiance     []string         `json:"ambiance"`
	Zone         *string          `json:"zone"`
	Address      string           `json:"address,omitempty"`
	Phone        string           `json:"phone,omitempty"`
	OpeningHours string           `json:"opening_hours,omitempty"`
	HasTerrace   bool             `json:"has_terrace"`
	CreatedAt    time.Time        `json:"created_at"`
}

// NewRestaurantView maps a restaurant entity to its view.
func NewRestaurantView(r *entity.Restaurant) *RestaurantView {
	view := &RestaurantView{
		ID:           r.ID,
		Name:         r.Name,
		Price:        r.Price,
		Capacity:     r.Capacity,
		ServiceLevel: r.ServiceLevel,
		WaitTime:     r.WaitTime,
		Amenities:    r.Amenities,
		Categories:   orEmpty(r.Categories),
		Ambiance:     orEmpty(r.Ambiance),
		Address:      r.Address,
		Phone:        r.Phone,
		OpeningHours: r.OpeningHours,
		HasTerrace:   r.HasTerrace,
		CreatedAt:    r.CreatedAt,
	}
	if r.Zone != "" {
		zone := r.Zone
		view.Zone = &zone
	}

	return view
}

// NewRestaurantViews maps a list of restaurants, never returning nil.
func NewRestaurantViews(restaurants []*entity.Restaurant) []*RestaurantView {
	views := make([]*RestaurantView, 0, len(restaurants))
	for _, r := range restaurants {
		views = append(views, NewRestaurantView(r))
	}

	return views
}

// CommentView is a comment with its author name.
type CommentView struct {
	ID           uuid.UUID `json:"id"`
	RestaurantID uuid.UUID `json:"restaurant_id"`
	UserID       uuid.UUID `json:"user_id"`
	Username     string    `json:"username"`
	Text         string    `json:"text"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewCommentView maps a comment entity to its view.
func NewCommentView(c *entity.Comment) *CommentView {
	return &CommentView{
		ID:           c.ID,
		RestaurantID: c.RestaurantID,
		UserID:       c.UserID,
		Username:     c.Username,
		Text:         c.Text,
		CreatedAt:    c.CreatedAt,
	}
}

// RecommendationView is one entry of a recommendation list.
type RecommendationView struct {
	RestaurantID uuid.UUID `json:"restaurant_id"`
	Name         string    `json:"name"`
	Price        float64   `json:"price"`
	// Score is nil for advanced search, which does not score candidates.
	Score        *int     `json:"score,omitempty"`
	ServiceLevel int      `json:"service_level"`
	WaitTime     int      `json:"wait_time"`
	PetFriendly  bool     `json:"pet_friendly"`
	KidsGames    bool     `json:"kids_games"`
	Accessible   bool     `json:"accessible"`
	Promotions   bool     `json:"promotions"`
	Reservations bool     `json:"accepts_reservations"`
	Categories   []string `json:"categories"`
	Ambiance     []string `json:"ambiance"`
	Zones        []string `json:"zones"`
}

// NewRecommendationView maps a restaurant to a recommendation entry. A nil score omits it.
func NewRecommendationView(r *entity.Restaurant, score *int) RecommendationView {
	return RecommendationView{
		RestaurantID: r.ID,
		Name:         r.Name,
		Price:        r.Price,
		Score:        score,
		ServiceLevel: r.ServiceLevel,
		WaitTime:     r.WaitTime,
		PetFriendly:  r.Amenities.PetFriendly,
		KidsGames:    r.Amenities.KidsGames,
		Accessible:   r.Amenities.Accessible,
		Promotions:   r.Amenities.Promotions,
		Reservations: r.Amenities.AcceptsReservations,
		Categories:   orEmpty(r.Categories),
		Ambiance:     orEmpty(r.Ambiance),
		Zones:        r.Zones(),
	}
}

// RecommendationOutput is the result of a recommendation request.
type RecommendationOutput struct {
	Recommendations []RecommendationView `json:"recommendations"`
	Count           int                  `json:"count"`
	// Message explains an empty result; empty otherwise.
	Message string `json:"message,omitempty"`
}

// PreferencesView wraps the opaque preferences blob. Preferences is JSON null when never saved.
type PreferencesView struct {
	Preferences json.RawMessage `json:"preferences"`
}

func orEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}

	return values
}
