// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// DefaultGroupSize is applied when a user registers without a party size.
const DefaultGroupSize = 2

// User is a diner account together with the profile the recommender reads.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email        string    // Login identifier, unique across users.
	Username     string    // Public display name, unique across users.
	PasswordHash string    // bcrypt digest of the password.
	Profile      Profile   // Attributes and preferences used for scoring.

	// Preferences is an opaque JSON object owned by the client. Nil when never saved.
	Preferences json.RawMessage

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Profile holds the attributes and preference relations of a user.
type Profile struct {
	Age                 int
	Budget              float64 // Maximum acceptable average price.
	GroupSize           int     // Number of diners, at least 1.
	HasPet              bool
	HasChildren         bool
	NeedsAccessibility  bool
	WantsPromotions     bool
	PreferredCategories []string
	PreferredAmbiance   []string
	PreferredZones      []string
}
