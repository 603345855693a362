// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"encoding/json"

	"gusto/internal/domain/entity"
	"gusto/internal/errors"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrUserAlreadyExists is returned when the email or username is already taken.
var ErrUserAlreadyExists = errors.New("user already exists")

// UserRepository defines the standard operations for user persistence.
// Every read returns the user with its preferred categories, ambiance and zones.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByUsername retrieves a single user by their public username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// ExistsByEmailOrUsername reports whether either identifier is taken.
	ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error)

	// List returns every user ordered by username.
	List(ctx context.Context) ([]*entity.User, error)

	// Create persists a new user with its preference relations.
	Create(ctx context.Context, user *entity.User) error

	// UpdateProfile overwrites the profile attributes and replaces the preference relations.
	UpdateProfile(ctx context.Context, userID uuid.UUID, profile entity.Profile) error

	// SavePreferences stores the opaque preferences blob as-is.
	SavePreferences(ctx context.Context, userID uuid.UUID, preferences json.RawMessage) error
}
