package postgres

import (
	"context"
	"encoding/json"

	"gusto/internal/domain/entity"
	domainerrors "gusto/internal/domain/errors"
	"gusto/internal/domain/repository"
	"gusto/internal/errors"
	"gusto/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (repo *userRepository) withPreferences(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Preload("PreferredCategories", orderByName).
		Preload("PreferredAmbiances", orderByName).
		Preload("PreferredZones", orderByName)
}

func orderByName(db *gorm.DB) *gorm.DB {
	return db.Order("name")
}

func (repo *userRepository) findOne(ctx context.Context, query string, arg any) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.withPreferences(ctx).Where(query, arg).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user")
	}

	return toUserDomain(&userM), nil
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.findOne(ctx, "email = ?", email)
}

// FindByUsername retrieves a single user by their username.
func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return repo.findOne(ctx, "username = ?", username)
}

func (repo *userRepository) ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.UserModel{}).
		Where("email = ? OR username = ?", email, username).
		Count(&count).Error; err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to check user existence")
	}

	return count > 0, nil
}

// List returns every user ordered by username.
func (repo *userRepository) List(ctx context.Context) ([]*entity.User, error) {
	var rows []*model.UserModel
	if err := repo.withPreferences(ctx).Order("username").Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list users")
	}

	users := make([]*entity.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, toUserDomain(row))
	}

	return users, nil
}

// Create persists a new user together with its preference relations.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := attachPreferences(tx, userM, user.Profile); err != nil {
			return err
		}

		return tx.Create(userM).Error
	})
	if err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email or username already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// UpdateProfile overwrites the profile columns and replaces the preference sets.
func (repo *userRepository) UpdateProfile(ctx context.Context, userID uuid.UUID, profile entity.Profile) error {
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.UserModel{}).Where("id = ?", userID).Updates(map[string]any{
			"age":                 profile.Age,
			"budget":              profile.Budget,
			"group_size":          profile.GroupSize,
			"has_pet":             profile.HasPet,
			"has_children":        profile.HasChildren,
			"needs_accessibility": profile.NeedsAccessibility,
			"wants_promotions":    profile.WantsPromotions,
		})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return repository.ErrUserNotFound
		}

		userM := &model.UserModel{ID: userID}
		if err := attachPreferences(tx, userM, profile); err != nil {
			return err
		}
		if err := tx.Model(userM).Association("PreferredCategories").Replace(userM.PreferredCategories); err != nil {
			return err
		}
		if err := tx.Model(userM).Association("PreferredAmbiances").Replace(userM.PreferredAmbiances); err != nil {
			return err
		}

		return tx.Model(userM).Association("PreferredZones").Replace(userM.PreferredZones)
	})
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return err
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update user profile")
	}

	return nil
}

// SavePreferences stores the opaque preferences document.
func (repo *userRepository) SavePreferences(ctx context.Context, userID uuid.UUID, preferences json.RawMessage) error {
	result := repo.db.WithContext(ctx).Model(&model.UserModel{}).
		Where("id = ?", userID).
		Update("preferences", datatypes.JSON(preferences))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to save preferences")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// attachPreferences resolves the profile's preference names to taxonomy rows.
func attachPreferences(tx *gorm.DB, userM *model.UserModel, profile entity.Profile) error {
	categories, err := resolveCategories(tx, profile.PreferredCategories)
	if err != nil {
		return err
	}
	ambiances, err := resolveAmbiances(tx, profile.PreferredAmbiance)
	if err != nil {
		return err
	}
	zones, err := resolveZones(tx, profile.PreferredZones)
	if err != nil {
		return err
	}

	userM.PreferredCategories = categories
	userM.PreferredAmbiances = ambiances
	userM.PreferredZones = zones

	return nil
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	var preferences json.RawMessage
	if len(data.Preferences) > 0 {
		preferences = json.RawMessage(data.Preferences)
	}

	return &entity.User{
		ID:           data.ID,
		Email:        data.Email,
		Username:     data.Username,
		PasswordHash: data.PasswordHash,
		Profile: entity.Profile{
			Age:                 data.Age,
			Budget:              data.Budget,
			GroupSize:           data.GroupSize,
			HasPet:              data.HasPet,
			HasChildren:         data.HasChildren,
			NeedsAccessibility:  data.NeedsAccessibility,
			WantsPromotions:     data.WantsPromotions,
			PreferredCategories: categoryNames(data.PreferredCategories),
			PreferredAmbiance:   ambianceNames(data.PreferredAmbiances),
			PreferredZones:      zoneNames(data.PreferredZones),
		},
		Preferences: preferences,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromUserDomain converts the scalar fields of a User to a UserModel.
// Preference relations are resolved separately.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	var preferences datatypes.JSON
	if len(data.Preferences) > 0 {
		preferences = datatypes.JSON(data.Preferences)
	}

	return &model.UserModel{
		ID:                 data.ID,
		Email:              data.Email,
		Username:           data.Username,
		PasswordHash:       data.PasswordHash,
		Age:                data.Profile.Age,
		Budget:             data.Profile.Budget,
		GroupSize:          data.Profile.GroupSize,
		HasPet:             data.Profile.HasPet,
		HasChildren:        data.Profile.HasChildren,
		NeedsAccessibility: data.Profile.NeedsAccessibility,
		WantsPromotions:    data.Profile.WantsPromotions,
		Preferences:        preferences,
	}
}
