package postgres

import (
	"context"
	"fmt"
	"strings"

	"gusto/internal/domain/entity"
	domainerrors "gusto/internal/domain/errors"
	"gusto/internal/domain/recommend"
	"gusto/internal/domain/repository"
	"gusto/internal/errors"
	"gusto/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const restaurantHasCategory = `EXISTS (SELECT 1 FROM restaurant_categories rc
	JOIN categories c ON c.id = rc.category_id
	WHERE rc.restaurant_id = restaurants.id AND %s)`

type restaurantRepository struct {
	db *gorm.DB
}

// NewRestaurantRepository is the constructor for restaurantRepository.
func NewRestaurantRepository(db *gorm.DB) repository.RestaurantRepository {
	return &restaurantRepository{db: db}
}

func (repo *restaurantRepository) withRelations(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).Model(&model.RestaurantModel{}).
		Preload("Zone").
		Preload("Categories", orderByName).
		Preload("Ambiances", orderByName)
}

func (repo *restaurantRepository) find(db *gorm.DB, operation string) ([]*entity.Restaurant, error) {
	var rows []*model.RestaurantModel
	if err := db.Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, operation)
	}

	restaurants := make([]*entity.Restaurant, 0, len(rows))
	for _, row := range rows {
		restaurants = append(restaurants, toRestaurantDomain(row))
	}

	return restaurants, nil
}

// FindByID retrieves a restaurant with its relations.
func (repo *restaurantRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error) {
	var row model.RestaurantModel
	if err := repo.withRelations(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRestaurantNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find restaurant")
	}

	return toRestaurantDomain(&row), nil
}

func (repo *restaurantRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.RestaurantModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to check restaurant existence")
	}

	return count > 0, nil
}

// List returns every restaurant ordered by name.
func (repo *restaurantRepository) List(ctx context.Context) ([]*entity.Restaurant, error) {
	return repo.find(repo.withRelations(ctx).Order("name"), "failed to list restaurants")
}

// Search matches q against the restaurant name and its category names.
func (repo *restaurantRepository) Search(ctx context.Context, q string) ([]*entity.Restaurant, error) {
	pattern := "%" + escapeLike(strings.ToLower(q)) + "%"

	db := repo.withRelations(ctx).
		Where("LOWER(restaurants.name) LIKE ? ESCAPE '\\' OR "+
			fmt.Sprintf(restaurantHasCategory, "LOWER(c.name) LIKE ? ESCAPE '\\'"), pattern, pattern).
		Order("name")

	return repo.find(db, "failed to search restaurants")
}

// FindCandidates pushes the budget and every set constraint into the query.
func (repo *restaurantRepository) FindCandidates(ctx context.Context, budget float64, c recommend.Constraints) ([]*entity.Restaurant, error) {
	db := repo.withRelations(ctx).Where("price <= ?", budget)

	if c.Zone != "" {
		db = db.Where("zone_id IN (SELECT id FROM zones WHERE LOWER(name) = ?)", strings.ToLower(c.Zone))
	}
	if categories := lowerAll(c.Categories); len(categories) > 0 {
		db = db.Where(fmt.Sprintf(restaurantHasCategory, "LOWER(c.name) IN ?"), categories)
	}
	if c.PetFriendly {
		db = db.Where("pet_friendly = ?", true)
	}
	if c.KidsGames {
		db = db.Where("kids_games = ?", true)
	}
	if c.Accessible {
		db = db.Where("accessible = ?", true)
	}
	if c.Promotions {
		db = db.Where("promotions = ?", true)
	}
	if c.MinServiceLevel > 0 {
		db = db.Where("service_level >= ?", c.MinServiceLevel)
	}

	return repo.find(db.Order("price").Order("name"), "failed to fetch candidates")
}

// Create persists a restaurant and links its taxonomy values.
func (repo *restaurantRepository) Create(ctx context.Context, restaurant *entity.Restaurant) error {
	row := fromRestaurantDomain(restaurant)

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		categories, err := resolveCategories(tx, restaurant.Categories)
		if err != nil {
			return err
		}
		ambiances, err := resolveAmbiances(tx, restaurant.Ambiance)
		if err != nil {
			return err
		}
		zones, err := resolveZones(tx, []string{restaurant.Zone})
		if err != nil {
			return err
		}

		row.Categories = categories
		row.Ambiances = ambiances
		if len(zones) > 0 {
			row.ZoneID = &zones[0].ID
			row.Zone = zones[0]
		}

		return tx.Omit("Zone").Create(row).Error
	})
	if err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("service level out of range")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrRestaurantCreationFailed.WrapMessage("missing required restaurant information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create restaurant")
	}

	restaurant.ID = row.ID
	restaurant.CreatedAt = row.CreatedAt
	restaurant.UpdatedAt = row.UpdatedAt

	return nil
}

// ListCategories returns every category name alphabetically.
func (repo *restaurantRepository) ListCategories(ctx context.Context) ([]string, error) {
	var names []string
	if err := repo.db.WithContext(ctx).Model(&model.CategoryModel{}).Order("name").Pluck("name", &names).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list categories")
	}
	if names == nil {
		names = []string{}
	}

	return names, nil
}

func lowerAll(values []string) []string {
	cleaned := cleanNames(values)
	for i := range cleaned {
		cleaned[i] = strings.ToLower(cleaned[i])
	}

	return cleaned
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// --- Mapper Functions ---

func toRestaurantDomain(data *model.RestaurantModel) *entity.Restaurant {
	if data == nil {
		return nil
	}

	zone := ""
	if data.Zone != nil {
		zone = data.Zone.Name
	}

	return &entity.Restaurant{
		ID:           data.ID,
		Name:         data.Name,
		Price:        data.Price,
		Capacity:     data.Capacity,
		ServiceLevel: data.ServiceLevel,
		WaitTime:     data.WaitTime,
		Amenities: entity.Amenities{
			PetFriendly:         data.PetFriendly,
			KidsGames:           data.KidsGames,
			Accessible:          data.Accessible,
			Promotions:          data.Promotions,
			AcceptsReservations: data.AcceptsReservations,
		},
		Categories:   categoryNames(data.Categories),
		Ambiance:     ambianceNames(data.Ambiances),
		Zone:         zone,
		Address:      data.Address,
		Phone:        data.Phone,
		OpeningHours: data.OpeningHours,
		HasTerrace:   data.HasTerrace,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromRestaurantDomain(data *entity.Restaurant) *model.RestaurantModel {
	return &model.RestaurantModel{
		ID:                  data.ID,
		Name:                data.Name,
		Price:               data.Price,
		Capacity:            data.Capacity,
		ServiceLevel:        data.ServiceLevel,
		WaitTime:            data.WaitTime,
		PetFriendly:         data.Amenities.PetFriendly,
		KidsGames:           data.Amenities.KidsGames,
		Accessible:          data.Amenities.Accessible,
		Promotions:          data.Amenities.Promotions,
		AcceptsReservations: data.Amenities.AcceptsReservations,
		HasTerrace:          data.HasTerrace,
		Address:             data.Address,
		Phone:               data.Phone,
		OpeningHours:        data.OpeningHours,
	}
}
