package postgres

import (
	"strings"

	"gusto/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// cleanNames trims names and drops blanks and case-insensitive duplicates,
// keeping the first spelling seen.
func cleanNames(names []string) []string {
	cleaned := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		cleaned = append(cleaned, name)
	}

	return cleaned
}

type namedRow interface {
	TaxonomyName() string
}

// findOrCreateByName returns the taxonomy rows named by names, inserting the
// missing ones. Names match case-insensitively, so an existing "Italian" is
// reused for "italian". Concurrent inserts are absorbed by the unique index.
func findOrCreateByName[T namedRow](tx *gorm.DB, names []string, build func(model.Taxonomy) T) ([]T, error) {
	names = cleanNames(names)
	if len(names) == 0 {
		return []T{}, nil
	}

	lowered := make([]string, 0, len(names))
	for _, name := range names {
		lowered = append(lowered, strings.ToLower(name))
	}

	found, err := findByLowerName[T](tx, lowered)
	if err != nil {
		return nil, err
	}

	existing := make(map[string]struct{}, len(found))
	for _, row := range found {
		existing[strings.ToLower(row.TaxonomyName())] = struct{}{}
	}

	missing := make([]T, 0, len(names))
	for _, name := range names {
		if _, ok := existing[strings.ToLower(name)]; !ok {
			missing = append(missing, build(model.Taxonomy{Name: name}))
		}
	}
	if len(missing) == 0 {
		return found, nil
	}

	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&missing).Error; err != nil {
		return nil, err
	}

	return findByLowerName[T](tx, lowered)
}

func findByLowerName[T namedRow](tx *gorm.DB, lowered []string) ([]T, error) {
	found := make([]T, 0, len(lowered))
	if err := tx.Where("LOWER(name) IN ?", lowered).Order("name").Find(&found).Error; err != nil {
		return nil, err
	}

	return found, nil
}

func resolveCategories(tx *gorm.DB, names []string) ([]*model.CategoryModel, error) {
	return findOrCreateByName(tx, names, func(t model.Taxonomy) *model.CategoryModel {
		return &model.CategoryModel{Taxonomy: t}
	})
}

func resolveAmbiances(tx *gorm.DB, names []string) ([]*model.AmbianceModel, error) {
	return findOrCreateByName(tx, names, func(t model.Taxonomy) *model.AmbianceModel {
		return &model.AmbianceModel{Taxonomy: t}
	})
}

func resolveZones(tx *gorm.DB, names []string) ([]*model.ZoneModel, error) {
	return findOrCreateByName(tx, names, func(t model.Taxonomy) *model.ZoneModel {
		return &model.ZoneModel{Taxonomy: t}
	})
}

func categoryNames(rows []*model.CategoryModel) []string {
	names := make([]string, 0, len(rows))
	for _, row := range rows {
		names = append(names, row.Name)
	}

	return names
}

func ambianceNames(rows []*model.AmbianceModel) []string {
	names := make([]string, 0, len(rows))
	for _, row := range rows {
		names = append(names, row.Name)
	}

	return names
}

func zoneNames(rows []*model.ZoneModel) []string {
	names := make([]string, 0, len(rows))
	for _, row := range rows {
		names = append(names, row.Name)
	}

	return names
}
