package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CommentModel mirrors the append-only 'comments' table.
type CommentModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index"`
	RestaurantID uuid.UUID `gorm:"type:uuid;not null;index:idx_comments_restaurant_created,priority:1"`
	Text         string    `gorm:"type:text;not null"`
	CreatedAt    time.Time `gorm:"index:idx_comments_restaurant_created,priority:2"`

	User       *UserModel       `gorm:"foreignKey:UserID"`
	Restaurant *RestaurantModel `gorm:"foreignKey:RestaurantID"`
}

// TableName explicitly sets the table name for GORM.
func (CommentModel) TableName() string {
	return "comments"
}

// BeforeCreate assigns a time-ordered id when none is set.
func (m *CommentModel) BeforeCreate(_ *gorm.DB) error {
	return assignID(&m.ID)
}

// RatingModel mirrors the 'ratings' table. The composite primary key keeps a
// single row per user and restaurant so writes are upserts.
type RatingModel struct {
	UserID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	Score        int       `gorm:"not null;check:chk_ratings_score,score BETWEEN 1 AND 5"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	User       *UserModel       `gorm:"foreignKey:UserID"`
	Restaurant *RestaurantModel `gorm:"foreignKey:RestaurantID"`
}

// TableName explicitly sets the table name for GORM.
func (RatingModel) TableName() string {
	return "ratings"
}

// All lists every model in dependency order for AutoMigrate.
func All() []any {
	return []any{
		&CategoryModel{},
		&AmbianceModel{},
		&ZoneModel{},
		&UserModel{},
		&RestaurantModel{},
		&CommentModel{},
		&RatingModel{},
	}
}
