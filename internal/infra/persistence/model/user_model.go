package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// UserModel mirrors the 'users' table. Preference relations live in join tables.
type UserModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email              string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Username           string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	PasswordHash       string    `gorm:"type:varchar(255);not null"`
	Age                int
	Budget             float64 `gorm:"not null"`
	GroupSize          int     `gorm:"not null"`
	HasPet             bool    `gorm:"not null"`
	HasChildren        bool    `gorm:"not null"`
	NeedsAccessibility bool    `gorm:"not null"`
	WantsPromotions    bool    `gorm:"not null"`
	Preferences        datatypes.JSON
	CreatedAt          time.Time
	UpdatedAt          time.Time

	PreferredCategories []*CategoryModel `gorm:"many2many:user_preferred_categories;joinForeignKey:UserID;joinReferences:CategoryID"`
	PreferredAmbiances  []*AmbianceModel `gorm:"many2many:user_preferred_ambiances;joinForeignKey:UserID;joinReferences:AmbianceID"`
	PreferredZones      []*ZoneModel     `gorm:"many2many:user_preferred_zones;joinForeignKey:UserID;joinReferences:ZoneID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// BeforeCreate assigns a time-ordered id when none is set.
func (m *UserModel) BeforeCreate(_ *gorm.DB) error {
	return assignID(&m.ID)
}

func assignID(id *uuid.UUID) error {
	if *id != uuid.Nil {
		return nil
	}

	generated, err := uuid.NewV7()
	if err != nil {
		return err
	}
	*id = generated

	return nil
}
