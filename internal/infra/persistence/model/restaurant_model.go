package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RestaurantModel mirrors the 'restaurants' table. A restaurant is located in
// at most one zone.
type RestaurantModel struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name                string    `gorm:"type:varchar(200);not null;index"`
	Price               float64   `gorm:"not null;index"`
	Capacity            int       `gorm:"not null"`
	ServiceLevel        int       `gorm:"not null;check:chk_restaurants_service_level,service_level BETWEEN 1 AND 5"`
	WaitTime            int       `gorm:"not null"`
	PetFriendly         bool      `gorm:"not null"`
	KidsGames           bool      `gorm:"not null"`
	Accessible          bool      `gorm:"not null"`
	Promotions          bool      `gorm:"not null"`
	AcceptsReservations bool      `gorm:"not null"`
	HasTerrace          bool      `gorm:"not null"`
	Address             string    `gorm:"type:varchar(255)"`
	Phone               string    `gorm:"type:varchar(50)"`
	OpeningHours        string    `gorm:"type:varchar(255)"`
	ZoneID              *uint     `gorm:"index"`
	CreatedAt           time.Time
	UpdatedAt           time.Time

	Zone       *ZoneModel       `gorm:"foreignKey:ZoneID"`
	Categories []*CategoryModel `gorm:"many2many:restaurant_categories;joinForeignKey:RestaurantID;joinReferences:CategoryID"`
	Ambiances  []*AmbianceModel `gorm:"many2many:restaurant_ambiances;joinForeignKey:RestaurantID;joinReferences:AmbianceID"`
}

// TableName explicitly sets the table name for GORM.
func (RestaurantModel) TableName() string {
	return "restaurants"
}

// BeforeCreate assigns a time-ordered id when none is set.
func (m *RestaurantModel) BeforeCreate(_ *gorm.DB) error {
	return assignID(&m.ID)
}
