package entity

import (
	"time"

	"github.com/google/uuid"
)

// Defaults applied when a restaurant is created without the attribute.
const (
	DefaultCapacity            = 50
	DefaultServiceLevel        = 3
	DefaultWaitTimeMinutes     = 15
	DefaultAcceptsReservations = true

	MinServiceLevel = 1
	MaxServiceLevel = 5
)

// Restaurant is a venue that can be recommended, rated and commented on.
type Restaurant struct {
	ID           uuid.UUID
	Name         string
	Price        float64 // Average price per person.
	Capacity     int     // Seats available for a single party.
	ServiceLevel int     // Ordinal in [MinServiceLevel, MaxServiceLevel].
	WaitTime     int     // Typical wait in minutes.

	Amenities Amenities

	Categories []string
	Ambiance   []string
	Zone       string // Empty when the restaurant is not located in any zone.

	Address      string
	Phone        string
	OpeningHours string
	HasTerrace   bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Amenities are the boolean facilities a restaurant offers.
type Amenities struct {
	PetFriendly         bool `json:"pet_friendly"`
	KidsGames           bool `json:"kids_games"`
	Accessible          bool `json:"accessible"`
	Promotions          bool `json:"promotions"`
	AcceptsReservations bool `json:"accepts_reservations"`
}

// Zones returns the zone as a list, empty when unset.
func (r *Restaurant) Zones() []string {
	if r.Zone == "" {
		return []string{}
	}

	return []string{r.Zone}
}
