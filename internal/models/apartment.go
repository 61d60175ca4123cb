package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

type Apartment struct {
	BaseModel
	OwnerID      string `gorm:"not null;index"`
	Title        string `gorm:"not null"`
	Description  string
	Address      string `gorm:"not null"`
	City         string `gorm:"not null;index"`
	Neighborhood string
	PostalCode   string
	Latitude     *float64
	Longitude    *float64

	TotalRooms     int `gorm:"not null"`
	TotalBathrooms int
	TotalArea      *float64

	MonthlyRent       float64 `gorm:"not null"`
	Deposit           float64
	UtilitiesIncluded bool
	PetFriendly       bool
	Furnished         bool
	ParkingAvailable  bool

	Amenities datatypes.JSON
	Images    datatypes.JSON

	AvailableFrom       *time.Time
	LeaseDurationMonths *int
	Status              ApartmentStatus `gorm:"type:varchar(20);default:'available';index"`

	// Relations
	Owner *User  `gorm:"foreignKey:OwnerID"`
	Rooms []Room `gorm:"foreignKey:ApartmentID"`
}

// GetAmenities decodes the amenity list, empty when absent.
func (a *Apartment) GetAmenities() []string {
	out := []string{}
	if len(a.Amenities) > 0 {
		json.Unmarshal(a.Amenities, &out)
	}
	return out
}

// GetImages decodes the image URL list, empty when absent.
func (a *Apartment) GetImages() []string {
	out := []string{}
	if len(a.Images) > 0 {
		json.Unmarshal(a.Images, &out)
	}
	return out
}
