package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

type Room struct {
	BaseModel
	ApartmentID string   `gorm:"not null;index"`
	RoomNumber  string
	RoomType    RoomType `gorm:"type:varchar(20);not null"`
	Area        *float64
	MonthlyRent float64 `gorm:"not null"`
	Deposit     float64

	PrivateBathroom bool
	Furnished       bool

	Description   string
	Images        datatypes.JSON
	AvailableFrom *time.Time
	Status        RoomStatus `gorm:"type:varchar(20);default:'available';index"`

	// Relations
	Apartment *Apartment `gorm:"foreignKey:ApartmentID"`
}

// GetImages decodes the image URL list, empty when absent.
func (r *Room) GetImages() []string {
	out := []string{}
	if len(r.Images) > 0 {
		json.Unmarshal(r.Images, &out)
	}
	return out
}
