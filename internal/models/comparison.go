package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

type ApartmentComparison struct {
	BaseModel
	UserID          string `gorm:"not null;index"`
	ApartmentIDs    datatypes.JSON
	ComparisonNotes string

	// Relations
	User *User `gorm:"foreignKey:UserID"`
}

// GetApartmentIDs decodes the compared id list, empty when absent.
func (c *ApartmentComparison) GetApartmentIDs() []string {
	out := []string{}
	if len(c.ApartmentIDs) > 0 {
		json.Unmarshal(c.ApartmentIDs, &out)
	}
	return out
}
