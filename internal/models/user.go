package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

type User struct {
	BaseModel
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	FirstName    string `gorm:"not null"`
	LastName     string `gorm:"not null"`
	Phone        string

	// Roommate profile
	Bio                  string
	Age                  *int
	Occupation           string
	BudgetMin            *float64
	BudgetMax            *float64
	LifestylePreferences datatypes.JSON
	VerificationStatus   VerificationStatus `gorm:"type:varchar(20);default:'pending'"`

	// Relations
	Apartments    []Apartment    `gorm:"foreignKey:OwnerID"`
	RefreshTokens []RefreshToken `gorm:"foreignKey:UserID"`
}

// GetLifestylePreferences decodes the stored preference map. An absent or
// empty column decodes to an empty map, never an error.
func (u *User) GetLifestylePreferences() map[string]string {
	prefs := map[string]string{}
	if len(u.LifestylePreferences) > 0 {
		json.Unmarshal(u.LifestylePreferences, &prefs)
	}
	return prefs
}

type RefreshToken struct {
	BaseModel
	UserID    string    `gorm:"not null;index"`
	Token     string    `gorm:"not null;uniqueIndex"`
	ExpiresAt time.Time `gorm:"not null"`
}
