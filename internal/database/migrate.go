package database

import (
	"roomly_backend/internal/models"

	"gorm.io/gorm"
)

// Migrate creates or updates the schema for every model. Ordering follows
// the foreign key dependencies.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Apartment{},
		&models.Room{},
		&models.RoomApplication{},
		&models.RoommateMatch{},
		&models.ApartmentComparison{},
	)
}
