package repositories

import (
	"roomly_backend/internal/models"

	"gorm.io/gorm"
)

type ComparisonRepository interface {
	Create(comparison *models.ApartmentComparison) error
	FindByUser(userID string) ([]models.ApartmentComparison, error)
}

type ComparisonRepositoryImpl struct {
	db *gorm.DB
}

func NewComparisonRepository(db *gorm.DB) ComparisonRepository {
	return &ComparisonRepositoryImpl{db: db}
}

func (r *ComparisonRepositoryImpl) Create(comparison *models.ApartmentComparison) error {
	return r.db.Create(comparison).Error
}

func (r *ComparisonRepositoryImpl) FindByUser(userID string) ([]models.ApartmentComparison, error) {
	var comparisons []models.ApartmentComparison
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&comparisons).Error
	return comparisons, err
}
