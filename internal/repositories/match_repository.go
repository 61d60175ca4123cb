package repositories

import (
	"time"

	"roomly_backend/internal/models"

	"gorm.io/gorm"
)

type MatchRepository interface {
	Create(match *models.RoommateMatch) error
	MarkMutual(userA, userB string) (bool, error)
	FindMutualForUser(userID string) ([]models.RoommateMatch, error)
}

type MatchRepositoryImpl struct {
	db *gorm.DB
}

func NewMatchRepository(db *gorm.DB) MatchRepository {
	return &MatchRepositoryImpl{db: db}
}

func (r *MatchRepositoryImpl) Create(match *models.RoommateMatch) error {
	return r.db.Create(match).Error
}

// MarkMutual flips mutual_interest on the pair's row, matching either
// direction, in a single conditional update. Returns whether a row existed.
// Doing it without a prior read means two users expressing interest at the
// same moment cannot both observe "no row yet" and race the update.
func (r *MatchRepositoryImpl) MarkMutual(userA, userB string) (bool, error) {
	result := r.db.Model(&models.RoommateMatch{}).
		Where("(user1_id = ? AND user2_id = ?) OR (user1_id = ? AND user2_id = ?)",
			userA, userB, userB, userA).
		Updates(map[string]interface{}{
			"mutual_interest": true,
			"updated_at":      time.Now(),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *MatchRepositoryImpl) FindMutualForUser(userID string) ([]models.RoommateMatch, error) {
	var matches []models.RoommateMatch
	err := r.db.
		Preload("User1").
		Preload("User2").
		Where("(user1_id = ? OR user2_id = ?) AND mutual_interest = ?", userID, userID, true).
		Order("created_at DESC").
		Find(&matches).Error
	return matches, err
}
