package repositories

import (
	"errors"
	"time"

	"roomly_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrApplicationNotFound  = errors.New("application not found")
	ErrDuplicateApplication = errors.New("duplicate application")
)

type ApplicationRepository interface {
	Create(application *models.RoomApplication) error
	HasApplied(roomID, applicantID string) (bool, error)
	FindByRoom(roomID string) ([]models.RoomApplication, error)
	FindByID(id string) (*models.RoomApplication, error)
	Reject(id string) error
	ApproveAndRentRoom(id, roomID string) error
}

type ApplicationRepositoryImpl struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &ApplicationRepositoryImpl{db: db}
}

func (r *ApplicationRepositoryImpl) Create(application *models.RoomApplication) error {
	err := r.db.Create(application).Error
	if err != nil {
		// (room_id, applicant_id) is unique, so a concurrent second apply
		// fails here instead of creating a duplicate row.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateApplication
		}
		return err
	}
	return nil
}

func (r *ApplicationRepositoryImpl) HasApplied(roomID, applicantID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.RoomApplication{}).
		Where("room_id = ? AND applicant_id = ?", roomID, applicantID).
		Count(&count).Error
	return count > 0, err
}

func (r *ApplicationRepositoryImpl) FindByRoom(roomID string) ([]models.RoomApplication, error) {
	var applications []models.RoomApplication
	err := r.db.
		Preload("Applicant").
		Where("room_id = ?", roomID).
		Order("created_at DESC").
		Find(&applications).Error
	return applications, err
}

// FindByID loads the application with its room and the room's apartment,
// which carries the owner id for the authorization check.
func (r *ApplicationRepositoryImpl) FindByID(id string) (*models.RoomApplication, error) {
	var application models.RoomApplication
	err := r.db.
		Preload("Room").
		Preload("Room.Apartment").
		First(&application, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &application, nil
}

func (r *ApplicationRepositoryImpl) Reject(id string) error {
	result := r.db.Model(&models.RoomApplication{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     models.ApplicationStatusRejected,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}

// ApproveAndRentRoom flips the application to approved and the room to
// rented in one transaction, so a crash between the two writes cannot leave
// an approved application on an available room.
func (r *ApplicationRepositoryImpl) ApproveAndRentRoom(id, roomID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.RoomApplication{}).
			Where("id = ?", id).
			Updates(map[string]interface{}{
				"status":     models.ApplicationStatusApproved,
				"updated_at": time.Now(),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrApplicationNotFound
		}

		return tx.Model(&models.Room{}).
			Where("id = ?", roomID).
			Updates(map[string]interface{}{
				"status":     models.RoomStatusRented,
				"updated_at": time.Now(),
			}).Error
	})
}
