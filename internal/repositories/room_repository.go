package repositories

import (
	"errors"

	"roomly_backend/internal/models"

	"gorm.io/gorm"
)

var ErrRoomNotFound = errors.New("room not found")

// RoomFilter carries the optional room listing filters.
type RoomFilter struct {
	City            string
	MinPrice        *float64
	MaxPrice        *float64
	RoomType        string
	Furnished       *bool
	PrivateBathroom *bool
	Page            int
	Limit           int
}

type RoomRepository interface {
	Create(room *models.Room) error
	FindByID(id string) (*models.Room, error)
	FindAvailableByID(id string) (*models.Room, error)
	FindAvailable(filter RoomFilter) ([]models.Room, error)
}

type RoomRepositoryImpl struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) RoomRepository {
	return &RoomRepositoryImpl{db: db}
}

func (r *RoomRepositoryImpl) Create(room *models.Room) error {
	return r.db.Create(room).Error
}

// FindByID loads the room with its apartment context and the owner's
// contact info.
func (r *RoomRepositoryImpl) FindByID(id string) (*models.Room, error) {
	var room models.Room
	err := r.db.
		Preload("Apartment").
		Preload("Apartment.Owner").
		First(&room, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return &room, nil
}

// FindAvailableByID is FindByID restricted to rooms open for applications.
func (r *RoomRepositoryImpl) FindAvailableByID(id string) (*models.Room, error) {
	var room models.Room
	err := r.db.
		Preload("Apartment").
		First(&room, "id = ? AND status = ?", id, models.RoomStatusAvailable).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return &room, nil
}

// FindAvailable lists rooms whose apartment is also still available. City
// filters against the apartment, price filters against the room itself.
func (r *RoomRepositoryImpl) FindAvailable(filter RoomFilter) ([]models.Room, error) {
	query := r.db.Model(&models.Room{}).
		Preload("Apartment").
		Preload("Apartment.Owner").
		Joins("JOIN apartments ON apartments.id = rooms.apartment_id").
		Where("rooms.status = ? AND apartments.status = ?",
			models.RoomStatusAvailable, models.ApartmentStatusAvailable)

	if filter.City != "" {
		query = query.Where("apartments.city LIKE ?", "%"+filter.City+"%")
	}
	if filter.MinPrice != nil {
		query = query.Where("rooms.monthly_rent >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("rooms.monthly_rent <= ?", *filter.MaxPrice)
	}
	if filter.RoomType != "" {
		query = query.Where("rooms.room_type = ?", filter.RoomType)
	}
	if filter.Furnished != nil && *filter.Furnished {
		query = query.Where("rooms.furnished = ?", true)
	}
	if filter.PrivateBathroom != nil && *filter.PrivateBathroom {
		query = query.Where("rooms.private_bathroom = ?", true)
	}

	var rooms []models.Room
	err := query.
		Order("rooms.created_at DESC").
		Limit(filter.Limit).
		Offset((filter.Page - 1) * filter.Limit).
		Find(&rooms).Error
	return rooms, err
}
