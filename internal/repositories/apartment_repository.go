package repositories

import (
	"errors"
	"time"

	"roomly_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrApartmentNotFound = errors.New("apartment not found")
	ErrNotOwner          = errors.New("not the apartment owner")
)

// ApartmentFilter carries the optional listing filters. Nil/zero values
// impose no constraint.
type ApartmentFilter struct {
	City        string
	MinPrice    *float64
	MaxPrice    *float64
	Rooms       *int
	Furnished   *bool
	PetFriendly *bool
	Parking     *bool
	Page        int
	Limit       int
}

type ApartmentRepository interface {
	Create(apartment *models.Apartment) error
	FindByID(id string) (*models.Apartment, error)
	FindAvailable(filter ApartmentFilter) ([]models.Apartment, error)
	FindAvailableByIDs(ids []string) ([]models.Apartment, error)
	OwnerID(id string) (string, error)
	UpdateOwned(id, ownerID string, fields map[string]interface{}) error
}

type ApartmentRepositoryImpl struct {
	db *gorm.DB
}

func NewApartmentRepository(db *gorm.DB) ApartmentRepository {
	return &ApartmentRepositoryImpl{db: db}
}

func (r *ApartmentRepositoryImpl) Create(apartment *models.Apartment) error {
	return r.db.Create(apartment).Error
}

// FindByID loads the apartment with its owner and currently available rooms.
func (r *ApartmentRepositoryImpl) FindByID(id string) (*models.Apartment, error) {
	var apartment models.Apartment
	err := r.db.
		Preload("Owner").
		Preload("Rooms", "status = ?", models.RoomStatusAvailable).
		First(&apartment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApartmentNotFound
		}
		return nil, err
	}
	return &apartment, nil
}

// FindAvailable applies the conjunctive filter set over available listings,
// newest first, paginated.
func (r *ApartmentRepositoryImpl) FindAvailable(filter ApartmentFilter) ([]models.Apartment, error) {
	query := r.db.
		Preload("Owner").
		Where("status = ?", models.ApartmentStatusAvailable)

	if filter.City != "" {
		query = query.Where("city LIKE ?", "%"+filter.City+"%")
	}
	if filter.MinPrice != nil {
		query = query.Where("monthly_rent >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("monthly_rent <= ?", *filter.MaxPrice)
	}
	if filter.Rooms != nil {
		query = query.Where("total_rooms >= ?", *filter.Rooms)
	}
	if filter.Furnished != nil && *filter.Furnished {
		query = query.Where("furnished = ?", true)
	}
	if filter.PetFriendly != nil && *filter.PetFriendly {
		query = query.Where("pet_friendly = ?", true)
	}
	if filter.Parking != nil && *filter.Parking {
		query = query.Where("parking_available = ?", true)
	}

	var apartments []models.Apartment
	err := query.
		Order("created_at DESC").
		Limit(filter.Limit).
		Offset((filter.Page - 1) * filter.Limit).
		Find(&apartments).Error
	return apartments, err
}

func (r *ApartmentRepositoryImpl) FindAvailableByIDs(ids []string) ([]models.Apartment, error) {
	var apartments []models.Apartment
	err := r.db.
		Preload("Owner").
		Where("id IN ? AND status = ?", ids, models.ApartmentStatusAvailable).
		Find(&apartments).Error
	return apartments, err
}

func (r *ApartmentRepositoryImpl) OwnerID(id string) (string, error) {
	var apartment models.Apartment
	err := r.db.Select("id", "owner_id").First(&apartment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrApartmentNotFound
		}
		return "", err
	}
	return apartment.OwnerID, nil
}

// UpdateOwned applies the field map only when the row belongs to ownerID.
// Ownership check and mutation are one statement, so a concurrent owner
// change can never interleave between them. When nothing was updated the
// follow-up read only classifies the failure.
func (r *ApartmentRepositoryImpl) UpdateOwned(id, ownerID string, fields map[string]interface{}) error {
	fields["updated_at"] = time.Now()
	result := r.db.Model(&models.Apartment{}).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		if _, err := r.OwnerID(id); err != nil {
			return err
		}
		return ErrNotOwner
	}
	return nil
}
