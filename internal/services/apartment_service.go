package services

import (
	"encoding/json"
	"math"

	"roomly_backend/internal/models"
	"roomly_backend/internal/repositories"
	"roomly_backend/internal/services/dto"

	"roomly_backend/pkg/apperrors"

	"gorm.io/datatypes"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

type ApartmentService interface {
	Create(ownerID string, req *dto.CreateApartmentRequest) (string, error)
	List(query *dto.ApartmentListQuery) ([]dto.ApartmentResponse, error)
	GetByID(id string) (*dto.ApartmentResponse, error)
	Update(id, actorID string, req *dto.UpdateApartmentRequest) error
	Compare(req *dto.CompareRequest) (*dto.CompareResponse, error)
	SaveComparison(userID string, req *dto.CreateComparisonRequest) (string, error)
	ListComparisons(userID string) ([]dto.SavedComparison, error)
}

type ApartmentServiceImpl struct {
	apartmentRepo  repositories.ApartmentRepository
	comparisonRepo repositories.ComparisonRepository
}

func NewApartmentService(
	apartmentRepo repositories.ApartmentRepository,
	comparisonRepo repositories.ComparisonRepository,
) ApartmentService {
	return &ApartmentServiceImpl{
		apartmentRepo:  apartmentRepo,
		comparisonRepo: comparisonRepo,
	}
}

func (s *ApartmentServiceImpl) Create(ownerID string, req *dto.CreateApartmentRequest) (string, error) {
	amenities, err := encodeStringList(req.Amenities)
	if err != nil {
		return "", apperrors.InternalError(err)
	}
	images, err := encodeStringList(req.Images)
	if err != nil {
		return "", apperrors.InternalError(err)
	}

	apartment := &models.Apartment{
		OwnerID:             ownerID,
		Title:               req.Title,
		Description:         req.Description,
		Address:             req.Address,
		City:                req.City,
		Neighborhood:        req.Neighborhood,
		PostalCode:          req.PostalCode,
		Latitude:            req.Latitude,
		Longitude:           req.Longitude,
		TotalRooms:          req.TotalRooms,
		TotalBathrooms:      req.TotalBathrooms,
		TotalArea:           req.TotalArea,
		MonthlyRent:         req.MonthlyRent,
		Deposit:             req.Deposit,
		UtilitiesIncluded:   req.UtilitiesIncluded,
		PetFriendly:         req.PetFriendly,
		Furnished:           req.Furnished,
		ParkingAvailable:    req.ParkingAvailable,
		Amenities:           amenities,
		Images:              images,
		AvailableFrom:       req.AvailableFrom,
		LeaseDurationMonths: req.LeaseDurationMonths,
		Status:              models.ApartmentStatusAvailable,
	}

	if err := s.apartmentRepo.Create(apartment); err != nil {
		return "", apperrors.InternalError(err)
	}
	return apartment.ID, nil
}

func (s *ApartmentServiceImpl) List(query *dto.ApartmentListQuery) ([]dto.ApartmentResponse, error) {
	filter := repositories.ApartmentFilter{
		City:        query.City,
		MinPrice:    query.MinPrice,
		MaxPrice:    query.MaxPrice,
		Rooms:       query.Rooms,
		Furnished:   query.Furnished,
		PetFriendly: query.PetFriendly,
		Parking:     query.Parking,
		Page:        query.Page,
		Limit:       query.Limit,
	}
	if filter.Page < 1 {
		filter.Page = defaultPage
	}
	if filter.Limit < 1 {
		filter.Limit = defaultLimit
	}

	apartments, err := s.apartmentRepo.FindAvailable(filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	result := []dto.ApartmentResponse{}
	for i := range apartments {
		result = append(result, *buildApartmentResponse(&apartments[i], false))
	}
	return result, nil
}

// GetByID returns the listing detail with owner contact info and the
// currently available rooms.
func (s *ApartmentServiceImpl) GetByID(id string) (*dto.ApartmentResponse, error) {
	apartment, err := s.apartmentRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrApartmentNotFound) {
			return nil, apperrors.ErrApartmentNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	response := buildApartmentResponse(apartment, true)
	response.AvailableRooms = []dto.RoomResponse{}
	for i := range apartment.Rooms {
		response.AvailableRooms = append(response.AvailableRooms,
			*buildRoomResponse(&apartment.Rooms[i], false))
	}
	return response, nil
}

// apartmentUpdateAllowList is the fixed set of fields an owner may change.
// Everything else submitted is silently ignored; owner_id in particular can
// never move.
func (s *ApartmentServiceImpl) Update(id, actorID string, req *dto.UpdateApartmentRequest) error {
	fields := map[string]interface{}{}

	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.MonthlyRent != nil {
		fields["monthly_rent"] = *req.MonthlyRent
	}
	if req.Deposit != nil {
		fields["deposit"] = *req.Deposit
	}
	if req.UtilitiesIncluded != nil {
		fields["utilities_included"] = *req.UtilitiesIncluded
	}
	if req.PetFriendly != nil {
		fields["pet_friendly"] = *req.PetFriendly
	}
	if req.Furnished != nil {
		fields["furnished"] = *req.Furnished
	}
	if req.ParkingAvailable != nil {
		fields["parking_available"] = *req.ParkingAvailable
	}
	if req.Amenities != nil {
		amenities, err := encodeStringList(req.Amenities)
		if err != nil {
			return apperrors.InternalError(err)
		}
		fields["amenities"] = amenities
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}

	if len(fields) == 0 {
		return apperrors.ErrNoUpdatableFields
	}

	if err := s.apartmentRepo.UpdateOwned(id, actorID, fields); err != nil {
		switch {
		case apperrors.Is(err, repositories.ErrApartmentNotFound):
			return apperrors.ErrApartmentNotFound
		case apperrors.Is(err, repositories.ErrNotOwner):
			return apperrors.ErrNotApartmentOwner
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// Compare fetches the full requested set or fails; partial comparisons are
// never returned.
func (s *ApartmentServiceImpl) Compare(req *dto.CompareRequest) (*dto.CompareResponse, error) {
	apartments, err := s.apartmentRepo.FindAvailableByIDs(req.ApartmentIDs)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if len(apartments) != len(req.ApartmentIDs) {
		return nil, apperrors.ErrComparisonIncomplete
	}

	compared := []dto.ComparedApartment{}
	for i := range apartments {
		apartment := &apartments[i]
		view := dto.ComparedApartment{
			ApartmentResponse: *buildApartmentResponse(apartment, false),
		}
		if apartment.TotalArea != nil && *apartment.TotalArea > 0 {
			perSqft := round2(apartment.MonthlyRent / *apartment.TotalArea)
			view.PricePerSqft = &perSqft
		}
		compared = append(compared, view)
	}

	return &dto.CompareResponse{
		Apartments: compared,
		Stats:      buildComparisonStats(apartments),
	}, nil
}

func (s *ApartmentServiceImpl) SaveComparison(userID string, req *dto.CreateComparisonRequest) (string, error) {
	if len(req.ApartmentIDs) < 2 || len(req.ApartmentIDs) > 5 {
		return "", apperrors.ErrComparisonSize
	}

	idsJSON, err := json.Marshal(req.ApartmentIDs)
	if err != nil {
		return "", apperrors.InternalError(err)
	}

	comparison := &models.ApartmentComparison{
		UserID:          userID,
		ApartmentIDs:    datatypes.JSON(idsJSON),
		ComparisonNotes: req.ComparisonNotes,
	}
	if err := s.comparisonRepo.Create(comparison); err != nil {
		return "", apperrors.InternalError(err)
	}
	return comparison.ID, nil
}

func (s *ApartmentServiceImpl) ListComparisons(userID string) ([]dto.SavedComparison, error) {
	rows, err := s.comparisonRepo.FindByUser(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	comparisons := []dto.SavedComparison{}
	for i := range rows {
		comparisons = append(comparisons, dto.SavedComparison{
			ID:              rows[i].ID,
			ApartmentIDs:    rows[i].GetApartmentIDs(),
			ComparisonNotes: rows[i].ComparisonNotes,
			CreatedAt:       rows[i].CreatedAt,
		})
	}
	return comparisons, nil
}

// buildComparisonStats derives the aggregate block. The area range is
// entirely absent when no compared apartment defines an area.
func buildComparisonStats(apartments []models.Apartment) dto.ComparisonStats {
	stats := dto.ComparisonStats{}

	priceSum := 0.0
	for i := range apartments {
		apartment := &apartments[i]
		if i == 0 || apartment.MonthlyRent < stats.PriceRange.Min {
			stats.PriceRange.Min = apartment.MonthlyRent
		}
		if i == 0 || apartment.MonthlyRent > stats.PriceRange.Max {
			stats.PriceRange.Max = apartment.MonthlyRent
		}
		priceSum += apartment.MonthlyRent

		if i == 0 || apartment.TotalRooms < stats.RoomRange.Min {
			stats.RoomRange.Min = apartment.TotalRooms
		}
		if i == 0 || apartment.TotalRooms > stats.RoomRange.Max {
			stats.RoomRange.Max = apartment.TotalRooms
		}
	}
	stats.PriceRange.Avg = round2(priceSum / float64(len(apartments)))

	areaSum := 0.0
	areaCount := 0
	var areaRange dto.AreaRange
	for i := range apartments {
		area := apartments[i].TotalArea
		if area == nil || *area <= 0 {
			continue
		}
		if areaCount == 0 || *area < areaRange.Min {
			areaRange.Min = *area
		}
		if areaCount == 0 || *area > areaRange.Max {
			areaRange.Max = *area
		}
		areaSum += *area
		areaCount++
	}
	if areaCount > 0 {
		areaRange.Avg = round2(areaSum / float64(areaCount))
		stats.AreaRange = &areaRange
	}

	return stats
}

func buildApartmentResponse(apartment *models.Apartment, withContact bool) *dto.ApartmentResponse {
	response := &dto.ApartmentResponse{
		ID:                  apartment.ID,
		OwnerID:             apartment.OwnerID,
		Title:               apartment.Title,
		Description:         apartment.Description,
		Address:             apartment.Address,
		City:                apartment.City,
		Neighborhood:        apartment.Neighborhood,
		PostalCode:          apartment.PostalCode,
		Latitude:            apartment.Latitude,
		Longitude:           apartment.Longitude,
		TotalRooms:          apartment.TotalRooms,
		TotalBathrooms:      apartment.TotalBathrooms,
		TotalArea:           apartment.TotalArea,
		MonthlyRent:         apartment.MonthlyRent,
		Deposit:             apartment.Deposit,
		UtilitiesIncluded:   apartment.UtilitiesIncluded,
		PetFriendly:         apartment.PetFriendly,
		Furnished:           apartment.Furnished,
		ParkingAvailable:    apartment.ParkingAvailable,
		Amenities:           apartment.GetAmenities(),
		Images:              apartment.GetImages(),
		AvailableFrom:       apartment.AvailableFrom,
		LeaseDurationMonths: apartment.LeaseDurationMonths,
		Status:              string(apartment.Status),
		CreatedAt:           apartment.CreatedAt,
	}

	if apartment.Owner != nil {
		response.OwnerFirstName = apartment.Owner.FirstName
		response.OwnerLastName = apartment.Owner.LastName
		response.OwnerEmail = apartment.Owner.Email
		if withContact {
			response.OwnerPhone = apartment.Owner.Phone
		}
	}

	return response
}

func encodeStringList(values []string) (datatypes.JSON, error) {
	if values == nil {
		values = []string{}
	}
	encoded, err := json.Marshal(values)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(encoded), nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
