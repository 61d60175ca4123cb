package services

import (
	"roomly_backend/internal/models"
	"roomly_backend/internal/repositories"
	"roomly_backend/internal/services/dto"

	"roomly_backend/pkg/apperrors"
)

type RoomService interface {
	Create(actorID string, req *dto.CreateRoomRequest) (string, error)
	List(query *dto.RoomListQuery) ([]dto.RoomResponse, error)
	GetByID(id string) (*dto.RoomResponse, error)
	Apply(roomID, applicantID string, req *dto.ApplyRequest) (string, error)
	ListApplications(roomID, actorID string) ([]dto.ApplicationResponse, error)
	ReviewApplication(applicationID, actorID string, req *dto.UpdateApplicationStatusRequest) error
}

type RoomServiceImpl struct {
	roomRepo        repositories.RoomRepository
	apartmentRepo   repositories.ApartmentRepository
	applicationRepo repositories.ApplicationRepository
}

func NewRoomService(
	roomRepo repositories.RoomRepository,
	apartmentRepo repositories.ApartmentRepository,
	applicationRepo repositories.ApplicationRepository,
) RoomService {
	return &RoomServiceImpl{
		roomRepo:        roomRepo,
		apartmentRepo:   apartmentRepo,
		applicationRepo: applicationRepo,
	}
}

// Create adds a room to one of the actor's apartments. Only the apartment
// owner may add rooms.
func (s *RoomServiceImpl) Create(actorID string, req *dto.CreateRoomRequest) (string, error) {
	ownerID, err := s.apartmentRepo.OwnerID(req.ApartmentID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrApartmentNotFound) {
			return "", apperrors.ErrApartmentNotFound
		}
		return "", apperrors.InternalError(err)
	}
	if ownerID != actorID {
		return "", apperrors.ErrNotApartmentOwner
	}

	images, err := encodeStringList(req.Images)
	if err != nil {
		return "", apperrors.InternalError(err)
	}

	room := &models.Room{
		ApartmentID:     req.ApartmentID,
		RoomNumber:      req.RoomNumber,
		RoomType:        models.RoomType(req.RoomType),
		Area:            req.Area,
		MonthlyRent:     req.MonthlyRent,
		Deposit:         req.Deposit,
		PrivateBathroom: req.PrivateBathroom,
		Furnished:       req.Furnished,
		Description:     req.Description,
		Images:          images,
		AvailableFrom:   req.AvailableFrom,
		Status:          models.RoomStatusAvailable,
	}

	if err := s.roomRepo.Create(room); err != nil {
		return "", apperrors.InternalError(err)
	}
	return room.ID, nil
}

func (s *RoomServiceImpl) List(query *dto.RoomListQuery) ([]dto.RoomResponse, error) {
	filter := repositories.RoomFilter{
		City:            query.City,
		MinPrice:        query.MinPrice,
		MaxPrice:        query.MaxPrice,
		RoomType:        query.RoomType,
		Furnished:       query.Furnished,
		PrivateBathroom: query.PrivateBathroom,
		Page:            query.Page,
		Limit:           query.Limit,
	}
	if filter.Page < 1 {
		filter.Page = defaultPage
	}
	if filter.Limit < 1 {
		filter.Limit = defaultLimit
	}

	rooms, err := s.roomRepo.FindAvailable(filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	result := []dto.RoomResponse{}
	for i := range rooms {
		result = append(result, *buildRoomResponse(&rooms[i], true))
	}
	return result, nil
}

func (s *RoomServiceImpl) GetByID(id string) (*dto.RoomResponse, error) {
	room, err := s.roomRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrRoomNotFound) {
			return nil, apperrors.ErrRoomNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return buildRoomResponse(room, true), nil
}

// Apply files an application for an available room. The unique index on
// (room_id, applicant_id) closes the race between the existence check and
// the insert.
func (s *RoomServiceImpl) Apply(roomID, applicantID string, req *dto.ApplyRequest) (string, error) {
	if _, err := s.roomRepo.FindAvailableByID(roomID); err != nil {
		if apperrors.Is(err, repositories.ErrRoomNotFound) {
			return "", apperrors.ErrRoomNotFound
		}
		return "", apperrors.InternalError(err)
	}

	applied, err := s.applicationRepo.HasApplied(roomID, applicantID)
	if err != nil {
		return "", apperrors.InternalError(err)
	}
	if applied {
		return "", apperrors.ErrDuplicateApplication
	}

	application := &models.RoomApplication{
		RoomID:      roomID,
		ApplicantID: applicantID,
		Message:     req.Message,
		Status:      models.ApplicationStatusPending,
	}
	if err := s.applicationRepo.Create(application); err != nil {
		if apperrors.Is(err, repositories.ErrDuplicateApplication) {
			return "", apperrors.ErrDuplicateApplication
		}
		return "", apperrors.InternalError(err)
	}
	return application.ID, nil
}

// ListApplications returns the applications for a room the actor owns.
func (s *RoomServiceImpl) ListApplications(roomID, actorID string) ([]dto.ApplicationResponse, error) {
	room, err := s.roomRepo.FindByID(roomID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrRoomNotFound) {
			return nil, apperrors.ErrRoomNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if room.Apartment == nil || room.Apartment.OwnerID != actorID {
		return nil, apperrors.NewForbiddenError("Not authorized")
	}

	applications, err := s.applicationRepo.FindByRoom(roomID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	result := []dto.ApplicationResponse{}
	for i := range applications {
		result = append(result, *buildApplicationResponse(&applications[i]))
	}
	return result, nil
}

// ReviewApplication approves or rejects a pending application. Approval also
// marks the room rented.
func (s *RoomServiceImpl) ReviewApplication(applicationID, actorID string, req *dto.UpdateApplicationStatusRequest) error {
	application, err := s.applicationRepo.FindByID(applicationID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return apperrors.ErrApplicationNotFound
		}
		return apperrors.InternalError(err)
	}
	if application.Room == nil || application.Room.Apartment == nil ||
		application.Room.Apartment.OwnerID != actorID {
		return apperrors.NewForbiddenError("Not authorized")
	}

	switch models.ApplicationStatus(req.Status) {
	case models.ApplicationStatusApproved:
		err = s.applicationRepo.ApproveAndRentRoom(application.ID, application.RoomID)
	case models.ApplicationStatusRejected:
		err = s.applicationRepo.Reject(application.ID)
	default:
		return apperrors.ErrInvalidApplicationStatus
	}

	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return apperrors.ErrApplicationNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func buildRoomResponse(room *models.Room, withApartment bool) *dto.RoomResponse {
	response := &dto.RoomResponse{
		ID:              room.ID,
		ApartmentID:     room.ApartmentID,
		RoomNumber:      room.RoomNumber,
		RoomType:        string(room.RoomType),
		Area:            room.Area,
		MonthlyRent:     room.MonthlyRent,
		Deposit:         room.Deposit,
		PrivateBathroom: room.PrivateBathroom,
		Furnished:       room.Furnished,
		Description:     room.Description,
		Images:          room.GetImages(),
		AvailableFrom:   room.AvailableFrom,
		Status:          string(room.Status),
		CreatedAt:       room.CreatedAt,
	}

	if withApartment && room.Apartment != nil {
		apartment := room.Apartment
		response.ApartmentTitle = apartment.Title
		response.ApartmentDescription = apartment.Description
		response.Address = apartment.Address
		response.City = apartment.City
		response.Neighborhood = apartment.Neighborhood
		response.ApartmentAmenities = apartment.GetAmenities()
		petFriendly := apartment.PetFriendly
		parking := apartment.ParkingAvailable
		response.PetFriendly = &petFriendly
		response.ParkingAvailable = &parking

		if apartment.Owner != nil {
			response.OwnerFirstName = apartment.Owner.FirstName
			response.OwnerLastName = apartment.Owner.LastName
			response.OwnerEmail = apartment.Owner.Email
			response.OwnerPhone = apartment.Owner.Phone
		}
	}

	return response
}

func buildApplicationResponse(application *models.RoomApplication) *dto.ApplicationResponse {
	response := &dto.ApplicationResponse{
		ID:          application.ID,
		RoomID:      application.RoomID,
		ApplicantID: application.ApplicantID,
		Message:     application.Message,
		Status:      string(application.Status),
		CreatedAt:   application.CreatedAt,
	}

	if application.Applicant != nil {
		applicant := application.Applicant
		response.FirstName = applicant.FirstName
		response.LastName = applicant.LastName
		response.Email = applicant.Email
		response.Phone = applicant.Phone
		response.Bio = applicant.Bio
		response.Age = applicant.Age
		response.Occupation = applicant.Occupation
	}

	return response
}
