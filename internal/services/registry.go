package services

import "roomly_backend/internal/repositories"

// ServiceContainer wires every service over the shared repository set.
type ServiceContainer struct {
	Auth      AuthService
	User      UserService
	Apartment ApartmentService
	Room      RoomService
}

func NewServiceContainer(
	userRepo repositories.UserRepository,
	apartmentRepo repositories.ApartmentRepository,
	roomRepo repositories.RoomRepository,
	applicationRepo repositories.ApplicationRepository,
	matchRepo repositories.MatchRepository,
	comparisonRepo repositories.ComparisonRepository,
) *ServiceContainer {
	return &ServiceContainer{
		Auth:      NewAuthService(userRepo),
		User:      NewUserService(userRepo, matchRepo),
		Apartment: NewApartmentService(apartmentRepo, comparisonRepo),
		Room:      NewRoomService(roomRepo, apartmentRepo, applicationRepo),
	}
}
