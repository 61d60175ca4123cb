package handlers

// AppHandlers holds every endpoint handler of the application.
type AppHandlers struct {
	AuthHandler      *AuthHandler
	UserHandler      *UserHandler
	ApartmentHandler *ApartmentHandler
	RoomHandler      *RoomHandler
}
