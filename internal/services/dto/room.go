package dto

import "time"

// CreateRoomRequest - new room inside an owned apartment
type CreateRoomRequest struct {
	ApartmentID     string     `json:"apartment_id" validate:"required"`
	RoomNumber      string     `json:"room_number"`
	RoomType        string     `json:"room_type" validate:"required,is-room-type"`
	Area            *float64   `json:"area" validate:"omitempty,gt=0"`
	MonthlyRent     float64    `json:"monthly_rent" validate:"required,gt=0"`
	Deposit         float64    `json:"deposit" validate:"omitempty,min=0"`
	PrivateBathroom bool       `json:"private_bathroom"`
	Furnished       bool       `json:"furnished"`
	Description     string     `json:"description" validate:"omitempty,max=5000"`
	Images          []string   `json:"images"`
	AvailableFrom   *time.Time `json:"available_from"`
}

// RoomListQuery - browse filters, all optional
type RoomListQuery struct {
	City            string   `form:"city"`
	MinPrice        *float64 `form:"min_price" validate:"omitempty,min=0"`
	MaxPrice        *float64 `form:"max_price" validate:"omitempty,min=0"`
	RoomType        string   `form:"room_type" validate:"omitempty,is-room-type"`
	Furnished       *bool    `form:"furnished"`
	PrivateBathroom *bool    `form:"private_bathroom"`
	Page            int      `form:"page" validate:"omitempty,min=1"`
	Limit           int      `form:"limit" validate:"omitempty,min=1,max=100"`
}

// RoomResponse - a room with its apartment context joined in
type RoomResponse struct {
	ID              string     `json:"id"`
	ApartmentID     string     `json:"apartment_id"`
	RoomNumber      string     `json:"room_number,omitempty"`
	RoomType        string     `json:"room_type"`
	Area            *float64   `json:"area,omitempty"`
	MonthlyRent     float64    `json:"monthly_rent"`
	Deposit         float64    `json:"deposit"`
	PrivateBathroom bool       `json:"private_bathroom"`
	Furnished       bool       `json:"furnished"`
	Description     string     `json:"description,omitempty"`
	Images          []string   `json:"images"`
	AvailableFrom   *time.Time `json:"available_from,omitempty"`
	Status          string     `json:"status"`
	CreatedAt       time.Time  `json:"created_at"`

	ApartmentTitle       string   `json:"apartment_title,omitempty"`
	ApartmentDescription string   `json:"apartment_description,omitempty"`
	Address              string   `json:"address,omitempty"`
	City                 string   `json:"city,omitempty"`
	Neighborhood         string   `json:"neighborhood,omitempty"`
	ApartmentAmenities   []string `json:"apartment_amenities,omitempty"`
	PetFriendly          *bool    `json:"pet_friendly,omitempty"`
	ParkingAvailable     *bool    `json:"parking_available,omitempty"`

	OwnerFirstName string `json:"first_name,omitempty"`
	OwnerLastName  string `json:"last_name,omitempty"`
	OwnerEmail     string `json:"owner_email,omitempty"`
	OwnerPhone     string `json:"owner_phone,omitempty"`
}

// ApplyRequest - apply for a room
type ApplyRequest struct {
	Message string `json:"message" validate:"omitempty,max=2000"`
}

// ApplicationResponse - an application with the applicant's profile joined
type ApplicationResponse struct {
	ID          string    `json:"id"`
	RoomID      string    `json:"room_id"`
	ApplicantID string    `json:"applicant_id"`
	Message     string    `json:"message,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`

	FirstName  string `json:"first_name,omitempty"`
	LastName   string `json:"last_name,omitempty"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Bio        string `json:"bio,omitempty"`
	Age        *int   `json:"age,omitempty"`
	Occupation string `json:"occupation,omitempty"`
}

// UpdateApplicationStatusRequest - approve or reject an application
type UpdateApplicationStatusRequest struct {
	Status string `json:"status" validate:"required,is-application-status"`
}
