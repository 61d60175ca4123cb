package dto

import "time"

// CreateApartmentRequest - new listing payload
type CreateApartmentRequest struct {
	Title               string     `json:"title" validate:"required,min=3,max=200"`
	Description         string     `json:"description" validate:"omitempty,max=5000"`
	Address             string     `json:"address" validate:"required"`
	City                string     `json:"city" validate:"required"`
	Neighborhood        string     `json:"neighborhood"`
	PostalCode          string     `json:"postal_code"`
	Latitude            *float64   `json:"latitude" validate:"omitempty,min=-90,max=90"`
	Longitude           *float64   `json:"longitude" validate:"omitempty,min=-180,max=180"`
	TotalRooms          int        `json:"total_rooms" validate:"required,min=1"`
	TotalBathrooms      int        `json:"total_bathrooms" validate:"omitempty,min=0"`
	TotalArea           *float64   `json:"total_area" validate:"omitempty,gt=0"`
	MonthlyRent         float64    `json:"monthly_rent" validate:"required,gt=0"`
	Deposit             float64    `json:"deposit" validate:"omitempty,min=0"`
	UtilitiesIncluded   bool       `json:"utilities_included"`
	PetFriendly         bool       `json:"pet_friendly"`
	Furnished           bool       `json:"furnished"`
	ParkingAvailable    bool       `json:"parking_available"`
	Amenities           []string   `json:"amenities"`
	Images              []string   `json:"images"`
	AvailableFrom       *time.Time `json:"available_from"`
	LeaseDurationMonths *int       `json:"lease_duration_months" validate:"omitempty,min=1"`
}

// UpdateApartmentRequest - partial update; only non-nil fields on the
// allow-list are applied.
type UpdateApartmentRequest struct {
	Title             *string  `json:"title,omitempty" validate:"omitempty,min=3,max=200"`
	Description       *string  `json:"description,omitempty" validate:"omitempty,max=5000"`
	MonthlyRent       *float64 `json:"monthly_rent,omitempty" validate:"omitempty,gt=0"`
	Deposit           *float64 `json:"deposit,omitempty" validate:"omitempty,min=0"`
	UtilitiesIncluded *bool    `json:"utilities_included,omitempty"`
	PetFriendly       *bool    `json:"pet_friendly,omitempty"`
	Furnished         *bool    `json:"furnished,omitempty"`
	ParkingAvailable  *bool    `json:"parking_available,omitempty"`
	Amenities         []string `json:"amenities,omitempty"`
	Status            *string  `json:"status,omitempty" validate:"omitempty,oneof=available rented unavailable"`
}

// ApartmentListQuery - browse filters, all optional
type ApartmentListQuery struct {
	City        string   `form:"city"`
	MinPrice    *float64 `form:"min_price" validate:"omitempty,min=0"`
	MaxPrice    *float64 `form:"max_price" validate:"omitempty,min=0"`
	Rooms       *int     `form:"rooms" validate:"omitempty,min=1"`
	Furnished   *bool    `form:"furnished"`
	PetFriendly *bool    `form:"pet_friendly"`
	Parking     *bool    `form:"parking"`
	Page        int      `form:"page" validate:"omitempty,min=1"`
	Limit       int      `form:"limit" validate:"omitempty,min=1,max=100"`
}

// ApartmentResponse - a listing row with joined owner identity and decoded
// structured fields
type ApartmentResponse struct {
	ID                  string     `json:"id"`
	OwnerID             string     `json:"owner_id"`
	Title               string     `json:"title"`
	Description         string     `json:"description,omitempty"`
	Address             string     `json:"address"`
	City                string     `json:"city"`
	Neighborhood        string     `json:"neighborhood,omitempty"`
	PostalCode          string     `json:"postal_code,omitempty"`
	Latitude            *float64   `json:"latitude,omitempty"`
	Longitude           *float64   `json:"longitude,omitempty"`
	TotalRooms          int        `json:"total_rooms"`
	TotalBathrooms      int        `json:"total_bathrooms"`
	TotalArea           *float64   `json:"total_area,omitempty"`
	MonthlyRent         float64    `json:"monthly_rent"`
	Deposit             float64    `json:"deposit"`
	UtilitiesIncluded   bool       `json:"utilities_included"`
	PetFriendly         bool       `json:"pet_friendly"`
	Furnished           bool       `json:"furnished"`
	ParkingAvailable    bool       `json:"parking_available"`
	Amenities           []string   `json:"amenities"`
	Images              []string   `json:"images"`
	AvailableFrom       *time.Time `json:"available_from,omitempty"`
	LeaseDurationMonths *int       `json:"lease_duration_months,omitempty"`
	Status              string     `json:"status"`
	CreatedAt           time.Time  `json:"created_at"`

	OwnerFirstName string `json:"first_name,omitempty"`
	OwnerLastName  string `json:"last_name,omitempty"`
	OwnerEmail     string `json:"owner_email,omitempty"`
	OwnerPhone     string `json:"owner_phone,omitempty"`

	AvailableRooms []RoomResponse `json:"available_rooms,omitempty"`
}

// CompareRequest - ad-hoc comparison of 2-5 listings
type CompareRequest struct {
	ApartmentIDs []string `json:"apartment_ids" validate:"required,min=2,max=5"`
}

// ComparedApartment adds the derived per-listing metric to the listing view.
type ComparedApartment struct {
	ApartmentResponse
	PricePerSqft *float64 `json:"price_per_sqft"`
}

type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
	Avg float64 `json:"avg"`
}

type RoomRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

type AreaRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
	Avg float64 `json:"avg"`
}

// ComparisonStats - aggregates across the compared set. AreaRange is nil
// (and omitted) when no compared apartment defines an area.
type ComparisonStats struct {
	PriceRange PriceRange `json:"price_range"`
	RoomRange  RoomRange  `json:"room_range"`
	AreaRange  *AreaRange `json:"area_range,omitempty"`
}

// CompareResponse - the comparison payload
type CompareResponse struct {
	Apartments []ComparedApartment `json:"apartments"`
	Stats      ComparisonStats     `json:"stats"`
}

// CreateComparisonRequest - save a comparison for later
type CreateComparisonRequest struct {
	ApartmentIDs    []string `json:"apartment_ids" validate:"required,min=2,max=5"`
	ComparisonNotes string   `json:"comparison_notes" validate:"omitempty,max=2000"`
}

// SavedComparison - a stored comparison with decoded ids
type SavedComparison struct {
	ID              string    `json:"id"`
	ApartmentIDs    []string  `json:"apartment_ids"`
	ComparisonNotes string    `json:"comparison_notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}
