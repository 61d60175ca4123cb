package models

type VerificationStatus string
type ApartmentStatus string
type RoomStatus string
type RoomType string
type ApplicationStatus string

const (
	VerificationStatusPending  VerificationStatus = "pending"
	VerificationStatusVerified VerificationStatus = "verified"
	VerificationStatusRejected VerificationStatus = "rejected"

	ApartmentStatusAvailable   ApartmentStatus = "available"
	ApartmentStatusRented      ApartmentStatus = "rented"
	ApartmentStatusUnavailable ApartmentStatus = "unavailable"

	RoomStatusAvailable RoomStatus = "available"
	RoomStatusRented    RoomStatus = "rented"

	RoomTypeBedroom       RoomType = "bedroom"
	RoomTypeStudio        RoomType = "studio"
	RoomTypeSharedBedroom RoomType = "shared_bedroom"

	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusApproved ApplicationStatus = "approved"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)
