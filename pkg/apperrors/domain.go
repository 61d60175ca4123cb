package apperrors

import (
	"net/http"
)

// Factories and predefined variables for domain errors.

// ErrNotFound converts a repository "record not found" into a 404.
func ErrNotFound(err error, domain, message string) *AppError {
	return Wrap(err, CodeNotFound, domain, message, http.StatusNotFound)
}

// ErrConflict is the generic 409 factory.
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// ErrInvalidOperation rejects an operation that makes no sense for the
// current state of the resource.
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// --- Auth ---

// ErrInvalidCredentials answers 400, the status the login endpoint's
// clients expect for a wrong email or password.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusBadRequest,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already in use",
	http.StatusConflict,
)

var ErrWeakPassword = New(
	CodeValidationFailed,
	"validation",
	"Password is too weak. Minimum 6 characters required.",
	http.StatusBadRequest,
)

// --- Listings ---

var ErrApartmentNotFound = New(
	CodeNotFound,
	"apartment",
	"Apartment not found",
	http.StatusNotFound,
)

var ErrNotApartmentOwner = New(
	CodeForbidden,
	"apartment",
	"Not authorized",
	http.StatusForbidden,
)

var ErrNoUpdatableFields = New(
	CodeValidationFailed,
	"apartment",
	"No valid fields to update",
	http.StatusBadRequest,
)

var ErrRoomNotFound = New(
	CodeNotFound,
	"room",
	"Room not found or not available",
	http.StatusNotFound,
)

// --- Applications ---

var ErrApplicationNotFound = New(
	CodeNotFound,
	"application",
	"Application not found",
	http.StatusNotFound,
)

// ErrDuplicateApplication keeps the CONFLICT code but answers 400, the
// status clients of this endpoint already expect.
var ErrDuplicateApplication = New(
	CodeConflict,
	"application",
	"You have already applied for this room",
	http.StatusBadRequest,
)

var ErrInvalidApplicationStatus = New(
	CodeInvalidStatus,
	"application",
	"Invalid status",
	http.StatusBadRequest,
)

// --- Roommates ---

var ErrSelfInterest = New(
	CodeInvalidOperation,
	"roommate",
	"Cannot express interest in yourself",
	http.StatusBadRequest,
)

var ErrUserNotFound = New(
	CodeNotFound,
	"user",
	"User not found",
	http.StatusNotFound,
)

// --- Comparisons ---

var ErrComparisonSize = New(
	CodeValidationFailed,
	"comparison",
	"Can compare between 2-5 apartments",
	http.StatusBadRequest,
)

var ErrComparisonIncomplete = New(
	CodeNotFound,
	"comparison",
	"One or more apartments not found",
	http.StatusNotFound,
)
