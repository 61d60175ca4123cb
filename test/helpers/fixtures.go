package helpers

import (
	"encoding/json"
	"net/http"
	"testing"

	"roomly_backend/internal/auth"
	"roomly_backend/internal/models"

	"gorm.io/gorm"
)

// TestPassword is the plaintext password every fixture account uses.
const TestPassword = "password123"

// CreateUser inserts a verified account directly into the database. The
// mutate hooks adjust the user before the insert, roommate tests use them
// to fill the profile fields.
func CreateUser(t *testing.T, db *gorm.DB, email string, mutate ...func(*models.User)) *models.User {
	t.Helper()

	hash, err := auth.HashPassword(TestPassword)
	if err != nil {
		t.Fatalf("Failed to hash fixture password: %v", err)
	}

	user := &models.User{
		Email:              email,
		PasswordHash:       hash,
		FirstName:          "Test",
		LastName:           "User",
		VerificationStatus: models.VerificationStatusVerified,
	}
	for _, m := range mutate {
		m(user)
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("Failed to create fixture user %s: %v", email, err)
	}
	return user
}

// CreateAndLoginUser creates a verified account and logs it in through the
// API, returning the access token.
func CreateAndLoginUser(t *testing.T, ts *TestServer, email string, mutate ...func(*models.User)) (string, *models.User) {
	t.Helper()

	user := CreateUser(t, ts.DB, email, mutate...)

	res, body := ts.SendRequest(t, "POST", "/api/v1/auth/login", "", map[string]interface{}{
		"email":    email,
		"password": TestPassword,
	})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("Fixture login failed for %s: status %d, body %s", email, res.StatusCode, body)
	}

	var parsed struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal([]byte(body), &parsed); err != nil {
		t.Fatalf("Failed to decode login response: %v", err)
	}
	if parsed.AccessToken == "" {
		t.Fatalf("Fixture login for %s returned no access token", email)
	}

	return parsed.AccessToken, user
}

// CreateApartment inserts an available apartment owned by the given user.
func CreateApartment(t *testing.T, db *gorm.DB, ownerID, title, city string, rent float64, mutate ...func(*models.Apartment)) *models.Apartment {
	t.Helper()

	apartment := &models.Apartment{
		OwnerID:     ownerID,
		Title:       title,
		Address:     "1 Test Street",
		City:        city,
		TotalRooms:  3,
		MonthlyRent: rent,
		Status:      models.ApartmentStatusAvailable,
	}
	for _, m := range mutate {
		m(apartment)
	}

	if err := db.Create(apartment).Error; err != nil {
		t.Fatalf("Failed to create fixture apartment %s: %v", title, err)
	}
	return apartment
}

// CreateRoom inserts an available room in the given apartment.
func CreateRoom(t *testing.T, db *gorm.DB, apartmentID string, rent float64, mutate ...func(*models.Room)) *models.Room {
	t.Helper()

	room := &models.Room{
		ApartmentID: apartmentID,
		RoomType:    models.RoomTypeBedroom,
		MonthlyRent: rent,
		Status:      models.RoomStatusAvailable,
	}
	for _, m := range mutate {
		m(room)
	}

	if err := db.Create(room).Error; err != nil {
		t.Fatalf("Failed to create fixture room: %v", err)
	}
	return room
}
