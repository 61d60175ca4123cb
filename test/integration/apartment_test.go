package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"roomly_backend/internal/models"
	"roomly_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateApartment(t *testing.T) {
	ts := helpers.NewTestServer(t)
	token, owner := helpers.CreateAndLoginUser(t, ts, "owner@test.com")

	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/apartments", token, map[string]interface{}{
		"title":        "Sunny 3-room flat",
		"address":      "12 Main Street",
		"city":         "Berlin",
		"total_rooms":  3,
		"monthly_rent": 1500.0,
		"amenities":    []string{"wifi", "dishwasher"},
	})

	assert.Equal(t, http.StatusCreated, res.StatusCode)
	assert.Contains(t, bodyStr, "apartment_id")

	var apartment models.Apartment
	require.NoError(t, ts.DB.First(&apartment, "title = ?", "Sunny 3-room flat").Error)
	assert.Equal(t, owner.ID, apartment.OwnerID)
	assert.Equal(t, models.ApartmentStatusAvailable, apartment.Status)
	assert.Equal(t, []string{"wifi", "dishwasher"}, apartment.GetAmenities())
}

func TestCreateApartment_RequiresAuth(t *testing.T) {
	ts := helpers.NewTestServer(t)

	res, _ := ts.SendRequest(t, "POST", "/api/v1/apartments", "", map[string]interface{}{
		"title":        "No auth",
		"address":      "Nowhere 1",
		"city":         "Berlin",
		"total_rooms":  1,
		"monthly_rent": 500.0,
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestListApartments_Filters(t *testing.T) {
	ts := helpers.NewTestServer(t)
	owner := helpers.CreateUser(t, ts.DB, "landlord@test.com")

	helpers.CreateApartment(t, ts.DB, owner.ID, "Cheap Berlin", "Berlin", 800, func(a *models.Apartment) {
		a.Furnished = true
	})
	helpers.CreateApartment(t, ts.DB, owner.ID, "Pricey Berlin", "Berlin", 2500)
	helpers.CreateApartment(t, ts.DB, owner.ID, "Munich Flat", "Munich", 900)
	helpers.CreateApartment(t, ts.DB, owner.ID, "Rented Berlin", "Berlin", 700, func(a *models.Apartment) {
		a.Status = models.ApartmentStatusRented
	})

	// City and price filters combine, rented listings never show up.
	res, bodyStr := ts.SendRequest(t, "GET", "/api/v1/apartments?city=Berlin&max_price=1000", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var parsed struct {
		Apartments []struct {
			Title string `json:"title"`
		} `json:"apartments"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &parsed))
	require.Len(t, parsed.Apartments, 1)
	assert.Equal(t, "Cheap Berlin", parsed.Apartments[0].Title)

	// Boolean filter narrows further.
	res, bodyStr = ts.SendRequest(t, "GET", "/api/v1/apartments?city=Berlin&furnished=true", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &parsed))
	require.Len(t, parsed.Apartments, 1)
	assert.Equal(t, "Cheap Berlin", parsed.Apartments[0].Title)
}

func TestListApartments_Pagination(t *testing.T) {
	ts := helpers.NewTestServer(t)
	owner := helpers.CreateUser(t, ts.DB, "landlord@test.com")

	helpers.CreateApartment(t, ts.DB, owner.ID, "Flat A", "Hamburg", 900)
	helpers.CreateApartment(t, ts.DB, owner.ID, "Flat B", "Hamburg", 950)
	helpers.CreateApartment(t, ts.DB, owner.ID, "Flat C", "Hamburg", 1000)

	var parsed struct {
		Apartments []struct {
			Title string `json:"title"`
		} `json:"apartments"`
	}

	res, bodyStr := ts.SendRequest(t, "GET", "/api/v1/apartments?city=Hamburg&page=1&limit=2", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &parsed))
	assert.Len(t, parsed.Apartments, 2)

	res, bodyStr = ts.SendRequest(t, "GET", "/api/v1/apartments?city=Hamburg&page=2&limit=2", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &parsed))
	assert.Len(t, parsed.Apartments, 1)
}

func TestGetApartment_DetailWithRooms(t *testing.T) {
	ts := helpers.NewTestServer(t)
	owner := helpers.CreateUser(t, ts.DB, "landlord@test.com", func(u *models.User) {
		u.Phone = "+15550123"
	})
	apartment := helpers.CreateApartment(t, ts.DB, owner.ID, "Shared Flat", "Berlin", 1800)
	helpers.CreateRoom(t, ts.DB, apartment.ID, 600)
	helpers.CreateRoom(t, ts.DB, apartment.ID, 650, func(r *models.Room) {
		r.Status = models.RoomStatusRented
	})

	res, bodyStr := ts.SendRequest(t, "GET", "/api/v1/apartments/"+apartment.ID, "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var parsed struct {
		Title          string `json:"title"`
		OwnerPhone     string `json:"owner_phone"`
		AvailableRooms []struct {
			MonthlyRent float64 `json:"monthly_rent"`
		} `json:"available_rooms"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &parsed))
	assert.Equal(t, "Shared Flat", parsed.Title)
	assert.Equal(t, "+15550123", parsed.OwnerPhone)
	// Only the available room is listed.
	require.Len(t, parsed.AvailableRooms, 1)
	assert.Equal(t, 600.0, parsed.AvailableRooms[0].MonthlyRent)
}

func TestGetApartment_NotFound(t *testing.T) {
	ts := helpers.NewTestServer(t)

	res, bodyStr := ts.SendRequest(t, "GET", "/api/v1/apartments/00000000-0000-0000-0000-000000000000", "", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Contains(t, bodyStr, "Apartment not found")
}

func TestUpdateApartment(t *testing.T) {
	ts := helpers.NewTestServer(t)
	token, owner := helpers.CreateAndLoginUser(t, ts, "owner@test.com")
	apartment := helpers.CreateApartment(t, ts.DB, owner.ID, "Old Title", "Berlin", 1200)

	res, _ := ts.SendRequest(t, "PUT", "/api/v1/apartments/"+apartment.ID, token, map[string]interface{}{
		"title":        "New Title",
		"monthly_rent": 1300.0,
		"owner_id":     "attacker-id",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var updated models.Apartment
	require.NoError(t, ts.DB.First(&updated, "id = ?", apartment.ID).Error)
	assert.Equal(t, "New Title", updated.Title)
	assert.Equal(t, 1300.0, updated.MonthlyRent)
	// owner_id is not on the allow-list and must not move.
	assert.Equal(t, owner.ID, updated.OwnerID)
}

func TestUpdateApartment_NoUpdatableFields(t *testing.T) {
	ts := helpers.NewTestServer(t)
	token, owner := helpers.CreateAndLoginUser(t, ts, "owner@test.com")
	apartment := helpers.CreateApartment(t, ts.DB, owner.ID, "Flat", "Berlin", 1200)

	res, bodyStr := ts.SendRequest(t, "PUT", "/api/v1/apartments/"+apartment.ID, token, map[string]interface{}{
		"owner_id": "attacker-id",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, "No valid fields to update")
}

func TestUpdateApartment_NotOwner(t *testing.T) {
	ts := helpers.NewTestServer(t)
	owner := helpers.CreateUser(t, ts.DB, "owner@test.com")
	apartment := helpers.CreateApartment(t, ts.DB, owner.ID, "Flat", "Berlin", 1200)

	intruderToken, _ := helpers.CreateAndLoginUser(t, ts, "intruder@test.com")

	res, bodyStr := ts.SendRequest(t, "PUT", "/api/v1/apartments/"+apartment.ID, intruderToken, map[string]interface{}{
		"title": "Hijacked",
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
	assert.Contains(t, bodyStr, "Not authorized")

	var unchanged models.Apartment
	require.NoError(t, ts.DB.First(&unchanged, "id = ?", apartment.ID).Error)
	assert.Equal(t, "Flat", unchanged.Title)
}

func TestUpdateApartment_NotFound(t *testing.T) {
	ts := helpers.NewTestServer(t)
	token, _ := helpers.CreateAndLoginUser(t, ts, "owner@test.com")

	res, _ := ts.SendRequest(t, "PUT", "/api/v1/apartments/00000000-0000-0000-0000-000000000000", token, map[string]interface{}{
		"title": "Ghost"},
	)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestCompareApartments(t *testing.T) {
	ts := helpers.NewTestServer(t)
	owner := helpers.CreateUser(t, ts.DB, "landlord@test.com")

	area1 := 50.0
	area2 := 100.0
	a1 := helpers.CreateApartment(t, ts.DB, owner.ID, "Small", "Berlin", 1000, func(a *models.Apartment) {
		a.TotalArea = &area1
		a.TotalRooms = 2
	})
	a2 := helpers.CreateApartment(t, ts.DB, owner.ID, "Large", "Berlin", 2000, func(a *models.Apartment) {
		a.TotalArea = &area2
		a.TotalRooms = 4
	})
	a3 := helpers.CreateApartment(t, ts.DB, owner.ID, "NoArea", "Berlin", 3000, func(a *models.Apartment) {
		a.TotalRooms = 3
	})

	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/apartments/compare", "", map[string]interface{}{
		"apartment_ids": []string{a1.ID, a2.ID, a3.ID},
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var parsed struct {
		Apartments []struct {
			Title        string   `json:"title"`
			PricePerSqft *float64 `json:"price_per_sqft"`
		} `json:"apartments"`
		Stats struct {
			PriceRange struct {
				Min float64 `json:"min"`
				Max float64 `json:"max"`
				Avg float64 `json:"avg"`
			} `json:"price_range"`
			RoomRange struct {
				Min int `json:"min"`
				Max int `json:"max"`
			} `json:"room_range"`
			AreaRange *struct {
				Min float64 `json:"min"`
				Max float64 `json:"max"`
				Avg float64 `json:"avg"`
			} `json:"area_range"`
		} `json:"stats"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &parsed))
	require.Len(t, parsed.Apartments, 3)

	assert.Equal(t, 1000.0, parsed.Stats.PriceRange.Min)
	assert.Equal(t, 3000.0, parsed.Stats.PriceRange.Max)
	assert.Equal(t, 2000.0, parsed.Stats.PriceRange.Avg)
	assert.Equal(t, 2, parsed.Stats.RoomRange.Min)
	assert.Equal(t, 4, parsed.Stats.RoomRange.Max)

	// The area aggregate only covers listings that define an area.
	require.NotNil(t, parsed.Stats.AreaRange)
	assert.Equal(t, 50.0, parsed.Stats.AreaRange.Min)
	assert.Equal(t, 100.0, parsed.Stats.AreaRange.Max)
	assert.Equal(t, 75.0, parsed.Stats.AreaRange.Avg)

	perSqft := map[string]*float64{}
	for _, a := range parsed.Apartments {
		perSqft[a.Title] = a.PricePerSqft
	}
	require.NotNil(t, perSqft["Small"])
	assert.Equal(t, 20.0, *perSqft["Small"])
	require.NotNil(t, perSqft["Large"])
	assert.Equal(t, 20.0, *perSqft["Large"])
	assert.Nil(t, perSqft["NoArea"])
}

func TestCompareApartments_NoAreas(t *testing.T) {
	ts := helpers.NewTestServer(t)
	owner := helpers.CreateUser(t, ts.DB, "landlord@test.com")
	a1 := helpers.CreateApartment(t, ts.DB, owner.ID, "One", "Berlin", 1000)
	a2 := helpers.CreateApartment(t, ts.DB, owner.ID, "Two", "Berlin", 1500)

	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/apartments/compare", "", map[string]interface{}{
		"apartment_ids": []string{a1.ID, a2.ID},
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.NotContains(t, bodyStr, "area_range")
}

func TestCompareApartments_MissingListing(t *testing.T) {
	ts := helpers.NewTestServer(t)
	owner := helpers.CreateUser(t, ts.DB, "landlord@test.com")
	a1 := helpers.CreateApartment(t, ts.DB, owner.ID, "One", "Berlin", 1000)

	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/apartments/compare", "", map[string]interface{}{
		"apartment_ids": []string{a1.ID, "00000000-0000-0000-0000-000000000000"},
	})
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Contains(t, bodyStr, "One or more apartments not found")
}

func TestCompareApartments_TooFew(t *testing.T) {
	ts := helpers.NewTestServer(t)
	owner := helpers.CreateUser(t, ts.DB, "landlord@test.com")
	a1 := helpers.CreateApartment(t, ts.DB, owner.ID, "One", "Berlin", 1000)

	res, _ := ts.SendRequest(t, "POST", "/api/v1/apartments/compare", "", map[string]interface{}{
		"apartment_ids": []string{a1.ID},
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}
