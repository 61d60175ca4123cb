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

func TestSaveAndListComparisons(t *testing.T) {
	ts := helpers.NewTestServer(t)
	owner := helpers.CreateUser(t, ts.DB, "landlord@test.com")
	a1 := helpers.CreateApartment(t, ts.DB, owner.ID, "One", "Berlin", 1000)
	a2 := helpers.CreateApartment(t, ts.DB, owner.ID, "Two", "Berlin", 1500)

	token, user := helpers.CreateAndLoginUser(t, ts, "hunter@test.com")

	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/apartments/comparisons", token, map[string]interface{}{
		"apartment_ids":    []string{a1.ID, a2.ID},
		"comparison_notes": "Both near work",
	})
	assert.Equal(t, http.StatusCreated, res.StatusCode)
	assert.Contains(t, bodyStr, "comparison_id")

	var stored models.ApartmentComparison
	require.NoError(t, ts.DB.First(&stored, "user_id = ?", user.ID).Error)
	assert.ElementsMatch(t, []string{a1.ID, a2.ID}, stored.GetApartmentIDs())

	res, bodyStr = ts.SendRequest(t, "GET", "/api/v1/apartments/comparisons", token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var parsed struct {
		Comparisons []struct {
			ApartmentIDs    []string `json:"apartment_ids"`
			ComparisonNotes string   `json:"comparison_notes"`
		} `json:"comparisons"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &parsed))
	require.Len(t, parsed.Comparisons, 1)
	assert.ElementsMatch(t, []string{a1.ID, a2.ID}, parsed.Comparisons[0].ApartmentIDs)
	assert.Equal(t, "Both near work", parsed.Comparisons[0].ComparisonNotes)
}

func TestListComparisons_OwnOnly(t *testing.T) {
	ts := helpers.NewTestServer(t)
	owner := helpers.CreateUser(t, ts.DB, "landlord@test.com")
	a1 := helpers.CreateApartment(t, ts.DB, owner.ID, "One", "Berlin", 1000)
	a2 := helpers.CreateApartment(t, ts.DB, owner.ID, "Two", "Berlin", 1500)

	tokenA, _ := helpers.CreateAndLoginUser(t, ts, "a@test.com")
	tokenB, _ := helpers.CreateAndLoginUser(t, ts, "b@test.com")

	res, _ := ts.SendRequest(t, "POST", "/api/v1/apartments/comparisons", tokenA, map[string]interface{}{
		"apartment_ids": []string{a1.ID, a2.ID},
	})
	require.Equal(t, http.StatusCreated, res.StatusCode)

	var parsed struct {
		Comparisons []json.RawMessage `json:"comparisons"`
	}

	res, bodyStr := ts.SendRequest(t, "GET", "/api/v1/apartments/comparisons", tokenB, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &parsed))
	assert.Len(t, parsed.Comparisons, 0)
}

func TestSaveComparison_RequiresAuth(t *testing.T) {
	ts := helpers.NewTestServer(t)

	res, _ := ts.SendRequest(t, "POST", "/api/v1/apartments/comparisons", "", map[string]interface{}{
		"apartment_ids": []string{"x", "y"},
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestHealthEndpoint(t *testing.T) {
	ts := helpers.NewTestServer(t)

	res, bodyStr := ts.SendRequest(t, "GET", "/health", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "ok")
}
