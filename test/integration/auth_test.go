package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"roomly_backend/internal/models"
	"roomly_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	ts := helpers.NewTestServer(t)

	registerBody := map[string]interface{}{
		"email":      "alice@test.com",
		"password":   "super_password123",
		"first_name": "Alice",
		"last_name":  "Anderson",
		"phone":      "+15550100",
	}
	regRes, regBodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/register", "", registerBody)

	assert.Equal(t, http.StatusCreated, regRes.StatusCode)
	assert.Contains(t, regBodyStr, "access_token")
	assert.Contains(t, regBodyStr, "refresh_token")
	assert.Contains(t, regBodyStr, "alice@test.com")
	assert.Contains(t, regBodyStr, "pending")

	loginRes, loginBodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/login", "", map[string]interface{}{
		"email":    "alice@test.com",
		"password": "super_password123",
	})

	assert.Equal(t, http.StatusOK, loginRes.StatusCode)
	assert.Contains(t, loginBodyStr, "access_token")
}

func TestRegister_DuplicateEmail(t *testing.T) {
	ts := helpers.NewTestServer(t)
	helpers.CreateUser(t, ts.DB, "duplicate@test.com")

	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/register", "", map[string]interface{}{
		"email":      "duplicate@test.com",
		"password":   "password_is_long_enough",
		"first_name": "Second",
		"last_name":  "User",
	})

	assert.Equal(t, http.StatusConflict, res.StatusCode)
	assert.Contains(t, bodyStr, "Email already in use")
}

func TestRegister_InvalidPayload(t *testing.T) {
	ts := helpers.NewTestServer(t)

	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/register", "", map[string]interface{}{
		"email":      "not-an-email",
		"password":   "short",
		"first_name": "",
		"last_name":  "User",
	})

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, "email")
}

func TestLogin_BadPassword(t *testing.T) {
	ts := helpers.NewTestServer(t)
	helpers.CreateUser(t, ts.DB, "bob@test.com")

	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/login", "", map[string]interface{}{
		"email":    "bob@test.com",
		"password": "wrong-password",
	})

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, "Invalid email or password")
}

func TestLogin_UnknownEmail(t *testing.T) {
	ts := helpers.NewTestServer(t)

	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/login", "", map[string]interface{}{
		"email":    "ghost@test.com",
		"password": "whatever123",
	})

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, "Invalid email or password")
}

func TestRefreshTokenRotation(t *testing.T) {
	ts := helpers.NewTestServer(t)
	helpers.CreateUser(t, ts.DB, "carol@test.com")

	_, loginBodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/login", "", map[string]interface{}{
		"email":    "carol@test.com",
		"password": helpers.TestPassword,
	})

	var loginParsed struct {
		RefreshToken string `json:"refresh_token"`
	}
	require.NoError(t, json.Unmarshal([]byte(loginBodyStr), &loginParsed))
	require.NotEmpty(t, loginParsed.RefreshToken)

	refreshRes, refreshBodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/refresh", "", map[string]interface{}{
		"refresh_token": loginParsed.RefreshToken,
	})
	assert.Equal(t, http.StatusOK, refreshRes.StatusCode)
	assert.Contains(t, refreshBodyStr, "access_token")

	// The old token was rotated out, a second refresh with it must fail.
	retryRes, _ := ts.SendRequest(t, "POST", "/api/v1/auth/refresh", "", map[string]interface{}{
		"refresh_token": loginParsed.RefreshToken,
	})
	assert.Equal(t, http.StatusUnauthorized, retryRes.StatusCode)
}

func TestLogoutInvalidatesRefreshToken(t *testing.T) {
	ts := helpers.NewTestServer(t)
	helpers.CreateUser(t, ts.DB, "dave@test.com")

	_, loginBodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/login", "", map[string]interface{}{
		"email":    "dave@test.com",
		"password": helpers.TestPassword,
	})

	var loginParsed struct {
		RefreshToken string `json:"refresh_token"`
	}
	require.NoError(t, json.Unmarshal([]byte(loginBodyStr), &loginParsed))

	logoutRes, _ := ts.SendRequest(t, "POST", "/api/v1/auth/logout", "", map[string]interface{}{
		"refresh_token": loginParsed.RefreshToken,
	})
	assert.Equal(t, http.StatusOK, logoutRes.StatusCode)

	refreshRes, _ := ts.SendRequest(t, "POST", "/api/v1/auth/refresh", "", map[string]interface{}{
		"refresh_token": loginParsed.RefreshToken,
	})
	assert.Equal(t, http.StatusUnauthorized, refreshRes.StatusCode)
}

func TestLogoutAll_RevokesEverySession(t *testing.T) {
	ts := helpers.NewTestServer(t)
	user := helpers.CreateUser(t, ts.DB, "erin@test.com")

	login := func() (string, string) {
		_, bodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/login", "", map[string]interface{}{
			"email":    "erin@test.com",
			"password": helpers.TestPassword,
		})
		var parsed struct {
			AccessToken  string `json:"access_token"`
			RefreshToken string `json:"refresh_token"`
		}
		require.NoError(t, json.Unmarshal([]byte(bodyStr), &parsed))
		return parsed.AccessToken, parsed.RefreshToken
	}

	_, firstRefresh := login()
	accessToken, secondRefresh := login()

	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/logout-all", accessToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "Logged out on all devices")

	// Both sessions' refresh tokens are gone.
	for _, refreshToken := range []string{firstRefresh, secondRefresh} {
		refreshRes, _ := ts.SendRequest(t, "POST", "/api/v1/auth/refresh", "", map[string]interface{}{
			"refresh_token": refreshToken,
		})
		assert.Equal(t, http.StatusUnauthorized, refreshRes.StatusCode)
	}

	var count int64
	ts.DB.Model(&models.RefreshToken{}).Where("user_id = ?", user.ID).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestLogoutAll_RequiresAuth(t *testing.T) {
	ts := helpers.NewTestServer(t)

	res, _ := ts.SendRequest(t, "POST", "/api/v1/auth/logout-all", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestRefresh_ExpiredTokenRejectedAndPurged(t *testing.T) {
	ts := helpers.NewTestServer(t)
	user := helpers.CreateUser(t, ts.DB, "frank@test.com")

	expired := &models.RefreshToken{
		UserID:    user.ID,
		Token:     "expired-refresh-token",
		ExpiresAt: time.Now().Add(-time.Hour),
	}
	require.NoError(t, ts.DB.Create(expired).Error)

	res, _ := ts.SendRequest(t, "POST", "/api/v1/auth/refresh", "", map[string]interface{}{
		"refresh_token": "expired-refresh-token",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	var count int64
	ts.DB.Model(&models.RefreshToken{}).Where("token = ?", "expired-refresh-token").Count(&count)
	assert.Equal(t, int64(0), count, "expired token is deleted on use")
}

func TestProtectedRouteWithoutToken(t *testing.T) {
	ts := helpers.NewTestServer(t)

	res, _ := ts.SendRequest(t, "GET", "/api/v1/users/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestProtectedRouteWithGarbageToken(t *testing.T) {
	ts := helpers.NewTestServer(t)

	res, _ := ts.SendRequest(t, "GET", "/api/v1/users/profile", "not-a-real-token", nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}
