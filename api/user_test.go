package api

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileRoutes(t *testing.T) {
	a := newTestAPI(t)

	_, token := registerUser(t, a, "profile@example.com")

	for _, path := range []string{"/api/auth/profile", "/api/users/profile"} {
		w := doJSON(t, a, http.MethodGet, path, token, nil)
		require.Equal(t, http.StatusOK, w.Code, path)
		assert.Equal(t, "profile@example.com", decodeBody(t, w)["user"].(map[string]any)["email"])
	}
}

func TestProfilePartialUpdate(t *testing.T) {
	a := newTestAPI(t)

	_, token := registerUser(t, a, "partial@example.com")

	w := doJSON(t, a, http.MethodPut, "/api/users/profile", token, gin.H{
		"display_name": "New Name",
		"twitch_url":   "https://twitch.tv/newname",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	user := decodeBody(t, w)["user"].(map[string]any)
	assert.Equal(t, "New Name", user["display_name"])
	assert.Equal(t, "https://twitch.tv/newname", user["twitch_url"])

	// Email untouched
	assert.Equal(t, "partial@example.com", user["email"])

	w = doJSON(t, a, http.MethodPut, "/api/users/profile", token, gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProfilePasswordChange(t *testing.T) {
	a := newTestAPI(t)

	_, token := registerUser(t, a, "passchange@example.com")

	w := doJSON(t, a, http.MethodPut, "/api/users/profile", token, gin.H{
		"password": "completely-new-pass",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, a, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "passchange@example.com",
		"password": "completely-new-pass",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, a, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "passchange@example.com",
		"password": "hunter2hunter2",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProfileEmailConflict(t *testing.T) {
	a := newTestAPI(t)

	registerUser(t, a, "taken@example.com")
	_, token := registerUser(t, a, "moving@example.com")

	w := doJSON(t, a, http.MethodPut, "/api/users/profile", token, gin.H{
		"email": "taken@example.com",
	})
	assert.Equal(t, http.StatusConflict, w.Code, w.Body.String())

	// Changing to your own current email is not a conflict
	w = doJSON(t, a, http.MethodPut, "/api/users/profile", token, gin.H{
		"email": "moving@example.com",
	})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}
