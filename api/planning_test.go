package api

import (
	"fmt"
	"net/http"
	"testing"

	"twitchplanner/backend/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanningCreateAndList(t *testing.T) {
	a := newTestAPI(t)

	_, token := registerUser(t, a, "plan@example.com")

	w := doJSON(t, a, http.MethodPost, "/api/plannings", token, gin.H{
		"title":      "Week 2",
		"start_date": "2026-01-12",
		"end_date":   "2026-01-18",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, a, http.MethodPost, "/api/plannings", token, gin.H{
		"title":      "Week 1",
		"start_date": "2026-01-05",
		"end_date":   "2026-01-11",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, a, http.MethodGet, "/api/plannings", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	plannings := decodeBody(t, w)["plannings"].([]any)
	require.Len(t, plannings, 2)

	// Most recent start date first
	assert.Equal(t, "Week 2", plannings[0].(map[string]any)["title"])
	assert.Equal(t, "Week 1", plannings[1].(map[string]any)["title"])
}

func TestPlanningCreateValidation(t *testing.T) {
	a := newTestAPI(t)

	_, token := registerUser(t, a, "planval@example.com")

	w := doJSON(t, a, http.MethodPost, "/api/plannings", token, gin.H{
		"title": "No dates",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, a, http.MethodPost, "/api/plannings", token, gin.H{
		"title":      "Backwards",
		"start_date": "2026-01-18",
		"end_date":   "2026-01-12",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Equal bounds are just as invalid as reversed ones
	w = doJSON(t, a, http.MethodPost, "/api/plannings", token, gin.H{
		"title":      "Flat",
		"start_date": "2026-01-12",
		"end_date":   "2026-01-12",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPlanningOwnershipDoesNotLeak(t *testing.T) {
	a := newTestAPI(t)

	_, owner := registerUser(t, a, "owner@example.com")
	_, other := registerUser(t, a, "other@example.com")

	id := createPlanning(t, a, owner, "Mine")
	path := fmt.Sprintf("/api/plannings/%.0f", id)

	w := doJSON(t, a, http.MethodGet, path, other, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NotContains(t, w.Body.String(), "Mine")

	w = doJSON(t, a, http.MethodPut, path, other, gin.H{"title": "Stolen"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, a, http.MethodDelete, path, other, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Still intact for the owner
	w = doJSON(t, a, http.MethodGet, path, owner, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Mine", decodeBody(t, w)["planning"].(map[string]any)["title"])
}

func TestPlanningPartialUpdate(t *testing.T) {
	a := newTestAPI(t)

	_, token := registerUser(t, a, "patch@example.com")
	id := createPlanning(t, a, token, "Before")
	path := fmt.Sprintf("/api/plannings/%.0f", id)

	w := doJSON(t, a, http.MethodPut, path, token, gin.H{"title": "After"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, a, http.MethodGet, path, token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	planning := decodeBody(t, w)["planning"].(map[string]any)
	assert.Equal(t, "After", planning["title"])

	// Dates untouched by a title-only patch
	assert.Contains(t, planning["start_date"], "2026-01-05")
	assert.Contains(t, planning["end_date"], "2026-01-11")

	w = doJSON(t, a, http.MethodPut, path, token, gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPlanningDeleteCascades(t *testing.T) {
	a := newTestAPI(t)

	_, token := registerUser(t, a, "cascade@example.com")
	id := createPlanning(t, a, token, "Doomed")
	path := fmt.Sprintf("/api/plannings/%.0f", id)

	w := doJSON(t, a, http.MethodPost, path+"/events", token, gin.H{
		"game_name":   "Factorio",
		"day_of_week": "Monday",
		"start_time":  "18:00",
		"end_time":    "21:00",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, a, http.MethodDelete, path, token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, a, http.MethodGet, path+"/events", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var count int64
	require.NoError(t, a.DB.Model(model.StreamEvent{}).Where("planning_id = ?", uint(id)).Count(&count).Error)
	assert.Zero(t, count)
}
