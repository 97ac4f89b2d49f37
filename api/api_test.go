package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

// newTestAPI builds a full router backed by a fresh in-memory database so
// every test starts from an empty schema
func newTestAPI(t *testing.T) *API {
	t.Helper()

	gin.SetMode(gin.TestMode)

	viper.Set("app.log_level", "error")
	viper.Set("jwt.secret", "test-secret")
	viper.Set("db.driver", "sqlite")
	viper.Set("db.dsn", fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_")))
	viper.Set("upload.max_body_size", int64(10<<20))
	viper.Set("cors.allowed_origins", []string{"http://localhost:5173"})

	a, err := NewRouter()
	require.NoError(t, err)

	return a
}

func doJSON(t *testing.T, a *API, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, req)

	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))

	return out
}

// registerUser registers a fresh user and returns its id and bearer token
func registerUser(t *testing.T, a *API, email string) (userID, token string) {
	t.Helper()

	w := doJSON(t, a, http.MethodPost, "/api/auth/register", "", gin.H{
		"email":    email,
		"password": "hunter2hunter2",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	body := decodeBody(t, w)
	user := body["user"].(map[string]any)

	return user["id"].(string), body["token"].(string)
}

// createPlanning makes a planning for the given token and returns its id
func createPlanning(t *testing.T, a *API, token, title string) float64 {
	t.Helper()

	w := doJSON(t, a, http.MethodPost, "/api/plannings", token, gin.H{
		"title":      title,
		"start_date": "2026-01-05",
		"end_date":   "2026-01-11",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	body := decodeBody(t, w)
	return body["planning"].(map[string]any)["id"].(float64)
}
