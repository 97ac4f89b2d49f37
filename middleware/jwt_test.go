package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jwtTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	viper.Set("jwt.secret", "middleware-test-secret")

	r := gin.New()
	r.Use(NewRequestIDMiddleware(), NewJWTMiddleware())
	r.GET("/guarded", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userID": c.GetString("userID"),
			"email":  c.GetString("email"),
		})
	})

	return r
}

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(viper.GetString("jwt.secret")))
	require.NoError(t, err)

	return token
}

func serve(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	return w
}

func TestJWTMiddlewareAttachesIdentity(t *testing.T) {
	r := jwtTestRouter()

	token := signToken(t, jwt.MapClaims{
		"id":    "user123",
		"email": "mw@example.com",
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	w := serve(r, "Bearer "+token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user123")
	assert.Contains(t, w.Body.String(), "mw@example.com")
}

func TestJWTMiddlewareRejections(t *testing.T) {
	r := jwtTestRouter()

	tests := []struct {
		name   string
		header string
		errMsg string
	}{
		{"no header", "", "Missing or invalid token"},
		{"not bearer", "Basic abc123", "Missing or invalid token"},
		{"empty bearer", "Bearer ", "Missing or invalid token"},
		{"garbage", "Bearer not.a.jwt", "Invalid token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(r, tt.header)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), tt.errMsg)
		})
	}
}

func TestJWTMiddlewareExpired(t *testing.T) {
	r := jwtTestRouter()

	token := signToken(t, jwt.MapClaims{
		"id":    "user123",
		"email": "mw@example.com",
		"iat":   time.Now().Add(-2 * time.Hour).Unix(),
		"exp":   time.Now().Add(-time.Hour).Unix(),
	})

	w := serve(r, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Token expired")
}

func TestJWTMiddlewareWrongSignature(t *testing.T) {
	r := jwtTestRouter()

	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  "user123",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("some-other-secret"))
	require.NoError(t, err)

	w := serve(r, "Bearer "+forged)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid token")
}
