package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uniboard/markbook/internal/app/models"
	"github.com/uniboard/markbook/internal/pkg/auth"
)

func newTestRouter(t *testing.T) (*gin.Engine, *auth.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "markbook.test",
	})

	mw := NewAuthMiddleware(jwtService)

	router := gin.New()
	protected := router.Group("/protected")
	protected.Use(mw.JWTAuth())
	{
		protected.GET("/any", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"email": c.GetString(ContextEmail),
				"role":  c.GetString(ContextRoleType),
			})
		})

		staffOnly := protected.Group("/staff")
		staffOnly.Use(mw.RoleRequired(string(models.RoleStaff)))
		staffOnly.GET("", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"ok": true})
		})
	}

	return router, jwtService
}

func tokenFor(t *testing.T, jwtService *auth.JWTService, role models.RoleType) string {
	t.Helper()

	accessToken, _, _, _, err := jwtService.GenerateTokenPair(&models.User{
		ID:       1,
		Email:    "user@example.com",
		Name:     "Test User",
		RoleType: role,
	})
	require.NoError(t, err)
	return accessToken
}

func TestJWTAuth(t *testing.T) {
	router, jwtService := newTestRouter(t)

	t.Run("MissingHeader", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected/any", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("GarbageToken", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected/any", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("ValidBearerToken", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected/any", nil)
		req.Header.Set("Authorization", "Bearer "+tokenFor(t, jwtService, models.RoleStudent))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "user@example.com")
	})

	t.Run("RawTokenWithoutBearerPrefix", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected/any", nil)
		req.Header.Set("Authorization", tokenFor(t, jwtService, models.RoleStudent))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("ExpiredToken", func(t *testing.T) {
		expiredService := auth.NewJWTService(auth.JWTConfig{
			SecretKey:       "test-secret",
			AccessTokenExp:  -time.Minute,
			RefreshTokenExp: 24 * time.Hour,
			TokenIssuer:     "markbook.test",
		})
		req := httptest.NewRequest(http.MethodGet, "/protected/any", nil)
		req.Header.Set("Authorization", "Bearer "+tokenFor(t, expiredService, models.RoleStudent))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRoleRequired(t *testing.T) {
	router, jwtService := newTestRouter(t)

	t.Run("MatchingRole", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected/staff", nil)
		req.Header.Set("Authorization", "Bearer "+tokenFor(t, jwtService, models.RoleStaff))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("WrongRole", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected/staff", nil)
		req.Header.Set("Authorization", "Bearer "+tokenFor(t, jwtService, models.RoleStudent))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
