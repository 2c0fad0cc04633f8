//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ordering-service/internal/handler/middleware"
	"ordering-service/internal/pkg/jwt"
	"ordering-service/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := jwt.NewService("test-secret", time.Hour)
	authMw := middleware.NewAuthMiddleware(usecase.NewTokenValidator(svc))

	newEngine := func() (*gin.Engine, *uuid.UUID, *string) {
		var gotID uuid.UUID
		var gotName string
		engine := gin.New()
		engine.Use(authMw.RequireAuth())
		engine.GET("/protected", func(c *gin.Context) {
			id, ok := middleware.GetUserID(c)
			require.True(t, ok)
			name, ok := middleware.GetUserName(c)
			require.True(t, ok)
			gotID, gotName = id, name
			c.String(http.StatusOK, "ok")
		})
		return engine, &gotID, &gotName
	}

	do := func(engine *gin.Engine, authorization string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		if authorization != "" {
			req.Header.Set("Authorization", authorization)
		}
		engine.ServeHTTP(w, req)
		return w
	}

	t.Run("valid bearer token resolves the buyer identity", func(t *testing.T) {
		userID := uuid.New()
		token, err := svc.GenerateToken(userID, "ada")
		require.NoError(t, err)

		engine, gotID, gotName := newEngine()
		w := do(engine, "Bearer "+token)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, userID, *gotID)
		assert.Equal(t, "ada", *gotName)
	})

	t.Run("missing header is rejected", func(t *testing.T) {
		engine, _, _ := newEngine()
		w := do(engine, "")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("non-bearer scheme is rejected", func(t *testing.T) {
		engine, _, _ := newEngine()
		w := do(engine, "Basic dXNlcjpwYXNz")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		engine, _, _ := newEngine()
		w := do(engine, "Bearer not-a-jwt")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("token signed with another key is rejected", func(t *testing.T) {
		other := jwt.NewService("other-secret", time.Hour)
		token, err := other.GenerateToken(uuid.New(), "eve")
		require.NoError(t, err)

		engine, _, _ := newEngine()
		w := do(engine, "Bearer "+token)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		expired := jwt.NewService("test-secret", -time.Minute)
		token, err := expired.GenerateToken(uuid.New(), "ada")
		require.NoError(t, err)

		engine, _, _ := newEngine()
		w := do(engine, "Bearer "+token)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
