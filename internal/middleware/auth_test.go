package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront-service/pkg/config"
	"storefront-service/pkg/jwtutil"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthContext(t *testing.T, authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func passThrough(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestAuthMiddleware(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)
	jwtutil.Initialize(&cfg.JWT)

	t.Run("missing header", func(t *testing.T) {
		c, rec := newAuthContext(t, "")
		require.NoError(t, AuthMiddleware(passThrough)(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("not a bearer token", func(t *testing.T) {
		c, rec := newAuthContext(t, "Basic dXNlcjpwYXNz")
		require.NoError(t, AuthMiddleware(passThrough)(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		c, rec := newAuthContext(t, "Bearer not-a-jwt")
		require.NoError(t, AuthMiddleware(passThrough)(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token populates session", func(t *testing.T) {
		token, err := jwtutil.GenerateToken("user@example.com", 42, false)
		require.NoError(t, err)

		c, rec := newAuthContext(t, "Bearer "+token)
		require.NoError(t, AuthMiddleware(passThrough)(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		userID, ok := GetUserIDFromContext(c)
		require.True(t, ok)
		assert.Equal(t, uint(42), userID)
		assert.Equal(t, "user@example.com", c.Get("email"))
		assert.Equal(t, false, c.Get("is_admin"))
	})
}

func TestAdminMiddleware(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)
	jwtutil.Initialize(&cfg.JWT)

	t.Run("non-admin rejected", func(t *testing.T) {
		token, err := jwtutil.GenerateToken("user@example.com", 1, false)
		require.NoError(t, err)

		c, rec := newAuthContext(t, "Bearer "+token)
		require.NoError(t, AuthMiddleware(AdminMiddleware(passThrough))(c))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("admin allowed", func(t *testing.T) {
		token, err := jwtutil.GenerateToken("admin@example.com", 1, true)
		require.NoError(t, err)

		c, rec := newAuthContext(t, "Bearer "+token)
		require.NoError(t, AuthMiddleware(AdminMiddleware(passThrough))(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
