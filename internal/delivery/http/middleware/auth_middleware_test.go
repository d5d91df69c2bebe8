package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"abuadfarms/config"
	deliverycontext "abuadfarms/internal/delivery/context"
	"abuadfarms/internal/domain/entity"
	"abuadfarms/internal/infra/auth"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthMiddleware(t *testing.T) (*AuthMiddleware, func(*entity.User) string) {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-secret"
	cfg.Auth = &config.AuthConfig{TokenTTL: time.Hour}

	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	issue := func(user *entity.User) string {
		token, err := tokenSvc.GenerateToken(user)
		require.NoError(t, err)

		return token
	}

	return NewAuthMiddleware(tokenSvc), issue
}

func performRequest(mw echo.MiddlewareFunc, authHeader string) (*httptest.ResponseRecorder, bool) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	reached := false
	handler := mw(func(c echo.Context) error {
		reached = true

		return c.NoContent(http.StatusOK)
	})
	_ = handler(c)

	return rec, reached
}

func TestAuthenticate_MissingToken(t *testing.T) {
	mw, _ := newTestAuthMiddleware(t)

	rec, reached := performRequest(mw.Authenticate, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
}

func TestAuthenticate_MalformedHeader(t *testing.T) {
	mw, issue := newTestAuthMiddleware(t)
	token := issue(&entity.User{ID: 1, Email: "a@e.com", Role: entity.RoleCustomer})

	// A token without the Bearer prefix is treated as missing, not invalid.
	rec, reached := performRequest(mw.Authenticate, token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	mw, _ := newTestAuthMiddleware(t)

	rec, reached := performRequest(mw.Authenticate, "Bearer not-a-token")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, reached)
}

func TestAuthenticate_ValidToken(t *testing.T) {
	mw, issue := newTestAuthMiddleware(t)
	token := issue(&entity.User{ID: 7, Email: "ada@example.com", Role: entity.RoleCustomer})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := mw.Authenticate(func(c echo.Context) error {
		claims := deliverycontext.GetClaims(c)
		require.NotNil(t, claims)
		assert.Equal(t, int64(7), claims.UserID)
		assert.Equal(t, "ada@example.com", claims.Email)

		return c.NoContent(http.StatusOK)
	})(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRole_AdminGate(t *testing.T) {
	mw, issue := newTestAuthMiddleware(t)

	customerToken := issue(&entity.User{ID: 1, Role: entity.RoleCustomer})
	adminToken := issue(&entity.User{ID: 2, Role: entity.RoleAdmin})

	chain := func(token string) (*httptest.ResponseRecorder, bool) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		reached := false
		handler := mw.Authenticate(mw.RequireRole(entity.RoleAdmin)(func(c echo.Context) error {
			reached = true

			return c.NoContent(http.StatusOK)
		}))
		_ = handler(c)

		return rec, reached
	}

	rec, reached := chain(customerToken)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, reached)

	rec, reached = chain(adminToken)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, reached)
}

func TestOptionalAuthenticate(t *testing.T) {
	mw, issue := newTestAuthMiddleware(t)
	token := issue(&entity.User{ID: 3, Role: entity.RoleCustomer})

	run := func(header string) (*entity.User, bool) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		var attributed *entity.User
		reached := false
		_ = mw.OptionalAuthenticate(func(c echo.Context) error {
			reached = true
			if claims := deliverycontext.GetClaims(c); claims != nil {
				attributed = &entity.User{ID: claims.UserID}
			}

			return c.NoContent(http.StatusOK)
		})(c)

		return attributed, reached
	}

	// Anonymous checkout proceeds without claims.
	attributed, reached := run("")
	assert.True(t, reached)
	assert.Nil(t, attributed)

	// A garbage token is ignored rather than rejected.
	attributed, reached = run("Bearer garbage")
	assert.True(t, reached)
	assert.Nil(t, attributed)

	// A valid token attributes the request.
	attributed, reached = run("Bearer " + token)
	assert.True(t, reached)
	require.NotNil(t, attributed)
	assert.Equal(t, int64(3), attributed.ID)
}
