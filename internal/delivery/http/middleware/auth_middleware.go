package middleware

import (
	"strings"

	deliverycontext "abuadfarms/internal/delivery/context"
	"abuadfarms/internal/delivery/http/response"
	"abuadfarms/internal/domain/entity"
	domainerrors "abuadfarms/internal/domain/errors"
	"abuadfarms/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and attaches its claims to the
// request. A missing or malformed header is 401; a token that fails
// validation is 403.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, ok := bearerToken(c)
		if !ok {
			return response.Unauthorized(c,
				domainerrors.ErrUnauthenticated.ErrorCode(), domainerrors.ErrUnauthenticated.Message())
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Forbidden(c,
				domainerrors.ErrInvalidToken.ErrorCode(), domainerrors.ErrInvalidToken.Message())
		}

		deliverycontext.SetClaims(c, claims)

		return next(c)
	}
}

// OptionalAuthenticate attaches claims when a valid token is present and
// continues anonymously otherwise. Guest checkout uses this to attribute
// orders to logged-in customers without requiring login.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if tokenString, ok := bearerToken(c); ok {
			if claims, err := m.tokenSvc.ValidateToken(tokenString); err == nil {
				deliverycontext.SetClaims(c, claims)
			}
		}

		return next(c)
	}
}

// RequireRole is a middleware factory that checks if the user has a specific role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims := deliverycontext.GetClaims(c)
			if claims == nil || entity.Role(claims.Role) != requiredRole {
				return response.Forbidden(c,
					domainerrors.ErrForbidden.ErrorCode(), domainerrors.ErrForbidden.Message())
			}

			return next(c)
		}
	}
}

func bearerToken(c echo.Context) (string, bool) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader || tokenString == "" {
		return "", false
	}

	return tokenString, true
}
