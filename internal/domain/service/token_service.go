package service

import (
	"github.com/golang-jwt/jwt/v5"

	"abuadfarms/internal/domain/entity"
)

// Claims defines the custom claims embedded in access tokens. They mirror
// what the API returns in the user object: id, email and role.
type Claims struct {
	UserID int64  `json:"id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// IsAdmin reports whether the token belongs to an admin account.
func (c *Claims) IsAdmin() bool {
	return entity.Role(c.Role) == entity.RoleAdmin
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateToken creates a signed access token for the given user.
	GenerateToken(user *entity.User) (string, error)

	// ValidateToken checks the validity of a token string and returns its
	// claims.
	ValidateToken(tokenString string) (*Claims, error)
}
