// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"abuadfarms/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
// Role is deliberately absent: every registration starts as a customer.
type RegisterInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateUserRoleInput defines the data for an admin role change.
type UpdateUserRoleInput struct {
	UserID int64
	Role   string `json:"role" validate:"required"`
}

// --- Output DTOs ---

// AuthOutput returns the signed token plus the public view of the account
// after a successful registration or login.
type AuthOutput struct {
	Token string
	User  *entity.User
}

// UserUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// ListUsers returns every account, newest first. Admin only.
	ListUsers(ctx context.Context) ([]*entity.User, error)

	// UpdateUserRole changes an account's role. Admin only.
	UpdateUserRole(ctx context.Context, input *UpdateUserRoleInput) (*entity.User, error)
}
