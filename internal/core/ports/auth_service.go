package ports

import (
	"context"

	"github.com/gatherly/events-api/internal/core/domain"
)

// RegisterInput carries the fields needed to create an account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// UpdateProfileInput carries profile edits. Empty fields are left unchanged.
type UpdateProfileInput struct {
	Name     string
	Email    string
	Password string
}

// AuthService implements registration, login, and profile management.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	Profile(ctx context.Context, caller domain.Claims) (*domain.User, error)
	UpdateProfile(ctx context.Context, caller domain.Claims, in UpdateProfileInput) (*domain.User, error)
	DeleteAccount(ctx context.Context, caller domain.Claims) error
}
