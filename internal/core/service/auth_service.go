package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/gatherly/events-api/internal/core/domain"
	"github.com/gatherly/events-api/internal/core/ports"
)

// AuthService implements registration, login, and profile management on
// top of the CRM user store. Passwords are bcrypt-hashed before they leave
// the process; the CRM only ever sees the hash.
type AuthService struct {
	users  ports.UserRepository
	tokens ports.TokenIssuer
}

func NewAuthService(users ports.UserRepository, tokens ports.TokenIssuer) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (string, *domain.User, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return "", nil, fmt.Errorf("name, email and password are required: %w", domain.ErrValidation)
	}
	if !domain.ValidRole(in.Role) {
		return "", nil, fmt.Errorf("unknown role %q: %w", in.Role, domain.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	user, err := s.users.Create(ctx, &domain.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         in.Role,
	})
	if err != nil {
		return "", nil, err
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) Profile(ctx context.Context, caller domain.Claims) (*domain.User, error) {
	return s.users.FindByID(ctx, caller.UserID, caller.UserID)
}

func (s *AuthService) UpdateProfile(ctx context.Context, caller domain.Claims, in ports.UpdateProfileInput) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, caller.UserID, caller.UserID)
	if err != nil {
		return nil, err
	}

	if in.Name != "" {
		user.Name = in.Name
	}
	if in.Email != "" {
		user.Email = in.Email
	}
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}

	return s.users.Update(ctx, caller.UserID, user)
}

// DeleteAccount removes the caller's account. The CRM rejects the delete
// while attendee records reference it; Admin callers pass force through to
// override the constraint.
func (s *AuthService) DeleteAccount(ctx context.Context, caller domain.Claims) error {
	force := caller.IsAdmin()
	err := s.users.Delete(ctx, caller.UserID, caller.UserID, force)
	if err == nil {
		return nil
	}

	var ue *domain.UpstreamError
	if !force && errors.As(err, &ue) && (ue.Status == 400 || ue.Status == 409) {
		return domain.ErrHasAttendees
	}
	return err
}
