package ports

import "github.com/gatherly/events-api/internal/core/domain"

// TokenIssuer signs a session token for a user.
type TokenIssuer interface {
	Issue(user *domain.User) (string, error)
}

// TokenVerifier checks signature and expiry of a raw token and returns the
// embedded claims. Any failure surfaces as domain.ErrInvalidToken.
type TokenVerifier interface {
	Verify(raw string) (domain.Claims, error)
}
