package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/gatherly/events-api/internal/core/domain"
)

// TokenService issues and verifies HS256 session tokens. Tokens are
// stateless: validity is signature plus expiry, nothing else, so there is
// no revocation and no refresh.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

type tokenClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = domain.TokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue signs {sub, email, role} with the server secret.
func (s *TokenService) Issue(user *domain.User) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		Email: user.Email,
		Role:  user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify checks signature and expiry. Malformed, expired, and mis-signed
// tokens are indistinguishable to callers: all return ErrInvalidToken.
func (s *TokenService) Verify(raw string) (domain.Claims, error) {
	var claims tokenClaims
	tok, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !tok.Valid {
		return domain.Claims{}, domain.ErrInvalidToken
	}
	return domain.Claims{
		UserID: claims.Subject,
		Email:  claims.Email,
		Role:   claims.Role,
	}, nil
}
