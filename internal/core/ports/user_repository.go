package ports

import (
	"context"

	"github.com/gatherly/events-api/internal/core/domain"
)

// UserRepository is the CRM-backed user store. Methods taking actorID
// attach it as the acting-user identity on the outbound CRM call.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, actorID, id string) (*domain.User, error)
	Update(ctx context.Context, actorID string, user *domain.User) (*domain.User, error)
	// Delete removes the account. With force unset the CRM rejects the
	// call while attendee records reference the account.
	Delete(ctx context.Context, actorID, id string, force bool) error
}
