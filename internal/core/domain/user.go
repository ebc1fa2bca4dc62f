package domain

import "time"

const (
	RoleAdmin     = "Admin"
	RoleOrganizer = "Organizer"
	// RoleAttendee matches the CRM picklist value, misspelling included.
	// The literal round-trips to Salesforce verbatim; do not normalize it.
	RoleAttendee = "Attandee"
)

// ValidRole reports whether role is one of the enumerated role literals.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleOrganizer || role == RoleAttendee
}

// User models an account held in the CRM. The server never persists users
// locally; PasswordHash travels to and from Salesforce but never to clients.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
}

// Claims is the verified identity attached to a request by the auth
// middleware. It is the only source of caller identity in the process.
type Claims struct {
	UserID string `json:"sub"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// IsAdmin reports whether the caller bypasses ownership checks.
func (c Claims) IsAdmin() bool { return c.Role == RoleAdmin }

// TokenTTL is the fixed lifetime of a session token. There is no refresh
// mechanism; clients re-login after expiry.
const TokenTTL = time.Hour
