package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/gatherly/events-api/internal/core/domain"
)

// successResponse is the standard success envelope:
// {"success": true, "message": "...", "data": ...}.
type successResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func respond(c echo.Context, status int, message string, data any) error {
	return c.JSON(status, successResponse{Success: true, Message: message, Data: data})
}

// errorResponse documents the error envelope for swagger; the actual
// rendering lives in the central HTTP error handler.
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// --- Auth ---

type registerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role"     validate:"required,oneof=Admin Organizer Attandee"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type updateProfileRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"    validate:"omitempty,email"`
	Password string `json:"password" validate:"omitempty,min=6"`
}

// authResponse is returned by register and login: the session token plus
// the user it identifies.
type authResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// --- Events ---

type eventRequest struct {
	Name        string    `json:"name"        validate:"required"`
	StartDate   time.Time `json:"startDate"   validate:"required"`
	EndDate     time.Time `json:"endDate"     validate:"required,gtfield=StartDate"`
	Description string    `json:"description"`
	Status      string    `json:"status"      validate:"omitempty,oneof=Scheduled 'In Progress' Completed"`
	Capacity    *int      `json:"capacity"    validate:"omitempty,gt=0"`
	Location    string    `json:"location"`
}

// --- Attendees ---

type registerAttendeeRequest struct {
	Name    string `json:"name"    validate:"required"`
	Email   string `json:"email"   validate:"required,email"`
	EventID string `json:"eventId" validate:"required"`
}
