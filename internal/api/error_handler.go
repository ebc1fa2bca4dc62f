package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/gatherly/events-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors:
// {"error": "<kind>", "message": "<detail>"}.
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their taxonomy kind and HTTP status.
//   - Maps CRM failures using the CRM-reported status when present,
//     defaulting to 500.
//   - Logs unexpected errors internally without leaking details.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: http.StatusText(code), Message: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, middleware rejections).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors map to deterministic codes.
	switch {
	case errors.Is(err, domain.ErrInvalidToken),
		errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, err.Error()
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrHasAttendees):
		return http.StatusBadRequest, err.Error()
	}

	// CRM failures follow the CRM-reported status where one maps cleanly.
	var ue *domain.UpstreamError
	if errors.As(err, &ue) {
		switch ue.Status {
		case http.StatusBadRequest:
			return http.StatusBadRequest, ue.Message
		case http.StatusUnauthorized, http.StatusForbidden:
			return http.StatusForbidden, ue.Message
		case http.StatusNotFound:
			return http.StatusNotFound, ue.Message
		}
		log.Error().Err(err).Str("path", c.Path()).Msg("crm failure")
		return http.StatusInternalServerError, ue.Message
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
