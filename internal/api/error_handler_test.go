package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/gatherly/events-api/internal/core/domain"
)

func renderError(t *testing.T, err error) (int, errorResponse) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error envelope: %v", err)
	}
	return rec.Code, body
}

func TestErrorHandler_NotFoundEnvelope(t *testing.T) {
	code, body := renderError(t, &domain.NotFoundError{Resource: "Event", ID: "abc123"})

	if code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", code)
	}
	if body.Error != "Not Found" {
		t.Fatalf("expected kind Not Found, got %q", body.Error)
	}
	if body.Message != "Event with ID abc123 not found" {
		t.Fatalf("unexpected message: %q", body.Message)
	}
}

func TestErrorHandler_Forbidden(t *testing.T) {
	code, body := renderError(t, domain.ErrForbidden)

	if code != http.StatusForbidden || body.Error != "Forbidden" {
		t.Fatalf("expected 403 Forbidden, got %d %q", code, body.Error)
	}
}

func TestErrorHandler_InvalidToken(t *testing.T) {
	code, body := renderError(t, domain.ErrInvalidToken)

	if code != http.StatusUnauthorized || body.Error != "Unauthorized" {
		t.Fatalf("expected 401 Unauthorized, got %d %q", code, body.Error)
	}
}

func TestErrorHandler_AttendeeConstraint(t *testing.T) {
	code, body := renderError(t, domain.ErrHasAttendees)

	if code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
	if body.Message != domain.ErrHasAttendees.Error() {
		t.Fatalf("unexpected message: %q", body.Message)
	}
}

func TestErrorHandler_UpstreamMapping(t *testing.T) {
	cases := []struct {
		status int
		want   int
	}{
		{400, http.StatusBadRequest},
		{401, http.StatusForbidden},
		{403, http.StatusForbidden},
		{404, http.StatusNotFound},
		{500, http.StatusInternalServerError},
		{0, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		code, _ := renderError(t, &domain.UpstreamError{Status: tc.status, Message: "crm said no"})
		if code != tc.want {
			t.Fatalf("upstream status %d: expected %d, got %d", tc.status, tc.want, code)
		}
	}
}

func TestErrorHandler_UnexpectedErrorIsOpaque(t *testing.T) {
	code, body := renderError(t, &testError{})
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if body.Message != "internal server error" {
		t.Fatalf("internal details leaked: %q", body.Message)
	}
}

type testError struct{}

func (*testError) Error() string { return "connection reset by upstream pool" }
