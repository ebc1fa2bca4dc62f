package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gatherly/events-api/internal/api/metrics"
	"github.com/gatherly/events-api/internal/core/ports"
)

// AttendeeHandler handles registration and cancellation routes.
type AttendeeHandler struct {
	service ports.AttendeeService
}

func NewAttendeeHandler(service ports.AttendeeService) *AttendeeHandler {
	return &AttendeeHandler{service: service}
}

// Register registers the caller as an attendee of an event.
//
// @Summary      Register for an event
// @Tags         attendees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      registerAttendeeRequest  true  "Registration details"
// @Success      201   {object}  successResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/attendees [post]
func (h *AttendeeHandler) Register(c echo.Context) error {
	claims, err := caller(c)
	if err != nil {
		return err
	}

	var req registerAttendeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	attendee, err := h.service.Register(c.Request().Context(), claims, ports.RegisterAttendeeInput{
		Name:    req.Name,
		Email:   req.Email,
		EventID: req.EventID,
	})
	if err != nil {
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues("confirmed").Inc()
	return respond(c, http.StatusCreated, "attendee registered", attendee)
}

// ListByEvent lists attendees of an event. Public; serves both
// /api/events/:id/attendees and /api/attendees/:eventId.
//
// @Summary      List attendees for an event
// @Tags         attendees
// @Produce      json
// @Param        eventId  path      string  true  "Event id"
// @Success      200      {object}  successResponse
// @Failure      404      {object}  errorResponse
// @Router       /api/attendees/{eventId} [get]
func (h *AttendeeHandler) ListByEvent(c echo.Context) error {
	eventID := c.Param("eventId")
	if eventID == "" {
		eventID = c.Param("id")
	}

	attendees, err := h.service.ListByEvent(c.Request().Context(), eventID)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "attendees fetched", attendees)
}

// Cancel transitions a registration to Cancelled. Registering user or Admin.
//
// @Summary      Cancel a registration
// @Tags         attendees
// @Produce      json
// @Security     BearerAuth
// @Param        attendeeId  path      string  true  "Attendee id"
// @Success      200         {object}  successResponse
// @Failure      401         {object}  errorResponse
// @Failure      403         {object}  errorResponse
// @Failure      404         {object}  errorResponse
// @Router       /api/attendees/cancel/{attendeeId} [put]
func (h *AttendeeHandler) Cancel(c echo.Context) error {
	claims, err := caller(c)
	if err != nil {
		return err
	}

	attendee, err := h.service.Cancel(c.Request().Context(), claims, c.Param("attendeeId"))
	if err != nil {
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues("cancelled").Inc()
	return respond(c, http.StatusOK, "registration cancelled", attendee)
}

// Delete removes a registration record outright.
//
// @Summary      Delete an attendee record
// @Tags         attendees
// @Produce      json
// @Param        attendeeId  path      string  true  "Attendee id"
// @Success      200         {object}  successResponse
// @Failure      404         {object}  errorResponse
// @Router       /api/attendees/{attendeeId} [delete]
func (h *AttendeeHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("attendeeId")); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "attendee deleted", nil)
}
