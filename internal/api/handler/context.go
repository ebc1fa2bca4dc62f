package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gatherly/events-api/internal/api/middleware"
	"github.com/gatherly/events-api/internal/core/domain"
)

// caller extracts the verified claims injected by the Auth middleware.
// A missing id means the middleware did not run on this route; reject
// before any service call.
func caller(c echo.Context) (domain.Claims, error) {
	id, _ := c.Get(middleware.CtxUserID).(string)
	if id == "" {
		return domain.Claims{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	email, _ := c.Get(middleware.CtxEmail).(string)
	role, _ := c.Get(middleware.CtxRole).(string)
	return domain.Claims{UserID: id, Email: email, Role: role}, nil
}
