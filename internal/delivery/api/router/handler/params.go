package handler

import (
	"gusto/internal/delivery/api/response"
	domainerrors "gusto/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// bindAndValidate decodes the request body into req and checks its validate tags.
// The returned error is rendered by the central error handler.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("request body is not valid JSON")
	}

	return c.Validate(req)
}

// restaurantIDParam parses the :id path parameter.
func restaurantIDParam(c echo.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))

	return id, err == nil
}

func invalidRestaurantID(c echo.Context) error {
	return response.BadRequest(c, "INVALID_ID", "Restaurant id must be a UUID")
}

func missingIdentity(c echo.Context) error {
	return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
}
