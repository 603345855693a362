// Package handler contains the echo handlers of the API.
package handler

import (
	"net/http"

	"gusto/config"
	"gusto/internal/delivery/api/response"
	"gusto/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SystemHandlerParams holds dependencies for SystemHandler, injected by Fx.
type SystemHandlerParams struct {
	fx.In

	HealthUC usecase.HealthUsecase
	Config   *config.Config
}

// SystemHandler serves the operational endpoints.
type SystemHandler struct {
	healthUC    usecase.HealthUsecase
	serviceName string
}

// NewSystemHandler is the constructor for SystemHandler.
func NewSystemHandler(params SystemHandlerParams) *SystemHandler {
	return &SystemHandler{
		healthUC:    params.HealthUC,
		serviceName: params.Config.Env.ServiceName,
	}
}

// ServiceInfo describes the API on the root route.
type ServiceInfo struct {
	Service   string   `json:"service"`
	Status    string   `json:"status"`
	Endpoints []string `json:"endpoints"`
}

var publicEndpoints = []string{
	"GET /health",
	"POST /auth/register",
	"POST /auth/login",
	"GET /users",
	"GET /users/:username",
	"GET /categories",
	"GET /restaurants",
	"POST /restaurants",
	"GET /restaurants/search?q=",
	"GET /restaurants/:id",
	"GET /restaurants/:id/comments",
	"GET /restaurants/:id/ratings",
	"GET /recommendations/:username",
	"POST /recommendations/advanced",
	"GET /api/v1/me",
	"PATCH /api/v1/me/profile",
	"GET /api/v1/me/preferences",
	"PUT /api/v1/me/preferences",
	"GET /api/v1/recommendations",
	"POST /api/v1/restaurants/:id/comments",
	"POST /api/v1/restaurants/:id/ratings",
}

// Root lists the service endpoints.
func (h *SystemHandler) Root(c echo.Context) error {
	return response.Success(c, http.StatusOK, ServiceInfo{
		Service:   h.serviceName,
		Status:    "running",
		Endpoints: publicEndpoints,
	})
}

// Health reports whether the datastore is reachable.
func (h *SystemHandler) Health(c echo.Context) error {
	if err := h.healthUC.Check(c.Request().Context()); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"status":   "healthy",
		"database": "up",
	})
}
