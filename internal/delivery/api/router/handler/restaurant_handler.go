package handler

import (
	"net/http"

	"gusto/internal/delivery/api/response"
	"gusto/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RestaurantHandlerParams holds dependencies for RestaurantHandler, injected by Fx.
type RestaurantHandlerParams struct {
	fx.In

	RestaurantUC usecase.RestaurantUsecase
}

// RestaurantHandler serves the restaurant catalogue.
type RestaurantHandler struct {
	restaurantUC usecase.RestaurantUsecase
}

// NewRestaurantHandler is the constructor for RestaurantHandler.
func NewRestaurantHandler(params RestaurantHandlerParams) *RestaurantHandler {
	return &RestaurantHandler{restaurantUC: params.RestaurantUC}
}

// CreateRestaurant adds a restaurant to the catalogue.
func (h *RestaurantHandler) CreateRestaurant(c echo.Context) error {
	var req usecase.CreateRestaurantInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	restaurant, err := h.restaurantUC.CreateRestaurant(c.Request().Context(), &req)
	if err != nil {
		return err
	}

	return response.SuccessWithMessage(c, http.StatusCreated, restaurant, "Restaurant created")
}

// ListRestaurants returns every restaurant.
func (h *RestaurantHandler) ListRestaurants(c echo.Context) error {
	restaurants, err := h.restaurantUC.ListRestaurants(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, restaurants)
}

// GetRestaurant returns the restaurant with the path id.
func (h *RestaurantHandler) GetRestaurant(c echo.Context) error {
	id, ok := restaurantIDParam(c)
	if !ok {
		return invalidRestaurantID(c)
	}

	restaurant, err := h.restaurantUC.GetRestaurant(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, restaurant)
}

// SearchRestaurants matches the q query parameter against names and categories.
func (h *RestaurantHandler) SearchRestaurants(c echo.Context) error {
	restaurants, err := h.restaurantUC.SearchRestaurants(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, restaurants)
}

// ListCategories returns every category name.
func (h *RestaurantHandler) ListCategories(c echo.Context) error {
	categories, err := h.restaurantUC.ListCategories(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, categories)
}
