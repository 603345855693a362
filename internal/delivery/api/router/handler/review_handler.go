package handler

import (
	"net/http"

	"gusto/internal/delivery/api/middleware"
	"gusto/internal/delivery/api/response"
	"gusto/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReviewHandlerParams holds dependencies for ReviewHandler, injected by Fx.
type ReviewHandlerParams struct {
	fx.In

	ReviewUC usecase.ReviewUsecase
}

// ReviewHandler serves comments and ratings.
type ReviewHandler struct {
	reviewUC usecase.ReviewUsecase
}

// NewReviewHandler is the constructor for ReviewHandler.
func NewReviewHandler(params ReviewHandlerParams) *ReviewHandler {
	return &ReviewHandler{reviewUC: params.ReviewUC}
}

// AddComment stores a comment by the authenticated user.
func (h *ReviewHandler) AddComment(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return missingIdentity(c)
	}
	restaurantID, ok := restaurantIDParam(c)
	if !ok {
		return invalidRestaurantID(c)
	}

	var req usecase.AddCommentInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	comment, err := h.reviewUC.AddComment(c.Request().Context(), userID, restaurantID, &req)
	if err != nil {
		return err
	}

	return response.SuccessWithMessage(c, http.StatusCreated, comment, "Comment added")
}

// ListComments returns the comments of a restaurant newest first.
func (h *ReviewHandler) ListComments(c echo.Context) error {
	restaurantID, ok := restaurantIDParam(c)
	if !ok {
		return invalidRestaurantID(c)
	}

	comments, err := h.reviewUC.ListComments(c.Request().Context(), restaurantID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, comments)
}

// Rate records the authenticated user's score for a restaurant.
func (h *ReviewHandler) Rate(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return missingIdentity(c)
	}
	restaurantID, ok := restaurantIDParam(c)
	if !ok {
		return invalidRestaurantID(c)
	}

	var req usecase.RateInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	summary, err := h.reviewUC.Rate(c.Request().Context(), userID, restaurantID, &req)
	if err != nil {
		return err
	}

	return response.SuccessWithMessage(c, http.StatusOK, summary, "Rating saved")
}

// RatingSummary returns the average and count of a restaurant's ratings.
func (h *ReviewHandler) RatingSummary(c echo.Context) error {
	restaurantID, ok := restaurantIDParam(c)
	if !ok {
		return invalidRestaurantID(c)
	}

	summary, err := h.reviewUC.RatingSummary(c.Request().Context(), restaurantID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, summary)
}
