package handler

import (
	"net/http"

	"gusto/internal/delivery/api/middleware"
	"gusto/internal/delivery/api/response"
	"gusto/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RecommendationHandlerParams holds dependencies for RecommendationHandler, injected by Fx.
type RecommendationHandlerParams struct {
	fx.In

	RecommendationUC usecase.RecommendationUsecase
}

// RecommendationHandler serves personalized and advanced recommendations.
type RecommendationHandler struct {
	recommendationUC usecase.RecommendationUsecase
}

// NewRecommendationHandler is the constructor for RecommendationHandler.
func NewRecommendationHandler(params RecommendationHandlerParams) *RecommendationHandler {
	return &RecommendationHandler{recommendationUC: params.RecommendationUC}
}

// ForUser recommends restaurants for the user named in the path.
func (h *RecommendationHandler) ForUser(c echo.Context) error {
	out, err := h.recommendationUC.RecommendForUser(c.Request().Context(), c.Param("username"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, out)
}

// ForMe recommends restaurants for the authenticated user.
func (h *RecommendationHandler) ForMe(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return missingIdentity(c)
	}

	out, err := h.recommendationUC.RecommendForUserID(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, out)
}

// Advanced filters restaurants by the criteria in the body.
func (h *RecommendationHandler) Advanced(c echo.Context) error {
	var req usecase.AdvancedSearchInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.recommendationUC.RecommendAdvanced(c.Request().Context(), &req)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, out)
}
