// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"gusto/config"
	"gusto/internal/delivery/api/middleware"
	"gusto/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SystemHandler         *handler.SystemHandler
	AuthHandler           *handler.AuthHandler
	UserHandler           *handler.UserHandler
	RestaurantHandler     *handler.RestaurantHandler
	ReviewHandler         *handler.ReviewHandler
	RecommendationHandler *handler.RecommendationHandler
	AuthMiddleware        *middleware.AuthMiddleware
	Config                *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	systemHandler         *handler.SystemHandler
	authHandler           *handler.AuthHandler
	userHandler           *handler.UserHandler
	restaurantHandler     *handler.RestaurantHandler
	reviewHandler         *handler.ReviewHandler
	recommendationHandler *handler.RecommendationHandler
	authMiddleware        *middleware.AuthMiddleware
	config                *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		systemHandler:         params.SystemHandler,
		authHandler:           params.AuthHandler,
		userHandler:           params.UserHandler,
		restaurantHandler:     params.RestaurantHandler,
		reviewHandler:         params.ReviewHandler,
		recommendationHandler: params.RecommendationHandler,
		authMiddleware:        params.AuthMiddleware,
		config:                params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Operational endpoints
	e.GET("/", r.systemHandler.Root)
	e.GET("/health", r.systemHandler.Health)
	if r.config.Metrics != nil && r.config.Metrics.Enabled {
		e.GET(r.config.Metrics.Path, echo.WrapHandler(promhttp.Handler()))
	}

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
	}

	// Public catalogue
	e.GET("/categories", r.restaurantHandler.ListCategories)

	restaurantsGroup := e.Group("/restaurants")
	{
		restaurantsGroup.GET("", r.restaurantHandler.ListRestaurants)
		restaurantsGroup.POST("", r.restaurantHandler.CreateRestaurant, r.authMiddleware.Authenticate)
		restaurantsGroup.GET("/search", r.restaurantHandler.SearchRestaurants)
		restaurantsGroup.GET("/:id", r.restaurantHandler.GetRestaurant)
		restaurantsGroup.GET("/:id/comments", r.reviewHandler.ListComments)
		restaurantsGroup.GET("/:id/ratings", r.reviewHandler.RatingSummary)
	}

	usersGroup := e.Group("/users")
	{
		usersGroup.GET("", r.userHandler.ListUsers)
		usersGroup.GET("/:username", r.userHandler.GetUser)
	}

	recommendationsGroup := e.Group("/recommendations")
	{
		recommendationsGroup.POST("/advanced", r.recommendationHandler.Advanced)
		recommendationsGroup.GET("/:username", r.recommendationHandler.ForUser)
	}

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication

	meGroup := apiV1.Group("/me")
	{
		meGroup.GET("", r.userHandler.GetMe)
		meGroup.GET("/profile", r.userHandler.GetMe)
		meGroup.PATCH("/profile", r.userHandler.UpdateProfile)
		meGroup.GET("/preferences", r.userHandler.GetPreferences)
		meGroup.PUT("/preferences", r.userHandler.SavePreferences)
	}

	apiV1.GET("/recommendations", r.recommendationHandler.ForMe)
	apiV1.POST("/restaurants/:id/comments", r.reviewHandler.AddComment)
	apiV1.POST("/restaurants/:id/ratings", r.reviewHandler.Rate)
}
