package router

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gusto/config"
	"gusto/internal/delivery/api/middleware"
	"gusto/internal/delivery/api/router/handler"
	"gusto/internal/delivery/api/validator"
	deliverymiddleware "gusto/internal/delivery/middleware"
	"gusto/internal/domain/entity"
	domainerrors "gusto/internal/domain/errors"
	"gusto/internal/domain/service"
	mockService "gusto/internal/mocks/service"
	mockUsecase "gusto/internal/mocks/usecase"
	"gusto/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const validToken = "valid-token"

type apiFixture struct {
	e              *echo.Echo
	userID         uuid.UUID
	auth           *mockUsecase.MockAuthUsecase
	users          *mockUsecase.MockUserUsecase
	restaurants    *mockUsecase.MockRestaurantUsecase
	reviews        *mockUsecase.MockReviewUsecase
	recommendation *mockUsecase.MockRecommendationUsecase
	health         *mockUsecase.MockHealthUsecase
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{Metrics: &config.MetricsConfig{Enabled: true, Path: "/metrics"}}
	cfg.Env.ServiceName = "gusto"

	f := &apiFixture{
		userID:         uuid.New(),
		auth:           mockUsecase.NewMockAuthUsecase(t),
		users:          mockUsecase.NewMockUserUsecase(t),
		restaurants:    mockUsecase.NewMockRestaurantUsecase(t),
		reviews:        mockUsecase.NewMockReviewUsecase(t),
		recommendation: mockUsecase.NewMockRecommendationUsecase(t),
		health:         mockUsecase.NewMockHealthUsecase(t),
	}

	tokens := &mockService.MockTokenService{}
	tokens.On("ValidateToken", validToken).Return(&service.Claims{UserID: f.userID, Username: "ana"}, nil).Maybe()
	tokens.On("ValidateToken", mock.Anything).Return(nil, domainerrors.ErrInvalidToken).Maybe()

	e := echo.New()
	e.Use(deliverymiddleware.NewRequestIDMiddleware(logger).Process)
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError
	e.Validator = validator.New()

	NewRouter(RouterParams{
		SystemHandler:         handler.NewSystemHandler(handler.SystemHandlerParams{HealthUC: f.health, Config: cfg}),
		AuthHandler:           handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: f.auth, Logger: logger}),
		UserHandler:           handler.NewUserHandler(handler.UserHandlerParams{UserUC: f.users}),
		RestaurantHandler:     handler.NewRestaurantHandler(handler.RestaurantHandlerParams{RestaurantUC: f.restaurants}),
		ReviewHandler:         handler.NewReviewHandler(handler.ReviewHandlerParams{ReviewUC: f.reviews}),
		RecommendationHandler: handler.NewRecommendationHandler(handler.RecommendationHandlerParams{RecommendationUC: f.recommendation}),
		AuthMiddleware:        middleware.NewAuthMiddleware(tokens),
		Config:                cfg,
	}).RegisterRoutes(e)

	f.e = e

	return f
}

func (f *apiFixture) do(method, target, body, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)

	return rec
}

type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	assert.NotEmpty(t, env.Meta.RequestID)

	return env
}

func TestRoutes_Health(t *testing.T) {
	f := newAPIFixture(t)

	f.health.On("Check", mock.Anything).Return(nil).Once()
	rec := f.do(http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy","database":"up"}`, string(decode(t, rec).Data))

	f.health.On("Check", mock.Anything).Return(domainerrors.ErrServiceUnavailable).Once()
	rec = f.do(http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "SERVICE_UNAVAILABLE", decode(t, rec).Error.Code)
}

func TestRoutes_RootAndMetrics(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(http.MethodGet, "/", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/recommendations/:username")

	rec = f.do(http.MethodGet, "/metrics", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestRoutes_Register(t *testing.T) {
	f := newAPIFixture(t)

	f.auth.On("Register", mock.Anything, mock.MatchedBy(func(in *usecase.RegisterInput) bool {
		return in.Email == "ana@example.com" && in.Budget != nil && *in.Budget == 20
	})).Return(&usecase.AuthOutput{User: &usecase.UserView{Username: "ana"}, Token: "tok"}, nil)

	rec := f.do(http.MethodPost, "/auth/register",
		`{"email":"ana@example.com","username":"ana","password":"s3cretpass","budget":20}`, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	env := decode(t, rec)
	assert.Equal(t, "User registered successfully", env.Message)
	assert.Contains(t, string(env.Data), `"token":"tok"`)
}

func TestRoutes_Register_ValidationDetails(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(http.MethodPost, "/auth/register", `{"email":"not-an-email","username":"ana","password":"x"}`, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	env := decode(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Contains(t, rec.Body.String(), `"field":"email"`)
	assert.Contains(t, rec.Body.String(), `"field":"budget"`)
}

func TestRoutes_Register_Conflict(t *testing.T) {
	f := newAPIFixture(t)

	f.auth.On("Register", mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrUserAlreadyExists.WrapMessage("taken"))

	rec := f.do(http.MethodPost, "/auth/register",
		`{"email":"ana@example.com","username":"ana","password":"s3cretpass","budget":0}`, "")
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "USER_ALREADY_EXISTS", decode(t, rec).Error.Code)
}

func TestRoutes_MalformedBody(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(http.MethodPost, "/auth/login", `{"email":`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decode(t, rec).Error.Code)
}

func TestRoutes_AuthRequired(t *testing.T) {
	f := newAPIFixture(t)

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header"},
		{name: "wrong scheme", header: "Basic abc"},
		{name: "invalid token", header: "Bearer nope"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			f.e.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}

	rec := f.do(http.MethodPost, "/restaurants", `{"name":"x","price":1}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRoutes_Me(t *testing.T) {
	f := newAPIFixture(t)

	f.users.On("GetMe", mock.Anything, f.userID).Return(&usecase.UserView{ID: f.userID, Username: "ana"}, nil)

	rec := f.do(http.MethodGet, "/api/v1/me", "", validToken)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(decode(t, rec).Data), `"username":"ana"`)
}

func TestRoutes_UpdateProfile(t *testing.T) {
	f := newAPIFixture(t)

	f.users.On("UpdateProfile", mock.Anything, f.userID, mock.MatchedBy(func(in *usecase.UpdateProfileInput) bool {
		return in.GroupSize != nil && *in.GroupSize == 3 && in.PreferredZones != nil && len(in.PreferredZones) == 0
	})).Return(&usecase.UserView{GroupSize: 3}, nil)

	rec := f.do(http.MethodPatch, "/api/v1/me/profile", `{"group_size":3,"preferred_zones":[]}`, validToken)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = f.do(http.MethodPatch, "/api/v1/me/profile", `{"group_size":0}`, validToken)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRoutes_Preferences(t *testing.T) {
	f := newAPIFixture(t)

	f.users.On("SavePreferences", mock.Anything, f.userID, mock.MatchedBy(func(raw json.RawMessage) bool {
		return string(raw) == `{"theme":"dark"}`
	})).Return(&usecase.PreferencesView{Preferences: json.RawMessage(`{"theme":"dark"}`)}, nil)
	f.users.On("SavePreferences", mock.Anything, f.userID, json.RawMessage(`{}`)).
		Return(&usecase.PreferencesView{Preferences: json.RawMessage(`{}`)}, nil)
	f.users.On("GetPreferences", mock.Anything, f.userID).Return(&usecase.PreferencesView{}, nil)

	rec := f.do(http.MethodPut, "/api/v1/me/preferences", `{"preferences":{"theme":"dark"}}`, validToken)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"preferences":{"theme":"dark"}}`, string(decode(t, rec).Data))

	rec = f.do(http.MethodPut, "/api/v1/me/preferences", `{}`, validToken)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = f.do(http.MethodGet, "/api/v1/me/preferences", "", validToken)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"preferences":null}`, string(decode(t, rec).Data))
}

func TestRoutes_Restaurants(t *testing.T) {
	f := newAPIFixture(t)
	id := uuid.New()

	f.restaurants.On("GetRestaurant", mock.Anything, id).Return(&usecase.RestaurantView{ID: id, Name: "Trattoria"}, nil)
	f.restaurants.On("SearchRestaurants", mock.Anything, "").
		Return(nil, domainerrors.ErrValidationFailed.WithDetails("search query must not be empty"))
	f.restaurants.On("ListCategories", mock.Anything).Return([]string{"Italian", "Sushi"}, nil)
	f.restaurants.On("CreateRestaurant", mock.Anything, mock.MatchedBy(func(in *usecase.CreateRestaurantInput) bool {
		return in.Name == "Napoli" && *in.Price == 12
	})).Return(&usecase.RestaurantView{Name: "Napoli"}, nil)

	rec := f.do(http.MethodGet, "/restaurants/"+id.String(), "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(decode(t, rec).Data), `"name":"Trattoria"`)

	rec = f.do(http.MethodGet, "/restaurants/not-a-uuid", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(http.MethodGet, "/restaurants/search", "", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Equal(t, "search query must not be empty", env.Error.Details)

	rec = f.do(http.MethodGet, "/categories", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `["Italian","Sushi"]`, string(decode(t, rec).Data))

	rec = f.do(http.MethodPost, "/restaurants", `{"name":"Napoli","price":12}`, validToken)
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = f.do(http.MethodPost, "/restaurants", `{"name":"Napoli","price":12,"service_level":7}`, validToken)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRoutes_Reviews(t *testing.T) {
	f := newAPIFixture(t)
	restaurantID := uuid.New()
	avg := 4.5

	f.reviews.On("Rate", mock.Anything, f.userID, restaurantID, &usecase.RateInput{Score: 5}).
		Return(&entity.RatingSummary{RestaurantID: restaurantID, Average: &avg, Count: 2}, nil)
	f.reviews.On("Rate", mock.Anything, f.userID, restaurantID, &usecase.RateInput{Score: 9}).
		Return(nil, domainerrors.ErrInvalidRating)
	f.reviews.On("RatingSummary", mock.Anything, restaurantID).
		Return(&entity.RatingSummary{RestaurantID: restaurantID}, nil)
	f.reviews.On("AddComment", mock.Anything, f.userID, restaurantID, &usecase.AddCommentInput{Text: "Great"}).
		Return(&usecase.CommentView{Text: "Great", Username: "ana"}, nil)

	rec := f.do(http.MethodPost, "/api/v1/restaurants/"+restaurantID.String()+"/ratings", `{"score":5}`, validToken)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, string(decode(t, rec).Data), `"average":4.5`)

	rec = f.do(http.MethodPost, "/api/v1/restaurants/"+restaurantID.String()+"/ratings", `{"score":9}`, validToken)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_RATING", decode(t, rec).Error.Code)

	rec = f.do(http.MethodGet, "/restaurants/"+restaurantID.String()+"/ratings", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(decode(t, rec).Data), `"average":null`)

	rec = f.do(http.MethodPost, "/api/v1/restaurants/"+restaurantID.String()+"/comments", `{"text":"Great"}`, validToken)
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = f.do(http.MethodPost, "/api/v1/restaurants/"+restaurantID.String()+"/comments", `{"text":""}`, validToken)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRoutes_Recommendations(t *testing.T) {
	f := newAPIFixture(t)
	score := 4

	f.recommendation.On("RecommendForUser", mock.Anything, "ana").Return(&usecase.RecommendationOutput{
		Recommendations: []usecase.RecommendationView{{Name: "Trattoria", Score: &score, Zones: []string{}}},
		Count:           1,
	}, nil)
	f.recommendation.On("RecommendForUser", mock.Anything, "ghost").Return(nil, domainerrors.ErrUserNotFound)
	f.recommendation.On("RecommendForUserID", mock.Anything, f.userID).Return(&usecase.RecommendationOutput{
		Recommendations: []usecase.RecommendationView{},
		Message:         "none",
	}, nil)
	f.recommendation.On("RecommendAdvanced", mock.Anything, mock.MatchedBy(func(in *usecase.AdvancedSearchInput) bool {
		return in.Budget == nil && in.PetFriendly && in.Zone == "Centro"
	})).Return(&usecase.RecommendationOutput{Recommendations: []usecase.RecommendationView{}}, nil)

	rec := f.do(http.MethodGet, "/recommendations/ana", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(decode(t, rec).Data), `"score":4`)

	rec = f.do(http.MethodGet, "/recommendations/ghost", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = f.do(http.MethodGet, "/api/v1/recommendations", "", validToken)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"recommendations":[],"count":0,"message":"none"}`, string(decode(t, rec).Data))

	rec = f.do(http.MethodPost, "/recommendations/advanced", `{"zone":"Centro","pet_friendly":true}`, "")
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = f.do(http.MethodPost, "/recommendations/advanced", `{"min_service_level":9}`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRoutes_UnhandledErrorIsGeneric(t *testing.T) {
	f := newAPIFixture(t)

	f.users.On("ListUsers", mock.Anything).Return(nil, assert.AnError)

	rec := f.do(http.MethodGet, "/users", "", "")
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	env := decode(t, rec)
	assert.Equal(t, "INTERNAL_ERROR", env.Error.Code)
	assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
}
