package handlers

import (
	"context"
	"net/http"

	"daily_diet/internal/models"
	"daily_diet/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAccounts struct {
	user  models.User
	token string
	err   error

	lastInput service.RegisterInput
	calls     int
}

func (m *mockAccounts) Register(ctx context.Context, in service.RegisterInput) (models.User, string, error) {
	m.calls++
	m.lastInput = in
	return m.user, m.token, m.err
}

type mockSessions struct {
	userID string
	err    error

	lastCredential string
}

func (m *mockSessions) Resolve(ctx context.Context, credential string) (string, error) {
	m.lastCredential = credential
	return m.userID, m.err
}

type mockMeals struct {
	createMeal models.Meal
	createErr  error
	listResp   []models.Meal
	listErr    error
	getMeal    models.Meal
	getErr     error
	updateMeal models.Meal
	updateErr  error
	deleteErr  error

	lastUserID string
	lastMealID string
	lastInput  service.MealInput
}

func (m *mockMeals) Create(ctx context.Context, userID string, in service.MealInput) (models.Meal, error) {
	m.lastUserID = userID
	m.lastInput = in
	return m.createMeal, m.createErr
}

func (m *mockMeals) List(ctx context.Context, userID string) ([]models.Meal, error) {
	m.lastUserID = userID
	return m.listResp, m.listErr
}

func (m *mockMeals) Get(ctx context.Context, userID, mealID string) (models.Meal, error) {
	m.lastUserID = userID
	m.lastMealID = mealID
	return m.getMeal, m.getErr
}

func (m *mockMeals) Update(ctx context.Context, userID, mealID string, in service.MealInput) (models.Meal, error) {
	m.lastUserID = userID
	m.lastMealID = mealID
	m.lastInput = in
	return m.updateMeal, m.updateErr
}

func (m *mockMeals) Delete(ctx context.Context, userID, mealID string) error {
	m.lastUserID = userID
	m.lastMealID = mealID
	return m.deleteErr
}

type mockSummary struct {
	resp models.MealSummary
	err  error

	lastUserID string
}

func (m *mockSummary) Summarize(ctx context.Context, userID string) (models.MealSummary, error) {
	m.lastUserID = userID
	return m.resp, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func sessionCookie(credential string) *http.Cookie {
	return &http.Cookie{Name: sessionCookieName, Value: credential}
}
