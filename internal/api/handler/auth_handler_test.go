package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"mediarate/internal/api/dto"
	"mediarate/internal/api/models"
	"mediarate/internal/api/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockAuthService mocks the AuthService interface
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, username, password string) (*models.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (string, error) {
	args := m.Called(ctx, username, password)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, rawToken string) error {
	args := m.Called(ctx, rawToken)
	return args.Error(0)
}

func (m *MockAuthService) Authorize(ctx context.Context, headerValue string) (int64, error) {
	args := m.Called(ctx, headerValue)
	return args.Get(0).(int64), args.Error(1)
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func jsonBody(v interface{}) *bytes.Buffer {
	raw, _ := json.Marshal(v)
	return bytes.NewBuffer(raw)
}

func postJSON(router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("POST", path, jsonBody(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRegisterEndpoint_Success(t *testing.T) {
	mockAuth := new(MockAuthService)
	h := NewAuthHandler(mockAuth)
	router := setupRouter()
	router.POST("/register", h.Register)

	mockAuth.On("Register", mock.Anything, "alice", "secret1").
		Return(&models.User{ID: 1, Username: "alice"}, nil)

	w := postJSON(router, "/register", dto.RegisterRequest{Username: "alice", Password: "secret1"})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.RegisterResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "alice", resp.Username)
	assert.Equal(t, "created", resp.Status)

	mockAuth.AssertExpectations(t)
}

func TestRegisterEndpoint_Conflict(t *testing.T) {
	mockAuth := new(MockAuthService)
	h := NewAuthHandler(mockAuth)
	router := setupRouter()
	router.POST("/register", h.Register)

	mockAuth.On("Register", mock.Anything, "alice", "secret1").
		Return(nil, service.ErrUsernameTaken)

	w := postJSON(router, "/register", dto.RegisterRequest{Username: "alice", Password: "secret1"})

	assert.Equal(t, http.StatusConflict, w.Code)
	mockAuth.AssertExpectations(t)
}

func TestRegisterEndpoint_ValidationError(t *testing.T) {
	mockAuth := new(MockAuthService)
	h := NewAuthHandler(mockAuth)
	router := setupRouter()
	router.POST("/register", h.Register)

	mockAuth.On("Register", mock.Anything, "alice", "abc").
		Return(nil, service.ErrValidation)

	w := postJSON(router, "/register", dto.RegisterRequest{Username: "alice", Password: "abc"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterEndpoint_InvalidJSON(t *testing.T) {
	h := NewAuthHandler(new(MockAuthService))
	router := setupRouter()
	router.POST("/register", h.Register)

	req, _ := http.NewRequest("POST", "/register", bytes.NewBufferString("not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginEndpoint_Success(t *testing.T) {
	mockAuth := new(MockAuthService)
	h := NewAuthHandler(mockAuth)
	router := setupRouter()
	router.POST("/login", h.Login)

	mockAuth.On("Login", mock.Anything, "alice", "secret1").Return("alice-token", nil)

	w := postJSON(router, "/login", dto.LoginRequest{Username: "alice", Password: "secret1"})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.LoginResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "alice-token", resp.Token)
}

func TestLoginEndpoint_InvalidCredentials(t *testing.T) {
	mockAuth := new(MockAuthService)
	h := NewAuthHandler(mockAuth)
	router := setupRouter()
	router.POST("/login", h.Login)

	mockAuth.On("Login", mock.Anything, "alice", "wrong").
		Return("", service.ErrInvalidCredentials)

	w := postJSON(router, "/login", dto.LoginRequest{Username: "alice", Password: "wrong"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogoutEndpoint(t *testing.T) {
	mockAuth := new(MockAuthService)
	h := NewAuthHandler(mockAuth)
	router := setupRouter()
	router.POST("/logout", h.Logout)

	mockAuth.On("Logout", mock.Anything, "Bearer alice-token").Return(nil)

	req, _ := http.NewRequest("POST", "/logout", nil)
	req.Header.Set("Authorization", "Bearer alice-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	mockAuth.AssertExpectations(t)
}
