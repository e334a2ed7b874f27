package auth

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/yeswin/wingo/internal/domain"
	"github.com/yeswin/wingo/internal/service/authservice"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestRegisterHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful registration",
			body: `{"gmail":"player@gmail.com","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), "player@gmail.com", "password123").Return(&domain.User{
					ID:           1,
					Gmail:        "player@gmail.com",
					PasswordHash: "hashedpassword",
				}, nil)
				service.EXPECT().GenerateToken(1).Return("some-jwt-token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Gmail already registered",
			body: `{"gmail":"taken@gmail.com","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), "taken@gmail.com", "password123").Return(nil, authservice.ErrGmailTaken)
			},
			expectedCode:  http.StatusConflict,
			expectedError: authservice.ErrGmailTaken.Error(),
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
		{
			name:          "Password too short",
			body:          `{"gmail":"player@gmail.com","password":"short"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
		},
		{
			name: "Error generating token",
			body: `{"gmail":"player@gmail.com","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().Register(context.Background(), "player@gmail.com", "password123").Return(&domain.User{
					ID:    1,
					Gmail: "player@gmail.com",
				}, nil)
				service.EXPECT().GenerateToken(1).Return("", errors.New("token generation error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/register", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.Register(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				assert.Equal(t, "Bearer some-jwt-token", w.Header().Get("Authorization"))
			}
		})
	}
}

func TestLoginHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful login",
			body: `{"gmail":"player@gmail.com","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(context.Background(), "player@gmail.com", "password123").Return(&domain.User{
					ID:    1,
					Gmail: "player@gmail.com",
				}, nil)
				service.EXPECT().GenerateToken(1).Return("some-jwt-token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Invalid credentials",
			body: `{"gmail":"player@gmail.com","password":"wrongpassword"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(context.Background(), "player@gmail.com", "wrongpassword").Return(nil, authservice.ErrInvalidCredentials)
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: authservice.ErrInvalidCredentials.Error(),
		},
		{
			name: "Blocked user",
			body: `{"gmail":"blocked@gmail.com","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(context.Background(), "blocked@gmail.com", "password123").Return(nil, authservice.ErrUserBlocked)
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: authservice.ErrUserBlocked.Error(),
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
		{
			name: "Internal server error",
			body: `{"gmail":"player@gmail.com","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(context.Background(), "player@gmail.com", "password123").Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.Login(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}
