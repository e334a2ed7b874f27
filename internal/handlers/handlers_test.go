package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	_ "github.com/yeswin/wingo/docs"
	"github.com/yeswin/wingo/internal/service"
	"github.com/yeswin/wingo/internal/ws"
)

func TestNew(t *testing.T) {
	h := New(&service.Services{}, ws.NewHub())
	assert.NotNil(t, h, "Handlers should not be nil")
	assert.NotNil(t, h.AuthHandler)
	assert.NotNil(t, h.GameHandler)
	assert.NotNil(t, h.WalletHandler)
	assert.NotNil(t, h.AdminHandler)
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockGameHandler := NewMockGameHandler(ctrl)
	mockWalletHandler := NewMockWalletHandler(ctrl)
	mockAdminHandler := NewMockAdminHandler(ctrl)

	mockAuthHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockGameHandler.EXPECT().GetState(gomock.Any(), gomock.Any()).AnyTimes()
	mockGameHandler.EXPECT().GetHistory(gomock.Any(), gomock.Any()).AnyTimes()
	mockGameHandler.EXPECT().StreamOutcomes(gomock.Any(), gomock.Any()).AnyTimes()
	mockGameHandler.EXPECT().StreamWagers(gomock.Any(), gomock.Any()).AnyTimes()
	mockGameHandler.EXPECT().PlaceWager(gomock.Any(), gomock.Any()).AnyTimes()
	mockGameHandler.EXPECT().GetWagers(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().GetBalance(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().Deposit(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().Withdraw(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().GetTransactions(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().RedeemBonus(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().Spin(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().DecideTransaction(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().SetNextResult(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		AuthHandler:   mockAuthHandler,
		GameHandler:   mockGameHandler,
		WalletHandler: mockWalletHandler,
		AdminHandler:  mockAdminHandler,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/api/user/register", http.StatusOK},
		{"POST", "/api/user/login", http.StatusOK},
		{"GET", "/api/game/1min/state", http.StatusOK},
		{"GET", "/api/game/1min/history", http.StatusOK},
		{"GET", "/api/game/1min/stream", http.StatusOK},
		{"POST", "/api/user/bets", http.StatusUnauthorized},
		{"GET", "/api/user/bets", http.StatusUnauthorized},
		{"GET", "/api/user/bets/stream", http.StatusUnauthorized},
		{"GET", "/api/user/balance", http.StatusUnauthorized},
		{"POST", "/api/user/balance/withdraw", http.StatusUnauthorized},
		{"POST", "/api/user/deposits", http.StatusUnauthorized},
		{"GET", "/api/user/transactions", http.StatusUnauthorized},
		{"POST", "/api/user/bonus", http.StatusUnauthorized},
		{"POST", "/api/user/wheel/spin", http.StatusUnauthorized},
		{"POST", "/api/admin/transactions/5/decision", http.StatusUnauthorized},
		{"PUT", "/api/admin/settings/next-result", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
