package wallet

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/yeswin/wingo/internal/domain"
	"github.com/yeswin/wingo/internal/dto"
	"github.com/yeswin/wingo/internal/service/walletservice"
	"github.com/yeswin/wingo/internal/service/wheelservice"
	"github.com/yeswin/wingo/pkg/auth"
)

func NewMock(t *testing.T) (*WalletHandler, *MockWalletService, *MockWheelService) {
	ctrl := gomock.NewController(t)
	walletService := NewMockWalletService(ctrl)
	wheelService := NewMockWheelService(ctrl)
	handler := New(walletService, wheelService)
	defer ctrl.Finish()
	return handler, walletService, wheelService
}

func authed(r *http.Request) *http.Request {
	return r.WithContext(context.WithValue(context.Background(), auth.UserIDKey, 1))
}

func TestGetBalanceHandler(t *testing.T) {
	handler, walletService, _ := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedBody dto.AccountResponseDTO
	}{
		{
			name: "Balance with incomplete turnover",
			prepareMock: func() {
				walletService.EXPECT().
					GetAccount(gomock.Any(), 1).
					Return(&domain.Account{
						UserID:            1,
						Balance:           500.5,
						RequiredTurnover:  1000,
						CompletedTurnover: 650,
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.AccountResponseDTO{
				Balance:           500.5,
				RequiredTurnover:  1000,
				CompletedTurnover: 650,
				CanWithdraw:       false,
			},
		},
		{
			name: "Turnover complete unlocks withdrawal",
			prepareMock: func() {
				walletService.EXPECT().
					GetAccount(gomock.Any(), 1).
					Return(&domain.Account{
						UserID:            1,
						Balance:           1200,
						RequiredTurnover:  1000,
						CompletedTurnover: 1000,
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.AccountResponseDTO{
				Balance:           1200,
				RequiredTurnover:  1000,
				CompletedTurnover: 1000,
				CanWithdraw:       true,
			},
		},
		{
			name: "Account not found",
			prepareMock: func() {
				walletService.EXPECT().GetAccount(gomock.Any(), 1).Return(nil, walletservice.ErrAccountNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				walletService.EXPECT().GetAccount(gomock.Any(), 1).Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := authed(httptest.NewRequest(http.MethodGet, "/balance", nil))
			w := httptest.NewRecorder()

			handler.GetBalance(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.AccountResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}

func TestDepositHandler(t *testing.T) {
	handler, walletService, _ := NewMock(t)
	createdAt := time.Now()

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Deposit claim filed",
			body: `{"method":"Bkash","amount":1000,"trx_id":"TX12345"}`,
			prepareMock: func() {
				walletService.EXPECT().
					RequestDeposit(gomock.Any(), 1, "Bkash", 1000.0, "TX12345").
					Return(&domain.Transaction{
						ID:        5,
						UserID:    1,
						Type:      domain.TransactionDeposit,
						Method:    "Bkash",
						Amount:    1000,
						Status:    domain.TransactionPending,
						TrxID:     "TX12345",
						CreatedAt: createdAt,
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
		{
			name:         "Unknown payment method",
			body:         `{"method":"paypal","amount":1000,"trx_id":"TX12345"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Internal server error",
			body: `{"method":"Bkash","amount":1000,"trx_id":"TX12345"}`,
			prepareMock: func() {
				walletService.EXPECT().
					RequestDeposit(gomock.Any(), 1, "Bkash", 1000.0, "TX12345").
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := authed(httptest.NewRequest(http.MethodPost, "/deposits", bytes.NewBufferString(tt.body)))
			w := httptest.NewRecorder()

			handler.Deposit(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				var body dto.TransactionResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, int64(5), body.ID)
				assert.Equal(t, domain.TransactionPending, body.Status)
			}
		})
	}
}

func TestWithdrawHandler(t *testing.T) {
	handler, walletService, _ := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Withdrawal requested",
			body: `{"method":"Nagad","amount":500,"bank_number":"01711111111"}`,
			prepareMock: func() {
				walletService.EXPECT().
					RequestWithdrawal(gomock.Any(), 1, "Nagad", 500.0, "01711111111").
					Return(&domain.Transaction{
						ID:     6,
						UserID: 1,
						Type:   domain.TransactionWithdrawal,
						Method: "Nagad",
						Amount: 500,
						Status: domain.TransactionPending,
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Turnover incomplete",
			body: `{"method":"Nagad","amount":500,"bank_number":"01711111111"}`,
			prepareMock: func() {
				walletService.EXPECT().
					RequestWithdrawal(gomock.Any(), 1, "Nagad", 500.0, "01711111111").
					Return(nil, walletservice.ErrTurnoverIncomplete)
			},
			expectedCode:  http.StatusForbidden,
			expectedError: walletservice.ErrTurnoverIncomplete.Error(),
		},
		{
			name: "Below the withdrawal minimum",
			body: `{"method":"Nagad","amount":300,"bank_number":"01711111111"}`,
			prepareMock: func() {
				walletService.EXPECT().
					RequestWithdrawal(gomock.Any(), 1, "Nagad", 300.0, "01711111111").
					Return(nil, walletservice.ErrBelowMinWithdrawal)
			},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: walletservice.ErrBelowMinWithdrawal.Error(),
		},
		{
			name: "Insufficient balance",
			body: `{"method":"Nagad","amount":500,"bank_number":"01711111111"}`,
			prepareMock: func() {
				walletService.EXPECT().
					RequestWithdrawal(gomock.Any(), 1, "Nagad", 500.0, "01711111111").
					Return(nil, walletservice.ErrInsufficientBalance)
			},
			expectedCode:  http.StatusPaymentRequired,
			expectedError: walletservice.ErrInsufficientBalance.Error(),
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := authed(httptest.NewRequest(http.MethodPost, "/balance/withdraw", bytes.NewBufferString(tt.body)))
			w := httptest.NewRecorder()

			handler.Withdraw(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestGetTransactionsHandler(t *testing.T) {
	handler, walletService, _ := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "History newest first",
			prepareMock: func() {
				walletService.EXPECT().GetTransactions(gomock.Any(), 1).Return([]domain.Transaction{
					{ID: 2, Type: domain.TransactionWithdrawal, Amount: 500, Status: domain.TransactionPending, CreatedAt: time.Now()},
					{ID: 1, Type: domain.TransactionDeposit, Amount: 1000, Status: domain.TransactionAccepted, CreatedAt: time.Now()},
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "No transactions",
			prepareMock: func() {
				walletService.EXPECT().GetTransactions(gomock.Any(), 1).Return(nil, nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				walletService.EXPECT().GetTransactions(gomock.Any(), 1).Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := authed(httptest.NewRequest(http.MethodGet, "/transactions", nil))
			w := httptest.NewRecorder()

			handler.GetTransactions(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body []dto.TransactionResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Len(t, body, 2)
				assert.Equal(t, int64(2), body[0].ID)
			}
		})
	}
}

func TestRedeemBonusHandler(t *testing.T) {
	handler, walletService, _ := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Bonus credited",
			body: `{"code":"WELCOME50"}`,
			prepareMock: func() {
				walletService.EXPECT().
					RedeemBonus(gomock.Any(), 1, "WELCOME50").
					Return(&domain.BonusCode{ID: 1, Code: "WELCOME50", Amount: 50}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Unknown code",
			body: `{"code":"NOPE"}`,
			prepareMock: func() {
				walletService.EXPECT().
					RedeemBonus(gomock.Any(), 1, "NOPE").
					Return(nil, walletservice.ErrBonusCodeNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: walletservice.ErrBonusCodeNotFound.Error(),
		},
		{
			name: "Code already used",
			body: `{"code":"WELCOME50"}`,
			prepareMock: func() {
				walletService.EXPECT().
					RedeemBonus(gomock.Any(), 1, "WELCOME50").
					Return(nil, walletservice.ErrBonusCodeAlreadyUsed)
			},
			expectedCode:  http.StatusConflict,
			expectedError: walletservice.ErrBonusCodeAlreadyUsed.Error(),
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := authed(httptest.NewRequest(http.MethodPost, "/bonus", bytes.NewBufferString(tt.body)))
			w := httptest.NewRecorder()

			handler.RedeemBonus(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestSpinHandler(t *testing.T) {
	handler, _, wheelService := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedBody dto.SpinResponseDTO
	}{
		{
			name: "Free spin",
			prepareMock: func() {
				wheelService.EXPECT().Spin(gomock.Any(), 1).Return(&wheelservice.SpinResult{
					Segment: wheelservice.Segment{Label: "50", Value: 50},
					Free:    true,
					Net:     50,
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.SpinResponseDTO{Segment: "50", Value: 50, Free: true, Net: 50},
		},
		{
			name: "Insufficient balance for a paid spin",
			prepareMock: func() {
				wheelService.EXPECT().Spin(gomock.Any(), 1).Return(nil, wheelservice.ErrInsufficientBalance)
			},
			expectedCode: http.StatusPaymentRequired,
		},
		{
			name: "Account not found",
			prepareMock: func() {
				wheelService.EXPECT().Spin(gomock.Any(), 1).Return(nil, wheelservice.ErrAccountNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				wheelService.EXPECT().Spin(gomock.Any(), 1).Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := authed(httptest.NewRequest(http.MethodPost, "/wheel/spin", nil))
			w := httptest.NewRecorder()

			handler.Spin(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.SpinResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}
