package transactionrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"

	"github.com/yeswin/wingo/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Now()

	tx := &domain.Transaction{
		UserID:     1,
		Type:       domain.TransactionDeposit,
		Method:     "bkash",
		Amount:     1000,
		Status:     domain.TransactionPending,
		TrxID:      "TX12345",
		BankNumber: "01711111111",
		CreatedAt:  createdAt,
	}

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO transactions`)).
		WithArgs(1, domain.TransactionDeposit, "bkash", 1000.0, domain.TransactionPending, "TX12345", "01711111111", createdAt).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(5)))

	got, err := repo.Create(context.Background(), tx)
	assert.NoError(t, err)
	assert.Equal(t, int64(5), got.ID)
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Now()

	tests := []struct {
		name      string
		id        int64
		mockSetup func()
		expectErr bool
		result    *domain.Transaction
	}{
		{
			name: "Existing transaction",
			id:   5,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "user_id", "type", "method", "amount", "status", "trx_id", "bank_number", "created_at"}).
					AddRow(int64(5), 1, domain.TransactionWithdrawal, "nagad", 500.0, domain.TransactionPending, "", "01722222222", createdAt)
				mock.ExpectQuery(regexp.QuoteMeta(`FROM transactions`)).
					WithArgs(int64(5)).
					WillReturnRows(rows)
			},
			result: &domain.Transaction{
				ID:         5,
				UserID:     1,
				Type:       domain.TransactionWithdrawal,
				Method:     "nagad",
				Amount:     500,
				Status:     domain.TransactionPending,
				BankNumber: "01722222222",
				CreatedAt:  createdAt,
			},
		},
		{
			name: "Missing transaction returns nil",
			id:   99,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM transactions`)).
					WithArgs(int64(99)).
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name: "Database error",
			id:   5,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM transactions`)).
					WithArgs(int64(5)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetByID(context.Background(), tt.id)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_FindByUserID(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY created_at DESC`)).
		WithArgs(1).
		WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "type", "method", "amount", "status", "trx_id", "bank_number", "created_at"}).
			AddRow(int64(2), 1, domain.TransactionWithdrawal, "bkash", 500.0, domain.TransactionPending, "", "01711111111", createdAt).
			AddRow(int64(1), 1, domain.TransactionDeposit, "bkash", 1000.0, domain.TransactionAccepted, "TX1", "01711111111", createdAt))

	txs, err := repo.FindByUserID(context.Background(), 1)
	assert.NoError(t, err)
	assert.Len(t, txs, 2)
	assert.Equal(t, int64(2), txs[0].ID)
	assert.Equal(t, domain.TransactionAccepted, txs[1].Status)
}

func TestRepository_CountWithdrawals(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE user_id = $1 AND type = 'withdrawal'`)).
		WithArgs(1).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.CountWithdrawals(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestRepository_Decide(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectOK  bool
		expectErr bool
	}{
		{
			name: "Pending transaction is decided",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`WHERE id = $1 AND status = 'pending'`)).
					WithArgs(int64(5), domain.TransactionAccepted).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			expectOK: true,
		},
		{
			name: "Second decision is rejected",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`WHERE id = $1 AND status = 'pending'`)).
					WithArgs(int64(5), domain.TransactionAccepted).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			expectOK: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`WHERE id = $1 AND status = 'pending'`)).
					WithArgs(int64(5), domain.TransactionAccepted).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			ok, err := repo.Decide(context.Background(), 5, domain.TransactionAccepted)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expectOK, ok)
		})
	}
}
