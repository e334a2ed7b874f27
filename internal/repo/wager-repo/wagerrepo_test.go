package wagerrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/yeswin/wingo/internal/domain"
	"github.com/yeswin/wingo/internal/pg"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	placedAt := time.Now()
	sel, _ := domain.ParseSelection("violet")
	wager := &domain.Wager{
		UserID:    1,
		Track:     domain.Track30Sec,
		PeriodID:  100,
		Selection: sel,
		Amount:    50,
		Status:    domain.WagerPending,
		PlacedAt:  placedAt,
	}

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO wagers`)).
		WithArgs(1, domain.Track30Sec, int64(100), domain.SelectionColor, "violet", 50.0, domain.WagerPending, placedAt).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(7)))

	err := repo.Create(context.Background(), wager)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), wager.ID)
}

func TestRepository_FindSettleable(t *testing.T) {
	repo, mock := NewMock(t)
	placedAt := time.Now()

	columns := []string{
		"id", "user_id", "track", "period_id", "selection_kind", "selection_value",
		"amount", "status", "payout", "placed_at",
		"number", "size", "color",
	}

	mock.ExpectQuery(regexp.QuoteMeta(`JOIN results res ON res.track = w.track AND res.period_id = w.period_id`)).
		WithArgs(domain.Track1Min, 1000).
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow(int64(1), 10, domain.Track1Min, int64(100), domain.SelectionDigit, "5",
				100.0, domain.WagerPending, 0.0, placedAt,
				5, domain.SizeBig, domain.ColorViolet).
			AddRow(int64(2), 20, domain.Track1Min, int64(100), domain.SelectionSize, "small",
				30.0, domain.WagerPending, 0.0, placedAt,
				5, domain.SizeBig, domain.ColorViolet))

	items, err := repo.FindSettleable(context.Background(), domain.Track1Min, 1000)
	assert.NoError(t, err)
	assert.Len(t, items, 2)

	assert.Equal(t, int64(1), items[0].Wager.ID)
	assert.Equal(t, domain.SelectionDigit, items[0].Wager.Selection.Kind)
	assert.Equal(t, 5, items[0].Wager.Selection.Digit)
	assert.Equal(t, domain.Track1Min, items[0].Outcome.Track)
	assert.Equal(t, int64(100), items[0].Outcome.PeriodID)
	assert.Equal(t, 5, items[0].Outcome.Number)

	assert.Equal(t, domain.SelectionSize, items[1].Wager.Selection.Kind)
	assert.Equal(t, domain.SizeSmall, items[1].Wager.Selection.Size)
}

func TestRepository_FindSettleableMalformedSelection(t *testing.T) {
	repo, mock := NewMock(t)
	placedAt := time.Now()

	columns := []string{
		"id", "user_id", "track", "period_id", "selection_kind", "selection_value",
		"amount", "status", "payout", "placed_at",
		"number", "size", "color",
	}

	mock.ExpectQuery(regexp.QuoteMeta(`JOIN results res ON res.track = w.track AND res.period_id = w.period_id`)).
		WithArgs(domain.Track1Min, 1000).
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow(int64(1), 10, domain.Track1Min, int64(100), domain.SelectionDigit, "blue",
				100.0, domain.WagerPending, 0.0, placedAt,
				5, domain.SizeBig, domain.ColorViolet))

	_, err := repo.FindSettleable(context.Background(), domain.Track1Min, 1000)
	assert.ErrorIs(t, err, domain.ErrMalformedSelection)
}

func TestRepository_Settle(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectOK  bool
		expectErr bool
	}{
		{
			name: "Pending wager settles",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`WHERE id = $1 AND status = 'pending'`)).
					WithArgs(int64(1), domain.WagerWon, 450.0).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			expectOK: true,
		},
		{
			name: "Already settled wager is not touched",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`WHERE id = $1 AND status = 'pending'`)).
					WithArgs(int64(1), domain.WagerWon, 450.0).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			expectOK: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`WHERE id = $1 AND status = 'pending'`)).
					WithArgs(int64(1), domain.WagerWon, 450.0).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			ok, err := repo.Settle(context.Background(), 1, domain.WagerWon, 450)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expectOK, ok)
		})
	}
}

func TestRepository_FindByUserID(t *testing.T) {
	repo, mock := NewMock(t)
	placedAt := time.Now()

	columns := []string{"id", "user_id", "track", "period_id", "selection_kind", "selection_value", "amount", "status", "payout", "placed_at"}

	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY placed_at DESC`)).
		WithArgs(1, 50).
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow(int64(2), 1, domain.Track1Min, int64(101), domain.SelectionColor, "red", 20.0, domain.WagerWon, 40.0, placedAt).
			AddRow(int64(1), 1, domain.Track1Min, int64(100), domain.SelectionDigit, "3", 10.0, domain.WagerLost, 0.0, placedAt))

	wagers, err := repo.FindByUserID(context.Background(), 1, 50)
	assert.NoError(t, err)
	assert.Len(t, wagers, 2)
	assert.Equal(t, int64(2), wagers[0].ID)
	assert.Equal(t, domain.ColorRed, wagers[0].Selection.Color)
	assert.Equal(t, 40.0, wagers[0].Payout)
	assert.Equal(t, 3, wagers[1].Selection.Digit)
}
