package accountrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/yeswin/wingo/internal/domain"
	"github.com/yeswin/wingo/internal/pg"
)

// All mutations here are single additive or conditional UPDATE
// statements against the stored row. The account is written
// concurrently by wager placement (debit) and settlement (credit);
// additive updates make the two writers commute instead of racing a
// read-modify-write cycle.
type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) Get(ctx context.Context, userID int) (*domain.Account, error) {
	query := `
        SELECT user_id, balance, required_turnover, completed_turnover, last_spin_at
        FROM accounts
        WHERE user_id = $1
    `
	row := r.db.QueryRow(ctx, query, userID)

	var a domain.Account
	err := row.Scan(&a.UserID, &a.Balance, &a.RequiredTurnover, &a.CompletedTurnover, &a.LastSpinAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get account", zap.Error(err))
		return nil, err
	}
	return &a, nil
}

func (r *Repository) Create(ctx context.Context, userID int) (*domain.Account, error) {
	query := `
        INSERT INTO accounts (user_id, balance, required_turnover, completed_turnover)
        VALUES ($1, 0, 0, 0)
        RETURNING user_id, balance, required_turnover, completed_turnover, last_spin_at
    `
	row := r.db.QueryRow(ctx, query, userID)
	var a domain.Account
	err := row.Scan(&a.UserID, &a.Balance, &a.RequiredTurnover, &a.CompletedTurnover, &a.LastSpinAt)
	if err != nil {
		zap.L().Error("can't create account", zap.Error(err))
		return nil, err
	}
	return &a, nil
}

// DebitForWager atomically takes the stake from the balance and counts
// it toward turnover completion. The balance guard lives inside the
// statement, so an insufficient balance simply matches no row and
// returns false without side effects.
func (r *Repository) DebitForWager(ctx context.Context, userID int, amount float64) (bool, error) {
	query := `
        UPDATE accounts
        SET balance = balance - $2, completed_turnover = completed_turnover + $2
        WHERE user_id = $1 AND balance >= $2
    `
	tag, err := r.db.Exec(ctx, query, userID, amount)
	if err != nil {
		zap.L().Error("can't debit account", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// Debit takes amount from the balance without touching turnover (used
// by withdrawal requests and paid wheel spins).
func (r *Repository) Debit(ctx context.Context, userID int, amount float64) (bool, error) {
	query := `
        UPDATE accounts
        SET balance = balance - $2
        WHERE user_id = $1 AND balance >= $2
    `
	tag, err := r.db.Exec(ctx, query, userID, amount)
	if err != nil {
		zap.L().Error("can't debit account", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// CreditPayout adds a settlement payout to the balance only.
func (r *Repository) CreditPayout(ctx context.Context, userID int, amount float64) error {
	query := `
        UPDATE accounts
        SET balance = balance + $2
        WHERE user_id = $1
    `
	tag, err := r.db.Exec(ctx, query, userID, amount)
	if err != nil {
		zap.L().Error("can't credit payout", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("account not found")
	}
	return nil
}

// CreditTurnoverLinked adds a deposit or bonus to the balance and
// raises the required turnover by the same amount.
func (r *Repository) CreditTurnoverLinked(ctx context.Context, userID int, amount float64) error {
	query := `
        UPDATE accounts
        SET balance = balance + $2, required_turnover = required_turnover + $2
        WHERE user_id = $1
    `
	tag, err := r.db.Exec(ctx, query, userID, amount)
	if err != nil {
		zap.L().Error("can't credit account", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("account not found")
	}
	return nil
}

func (r *Repository) SetLastSpinAt(ctx context.Context, userID int, at time.Time) error {
	query := `
        UPDATE accounts
        SET last_spin_at = $2
        WHERE user_id = $1
    `
	if _, err := r.db.Exec(ctx, query, userID, at); err != nil {
		zap.L().Error("can't update last spin time", zap.Error(err))
		return err
	}
	return nil
}
