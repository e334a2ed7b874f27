package transactionrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/yeswin/wingo/internal/domain"
	"github.com/yeswin/wingo/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
	query := `
		INSERT INTO transactions (user_id, type, method, amount, status, trx_id, bank_number, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		tx.UserID, tx.Type, tx.Method, tx.Amount, tx.Status, tx.TrxID, tx.BankNumber, tx.CreatedAt,
	).Scan(&tx.ID)
	if err != nil {
		zap.L().Error("can't save transaction", zap.Error(err))
		return nil, err
	}
	return tx, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Transaction, error) {
	query := `
        SELECT id, user_id, type, method, amount, status, trx_id, bank_number, created_at
        FROM transactions
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)

	var tx domain.Transaction
	err := row.Scan(&tx.ID, &tx.UserID, &tx.Type, &tx.Method, &tx.Amount, &tx.Status, &tx.TrxID, &tx.BankNumber, &tx.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get transaction", zap.Error(err))
		return nil, err
	}
	return &tx, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.Transaction, error) {
	query := `
        SELECT id, user_id, type, method, amount, status, trx_id, bank_number, created_at
        FROM transactions
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var txs []domain.Transaction
	for rows.Next() {
		var tx domain.Transaction
		err := rows.Scan(&tx.ID, &tx.UserID, &tx.Type, &tx.Method, &tx.Amount, &tx.Status, &tx.TrxID, &tx.BankNumber, &tx.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan transaction row", zap.Error(err))
			return nil, err
		}
		txs = append(txs, tx)
	}
	return txs, rows.Err()
}

// CountWithdrawals counts every withdrawal request the user ever filed,
// settled or not. The first withdrawal has a lower minimum amount.
func (r *Repository) CountWithdrawals(ctx context.Context, userID int) (int, error) {
	query := `
        SELECT COUNT(*)
        FROM transactions
        WHERE user_id = $1 AND type = 'withdrawal'
    `
	var count int
	if err := r.db.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		zap.L().Error("can't count withdrawals", zap.Error(err))
		return 0, err
	}
	return count, nil
}

// Decide moves a pending transaction to accepted or cancelled with a
// compare-and-set on status, so approving the same deposit twice cannot
// credit it twice.
func (r *Repository) Decide(ctx context.Context, id int64, status string) (bool, error) {
	query := `
        UPDATE transactions
        SET status = $2
        WHERE id = $1 AND status = 'pending'
    `
	tag, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		zap.L().Error("can't update transaction status", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
