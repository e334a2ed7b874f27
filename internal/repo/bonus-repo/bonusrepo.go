package bonusrepo

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

func (r *Repository) FindByCode(ctx context.Context, code string) (*domain.BonusCode, error) {
	query := `
        SELECT id, code, amount, created_at
        FROM bonus_codes
        WHERE UPPER(code) = UPPER($1)
    `
	row := r.db.QueryRow(ctx, query, code)

	var bc domain.BonusCode
	err := row.Scan(&bc.ID, &bc.Code, &bc.Amount, &bc.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get bonus code", zap.Error(err))
		return nil, err
	}
	return &bc, nil
}

// MarkRedeemed records the redemption once per (user, code). Returns
// false when the user already redeemed this code.
func (r *Repository) MarkRedeemed(ctx context.Context, userID int, codeID int64) (bool, error) {
	query := `
        INSERT INTO bonus_redemptions (user_id, code_id)
        VALUES ($1, $2)
        ON CONFLICT (user_id, code_id) DO NOTHING
    `
	tag, err := r.db.Exec(ctx, query, userID, codeID)
	if err != nil {
		zap.L().Error("can't record bonus redemption", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
