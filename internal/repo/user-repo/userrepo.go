package userrepo

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

func (repo *Repository) FindByGmail(ctx context.Context, gmail string) (*domain.User, error) {
	var user domain.User
	err := repo.db.QueryRow(ctx,
		"SELECT id, gmail, password_hash, is_blocked FROM users WHERE gmail = $1", gmail,
	).Scan(&user.ID, &user.Gmail, &user.PasswordHash, &user.IsBlocked)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (gmail, password_hash)
		VALUES ($1, $2)
		RETURNING id
	`
	err := repo.db.QueryRow(ctx, query, user.Gmail, user.PasswordHash).Scan(&user.ID)
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}
