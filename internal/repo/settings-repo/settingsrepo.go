package settingsrepo

import (
	"context"

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

func (r *Repository) Get(ctx context.Context) (*domain.Settings, error) {
	query := `
        SELECT next_result, next_result_track
        FROM settings
        WHERE id = 1
    `
	row := r.db.QueryRow(ctx, query)

	var s domain.Settings
	if err := row.Scan(&s.NextResult, &s.NextResultTrack); err != nil {
		zap.L().Error("can't get settings", zap.Error(err))
		return nil, err
	}
	return &s, nil
}

func (r *Repository) SetNextResult(ctx context.Context, nextResult string, track domain.Track) error {
	query := `
        UPDATE settings
        SET next_result = $1, next_result_track = $2
        WHERE id = 1
    `
	if _, err := r.db.Exec(ctx, query, nextResult, track); err != nil {
		zap.L().Error("can't update settings", zap.Error(err))
		return err
	}
	return nil
}
