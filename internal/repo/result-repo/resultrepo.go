package resultrepo

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

// InsertIfAbsent writes the outcome only when no outcome exists yet for
// its (track, period_id) key. First writer wins, everyone else sees
// inserted=false. The conditional insert is a single statement, so
// concurrent generators cannot both succeed.
func (r *Repository) InsertIfAbsent(ctx context.Context, outcome *domain.Outcome) (bool, error) {
	query := `
        INSERT INTO results (track, period_id, number, size, color)
        VALUES ($1, $2, $3, $4, $5)
        ON CONFLICT (track, period_id) DO NOTHING
    `
	tag, err := r.db.Exec(ctx, query, outcome.Track, outcome.PeriodID, outcome.Number, outcome.Size, outcome.Color)
	if err != nil {
		zap.L().Error("can't insert outcome", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) Get(ctx context.Context, track domain.Track, periodID int64) (*domain.Outcome, error) {
	query := `
        SELECT track, period_id, number, size, color, created_at
        FROM results
        WHERE track = $1 AND period_id = $2
    `
	row := r.db.QueryRow(ctx, query, track, periodID)

	var o domain.Outcome
	err := row.Scan(&o.Track, &o.PeriodID, &o.Number, &o.Size, &o.Color, &o.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get outcome", zap.Error(err))
		return nil, err
	}
	return &o, nil
}

func (r *Repository) ListByTrack(ctx context.Context, track domain.Track, limit int) ([]domain.Outcome, error) {
	query := `
        SELECT track, period_id, number, size, color, created_at
        FROM results
        WHERE track = $1
        ORDER BY period_id DESC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, track, limit)
	if err != nil {
		zap.L().Error("can't list outcomes", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var outcomes []domain.Outcome
	for rows.Next() {
		var o domain.Outcome
		if err := rows.Scan(&o.Track, &o.PeriodID, &o.Number, &o.Size, &o.Color, &o.CreatedAt); err != nil {
			zap.L().Error("can't scan outcome row", zap.Error(err))
			return nil, err
		}
		outcomes = append(outcomes, o)
	}
	return outcomes, rows.Err()
}
