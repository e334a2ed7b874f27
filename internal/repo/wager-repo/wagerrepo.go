package wagerrepo

import (
	"context"

	"go.uber.org/zap"

	"github.com/yeswin/wingo/internal/domain"
	"github.com/yeswin/wingo/internal/pg"
)

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

func (r *Repository) Create(ctx context.Context, wager *domain.Wager) error {
	query := `
        INSERT INTO wagers (user_id, track, period_id, selection_kind, selection_value, amount, status, placed_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query,
		wager.UserID, wager.Track, wager.PeriodID,
		wager.Selection.Kind, wager.Selection.Value(),
		wager.Amount, wager.Status, wager.PlacedAt,
	).Scan(&wager.ID)
	if err != nil {
		zap.L().Error("can't save wager", zap.Error(err))
		return err
	}
	return nil
}

// Settleable holds a pending wager paired with the published outcome of
// its period.
type Settleable struct {
	Wager   domain.Wager
	Outcome domain.Outcome
}

// FindSettleable returns pending wagers of the track whose period
// already has an outcome. A wager whose outcome has not appeared yet is
// simply not selected and stays pending.
func (r *Repository) FindSettleable(ctx context.Context, track domain.Track, limit int) ([]Settleable, error) {
	query := `
        SELECT w.id, w.user_id, w.track, w.period_id, w.selection_kind, w.selection_value,
               w.amount, w.status, w.payout, w.placed_at,
               res.number, res.size, res.color
        FROM wagers w
        JOIN results res ON res.track = w.track AND res.period_id = w.period_id
        WHERE w.status = 'pending' AND w.track = $1
        ORDER BY w.placed_at ASC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, track, limit)
	if err != nil {
		zap.L().Error("can't get wagers for settlement", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var out []Settleable
	for rows.Next() {
		var s Settleable
		var kind domain.SelectionKind
		var value string
		err := rows.Scan(
			&s.Wager.ID, &s.Wager.UserID, &s.Wager.Track, &s.Wager.PeriodID, &kind, &value,
			&s.Wager.Amount, &s.Wager.Status, &s.Wager.Payout, &s.Wager.PlacedAt,
			&s.Outcome.Number, &s.Outcome.Size, &s.Outcome.Color,
		)
		if err != nil {
			zap.L().Error("can't scan settleable wager row", zap.Error(err))
			return nil, err
		}
		s.Wager.Selection, err = domain.SelectionFrom(kind, value)
		if err != nil {
			zap.L().Error("stored wager selection is malformed",
				zap.Int64("wagerID", s.Wager.ID), zap.Error(err))
			return nil, err
		}
		s.Outcome.Track = s.Wager.Track
		s.Outcome.PeriodID = s.Wager.PeriodID
		out = append(out, s)
	}
	return out, rows.Err()
}

// Settle moves one wager out of pending with a compare-and-set on
// status. Returns false when the wager was no longer pending, i.e. a
// concurrent settlement pass got there first; the caller must not credit
// the payout in that case.
func (r *Repository) Settle(ctx context.Context, wagerID int64, status string, payout float64) (bool, error) {
	query := `
        UPDATE wagers
        SET status = $2, payout = $3
        WHERE id = $1 AND status = 'pending'
    `
	tag, err := r.db.Exec(ctx, query, wagerID, status, payout)
	if err != nil {
		zap.L().Error("can't settle wager", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int, limit int) ([]domain.Wager, error) {
	query := `
        SELECT id, user_id, track, period_id, selection_kind, selection_value, amount, status, payout, placed_at
        FROM wagers
        WHERE user_id = $1
        ORDER BY placed_at DESC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		zap.L().Error("can't get wagers", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var wagers []domain.Wager
	for rows.Next() {
		var w domain.Wager
		var kind domain.SelectionKind
		var value string
		err := rows.Scan(&w.ID, &w.UserID, &w.Track, &w.PeriodID, &kind, &value, &w.Amount, &w.Status, &w.Payout, &w.PlacedAt)
		if err != nil {
			zap.L().Error("can't scan wager row", zap.Error(err))
			return nil, err
		}
		w.Selection, err = domain.SelectionFrom(kind, value)
		if err != nil {
			zap.L().Error("stored wager selection is malformed", zap.Int64("wagerID", w.ID), zap.Error(err))
			return nil, err
		}
		wagers = append(wagers, w)
	}
	return wagers, rows.Err()
}
