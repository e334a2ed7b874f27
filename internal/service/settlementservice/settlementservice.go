package settlementservice

import (
	"context"

	"go.uber.org/zap"

	"github.com/yeswin/wingo/internal/domain"
	"github.com/yeswin/wingo/internal/pg"
	wagerrepo "github.com/yeswin/wingo/internal/repo/wager-repo"
)

type WagerRepo interface {
	FindSettleable(ctx context.Context, track domain.Track, limit int) ([]wagerrepo.Settleable, error)
	Settle(ctx context.Context, wagerID int64, status string, payout float64) (bool, error)
}

type AccountRepo interface {
	CreditPayout(ctx context.Context, userID int, amount float64) error
}

type Broadcaster interface {
	BroadcastWager(w *domain.Wager)
}

const settleBatchLimit = 1000

type Service struct {
	wagerRepo   WagerRepo
	accountRepo AccountRepo
	txManager   pg.TXManager
	broadcaster Broadcaster
}

func New(wagerRepo WagerRepo, accountRepo AccountRepo, txManager pg.TXManager, broadcaster Broadcaster) *Service {
	return &Service{
		wagerRepo:   wagerRepo,
		accountRepo: accountRepo,
		txManager:   txManager,
		broadcaster: broadcaster,
	}
}

// Settle resolves every pending wager of the track whose period already
// has a published outcome. It may be invoked any number of times from
// any number of triggers; the pending->settled transition is a
// compare-and-set, so re-observing a wager can never credit it twice.
//
// Wagers are grouped per user. Each user's transitions and the single
// aggregated payout credit commit in one transaction: either the wagers
// flip out of pending and the balance gains exactly the summed payout,
// or everything stays pending for the next pass. One user's failure
// does not abort the others.
//
// Returns the number of wagers settled in this pass.
func (s *Service) Settle(ctx context.Context, track domain.Track) (int, error) {
	items, err := s.wagerRepo.FindSettleable(ctx, track, settleBatchLimit)
	if err != nil {
		return 0, err
	}
	if len(items) == 0 {
		return 0, nil
	}

	byUser := make(map[int][]wagerrepo.Settleable)
	userOrder := make([]int, 0)
	for _, it := range items {
		if _, seen := byUser[it.Wager.UserID]; !seen {
			userOrder = append(userOrder, it.Wager.UserID)
		}
		byUser[it.Wager.UserID] = append(byUser[it.Wager.UserID], it)
	}

	total := 0
	for _, userID := range userOrder {
		settled, err := s.settleUser(ctx, userID, byUser[userID])
		if err != nil {
			zap.L().Error("settlement pass failed for user, will retry",
				zap.Int("userID", userID), zap.Error(err))
			continue
		}
		total += settled
	}
	return total, nil
}

func (s *Service) settleUser(ctx context.Context, userID int, items []wagerrepo.Settleable) (int, error) {
	var (
		settledWagers []*domain.Wager
		totalPayout   float64
	)

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		settledWagers = settledWagers[:0]
		totalPayout = 0

		for _, it := range items {
			won, multiplier := it.Wager.Selection.Match(&it.Outcome)
			status := domain.WagerLost
			payout := 0.0
			if won {
				status = domain.WagerWon
				payout = it.Wager.Amount * multiplier
			}

			ok, err := s.wagerRepo.Settle(ctx, it.Wager.ID, status, payout)
			if err != nil {
				return err
			}
			if !ok {
				// A concurrent pass won the compare-and-set; that pass
				// owns the payout credit.
				continue
			}

			w := it.Wager
			w.Status = status
			w.Payout = payout
			settledWagers = append(settledWagers, &w)
			totalPayout += payout
		}

		if totalPayout > 0 {
			if err := s.accountRepo.CreditPayout(ctx, userID, totalPayout); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	for _, w := range settledWagers {
		zap.L().Info("wager settled",
			zap.Int64("wagerID", w.ID),
			zap.Int("userID", w.UserID),
			zap.String("status", w.Status),
			zap.Float64("payout", w.Payout),
		)
		s.broadcaster.BroadcastWager(w)
	}
	return len(settledWagers), nil
}
