package wagerservice

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/yeswin/wingo/internal/domain"
	"github.com/yeswin/wingo/internal/periodclock"
	"github.com/yeswin/wingo/internal/pg"
	wagerrepo "github.com/yeswin/wingo/internal/repo/wager-repo"
)

type WagerRepo interface {
	Create(ctx context.Context, wager *domain.Wager) error
	FindByUserID(ctx context.Context, userID int, limit int) ([]domain.Wager, error)
	FindSettleable(ctx context.Context, track domain.Track, limit int) ([]wagerrepo.Settleable, error)
	Settle(ctx context.Context, wagerID int64, status string, payout float64) (bool, error)
}

type AccountRepo interface {
	DebitForWager(ctx context.Context, userID int, amount float64) (bool, error)
}

// SettlementTrigger is poked after every accepted wager so settlement
// does not wait for the next poll.
type SettlementTrigger interface {
	Notify(track domain.Track)
}

type Broadcaster interface {
	BroadcastWager(w *domain.Wager)
}

var (
	ErrBettingClosed       = errors.New("betting closed for this round")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInvalidAmount       = errors.New("invalid wager amount")
	ErrUnknownTrack        = errors.New("unknown track")
)

const (
	// No wagers inside the closing seconds of a round.
	betGraceSeconds = 5

	wagerHistoryLimit = 50
)

type Service struct {
	wagerRepo   WagerRepo
	accountRepo AccountRepo
	txManager   pg.TXManager
	trigger     SettlementTrigger
	broadcaster Broadcaster

	now func() time.Time
}

func New(wagerRepo WagerRepo, accountRepo AccountRepo, txManager pg.TXManager, trigger SettlementTrigger, broadcaster Broadcaster) *Service {
	return &Service{
		wagerRepo:   wagerRepo,
		accountRepo: accountRepo,
		txManager:   txManager,
		trigger:     trigger,
		broadcaster: broadcaster,
		now:         time.Now,
	}
}

// PlaceWager validates and records a bet against the currently open
// period of the track. The stake debit, the turnover credit and the
// wager row are written in one transaction; a rejected wager leaves no
// trace.
func (s *Service) PlaceWager(ctx context.Context, userID int, track domain.Track, selection domain.Selection, amount float64) (*domain.Wager, error) {
	if !track.Valid() {
		return nil, ErrUnknownTrack
	}
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	periodID, remaining := periodclock.Current(track, s.now())
	if remaining < betGraceSeconds {
		return nil, ErrBettingClosed
	}

	wager := &domain.Wager{
		UserID:    userID,
		Track:     track,
		PeriodID:  periodID,
		Selection: selection,
		Amount:    amount,
		Status:    domain.WagerPending,
		PlacedAt:  s.now(),
	}

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		ok, err := s.accountRepo.DebitForWager(ctx, userID, amount)
		if err != nil {
			return err
		}
		if !ok {
			return ErrInsufficientBalance
		}
		return s.wagerRepo.Create(ctx, wager)
	})
	if err != nil {
		if !errors.Is(err, ErrInsufficientBalance) {
			zap.L().Error("failed to place wager", zap.Error(err))
		}
		return nil, err
	}

	zap.L().Info("wager placed",
		zap.Int("userID", userID),
		zap.String("track", string(track)),
		zap.Int64("periodID", periodID),
		zap.String("selection", selection.Value()),
		zap.Float64("amount", amount),
	)

	s.trigger.Notify(track)
	s.broadcaster.BroadcastWager(wager)
	return wager, nil
}

// GetWagers returns the user's latest wagers, newest first.
func (s *Service) GetWagers(ctx context.Context, userID int) ([]domain.Wager, error) {
	wagers, err := s.wagerRepo.FindByUserID(ctx, userID, wagerHistoryLimit)
	if err != nil {
		zap.L().Error("failed to get wagers", zap.Error(err))
		return nil, err
	}
	return wagers, nil
}
