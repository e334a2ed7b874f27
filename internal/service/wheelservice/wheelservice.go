package wheelservice

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/yeswin/wingo/internal/domain"
	"github.com/yeswin/wingo/internal/pg"
)

type AccountRepo interface {
	Get(ctx context.Context, userID int) (*domain.Account, error)
	Debit(ctx context.Context, userID int, amount float64) (bool, error)
	CreditPayout(ctx context.Context, userID int, amount float64) error
	SetLastSpinAt(ctx context.Context, userID int, at time.Time) error
}

var (
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrAccountNotFound     = errors.New("account not found")
)

const (
	// Cost of a spin when the daily free one is spent.
	spinCost     = 232
	spinCooldown = 24 * time.Hour
)

type Segment struct {
	Label string
	Value float64
}

// Twelve wheel segments in display order. Index 1 is the empty segment
// the wheel lands on 92% of the time.
var segments = []Segment{
	{"100000", 100000},
	{"nothing", 0},
	{"5", 5},
	{"10", 10},
	{"20", 20},
	{"50", 50},
	{"100", 100},
	{"500", 500},
	{"1000", 1000},
	{"40000", 40000},
	{"50000", 50000},
	{"70000", 70000},
}

var rareSegments = []int{0, 6, 7, 8, 9, 10, 11}

type SpinResult struct {
	Segment Segment
	Free    bool
	// Balance delta applied: segment value, minus the spin cost on a
	// paid spin.
	Net float64
}

type Service struct {
	accountRepo AccountRepo
	txManager   pg.TXManager

	now       func() time.Time
	randFloat func() float64
	intN      func(n int) int
}

func New(accountRepo AccountRepo, txManager pg.TXManager) *Service {
	return &Service{
		accountRepo: accountRepo,
		txManager:   txManager,
		now:         time.Now,
		randFloat:   rand.Float64,
		intN:        rand.Intn,
	}
}

// pick draws a segment with the wheel's fixed non-uniform weights: 92%
// nothing, then 3%/2%/1.5%/1% for the small tiers, and the last 0.5%
// spread uniformly across the rare tiers.
func (s *Service) pick() Segment {
	r := s.randFloat() * 100
	switch {
	case r < 92:
		return segments[1]
	case r < 95:
		return segments[2]
	case r < 97:
		return segments[3]
	case r < 98.5:
		return segments[4]
	case r < 99.5:
		return segments[5]
	default:
		return segments[rareSegments[s.intN(len(rareSegments))]]
	}
}

// Spin runs one wheel spin. The first spin per 24 hours is free; after
// that a spin costs a fixed fee taken from the balance. The reward is
// applied immediately, there is no settlement phase, and wheel credits
// do not touch the turnover counters.
func (s *Service) Spin(ctx context.Context, userID int) (*SpinResult, error) {
	account, err := s.accountRepo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}

	now := s.now()
	free := account.LastSpinAt == nil || now.Sub(*account.LastSpinAt) >= spinCooldown

	var result *SpinResult
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if !free {
			ok, err := s.accountRepo.Debit(ctx, userID, spinCost)
			if err != nil {
				return err
			}
			if !ok {
				return ErrInsufficientBalance
			}
		}

		seg := s.pick()
		if seg.Value > 0 {
			if err := s.accountRepo.CreditPayout(ctx, userID, seg.Value); err != nil {
				return err
			}
		}
		if free {
			if err := s.accountRepo.SetLastSpinAt(ctx, userID, now); err != nil {
				return err
			}
		}

		net := seg.Value
		if !free {
			net -= spinCost
		}
		result = &SpinResult{Segment: seg, Free: free, Net: net}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrInsufficientBalance) {
			zap.L().Error("wheel spin failed", zap.Error(err))
		}
		return nil, err
	}

	zap.L().Info("wheel spun",
		zap.Int("userID", userID),
		zap.String("segment", result.Segment.Label),
		zap.Bool("free", result.Free),
	)
	return result, nil
}
