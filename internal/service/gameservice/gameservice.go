package gameservice

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/yeswin/wingo/internal/domain"
	"github.com/yeswin/wingo/internal/periodclock"
)

type ResultRepo interface {
	InsertIfAbsent(ctx context.Context, outcome *domain.Outcome) (bool, error)
	Get(ctx context.Context, track domain.Track, periodID int64) (*domain.Outcome, error)
	ListByTrack(ctx context.Context, track domain.Track, limit int) ([]domain.Outcome, error)
}

type SettingsRepo interface {
	Get(ctx context.Context) (*domain.Settings, error)
	SetNextResult(ctx context.Context, nextResult string, track domain.Track) error
}

var (
	ErrUnknownTrack    = errors.New("unknown track")
	ErrInvalidOverride = errors.New("invalid next result override")
)

const historyLimit = 50

// Draw sets for each operator override value. The red and green sets are
// the digits whose derived color matches; small and big halve the range.
var overrideDraws = map[string][]int{
	domain.NextResultSmall: {0, 1, 2, 3, 4},
	domain.NextResultBig:   {5, 6, 7, 8, 9},
	domain.NextResultRed:   {2, 4, 6, 8},
	domain.NextResultGreen: {1, 3, 7, 9},
}

type Service struct {
	resultRepo   ResultRepo
	settingsRepo SettingsRepo

	now  func() time.Time
	intN func(n int) int
}

func New(resultRepo ResultRepo, settingsRepo SettingsRepo) *Service {
	return &Service{
		resultRepo:   resultRepo,
		settingsRepo: settingsRepo,
		now:          time.Now,
		intN:         rand.Intn,
	}
}

// State returns the open period id and seconds remaining for a track.
func (s *Service) State(track domain.Track) (int64, int64, error) {
	if !track.Valid() {
		return 0, 0, ErrUnknownTrack
	}
	periodID, remaining := periodclock.Current(track, s.now())
	return periodID, remaining, nil
}

// GenerateIfAbsent produces the outcome for a closed period, unless one
// exists already. The insert-if-not-exists makes the call idempotent:
// any number of concurrent generators may race for the same period and
// exactly one outcome survives. Returns the authoritative outcome and
// whether this call created it.
//
// Pending wagers are never consulted here: the draw must stay
// independent of exposure.
func (s *Service) GenerateIfAbsent(ctx context.Context, track domain.Track, periodID int64) (*domain.Outcome, bool, error) {
	if !track.Valid() {
		return nil, false, ErrUnknownTrack
	}

	currentID, _ := periodclock.Current(track, s.now())
	if periodID >= currentID {
		// Period still open; generating now would publish a result
		// players can still bet against.
		return nil, false, nil
	}

	number, err := s.draw(ctx, track)
	if err != nil {
		return nil, false, err
	}

	outcome := domain.NewOutcome(track, periodID, number)
	inserted, err := s.resultRepo.InsertIfAbsent(ctx, outcome)
	if err != nil {
		return nil, false, err
	}
	if !inserted {
		existing, err := s.resultRepo.Get(ctx, track, periodID)
		if err != nil {
			return nil, false, err
		}
		return existing, false, nil
	}

	zap.L().Info("outcome published",
		zap.String("track", string(track)),
		zap.Int64("periodID", periodID),
		zap.Int("number", number),
	)
	return outcome, true, nil
}

func (s *Service) draw(ctx context.Context, track domain.Track) (int, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		zap.L().Error("can't read generation settings", zap.Error(err))
		return 0, err
	}

	if settings.NextResult != domain.NextResultAuto && settings.NextResultTrack == track {
		set := overrideDraws[settings.NextResult]
		if len(set) > 0 {
			return set[s.intN(len(set))], nil
		}
		zap.L().Warn("ignoring unknown next result override", zap.String("nextResult", settings.NextResult))
	}
	return s.intN(10), nil
}

// History returns the latest published outcomes of a track, newest
// first.
func (s *Service) History(ctx context.Context, track domain.Track) ([]domain.Outcome, error) {
	if !track.Valid() {
		return nil, ErrUnknownTrack
	}
	outcomes, err := s.resultRepo.ListByTrack(ctx, track, historyLimit)
	if err != nil {
		zap.L().Error("failed to get outcome history", zap.Error(err))
		return nil, err
	}
	return outcomes, nil
}

// SetNextResult stores the operator override consumed by the next draw
// of the given track.
func (s *Service) SetNextResult(ctx context.Context, nextResult string, track domain.Track) error {
	switch nextResult {
	case domain.NextResultAuto, domain.NextResultSmall, domain.NextResultBig,
		domain.NextResultRed, domain.NextResultGreen:
	default:
		return ErrInvalidOverride
	}
	if !track.Valid() {
		return ErrUnknownTrack
	}
	return s.settingsRepo.SetNextResult(ctx, nextResult, track)
}
