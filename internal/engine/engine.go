package engine

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/yeswin/wingo/internal/domain"
	"github.com/yeswin/wingo/internal/periodclock"
)

type OutcomeGenerator interface {
	GenerateIfAbsent(ctx context.Context, track domain.Track, periodID int64) (*domain.Outcome, bool, error)
}

type Settler interface {
	Settle(ctx context.Context, track domain.Track) (int, error)
}

type Broadcaster interface {
	BroadcastOutcome(o *domain.Outcome)
}

// Notifier carries settlement wake-ups from wager placement into the
// engine. It is constructed separately so services can hold it before
// the engine exists.
type Notifier struct {
	ch chan domain.Track
}

func NewNotifier() *Notifier {
	return &Notifier{ch: make(chan domain.Track, 64)}
}

// Notify never blocks; a full buffer is fine because the poll ticker
// picks the track up anyway.
func (n *Notifier) Notify(track domain.Track) {
	select {
	case n.ch <- track:
	default:
	}
}

const (
	tickInterval = time.Second
	pollInterval = 5 * time.Second
	poolSize     = 4
)

// Engine drives the round lifecycle: one ticker per duration track, a
// generation attempt on every period rollover and settlement passes
// whenever anything could have matured a wager. Every track runs fully
// independently.
type Engine struct {
	generator   OutcomeGenerator
	settler     Settler
	broadcaster Broadcaster
	notifier    *Notifier

	workerPool WorkerPoolI
	// Tracks with a settlement pass already queued or running; a track
	// is settled by at most one worker at a time.
	settling sync.Map

	now func() time.Time
}

func New(generator OutcomeGenerator, settler Settler, broadcaster Broadcaster, notifier *Notifier) *Engine {
	return &Engine{
		generator:   generator,
		settler:     settler,
		broadcaster: broadcaster,
		notifier:    notifier,
		workerPool:  NewWorkerPool(poolSize),
		now:         time.Now,
	}
}

func (e *Engine) Start(ctx context.Context) {
	zap.L().Info("Round engine started")
	for _, track := range domain.Tracks() {
		track := track
		go e.runTrack(ctx, track)
	}
	go e.dispatch(ctx)
}

// runTrack ticks once per second and fires outcome generation for the
// period that just closed whenever the open period id advances.
// Generation is idempotent, so concurrent engine instances watching the
// same track are harmless.
func (e *Engine) runTrack(ctx context.Context, track domain.Track) {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	lastPeriod, _ := periodclock.Current(track, e.now())

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping track timer", zap.String("track", string(track)))
			return
		case <-ticker.C:
			current, _ := periodclock.Current(track, e.now())
			if current <= lastPeriod {
				continue
			}
			lastPeriod = current

			closed := current - 1
			outcome, created, err := e.generator.GenerateIfAbsent(ctx, track, closed)
			if err != nil {
				zap.L().Error("outcome generation failed",
					zap.String("track", string(track)), zap.Int64("periodID", closed), zap.Error(err))
				continue
			}
			if outcome != nil && created {
				e.broadcaster.BroadcastOutcome(outcome)
			}
			e.enqueueSettle(ctx, track)
		}
	}
}

// dispatch turns wager notifications and a coarse poll into settlement
// passes. The poll catches anything a dropped notification or a failed
// pass left behind.
func (e *Engine) dispatch(ctx context.Context) {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping settlement dispatch")
			return
		case track := <-e.notifier.ch:
			e.enqueueSettle(ctx, track)
		case <-ticker.C:
			var g errgroup.Group
			for _, track := range domain.Tracks() {
				track := track
				g.Go(func() error {
					e.enqueueSettle(ctx, track)
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				zap.L().Error("Error dispatching settlement", zap.Error(err))
			}
		}
	}
}

func (e *Engine) enqueueSettle(ctx context.Context, track domain.Track) {
	if _, loaded := e.settling.LoadOrStore(track, struct{}{}); loaded {
		return
	}

	err := e.workerPool.AddTask(ctx, func() error {
		defer e.settling.Delete(track)

		settled, err := e.settler.Settle(ctx, track)
		if err != nil {
			return err
		}
		if settled > 0 {
			zap.L().Info("settlement pass finished",
				zap.String("track", string(track)), zap.Int("settled", settled))
		}
		return nil
	})
	if err != nil {
		e.settling.Delete(track)
	}
}
