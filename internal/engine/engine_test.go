package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/yeswin/wingo/internal/domain"
)

func NewMock(t *testing.T) (*Engine, *MockOutcomeGenerator, *MockSettler, *MockBroadcaster) {
	ctrl := gomock.NewController(t)
	generator := NewMockOutcomeGenerator(ctrl)
	settler := NewMockSettler(ctrl)
	broadcaster := NewMockBroadcaster(ctrl)
	e := New(generator, settler, broadcaster, NewNotifier())
	defer ctrl.Finish()
	return e, generator, settler, broadcaster
}

func TestNotifierNeverBlocks(t *testing.T) {
	n := NewNotifier()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 1000; i++ {
			n.Notify(domain.Track1Min)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Notify blocked on a full buffer")
	}
}

func TestEnqueueSettleRunsOnePassPerTrack(t *testing.T) {
	e, _, settler, _ := NewMock(t)

	settled := make(chan domain.Track, 1)
	settler.EXPECT().
		Settle(gomock.Any(), domain.Track1Min).
		DoAndReturn(func(ctx context.Context, track domain.Track) (int, error) {
			settled <- track
			return 2, nil
		})

	e.enqueueSettle(context.Background(), domain.Track1Min)

	select {
	case track := <-settled:
		assert.Equal(t, domain.Track1Min, track)
	case <-time.After(time.Second):
		t.Fatal("settlement pass never ran")
	}
}

func TestEnqueueSettleDeduplicates(t *testing.T) {
	e, _, settler, _ := NewMock(t)

	started := make(chan struct{})
	release := make(chan struct{})
	settler.EXPECT().
		Settle(gomock.Any(), domain.Track30Sec).
		DoAndReturn(func(ctx context.Context, track domain.Track) (int, error) {
			close(started)
			<-release
			return 0, nil
		})

	e.enqueueSettle(context.Background(), domain.Track30Sec)
	<-started

	// The pass is still running, so these must not queue another one.
	e.enqueueSettle(context.Background(), domain.Track30Sec)
	e.enqueueSettle(context.Background(), domain.Track30Sec)
	close(release)

	// A pass for a different track is independent.
	other := make(chan struct{})
	settler.EXPECT().
		Settle(gomock.Any(), domain.Track5Min).
		DoAndReturn(func(ctx context.Context, track domain.Track) (int, error) {
			close(other)
			return 0, nil
		})
	e.enqueueSettle(context.Background(), domain.Track5Min)

	select {
	case <-other:
	case <-time.After(time.Second):
		t.Fatal("independent track pass never ran")
	}
}

func TestDispatchOnNotification(t *testing.T) {
	e, _, settler, _ := NewMock(t)

	settled := make(chan domain.Track, 1)
	settler.EXPECT().
		Settle(gomock.Any(), domain.Track3Min).
		DoAndReturn(func(ctx context.Context, track domain.Track) (int, error) {
			settled <- track
			return 1, nil
		}).
		MinTimes(1)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go e.dispatch(ctx)

	e.notifier.Notify(domain.Track3Min)

	select {
	case track := <-settled:
		assert.Equal(t, domain.Track3Min, track)
	case <-time.After(time.Second):
		t.Fatal("notification did not trigger a settlement pass")
	}
}
