package periodclock

import (
	"time"

	"github.com/yeswin/wingo/internal/domain"
)

// Current derives the open period id and the whole seconds remaining in
// it for a track at the given instant. Pure function of time and track,
// so independent processes agree on period boundaries without
// coordination. Remaining time is ceiling-rounded for display: it reads
// as the full duration at the first millisecond of a period and never
// shows 0 while the period is still open.
func Current(track domain.Track, now time.Time) (periodID int64, secondsRemaining int64) {
	durMillis := track.Seconds() * 1000
	millis := now.UnixMilli()

	periodID = millis / durMillis
	elapsed := millis % durMillis
	secondsRemaining = (durMillis - elapsed + 999) / 1000
	return periodID, secondsRemaining
}

// Previous returns the id of the period that closed most recently before
// the given instant. This is the period outcome generation targets on a
// rollover tick.
func Previous(track domain.Track, now time.Time) int64 {
	periodID, _ := Current(track, now)
	return periodID - 1
}

// StartOf returns the wall-clock start of a period.
func StartOf(track domain.Track, periodID int64) time.Time {
	return time.UnixMilli(periodID * track.Seconds() * 1000)
}
