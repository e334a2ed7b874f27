package domain

import "time"

// Track is one of the independent round cadences. Periods are numbered
// independently per track, so a period id is only meaningful together
// with its track.
type Track string

const (
	Track30Sec Track = "30sec"
	Track1Min  Track = "1min"
	Track3Min  Track = "3min"
	Track5Min  Track = "5min"
)

var trackSeconds = map[Track]int64{
	Track30Sec: 30,
	Track1Min:  60,
	Track3Min:  180,
	Track5Min:  300,
}

func (t Track) Seconds() int64 {
	return trackSeconds[t]
}

func (t Track) Valid() bool {
	_, ok := trackSeconds[t]
	return ok
}

// Tracks returns all tracks in display order.
func Tracks() []Track {
	return []Track{Track30Sec, Track1Min, Track3Min, Track5Min}
}

type Size string

const (
	SizeSmall Size = "small"
	SizeBig   Size = "big"
)

type Color string

const (
	ColorRed    Color = "red"
	ColorGreen  Color = "green"
	ColorViolet Color = "violet"
)

// SizeOf derives the size attribute from a drawn digit.
func SizeOf(number int) Size {
	if number >= 5 {
		return SizeBig
	}
	return SizeSmall
}

// ColorOf derives the color attribute from a drawn digit: 0 and 5 are
// violet, the remaining evens red, odds green.
func ColorOf(number int) Color {
	if number == 0 || number == 5 {
		return ColorViolet
	}
	if number%2 == 0 {
		return ColorRed
	}
	return ColorGreen
}

// Outcome is the published result of one closed period. At most one
// outcome exists per (track, period id) and it is never mutated.
type Outcome struct {
	Track     Track     `db:"track"`
	PeriodID  int64     `db:"period_id"`
	Number    int       `db:"number"`
	Size      Size      `db:"size"`
	Color     Color     `db:"color"`
	CreatedAt time.Time `db:"created_at"`
}

// NewOutcome fills the attributes derived from number.
func NewOutcome(track Track, periodID int64, number int) *Outcome {
	return &Outcome{
		Track:    track,
		PeriodID: periodID,
		Number:   number,
		Size:     SizeOf(number),
		Color:    ColorOf(number),
	}
}

const (
	WagerPending string = "pending"
	WagerWon     string = "won"
	WagerLost    string = "lost"
)

type Wager struct {
	ID        int64     `db:"id"`
	UserID    int       `db:"user_id"`
	Track     Track     `db:"track"`
	PeriodID  int64     `db:"period_id"`
	Selection Selection `db:"selection"`
	Amount    float64   `db:"amount"`
	Status    string    `db:"status"`
	Payout    float64   `db:"payout"`
	PlacedAt  time.Time `db:"placed_at"`
}

// Account holds the balance and turnover state of one user. Both
// turnover counters only ever increase; withdrawal is allowed only when
// CompletedTurnover has caught up with RequiredTurnover.
type Account struct {
	UserID            int        `db:"user_id"`
	Balance           float64    `db:"balance"`
	RequiredTurnover  float64    `db:"required_turnover"`
	CompletedTurnover float64    `db:"completed_turnover"`
	LastSpinAt        *time.Time `db:"last_spin_at"`
}

func (a *Account) CanWithdraw() bool {
	return a.CompletedTurnover >= a.RequiredTurnover
}

type User struct {
	ID           int       `db:"id"`
	Gmail        string    `db:"gmail"`
	PasswordHash string    `db:"password_hash"`
	IsBlocked    bool      `db:"is_blocked"`
	CreatedAt    time.Time `db:"created_at"`
}

const (
	TransactionDeposit    string = "deposit"
	TransactionWithdrawal string = "withdrawal"

	TransactionPending   string = "pending"
	TransactionAccepted  string = "accepted"
	TransactionCancelled string = "cancelled"
)

type Transaction struct {
	ID         int64     `db:"id"`
	UserID     int       `db:"user_id"`
	Type       string    `db:"type"`
	Method     string    `db:"method"`
	Amount     float64   `db:"amount"`
	Status     string    `db:"status"`
	TrxID      string    `db:"trx_id"`
	BankNumber string    `db:"bank_number"`
	CreatedAt  time.Time `db:"created_at"`
}

type BonusCode struct {
	ID        int64     `db:"id"`
	Code      string    `db:"code"`
	Amount    float64   `db:"amount"`
	CreatedAt time.Time `db:"created_at"`
}

// NextResult values accepted by the operator override.
const (
	NextResultAuto  string = "auto"
	NextResultSmall string = "small"
	NextResultBig   string = "big"
	NextResultRed   string = "red"
	NextResultGreen string = "green"
)

// Settings is the single operator-editable configuration row. NextResult
// biases outcome generation for NextResultTrack only; every other track
// keeps drawing uniformly.
type Settings struct {
	NextResult      string `db:"next_result"`
	NextResultTrack Track  `db:"next_result_track"`
}
