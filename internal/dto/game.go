package dto

type TrackStateResponseDTO struct {
	Track            string `json:"track" example:"1min"`
	PeriodID         int64  `json:"period_id" example:"29412345"`
	SecondsRemaining int64  `json:"seconds_remaining" example:"42"`
}

type OutcomeResponseDTO struct {
	Track    string `json:"track" example:"1min"`
	PeriodID int64  `json:"period_id" example:"29412344"`
	Number   int    `json:"number" example:"7"`
	Size     string `json:"size" example:"big"`
	Color    string `json:"color" example:"green"`
}

type PlaceWagerRequestDTO struct {
	Track     string  `json:"track" validate:"required"`
	Selection string  `json:"selection" validate:"required"`
	Amount    float64 `json:"amount" validate:"required,gt=0"`
}

type WagerResponseDTO struct {
	ID        int64   `json:"id" example:"101"`
	Track     string  `json:"track" example:"30sec"`
	PeriodID  int64   `json:"period_id" example:"58824680"`
	Selection string  `json:"selection" example:"violet"`
	Amount    float64 `json:"amount" example:"100"`
	Status    string  `json:"status" example:"pending"`
	Payout    float64 `json:"payout" example:"0"`
	PlacedAt  string  `json:"placed_at" example:"2024-11-02T16:09:57+06:00"`
}

type NextResultRequestDTO struct {
	NextResult string `json:"next_result" validate:"required,oneof=auto small big red green"`
	Track      string `json:"track" validate:"required"`
}
