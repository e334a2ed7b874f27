package dto

type AccountResponseDTO struct {
	Balance           float64 `json:"balance" example:"500.5"`
	RequiredTurnover  float64 `json:"required_turnover" example:"1000"`
	CompletedTurnover float64 `json:"completed_turnover" example:"650"`
	CanWithdraw       bool    `json:"can_withdraw" example:"false"`
}

type DepositRequestDTO struct {
	Method string  `json:"method" validate:"required,oneof=Bkash Nagad Rocket"`
	Amount float64 `json:"amount" validate:"required,gt=0"`
	TrxID  string  `json:"trx_id" validate:"required"`
}

type WithdrawRequestDTO struct {
	Method     string  `json:"method" validate:"required,oneof=Bkash Nagad Rocket"`
	Amount     float64 `json:"amount" validate:"required,gt=0"`
	BankNumber string  `json:"bank_number" validate:"required"`
}

type TransactionResponseDTO struct {
	ID        int64   `json:"id" example:"7"`
	Type      string  `json:"type" example:"deposit"`
	Method    string  `json:"method" example:"Bkash"`
	Amount    float64 `json:"amount" example:"1000"`
	Status    string  `json:"status" example:"pending"`
	CreatedAt string  `json:"created_at" example:"2024-11-02T16:09:57+06:00"`
}

type BonusRequestDTO struct {
	Code string `json:"code" validate:"required"`
}

type SpinResponseDTO struct {
	Segment string  `json:"segment" example:"50"`
	Value   float64 `json:"value" example:"50"`
	Free    bool    `json:"free" example:"true"`
	Net     float64 `json:"net" example:"50"`
}

type DecisionRequestDTO struct {
	Accept bool `json:"accept"`
}
