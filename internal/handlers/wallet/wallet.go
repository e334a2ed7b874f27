package wallet

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/yeswin/wingo/internal/domain"
	"github.com/yeswin/wingo/internal/dto"
	"github.com/yeswin/wingo/internal/service/walletservice"
	"github.com/yeswin/wingo/internal/service/wheelservice"
	"github.com/yeswin/wingo/pkg/auth"
	"github.com/yeswin/wingo/pkg/utils"
	"github.com/yeswin/wingo/pkg/validate"
)

type WalletService interface {
	GetAccount(ctx context.Context, userID int) (*domain.Account, error)
	RequestDeposit(ctx context.Context, userID int, method string, amount float64, trxID string) (*domain.Transaction, error)
	RequestWithdrawal(ctx context.Context, userID int, method string, amount float64, bankNumber string) (*domain.Transaction, error)
	RedeemBonus(ctx context.Context, userID int, code string) (*domain.BonusCode, error)
	GetTransactions(ctx context.Context, userID int) ([]domain.Transaction, error)
}

type WheelService interface {
	Spin(ctx context.Context, userID int) (*wheelservice.SpinResult, error)
}

type WalletHandler struct {
	walletService WalletService
	wheelService  WheelService
}

func New(walletService WalletService, wheelService WheelService) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
		wheelService:  wheelService,
	}
}

// GetBalance godoc
//
//	@Summary		Current balance and turnover state
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.AccountResponseDTO
//	@Failure		404	{object}	utils.Response	"Account not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/balance [get]
func (h *WalletHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	account, err := h.walletService.GetAccount(r.Context(), userID)
	if err != nil {
		if errors.Is(err, walletservice.ErrAccountNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.AccountResponseDTO{
		Balance:           account.Balance,
		RequiredTurnover:  account.RequiredTurnover,
		CompletedTurnover: account.CompletedTurnover,
		CanWithdraw:       account.CanWithdraw(),
	})
}

// Deposit godoc
//
//	@Summary		File a deposit claim for operator review
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.DepositRequestDTO	true	"Deposit claim"
//	@Success		200		{object}	dto.TransactionResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/deposits [post]
func (h *WalletHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.DepositRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	tx, err := h.walletService.RequestDeposit(r.Context(), userID, req.Method, req.Amount, req.TrxID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, transactionToDTO(tx))
}

// Withdraw godoc
//
//	@Summary		Request a withdrawal
//	@Description	Allowed only once completed turnover has reached required turnover.
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.WithdrawRequestDTO	true	"Withdrawal request"
//	@Success		200		{object}	dto.TransactionResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		402		{object}	utils.Response	"Insufficient balance"
//	@Failure		403		{object}	utils.Response	"Required turnover not completed"
//	@Failure		422		{object}	utils.Response	"Amount below withdrawal minimum"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/balance/withdraw [post]
func (h *WalletHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.WithdrawRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	tx, err := h.walletService.RequestWithdrawal(r.Context(), userID, req.Method, req.Amount, req.BankNumber)
	if err != nil {
		switch {
		case errors.Is(err, walletservice.ErrTurnoverIncomplete):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, walletservice.ErrBelowMinWithdrawal):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, walletservice.ErrInsufficientBalance):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, transactionToDTO(tx))
}

// GetTransactions godoc
//
//	@Summary		Deposit and withdrawal history
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.TransactionResponseDTO
//	@Success		204	{object}	utils.Response	"No transactions"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/transactions [get]
func (h *WalletHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	txs, err := h.walletService.GetTransactions(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch transactions")
		return
	}
	if len(txs) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No transactions")
		return
	}

	response := make([]dto.TransactionResponseDTO, len(txs))
	for i := range txs {
		response[i] = transactionToDTO(&txs[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// RedeemBonus godoc
//
//	@Summary		Redeem a bonus code
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.BonusRequestDTO	true	"Bonus code"
//	@Success		200		{object}	utils.Response
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Bonus code not found"
//	@Failure		409		{object}	utils.Response	"Bonus code already used"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/bonus [post]
func (h *WalletHandler) RedeemBonus(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.BonusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	_, err := h.walletService.RedeemBonus(r.Context(), userID, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, walletservice.ErrBonusCodeNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, walletservice.ErrBonusCodeAlreadyUsed):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "bonus credited"})
}

// Spin godoc
//
//	@Summary		Spin the bonus wheel
//	@Description	Free once per 24 hours, afterwards a fixed fee is taken from the balance.
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.SpinResponseDTO
//	@Failure		402	{object}	utils.Response	"Insufficient balance for a paid spin"
//	@Failure		404	{object}	utils.Response	"Account not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/wheel/spin [post]
func (h *WalletHandler) Spin(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	result, err := h.wheelService.Spin(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, wheelservice.ErrInsufficientBalance):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		case errors.Is(err, wheelservice.ErrAccountNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.SpinResponseDTO{
		Segment: result.Segment.Label,
		Value:   result.Segment.Value,
		Free:    result.Free,
		Net:     result.Net,
	})
}

func transactionToDTO(tx *domain.Transaction) dto.TransactionResponseDTO {
	return dto.TransactionResponseDTO{
		ID:        tx.ID,
		Type:      tx.Type,
		Method:    tx.Method,
		Amount:    tx.Amount,
		Status:    tx.Status,
		CreatedAt: tx.CreatedAt.Format(time.RFC3339),
	}
}
